package domain

// Flash levels, matching the banner styles rendered by the templates.
const (
	FlashSuccess = "success"
	FlashWarning = "warning"
	FlashDanger  = "danger"
)

// Flash is a transient banner queued for the visitor's next rendered page.
// Banners stack and auto-dismiss client-side after a fixed delay.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}
