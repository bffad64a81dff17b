package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kate00gas/restaurant-delivery/internal/api/alert"
	apimetrics "github.com/kate00gas/restaurant-delivery/internal/api/metrics"
	"github.com/kate00gas/restaurant-delivery/internal/core/domain"
	"github.com/kate00gas/restaurant-delivery/internal/core/ports"
	"github.com/kate00gas/restaurant-delivery/internal/core/service"
)

// AuthHandler serves login, registration and logout. All three mutate the
// session or the remote account store, so the POSTs redirect instead of
// rendering directly.
type AuthHandler struct {
	api      ports.OrderingAPI
	sessions *service.Sessions
	alerts   *alert.Alerts
	log      zerolog.Logger
}

func NewAuthHandler(api ports.OrderingAPI, sessions *service.Sessions, alerts *alert.Alerts, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{api: api, sessions: sessions, alerts: alerts, log: log}
}

type loginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type registerForm struct {
	Username    string `form:"username" validate:"required"`
	Password    string `form:"password" validate:"required,min=4"`
	PhoneNumber string `form:"phone_number"`
}

// LoginPage renders the login form. A visitor who is already logged in is
// sent back to the restaurant listing.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	if currentSession(c).IsAuthenticated() {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return render(c, "login.html", struct {
		Page
	}{newPage(c, "Log in", h.alerts)})
}

// Login exchanges the submitted credentials for a token and establishes the
// session. A token whose role cannot be decoded leaves the visitor anonymous.
func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	sid := sessionID(c)

	var form loginForm
	if err := c.Bind(&form); err != nil {
		h.alerts.Danger(ctx, sid, "Invalid login form.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	if err := c.Validate(&form); err != nil {
		h.alerts.Danger(ctx, sid, "Login failed: "+err.Error())
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	token, err := h.api.Login(ctx, form.Username, form.Password)
	if err != nil {
		h.alerts.Danger(ctx, sid, errorMessage(err, "Login failed"))
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	sess, err := h.sessions.Establish(ctx, sid, token, form.Username)
	if err != nil {
		h.alerts.Danger(ctx, sid, "Login failed: the account token could not be read.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	apimetrics.SessionsEstablishedTotal.WithLabelValues(sess.Role).Inc()

	h.alerts.Success(ctx, sid, "Welcome, "+sess.Username+"!")
	if sess.Role == domain.RoleAdmin {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// RegisterPage renders the registration form.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	if currentSession(c).IsAuthenticated() {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return render(c, "register.html", struct {
		Page
	}{newPage(c, "Register", h.alerts)})
}

// Register creates an account with the user role and sends the visitor to
// the login form. No session is established: registering does not log in.
func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()
	sid := sessionID(c)

	var form registerForm
	if err := c.Bind(&form); err != nil {
		h.alerts.Danger(ctx, sid, "Invalid registration form.")
		return c.Redirect(http.StatusSeeOther, "/register")
	}
	if err := c.Validate(&form); err != nil {
		h.alerts.Danger(ctx, sid, "Registration failed: "+err.Error())
		return c.Redirect(http.StatusSeeOther, "/register")
	}

	err := h.api.Register(ctx, ports.RegisterInput{
		Username:    form.Username,
		Password:    form.Password,
		PhoneNumber: form.PhoneNumber,
	})
	if err != nil {
		h.alerts.Danger(ctx, sid, errorMessage(err, "Registration failed"))
		return c.Redirect(http.StatusSeeOther, "/register")
	}

	h.alerts.Success(ctx, sid, "Registration successful! Please log in.")
	return c.Redirect(http.StatusSeeOther, "/login")
}

// Logout clears the stored session and returns the visitor to the listing.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	sid := sessionID(c)

	if err := h.sessions.Clear(ctx, sid); err != nil {
		h.log.Warn().Err(err).Msg("failed to clear session on logout")
	}
	h.alerts.Success(ctx, sid, "You have been logged out.")
	return c.Redirect(http.StatusSeeOther, "/")
}
