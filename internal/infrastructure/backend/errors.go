package backend

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/kate00gas/restaurant-delivery/internal/core/domain"
)

const maxErrorBody = 1 << 20

// errorEnvelope mirrors the API's error body: {"detail": ...} where detail
// is either a plain string or an array of field validation errors.
type errorEnvelope struct {
	Detail json.RawMessage `json:"detail"`
}

// fieldError is one entry of a structured validation detail. Location
// segments may be strings or array indices.
type fieldError struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// decodeAPIError turns a non-success response into a domain.RemoteError,
// flattening structured validation details into one readable string.
func decodeAPIError(resp *http.Response) *domain.RemoteError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &domain.RemoteError{
		StatusCode: resp.StatusCode,
		Detail:     flattenDetail(body),
	}
}

func flattenDetail(body []byte) string {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil || len(env.Detail) == 0 {
		return ""
	}

	var plain string
	if json.Unmarshal(env.Detail, &plain) == nil {
		return plain
	}

	var fields []fieldError
	if json.Unmarshal(env.Detail, &fields) == nil && len(fields) > 0 {
		parts := make([]string, 0, len(fields))
		for _, fe := range fields {
			parts = append(parts, fe.String())
		}
		return strings.Join(parts, ", ")
	}

	// Unknown shape: surface the raw JSON rather than hiding it.
	return string(env.Detail)
}

func (fe fieldError) String() string {
	segs := make([]string, 0, len(fe.Loc))
	for _, seg := range fe.Loc {
		switch v := seg.(type) {
		case float64:
			segs = append(segs, fmt.Sprintf("%d", int(v)))
		default:
			segs = append(segs, fmt.Sprintf("%v", v))
		}
	}
	if len(segs) == 0 {
		return fe.Msg
	}
	return strings.Join(segs, ".") + ": " + fe.Msg
}
