package apierr

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Parse builds an APIError from a non-2xx response. slurp is already
// size-limited by the caller; status is the HTTP status. Parsing is
// best-effort: a body that isn't valid JSON yields a nil Body and the
// "HTTP <status>" fallback message, never a failure.
func Parse(slurp []byte, status int) *APIError {
	trimmed := strings.TrimSpace(string(slurp))

	e := &APIError{
		Kind:   ClassifyStatus(status),
		Status: status,
		Raw:    trimmed,
	}

	if len(trimmed) > 0 && json.Valid([]byte(trimmed)) {
		e.Body = json.RawMessage(trimmed)
	}

	// The service answers {"error": "...", "code": "..."}; some fronting
	// proxies use {"message": "..."} instead. Only string fields count.
	if e.Body != nil {
		if v := gjson.GetBytes(e.Body, "error"); v.Type == gjson.String && v.Str != "" {
			e.Message = v.Str
		} else if v := gjson.GetBytes(e.Body, "message"); v.Type == gjson.String && v.Str != "" {
			e.Message = v.Str
		}
		if v := gjson.GetBytes(e.Body, "code"); v.Type == gjson.String {
			e.Code = v.Str
		}
	}

	if e.Message == "" {
		e.Message = fmt.Sprintf("HTTP %d", status)
	}
	return e
}
