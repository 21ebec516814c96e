package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/twiced-technology-gmbh/taskninja/internal/clierr"
	"github.com/twiced-technology-gmbh/taskninja/internal/task"
)

// JSON writes data as indented JSON to the given writer.
func JSON(w io.Writer, data interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// SuccessResponse is the JSON envelope for a successful operation.
type SuccessResponse struct {
	OK      bool         `json:"ok"`
	Message string       `json:"message,omitempty"`
	Tasks   []*task.Task `json:"tasks,omitempty"`
}

// ErrorResponse is the JSON envelope for structured error output.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Code    string         `json:"code"`
	Details map[string]any `json:"details,omitempty"`
}

// JSONError writes a structured error to the given writer as JSON.
func JSONError(w io.Writer, code, msg string, details map[string]any) {
	resp := ErrorResponse{Error: msg, Code: code, Details: details}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp) // best-effort; if writer fails, nothing we can do
}

// JSONErrorFrom writes err as an ErrorResponse. Errors that are not
// *clierr.Error are reported as INTERNAL_ERROR.
func JSONErrorFrom(w io.Writer, err error) {
	var ce *clierr.Error
	if errors.As(err, &ce) {
		JSONError(w, ce.Code, ce.Message, ce.Details)
		return
	}
	JSONError(w, clierr.InternalError, err.Error(), nil)
}
