package module

import (
	"encoding/json"
	"fmt"
	"io"
)

// Result is the JSON object a module hands back to the host runtime.
type Result map[string]any

// ExitJSON writes a successful result. "changed" defaults to false.
func ExitJSON(w io.Writer, result Result) error {
	out := make(Result, len(result)+1)
	out["changed"] = false
	for k, v := range result {
		out[k] = v
	}
	return writeJSON(w, out)
}

// FailJSON writes a failed result carrying msg.
func FailJSON(w io.Writer, msg string, result Result) error {
	out := make(Result, len(result)+3)
	out["changed"] = false
	for k, v := range result {
		out[k] = v
	}
	out["failed"] = true
	out["msg"] = msg
	return writeJSON(w, out)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write module result: %w", err)
	}
	return nil
}
