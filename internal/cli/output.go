package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// splitCodes turns "CS101, cs201,,MATH120" into trimmed, upper-cased codes.
func splitCodes(values ...string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if code := strings.ToUpper(strings.TrimSpace(part)); code != "" {
				out = append(out, code)
			}
		}
	}
	return out
}
