package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/albapepper/drawcert/internal/tournament"
)

// ParseFormat decodes a tournament format and cross-checks its coherence.
// The rule engine relies on formats being validated here at the boundary.
func ParseFormat(data []byte) (tournament.Format, error) {
	var f tournament.Format
	if err := json.Unmarshal(data, &f); err != nil {
		return tournament.Format{}, fmt.Errorf("decoding format: %w", err)
	}
	if err := f.Validate(); err != nil {
		return tournament.Format{}, fmt.Errorf("inconsistent format: %w", err)
	}
	return f, nil
}

// Format loads and parses a format file.
func Format(path string) (tournament.Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tournament.Format{}, fmt.Errorf("reading format file: %w", err)
	}
	f, err := ParseFormat(data)
	if err != nil {
		return tournament.Format{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}
