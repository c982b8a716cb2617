package worldmap

import (
	"fmt"
	"strings"
)

// Resolution selects which dataset variant is drawn.
type Resolution int

const (
	Low Resolution = iota
	Med
	High
)

// Resolutions lists every tag in ascending detail.
var Resolutions = []Resolution{Low, Med, High}

func (r Resolution) String() string {
	switch r {
	case Low:
		return "low"
	case Med:
		return "med"
	case High:
		return "high"
	default:
		return fmt.Sprintf("Resolution(%d)", int(r))
	}
}

// ParseResolution accepts the String form, case-insensitively. "medium" is an alias of med.
func ParseResolution(s string) (Resolution, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return Low, nil
	case "med", "medium":
		return Med, nil
	case "high":
		return High, nil
	}
	return 0, fmt.Errorf("unknown resolution %q (want low, med or high)", s)
}
