// Package baseline holds the floor values for historical peaks.
//
// The compiled-in table records highs that predate peak tracking and cannot
// be derived from current observations. A seed file can extend or override
// it at deploy time.
package baseline

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
)

// Default is the compiled-in baseline table keyed by universe id.
var Default = map[string]int64{
	"8357236286": 16500, // Crush for Brainrots
	"7017269091": 5900,  // Jetpack Training
	"5792683386": 1900,  // Lift a Pet
	"7676176341": 600,   // Monster Training
	"5476431443": 500,   // Click To Get Big
	"9564163170": 100,   // Floor is Lava for Brainrots
	"9697706765": 0,     // Escape Color Block for Brainrots
}

// Table maps an entity id to its baseline peak. Absent ids have baseline 0.
type Table map[string]int64

// New returns a copy of Default merged with the given overrides.
func New(overrides ...map[string]int64) Table {
	t := make(Table, len(Default))
	for id, v := range Default {
		t[id] = v
	}
	for _, o := range overrides {
		for id, v := range o {
			t[strings.TrimSpace(id)] = v
		}
	}
	return t
}

// Get returns the baseline for id.
func (t Table) Get(id string) int64 {
	if v, ok := t[id]; ok && v > 0 {
		return v
	}
	return 0
}

// Load reads a JSON object of id → integer from path and merges it over
// Default. An empty path yields Default.
func Load(path string) (Table, error) {
	if strings.TrimSpace(path) == "" {
		return New(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read baseline file: %w", err)
	}

	var seed map[string]int64
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse baseline file: %w", err)
	}

	for id, v := range seed {
		if v < 0 {
			return nil, fmt.Errorf("baseline for %s is negative: %d", id, v)
		}
	}

	return New(seed), nil
}
