package inference

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// LoadLabels reads a class-index mapping file of the form
// {"Tomato_Blight": 0, "Apple_Scab": 1, ...} and returns the class names
// indexed by model output position. The mapping must be a dense bijection:
// every index in [0, len) appears exactly once.
func LoadLabels(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read labels: %w", err)
	}

	var byName map[string]int
	if err := json.Unmarshal(raw, &byName); err != nil {
		return nil, fmt.Errorf("parse labels: %w", err)
	}
	if len(byName) == 0 {
		return nil, errors.New("labels file defines no classes")
	}

	labels := make([]string, len(byName))
	for name, idx := range byName {
		if idx < 0 || idx >= len(labels) {
			return nil, fmt.Errorf("class index %d for %q out of range", idx, name)
		}
		if labels[idx] != "" {
			return nil, fmt.Errorf("class index %d assigned to both %q and %q", idx, labels[idx], name)
		}
		labels[idx] = name
	}

	return labels, nil
}
