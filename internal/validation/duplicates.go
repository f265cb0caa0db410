package validation

import (
	"encoding/json"
	"fmt"
	"slices"
)

// DuplicateIDs returns the ids that occur more than once in a content file,
// sorted. The registry keeps the last occurrence; authors usually want to know.
func DuplicateIDs(data []byte) ([]string, error) {
	var entries []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse JSON data: %w", err)
	}

	seen := make(map[string]int, len(entries))
	var dupes []string
	for _, e := range entries {
		seen[e.ID]++
		if seen[e.ID] == 2 {
			dupes = append(dupes, e.ID)
		}
	}

	slices.Sort(dupes)
	return dupes, nil
}
