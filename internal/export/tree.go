// Package export emits a quest into the two interchangeable output forms:
// the structured tree (the canonical form, a direct reflection of the
// entity graph through generic codecs) and the line-oriented text form.
package export

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"questforge/internal/quest"
)

// TreeJSON renders the structured tree form as indented JSON. The tree is
// the quest entity graph itself: sequences stay sequences, tagged unions
// stay {event_type, data} and {condition_type, target_id, value} shapes.
func TreeJSON(q *quest.Quest) ([]byte, error) {
	data, err := json.MarshalIndent(q, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding quest %s: %w", q.ID, err)
	}
	return data, nil
}

// TreeYAML renders the structured tree form as YAML.
func TreeYAML(q *quest.Quest) ([]byte, error) {
	data, err := yaml.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("encoding quest %s: %w", q.ID, err)
	}
	return data, nil
}
