package store

import (
	"encoding/json"
	"fmt"

	"questforge/internal/quest"
)

// EncodeQuest serializes a quest document for storage. Both backends keep
// the whole quest as one JSON blob keyed by its ID; the document is the
// structured tree form, so anything that can read JSON can read the rows.
func EncodeQuest(q *quest.Quest) ([]byte, error) {
	data, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("encoding quest %s: %w", q.ID, err)
	}
	return data, nil
}

// DecodeQuest restores a quest document. The stored key wins over the
// document's id field if they disagree.
func DecodeQuest(id string, data []byte) (*quest.Quest, error) {
	var q quest.Quest
	if err := json.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("decoding quest %s: %w", id, err)
	}
	q.ID = id
	return &q, nil
}
