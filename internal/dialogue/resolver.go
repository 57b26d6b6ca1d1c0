package dialogue

import (
	"sort"
	"strings"
)

// Related is one dialogue option that touches a quest.
type Related struct {
	NodeID     string `json:"node_id"`
	NodeText   string `json:"node_text"`
	Speaker    string `json:"speaker"`
	OptionText string `json:"option_text"`
}

// Speakers returns every non-blank speaker across the corpus, deduplicated
// and sorted lexicographically. It populates NPC selectors wherever the
// model references NPC identifiers.
func Speakers(c *Corpus) []string {
	seen := map[string]bool{}
	for _, id := range c.IDs {
		speaker := c.Nodes[id].Speaker
		if strings.TrimSpace(speaker) == "" {
			continue
		}
		seen[speaker] = true
	}
	speakers := make([]string, 0, len(seen))
	for s := range seen {
		speakers = append(speakers, s)
	}
	sort.Strings(speakers)
	return speakers
}

// FindRelated scans every option's consequences for effects that start,
// fail, advance, or complete an objective of the given quest. One entry is
// produced per matching option — a node with two matching options yields
// two entries — in corpus order. Read-only.
func FindRelated(c *Corpus, questID string) []Related {
	var results []Related
	for _, id := range c.IDs {
		node := c.Nodes[id]
		for _, opt := range node.Options {
			if optionTouchesQuest(opt, questID) {
				results = append(results, Related{
					NodeID:     id,
					NodeText:   node.Text,
					Speaker:    node.Speaker,
					OptionText: opt.Text,
				})
			}
		}
	}
	return results
}

func optionTouchesQuest(opt Option, questID string) bool {
	for _, effect := range opt.Consequences {
		switch effect.Type {
		case EffectStartQuest, EffectFailQuest:
			if payload, ok := effect.Data.(string); ok && payload == questID {
				return true
			}
		case EffectAdvanceQuest, EffectCompleteQuestObjective:
			// Payload is a [quest_id, ...] pair; only the first element
			// identifies the quest.
			if pair, ok := effect.Data.([]any); ok && len(pair) > 0 {
				if first, ok := pair[0].(string); ok && first == questID {
					return true
				}
			}
		}
	}
	return false
}
