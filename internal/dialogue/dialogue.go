// Package dialogue reads the external dialogue corpus. The corpus is
// read-only here: it supplies NPC speaker identifiers and answers
// which-dialogue-touches-this-quest queries, nothing in this package
// mutates it.
package dialogue

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrNotMapping = errors.New("dialogue corpus root must be a mapping of node id to node")

// Corpus is the dialogue collection. Node order follows the source
// document so queries iterate deterministically.
type Corpus struct {
	IDs   []string
	Nodes map[string]*Node
}

// Node is a single conversation node.
type Node struct {
	Speaker string   `yaml:"speaker"`
	Text    string   `yaml:"text"`
	Options []Option `yaml:"options"`
}

// Option is a player choice leaving a node.
type Option struct {
	Text         string   `yaml:"text"`
	NextNode     string   `yaml:"next_node"`
	Consequences []Effect `yaml:"consequences"`
}

// Effect is a consequence attached to an option, the same {event_type,
// data} shape completion events use.
type Effect struct {
	Type EventType `yaml:"event_type"`
	Data any       `yaml:"data"`
}

// EventType names a dialogue consequence. Only the quest-touching types
// matter to this system; everything else passes through untouched.
type EventType string

const (
	EffectStartQuest             EventType = "StartQuest"
	EffectFailQuest              EventType = "FailQuest"
	EffectAdvanceQuest           EventType = "AdvanceQuest"
	EffectCompleteQuestObjective EventType = "CompleteQuestObjective"
)

// LoadFile reads a corpus from a YAML file.
func LoadFile(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading dialogue corpus: %w", err)
	}
	corpus, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading dialogue corpus: %w", err)
	}
	return corpus, nil
}

// Parse decodes a corpus, keeping the document's node order. yaml.v3's map
// decoding would shuffle it, so the top-level mapping is walked as nodes.
func Parse(data []byte) (*Corpus, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	corpus := &Corpus{Nodes: map[string]*Node{}}
	if len(doc.Content) == 0 {
		return corpus, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		id := root.Content[i].Value
		node := &Node{}
		if err := root.Content[i+1].Decode(node); err != nil {
			return nil, fmt.Errorf("decoding node %s: %w", id, err)
		}
		corpus.IDs = append(corpus.IDs, id)
		corpus.Nodes[id] = node
	}
	return corpus, nil
}
