package export

import (
	"encoding/json"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"questforge/internal/quest"
)

func TestTreeJSONRoundTrip(t *testing.T) {
	q := fixture()
	// JSON has no integer type; use float64 effect values so the decoded
	// tree is comparable to the source.
	q.Stages[0].Events[1].Data = &quest.ItemData{ID: "torch", Name: "Torch", Effects: map[string]any{"light": float64(5)}}
	q.Rewards.Items[0].Effects = map[string]any{}

	data, err := TreeJSON(q)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var decoded quest.Quest
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(&decoded, q) {
		t.Fatalf("tree did not round-trip:\n%#v\n%#v", &decoded, q)
	}
}

func TestTreeJSONShapes(t *testing.T) {
	data, err := TreeJSON(fixture())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if tree["id"] != "torch_hunt" {
		t.Fatalf("unexpected id %v", tree["id"])
	}
	stages, ok := tree["stages"].([]any)
	if !ok || len(stages) != 2 {
		t.Fatalf("stages should stay a sequence: %#v", tree["stages"])
	}
	stage := stages[0].(map[string]any)
	events := stage["completion_events"].([]any)
	first := events[0].(map[string]any)
	if first["event_type"] != "AddClue" {
		t.Fatalf("tagged union lost its shape: %#v", first)
	}
	if _, ok := first["data"].(map[string]any); !ok {
		t.Fatalf("clue payload should stay a mapping in the tree: %#v", first["data"])
	}
	links := stage["next_stages"].([]any)
	cond := links[0].(map[string]any)["condition"].(map[string]any)
	if cond["condition_type"] != "HasItem" || cond["target_id"] != "torch" {
		t.Fatalf("condition shape: %#v", cond)
	}
}

func TestTreeYAML(t *testing.T) {
	data, err := TreeYAML(fixture())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if tree["id"] != "torch_hunt" || tree["is_main_quest"] != true {
		t.Fatalf("unexpected yaml tree: %#v", tree)
	}
	rewards := tree["rewards"].(map[string]any)
	if rewards["experience"] != 250 {
		t.Fatalf("rewards experience: %#v", rewards["experience"])
	}
}

// The text form and the tree form must stay representationally equivalent:
// the same scalars and collection lengths, with the documented exception of
// mapping-shaped event payloads degrading to strings in the text form.
func TestFormsEquivalent(t *testing.T) {
	q := fixture()
	text := Text(q)
	data, err := TreeJSON(q)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		t.Fatalf("decode: %v", err)
	}

	checks := map[string]string{
		`id: "torch_hunt"`:    "id",
		"is_main_quest: true": "is_main_quest",
		"experience: 250":     "rewards.experience",
	}
	for line := range checks {
		if !containsLine(text, line) {
			t.Fatalf("text form missing %q", line)
		}
	}

	stages := tree["stages"].([]any)
	links := 0
	for _, s := range stages {
		links += len(s.(map[string]any)["next_stages"].([]any))
	}
	if got := countPrefix(text, "- next_stage: "); got != links {
		t.Fatalf("link entry count mismatch: text %d, tree %d", got, links)
	}
	events := 0
	for _, s := range stages {
		events += len(s.(map[string]any)["completion_events"].([]any))
	}
	if got := countPrefix(text, "- event_type: "); got < events {
		t.Fatalf("event entry count mismatch: text %d, tree %d", got, events)
	}
}

func containsLine(text, line string) bool {
	for _, l := range splitLines(text) {
		if trimIndent(l) == line {
			return true
		}
	}
	return false
}

func countPrefix(text, prefix string) int {
	n := 0
	for _, l := range splitLines(text) {
		if len(trimIndent(l)) >= len(prefix) && trimIndent(l)[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func trimIndent(s string) string {
	for len(s) > 0 && s[0] == ' ' {
		s = s[1:]
	}
	return s
}
