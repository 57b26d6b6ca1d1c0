package dialogue

import (
	"reflect"
	"testing"
)

const corpusYAML = `node_c:
  speaker: Guard
  text: Halt!
  options:
    - text: I seek the torch.
      consequences:
        - event_type: StartQuest
          data: torch_hunt
    - text: Never mind.
node_a:
  speaker: Smith
  text: The forge is cold.
  options:
    - text: I found your hammer.
      consequences:
        - event_type: AdvanceQuest
          data: [torch_hunt, finale]
    - text: The torch is lost.
      consequences:
        - event_type: FailQuest
          data: torch_hunt
node_b:
  speaker: ""
  text: A faceless voice.
  options:
    - text: Who goes there?
      consequences:
        - event_type: CompleteQuestObjective
          data: [other_quest, find_torch]
`

func mustParse(t *testing.T) *Corpus {
	t.Helper()
	c, err := Parse([]byte(corpusYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return c
}

func TestParseKeepsDocumentOrder(t *testing.T) {
	c := mustParse(t)
	if !reflect.DeepEqual(c.IDs, []string{"node_c", "node_a", "node_b"}) {
		t.Fatalf("unexpected order: %#v", c.IDs)
	}
	if c.Nodes["node_c"].Speaker != "Guard" {
		t.Fatalf("node_c not decoded: %#v", c.Nodes["node_c"])
	}
}

func TestSpeakers(t *testing.T) {
	c := mustParse(t)
	got := Speakers(c)
	if !reflect.DeepEqual(got, []string{"Guard", "Smith"}) {
		t.Fatalf("expected sorted non-blank speakers, got %#v", got)
	}
}

func TestFindRelated(t *testing.T) {
	c := mustParse(t)

	t.Run("matches all four effect kinds by quest id", func(t *testing.T) {
		got := FindRelated(c, "torch_hunt")
		want := []Related{
			{NodeID: "node_c", NodeText: "Halt!", Speaker: "Guard", OptionText: "I seek the torch."},
			{NodeID: "node_a", NodeText: "The forge is cold.", Speaker: "Smith", OptionText: "I found your hammer."},
			{NodeID: "node_a", NodeText: "The forge is cold.", Speaker: "Smith", OptionText: "The torch is lost."},
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("unexpected results:\n%#v\nwant:\n%#v", got, want)
		}
	})

	t.Run("pair payload matches on first element only", func(t *testing.T) {
		got := FindRelated(c, "find_torch")
		if len(got) != 0 {
			t.Fatalf("second pair element must not match: %#v", got)
		}
		got = FindRelated(c, "other_quest")
		if len(got) != 1 || got[0].NodeID != "node_b" {
			t.Fatalf("expected the node_b option, got %#v", got)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		if got := FindRelated(c, "missing"); len(got) != 0 {
			t.Fatalf("expected no results, got %#v", got)
		}
	})
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte("- just\n- a\n- list\n")); err == nil {
		t.Fatalf("expected an error for a non-mapping root")
	}
	c, err := Parse(nil)
	if err != nil {
		t.Fatalf("empty input: %v", err)
	}
	if len(c.IDs) != 0 {
		t.Fatalf("expected empty corpus, got %#v", c.IDs)
	}
}
