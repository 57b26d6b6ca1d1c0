package quest

import (
	"errors"
	"testing"
)

// buildChain returns a quest with stages A, B, C where A links to B and B
// links to C.
func buildChain(t *testing.T) (*Editor, *Quest) {
	t.Helper()
	e := NewEditor()
	col := Collection{}
	q := e.CreateQuest(col)
	if err := e.RenameStage(q, "start", "A"); err != nil {
		t.Fatalf("rename start: %v", err)
	}
	b := e.AddStage(q)
	if err := e.RenameStage(q, b.ID, "B"); err != nil {
		t.Fatalf("rename B: %v", err)
	}
	c := e.AddStage(q)
	if err := e.RenameStage(q, c.ID, "C"); err != nil {
		t.Fatalf("rename C: %v", err)
	}
	if _, err := e.AddNextStageLink(q, "A"); err != nil {
		t.Fatalf("link A: %v", err)
	}
	// A's first eligible target is B; B's is A, so retarget by hand to C.
	link, err := e.AddNextStageLink(q, "B")
	if err != nil {
		t.Fatalf("link B: %v", err)
	}
	link.NextStage = "C"
	return e, q
}

func TestAddStage(t *testing.T) {
	e := NewEditor()
	col := Collection{}
	q := e.CreateQuest(col)

	s := e.AddStage(q)
	if len(q.Stages) != 2 {
		t.Fatalf("expected 2 stages, got %d", len(q.Stages))
	}
	if s.Status != StatusNotStarted {
		t.Fatalf("expected NotStarted, got %v", s.Status)
	}
	if len(s.Objectives) != 0 || len(s.Events) != 0 || len(s.NextStages) != 0 {
		t.Fatalf("expected empty defaults, got %#v", s)
	}
	if q.Stage(s.ID) == nil {
		t.Fatalf("stage id not resolvable: %q", s.ID)
	}

	seen := map[string]bool{"start": true, s.ID: true}
	for i := 0; i < 20; i++ {
		next := e.AddStage(q)
		if seen[next.ID] {
			t.Fatalf("duplicate stage id %q", next.ID)
		}
		seen[next.ID] = true
	}
}

func TestRenameStage(t *testing.T) {
	t.Run("propagates to link targets", func(t *testing.T) {
		e, q := buildChain(t)
		before := q.Stage("A").NextStages[0]
		if err := e.RenameStage(q, "B", "B2"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		link := q.Stage("A").NextStages[0]
		if link.NextStage != "B2" {
			t.Fatalf("link target not rewritten: %q", link.NextStage)
		}
		if link.ChoiceDescription != before.ChoiceDescription || link.Condition != before.Condition {
			t.Fatalf("rename altered other link fields")
		}
		if q.Stage("B2").NextStages[0].NextStage != "C" {
			t.Fatalf("unrelated link touched: %#v", q.Stage("B2").NextStages)
		}
	})

	t.Run("duplicate sibling id rejected", func(t *testing.T) {
		e, q := buildChain(t)
		if err := e.RenameStage(q, "B", "C"); !errors.Is(err, ErrDuplicateIdentifier) {
			t.Fatalf("expected ErrDuplicateIdentifier, got %v", err)
		}
	})

	t.Run("unknown stage", func(t *testing.T) {
		e, q := buildChain(t)
		if err := e.RenameStage(q, "missing", "X"); !errors.Is(err, ErrStageNotFound) {
			t.Fatalf("expected ErrStageNotFound, got %v", err)
		}
	})
}

func TestDeleteStage(t *testing.T) {
	t.Run("strips links to the deleted stage", func(t *testing.T) {
		e, q := buildChain(t)
		if err := e.DeleteStage(q, "B"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if q.Stage("B") != nil {
			t.Fatalf("stage B still present")
		}
		for i := range q.Stages {
			for _, link := range q.Stages[i].NextStages {
				if link.NextStage == "B" {
					t.Fatalf("dangling link to B in %q", q.Stages[i].ID)
				}
			}
		}
		if n := len(q.Stage("A").NextStages); n != 0 {
			t.Fatalf("A should have lost its only link, has %d", n)
		}
		if n := len(q.Stage("C").NextStages); n != 0 {
			t.Fatalf("C link count changed: %d", n)
		}
	})

	t.Run("last stage protected", func(t *testing.T) {
		e := NewEditor()
		col := Collection{}
		q := e.CreateQuest(col)
		if err := e.DeleteStage(q, "start"); !errors.Is(err, ErrLastStageDeletion) {
			t.Fatalf("expected ErrLastStageDeletion, got %v", err)
		}
		if len(q.Stages) != 1 || q.Stages[0].ID != "start" {
			t.Fatalf("quest changed by rejected delete: %#v", q.StageIDs())
		}
	})

	t.Run("missing id is a no-op", func(t *testing.T) {
		e, q := buildChain(t)
		if err := e.DeleteStage(q, "nope"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(q.Stages) != 3 {
			t.Fatalf("stage count changed: %d", len(q.Stages))
		}
	})

	t.Run("declined confirmation aborts", func(t *testing.T) {
		e, q := buildChain(t)
		e.Confirm = func(string) bool { return false }
		if err := e.DeleteStage(q, "B"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if q.Stage("B") == nil {
			t.Fatalf("stage removed despite declined confirmation")
		}
	})
}

// The end-to-end authoring scenario: create, grow, link, rename, and shrink
// a quest while the graph stays referentially intact throughout.
func TestAuthoringScenario(t *testing.T) {
	e := NewEditor()
	col := Collection{}
	q := e.CreateQuest(col)

	s2 := e.AddStage(q)
	link, err := e.AddNextStageLink(q, "start")
	if err != nil {
		t.Fatalf("link: %v", err)
	}
	if link.NextStage != s2.ID {
		t.Fatalf("expected link to %q, got %q", s2.ID, link.NextStage)
	}
	if err := e.SetLinkCondition(q.Stage("start"), 0, CondHasItem); err != nil {
		t.Fatalf("set condition: %v", err)
	}
	q.Stage("start").NextStages[0].Condition.TargetID = "torch"

	if err := e.RenameStage(q, s2.ID, "finale"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if got := q.Stage("start").NextStages[0].NextStage; got != "finale" {
		t.Fatalf("link target after rename: %q", got)
	}

	if err := e.DeleteStage(q, "finale"); err != nil {
		t.Fatalf("delete finale: %v", err)
	}
	if len(q.Stages) != 1 || q.Stages[0].ID != "start" {
		t.Fatalf("expected only start to remain, got %#v", q.StageIDs())
	}
	if n := len(q.Stage("start").NextStages); n != 0 {
		t.Fatalf("start should have zero outgoing links, has %d", n)
	}
}
