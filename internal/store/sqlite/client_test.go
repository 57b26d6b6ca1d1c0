package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"questforge/internal/quest"
)

func openTestStore(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()
	c, err := New(ctx, "sqlite://"+filepath.Join(t.TempDir(), "quests.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { c.Close(ctx) })
	if err := c.EnsureSchema(ctx); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return c
}

func TestClientRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := openTestStore(t)

	e := quest.NewEditor()
	col := quest.Collection{}
	q := e.CreateQuest(col)
	q.Title = "The Torch Hunt"
	q.Stages[0].Events = append(q.Stages[0].Events, quest.NewEvent(quest.EventModifySkill))

	if err := c.Put(ctx, q); err != nil {
		t.Fatalf("put: %v", err)
	}

	loaded, err := c.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got, ok := loaded[q.ID]
	if !ok {
		t.Fatalf("quest missing after load: %#v", loaded)
	}
	if got.Title != "The Torch Hunt" || len(got.Stages) != 1 {
		t.Fatalf("unexpected quest: %#v", got)
	}
	if len(got.Stages[0].Events) != 1 || got.Stages[0].Events[0].Type != quest.EventModifySkill {
		t.Fatalf("events lost: %#v", got.Stages[0].Events)
	}

	if err := c.Rename(ctx, q.ID, "torch_hunt"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	renamed, err := c.Get(ctx, "torch_hunt")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renamed == nil || renamed.ID != "torch_hunt" {
		t.Fatalf("rename not persisted: %#v", renamed)
	}
	if old, err := c.Get(ctx, q.ID); err != nil || old != nil {
		t.Fatalf("old id should be gone: %#v, %v", old, err)
	}

	if err := c.Delete(ctx, "torch_hunt"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if gone, err := c.Get(ctx, "torch_hunt"); err != nil || gone != nil {
		t.Fatalf("quest should be deleted: %#v, %v", gone, err)
	}
	// Deleting again is harmless.
	if err := c.Delete(ctx, "torch_hunt"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}
