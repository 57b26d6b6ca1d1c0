package quest

import "fmt"

func newStage(id string) Stage {
	return Stage{
		ID:         id,
		Status:     StatusNotStarted,
		Objectives: []Objective{},
		Events:     []CompletionEvent{},
		NextStages: []NextStageLink{},
	}
}

// AddStage appends a fresh stage with an ID unique within the quest and
// the empty defaults, returning a pointer into the quest's stage slice.
func (e *Editor) AddStage(q *Quest) *Stage {
	id := freshID(e.IDs, "stage", func(candidate string) bool {
		return q.Stage(candidate) != nil
	})
	q.Stages = append(q.Stages, newStage(id))
	return &q.Stages[len(q.Stages)-1]
}

// RenameStage validates the new ID against the sibling stage IDs, renames
// the stage, and rewrites every NextStageLink across the quest that
// targeted the old ID. Link targets store stage IDs directly, so without
// this propagation a rename would leave them dangling.
func (e *Editor) RenameStage(q *Quest, oldID, newID string) error {
	stage := q.Stage(oldID)
	if stage == nil {
		return ErrStageNotFound
	}
	if err := ValidateIdentifier(newID, q.StageIDs(), oldID); err != nil {
		return err
	}
	if newID == oldID {
		return nil
	}
	stage.ID = newID
	for i := range q.Stages {
		for j := range q.Stages[i].NextStages {
			if q.Stages[i].NextStages[j].NextStage == oldID {
				q.Stages[i].NextStages[j].NextStage = newID
			}
		}
	}
	return nil
}

// DeleteStage removes a stage and every link in the remaining stages whose
// target was the deleted ID, so no dangling transition survives. Deleting
// the only stage is rejected with ErrLastStageDeletion; a quest always
// keeps at least one stage. Deleting an absent ID is a no-op.
func (e *Editor) DeleteStage(q *Quest, id string) error {
	idx := -1
	for i := range q.Stages {
		if q.Stages[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}
	if len(q.Stages) == 1 {
		return ErrLastStageDeletion
	}
	if !e.confirm(fmt.Sprintf("Delete stage %q?", id)) {
		return nil
	}
	q.Stages = append(q.Stages[:idx], q.Stages[idx+1:]...)
	for i := range q.Stages {
		links := q.Stages[i].NextStages[:0]
		for _, link := range q.Stages[i].NextStages {
			if link.NextStage != id {
				links = append(links, link)
			}
		}
		q.Stages[i].NextStages = links
	}
	return nil
}

// UpdateStage sets the stage's scalar fields; nil patch fields are left
// unchanged.
func (e *Editor) UpdateStage(q *Quest, id string, patch StagePatch) error {
	stage := q.Stage(id)
	if stage == nil {
		return ErrStageNotFound
	}
	if patch.Description != nil {
		stage.Description = *patch.Description
	}
	if patch.Notification != nil {
		stage.Notification = *patch.Notification
	}
	if patch.Status != nil {
		stage.Status = *patch.Status
	}
	return nil
}

// StagePatch is a partial update for a stage's scalar fields.
type StagePatch struct {
	Description  *string
	Notification *string
	Status       *StageStatus
}

// AddStageEvent appends a default-payload completion event to the stage's
// own event list, the one that fires when the stage completes.
func (e *Editor) AddStageEvent(stage *Stage, t EventType) *CompletionEvent {
	stage.Events = append(stage.Events, NewEvent(t))
	return &stage.Events[len(stage.Events)-1]
}

// DeleteStageEvent removes the event at the given position; out-of-range
// positions are a no-op, matching delete-by-ID idempotence elsewhere.
func (e *Editor) DeleteStageEvent(stage *Stage, index int) {
	if index < 0 || index >= len(stage.Events) {
		return
	}
	stage.Events = append(stage.Events[:index], stage.Events[index+1:]...)
}
