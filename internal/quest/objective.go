package quest

// ObjectivePatch is a partial update for an objective. The two nullable
// requirement fields use a Set flag plus value so "clear the requirement"
// and "leave unchanged" stay distinguishable.
type ObjectivePatch struct {
	ID            *string
	Description   *string
	IsCompleted   *bool
	IsOptional    *bool
	RequiredClues *[]string
	RequiredItems *[]string

	SetRequiredLocation bool
	RequiredLocation    *string
	SetRequiredNPC      bool
	RequiredNPC         *string
}

// AddObjective appends an objective with a fresh ID and empty defaults.
// Objective ID uniqueness is not enforced; the fresh ID only avoids
// colliding with siblings in the same stage as a convenience.
func (e *Editor) AddObjective(stage *Stage) *Objective {
	id := freshID(e.IDs, "objective", func(candidate string) bool {
		for i := range stage.Objectives {
			if stage.Objectives[i].ID == candidate {
				return true
			}
		}
		return false
	})
	stage.Objectives = append(stage.Objectives, Objective{
		ID:            id,
		RequiredClues: []string{},
		RequiredItems: []string{},
		Events:        []CompletionEvent{},
	})
	return &stage.Objectives[len(stage.Objectives)-1]
}

// UpdateObjective patches the objective at the given position.
func (e *Editor) UpdateObjective(stage *Stage, index int, patch ObjectivePatch) error {
	if index < 0 || index >= len(stage.Objectives) {
		return ErrIndexOutOfRange
	}
	obj := &stage.Objectives[index]
	if patch.ID != nil {
		obj.ID = *patch.ID
	}
	if patch.Description != nil {
		obj.Description = *patch.Description
	}
	if patch.IsCompleted != nil {
		obj.IsCompleted = *patch.IsCompleted
	}
	if patch.IsOptional != nil {
		obj.IsOptional = *patch.IsOptional
	}
	if patch.RequiredClues != nil {
		obj.RequiredClues = *patch.RequiredClues
	}
	if patch.RequiredItems != nil {
		obj.RequiredItems = *patch.RequiredItems
	}
	if patch.SetRequiredLocation {
		obj.RequiredLocation = patch.RequiredLocation
	}
	if patch.SetRequiredNPC {
		obj.RequiredNPC = patch.RequiredNPC
	}
	return nil
}

// DeleteObjective removes the objective at the given position.
func (e *Editor) DeleteObjective(stage *Stage, index int) error {
	if index < 0 || index >= len(stage.Objectives) {
		return ErrIndexOutOfRange
	}
	stage.Objectives = append(stage.Objectives[:index], stage.Objectives[index+1:]...)
	return nil
}

// AddObjectiveEvent appends a default-payload completion event to the
// objective's own list, the one that fires when the objective itself
// completes rather than the whole stage.
func (e *Editor) AddObjectiveEvent(stage *Stage, index int, t EventType) (*CompletionEvent, error) {
	if index < 0 || index >= len(stage.Objectives) {
		return nil, ErrIndexOutOfRange
	}
	obj := &stage.Objectives[index]
	obj.Events = append(obj.Events, NewEvent(t))
	return &obj.Events[len(obj.Events)-1], nil
}
