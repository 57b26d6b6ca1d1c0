package quest

// AddNextStageLink links the stage to the first eligible target: the
// lowest-indexed stage in the quest that is not the stage itself and not
// already a target of one of its links. The link starts with no condition
// and no choice description. When every other stage is already linked,
// ErrNoEligibleTarget is returned.
func (e *Editor) AddNextStageLink(q *Quest, stageID string) (*NextStageLink, error) {
	stage := q.Stage(stageID)
	if stage == nil {
		return nil, ErrStageNotFound
	}
	linked := make(map[string]bool, len(stage.NextStages))
	for _, link := range stage.NextStages {
		linked[link.NextStage] = true
	}
	for i := range q.Stages {
		target := q.Stages[i].ID
		if target == stageID || linked[target] {
			continue
		}
		stage.NextStages = append(stage.NextStages, NextStageLink{NextStage: target})
		return &stage.NextStages[len(stage.NextStages)-1], nil
	}
	return nil, ErrNoEligibleTarget
}

// SetLinkChoice sets or clears (nil) the link's human-readable choice
// description.
func (e *Editor) SetLinkChoice(stage *Stage, index int, choice *string) error {
	if index < 0 || index >= len(stage.NextStages) {
		return ErrIndexOutOfRange
	}
	stage.NextStages[index].ChoiceDescription = choice
	return nil
}

// SetLinkCondition resets the link's condition to the zeroed defaults of
// the given type; an empty type clears the condition entirely.
func (e *Editor) SetLinkCondition(stage *Stage, index int, t ConditionType) error {
	if index < 0 || index >= len(stage.NextStages) {
		return ErrIndexOutOfRange
	}
	if t == "" {
		ClearCondition(&stage.NextStages[index])
		return nil
	}
	SetCondition(&stage.NextStages[index], t)
	return nil
}

// DeleteNextStageLink removes the link to the given target; absent targets
// are a no-op.
func (e *Editor) DeleteNextStageLink(stage *Stage, targetID string) {
	links := stage.NextStages[:0]
	for _, link := range stage.NextStages {
		if link.NextStage != targetID {
			links = append(links, link)
		}
	}
	stage.NextStages = links
}
