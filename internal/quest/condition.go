package quest

// Condition gates a NextStageLink. It is a closed tagged union over the
// known condition types; TargetID and Value carry the per-variant payload
// (Value is only meaningful for the two threshold variants).
type Condition struct {
	Type     ConditionType `json:"condition_type" yaml:"condition_type"`
	TargetID string        `json:"target_id" yaml:"target_id"`
	Value    int           `json:"value" yaml:"value"`
}

type ConditionType string

const (
	CondHasItem         ConditionType = "HasItem"
	CondHasClue         ConditionType = "HasClue"
	CondLocationVisited ConditionType = "LocationVisited"
	CondNPCRelationship ConditionType = "NPCRelationship"
	CondSkillValue      ConditionType = "SkillValue"
	CondDialogueChoice  ConditionType = "DialogueChoice"
)

// ConditionTypes lists the known variants in declaration order, for
// selector population.
func ConditionTypes() []ConditionType {
	return []ConditionType{
		CondHasItem,
		CondHasClue,
		CondLocationVisited,
		CondNPCRelationship,
		CondSkillValue,
		CondDialogueChoice,
	}
}

// NewCondition returns the zeroed default payload for a condition type.
func NewCondition(t ConditionType) Condition {
	return Condition{Type: t}
}

// SetCondition replaces the link's condition with the zeroed defaults of
// the given type. Switching type is lossy: any prior payload is discarded,
// never carried across variants.
func SetCondition(link *NextStageLink, t ConditionType) {
	c := NewCondition(t)
	link.Condition = &c
}

// ClearCondition removes the link's gating condition.
func ClearCondition(link *NextStageLink) {
	link.Condition = nil
}
