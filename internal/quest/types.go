// Package quest holds the quest content model: a quest is a directed graph
// of stages connected by conditionally gated links, each stage carrying
// objectives and completion events. The package owns the mutation
// operations that keep the graph referentially intact; it never owns
// storage — every operation works on a caller-supplied collection.
package quest

// Importance classes a quest for journal grouping.
type Importance string

const (
	ImportanceMain Importance = "Main"
	ImportanceSide Importance = "Side"
	ImportanceMisc Importance = "Misc"
)

// StageStatus is the authoring-time status of a stage.
type StageStatus string

const (
	StatusNotStarted StageStatus = "NotStarted"
	StatusInProgress StageStatus = "InProgress"
	StatusCompleted  StageStatus = "Completed"
	StatusFailed     StageStatus = "Failed"
)

// Quest is the top-level content unit. Its ID doubles as the collection
// key; renaming re-keys the collection entry rather than editing in place.
// Field order matches the export key order and is part of the format
// contract.
type Quest struct {
	ID               string     `json:"id" yaml:"id"`
	Title            string     `json:"title" yaml:"title"`
	Description      string     `json:"description" yaml:"description"`
	ShortDescription string     `json:"short_description" yaml:"short_description"`
	Importance       Importance `json:"importance" yaml:"importance"`
	// IsHidden and IsMainQuest are independent of Importance; neither is
	// derived from the other.
	IsHidden         bool     `json:"is_hidden" yaml:"is_hidden"`
	IsMainQuest      bool     `json:"is_main_quest" yaml:"is_main_quest"`
	RelatedNPCs      []string `json:"related_npcs" yaml:"related_npcs"`
	RelatedLocations []string `json:"related_locations" yaml:"related_locations"`
	Stages           []Stage  `json:"stages" yaml:"stages"`
	Rewards          Rewards  `json:"rewards" yaml:"rewards"`
}

// Stage is a node in the quest progression graph. Stage IDs are unique
// within their parent quest; link targets reference them directly.
type Stage struct {
	ID           string            `json:"id" yaml:"id"`
	Description  string            `json:"description" yaml:"description"`
	Notification string            `json:"notification" yaml:"notification"`
	Status       StageStatus       `json:"status" yaml:"status"`
	Objectives   []Objective       `json:"objectives" yaml:"objectives"`
	Events       []CompletionEvent `json:"completion_events" yaml:"completion_events"`
	NextStages   []NextStageLink   `json:"next_stages" yaml:"next_stages"`
}

// Objective is a task within a stage. Objective ID uniqueness is an
// authoring responsibility, not structurally enforced. Its own event list
// fires when the objective individually completes, distinct from the
// stage-level list.
type Objective struct {
	ID            string   `json:"id" yaml:"id"`
	Description   string   `json:"description" yaml:"description"`
	IsCompleted   bool     `json:"is_completed" yaml:"is_completed"`
	IsOptional    bool     `json:"is_optional" yaml:"is_optional"`
	RequiredClues []string `json:"required_clues" yaml:"required_clues"`
	RequiredItems []string `json:"required_items" yaml:"required_items"`
	// Nil means no location / NPC interaction requirement.
	RequiredLocation *string           `json:"required_location" yaml:"required_location"`
	RequiredNPC      *string           `json:"required_npc_interaction" yaml:"required_npc_interaction"`
	Events           []CompletionEvent `json:"completion_events" yaml:"completion_events"`
}

// NextStageLink is a directed edge to another stage of the same quest,
// optionally gated by a condition.
type NextStageLink struct {
	NextStage         string     `json:"next_stage" yaml:"next_stage"`
	ChoiceDescription *string    `json:"choice_description" yaml:"choice_description"`
	Condition         *Condition `json:"condition" yaml:"condition"`
}

// Rewards is granted when the quest completes. The skill delta convention
// is -10..10 and the relationship delta convention -100..100; neither is
// enforced here.
type Rewards struct {
	Experience          int            `json:"experience" yaml:"experience"`
	Items               []ItemReward   `json:"items" yaml:"items"`
	Skills              map[string]int `json:"skill_rewards" yaml:"skill_rewards"`
	RelationshipChanges map[string]int `json:"relationship_changes" yaml:"relationship_changes"`
	UnlockedLocations   []string       `json:"unlocked_locations" yaml:"unlocked_locations"`
	UnlockedDialogues   []string       `json:"unlocked_dialogues" yaml:"unlocked_dialogues"`
}

// ItemReward is a single item grant.
type ItemReward struct {
	ID          string         `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	Effects     map[string]any `json:"effects" yaml:"effects"`
}

// Collection is the host-owned quest collection, keyed by quest ID. The
// core mutates the handle it is given and never retains it between calls.
type Collection map[string]*Quest

// Stage returns the stage with the given ID, or nil.
func (q *Quest) Stage(id string) *Stage {
	for i := range q.Stages {
		if q.Stages[i].ID == id {
			return &q.Stages[i]
		}
	}
	return nil
}

// StageIDs returns the quest's stage IDs in graph order.
func (q *Quest) StageIDs() []string {
	ids := make([]string, 0, len(q.Stages))
	for i := range q.Stages {
		ids = append(ids, q.Stages[i].ID)
	}
	return ids
}

// NewItemReward builds an item reward whose display name defaults to the
// item ID.
func NewItemReward(id string) ItemReward {
	return ItemReward{ID: id, Name: id, Effects: map[string]any{}}
}
