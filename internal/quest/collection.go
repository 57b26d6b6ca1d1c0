package quest

import "fmt"

// QuestPatch is a partial update for a quest's scalar and collection
// fields. Nil fields are left unchanged; non-nil fields are set, so the
// caller's intent is explicit per field and overlapping patches cannot
// silently clobber each other.
type QuestPatch struct {
	Title            *string
	Description      *string
	ShortDescription *string
	Importance       *Importance
	IsHidden         *bool
	IsMainQuest      *bool
	RelatedNPCs      *[]string
	RelatedLocations *[]string
	Rewards          *RewardsPatch
}

// RewardsPatch updates reward fields individually; updating Experience
// alone must not touch Items or any other field.
type RewardsPatch struct {
	Experience          *int
	Items               *[]ItemReward
	Skills              *map[string]int
	RelationshipChanges *map[string]int
	UnlockedLocations   *[]string
	UnlockedDialogues   *[]string
}

// CreateQuest allocates a quest with a fresh ID that cannot collide with
// an existing collection key, a single default "start" stage, and a zeroed
// reward set, then inserts it into the collection.
func (e *Editor) CreateQuest(col Collection) *Quest {
	id := freshID(e.IDs, "quest", func(candidate string) bool {
		_, exists := col[candidate]
		return exists
	})
	q := &Quest{
		ID:               id,
		Importance:       ImportanceSide,
		RelatedNPCs:      []string{},
		RelatedLocations: []string{},
		Stages:           []Stage{newStage("start")},
		Rewards: Rewards{
			Items:               []ItemReward{},
			Skills:              map[string]int{},
			RelationshipChanges: map[string]int{},
			UnlockedLocations:   []string{},
			UnlockedDialogues:   []string{},
		},
	}
	col[id] = q
	return q
}

// RenameQuest validates the new ID and re-keys the collection entry. Quest
// renames deliberately skip the duplicate check against sibling quest IDs;
// only the syntax rules apply. An unknown old ID is QuestNotFound.
func (e *Editor) RenameQuest(col Collection, oldID, newID string) error {
	q, ok := col[oldID]
	if !ok {
		return ErrQuestNotFound
	}
	if err := ValidateIdentifier(newID, nil, oldID); err != nil {
		return err
	}
	if newID == oldID {
		return nil
	}
	delete(col, oldID)
	q.ID = newID
	col[newID] = q
	return nil
}

// DeleteQuest removes a quest from the collection. Deleting an absent ID
// is a no-op; deletion is idempotent by design. Returns whether an entry
// was removed.
func (e *Editor) DeleteQuest(col Collection, id string) bool {
	if _, ok := col[id]; !ok {
		return false
	}
	if !e.confirm(fmt.Sprintf("Delete quest %q?", id)) {
		return false
	}
	delete(col, id)
	return true
}

// UpdateQuest shallow-merges the patch into the identified quest.
func (e *Editor) UpdateQuest(col Collection, id string, patch QuestPatch) error {
	q, ok := col[id]
	if !ok {
		return ErrQuestNotFound
	}
	if patch.Title != nil {
		q.Title = *patch.Title
	}
	if patch.Description != nil {
		q.Description = *patch.Description
	}
	if patch.ShortDescription != nil {
		q.ShortDescription = *patch.ShortDescription
	}
	if patch.Importance != nil {
		q.Importance = *patch.Importance
	}
	if patch.IsHidden != nil {
		q.IsHidden = *patch.IsHidden
	}
	if patch.IsMainQuest != nil {
		q.IsMainQuest = *patch.IsMainQuest
	}
	if patch.RelatedNPCs != nil {
		q.RelatedNPCs = *patch.RelatedNPCs
	}
	if patch.RelatedLocations != nil {
		q.RelatedLocations = *patch.RelatedLocations
	}
	if patch.Rewards != nil {
		applyRewardsPatch(&q.Rewards, patch.Rewards)
	}
	return nil
}

func applyRewardsPatch(r *Rewards, patch *RewardsPatch) {
	if patch.Experience != nil {
		r.Experience = *patch.Experience
	}
	if patch.Items != nil {
		r.Items = *patch.Items
	}
	if patch.Skills != nil {
		r.Skills = *patch.Skills
	}
	if patch.RelationshipChanges != nil {
		r.RelationshipChanges = *patch.RelationshipChanges
	}
	if patch.UnlockedLocations != nil {
		r.UnlockedLocations = *patch.UnlockedLocations
	}
	if patch.UnlockedDialogues != nil {
		r.UnlockedDialogues = *patch.UnlockedDialogues
	}
}
