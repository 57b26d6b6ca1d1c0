package mcp

import (
	"context"
	"fmt"
	"sort"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"questforge/internal/dialogue"
	"questforge/internal/export"
	"questforge/internal/quest"
	"questforge/internal/validate"
)

type QuestRefInput struct {
	Quest string `json:"quest" jsonschema:"quest id"`
}

type StageRefInput struct {
	Quest string `json:"quest" jsonschema:"quest id"`
	Stage string `json:"stage" jsonschema:"stage id"`
}

type RenameInput struct {
	Quest string `json:"quest" jsonschema:"quest id"`
	NewID string `json:"new_id" jsonschema:"new identifier"`
}

type RenameStageInput struct {
	Quest string `json:"quest" jsonschema:"quest id"`
	Stage string `json:"stage" jsonschema:"current stage id"`
	NewID string `json:"new_id" jsonschema:"new identifier"`
}

type UpdateQuestInput struct {
	Quest            string    `json:"quest" jsonschema:"quest id"`
	Title            *string   `json:"title,omitempty"`
	Description      *string   `json:"description,omitempty"`
	ShortDescription *string   `json:"short_description,omitempty"`
	Importance       *string   `json:"importance,omitempty" jsonschema:"Main, Side, or Misc"`
	IsHidden         *bool     `json:"is_hidden,omitempty"`
	IsMainQuest      *bool     `json:"is_main_quest,omitempty"`
	RelatedNPCs      *[]string `json:"related_npcs,omitempty"`
	RelatedLocations *[]string `json:"related_locations,omitempty"`

	// Reward fields patch individually; sending experience alone leaves
	// the item list and the other reward fields untouched.
	Experience          *int                `json:"experience,omitempty"`
	Items               *[]quest.ItemReward `json:"items,omitempty"`
	SkillRewards        *map[string]int     `json:"skill_rewards,omitempty"`
	RelationshipChanges *map[string]int     `json:"relationship_changes,omitempty"`
	UnlockedLocations   *[]string           `json:"unlocked_locations,omitempty"`
	UnlockedDialogues   *[]string           `json:"unlocked_dialogues,omitempty"`
}

type UpdateStageInput struct {
	Quest        string  `json:"quest" jsonschema:"quest id"`
	Stage        string  `json:"stage" jsonschema:"stage id"`
	Description  *string `json:"description,omitempty"`
	Notification *string `json:"notification,omitempty"`
	Status       *string `json:"status,omitempty" jsonschema:"NotStarted, InProgress, Completed, or Failed"`
}

type ObjectiveRefInput struct {
	Quest string `json:"quest" jsonschema:"quest id"`
	Stage string `json:"stage" jsonschema:"stage id"`
	Index int    `json:"index" jsonschema:"objective position within the stage"`
}

type UpdateObjectiveInput struct {
	Quest         string    `json:"quest" jsonschema:"quest id"`
	Stage         string    `json:"stage" jsonschema:"stage id"`
	Index         int       `json:"index" jsonschema:"objective position within the stage"`
	ID            *string   `json:"id,omitempty"`
	Description   *string   `json:"description,omitempty"`
	IsCompleted   *bool     `json:"is_completed,omitempty"`
	IsOptional    *bool     `json:"is_optional,omitempty"`
	RequiredClues *[]string `json:"required_clues,omitempty"`
	RequiredItems *[]string `json:"required_items,omitempty"`

	// Location and NPC requirements are nullable: set clear_* to drop one.
	RequiredLocation *string `json:"required_location,omitempty"`
	ClearLocation    bool    `json:"clear_location,omitempty"`
	RequiredNPC      *string `json:"required_npc_interaction,omitempty"`
	ClearNPC         bool    `json:"clear_npc_interaction,omitempty"`
}

type AddEventInput struct {
	Quest     string `json:"quest" jsonschema:"quest id"`
	Stage     string `json:"stage" jsonschema:"stage id"`
	Scope     string `json:"scope" jsonschema:"stage or objective"`
	Objective int    `json:"objective,omitempty" jsonschema:"objective position when scope is objective"`
	EventType string `json:"event_type" jsonschema:"completion event type"`
}

type DeleteEventInput struct {
	Quest string `json:"quest" jsonschema:"quest id"`
	Stage string `json:"stage" jsonschema:"stage id"`
	Index int    `json:"index" jsonschema:"event position within the stage"`
}

type SetChoiceInput struct {
	Quest  string `json:"quest" jsonschema:"quest id"`
	Stage  string `json:"stage" jsonschema:"stage id"`
	Link   int    `json:"link" jsonschema:"link position within the stage"`
	Choice string `json:"choice,omitempty" jsonschema:"choice text shown to the player"`
	Clear  bool   `json:"clear,omitempty" jsonschema:"remove the choice text"`
}

type SetConditionInput struct {
	Quest         string `json:"quest" jsonschema:"quest id"`
	Stage         string `json:"stage" jsonschema:"stage id"`
	Link          int    `json:"link" jsonschema:"link position within the stage"`
	ConditionType string `json:"condition_type" jsonschema:"condition type; empty clears the condition"`
}

type DeleteLinkInput struct {
	Quest  string `json:"quest" jsonschema:"quest id"`
	Stage  string `json:"stage" jsonschema:"stage id"`
	Target string `json:"target" jsonschema:"target stage id of the link to remove"`
}

type ExportInput struct {
	Quest  string `json:"quest" jsonschema:"quest id"`
	Format string `json:"format,omitempty" jsonschema:"text (default) or tree"`
}

type EmptyInput struct{}

type QuestSummary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Importance string `json:"importance"`
	Stages     int    `json:"stages"`
}

type ListQuestsOutput struct {
	Quests []QuestSummary `json:"quests"`
}

type QuestOutput struct {
	Quest *quest.Quest `json:"quest"`
}

type StageOutput struct {
	Quest string       `json:"quest"`
	Stage *quest.Stage `json:"stage"`
}

type OKOutput struct {
	ID string `json:"id,omitempty"`
}

type ExportOutput struct {
	Content string `json:"content"`
}

type SpeakersOutput struct {
	Speakers []string `json:"speakers"`
}

type RelatedOutput struct {
	Related []dialogue.Related `json:"related"`
}

type IssueOutput struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Quest    string `json:"quest"`
	Stage    string `json:"stage,omitempty"`
}

type ValidateOutput struct {
	Issues []IssueOutput `json:"issues"`
}

type VocabularyOutput struct {
	EventTypes     []string `json:"event_types"`
	ConditionTypes []string `json:"condition_types"`
	Importance     []string `json:"importance"`
	StageStatuses  []string `json:"stage_statuses"`
	Skills         []string `json:"skills"`
	Items          []string `json:"items"`
	Locations      []string `json:"locations"`
	Speakers       []string `json:"speakers"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_quests",
		Description: "List all quests in the collection",
	}, s.handleListQuests)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_quest",
		Description: "Retrieve a quest with its full stage graph",
	}, s.handleGetQuest)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "create_quest",
		Description: "Create a quest with a single start stage",
	}, s.handleCreateQuest)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "rename_quest",
		Description: "Change a quest's identifier",
	}, s.handleRenameQuest)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "delete_quest",
		Description: "Delete a quest; deleting an absent id is a no-op",
	}, s.handleDeleteQuest)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "update_quest",
		Description: "Update quest fields; omitted fields are left unchanged",
	}, s.handleUpdateQuest)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "add_stage",
		Description: "Append a new empty stage to a quest",
	}, s.handleAddStage)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "rename_stage",
		Description: "Rename a stage and rewrite links that targeted it",
	}, s.handleRenameStage)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "delete_stage",
		Description: "Delete a stage and strip links to it; the last stage cannot be deleted",
	}, s.handleDeleteStage)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "update_stage",
		Description: "Update stage fields; omitted fields are left unchanged",
	}, s.handleUpdateStage)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "add_objective",
		Description: "Append an empty objective to a stage",
	}, s.handleAddObjective)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "update_objective",
		Description: "Update an objective by position",
	}, s.handleUpdateObjective)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "delete_objective",
		Description: "Delete an objective by position",
	}, s.handleDeleteObjective)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "add_completion_event",
		Description: "Append a default-payload completion event to a stage or objective",
	}, s.handleAddEvent)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "delete_completion_event",
		Description: "Remove a stage-level completion event by position; out-of-range is a no-op",
	}, s.handleDeleteEvent)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "add_next_stage_link",
		Description: "Link a stage to the first eligible sibling stage",
	}, s.handleAddLink)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "set_link_choice",
		Description: "Set or clear the choice text on a link",
	}, s.handleSetChoice)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "set_link_condition",
		Description: "Reset a link's condition to the defaults of a condition type",
	}, s.handleSetCondition)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "delete_next_stage_link",
		Description: "Remove a stage's link to a target stage",
	}, s.handleDeleteLink)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "export_quest",
		Description: "Export a quest as line-oriented text or the structured tree",
	}, s.handleExport)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_speakers",
		Description: "List distinct NPC speakers from the dialogue corpus",
	}, s.handleSpeakers)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "find_related_dialogue",
		Description: "Find dialogue options whose consequences touch a quest",
	}, s.handleRelated)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "validate_quests",
		Description: "Run authoring lint over the whole collection",
	}, s.handleValidate)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_vocabulary",
		Description: "List the event/condition types, catalogs, and speakers available to editors",
	}, s.handleVocabulary)
}

// withQuest loads the collection, runs fn against the named quest, and
// persists it on success.
func (s *Server) withQuest(ctx context.Context, id string, fn func(col quest.Collection, q *quest.Quest) error) (*quest.Quest, error) {
	col, err := s.db.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	q, ok := col[id]
	if !ok {
		return nil, quest.ErrQuestNotFound
	}
	if err := fn(col, q); err != nil {
		return nil, err
	}
	if err := s.db.Put(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *Server) withStage(ctx context.Context, questID, stageID string, fn func(q *quest.Quest, st *quest.Stage) error) (*quest.Quest, error) {
	return s.withQuest(ctx, questID, func(col quest.Collection, q *quest.Quest) error {
		st := q.Stage(stageID)
		if st == nil {
			return quest.ErrStageNotFound
		}
		return fn(q, st)
	})
}

func (s *Server) handleListQuests(ctx context.Context, req *sdk.CallToolRequest, input EmptyInput) (*sdk.CallToolResult, ListQuestsOutput, error) {
	col, err := s.db.LoadAll(ctx)
	if err != nil {
		return nil, ListQuestsOutput{}, err
	}
	out := make([]QuestSummary, 0, len(col))
	for _, id := range sortedIDs(col) {
		q := col[id]
		out = append(out, QuestSummary{
			ID:         q.ID,
			Title:      q.Title,
			Importance: string(q.Importance),
			Stages:     len(q.Stages),
		})
	}
	return nil, ListQuestsOutput{Quests: out}, nil
}

func (s *Server) handleGetQuest(ctx context.Context, req *sdk.CallToolRequest, input QuestRefInput) (*sdk.CallToolResult, QuestOutput, error) {
	q, err := s.db.Get(ctx, input.Quest)
	if err != nil {
		return nil, QuestOutput{}, err
	}
	if q == nil {
		return nil, QuestOutput{}, quest.ErrQuestNotFound
	}
	return nil, QuestOutput{Quest: q}, nil
}

func (s *Server) handleCreateQuest(ctx context.Context, req *sdk.CallToolRequest, input EmptyInput) (*sdk.CallToolResult, QuestOutput, error) {
	col, err := s.db.LoadAll(ctx)
	if err != nil {
		return nil, QuestOutput{}, err
	}
	q := s.editor.CreateQuest(col)
	if err := s.db.Put(ctx, q); err != nil {
		return nil, QuestOutput{}, err
	}
	return nil, QuestOutput{Quest: q}, nil
}

func (s *Server) handleRenameQuest(ctx context.Context, req *sdk.CallToolRequest, input RenameInput) (*sdk.CallToolResult, OKOutput, error) {
	col, err := s.db.LoadAll(ctx)
	if err != nil {
		return nil, OKOutput{}, err
	}
	if err := s.editor.RenameQuest(col, input.Quest, input.NewID); err != nil {
		return nil, OKOutput{}, err
	}
	if err := s.db.Rename(ctx, input.Quest, input.NewID); err != nil {
		return nil, OKOutput{}, err
	}
	return nil, OKOutput{ID: input.NewID}, nil
}

func (s *Server) handleDeleteQuest(ctx context.Context, req *sdk.CallToolRequest, input QuestRefInput) (*sdk.CallToolResult, OKOutput, error) {
	col, err := s.db.LoadAll(ctx)
	if err != nil {
		return nil, OKOutput{}, err
	}
	s.editor.DeleteQuest(col, input.Quest)
	if err := s.db.Delete(ctx, input.Quest); err != nil {
		return nil, OKOutput{}, err
	}
	return nil, OKOutput{ID: input.Quest}, nil
}

func (s *Server) handleUpdateQuest(ctx context.Context, req *sdk.CallToolRequest, input UpdateQuestInput) (*sdk.CallToolResult, QuestOutput, error) {
	patch := quest.QuestPatch{
		Title:            input.Title,
		Description:      input.Description,
		ShortDescription: input.ShortDescription,
		IsHidden:         input.IsHidden,
		IsMainQuest:      input.IsMainQuest,
		RelatedNPCs:      input.RelatedNPCs,
		RelatedLocations: input.RelatedLocations,
	}
	if input.Importance != nil {
		importance := quest.Importance(*input.Importance)
		patch.Importance = &importance
	}
	rewards := quest.RewardsPatch{
		Experience:          input.Experience,
		Items:               input.Items,
		Skills:              input.SkillRewards,
		RelationshipChanges: input.RelationshipChanges,
		UnlockedLocations:   input.UnlockedLocations,
		UnlockedDialogues:   input.UnlockedDialogues,
	}
	if rewards != (quest.RewardsPatch{}) {
		patch.Rewards = &rewards
	}
	q, err := s.withQuest(ctx, input.Quest, func(col quest.Collection, q *quest.Quest) error {
		return s.editor.UpdateQuest(col, q.ID, patch)
	})
	if err != nil {
		return nil, QuestOutput{}, err
	}
	return nil, QuestOutput{Quest: q}, nil
}

func (s *Server) handleAddStage(ctx context.Context, req *sdk.CallToolRequest, input QuestRefInput) (*sdk.CallToolResult, StageOutput, error) {
	var added *quest.Stage
	q, err := s.withQuest(ctx, input.Quest, func(col quest.Collection, q *quest.Quest) error {
		added = s.editor.AddStage(q)
		return nil
	})
	if err != nil {
		return nil, StageOutput{}, err
	}
	return nil, StageOutput{Quest: q.ID, Stage: added}, nil
}

func (s *Server) handleRenameStage(ctx context.Context, req *sdk.CallToolRequest, input RenameStageInput) (*sdk.CallToolResult, OKOutput, error) {
	_, err := s.withQuest(ctx, input.Quest, func(col quest.Collection, q *quest.Quest) error {
		return s.editor.RenameStage(q, input.Stage, input.NewID)
	})
	if err != nil {
		return nil, OKOutput{}, err
	}
	return nil, OKOutput{ID: input.NewID}, nil
}

func (s *Server) handleDeleteStage(ctx context.Context, req *sdk.CallToolRequest, input StageRefInput) (*sdk.CallToolResult, OKOutput, error) {
	_, err := s.withQuest(ctx, input.Quest, func(col quest.Collection, q *quest.Quest) error {
		return s.editor.DeleteStage(q, input.Stage)
	})
	if err != nil {
		return nil, OKOutput{}, err
	}
	return nil, OKOutput{ID: input.Stage}, nil
}

func (s *Server) handleUpdateStage(ctx context.Context, req *sdk.CallToolRequest, input UpdateStageInput) (*sdk.CallToolResult, StageOutput, error) {
	patch := quest.StagePatch{
		Description:  input.Description,
		Notification: input.Notification,
	}
	if input.Status != nil {
		status := quest.StageStatus(*input.Status)
		patch.Status = &status
	}
	var updated *quest.Stage
	q, err := s.withStage(ctx, input.Quest, input.Stage, func(q *quest.Quest, st *quest.Stage) error {
		updated = st
		return s.editor.UpdateStage(q, input.Stage, patch)
	})
	if err != nil {
		return nil, StageOutput{}, err
	}
	return nil, StageOutput{Quest: q.ID, Stage: updated}, nil
}

func (s *Server) handleAddObjective(ctx context.Context, req *sdk.CallToolRequest, input StageRefInput) (*sdk.CallToolResult, StageOutput, error) {
	q, err := s.withStage(ctx, input.Quest, input.Stage, func(q *quest.Quest, st *quest.Stage) error {
		s.editor.AddObjective(st)
		return nil
	})
	if err != nil {
		return nil, StageOutput{}, err
	}
	return nil, StageOutput{Quest: q.ID, Stage: q.Stage(input.Stage)}, nil
}

func (s *Server) handleUpdateObjective(ctx context.Context, req *sdk.CallToolRequest, input UpdateObjectiveInput) (*sdk.CallToolResult, StageOutput, error) {
	patch := quest.ObjectivePatch{
		ID:            input.ID,
		Description:   input.Description,
		IsCompleted:   input.IsCompleted,
		IsOptional:    input.IsOptional,
		RequiredClues: input.RequiredClues,
		RequiredItems: input.RequiredItems,
	}
	if input.ClearLocation {
		patch.SetRequiredLocation = true
	} else if input.RequiredLocation != nil {
		patch.SetRequiredLocation = true
		patch.RequiredLocation = input.RequiredLocation
	}
	if input.ClearNPC {
		patch.SetRequiredNPC = true
	} else if input.RequiredNPC != nil {
		patch.SetRequiredNPC = true
		patch.RequiredNPC = input.RequiredNPC
	}
	q, err := s.withStage(ctx, input.Quest, input.Stage, func(q *quest.Quest, st *quest.Stage) error {
		return s.editor.UpdateObjective(st, input.Index, patch)
	})
	if err != nil {
		return nil, StageOutput{}, err
	}
	return nil, StageOutput{Quest: q.ID, Stage: q.Stage(input.Stage)}, nil
}

func (s *Server) handleDeleteObjective(ctx context.Context, req *sdk.CallToolRequest, input ObjectiveRefInput) (*sdk.CallToolResult, StageOutput, error) {
	q, err := s.withStage(ctx, input.Quest, input.Stage, func(q *quest.Quest, st *quest.Stage) error {
		return s.editor.DeleteObjective(st, input.Index)
	})
	if err != nil {
		return nil, StageOutput{}, err
	}
	return nil, StageOutput{Quest: q.ID, Stage: q.Stage(input.Stage)}, nil
}

func (s *Server) handleAddEvent(ctx context.Context, req *sdk.CallToolRequest, input AddEventInput) (*sdk.CallToolResult, StageOutput, error) {
	q, err := s.withStage(ctx, input.Quest, input.Stage, func(q *quest.Quest, st *quest.Stage) error {
		switch input.Scope {
		case "", "stage":
			s.editor.AddStageEvent(st, quest.EventType(input.EventType))
			return nil
		case "objective":
			_, err := s.editor.AddObjectiveEvent(st, input.Objective, quest.EventType(input.EventType))
			return err
		default:
			return fmt.Errorf("scope must be stage or objective, got %q", input.Scope)
		}
	})
	if err != nil {
		return nil, StageOutput{}, err
	}
	return nil, StageOutput{Quest: q.ID, Stage: q.Stage(input.Stage)}, nil
}

func (s *Server) handleAddLink(ctx context.Context, req *sdk.CallToolRequest, input StageRefInput) (*sdk.CallToolResult, StageOutput, error) {
	q, err := s.withQuest(ctx, input.Quest, func(col quest.Collection, q *quest.Quest) error {
		_, err := s.editor.AddNextStageLink(q, input.Stage)
		return err
	})
	if err != nil {
		return nil, StageOutput{}, err
	}
	return nil, StageOutput{Quest: q.ID, Stage: q.Stage(input.Stage)}, nil
}

func (s *Server) handleDeleteEvent(ctx context.Context, req *sdk.CallToolRequest, input DeleteEventInput) (*sdk.CallToolResult, StageOutput, error) {
	q, err := s.withStage(ctx, input.Quest, input.Stage, func(q *quest.Quest, st *quest.Stage) error {
		s.editor.DeleteStageEvent(st, input.Index)
		return nil
	})
	if err != nil {
		return nil, StageOutput{}, err
	}
	return nil, StageOutput{Quest: q.ID, Stage: q.Stage(input.Stage)}, nil
}

func (s *Server) handleSetChoice(ctx context.Context, req *sdk.CallToolRequest, input SetChoiceInput) (*sdk.CallToolResult, StageOutput, error) {
	q, err := s.withStage(ctx, input.Quest, input.Stage, func(q *quest.Quest, st *quest.Stage) error {
		choice := &input.Choice
		if input.Clear {
			choice = nil
		}
		return s.editor.SetLinkChoice(st, input.Link, choice)
	})
	if err != nil {
		return nil, StageOutput{}, err
	}
	return nil, StageOutput{Quest: q.ID, Stage: q.Stage(input.Stage)}, nil
}

func (s *Server) handleSetCondition(ctx context.Context, req *sdk.CallToolRequest, input SetConditionInput) (*sdk.CallToolResult, StageOutput, error) {
	q, err := s.withStage(ctx, input.Quest, input.Stage, func(q *quest.Quest, st *quest.Stage) error {
		return s.editor.SetLinkCondition(st, input.Link, quest.ConditionType(input.ConditionType))
	})
	if err != nil {
		return nil, StageOutput{}, err
	}
	return nil, StageOutput{Quest: q.ID, Stage: q.Stage(input.Stage)}, nil
}

func (s *Server) handleDeleteLink(ctx context.Context, req *sdk.CallToolRequest, input DeleteLinkInput) (*sdk.CallToolResult, StageOutput, error) {
	q, err := s.withStage(ctx, input.Quest, input.Stage, func(q *quest.Quest, st *quest.Stage) error {
		s.editor.DeleteNextStageLink(st, input.Target)
		return nil
	})
	if err != nil {
		return nil, StageOutput{}, err
	}
	return nil, StageOutput{Quest: q.ID, Stage: q.Stage(input.Stage)}, nil
}

func (s *Server) handleExport(ctx context.Context, req *sdk.CallToolRequest, input ExportInput) (*sdk.CallToolResult, ExportOutput, error) {
	q, err := s.db.Get(ctx, input.Quest)
	if err != nil {
		return nil, ExportOutput{}, err
	}
	if q == nil {
		return nil, ExportOutput{}, quest.ErrQuestNotFound
	}
	switch input.Format {
	case "", "text":
		return nil, ExportOutput{Content: export.Text(q)}, nil
	case "tree":
		data, err := export.TreeJSON(q)
		if err != nil {
			return nil, ExportOutput{}, err
		}
		return nil, ExportOutput{Content: string(data)}, nil
	default:
		return nil, ExportOutput{}, fmt.Errorf("format must be text or tree, got %q", input.Format)
	}
}

func (s *Server) handleSpeakers(ctx context.Context, req *sdk.CallToolRequest, input EmptyInput) (*sdk.CallToolResult, SpeakersOutput, error) {
	if s.corpus == nil {
		return nil, SpeakersOutput{}, fmt.Errorf("no dialogue corpus configured")
	}
	return nil, SpeakersOutput{Speakers: dialogue.Speakers(s.corpus)}, nil
}

func (s *Server) handleRelated(ctx context.Context, req *sdk.CallToolRequest, input QuestRefInput) (*sdk.CallToolResult, RelatedOutput, error) {
	if s.corpus == nil {
		return nil, RelatedOutput{}, fmt.Errorf("no dialogue corpus configured")
	}
	return nil, RelatedOutput{Related: dialogue.FindRelated(s.corpus, input.Quest)}, nil
}

func (s *Server) handleValidate(ctx context.Context, req *sdk.CallToolRequest, input EmptyInput) (*sdk.CallToolResult, ValidateOutput, error) {
	col, err := s.db.LoadAll(ctx)
	if err != nil {
		return nil, ValidateOutput{}, err
	}
	report := validate.Run(col, s.catalogs)
	out := make([]IssueOutput, 0, len(report.Issues))
	for _, issue := range report.Issues {
		out = append(out, IssueOutput{
			Severity: string(issue.Severity),
			Code:     issue.Code,
			Message:  issue.Message,
			Quest:    issue.Quest,
			Stage:    issue.Stage,
		})
	}
	return nil, ValidateOutput{Issues: out}, nil
}

func (s *Server) handleVocabulary(ctx context.Context, req *sdk.CallToolRequest, input EmptyInput) (*sdk.CallToolResult, VocabularyOutput, error) {
	out := VocabularyOutput{
		Importance:    []string{string(quest.ImportanceMain), string(quest.ImportanceSide), string(quest.ImportanceMisc)},
		StageStatuses: []string{string(quest.StatusNotStarted), string(quest.StatusInProgress), string(quest.StatusCompleted), string(quest.StatusFailed)},
	}
	for _, t := range quest.EventTypes() {
		out.EventTypes = append(out.EventTypes, string(t))
	}
	for _, t := range quest.ConditionTypes() {
		out.ConditionTypes = append(out.ConditionTypes, string(t))
	}
	if s.catalogs != nil {
		out.Skills = s.catalogs.Skills
		out.Items = s.catalogs.Items
		out.Locations = s.catalogs.Locations
	}
	if s.corpus != nil {
		out.Speakers = dialogue.Speakers(s.corpus)
	}
	return nil, out, nil
}

func sortedIDs(col quest.Collection) []string {
	ids := make([]string, 0, len(col))
	for id := range col {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
