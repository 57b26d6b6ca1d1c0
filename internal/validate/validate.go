// Package validate runs read-only authoring lint over a quest collection.
// Lint surfaces what the model deliberately does not enforce (duplicate
// objective IDs, unknown catalog references, unreachable stages); it never
// mutates and never blocks a mutation.
package validate

import (
	"fmt"
	"sort"

	"questforge/internal/config"
	"questforge/internal/quest"
)

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warning"
)

const (
	codeDuplicateObjective = "duplicate_objective_id"
	codeEmptyDescription   = "empty_description"
	codeUnknownSkill       = "unknown_skill"
	codeUnknownItem        = "unknown_item"
	codeUnknownLocation    = "unknown_location"
	codeUnreachableStage   = "unreachable_stage"
)

type Issue struct {
	Severity Severity
	Code     string
	Message  string
	Quest    string
	Stage    string
}

type Report struct {
	Issues []Issue
}

// Run lints every quest in the collection. Quests are visited in sorted ID
// order so reports are stable. A nil catalogs skips the reference checks.
func Run(col quest.Collection, catalogs *config.Catalogs) *Report {
	issues := make([]Issue, 0)

	ids := make([]string, 0, len(col))
	for id := range col {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		issues = append(issues, lintQuest(col[id], catalogs)...)
	}
	return &Report{Issues: issues}
}

func lintQuest(q *quest.Quest, catalogs *config.Catalogs) []Issue {
	var issues []Issue

	if q.Description == "" {
		issues = append(issues, Issue{
			Severity: SeverityWarn,
			Code:     codeEmptyDescription,
			Message:  "quest has no description",
			Quest:    q.ID,
		})
	}

	for i := range q.Stages {
		issues = append(issues, lintStage(q, &q.Stages[i], catalogs)...)
	}
	issues = append(issues, lintReachability(q)...)
	issues = append(issues, lintRewards(q, catalogs)...)
	return issues
}

func lintStage(q *quest.Quest, s *quest.Stage, catalogs *config.Catalogs) []Issue {
	var issues []Issue

	seen := make(map[string]bool)
	for i := range s.Objectives {
		obj := &s.Objectives[i]
		if seen[obj.ID] {
			issues = append(issues, Issue{
				Severity: SeverityWarn,
				Code:     codeDuplicateObjective,
				Message:  fmt.Sprintf("duplicate objective id: %s", obj.ID),
				Quest:    q.ID,
				Stage:    s.ID,
			})
		}
		seen[obj.ID] = true

		if catalogs != nil {
			for _, item := range obj.RequiredItems {
				if !catalogs.HasItem(item) {
					issues = append(issues, catalogIssue(q, s, codeUnknownItem, "required item", item))
				}
			}
			if obj.RequiredLocation != nil && !catalogs.HasLocation(*obj.RequiredLocation) {
				issues = append(issues, catalogIssue(q, s, codeUnknownLocation, "required location", *obj.RequiredLocation))
			}
		}
	}

	if catalogs != nil {
		for i := range s.NextStages {
			cond := s.NextStages[i].Condition
			if cond == nil {
				continue
			}
			switch cond.Type {
			case quest.CondHasItem:
				if !catalogs.HasItem(cond.TargetID) {
					issues = append(issues, catalogIssue(q, s, codeUnknownItem, "condition item", cond.TargetID))
				}
			case quest.CondSkillValue:
				if !catalogs.HasSkill(cond.TargetID) {
					issues = append(issues, catalogIssue(q, s, codeUnknownSkill, "condition skill", cond.TargetID))
				}
			case quest.CondLocationVisited:
				if !catalogs.HasLocation(cond.TargetID) {
					issues = append(issues, catalogIssue(q, s, codeUnknownLocation, "condition location", cond.TargetID))
				}
			}
		}
	}

	return issues
}

// lintReachability flags stages no link path reaches from the first stage.
// Isolated stages are valid content while drafting, hence a warning.
func lintReachability(q *quest.Quest) []Issue {
	if len(q.Stages) == 0 {
		return nil
	}
	reached := map[string]bool{q.Stages[0].ID: true}
	frontier := []string{q.Stages[0].ID}
	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]
		stage := q.Stage(current)
		if stage == nil {
			continue
		}
		for _, link := range stage.NextStages {
			if !reached[link.NextStage] {
				reached[link.NextStage] = true
				frontier = append(frontier, link.NextStage)
			}
		}
	}

	var issues []Issue
	for i := range q.Stages {
		if !reached[q.Stages[i].ID] {
			issues = append(issues, Issue{
				Severity: SeverityWarn,
				Code:     codeUnreachableStage,
				Message:  "stage is unreachable from the first stage",
				Quest:    q.ID,
				Stage:    q.Stages[i].ID,
			})
		}
	}
	return issues
}

func lintRewards(q *quest.Quest, catalogs *config.Catalogs) []Issue {
	if catalogs == nil {
		return nil
	}
	var issues []Issue
	for _, skill := range sortedKeys(q.Rewards.Skills) {
		if !catalogs.HasSkill(skill) {
			issues = append(issues, catalogIssue(q, nil, codeUnknownSkill, "skill reward", skill))
		}
	}
	for _, item := range q.Rewards.Items {
		if !catalogs.HasItem(item.ID) {
			issues = append(issues, catalogIssue(q, nil, codeUnknownItem, "item reward", item.ID))
		}
	}
	for _, loc := range q.Rewards.UnlockedLocations {
		if !catalogs.HasLocation(loc) {
			issues = append(issues, catalogIssue(q, nil, codeUnknownLocation, "unlocked location", loc))
		}
	}
	return issues
}

func catalogIssue(q *quest.Quest, s *quest.Stage, code, what, id string) Issue {
	issue := Issue{
		Severity: SeverityWarn,
		Code:     code,
		Message:  fmt.Sprintf("%s not in catalog: %s", what, id),
		Quest:    q.ID,
	}
	if s != nil {
		issue.Stage = s.ID
	}
	return issue
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
