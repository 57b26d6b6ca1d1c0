package validate

import (
	"os"
	"path/filepath"
	"testing"

	"questforge/internal/config"
	"questforge/internal/quest"
)

func writeCatalogs(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalogs.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing catalogs: %v", err)
	}
	return path
}

func testCatalogs(t *testing.T) *config.Catalogs {
	t.Helper()
	path := writeCatalogs(t, "version: 1\nskills: [perception]\nitems: [torch]\nlocations: [crypt]\n")
	catalogs, err := config.LoadCatalogs(path)
	if err != nil {
		t.Fatalf("loading catalogs: %v", err)
	}
	return catalogs
}

func buildQuest(t *testing.T) (quest.Collection, *quest.Quest) {
	t.Helper()
	e := quest.NewEditor()
	col := quest.Collection{}
	q := e.CreateQuest(col)
	q.Description = "A quest."
	return col, q
}

func codes(r *Report) []string {
	out := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		out = append(out, issue.Code)
	}
	return out
}

func hasCode(r *Report, code string) bool {
	for _, issue := range r.Issues {
		if issue.Code == code {
			return true
		}
	}
	return false
}

func TestRun(t *testing.T) {
	catalogs := testCatalogs(t)

	t.Run("clean quest reports nothing", func(t *testing.T) {
		col, _ := buildQuest(t)
		report := Run(col, catalogs)
		if len(report.Issues) != 0 {
			t.Fatalf("expected no issues, got %#v", report.Issues)
		}
	})

	t.Run("duplicate objective ids", func(t *testing.T) {
		col, q := buildQuest(t)
		stage := q.Stage("start")
		stage.Objectives = []quest.Objective{{ID: "find"}, {ID: "find"}}
		report := Run(col, catalogs)
		if !hasCode(report, codeDuplicateObjective) {
			t.Fatalf("expected duplicate objective issue, got %v", codes(report))
		}
	})

	t.Run("unknown catalog references", func(t *testing.T) {
		col, q := buildQuest(t)
		q.Rewards.Skills = map[string]int{"stealth": 1}
		q.Rewards.Items = []quest.ItemReward{quest.NewItemReward("lantern")}
		q.Rewards.UnlockedLocations = []string{"moon"}
		stage := q.Stage("start")
		stage.Objectives = []quest.Objective{{ID: "o", RequiredItems: []string{"rope"}}}
		report := Run(col, catalogs)
		for _, want := range []string{codeUnknownSkill, codeUnknownItem, codeUnknownLocation} {
			if !hasCode(report, want) {
				t.Fatalf("expected %s, got %v", want, codes(report))
			}
		}
	})

	t.Run("condition references checked by variant", func(t *testing.T) {
		col, q := buildQuest(t)
		e := quest.NewEditor()
		e.AddStage(q)
		if _, err := e.AddNextStageLink(q, "start"); err != nil {
			t.Fatalf("link: %v", err)
		}
		stage := q.Stage("start")
		if err := e.SetLinkCondition(stage, 0, quest.CondSkillValue); err != nil {
			t.Fatalf("condition: %v", err)
		}
		stage.NextStages[0].Condition.TargetID = "stealth"
		report := Run(col, catalogs)
		if !hasCode(report, codeUnknownSkill) {
			t.Fatalf("expected unknown skill, got %v", codes(report))
		}
	})

	t.Run("unreachable stage", func(t *testing.T) {
		col, q := buildQuest(t)
		e := quest.NewEditor()
		e.AddStage(q)
		report := Run(col, catalogs)
		if !hasCode(report, codeUnreachableStage) {
			t.Fatalf("expected unreachable stage, got %v", codes(report))
		}
	})

	t.Run("empty description", func(t *testing.T) {
		col, q := buildQuest(t)
		q.Description = ""
		report := Run(col, catalogs)
		if !hasCode(report, codeEmptyDescription) {
			t.Fatalf("expected empty description, got %v", codes(report))
		}
	})

	t.Run("nil catalogs skip reference checks", func(t *testing.T) {
		col, q := buildQuest(t)
		q.Rewards.Skills = map[string]int{"stealth": 1}
		report := Run(col, nil)
		if hasCode(report, codeUnknownSkill) {
			t.Fatalf("reference checks should be skipped without catalogs")
		}
	})
}
