package export

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"questforge/internal/quest"
)

// Text renders the line-oriented human-readable form of a quest. The
// format rules are fixed: string scalars are always double-quoted with
// embedded quotes escaped as \" (raw newlines inside descriptions pass
// through verbatim — a known fragility, kept as-is); booleans and integers
// are bare; absent optionals are the literal null token; sequences are
// "- " blocks or [] when empty, except the compact scalar-leaf arrays;
// int mappings are key: value lines or {} when empty, emitted in sorted
// key order; the document opens with a separator marker. Key order is part
// of the format contract. Export is one-directional: nothing in this
// package parses the output back.
func Text(q *quest.Quest) string {
	var w textWriter
	w.line(0, "---")
	w.field(0, "id", quote(q.ID))
	w.field(0, "title", quote(q.Title))
	w.field(0, "description", quote(q.Description))
	w.field(0, "short_description", quote(q.ShortDescription))
	w.field(0, "importance", quote(string(q.Importance)))
	w.field(0, "is_hidden", strconv.FormatBool(q.IsHidden))
	w.field(0, "is_main_quest", strconv.FormatBool(q.IsMainQuest))
	w.stringList(0, "related_npcs", q.RelatedNPCs)
	w.stringList(0, "related_locations", q.RelatedLocations)

	if len(q.Stages) == 0 {
		w.field(0, "stages", "[]")
	} else {
		w.field(0, "stages", "")
		for i := range q.Stages {
			w.writeStage(1, &q.Stages[i])
		}
	}

	w.field(0, "rewards", "")
	w.writeRewards(1, &q.Rewards)
	return w.b.String()
}

type textWriter struct {
	b strings.Builder
}

const indentUnit = "  "

func (w *textWriter) line(depth int, s string) {
	w.b.WriteString(strings.Repeat(indentUnit, depth))
	w.b.WriteString(s)
	w.b.WriteString("\n")
}

// field writes "key: value"; an empty value writes "key:" opening a block.
func (w *textWriter) field(depth int, key, value string) {
	if value == "" {
		w.line(depth, key+":")
		return
	}
	w.line(depth, key+": "+value)
}

// item writes the "- key: value" head line of a block-sequence entry.
func (w *textWriter) item(depth int, key, value string) {
	w.line(depth, "- "+key+": "+value)
}

func (w *textWriter) writeStage(depth int, s *quest.Stage) {
	w.item(depth, "id", quote(s.ID))
	w.field(depth+1, "description", quote(s.Description))
	w.field(depth+1, "notification", quote(s.Notification))
	w.field(depth+1, "status", quote(string(s.Status)))

	if len(s.Objectives) == 0 {
		w.field(depth+1, "objectives", "[]")
	} else {
		w.field(depth+1, "objectives", "")
		for i := range s.Objectives {
			w.writeObjective(depth+2, &s.Objectives[i])
		}
	}
	w.writeEvents(depth+1, s.Events)

	if len(s.NextStages) == 0 {
		w.field(depth+1, "next_stages", "[]")
	} else {
		w.field(depth+1, "next_stages", "")
		for i := range s.NextStages {
			w.writeLink(depth+2, &s.NextStages[i])
		}
	}
}

func (w *textWriter) writeObjective(depth int, o *quest.Objective) {
	w.item(depth, "id", quote(o.ID))
	w.field(depth+1, "description", quote(o.Description))
	w.field(depth+1, "is_completed", strconv.FormatBool(o.IsCompleted))
	w.field(depth+1, "is_optional", strconv.FormatBool(o.IsOptional))
	w.stringList(depth+1, "required_clues", o.RequiredClues)
	w.stringList(depth+1, "required_items", o.RequiredItems)
	w.field(depth+1, "required_location", optional(o.RequiredLocation))
	w.field(depth+1, "required_npc_interaction", optional(o.RequiredNPC))
	w.writeEvents(depth+1, o.Events)
}

func (w *textWriter) writeEvents(depth int, events []quest.CompletionEvent) {
	if len(events) == 0 {
		w.field(depth, "completion_events", "[]")
		return
	}
	w.field(depth, "completion_events", "")
	for i := range events {
		w.item(depth+1, "event_type", quote(string(events[i].Type)))
		w.field(depth+2, "data", eventData(events[i].Data))
	}
}

func (w *textWriter) writeLink(depth int, l *quest.NextStageLink) {
	w.item(depth, "next_stage", quote(l.NextStage))
	w.field(depth+1, "choice_description", optional(l.ChoiceDescription))
	if l.Condition == nil {
		w.field(depth+1, "condition", "null")
		return
	}
	w.field(depth+1, "condition", "")
	w.field(depth+2, "condition_type", quote(string(l.Condition.Type)))
	w.field(depth+2, "target_id", quote(l.Condition.TargetID))
	w.field(depth+2, "value", strconv.Itoa(l.Condition.Value))
}

func (w *textWriter) writeRewards(depth int, r *quest.Rewards) {
	w.field(depth, "experience", strconv.Itoa(r.Experience))

	if len(r.Items) == 0 {
		w.field(depth, "items", "[]")
	} else {
		w.field(depth, "items", "")
		for i := range r.Items {
			item := &r.Items[i]
			w.item(depth+1, "id", quote(item.ID))
			w.field(depth+2, "name", quote(item.Name))
			w.field(depth+2, "description", quote(item.Description))
			w.effectsMap(depth+2, item.Effects)
		}
	}

	w.intMap(depth, "skill_rewards", r.Skills)
	w.intMap(depth, "relationship_changes", r.RelationshipChanges)
	w.field(depth, "unlocked_locations", inlineStrings(r.UnlockedLocations))
	w.field(depth, "unlocked_dialogues", inlineStrings(r.UnlockedDialogues))
}

// stringList renders a block sequence of string scalars, [] when empty.
func (w *textWriter) stringList(depth int, key string, values []string) {
	if len(values) == 0 {
		w.field(depth, key, "[]")
		return
	}
	w.field(depth, key, "")
	for _, v := range values {
		w.line(depth+1, "- "+quote(v))
	}
}

func (w *textWriter) intMap(depth int, key string, m map[string]int) {
	if len(m) == 0 {
		w.field(depth, key, "{}")
		return
	}
	w.field(depth, key, "")
	for _, k := range sortedKeys(m) {
		w.field(depth+1, k, strconv.Itoa(m[k]))
	}
}

func (w *textWriter) effectsMap(depth int, m map[string]any) {
	if len(m) == 0 {
		w.field(depth, "effects", "{}")
		return
	}
	w.field(depth, "effects", "")
	for _, k := range sortedKeys(m) {
		w.field(depth+1, k, scalar(m[k]))
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func optional(s *string) string {
	if s == nil {
		return "null"
	}
	return quote(*s)
}

func scalar(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return quote(x)
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return quote(fmt.Sprintf("%v", x))
	}
}

// eventData dispatches an event payload by shape: scalars pass through,
// sequences render as the compact inline array, and mapping-shaped
// payloads degrade to a single escaped string holding their structured-
// tree serialization. The degradation is deliberately lossy; this engine
// never reparses it.
func eventData(data any) string {
	switch x := data.(type) {
	case nil, string, bool, int, int64, float64:
		return scalar(x)
	case []any:
		return inlineAny(x)
	case []string:
		return inlineStrings(x)
	default:
		raw, err := json.Marshal(x)
		if err != nil {
			return quote(fmt.Sprintf("%v", x))
		}
		return quote(string(raw))
	}
}

func inlineStrings(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, quote(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func inlineAny(values []any) string {
	if len(values) == 0 {
		return "[]"
	}
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, scalar(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
