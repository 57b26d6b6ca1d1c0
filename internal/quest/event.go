package quest

import (
	"encoding/json"
	"fmt"
)

// CompletionEvent is a side-effect payload attached to a stage or an
// objective. Known event types carry typed payloads; anything else is kept
// as an opaque payload under its original type string so unrecognized
// events survive editing untouched.
type CompletionEvent struct {
	Type EventType `json:"event_type" yaml:"event_type"`
	Data any       `json:"data" yaml:"data"`
}

type EventType string

const (
	EventAddClue            EventType = "AddClue"
	EventAddItem            EventType = "AddItem"
	EventModifySkill        EventType = "ModifySkill"
	EventModifyRelationship EventType = "ModifyRelationship"
	EventChangeLocation     EventType = "ChangeLocation"
	EventUnlockLocation     EventType = "UnlockLocation"
)

// ClueData is the AddClue payload.
type ClueData struct {
	ID           string `json:"id" yaml:"id"`
	Description  string `json:"description" yaml:"description"`
	RelatedQuest string `json:"related_quest" yaml:"related_quest"`
	Discovered   bool   `json:"discovered" yaml:"discovered"`
}

// ItemData is the AddItem payload.
type ItemData struct {
	ID          string         `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	Effects     map[string]any `json:"effects" yaml:"effects"`
}

// EventTypes lists the known variants in declaration order, for selector
// population. The opaque fallback has no fixed type string and is not
// listed.
func EventTypes() []EventType {
	return []EventType{
		EventAddClue,
		EventAddItem,
		EventModifySkill,
		EventModifyRelationship,
		EventChangeLocation,
		EventUnlockLocation,
	}
}

// NewEvent constructs a completion event carrying the default payload for
// its type. ModifySkill and ModifyRelationship payloads are positional
// [target, delta] pairs, not named fields. Unknown type strings yield the
// opaque fallback with a nil payload.
func NewEvent(t EventType) CompletionEvent {
	return CompletionEvent{Type: t, Data: defaultPayload(t)}
}

func defaultPayload(t EventType) any {
	switch t {
	case EventAddClue:
		return &ClueData{}
	case EventAddItem:
		return &ItemData{Effects: map[string]any{}}
	case EventModifySkill, EventModifyRelationship:
		return []any{"", 0}
	case EventChangeLocation, EventUnlockLocation:
		return ""
	default:
		return nil
	}
}

// UnmarshalJSON re-types known payload shapes after generic decoding, so a
// collection loaded from host storage round-trips into the same typed
// payloads NewEvent produces.
func (e *CompletionEvent) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type EventType       `json:"event_type"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.Type = raw.Type
	if len(raw.Data) == 0 || string(raw.Data) == "null" {
		e.Data = nil
		if e.Type == EventChangeLocation || e.Type == EventUnlockLocation {
			e.Data = ""
		}
		return nil
	}

	switch raw.Type {
	case EventAddClue:
		payload := &ClueData{}
		if err := json.Unmarshal(raw.Data, payload); err != nil {
			return fmt.Errorf("decoding %s payload: %w", raw.Type, err)
		}
		e.Data = payload
	case EventAddItem:
		payload := &ItemData{}
		if err := json.Unmarshal(raw.Data, payload); err != nil {
			return fmt.Errorf("decoding %s payload: %w", raw.Type, err)
		}
		if payload.Effects == nil {
			payload.Effects = map[string]any{}
		}
		e.Data = payload
	case EventModifySkill, EventModifyRelationship:
		pair, err := decodePair(raw.Data)
		if err != nil {
			return fmt.Errorf("decoding %s payload: %w", raw.Type, err)
		}
		e.Data = pair
	case EventChangeLocation, EventUnlockLocation:
		var loc string
		if err := json.Unmarshal(raw.Data, &loc); err != nil {
			return fmt.Errorf("decoding %s payload: %w", raw.Type, err)
		}
		e.Data = loc
	default:
		var payload any
		if err := json.Unmarshal(raw.Data, &payload); err != nil {
			return err
		}
		e.Data = payload
	}
	return nil
}

// decodePair normalizes a [target, delta] payload; JSON numbers arrive as
// float64 and are narrowed back to int.
func decodePair(data []byte) ([]any, error) {
	var elems []any
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, err
	}
	if len(elems) != 2 {
		return nil, fmt.Errorf("expected [target, delta] pair, got %d elements", len(elems))
	}
	target, ok := elems[0].(string)
	if !ok {
		return nil, fmt.Errorf("pair target must be a string")
	}
	delta := 0
	switch v := elems[1].(type) {
	case float64:
		delta = int(v)
	case int:
		delta = v
	default:
		return nil, fmt.Errorf("pair delta must be a number")
	}
	return []any{target, delta}, nil
}
