package quest

import "errors"

var (
	ErrEmptyIdentifier     = errors.New("identifier is empty")
	ErrContainsWhitespace  = errors.New("identifier contains whitespace")
	ErrInvalidCharacter    = errors.New("identifier contains invalid characters")
	ErrDuplicateIdentifier = errors.New("identifier already in use")
	ErrQuestNotFound       = errors.New("quest not found")
	ErrStageNotFound       = errors.New("stage not found")
	ErrIndexOutOfRange     = errors.New("index out of range")
	ErrLastStageDeletion   = errors.New("cannot delete the last stage of a quest")
	ErrNoEligibleTarget    = errors.New("no eligible target stage to link to")
)
