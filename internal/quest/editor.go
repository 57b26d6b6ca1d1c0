package quest

// ConfirmFunc asks the host to confirm a destructive operation before it
// proceeds. The prompt is user-facing text; returning false aborts the
// mutation without error.
type ConfirmFunc func(prompt string) bool

// Editor applies mutations to a caller-supplied collection. It carries the
// two injected capabilities the operations need: fresh-ID allocation and
// destructive-action confirmation. A nil Confirm always proceeds, which
// keeps the core testable without a UI.
type Editor struct {
	IDs     IDSource
	Confirm ConfirmFunc
}

// NewEditor returns an Editor with a counter-backed ID source and no
// confirmation gate.
func NewEditor() *Editor {
	return &Editor{IDs: &Counter{}}
}

func (e *Editor) confirm(prompt string) bool {
	if e.Confirm == nil {
		return true
	}
	return e.Confirm(prompt)
}
