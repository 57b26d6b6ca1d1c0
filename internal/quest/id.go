package quest

import "fmt"

// IDSource allocates fresh identifier suffixes. Injecting it keeps ID
// collision-freedom a testable property instead of depending on wall-clock
// timing.
type IDSource interface {
	Next() uint64
}

// Counter is the default IDSource, a plain monotonic counter. The model is
// single-writer, so no locking.
type Counter struct {
	n uint64
}

func (c *Counter) Next() uint64 {
	c.n++
	return c.n
}

// freshID returns prefix_<n> for the first n whose result is not already
// taken.
func freshID(ids IDSource, prefix string, taken func(string) bool) string {
	for {
		id := fmt.Sprintf("%s_%d", prefix, ids.Next())
		if !taken(id) {
			return id
		}
	}
}
