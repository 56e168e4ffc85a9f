package shelf

import "slices"

// State is the lifecycle of a projection
type State string

const (
	StateUninitialized State = "uninitialized"
	StateLoading       State = "loading"
	StateReady         State = "ready"
	StateError         State = "error"
)

// States reports both projections
type States struct {
	Containers State `json:"containers"`
	ShelfItems State `json:"shelf_items"`
}

// projection is the client-side copy of one collection. It is guarded by the
// controller's mutex.
type projection[T any] struct {
	state State
	rows  []T
	err   error
}

func newProjection[T any]() projection[T] {
	return projection[T]{state: StateUninitialized, rows: []T{}}
}

func (p *projection[T]) begin() {
	p.state = StateLoading
}

// settle applies the outcome of a fetch. On failure the rows are cleared
// when clearOnError is set and kept as the last known-good copy otherwise.
func (p *projection[T]) settle(rows []T, err error, clearOnError bool) {
	if err != nil {
		p.state = StateError
		p.err = err
		if clearOnError {
			p.rows = []T{}
		}
		return
	}
	p.state = StateReady
	p.err = nil
	p.rows = rows
}

func (p *projection[T]) snapshot() []T {
	return slices.Clone(p.rows)
}
