// Package tracker manages request lifecycle state for the views of the
// candidate workflow: one state machine per logical view plus a busy set for
// per-entity mutating operations.
package tracker

import "sync"

// State of a view's tracked fetch operation.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Ticket identifies one issued fetch. Tickets increase monotonically per
// view; only the completion carrying the latest issued ticket is applied
// and stale completions are dropped (issue-order wins, regardless of the
// order in which requests settle).
type Ticket uint64

// View tracks the lifecycle of fetch-type operations for one logical view.
// Each view owns an independent instance; there is no cross-view state.
type View struct {
	mu     sync.Mutex
	name   string
	state  State
	latest Ticket
	errMsg string
}

func NewView(name string) *View {
	return &View{name: name}
}

func (v *View) Name() string {
	return v.name
}

// Begin transitions the view to loading and issues a new ticket. A Begin
// while another fetch is in flight supersedes it: the older ticket can no
// longer win.
func (v *View) Begin() Ticket {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.latest++
	v.state = StateLoading
	v.errMsg = ""

	return v.latest
}

// Succeed records a successful completion. It reports whether the result
// was applied; a stale ticket leaves the view untouched.
func (v *View) Succeed(t Ticket) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if t != v.latest {
		return false
	}

	v.state = StateSucceeded
	v.errMsg = ""

	return true
}

// Fail records a failed completion with a user-facing message. Stale
// tickets are dropped the same way as in Succeed.
func (v *View) Fail(t Ticket, msg string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if t != v.latest {
		return false
	}

	v.state = StateFailed
	v.errMsg = msg

	return true
}

// Reset returns the view to idle, as on unmount.
func (v *View) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.state = StateIdle
	v.errMsg = ""
}

func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.state
}

// Err returns the message recorded by the last applied failure, empty
// otherwise.
func (v *View) Err() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.errMsg
}
