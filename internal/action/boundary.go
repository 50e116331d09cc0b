package action

import tea "github.com/charmbracelet/bubbletea"

// Boundary surfaces the failures of one coordinator. Once the child reports
// a FailedMsg for its current invocation the boundary renders the error in
// place of the child until the child resolves again or Reset is called. A
// newer pending invocation shows the child's fallback meanwhile.
type Boundary struct {
	child  Model
	err    error
	render func(error) string
}

// NewBoundary wraps child. render defaults to ErrorContent.
func NewBoundary(child Model, render func(error) string) Boundary {
	if render == nil {
		render = ErrorContent
	}
	return Boundary{child: child, render: render}
}

func (b *Boundary) Init() tea.Cmd { return b.child.Init() }

// SetInputs forwards to the wrapped coordinator.
func (b *Boundary) SetInputs(in Inputs) tea.Cmd { return b.child.SetInputs(in) }

// Child returns the wrapped coordinator.
func (b Boundary) Child() Model { return b.child }

// Err returns the latched failure.
func (b Boundary) Err() error { return b.err }

// Reset clears the latched failure.
func (b *Boundary) Reset() { b.err = nil }

func (b Boundary) Update(msg tea.Msg) (Boundary, tea.Cmd) {
	if failed, ok := msg.(FailedMsg); ok && failed.ID == b.child.ID() {
		// failures of superseded invocations are stale
		s := b.child.Suspense()
		if failed.Key == s.Key && s.State == Failed {
			b.err = failed.Err
		}
		return b, nil
	}
	var cmd tea.Cmd
	b.child, cmd = b.child.Update(msg)
	if b.err != nil && b.child.Suspense().State == Resolved {
		b.err = nil
	}
	return b, cmd
}

func (b Boundary) View() string {
	if b.err != nil && !b.child.Pending() {
		return b.render(b.err)
	}
	return b.child.View()
}
