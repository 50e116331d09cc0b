package action

// SuspenseState is the lifecycle of one wrapped invocation.
type SuspenseState int

const (
	Pending SuspenseState = iota
	Resolved
	Failed
)

func (s SuspenseState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Resolved:
		return "resolved"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Suspense wraps one outstanding invocation. It shows the fallback while the
// invocation is pending and the settled content afterwards. A failed
// invocation renders nothing; surfacing the error is left to a Boundary.
type Suspense struct {
	Key      uint64
	Fallback string
	State    SuspenseState
	Content  string
	Err      error
}

// NewSuspense returns a pending wrapper for the invocation started at key.
func NewSuspense(key uint64, fallback string) Suspense {
	return Suspense{Key: key, Fallback: fallback, State: Pending}
}

func (s Suspense) settle(content string, err error) Suspense {
	if err != nil {
		s.State = Failed
		s.Err = err
		return s
	}
	s.State = Resolved
	s.Content = content
	return s
}

func (s Suspense) View() string {
	switch s.State {
	case Resolved:
		return s.Content
	case Failed:
		return ""
	default:
		return s.Fallback
	}
}
