package action

// versionMsg publishes one increment scheduled by the tracker.
type versionMsg struct {
	id string
}

// settledMsg carries the outcome of the invocation started at key.
type settledMsg struct {
	id      string
	key     uint64
	content string
	err     error
}

// FailedMsg is emitted when the authoritative invocation of a coordinator
// returns an error. A Boundary consumes it; hosts without one may handle it
// directly.
type FailedMsg struct {
	ID  string
	Key uint64
	Err error
}

func (m FailedMsg) Error() string { return m.Err.Error() }

func (m FailedMsg) Unwrap() error { return m.Err }
