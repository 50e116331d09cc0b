package action

import (
	"context"
	"errors"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// DefaultFallback is shown while an invocation is pending unless the caller
// supplies another fallback.
const DefaultFallback = "loading..."

// ErrNoProducer is the failure of an invocation made without a producer.
var ErrNoProducer = errors.New("action: no producer")

// Producer computes renderable content from the named inputs. It runs inside
// a tea.Cmd, off the event loop, and may be called many times with different
// bags.
type Producer func(ctx context.Context, in Inputs) (string, error)

// Option configures a Model.
type Option func(*Model)

// WithFallback sets the content shown while an invocation is pending.
func WithFallback(fallback string) Option {
	return func(m *Model) { m.fallback = fallback }
}

// WithInputs sets the initial input bag.
func WithInputs(in Inputs) Option {
	return func(m *Model) { m.inputs = in }
}

// WithInitialContent sets what View shows before the first invocation.
// It defaults to the fallback.
func WithInitialContent(content string) Option {
	return func(m *Model) {
		m.initial = content
		m.hasInitial = true
	}
}

// WithCancelOnSupersede cancels the context of an invocation as soon as a
// newer one starts. Superseded results are dropped either way.
func WithCancelOnSupersede() Option {
	return func(m *Model) { m.cancelOnSupersede = true }
}

// WithContext sets the parent context handed to the producer.
func WithContext(ctx context.Context) Option {
	return func(m *Model) { m.ctx = ctx }
}

// WithLogger sets the logger used for invocation tracing.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// Model coordinates a producer with a Bubble Tea host. Hosts embed it, call
// Init once, forward every message to Update and call SetInputs whenever
// they recompute the inputs.
type Model struct {
	id       string
	ctx      context.Context
	producer Producer
	fallback string
	inputs   Inputs
	tracker  Tracker
	logger   *log.Logger

	initial    string
	hasInitial bool

	mounted     bool
	suspense    Suspense
	invocations uint64

	cancelOnSupersede bool
	cancel            context.CancelFunc
}

// New returns an unmounted coordinator for producer.
func New(producer Producer, opts ...Option) Model {
	m := Model{
		id:       uuid.NewString(),
		ctx:      context.Background(),
		producer: producer,
		fallback: DefaultFallback,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard, "", 0)
	}
	if !m.hasInitial {
		m.initial = m.fallback
	}
	m.tracker.Observe(m.inputs.Values()...)
	return m
}

// ID identifies the coordinator in the messages it emits.
func (m Model) ID() string { return m.id }

// Key returns the published version key.
func (m Model) Key() uint64 { return m.tracker.Key() }

// Inputs returns the current input bag.
func (m Model) Inputs() Inputs { return m.inputs }

// Fallback returns the pending placeholder.
func (m Model) Fallback() string { return m.fallback }

// Invocations returns how many times the producer has been started.
func (m Model) Invocations() uint64 { return m.invocations }

// Mounted reports whether Init has run.
func (m Model) Mounted() bool { return m.mounted }

// Suspense returns the current wrapper. It is the zero value before Init.
func (m Model) Suspense() Suspense { return m.suspense }

// Pending reports whether the authoritative invocation is outstanding.
func (m Model) Pending() bool { return m.mounted && m.suspense.State == Pending }

// Err returns the failure of the authoritative invocation, if any.
func (m Model) Err() error {
	if !m.mounted {
		return nil
	}
	return m.suspense.Err
}

// Init mounts the coordinator and starts the first invocation. Calling it
// again is a no-op.
func (m *Model) Init() tea.Cmd {
	if m.mounted {
		return nil
	}
	m.mounted = true
	return m.invoke()
}

// SetInputs replaces the input bag. When the values differ from the previous
// bag it returns a command that publishes the new version on a later cycle.
func (m *Model) SetInputs(in Inputs) tea.Cmd {
	m.inputs = in
	if !m.tracker.Observe(in.Values()...) {
		return nil
	}
	id := m.id
	return func() tea.Msg { return versionMsg{id: id} }
}

// SetProducer swaps the producer. The next invocation uses it; swapping alone
// never starts one.
func (m *Model) SetProducer(p Producer) {
	m.producer = p
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case versionMsg:
		if msg.id != m.id {
			return m, nil
		}
		key, ok := m.tracker.Publish()
		if !ok {
			return m, nil
		}
		if !m.mounted {
			m.logger.Printf("action %s: key=%d before mount", m.id, key)
			return m, nil
		}
		return m, m.invoke()
	case settledMsg:
		if msg.id != m.id {
			return m, nil
		}
		if !m.mounted || msg.key != m.suspense.Key || m.suspense.State != Pending {
			m.logger.Printf("action %s: drop stale result key=%d current=%d", m.id, msg.key, m.suspense.Key)
			return m, nil
		}
		m.suspense = m.suspense.settle(msg.content, msg.err)
		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		if msg.err != nil {
			m.logger.Printf("action %s: key=%d failed: %v", m.id, msg.key, msg.err)
			failed := FailedMsg{ID: m.id, Key: msg.key, Err: msg.err}
			return m, func() tea.Msg { return failed }
		}
		m.logger.Printf("action %s: key=%d resolved", m.id, msg.key)
	}
	return m, nil
}

func (m Model) View() string {
	if !m.mounted {
		return m.initial
	}
	return m.suspense.View()
}

func (m *Model) invoke() tea.Cmd {
	key := m.tracker.Key()
	ctx := m.ctx
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	if m.cancelOnSupersede {
		ctx, m.cancel = context.WithCancel(m.ctx)
	}
	m.invocations++
	m.suspense = NewSuspense(key, m.fallback)
	m.logger.Printf("action %s: invoke key=%d", m.id, key)

	id, producer, in := m.id, m.producer, m.inputs
	return func() tea.Msg {
		if producer == nil {
			return settledMsg{id: id, key: key, err: ErrNoProducer}
		}
		content, err := producer(ctx, in)
		return settledMsg{id: id, key: key, content: content, err: err}
	}
}
