package tui

import (
	"context"
	"fmt"
	"io"
	"log"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/suspenseaction/internal/action"
)

// Producers are the actions the demo renders.
type Producers struct {
	Greet  action.Producer
	Lookup action.Producer
}

// Options tune the coordinators built by New.
type Options struct {
	Fallback          string
	CancelOnSupersede bool
	InitialID         int
	Logger            *log.Logger
}

type focus int

const (
	focusID focus = iota
	focusQuery
)

// App hosts two coordinators: a greeting behind an error boundary and a
// lookup whose failures are recovered into content.
type App struct {
	keys  keyMap
	help  help.Model
	focus focus

	id    int
	query string

	greet  action.Boundary
	lookup action.Model
}

func New(ctx context.Context, p Producers, opts Options) *App {
	if opts.Fallback == "" {
		opts.Fallback = action.DefaultFallback
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	common := []action.Option{
		action.WithContext(ctx),
		action.WithFallback(fallbackStyle.Render(opts.Fallback)),
		action.WithLogger(opts.Logger),
	}
	if opts.CancelOnSupersede {
		common = append(common, action.WithCancelOnSupersede())
	}

	a := &App{
		keys: newKeyMap(),
		help: help.New(),
		id:   opts.InitialID,
	}
	with := func(in action.Inputs) []action.Option {
		return append(slices.Clone(common), action.WithInputs(in))
	}
	a.greet = action.NewBoundary(action.New(p.Greet, with(a.greetInputs())...), renderError)
	a.lookup = action.New(action.Recover(p.Lookup, renderError), with(a.lookupInputs())...)
	return a
}

func renderError(err error) string {
	return errorStyle.Render(action.ErrorContent(err))
}

func (a *App) greetInputs() action.Inputs  { return action.In("id", a.id) }
func (a *App) lookupInputs() action.Inputs { return action.In("query", a.query) }

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.greet.Init(), a.lookup.Init())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.help.Width = m.Width
	case tea.KeyMsg:
		if cmd, quit := a.handleKey(m); quit {
			return a, cmd
		}
	}

	var cmd tea.Cmd
	a.greet, cmd = a.greet.Update(msg)
	cmds = append(cmds, cmd)
	a.lookup, cmd = a.lookup.Update(msg)
	cmds = append(cmds, cmd)

	// every cycle re-derives the inputs; unchanged values schedule nothing
	cmds = append(cmds, a.greet.SetInputs(a.greetInputs()), a.lookup.SetInputs(a.lookupInputs()))
	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Cmd, bool) {
	if m.String() == "ctrl+c" {
		return tea.Quit, true
	}
	if a.focus == focusQuery {
		switch {
		case key.Matches(m, a.keys.Back), key.Matches(m, a.keys.Focus):
			a.focus = focusID
		case key.Matches(m, a.keys.Erase):
			if r := []rune(a.query); len(r) > 0 {
				a.query = string(r[:len(r)-1])
			}
		case m.Type == tea.KeyRunes || m.Type == tea.KeySpace:
			a.query += string(m.Runes)
		}
		return nil, false
	}
	switch {
	case key.Matches(m, a.keys.Quit):
		return tea.Quit, true
	case key.Matches(m, a.keys.Next):
		a.id++
	case key.Matches(m, a.keys.Prev):
		if a.id > 0 {
			a.id--
		}
	case key.Matches(m, a.keys.Reset):
		a.greet.Reset()
	case key.Matches(m, a.keys.Focus):
		a.focus = focusQuery
	}
	return nil, false
}

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Suspense actions"))
	b.WriteString("\n\n")

	greetPane, lookupPane := paneStyle, paneStyle
	if a.focus == focusID {
		greetPane = focusStyle
	} else {
		lookupPane = focusStyle
	}

	child := a.greet.Child()
	header := fmt.Sprintf("%s %s", labelStyle.Render("Greeting"),
		mutedStyle.Render(fmt.Sprintf("id=%d key=%d", a.id, child.Key())))
	b.WriteString(greetPane.Render(header + "\n" + a.greet.View()))
	b.WriteString("\n")

	cursor := ""
	if a.focus == focusQuery {
		cursor = "_"
	}
	header = fmt.Sprintf("%s %s", labelStyle.Render("Lookup"),
		mutedStyle.Render(fmt.Sprintf("query=%q%s key=%d", a.query, cursor, a.lookup.Key())))
	b.WriteString(lookupPane.Render(header + "\n" + a.lookup.View()))
	b.WriteString("\n")

	if a.focus == focusQuery {
		b.WriteString(a.help.View(searchKeyMap{a.keys}))
	} else {
		b.WriteString(a.help.View(a.keys))
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}
