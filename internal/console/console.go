// Package console implements the command resolution and feedback engine
// behind the prompt.
//
// A Console owns one session: the text currently typed, the message produced
// by the last submission and the history log. Frontends feed it keystrokes
// and text changes and render its Snapshot; it never draws anything itself.
//
// # Usage
//
//	c := console.New(registry.Default(), console.Options{
//	    Navigator: navigator.NewBrowser(logger),
//	})
//	c.InputChanged("twitter")
//	c.KeyDown(console.KeyEvent{Key: console.KeyEnter})
//	fmt.Println(c.Snapshot().Output) // Opening site: https://twitter.com/...
package console

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/clamstew/siteprompt/internal/constants"
	"github.com/clamstew/siteprompt/internal/history"
	"github.com/clamstew/siteprompt/internal/logging"
	"github.com/clamstew/siteprompt/internal/registry"
)

// Message formats shown to the user
const (
	OpeningSiteFormat     = "Opening site: %s"
	CommandNotFoundFormat = "bash: command not found: %s"
)

// HistorySeparator joins commands in the history built-in's output
const HistorySeparator = "\n"

// Key identifies the key in a KeyEvent
type Key int

const (
	// KeyOther is any key without special meaning
	KeyOther Key = iota
	// KeyEnter submits unless Shift is held
	KeyEnter
	// KeyEscape cancels the current input
	KeyEscape
)

// KeyEvent is a key press delivered by the text field
type KeyEvent struct {
	Key   Key
	Shift bool
}

// State is the prompt's position in the typing/submission cycle
type State int

const (
	// StateIdle means the buffer is empty
	StateIdle State = iota
	// StateTyping means there is input that does not resolve to one command
	StateTyping
	// StateResolved means the input exactly names a single command
	StateResolved
	// StateExecuted means a submission's result is being shown
	StateExecuted
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTyping:
		return "typing"
	case StateResolved:
		return "resolved"
	case StateExecuted:
		return "executed"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only copy of the session for rendering
type Snapshot struct {
	SessionID   string
	Input       string
	Error       string
	Output      string
	History     []history.Entry
	Suggestions []string
	Resolved    bool
	State       State
}

// Options configures a Console
type Options struct {
	// Navigator receives URLs of submitted site commands. Nil drops them.
	Navigator Navigator

	// NavigationDelay is the pause between the acknowledgment and the
	// navigation. Zero means constants.DefaultNavigationDelay; use a
	// negative value to navigate without waiting.
	NavigationDelay time.Duration

	// Schedule defers navigation. Defaults to time.AfterFunc.
	Schedule Scheduler

	// Logger receives debug events. Defaults to a silent logger.
	Logger *logging.Logger
}

// Console owns the session state and the transitions between states.
// Its methods are meant to be called from a single event loop.
type Console struct {
	reg      *registry.Registry
	nav      Navigator
	delay    time.Duration
	schedule Scheduler
	log      *logging.FieldLogger

	id       string
	input    string
	lastErr  string
	lastOut  string
	executed bool
	history  history.Log
	field    TextField

	pending sync.WaitGroup
}

// New creates a console over reg with an empty session
func New(reg *registry.Registry, opts Options) *Console {
	if opts.NavigationDelay == 0 {
		opts.NavigationDelay = constants.DefaultNavigationDelay
	}
	if opts.NavigationDelay < 0 {
		opts.NavigationDelay = 0
	}
	if opts.Schedule == nil {
		opts.Schedule = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}
	if opts.Logger == nil {
		opts.Logger = logging.New(logging.Options{Level: logging.LevelNone})
	}

	id := uuid.New().String()
	return &Console{
		reg:      reg,
		nav:      opts.Navigator,
		delay:    opts.NavigationDelay,
		schedule: opts.Schedule,
		log:      opts.Logger.WithFields(logging.Fields{"session": id}),
		id:       id,
		history:  history.NewHistory(),
	}
}

// Mount binds the console to a text field and focuses it
func (c *Console) Mount(field TextField) {
	c.field = field
	if field != nil {
		field.Focus()
	}
}

// Unmount releases the bound text field
func (c *Console) Unmount() {
	c.field = nil
}

// InputChanged replaces the buffer with the field's current text, verbatim
func (c *Console) InputChanged(raw string) {
	c.input = raw
}

// KeyDown handles a key press. Enter without Shift submits, Escape cancels
// and any other key clears the previous submission's message.
func (c *Console) KeyDown(ev KeyEvent) {
	switch {
	case ev.Key == KeyEnter && !ev.Shift:
		c.Submit()
	case ev.Key == KeyEscape:
		c.Cancel()
	default:
		c.clearMessages()
	}
}

// Submit executes the buffer as a command
func (c *Console) Submit() {
	command := strings.ToLower(c.input)
	c.clearMessages()

	entry, ok := c.reg.Lookup(command)
	switch {
	case ok && entry.Action == registry.ActionNavigate:
		c.lastOut = fmt.Sprintf(OpeningSiteFormat, entry.URL)
		c.history.Append(command, c.lastOut)
		c.scheduleNavigation(entry.URL)
		c.log.Debug("Command submitted", logging.Fields{"command": command, "outcome": "navigate", "url": entry.URL})

	case ok && entry.Action == registry.ActionHistory:
		commands := append(c.history.Commands(), command)
		c.lastOut = strings.Join(commands, HistorySeparator)
		c.history.Append(command, c.lastOut)
		c.log.Debug("Command submitted", logging.Fields{"command": command, "outcome": "history", "entries": len(commands)})

	default:
		c.lastErr = fmt.Sprintf(CommandNotFoundFormat, command)
		c.history.Append(command, c.lastErr)
		c.log.Debug("Command submitted", logging.Fields{"command": command, "outcome": "not_found"})
	}

	c.executed = true
}

// Cancel clears the buffer and any message. History is kept.
func (c *Console) Cancel() {
	c.input = ""
	c.clearMessages()
}

// TryAgain cancels and also empties the bound text field
func (c *Console) TryAgain() {
	c.Cancel()
	if c.field != nil {
		c.field.SetValue("")
	}
}

func (c *Console) clearMessages() {
	c.lastErr = ""
	c.lastOut = ""
	c.executed = false
}

func (c *Console) scheduleNavigation(url string) {
	if c.nav == nil {
		return
	}
	nav := c.nav
	c.pending.Add(1)
	c.schedule(c.delay, func() {
		defer c.pending.Done()
		nav.Navigate(url)
	})
}

// Wait blocks until every scheduled navigation has run or ctx is done
func (c *Console) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Suggestions returns the registry names matching the current buffer
func (c *Console) Suggestions() []string {
	return Filter(c.reg.AllNames(), c.input)
}

// Resolved reports whether the buffer names exactly one command verbatim
func (c *Console) Resolved() bool {
	return IsResolved(c.Suggestions(), c.input)
}

// State returns where the session is in the input cycle
func (c *Console) State() State {
	switch {
	case c.executed:
		return StateExecuted
	case c.input == "":
		return StateIdle
	case c.Resolved():
		return StateResolved
	default:
		return StateTyping
	}
}

// Input returns the current buffer
func (c *Console) Input() string { return c.input }

// LastError returns the message of a failed submission, if any
func (c *Console) LastError() string { return c.lastErr }

// LastOutput returns the message of a successful submission, if any
func (c *Console) LastOutput() string { return c.lastOut }

// History returns a copy of the session log
func (c *Console) History() []history.Entry { return c.history.Entries() }

// SessionID returns the id used to tag this session's log lines
func (c *Console) SessionID() string { return c.id }

// Registry returns the registry the console resolves against
func (c *Console) Registry() *registry.Registry { return c.reg }

// Snapshot copies the session for a renderer
func (c *Console) Snapshot() Snapshot {
	suggestions := c.Suggestions()
	return Snapshot{
		SessionID:   c.id,
		Input:       c.input,
		Error:       c.lastErr,
		Output:      c.lastOut,
		History:     c.history.Entries(),
		Suggestions: suggestions,
		Resolved:    IsResolved(suggestions, c.input),
		State:       c.State(),
	}
}
