// Package registry holds the fixed table of commands the prompt understands.
//
// A Registry is built once at startup from configuration and never mutated.
// Each entry either navigates to an external URL or names a built-in
// behaviour handled by the console (currently only "history").
package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/clamstew/siteprompt/internal/constants"
)

// Action identifies what submitting a command does
type Action int

const (
	// ActionNavigate opens Entry.URL in the browser
	ActionNavigate Action = iota
	// ActionHistory prints the session history
	ActionHistory
)

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case ActionNavigate:
		return "navigate"
	case ActionHistory:
		return "history"
	default:
		return "unknown"
	}
}

// Errors
var (
	ErrEmptyName        = errors.New("command name must not be empty")
	ErrEmptyURL         = errors.New("site command needs a URL")
	ErrDuplicateCommand = errors.New("command already registered")
	ErrUnknownBuiltin   = errors.New("unknown built-in command")
)

// builtinActions maps reserved names to their behaviour
var builtinActions = map[string]Action{
	constants.HistoryCommand: ActionHistory,
}

// Site is a configured navigation command
type Site struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Entry is one registered command
type Entry struct {
	Name   string
	Action Action
	URL    string // set only for ActionNavigate
}

// Registry maps command names to entries, preserving definition order
type Registry struct {
	entries []Entry
	index   map[string]int
}

// New builds a registry from sites followed by built-ins.
// Names are lower-cased so lookups with normalised input succeed.
func New(sites []Site, builtins []string) (*Registry, error) {
	r := &Registry{
		entries: make([]Entry, 0, len(sites)+len(builtins)),
		index:   make(map[string]int, len(sites)+len(builtins)),
	}

	for _, s := range sites {
		if strings.TrimSpace(s.URL) == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptyURL, s.Name)
		}
		if err := r.add(Entry{Name: s.Name, Action: ActionNavigate, URL: strings.TrimSpace(s.URL)}); err != nil {
			return nil, err
		}
	}

	for _, b := range builtins {
		action, ok := builtinActions[strings.ToLower(b)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBuiltin, b)
		}
		if err := r.add(Entry{Name: b, Action: action}); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// MustNew is like New but panics on error
func MustNew(sites []Site, builtins []string) *Registry {
	r, err := New(sites, builtins)
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns the portfolio table shipped with the binary
func Default() *Registry {
	return MustNew(DefaultSites(), constants.DefaultBuiltins)
}

// DefaultSites converts the built-in link table to Sites
func DefaultSites() []Site {
	sites := make([]Site, len(constants.DefaultSites))
	for i, s := range constants.DefaultSites {
		sites[i] = Site{Name: s.Name, URL: s.URL}
	}
	return sites
}

func (r *Registry) add(e Entry) error {
	e.Name = strings.ToLower(e.Name)
	if strings.TrimSpace(e.Name) == "" {
		return ErrEmptyName
	}
	if _, exists := r.index[e.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateCommand, e.Name)
	}
	r.index[e.Name] = len(r.entries)
	r.entries = append(r.entries, e)
	return nil
}

// Lookup returns the entry registered under name, if any.
// The match is exact; callers lower-case the input first.
func (r *Registry) Lookup(name string) (Entry, bool) {
	i, ok := r.index[name]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// AllNames returns every command name in definition order
func (r *Registry) AllNames() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns a copy of all entries in definition order
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of registered commands
func (r *Registry) Len() int {
	return len(r.entries)
}
