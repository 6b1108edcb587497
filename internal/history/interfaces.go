// Package history provides the in-memory command log for a prompt session.
package history

// Log defines the interface for the session's command history.
// This interface enables dependency injection and easier testing.
type Log interface {
	// Append records a submitted command and the text it produced
	Append(command, output string)

	// Entries returns a copy of every entry in submission order
	Entries() []Entry

	// Commands returns just the submitted commands in order
	Commands() []string

	// Len returns the number of recorded submissions
	Len() int
}

// Ensure concrete type implements the interface
var _ Log = (*History)(nil)
