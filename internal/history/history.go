package history

// Entry is one executed command and what it printed
type Entry struct {
	Command string `json:"command"`
	Output  string `json:"output"`
}

// History is an append-only, unbounded command log.
// It lives only as long as the session that owns it and is not safe for
// concurrent use; the console is its single writer.
type History struct {
	entries []Entry
}

// NewHistory creates an empty history
func NewHistory() *History {
	return &History{}
}

// Append adds an entry to the end of the log
func (h *History) Append(command, output string) {
	h.entries = append(h.entries, Entry{Command: command, Output: output})
}

// Entries returns a copy of the log
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Commands returns the submitted commands in order
func (h *History) Commands() []string {
	out := make([]string, len(h.entries))
	for i, e := range h.entries {
		out[i] = e.Command
	}
	return out
}

// Len returns the number of entries
func (h *History) Len() int {
	return len(h.entries)
}
