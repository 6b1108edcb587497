// Package constants provides shared constants used across the application
// to avoid circular dependencies between packages.
package constants

import "time"

// AppName is used for config directories and the default log fields
const AppName = "siteprompt"

// Timing constants
const (
	// DefaultNavigationDelay is how long an "Opening site" acknowledgment is
	// visible before the browser is asked to open the URL
	DefaultNavigationDelay = 600 * time.Millisecond
)

// Presentation defaults
const (
	DefaultTitle       = "clay.codes"
	DefaultPrompt      = "$> "
	DefaultPlaceholder = "run a command ..."
)

// HistoryCommand is the reserved built-in that prints the session history
const HistoryCommand = "history"

// DefaultSite is one entry of the built-in link table
type DefaultSite struct {
	Name string
	URL  string
}

// DefaultSites is the portfolio link table, in display order
var DefaultSites = []DefaultSite{
	{Name: "twitter", URL: "https://twitter.com/Clay_Stewart"},
	{Name: "github", URL: "https://github.com/clamstew"},
	{Name: "hire me", URL: "https://www.linkedin.com/in/claystewart/"},
	{Name: "site code", URL: "https://github.com/clamstew/clay.codes"},
	{Name: "notes", URL: "https://notes.build"},
}

// DefaultBuiltins are the reserved commands handled by the console itself
var DefaultBuiltins = []string{HistoryCommand}
