package console

import "time"

// Navigator opens a URL outside the prompt. Calls are fire-and-forget and
// may arrive from timer goroutines, so implementations must be safe for
// concurrent use.
type Navigator interface {
	Navigate(url string)
}

// NavigatorFunc adapts a function to Navigator
type NavigatorFunc func(url string)

// Navigate calls f(url)
func (f NavigatorFunc) Navigate(url string) { f(url) }

// TextField is the externally owned input the console is mounted on.
// The console never renders; it only asks the field to change what it shows.
type TextField interface {
	// SetValue replaces the displayed text
	SetValue(text string)

	// Focus gives the field keyboard focus
	Focus()
}

// Scheduler runs f after d. The default is time.AfterFunc.
type Scheduler func(d time.Duration, f func())
