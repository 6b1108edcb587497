package cmd

import (
	"fmt"
	"unicode/utf8"

	"github.com/elk-language/go-prompt"
	istrings "github.com/elk-language/go-prompt/strings"

	"github.com/clamstew/siteprompt/internal/console"
	"github.com/clamstew/siteprompt/internal/constants"
	"github.com/clamstew/siteprompt/internal/display"
	"github.com/clamstew/siteprompt/internal/logging"
	"github.com/clamstew/siteprompt/internal/registry"
)

// Descriptions shown next to suggestions
const (
	resolvedHint    = "press Enter"
	historyHint     = "show this session's commands"
	cancelHintLabel = "Esc to try again"
)

// InteractiveSession connects a go-prompt line editor to a console.
// go-prompt owns the line; the session mirrors it into the console on
// every render and executes on Enter.
type InteractiveSession struct {
	app      *App
	console  *console.Console
	field    *promptField
	lastText string
	exitFlag bool
}

// completer mirrors the line into the console and offers the matching
// commands. A suggestion replaces the whole line since names contain spaces.
func (s *InteractiveSession) completer(d prompt.Document) ([]prompt.Suggest, istrings.RuneNumber, istrings.RuneNumber) {
	text := d.Text
	endIndex := istrings.RuneNumber(utf8.RuneCountInString(d.TextBeforeCursor()))

	if text != s.lastText {
		s.lastText = text
		s.console.KeyDown(console.KeyEvent{Key: console.KeyOther})
		s.console.InputChanged(text)
	}

	return s.suggestions(), 0, endIndex
}

// suggestions converts the console's matches into go-prompt suggestions
func (s *InteractiveSession) suggestions() []prompt.Suggest {
	names := s.console.Suggestions()
	if len(names) == 0 {
		// Selecting this leaves the line as typed
		return []prompt.Suggest{{Text: s.console.Input(), Description: display.NoMatches + " " + cancelHintLabel}}
	}

	resolved := s.console.Resolved()
	reg := s.console.Registry()
	suggestions := make([]prompt.Suggest, 0, len(names))
	for _, name := range names {
		desc := ""
		if entry, ok := reg.Lookup(name); ok {
			switch entry.Action {
			case registry.ActionNavigate:
				desc = entry.URL
			case registry.ActionHistory:
				desc = historyHint
			}
		}
		if resolved {
			desc = resolvedHint
		}
		suggestions = append(suggestions, prompt.Suggest{Text: name, Description: desc})
	}
	return suggestions
}

// executor submits the line. go-prompt has already started a fresh line,
// so the session is reset right after the result is printed.
func (s *InteractiveSession) executor(input string) {
	if s.exitFlag {
		return
	}

	s.console.InputChanged(input)
	s.console.KeyDown(console.KeyEvent{Key: console.KeyEnter})

	snap := s.console.Snapshot()
	s.app.printer.ShowResult(snap.Error, snap.Output)

	s.console.TryAgain()
	s.lastText = ""
}

// cancel handles Escape: clear the line and the console
func (s *InteractiveSession) cancel(p *prompt.Prompt) bool {
	s.field.p = p
	s.console.KeyDown(console.KeyEvent{Key: console.KeyEscape})
	s.console.TryAgain()
	s.lastText = ""
	return true
}

func (s *InteractiveSession) quit() {
	fmt.Fprintln(s.app.out, "Goodbye!")
	s.exitFlag = true
	s.console.Unmount()
}

func (app *App) runInteractive(c *console.Console) {
	app.printer.ShowBanner(app.cfg.Title, constants.DefaultPlaceholder)

	session := &InteractiveSession{
		app:     app,
		console: c,
		field:   &promptField{},
	}
	c.Mount(session.field)

	logging.Debug("Interactive session started", logging.Fields{"session": c.SessionID()})

	p := prompt.New(
		session.executor,
		prompt.WithCompleter(session.completer),
		prompt.WithPrefix(app.cfg.Prompt),
		prompt.WithTitle(app.cfg.Title),
		prompt.WithPrefixTextColor(prompt.Green),
		prompt.WithSuggestionBGColor(prompt.DarkGray),
		prompt.WithSuggestionTextColor(prompt.White),
		prompt.WithSelectedSuggestionBGColor(prompt.Cyan),
		prompt.WithSelectedSuggestionTextColor(prompt.Black),
		prompt.WithDescriptionBGColor(prompt.DarkGray),
		prompt.WithDescriptionTextColor(prompt.LightGray),
		prompt.WithSelectedDescriptionBGColor(prompt.Cyan),
		prompt.WithSelectedDescriptionTextColor(prompt.Black),
		prompt.WithMaxSuggestion(10),
		prompt.WithCompletionOnDown(),
		prompt.WithExitChecker(func(in string, breakline bool) bool {
			return session.exitFlag
		}),
		prompt.WithKeyBind(prompt.KeyBind{
			Key: prompt.Escape,
			Fn:  session.cancel,
		}),
		prompt.WithKeyBind(prompt.KeyBind{
			Key: prompt.ControlC,
			Fn: func(p *prompt.Prompt) bool {
				fmt.Fprintln(app.out)
				session.quit()
				return false
			},
		}),
		prompt.WithKeyBind(prompt.KeyBind{
			Key: prompt.ControlD,
			Fn: func(p *prompt.Prompt) bool {
				if p.Buffer().Text() == "" {
					session.quit()
				}
				return false
			},
		}),
	)
	session.field.p = p

	p.Run()
}

// promptField lets the console clear the go-prompt line
type promptField struct {
	p *prompt.Prompt
}

var _ console.TextField = (*promptField)(nil)

// SetValue replaces the line with value. Counts are in runes, which is
// never fewer than graphemes; the deletes clamp at the line's ends.
func (f *promptField) SetValue(value string) {
	if f.p == nil {
		return
	}
	d := f.p.Buffer().Document()
	f.p.Delete(istrings.GraphemeNumber(utf8.RuneCountInString(d.TextAfterCursor())))
	f.p.DeleteBeforeCursor(istrings.GraphemeNumber(utf8.RuneCountInString(d.TextBeforeCursor())))
	if value != "" {
		f.p.InsertTextMoveCursor(value, false)
	}
}

// Focus is a no-op: the terminal line always has focus
func (f *promptField) Focus() {}
