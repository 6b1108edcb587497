// Package cmd implements the CLI commands for siteprompt.
//
// # Architecture
//
//   - root.go: App struct, cobra command setup, flags and mode selection
//   - interactive.go: go-prompt session for terminals
//   - lines.go: line-at-a-time session for piped input
//   - run.go: one-shot execution of a single command
//   - list.go: prints the command table
//   - init.go: writes a starter config file
//
// Every mode drives the same console.Console; the frontends only translate
// their input into text changes and key presses and print the results.
//
// # Usage
//
//	func main() {
//	    cmd.Execute()
//	}
package cmd
