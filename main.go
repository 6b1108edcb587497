package main

import "github.com/clamstew/siteprompt/cmd"

func main() {
	cmd.Execute()
}
