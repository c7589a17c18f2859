// Package input parses and completes the TUI command prompt.
package input

import "strings"

// PromptCommand describes a command suggestion entry.
type PromptCommand struct {
	Name        string
	Usage       string
	Description string
}

// Commands lists the slash commands available from the grid.
var Commands = []PromptCommand{
	{Name: "/goto", Usage: "DATE", Description: "Jump to the week containing DATE"},
	{Name: "/tz", Usage: "ZONE", Description: "Switch the display timezone"},
	{Name: "/template", Usage: "save|reset", Description: "Save or restore the base template"},
	{Name: "/autoseed", Usage: "on|off", Description: "Seed new weeks from the template"},
	{Name: "/notes", Usage: "TEXT", Description: "Replace the notes"},
	{Name: "/export", Usage: "[FILE]", Description: "Write the week as an iCalendar file"},
	{Name: "/clear", Usage: "", Description: "Clear the selected block"},
}

// PromptMatchingCommands returns commands that match the current input prefix.
func PromptMatchingCommands(input string, commands []PromptCommand) []PromptCommand {
	if !strings.HasPrefix(strings.TrimSpace(input), "/") {
		return nil
	}
	if strings.Contains(input, " ") {
		return nil
	}

	prefix := strings.ToLower(strings.TrimSpace(input))
	matches := make([]PromptCommand, 0, len(commands))
	for _, cmd := range commands {
		if strings.HasPrefix(strings.ToLower(cmd.Name), prefix) {
			matches = append(matches, cmd)
		}
	}
	return matches
}

// PromptAutocomplete returns the first matching command and whether it exists.
func PromptAutocomplete(input string, commands []PromptCommand) (string, bool) {
	matches := PromptMatchingCommands(input, commands)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Name + " ", true
}

// ParsePrompt splits a prompt line into a lower-cased command name and its
// argument text. Input without a leading slash yields an empty name.
func ParsePrompt(line string) (name, args string) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "/") {
		return "", line
	}
	name, args, _ = strings.Cut(line, " ")
	return strings.ToLower(name), strings.TrimSpace(args)
}
