// Package router classifies raw chat-line input. A line is either a slash
// command, a shell-assistance query (marked with '$'), or plain chat text.
// The command set is a closed enum; anything else starting with '/' is
// reported as unknown without touching state.
package router

import "strings"

// Kind is the top-level classification of an input line.
type Kind int

const (
	KindChat Kind = iota
	KindCommand
	KindShellQuery
)

// Command is the closed set of slash commands.
type Command int

const (
	CommandUnknown Command = iota
	CommandStats
	CommandClear
	CommandPurge
	CommandHelp
	CommandExit
)

// Input is a classified line. Payload holds the chat text, the shell query
// with its marker stripped, or the raw command word for unknowns.
type Input struct {
	Kind    Kind
	Command Command
	Payload string
}

var commands = map[string]Command{
	"/stats": CommandStats,
	"/clear": CommandClear,
	"/purge": CommandPurge,
	"/help":  CommandHelp,
	"/exit":  CommandExit,
}

// Classify maps a raw input line to its kind. Whitespace is trimmed first;
// an empty line classifies as chat with an empty payload and should be
// ignored by the caller.
func Classify(raw string) Input {
	line := strings.TrimSpace(raw)

	if strings.HasPrefix(line, "$") {
		return Input{
			Kind:    KindShellQuery,
			Payload: strings.TrimSpace(strings.TrimPrefix(line, "$")),
		}
	}

	if strings.HasPrefix(line, "/") {
		word := strings.Fields(line)[0]
		if cmd, ok := commands[word]; ok {
			return Input{Kind: KindCommand, Command: cmd, Payload: word}
		}
		return Input{Kind: KindCommand, Command: CommandUnknown, Payload: word}
	}

	return Input{Kind: KindChat, Payload: line}
}

// HelpText lists the available commands for /help.
const HelpText = `Available Commands:
/stats - Display current pet statistics
/clear - Clear chat window
/purge - Remove all chat history
/help  - Show this help message
/exit  - Exit the application

Prefix a line with $ to ask about a shell command, e.g. "$tar -xzf".`
