package llm

import (
	"fmt"
	"strings"
)

// PetSystemPrompt is the pet persona used for plain chat turns.
const PetSystemPrompt = "You are a cute virtual pet cat who is also a terminal expert. " +
	"Respond in a playful, cat-like manner using emojis and cat-like expressions, " +
	"while providing helpful terminal tips. If you notice commands that could be " +
	"improved with pipes, better tools, or more efficient workflows, suggest them " +
	"in a friendly way. Keep responses short, sweet, and educational."

// ShellSystemPrompt is the persona used for $-prefixed shell-assistance
// queries: same cat, more engineer.
const ShellSystemPrompt = "You are a knowledgeable terminal companion. The user is asking " +
	"about a shell command. Explain what it does and suggest improvements: more " +
	"efficient combinations using pipes and redirections, modern alternatives to " +
	"traditional tools, helpful aliases. Keep it concise and practical; the " +
	"occasional cat-themed aside is fine."

// Turn is one prior exchange folded into the prompt for continuity.
type Turn struct {
	User string
	Pet  string
}

// maxContextTurns bounds how much conversation is replayed per request.
const maxContextTurns = 3

// BuildPrompt assembles the user prompt from the current input, the last few
// conversation turns, and recently observed shell commands.
func BuildPrompt(input string, turns []Turn, recentCommands []string) string {
	var sb strings.Builder

	if len(turns) > maxContextTurns {
		turns = turns[len(turns)-maxContextTurns:]
	}
	for _, t := range turns {
		fmt.Fprintf(&sb, "User: %s\nAssistant: %s\n\n", t.User, t.Pet)
	}

	if len(recentCommands) > 0 {
		fmt.Fprintf(&sb, "Recent commands I've seen the user run:\n%s\n\n", strings.Join(recentCommands, "\n"))
	}

	fmt.Fprintf(&sb, "Current user message: %s", input)
	return sb.String()
}
