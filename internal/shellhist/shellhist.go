// Package shellhist ingests the user's recent shell commands so the pet can
// comment on them. It reads the first shell history file it finds and keeps
// a bounded ring of cleaned command lines.
package shellhist

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Ring holds the most recent commands, oldest first.
type Ring struct {
	limit    int
	commands []string
}

// NewRing returns a ring keeping at most limit commands.
func NewRing(limit int) *Ring {
	if limit <= 0 {
		limit = 50
	}
	return &Ring{limit: limit}
}

// Add records one command, evicting the oldest when full. Blank commands
// are dropped.
func (r *Ring) Add(cmd string) {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return
	}
	if len(r.commands) >= r.limit {
		r.commands = append(r.commands[:0], r.commands[len(r.commands)-r.limit+1:]...)
	}
	r.commands = append(r.commands, cmd)
}

// Recent returns up to n of the newest commands, oldest first.
func (r *Ring) Recent(n int) []string {
	if n <= 0 || n > len(r.commands) {
		n = len(r.commands)
	}
	out := make([]string, n)
	copy(out, r.commands[len(r.commands)-n:])
	return out
}

// Len reports how many commands are held.
func (r *Ring) Len() int { return len(r.commands) }

// historyFiles in preference order, relative to the home directory.
var historyFiles = []string{".zsh_history", ".bash_history", ".history"}

// LoadFromHome fills the ring from the first readable shell history file
// under the user's home directory. Absence of any file is not an error.
func (r *Ring) LoadFromHome() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	for _, name := range historyFiles {
		f, err := os.Open(filepath.Join(home, name))
		if err != nil {
			continue
		}
		r.loadFrom(f)
		f.Close()
		return nil
	}
	return nil
}

func (r *Ring) loadFrom(f *os.File) {
	scanner := bufio.NewScanner(f)
	// History lines can be long; default token size is too small.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		r.Add(CleanLine(scanner.Text()))
	}
}

// CleanLine strips zsh extended-history metadata (": 1700000000:0;cmd")
// leaving the bare command.
func CleanLine(line string) string {
	if strings.HasPrefix(line, ":") {
		if idx := strings.Index(line, ";"); idx >= 0 {
			return strings.TrimSpace(line[idx+1:])
		}
	}
	return strings.TrimSpace(line)
}
