package chat

import (
	"petcli/internal/config"
	"petcli/internal/logging"
)

// saveSession snapshots the pet and the bounded chat log to disk. Failures
// are logged, never surfaced: losing a snapshot is not worth interrupting a
// conversation.
func (m Model) saveSession() {
	snap := config.Snapshot{
		Pet:      m.petState,
		Messages: m.hist.All(),
	}
	if err := config.SaveSnapshot(snap); err != nil {
		logging.Get(logging.CategorySession).Errorf("snapshot save failed: %v", err)
		return
	}
	logging.Get(logging.CategorySession).Debugf("session %s saved, %d messages", m.sessionID, m.hist.Len())
}
