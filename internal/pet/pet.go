// Package pet holds the pet's state and the mood engine.
// Mood is a pure function of the previous state, the event applied,
// and the clock passed in; nothing here touches I/O or globals.
package pet

import (
	"fmt"
	"time"
)

// Mood is the displayed emotional band, derived from the continuous level.
type Mood int

const (
	MoodSad Mood = iota
	MoodNeutral
	MoodHappy
)

// String returns the display name for the mood band.
func (m Mood) String() string {
	switch m {
	case MoodHappy:
		return "Happy"
	case MoodNeutral:
		return "Neutral"
	default:
		return "Sad"
	}
}

// Event tags the kind of interaction driving a mood update.
type Event int

const (
	EventChat Event = iota
	EventTreat
	EventPlay
	EventIdle
)

// Level deltas per event. Idle decay is applied per elapsed hour.
const (
	chatDelta  = 0.10
	treatDelta = 0.20
	playDelta  = 0.15
	idleDecay  = 0.10

	levelFloor = 0.10
	levelCeil  = 1.0

	// Band thresholds: level > happyThreshold is Happy,
	// level > sadThreshold is Neutral, anything else is Sad.
	happyThreshold = 0.8
	sadThreshold   = 0.4
)

// State is the pet's complete session state.
type State struct {
	Name             string    `json:"name"`
	Level            float64   `json:"level"` // 0.10 .. 1.0
	LastInteraction  time.Time `json:"last_interaction"`
	InteractionCount int       `json:"interaction_count"`
}

// NewState returns a freshly hatched pet.
func NewState(name string, now time.Time) State {
	return State{
		Name:            name,
		Level:           0.8,
		LastInteraction: now,
	}
}

// Mood maps the continuous level onto the displayed band.
func (s State) Mood() Mood {
	switch {
	case s.Level > happyThreshold:
		return MoodHappy
	case s.Level > sadThreshold:
		return MoodNeutral
	default:
		return MoodSad
	}
}

// MoodPercent is the level as a whole percentage for display.
func (s State) MoodPercent() int {
	return int(s.Level * 100)
}

// StatsLine formats the /stats summary.
func (s State) StatsLine() string {
	return fmt.Sprintf("Current Stats:\nName: %s\nMood: %s (%d%%)\nLast Interaction: %s\nInteractions: %d",
		s.Name, s.Mood(), s.MoodPercent(),
		s.LastInteraction.UTC().Format("2006-01-02 15:04:05 UTC"),
		s.InteractionCount)
}

// Advance applies one event at the given time and returns the new state.
// Total over all inputs: unknown events behave like EventIdle.
//
// Treat and Play carry a band guarantee: if the raw delta does not move the
// pet into a better band, the level is lifted to the floor of the next band,
// so a sulking pet always responds to direct affection.
func Advance(s State, ev Event, now time.Time) State {
	switch ev {
	case EventChat:
		s = applyPositive(s, chatDelta, now)
	case EventTreat:
		s = applyPositive(s, treatDelta, now)
		s.Level = atLeastNextBand(s.Level, s.Level-treatDelta)
	case EventPlay:
		s = applyPositive(s, playDelta, now)
		s.Level = atLeastNextBand(s.Level, s.Level-playDelta)
	default: // EventIdle
		idle := now.Sub(s.LastInteraction)
		if idle > 0 {
			s.Level -= idle.Hours() * idleDecay
		}
	}
	s.Level = clamp(s.Level)
	return s
}

func applyPositive(s State, delta float64, now time.Time) State {
	s.Level += delta
	s.LastInteraction = now
	s.InteractionCount++
	return s
}

// atLeastNextBand lifts level so it sits strictly above the threshold the
// pre-delta level was under, if the delta alone did not get there.
func atLeastNextBand(level, before float64) float64 {
	const bump = 0.01 // thresholds are exclusive
	switch {
	case before <= sadThreshold && level <= sadThreshold:
		return sadThreshold + bump
	case before <= happyThreshold && before > sadThreshold && level <= happyThreshold:
		return happyThreshold + bump
	default:
		return level
	}
}

func clamp(level float64) float64 {
	if level < levelFloor {
		return levelFloor
	}
	if level > levelCeil {
		return levelCeil
	}
	return level
}
