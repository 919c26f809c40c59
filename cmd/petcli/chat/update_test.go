package chat

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petcli/internal/config"
	"petcli/internal/llm"
	"petcli/internal/pet"
)

func TestSubmitChatFillsPendingSlot(t *testing.T) {
	m := newTestModel(t, &fakeClient{reply: "meow"})

	m, cmd := submit(t, m, "hello there")
	defer m.abortPending()

	assert.True(t, m.isLoading, "a submitted chat line should start a request")
	require.NotNil(t, cmd)
	require.NotNil(t, m.cancelPending)

	all := m.hist.All()
	require.Len(t, all, 1)
	assert.Equal(t, "hello there", all[0].Text)
}

func TestSecondSubmitWhileLoadingIsRejected(t *testing.T) {
	m := newTestModel(t, &fakeClient{reply: "meow"})
	m, _ = submit(t, m, "first")
	defer m.abortPending()

	before := m.hist.Len()
	m, _ = submit(t, m, "second")

	assert.Equal(t, before, m.hist.Len(), "second message must not enter the log while one is pending")
	assert.Contains(t, lastDisplayed(t, m), "still thinking")
}

func TestReplyMergesOnTick(t *testing.T) {
	m := newTestModel(t, &fakeClient{reply: "meow"})
	m, _ = submit(t, m, "hello")

	updated, _ := m.Update(petReplyMsg{id: m.requestSeq, reply: "*purrs* hi!"})
	m = updated.(Model)

	assert.False(t, m.isLoading)
	assert.Nil(t, m.cancelPending)
	all := m.hist.All()
	require.Len(t, all, 2)
	assert.Equal(t, "*purrs* hi!", all[1].Text)
}

func TestAdapterErrorShowsOneMessageAndLoopSurvives(t *testing.T) {
	m := newTestModel(t, &fakeClient{})
	m, _ = submit(t, m, "hello")

	histBefore := m.hist.Len()
	displayBefore := m.display.Len()

	authErr := &llm.APIError{Kind: llm.ErrorAuth, StatusCode: 401}
	updated, _ := m.Update(petErrMsg{id: m.requestSeq, err: authErr})
	m = updated.(Model)

	assert.False(t, m.isLoading)
	assert.Equal(t, histBefore, m.hist.Len(), "errors never enter the conversation log")
	assert.Equal(t, displayBefore+1, m.display.Len(), "exactly one inline error message")
	assert.Contains(t, lastDisplayed(t, m), "authentication failed")

	// The loop keeps accepting input afterwards.
	m, _ = submit(t, m, "are you ok?")
	defer m.abortPending()
	assert.True(t, m.isLoading)
}

func TestCtrlXCancelsPendingRequest(t *testing.T) {
	m := newTestModel(t, &fakeClient{reply: "meow"})
	m, _ = submit(t, m, "hello")
	require.True(t, m.isLoading)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	m = updated.(Model)

	assert.False(t, m.isLoading)
	assert.Nil(t, m.cancelPending)
	assert.Contains(t, lastDisplayed(t, m), "cancelled")
}

func TestCancelledRequestCannotStealReusedSlot(t *testing.T) {
	m := newTestModel(t, &fakeClient{reply: "meow"})

	// First request, cancelled; its completion is still on the way.
	m, _ = submit(t, m, "first")
	staleID := m.requestSeq
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	m = updated.(Model)

	// Slot reused by a second request.
	m, _ = submit(t, m, "second")
	defer m.abortPending()
	require.True(t, m.isLoading)
	displayBefore := m.display.Len()

	// The cancelled request's error arrives late and must be ignored.
	updated, _ = m.Update(petErrMsg{id: staleID, err: context.Canceled})
	m = updated.(Model)
	assert.True(t, m.isLoading, "stale error must not free the live slot")
	assert.Equal(t, displayBefore, m.display.Len(), "stale error must not be shown")

	// So must its reply, were it to arrive instead.
	updated, _ = m.Update(petReplyMsg{id: staleID, reply: "too late"})
	m = updated.(Model)
	assert.True(t, m.isLoading)

	// The live request's reply still lands.
	updated, _ = m.Update(petReplyMsg{id: m.requestSeq, reply: "on time"})
	m = updated.(Model)
	assert.False(t, m.isLoading)
	all := m.hist.All()
	require.NotEmpty(t, all)
	assert.Equal(t, "on time", all[len(all)-1].Text)
}

func TestBareShellMarkerIsIgnored(t *testing.T) {
	m := newTestModel(t, &fakeClient{reply: "meow"})

	m, cmd := submit(t, m, "$")

	assert.Nil(t, cmd)
	assert.False(t, m.isLoading, "an empty shell query must not reach the adapter")
	assert.Zero(t, m.hist.Len())
}

func TestEscQuitsAndSavesSnapshot(t *testing.T) {
	m := newTestModel(t, &fakeClient{reply: "meow"})
	m, _ = submit(t, m, "remember me")
	updated, _ := m.Update(petReplyMsg{id: m.requestSeq, reply: "always"})
	m = updated.(Model)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	snap, ok := config.LoadSnapshot()
	require.True(t, ok, "quit should leave a snapshot behind")
	assert.Len(t, snap.Messages, 2)
}

func TestIdleTickDecaysMood(t *testing.T) {
	m := newTestModel(t, &fakeClient{reply: "meow"})
	require.Equal(t, pet.MoodNeutral, m.petState.Mood())

	updated, cmd := m.Update(idleTickMsg(testNow.Add(10 * time.Hour)))
	m = updated.(Model)

	assert.Equal(t, pet.MoodSad, m.petState.Mood(), "ten ignored hours should sadden the pet")
	assert.NotNil(t, cmd, "the idle ticker must rearm itself")
}

func TestTreatMovesMoodImmediately(t *testing.T) {
	m := newTestModel(t, &fakeClient{reply: "yum"})
	m.petState.Level = 0.2
	require.Equal(t, pet.MoodSad, m.petState.Mood())

	m, _ = submit(t, m, "here, have a treat!")
	defer m.abortPending()

	assert.True(t, m.petState.Mood() > pet.MoodSad, "a treat lands before the reply does")
}

func TestShellQueryRecordsCommand(t *testing.T) {
	m := newTestModel(t, &fakeClient{reply: "that lists files"})
	m, _ = submit(t, m, "$ls -la")
	defer m.abortPending()

	assert.True(t, m.isLoading, "shell queries go to the adapter")
	recent := m.commands.Recent(0)
	require.NotEmpty(t, recent)
	assert.Equal(t, "ls -la", recent[len(recent)-1])
}

func TestScrollKeysStayResponsiveWhileLoading(t *testing.T) {
	m := newTestModel(t, &fakeClient{reply: "meow"})
	m, _ = submit(t, m, "hello")
	defer m.abortPending()

	// None of these should panic or be swallowed by the pending slot.
	for _, key := range []tea.KeyType{tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown} {
		updated, _ := m.Update(tea.KeyMsg{Type: key})
		m = updated.(Model)
	}
	assert.True(t, m.isLoading, "scrolling must not disturb the pending request")
}

func TestHistoryTurnsPairsConversation(t *testing.T) {
	m := newTestModel(t, &fakeClient{reply: "meow"})
	m.appendUser("q1")
	m.appendPet("a1")
	m.appendUser("q2")
	m.appendPet("a2")

	turns := m.historyTurns()
	require.Len(t, turns, 2)
	assert.Equal(t, llm.Turn{User: "q2", Pet: "a2"}, turns[1])
}

func TestViewRendersMoodAndArt(t *testing.T) {
	m := newTestModel(t, &fakeClient{reply: "meow"})
	view := m.View()
	assert.Contains(t, view, "Whiskers")
	assert.True(t, strings.Contains(view, "Neutral") || strings.Contains(view, "Happy"))
}
