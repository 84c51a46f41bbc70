package pickerui

import (
	"bytes"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sashworth/tonepick/internal/media/domain"
	"github.com/sashworth/tonepick/internal/picker"
)

func newTestEnumerator() *stubEnumerator {
	return &stubEnumerator{sounds: []domain.Sound{
		{URI: "tone://ringtone/a", Title: "Alpha", Category: domain.CategoryRingtone},
		{URI: "tone://ringtone/b", Title: "Beta", Category: domain.CategoryRingtone},
		{URI: "tone://ringtone/c", Title: "Gamma", Category: domain.CategoryRingtone},
	}}
}

func TestMain(m *testing.M) {
	// Plain output keeps view assertions free of escape sequences.
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestProgram_CancelEndsWithoutSelection(t *testing.T) {
	ctrl := picker.NewController(ringCfg(), newTestEnumerator(), stubOpener{}, picker.NewRegistry(), nil)
	require.NoError(t, ctrl.Open(picker.PosUnknown))

	tm := teatest.NewTestModel(t, New(ctrl), teatest.WithInitialTermSize(60, 20))

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("Select a sound"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})

	final := tm.FinalModel(t, teatest.WithFinalTimeout(3 * time.Second)).(Model)
	assert.True(t, final.Done())
	assert.False(t, final.Result().Accepted)
}

func TestProgram_ButtonlessReturnsPickedURI(t *testing.T) {
	ctrl := picker.NewController(picker.Config{Category: domain.CategoryRingtone}, newTestEnumerator(), stubOpener{}, picker.NewRegistry(), nil)
	require.NoError(t, ctrl.Open(picker.PosUnknown))

	tm := teatest.NewTestModel(t, New(ctrl), teatest.WithInitialTermSize(60, 20))

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("Alpha"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyDown})
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	final := tm.FinalModel(t, teatest.WithFinalTimeout(3 * time.Second)).(Model)
	assert.True(t, final.Done())
	res := final.Result()
	assert.True(t, res.Accepted)
	assert.Equal(t, "tone://ringtone/b", res.URI)
}
