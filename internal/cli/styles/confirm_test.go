package styles_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/bsptile/internal/cli/styles"
)

func press(m styles.ConfirmModel, msgs ...tea.KeyMsg) styles.ConfirmModel {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestConfirmModel(t *testing.T) {
	theme := styles.NewTheme()
	yes := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	t.Run("defaults to no", func(t *testing.T) {
		m := press(styles.NewConfirm(theme, "Delete layout 1a2b3c4d?"), enter)
		assert.True(t, m.Done())
		assert.False(t, m.Result())
	})

	t.Run("yes then enter confirms", func(t *testing.T) {
		m := press(styles.NewConfirm(theme, "Delete?"), yes, enter)
		assert.True(t, m.Result())
	})

	t.Run("tab toggles", func(t *testing.T) {
		m := press(styles.NewConfirm(theme, "Delete?"), tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
		assert.False(t, m.Yes)
	})

	t.Run("esc cancels and freezes the answer", func(t *testing.T) {
		m := press(styles.NewConfirm(theme, "Delete?"), tea.KeyMsg{Type: tea.KeyEsc}, yes, enter)
		assert.True(t, m.Canceled)
		assert.False(t, m.Confirmed)
		assert.False(t, m.Result())
	})

	t.Run("view shows message and key hints", func(t *testing.T) {
		view := styles.NewConfirm(theme, "Delete layout 1a2b3c4d?").View()
		assert.Contains(t, view, "Delete layout 1a2b3c4d?")
		assert.Contains(t, view, "enter confirm")
	})
}
