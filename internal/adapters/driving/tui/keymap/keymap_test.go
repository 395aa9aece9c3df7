package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_QuitBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Quit.Keys()
	assert.Contains(t, keys, "q")
	assert.Contains(t, keys, "ctrl+c")
}

func TestDefaultKeyMap_HelpBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Help.Keys()
	assert.Contains(t, keys, "?")
}

func TestDefaultKeyMap_BackBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Back.Keys()
	assert.Contains(t, keys, "esc")
}

func TestDefaultKeyMap_UpBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Up.Keys()
	assert.Contains(t, keys, "up")
	assert.Contains(t, keys, "k")
}

func TestDefaultKeyMap_DownBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Down.Keys()
	assert.Contains(t, keys, "down")
	assert.Contains(t, keys, "j")
}

func TestDefaultKeyMap_SelectBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Select.Keys()
	assert.Contains(t, keys, "enter")
}

func TestDefaultKeyMap_TimelineBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Timeline.Keys()
	assert.Contains(t, keys, "t")
}

func TestDefaultKeyMap_LanguageBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Language.Keys()
	assert.Contains(t, keys, "l")
}

func TestDefaultKeyMap_ReloadBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Reload.Keys()
	assert.Contains(t, keys, "r")
}

func TestKeyMap_ShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ShortHelp()

	assert.Len(t, bindings, 2)
}

func TestKeyMap_ListHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ListHelp()

	assert.Len(t, bindings, 4)
}

func TestKeyMap_FullHelp(t *testing.T) {
	km := DefaultKeyMap()

	groups := km.FullHelp()

	require.Len(t, groups, 3)
	for _, group := range groups {
		assert.NotEmpty(t, group)
	}
}

func TestKeyMap_Matches(t *testing.T) {
	km := DefaultKeyMap()

	t.Run("matches bound key", func(t *testing.T) {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
		assert.True(t, km.Matches(msg, km.Quit))
	})

	t.Run("matches special key", func(t *testing.T) {
		msg := tea.KeyMsg{Type: tea.KeyEnter}
		assert.True(t, km.Matches(msg, km.Select))
	})

	t.Run("rejects unbound key", func(t *testing.T) {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}
		assert.False(t, km.Matches(msg, km.Quit))
	})
}
