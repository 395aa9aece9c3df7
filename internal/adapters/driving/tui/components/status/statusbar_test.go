package status

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/chartlens-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/chartlens-cli/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	t.Run("creates bar with defaults", func(t *testing.T) {
		bar := NewBar(nil, nil)

		require.NotNil(t, bar)
		assert.Equal(t, StateReady, bar.State())
		assert.Equal(t, 80, bar.Width())
		assert.Zero(t, bar.PatientCount())
	})

	t.Run("uses provided styles and keymap", func(t *testing.T) {
		s := styles.DefaultStyles()
		km := keymap.DefaultKeyMap()

		bar := NewBar(s, km)

		require.NotNil(t, bar)
		assert.Equal(t, s, bar.styles)
		assert.Equal(t, km, bar.keymap)
	})
}

func TestBar_View(t *testing.T) {
	t.Run("ready state without patients", func(t *testing.T) {
		bar := NewBar(nil, nil)

		out := bar.View()

		assert.Contains(t, out, "Ready")
	})

	t.Run("ready state with patients", func(t *testing.T) {
		bar := NewBar(nil, nil)
		bar.SetPatientCount(4)

		out := bar.View()

		assert.Contains(t, out, "4 patients")
	})

	t.Run("loading state", func(t *testing.T) {
		bar := NewBar(nil, nil)
		bar.SetState(StateLoading)

		assert.Contains(t, bar.View(), "Loading...")
	})

	t.Run("error state with message", func(t *testing.T) {
		bar := NewBar(nil, nil)
		bar.SetState(StateError)
		bar.SetMessage("records unavailable")

		out := bar.View()

		assert.Contains(t, out, "Error: records unavailable")
	})

	t.Run("error state without message", func(t *testing.T) {
		bar := NewBar(nil, nil)
		bar.SetState(StateError)

		assert.Contains(t, bar.View(), "Error")
	})

	t.Run("shows key hints", func(t *testing.T) {
		bar := NewBar(nil, nil)

		out := bar.View()

		assert.Contains(t, out, "q: quit")
		assert.Contains(t, out, "?: help")
	})

	t.Run("list hints when patients loaded", func(t *testing.T) {
		bar := NewBar(nil, nil)
		bar.SetPatientCount(2)

		out := bar.View()

		assert.Contains(t, out, "enter: select")
	})
}

func TestBar_SetWidth(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)

	assert.Equal(t, 120, bar.Width())
	assert.NotEmpty(t, bar.View())
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("boom")
	bar.SetPatientCount(7)

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
	assert.Zero(t, bar.PatientCount())
}

func TestBar_Update(t *testing.T) {
	bar := NewBar(nil, nil)

	updated, cmd := bar.Update(nil)

	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestBar_ViewPadding(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(10)

	out := bar.View()

	// Narrow widths still render left and right without panicking.
	assert.True(t, strings.Contains(out, "Ready") || out != "")
}
