package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/chartlens-cli/internal/core/palette"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.NotEmpty(t, string(theme.Primary))
	assert.NotEmpty(t, string(theme.Secondary))
	assert.NotEmpty(t, string(theme.Background))
	assert.NotEmpty(t, string(theme.Foreground))
	assert.NotEmpty(t, string(theme.Muted))
	assert.NotEmpty(t, string(theme.Success))
	assert.NotEmpty(t, string(theme.Warning))
	assert.NotEmpty(t, string(theme.Error))
	assert.NotEmpty(t, string(theme.Border))
}

func TestNewStyles_WithTheme(t *testing.T) {
	theme := DefaultTheme()
	styles := NewStyles(theme)

	require.NotNil(t, styles)
	assert.Equal(t, theme, styles.Theme())
}

func TestNewStyles_NilTheme(t *testing.T) {
	styles := NewStyles(nil)

	require.NotNil(t, styles)
	assert.NotNil(t, styles.Theme())
}

func TestStyles_Highlight(t *testing.T) {
	styles := DefaultStyles()

	t.Run("uses the given background hex", func(t *testing.T) {
		style := styles.Highlight("#F8B4B4")
		assert.Equal(t, "#F8B4B4", string(style.GetBackground().(lipgloss.Color)))
	})

	t.Run("empty hex falls back to the neutral background", func(t *testing.T) {
		empty := styles.Highlight("")
		neutral := styles.Highlight(palette.Lighten(palette.Neutral.Hex(), palette.DefaultLightenFactor))

		assert.Equal(t, neutral.Render("x"), empty.Render("x"))
	})
}

func TestStyles_Dot(t *testing.T) {
	styles := DefaultStyles()

	for _, c := range palette.All() {
		style := styles.Dot(c)
		assert.NotEmpty(t, style.Render("●"), "colour %s", c)
	}

	unknown := styles.Dot(palette.ColorID("mauve"))
	assert.Equal(t, styles.Dot(palette.Neutral).Render("●"), unknown.Render("●"))
}
