package themes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultStylesUsePalette(t *testing.T) {
	// Styles must draw from the same colors the theme exposes, so a
	// palette edit propagates everywhere.
	assert.Equal(t, Default.Accent, Default.OperatorButton.GetBackground())
	assert.Equal(t, Default.Accent, Default.Error.GetForeground())
	assert.Equal(t, Default.Confirm, Default.EqualsButton.GetBackground())
	assert.Equal(t, Default.Surface, Default.DigitButton.GetBackground())
	assert.Equal(t, Default.Foreground, Default.Display.GetBackground())
	assert.Equal(t, Default.Background, Default.Display.GetForeground())
	assert.Equal(t, Default.Muted, Default.Help.GetForeground())
	assert.Equal(t, Default.Muted, Default.HistoryEntry.GetForeground())
}
