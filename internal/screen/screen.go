// Package screen defines the contract between the app frame and the
// individual screens it hosts.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashdeck/internal/ui/layout"
)

// Screen is one full-screen view in the navigation stack. The app frame
// owns the header and footer; View renders only the body, sized to the
// space the frame hands it.
type Screen interface {
	Init() tea.Cmd

	// Update handles a message and returns the screen to keep on the
	// stack, possibly a different one.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	View(width, height int) string

	// Title labels the screen in the header.
	Title() string
}

// KeyHintProvider lets a screen supply its own footer key hints. Screens
// without it get the frame's defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
