package view

import (
	"strings"

	"svcctl/internal/api"

	"github.com/mattn/go-runewidth"
)

// Icon constants
const (
	IconActive   = "●"
	IconInactive = "○"
	IconDraft    = "✎"
	IconScroll   = "📜"
	IconLink     = "🔗"
	IconWarning  = "⚠"
	IconCheck    = "✔"
	IconSearch   = "🔍"
)

// SafeIcon pads an icon with one space, or two when the icon occupies two
// cells, so it never swallows the following character.
func SafeIcon(icon string) string {
	spaces := 1
	if runewidth.StringWidth(icon) >= 2 {
		spaces = 2
	}
	return icon + strings.Repeat(" ", spaces)
}

// StateIcon returns the icon for a service state.
func StateIcon(state api.ServiceState) string {
	switch state {
	case api.StateActive:
		return IconActive
	case api.StateDraft:
		return IconDraft
	default:
		return IconInactive
	}
}
