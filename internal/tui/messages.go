package tui

import (
	"github.com/Veraticus/ascend/internal/engine"
	"github.com/Veraticus/ascend/internal/model"
)

// Action result messages.
type goalCreatedMsg struct {
	err  error
	goal model.Goal
}

type goalToggledMsg struct {
	err     error
	outcome engine.ToggleOutcome
}

type goalArchivedMsg struct {
	err  error
	goal model.Goal
}

type goalDeletedMsg struct {
	err  error
	goal model.Goal
}

// dismissBannerMsg hides the unlock banner if it is still the one with seq.
type dismissBannerMsg struct {
	seq int
}
