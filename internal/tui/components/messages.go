package components

import "github.com/Veraticus/ascend/internal/engine"

// GoalSubmittedMsg is sent when the new-goal form is submitted.
type GoalSubmittedMsg struct {
	Input engine.CreateGoalInput
}

// FormCancelledMsg is sent when the new-goal form is abandoned.
type FormCancelledMsg struct{}
