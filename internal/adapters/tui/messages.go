package tui

import "go.trai.ch/cook/internal/core/domain"

// MsgProgress carries a progress snapshot of the running session.
type MsgProgress struct {
	Progress domain.Progress
}

// MsgReport carries the final report. The program quits once it is drawn.
type MsgReport struct {
	Report domain.CookReport
}
