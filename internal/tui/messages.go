package tui

import (
	"time"

	"github.com/cashlyze/cashlyze/internal/database/repository"
)

type errMsg struct{ error }

type statusMsg string

// dashboardDataMsg carries one load of the dashboard for load id load.
type dashboardDataMsg struct {
	load         uint64
	month        repository.PeriodSummary
	week         repository.PeriodSummary
	categories   []repository.Category
	trend        []repository.TrendPoint
	transactions []repository.Transaction
	emis         []repository.EMI
	insight      string
}

type dashboardErrMsg struct {
	load uint64
	err  error
}

// fadeFrameMsg is one tick of the total-spend fade for run run.
type fadeFrameMsg struct {
	run uint64
	at  time.Time
}
