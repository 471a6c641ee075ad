package entities

import "time"

// DemoStep is the state of the demo wizard.
type DemoStep string

const (
	DemoStepInput      DemoStep = "input"
	DemoStepProcessing DemoStep = "processing"
	DemoStepResult     DemoStep = "result"
)

// DemoSession is a snapshot of one demo wizard.
type DemoSession struct {
	ID           string
	Step         DemoStep
	Params       *EstimateParams
	Estimate     *Estimate
	StartedAt    time.Time
	LastDuration time.Duration
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
