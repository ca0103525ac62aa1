// Package saga runs multi-step writes as named sequential steps. A failing
// step stops the run; completed steps are reported, never compensated.
package saga

import (
	"context"
	"fmt"

	"coordinator-console/internal/observability"
)

// Step is one named backend write.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// PartialFailure reports which step failed and which steps already committed.
type PartialFailure struct {
	FailedStep string
	Committed  []string
	Err        error
}

func (p *PartialFailure) Error() string {
	return fmt.Sprintf("step %s failed after %v: %v", p.FailedStep, p.Committed, p.Err)
}

func (p *PartialFailure) Unwrap() error {
	return p.Err
}

// Partial reports whether any step committed before the failure.
func (p *PartialFailure) Partial() bool {
	return len(p.Committed) > 0
}

type Saga struct {
	name   string
	steps  []Step
	logger *observability.Logger
}

func New(name string, logger *observability.Logger) *Saga {
	return &Saga{name: name, logger: logger}
}

// Then appends a step; nil runs are skipped when the saga executes.
func (s *Saga) Then(name string, run func(ctx context.Context) error) *Saga {
	s.steps = append(s.steps, Step{Name: name, Run: run})
	return s
}

// Run executes the steps in order and returns the committed step names.
// On failure the error is a *PartialFailure.
func (s *Saga) Run(ctx context.Context) ([]string, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "saga", Value: s.name})
	committed := make([]string, 0, len(s.steps))
	for _, step := range s.steps {
		if step.Run == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return committed, s.fail(ctx, step.Name, committed, err)
		}
		if err := step.Run(ctx); err != nil {
			return committed, s.fail(ctx, step.Name, committed, err)
		}
		committed = append(committed, step.Name)
	}
	return committed, nil
}

func (s *Saga) fail(ctx context.Context, step string, committed []string, err error) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "failed_step", Value: step},
		observability.Field{Key: "committed_steps", Value: committed},
	)
	s.logger.Error(ctx, "saga step failed", err)
	done := make([]string, len(committed))
	copy(done, committed)
	return &PartialFailure{FailedStep: step, Committed: done, Err: err}
}
