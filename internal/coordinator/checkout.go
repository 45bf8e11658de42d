// Package coordinator runs the checkout transaction: a sequence of Steps
// executed up to a commit point, followed by best-effort cleanup steps.
//
// Steps before the commit point carry a compensating action and are rolled
// back LIFO if a later step fails. Cleanup steps run only after every Step
// succeeded; their failure is logged and recorded but never revokes the
// committed purchase.
package coordinator

import (
	"context"
	"log/slog"

	"github.com/jcmexdev/storefront-client/internal/coordinator/checkoutlog"
)

// Step is a single transactional unit of work in the checkout.
// Each step must have a compensating action to undo its effects.
type Step interface {
	Name() string
	Execute(ctx context.Context) error
	Compensate(ctx context.Context) error
}

// CleanupStep runs after the commit point. It has no compensating action
// because nothing is undone once the order is placed.
type CleanupStep interface {
	Name() string
	Execute(ctx context.Context) error
}

// Orchestrator manages one checkout execution.
type Orchestrator struct {
	id       string
	payload  string
	steps    []Step
	cleanups []CleanupStep
	repo     checkoutlog.Repository // nil-safe: persistence skipped if nil
}

// NewOrchestrator builds an orchestrator for a single execution. The id
// groups the audit log entries; payload is the JSON-serialised submission
// stored on the STARTED entry. repo may be nil.
func NewOrchestrator(id, payload string, steps []Step, cleanups []CleanupStep, repo checkoutlog.Repository) *Orchestrator {
	return &Orchestrator{
		id:       id,
		payload:  payload,
		steps:    steps,
		cleanups: cleanups,
		repo:     repo,
	}
}

// Start runs the transactional steps sequentially. If one fails, all
// previously successful steps are compensated and the error is returned.
// Once every step succeeded the checkout is committed: cleanup steps run
// afterwards and cannot fail the execution.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.saveLog(ctx, checkoutlog.StatusStarted, "", o.payload, nil)

	var successful []Step
	for _, step := range o.steps {
		slog.InfoContext(ctx, "executing checkout step", "checkout_id", o.id, "step", step.Name())
		if err := step.Execute(ctx); err != nil {
			slog.ErrorContext(ctx, "checkout step failed, rolling back",
				"checkout_id", o.id, "step", step.Name(), "error", err)
			o.saveLog(ctx, checkoutlog.StatusFailed, step.Name(), "", []string{err.Error()})
			o.rollback(ctx, successful)
			return err
		}
		o.saveLog(ctx, checkoutlog.StatusStepDone, step.Name(), "", nil)
		successful = append(successful, step)
	}

	o.saveLog(ctx, checkoutlog.StatusCompleted, "", "", nil)

	// Commit point passed. From here on, failures only warn.
	for _, c := range o.cleanups {
		if err := c.Execute(ctx); err != nil {
			slog.WarnContext(ctx, "checkout cleanup failed",
				"checkout_id", o.id, "step", c.Name(), "error", err)
			o.saveLog(ctx, checkoutlog.StatusCleanupFailed, c.Name(), "", []string{err.Error()})
		}
	}

	return nil
}

func (o *Orchestrator) rollback(ctx context.Context, steps []Step) {
	for i := len(steps) - 1; i >= 0; i-- {
		step := steps[i]
		slog.InfoContext(ctx, "compensating checkout step", "checkout_id", o.id, "step", step.Name())
		o.saveLog(ctx, checkoutlog.StatusCompensating, step.Name(), "", nil)
		if err := step.Compensate(ctx); err != nil {
			slog.ErrorContext(ctx, "CRITICAL: failed to compensate checkout step",
				"checkout_id", o.id, "step", step.Name(), "error", err)
		}
	}
}

func (o *Orchestrator) saveLog(ctx context.Context, status checkoutlog.Status, step, payload string, errs []string) {
	if o.repo == nil {
		return
	}
	entry := checkoutlog.NewEntry(ctx, o.id, status, step, payload, errs)
	if err := o.repo.Save(ctx, entry); err != nil {
		slog.WarnContext(ctx, "failed to persist checkout log entry",
			"checkout_id", o.id, "status", status, "error", err)
	}
}
