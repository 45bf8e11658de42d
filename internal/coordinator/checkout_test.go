package coordinator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/storefront-client/internal/coordinator/checkoutlog"
)

type recordingStep struct {
	name        string
	execErr     error
	executed    bool
	compensated bool
}

func (s *recordingStep) Name() string { return s.name }

func (s *recordingStep) Execute(ctx context.Context) error {
	s.executed = true
	return s.execErr
}

func (s *recordingStep) Compensate(ctx context.Context) error {
	s.compensated = true
	return nil
}

type recordingCleanup struct {
	name     string
	execErr  error
	executed bool
}

func (s *recordingCleanup) Name() string { return s.name }

func (s *recordingCleanup) Execute(ctx context.Context) error {
	s.executed = true
	return s.execErr
}

type memoryRepo struct {
	entries []*checkoutlog.Entry
}

func (r *memoryRepo) Save(ctx context.Context, entry *checkoutlog.Entry) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *memoryRepo) statuses() []checkoutlog.Status {
	out := make([]checkoutlog.Status, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Status
	}
	return out
}

func TestStart_AllStepsSucceed(t *testing.T) {
	step := &recordingStep{name: "submit_order"}
	cleanup := &recordingCleanup{name: "clear_cart"}
	repo := &memoryRepo{}

	o := NewOrchestrator("chk-1", `{"user_id":"ana"}`, []Step{step}, []CleanupStep{cleanup}, repo)
	require.NoError(t, o.Start(context.Background()))

	assert.True(t, step.executed)
	assert.False(t, step.compensated)
	assert.True(t, cleanup.executed)
	assert.Equal(t, []checkoutlog.Status{
		checkoutlog.StatusStarted,
		checkoutlog.StatusStepDone,
		checkoutlog.StatusCompleted,
	}, repo.statuses())
	assert.Equal(t, `{"user_id":"ana"}`, repo.entries[0].Payload)
}

func TestStart_StepFailureCompensatesEarlierSteps(t *testing.T) {
	first := &recordingStep{name: "first"}
	second := &recordingStep{name: "second", execErr: errors.New("boom")}
	cleanup := &recordingCleanup{name: "clear_cart"}
	repo := &memoryRepo{}

	o := NewOrchestrator("chk-2", "", []Step{first, second}, []CleanupStep{cleanup}, repo)
	err := o.Start(context.Background())

	require.Error(t, err)
	assert.True(t, first.compensated)
	assert.False(t, second.compensated)
	assert.False(t, cleanup.executed, "cleanup must not run when the transaction failed")
	assert.Contains(t, repo.statuses(), checkoutlog.StatusFailed)
	assert.Contains(t, repo.statuses(), checkoutlog.StatusCompensating)
}

func TestStart_CleanupFailureDoesNotFailCheckout(t *testing.T) {
	step := &recordingStep{name: "submit_order"}
	cleanup := &recordingCleanup{name: "clear_cart", execErr: errors.New("cart service down")}
	repo := &memoryRepo{}

	o := NewOrchestrator("chk-3", "", []Step{step}, []CleanupStep{cleanup}, repo)
	require.NoError(t, o.Start(context.Background()))

	assert.True(t, cleanup.executed)
	assert.Contains(t, repo.statuses(), checkoutlog.StatusCompleted)
	assert.Contains(t, repo.statuses(), checkoutlog.StatusCleanupFailed)
}

func TestStart_NilRepository(t *testing.T) {
	step := &recordingStep{name: "submit_order"}

	o := NewOrchestrator("chk-4", "", []Step{step}, nil, nil)
	require.NoError(t, o.Start(context.Background()))
	assert.True(t, step.executed)
}
