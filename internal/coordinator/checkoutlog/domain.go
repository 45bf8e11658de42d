// Package checkoutlog defines the audit trail for checkout executions.
//
// Every state transition of a checkout run is appended as an immutable
// entry. The log serves two purposes: you can see exactly where a purchase
// attempt got stuck (and correlate it with a distributed trace via the
// trace_id field), and after a crash the latest entry tells you whether the
// order was submitted before the process died.
package checkoutlog

import "time"

// Status represents the lifecycle state of a checkout execution.
type Status string

const (
	StatusStarted       Status = "STARTED"
	StatusStepDone      Status = "STEP_DONE"
	StatusCompleted     Status = "COMPLETED"
	StatusCompensating  Status = "COMPENSATING"
	StatusFailed        Status = "FAILED"
	StatusCleanupFailed Status = "CLEANUP_FAILED"
)

// Entry is a point-in-time snapshot of one checkout execution.
type Entry struct {
	// CheckoutID identifies the execution; all entries of one run share it.
	CheckoutID string

	// Status is the lifecycle state at the time this entry was written.
	Status Status

	// CurrentStep is the step that just executed or failed.
	CurrentStep string

	// Payload is the JSON-serialised order submission, written once on the
	// STARTED entry so a failed run can be inspected later.
	Payload string

	// ErrorMessages accumulates failure details as a JSON array of strings.
	ErrorMessages string

	// TraceID and SpanID come from the OpenTelemetry span active when the
	// entry was written, linking the row to the full distributed trace.
	TraceID string
	SpanID  string

	UpdatedAt time.Time
}
