package order

import "fmt"

// Status is the order lifecycle state driving the cancellation workflow.
// PENDING is set at checkout; PROCESSED and REJECTED are terminal.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusProcessed Status = "PROCESSED"
	StatusRejected  Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessed, StatusRejected:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusProcessed || s == StatusRejected
}

// CanTransitionTo enforces monotonic transitions: only PENDING may move,
// and only to a terminal state.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusPending && next.IsTerminal()
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid order status %q", s)
	}
	return status, nil
}

// TransitionError reports a rejected status change without mutating state.
type TransitionError struct {
	From Status
	To   Status
}

func (e TransitionError) Error() string {
	return fmt.Sprintf("cannot transition order from %s to %s", e.From, e.To)
}

// ItemType discriminates the two line item variants.
type ItemType string

const (
	ItemTicket  ItemType = "TICKET"
	ItemProduct ItemType = "PRODUCT"
)

func (t ItemType) IsValid() bool {
	return t == ItemTicket || t == ItemProduct
}
