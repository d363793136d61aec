package expand

import "fmt"

// FormatError reports a malformed node-range expression or task-count token.
// Expr holds the offending input so the process boundary can surface it.
type FormatError struct {
	Expr   string
	Reason string
}

// Error implements the error interface for FormatError.
func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed expression %q: %s", e.Expr, e.Reason)
}

// MismatchError reports that the expanded node list and task counts disagree
// in length. Both lengths are carried for diagnostics.
type MismatchError struct {
	NodeCount int
	TaskCount int
}

// Error implements the error interface for MismatchError.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("node list and task counts differ in length: %d nodes vs %d task entries", e.NodeCount, e.TaskCount)
}
