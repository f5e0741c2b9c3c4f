package roster

import "fmt"

// RejectionCode is the engine's error taxonomy. VALIDATION rejections happen
// before any mutation; CONFLICT family rejections leave the roster untouched.
type RejectionCode string

const (
	CodeValidation     RejectionCode = "VALIDATION"
	CodeConflict       RejectionCode = "CONFLICT"
	CodeTypeMismatch   RejectionCode = "TYPE_MISMATCH"
	CodeNoOp           RejectionCode = "NO_OP"
	CodeCapacityGap    RejectionCode = "CAPACITY_GAP"
	CodePartialFailure RejectionCode = "PARTIAL_FAILURE"
)

type Rejection struct {
	Code    RejectionCode `json:"code"`
	Message string        `json:"message"`
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s: %s", r.Code, r.Message)
}

func reject(code RejectionCode, format string, args ...any) *Rejection {
	return &Rejection{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the rejection code from an error, or empty if the error did
// not originate in the edit engine.
func CodeOf(err error) RejectionCode {
	if rej, ok := err.(*Rejection); ok {
		return rej.Code
	}
	return ""
}
