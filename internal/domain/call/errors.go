package call

import "errors"

// ErrNotFound is returned by repository lookups when the id does not match
// a row. It distinguishes an unknown id from a storage failure, which is
// passed through untouched.
var ErrNotFound = errors.New("record not found")

// Business error codes shared by usecases and handlers.
const (
	CodeInvalidTechnician = "invalid_technician"
	CodeInvalidServices   = "invalid_services"
	CodeNotFound          = "call_not_found"
	CodeAccessDenied      = "access_denied"
	CodeInvalidStatus     = "invalid_status"
)
