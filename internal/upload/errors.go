package upload

import (
	"errors"
	"fmt"
)

// Policy violations. Each one fires before any remote mutation, so an upload
// that fails with one of these has left the remote state untouched. All are
// caller-correctable by choosing a more permissive mode.
var (
	// ErrSubmissionExists: a submission already exists for at least one
	// requested student and the mode forbids updating it.
	ErrSubmissionExists = errors.New("a submission already exists and the mode does not allow updating it")
	// ErrSubmissionClaimed: an existing submission has been claimed by a
	// grader and the mode forbids touching claimed work.
	ErrSubmissionClaimed = errors.New("a submission has already been claimed by a grader and the mode does not allow updating it")
	// ErrStudentMismatch: the requested students do not line up with the
	// existing submission's roster and the mode forbids resolving that.
	ErrStudentMismatch = errors.New("the requested students differ from the existing submission's students and the mode does not allow resolving them")
)

// IsPolicyViolation reports whether err is one of the pre-mutation guard
// failures, i.e. whether the remote state is guaranteed untouched.
func IsPolicyViolation(err error) bool {
	return errors.Is(err, ErrSubmissionExists) ||
		errors.Is(err, ErrSubmissionClaimed) ||
		errors.Is(err, ErrStudentMismatch)
}

// LookupError wraps a failure during the read-only resolution phase, before
// any branch decision is made.
type LookupError struct {
	Student string
	Err     error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("failed to look up submissions for student %q: %v", e.Student, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
