// Package upload reconciles a desired (students, files) pair with whatever
// submissions already exist remotely, under a nine-flag mode that gates every
// side effect.
package upload

import (
	"fmt"
	"log"

	"github.com/codepost-io/codepost-sync/internal/codepost"
)

// Engine reconciles a desired (students, files) pair with the platform's
// existing submissions for an assignment. It is purely sequential and keeps
// no state across calls; every Upload receives its mode and data explicitly.
type Engine struct {
	gw Gateway
}

// New creates an engine on top of the given gateway.
func New(gw Gateway) *Engine {
	return &Engine{gw: gw}
}

// Request is the unit of work for one Upload call.
type Request struct {
	AssignmentID int
	Students     []string
	Files        []LocalFile
	Mode         Mode
}

// Outcome describes which reconciliation branch an upload took.
type Outcome int

const (
	// OutcomeCreated: no submission existed; a new one was created.
	OutcomeCreated Outcome = iota
	// OutcomeUpdatedUnchanged: one submission existed and already matched.
	OutcomeUpdatedUnchanged
	// OutcomeUpdatedModified: one submission existed and was changed.
	OutcomeUpdatedModified
	// OutcomeSplitCreated: several submissions overlapped the requested
	// students; they were trimmed and a fresh submission was created.
	OutcomeSplitCreated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeUpdatedUnchanged:
		return "updated-unchanged"
	case OutcomeUpdatedModified:
		return "updated-modified"
	case OutcomeSplitCreated:
		return "split-and-created"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result reports what an upload did.
type Result struct {
	Outcome       Outcome
	Submission    *codepost.Submission
	FilesChanged  bool
	RosterChanged bool
}

// Upload synchronizes the requested students and files with the assignment's
// existing submissions, gated by the request's mode. Guards run strictly
// before any mutation, so a policy violation leaves the remote untouched.
// Any gateway failure aborts immediately without rollback; in the split
// branch that can leave the remote partially reconciled, and the returned
// error says so.
func (e *Engine) Upload(req Request) (*Result, error) {
	existing, err := e.resolveSubmissions(req.AssignmentID, req.Students)
	if err != nil {
		return nil, err
	}

	if len(existing) == 0 {
		sub, err := e.createSubmission(req)
		if err != nil {
			return nil, err
		}

		return &Result{
			Outcome:      OutcomeCreated,
			Submission:   sub,
			FilesChanged: len(req.Files) > 0,
		}, nil
	}

	if err := checkGuards(existing, req); err != nil {
		return nil, err
	}

	if len(existing) > 1 {
		return e.splitAndCreate(existing, req)
	}

	var sub codepost.Submission
	for _, s := range existing {
		sub = s
	}

	return e.updateInPlace(&sub, req)
}

// checkGuards evaluates the three pre-mutation policy guards, in order.
func checkGuards(existing map[int]codepost.Submission, req Request) error {
	if !req.Mode.UpdateIfExists {
		return fmt.Errorf("%d existing submission(s) found: %w", len(existing), ErrSubmissionExists)
	}

	// A single claimed submission blocks the whole operation.
	if !req.Mode.UpdateIfClaimed && anyClaimed(existing) {
		return fmt.Errorf("%d existing submission(s) found: %w", len(existing), ErrSubmissionClaimed)
	}

	if !req.Mode.ResolveStudents {
		if len(existing) > 1 {
			return fmt.Errorf("requested students span %d existing submissions: %w", len(existing), ErrStudentMismatch)
		}
		for _, sub := range existing {
			if !sameStudentSet(sub.Students, req.Students) {
				return fmt.Errorf("requested %v but submission %d has %v: %w",
					req.Students, sub.ID, sub.Students, ErrStudentMismatch)
			}
		}
	}

	return nil
}

// createSubmission creates a fresh submission holding every desired file.
func (e *Engine) createSubmission(req Request) (*codepost.Submission, error) {
	sub, err := e.gw.CreateSubmission(req.AssignmentID, req.Students)
	if err != nil {
		return nil, err
	}

	for _, file := range req.Files {
		if _, err := e.gw.CreateFile(sub.ID, file.Name, file.Extension, file.Code); err != nil {
			return nil, fmt.Errorf("failed to populate new submission %d: %w", sub.ID, err)
		}
	}

	log.Printf("Created submission %d for students %v with %d file(s)", sub.ID, req.Students, len(req.Files))

	return sub, nil
}

// splitAndCreate handles the case where the requested students span several
// existing submissions: each one has the requested students removed from its
// roster (deleting it if that empties it), then a fresh submission is created
// for the requested students. With DeleteAffectedSubmissions the trimmed
// submissions are deleted outright even when partners not in the request
// remain on them; that discards the partners' submission record and is
// preserved as documented behavior.
func (e *Engine) splitAndCreate(existing map[int]codepost.Submission, req Request) (*Result, error) {
	for _, id := range sortedIDs(existing) {
		sub := existing[id]
		remainder := withoutStudents(sub.Students, req.Students)

		if len(remainder) == 0 {
			if err := e.gw.DeleteSubmission(id); err != nil {
				return nil, splitErr(err)
			}
			continue
		}

		if _, err := e.gw.SetSubmissionStudents(id, remainder); err != nil {
			return nil, splitErr(err)
		}

		if req.Mode.DeleteAffectedSubmissions {
			if err := e.gw.DeleteSubmission(id); err != nil {
				return nil, splitErr(err)
			}
		}
	}

	sub, err := e.createSubmission(req)
	if err != nil {
		return nil, splitErr(err)
	}

	return &Result{
		Outcome:       OutcomeSplitCreated,
		Submission:    sub,
		FilesChanged:  len(req.Files) > 0,
		RosterChanged: true,
	}, nil
}

// splitErr marks errors from the split branch, where earlier mutations are
// not rolled back.
func splitErr(err error) error {
	return fmt.Errorf("split interrupted, remote state may be partially reconciled: %w", err)
}

// updateInPlace reconciles the single existing submission with the request:
// align the roster, diff the files, then apply the post-update side effects
// the mode asks for.
func (e *Engine) updateInPlace(sub *codepost.Submission, req Request) (*Result, error) {
	rosterChanged := false
	if !sameStudentSet(sub.Students, req.Students) {
		updated, err := e.gw.SetSubmissionStudents(sub.ID, req.Students)
		if err != nil {
			return nil, err
		}
		// Keep reconciling against the file list resolved earlier; the
		// patch response only matters for the roster.
		sub.Students = updated.Students
		rosterChanged = true
	}

	filesChanged, err := e.reconcileFiles(sub, req.Files, req.Mode)
	if err != nil {
		return nil, err
	}

	if filesChanged {
		if req.Mode.RemoveComments {
			if err := e.purgeComments(sub.ID); err != nil {
				return nil, err
			}
		}
		if req.Mode.DoUnclaim {
			if err := e.gw.UnclaimSubmission(sub.ID); err != nil {
				return nil, err
			}
		}
	}

	outcome := OutcomeUpdatedUnchanged
	if filesChanged || rosterChanged {
		outcome = OutcomeUpdatedModified
	}

	return &Result{
		Outcome:       outcome,
		Submission:    sub,
		FilesChanged:  filesChanged,
		RosterChanged: rosterChanged,
	}, nil
}

// purgeComments deletes every comment on every file of a submission. The
// submission is re-fetched first because the file diff may have replaced
// files since it was resolved.
func (e *Engine) purgeComments(submissionID int) error {
	sub, err := e.gw.GetSubmission(submissionID)
	if err != nil {
		return fmt.Errorf("failed to purge comments on submission %d: %w", submissionID, err)
	}

	for _, fileID := range sub.Files {
		f, err := e.gw.GetFile(fileID)
		if err != nil {
			return fmt.Errorf("failed to purge comments on submission %d: %w", submissionID, err)
		}

		for _, commentID := range f.Comments {
			if err := e.gw.DeleteComment(commentID); err != nil {
				return fmt.Errorf("failed to purge comments on submission %d: %w", submissionID, err)
			}
		}
	}

	return nil
}
