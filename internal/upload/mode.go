package upload

import (
	"fmt"
	"strings"
)

// Mode is the nine-flag policy governing which reconciliation actions an
// upload is allowed to perform. A Mode is plain immutable data supplied per
// call; the engine never mutates it.
type Mode struct {
	// UpdateIfExists allows proceeding when at least one existing submission
	// matches the requested students.
	UpdateIfExists bool
	// UpdateIfClaimed allows proceeding when an existing submission has been
	// claimed by a grader.
	UpdateIfClaimed bool
	// ResolveStudents allows proceeding when the requested and existing
	// student sets diverge.
	ResolveStudents bool

	// AddFiles allows creating files present locally but absent remotely.
	AddFiles bool
	// UpdateExistingFiles allows replacing a remote file whose content
	// differs from the local version.
	UpdateExistingFiles bool
	// DeleteUnspecifiedFiles allows deleting remote files that are absent
	// from the local set.
	DeleteUnspecifiedFiles bool

	// RemoveComments deletes all comments on the submission after a
	// modifying update.
	RemoveComments bool
	// DoUnclaim clears the grader and unfinalizes after a modifying update.
	DoUnclaim bool
	// DeleteAffectedSubmissions deletes every existing submission touched by
	// the split branch, even when students not in the request remain on it.
	// That can discard real submitted work belonging to uninvolved partners;
	// the behavior is deliberate and documented, use with care.
	DeleteAffectedSubmissions bool
}

// The named presets. Cautious refuses to touch anything that already exists;
// Overwrite forces the remote to mirror the request exactly.
var (
	// Cautious: if any submission already exists for the requested students,
	// cancel the upload. Only creates.
	Cautious = Mode{}

	// Extend: add missing files to an existing submission, never touching
	// files already there. Does not unclaim.
	Extend = Mode{
		UpdateIfExists:  true,
		ResolveStudents: true,
		AddFiles:        true,
	}

	// DiffScan: Extend, plus replace existing files whose content differs.
	// Does not unclaim.
	DiffScan = Mode{
		UpdateIfExists:      true,
		ResolveStudents:     true,
		AddFiles:            true,
		UpdateExistingFiles: true,
	}

	// Overwrite: make the remote submission mirror the request, deleting
	// comments and unclaiming if anything changed.
	Overwrite = Mode{
		UpdateIfExists:            true,
		UpdateIfClaimed:           true,
		ResolveStudents:           true,
		AddFiles:                  true,
		UpdateExistingFiles:       true,
		DeleteUnspecifiedFiles:    true,
		RemoveComments:            true,
		DoUnclaim:                 true,
		DeleteAffectedSubmissions: true,
	}

	// Pregrade: Overwrite, but leave claimed submissions alone and keep the
	// grader on anything it does touch.
	Pregrade = Mode{
		UpdateIfExists:            true,
		ResolveStudents:           true,
		AddFiles:                  true,
		UpdateExistingFiles:       true,
		DeleteUnspecifiedFiles:    true,
		RemoveComments:            true,
		DeleteAffectedSubmissions: true,
	}
)

// Modes maps preset names to their values for callers that select a mode by
// name, e.g. from a CLI flag.
var Modes = map[string]Mode{
	"cautious":  Cautious,
	"extend":    Extend,
	"diffscan":  DiffScan,
	"overwrite": Overwrite,
	"pregrade":  Pregrade,
}

// ModeByName resolves a preset name, case-insensitively.
func ModeByName(name string) (Mode, error) {
	mode, ok := Modes[strings.ToLower(name)]
	if !ok {
		return Mode{}, fmt.Errorf("unknown upload mode %q (valid modes: cautious, extend, diffscan, overwrite, pregrade)", name)
	}

	return mode, nil
}
