package upload

import (
	"sort"

	"github.com/codepost-io/codepost-sync/internal/codepost"
)

// resolveSubmissions maps the requested student set to every existing
// submission on the assignment that involves any of them, deduplicated by
// submission id (a submission shared by two requested partners appears once).
// Purely a read; no remote mutation.
func (e *Engine) resolveSubmissions(assignmentID int, students []string) (map[int]codepost.Submission, error) {
	existing := make(map[int]codepost.Submission)

	for _, student := range students {
		subs, err := e.gw.ListSubmissions(assignmentID, student, "")
		if err != nil {
			return nil, &LookupError{Student: student, Err: err}
		}

		for _, sub := range subs {
			existing[sub.ID] = sub
		}
	}

	return existing, nil
}

// sortedIDs returns the submission ids in ascending order, so the split
// branch mutates submissions in a deterministic order.
func sortedIDs(subs map[int]codepost.Submission) []int {
	ids := make([]int, 0, len(subs))
	for id := range subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// anyClaimed reports whether any of the submissions has a grader.
func anyClaimed(subs map[int]codepost.Submission) bool {
	for _, sub := range subs {
		if sub.Claimed() {
			return true
		}
	}

	return false
}

// sameStudentSet compares two rosters as sets, ignoring order and duplicates.
func sameStudentSet(a, b []string) bool {
	setA := make(map[string]bool, len(a))
	for _, s := range a {
		setA[s] = true
	}

	setB := make(map[string]bool, len(b))
	for _, s := range b {
		setB[s] = true
	}

	if len(setA) != len(setB) {
		return false
	}
	for s := range setA {
		if !setB[s] {
			return false
		}
	}

	return true
}

// withoutStudents returns roster minus the given students, preserving the
// roster's original order.
func withoutStudents(roster, remove []string) []string {
	removed := make(map[string]bool, len(remove))
	for _, s := range remove {
		removed[s] = true
	}

	var remainder []string
	for _, s := range roster {
		if !removed[s] {
			remainder = append(remainder, s)
		}
	}

	return remainder
}
