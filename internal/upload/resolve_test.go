package upload

import (
	"errors"
	"reflect"
	"testing"

	"github.com/codepost-io/codepost-sync/internal/codepost"
)

func TestResolveSubmissions_UnionsPartners(t *testing.T) {
	shared := codepost.Submission{ID: 7, Students: []string{"alice@u.edu", "bob@u.edu"}}

	mock := NewMockGateway()
	mock.ListSubmissionsFunc = func(assignmentID int, student, grader string) ([]codepost.Submission, error) {
		if assignmentID != 42 {
			t.Errorf("assignmentID = %d, want 42", assignmentID)
		}
		// Both partners resolve to the same submission.
		return []codepost.Submission{shared}, nil
	}

	engine := New(mock)
	existing, err := engine.resolveSubmissions(42, []string{"alice@u.edu", "bob@u.edu"})
	if err != nil {
		t.Fatalf("resolveSubmissions failed: %v", err)
	}

	if len(existing) != 1 {
		t.Fatalf("len(existing) = %d, want 1 (shared submission deduplicated)", len(existing))
	}
	if _, ok := existing[7]; !ok {
		t.Errorf("expected submission 7 in resolved set, got %v", existing)
	}
	if len(mock.ListSubmissionsCalls) != 2 {
		t.Errorf("ListSubmissions called %d times, want 2", len(mock.ListSubmissionsCalls))
	}
}

func TestResolveSubmissions_LookupError(t *testing.T) {
	remoteErr := errors.New("boom")

	mock := NewMockGateway()
	mock.ListSubmissionsFunc = func(assignmentID int, student, grader string) ([]codepost.Submission, error) {
		if student == "bob@u.edu" {
			return nil, remoteErr
		}
		return nil, nil
	}

	engine := New(mock)
	_, err := engine.resolveSubmissions(42, []string{"alice@u.edu", "bob@u.edu"})
	if err == nil {
		t.Fatal("expected error, got none")
	}

	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("error = %v, want *LookupError", err)
	}
	if lookupErr.Student != "bob@u.edu" {
		t.Errorf("LookupError.Student = %q, want bob@u.edu", lookupErr.Student)
	}
	if !errors.Is(err, remoteErr) {
		t.Errorf("LookupError should wrap the underlying error")
	}
}

func TestSameStudentSet(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want bool
	}{
		{name: "equal in order", a: []string{"a", "b"}, b: []string{"a", "b"}, want: true},
		{name: "equal out of order", a: []string{"b", "a"}, b: []string{"a", "b"}, want: true},
		{name: "duplicates ignored", a: []string{"a", "a", "b"}, b: []string{"b", "a"}, want: true},
		{name: "subset", a: []string{"a"}, b: []string{"a", "b"}, want: false},
		{name: "disjoint", a: []string{"a"}, b: []string{"b"}, want: false},
		{name: "both empty", a: nil, b: nil, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sameStudentSet(tt.a, tt.b); got != tt.want {
				t.Errorf("sameStudentSet(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestWithoutStudents(t *testing.T) {
	tests := []struct {
		name           string
		roster, remove []string
		want           []string
	}{
		{name: "removes requested", roster: []string{"a", "b", "c"}, remove: []string{"b"}, want: []string{"a", "c"}},
		{name: "empties roster", roster: []string{"a"}, remove: []string{"a"}, want: nil},
		{name: "preserves order", roster: []string{"c", "a", "b"}, remove: []string{"a"}, want: []string{"c", "b"}},
		{name: "nothing to remove", roster: []string{"a"}, remove: []string{"x"}, want: []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := withoutStudents(tt.roster, tt.remove); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("withoutStudents(%v, %v) = %v, want %v", tt.roster, tt.remove, got, tt.want)
			}
		})
	}
}
