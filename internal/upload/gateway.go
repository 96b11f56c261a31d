package upload

import (
	"github.com/codepost-io/codepost-sync/internal/codepost"
)

// Gateway is the set of remote operations the engine depends on. It is the
// subset of *codepost.Client the reconciliation logic needs; the abstraction
// allows exercising the engine against an in-memory remote in tests.
type Gateway interface {
	// ListSubmissions returns an assignment's submissions, optionally
	// filtered by student and/or grader.
	ListSubmissions(assignmentID int, student, grader string) ([]codepost.Submission, error)

	// GetSubmission retrieves one submission by id.
	GetSubmission(id int) (*codepost.Submission, error)

	// GetFile retrieves one file by id.
	GetFile(id int) (*codepost.File, error)

	// CreateSubmission creates an empty submission for the given students.
	CreateSubmission(assignmentID int, students []string) (*codepost.Submission, error)

	// SetSubmissionStudents replaces the roster of a submission.
	SetSubmissionStudents(id int, students []string) (*codepost.Submission, error)

	// UnclaimSubmission clears the grader and unfinalizes the submission.
	UnclaimSubmission(id int) error

	// DeleteSubmission deletes a submission outright.
	DeleteSubmission(id int) error

	// CreateFile uploads a file to a submission.
	CreateFile(submissionID int, name, extension, code string) (*codepost.File, error)

	// DeleteFile deletes a file, destroying its comments.
	DeleteFile(id int) error

	// DeleteComment deletes a single comment.
	DeleteComment(id int) error
}

var _ Gateway = (*codepost.Client)(nil)

// MockGateway is an in-memory Gateway for tests. Behavior is injected via
// the Func fields; every call is recorded so tests can assert on exactly
// which remote operations ran.
type MockGateway struct {
	ListSubmissionsFunc       func(assignmentID int, student, grader string) ([]codepost.Submission, error)
	GetSubmissionFunc         func(id int) (*codepost.Submission, error)
	GetFileFunc               func(id int) (*codepost.File, error)
	CreateSubmissionFunc      func(assignmentID int, students []string) (*codepost.Submission, error)
	SetSubmissionStudentsFunc func(id int, students []string) (*codepost.Submission, error)
	UnclaimSubmissionFunc     func(id int) error
	DeleteSubmissionFunc      func(id int) error
	CreateFileFunc            func(submissionID int, name, extension, code string) (*codepost.File, error)
	DeleteFileFunc            func(id int) error
	DeleteCommentFunc         func(id int) error

	// Track calls
	ListSubmissionsCalls []struct {
		AssignmentID    int
		Student, Grader string
	}
	GetSubmissionCalls []int
	GetFileCalls       []int
	CreateSubmissionCalls []struct {
		AssignmentID int
		Students     []string
	}
	SetSubmissionStudentsCalls []struct {
		ID       int
		Students []string
	}
	UnclaimSubmissionCalls []int
	DeleteSubmissionCalls  []int
	CreateFileCalls        []struct {
		SubmissionID          int
		Name, Extension, Code string
	}
	DeleteFileCalls    []int
	DeleteCommentCalls []int
}

// NewMockGateway creates an empty mock gateway.
func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

// MutationCount returns how many mutating calls the mock has seen. Reads
// (list/get) are not counted.
func (m *MockGateway) MutationCount() int {
	return len(m.CreateSubmissionCalls) +
		len(m.SetSubmissionStudentsCalls) +
		len(m.UnclaimSubmissionCalls) +
		len(m.DeleteSubmissionCalls) +
		len(m.CreateFileCalls) +
		len(m.DeleteFileCalls) +
		len(m.DeleteCommentCalls)
}

func (m *MockGateway) ListSubmissions(assignmentID int, student, grader string) ([]codepost.Submission, error) {
	m.ListSubmissionsCalls = append(m.ListSubmissionsCalls, struct {
		AssignmentID    int
		Student, Grader string
	}{assignmentID, student, grader})

	if m.ListSubmissionsFunc != nil {
		return m.ListSubmissionsFunc(assignmentID, student, grader)
	}

	return nil, nil
}

func (m *MockGateway) GetSubmission(id int) (*codepost.Submission, error) {
	m.GetSubmissionCalls = append(m.GetSubmissionCalls, id)

	if m.GetSubmissionFunc != nil {
		return m.GetSubmissionFunc(id)
	}

	return &codepost.Submission{ID: id}, nil
}

func (m *MockGateway) GetFile(id int) (*codepost.File, error) {
	m.GetFileCalls = append(m.GetFileCalls, id)

	if m.GetFileFunc != nil {
		return m.GetFileFunc(id)
	}

	return &codepost.File{ID: id}, nil
}

func (m *MockGateway) CreateSubmission(assignmentID int, students []string) (*codepost.Submission, error) {
	m.CreateSubmissionCalls = append(m.CreateSubmissionCalls, struct {
		AssignmentID int
		Students     []string
	}{assignmentID, students})

	if m.CreateSubmissionFunc != nil {
		return m.CreateSubmissionFunc(assignmentID, students)
	}

	return &codepost.Submission{ID: 1, Assignment: assignmentID, Students: students}, nil
}

func (m *MockGateway) SetSubmissionStudents(id int, students []string) (*codepost.Submission, error) {
	m.SetSubmissionStudentsCalls = append(m.SetSubmissionStudentsCalls, struct {
		ID       int
		Students []string
	}{id, students})

	if m.SetSubmissionStudentsFunc != nil {
		return m.SetSubmissionStudentsFunc(id, students)
	}

	return &codepost.Submission{ID: id, Students: students}, nil
}

func (m *MockGateway) UnclaimSubmission(id int) error {
	m.UnclaimSubmissionCalls = append(m.UnclaimSubmissionCalls, id)

	if m.UnclaimSubmissionFunc != nil {
		return m.UnclaimSubmissionFunc(id)
	}

	return nil
}

func (m *MockGateway) DeleteSubmission(id int) error {
	m.DeleteSubmissionCalls = append(m.DeleteSubmissionCalls, id)

	if m.DeleteSubmissionFunc != nil {
		return m.DeleteSubmissionFunc(id)
	}

	return nil
}

func (m *MockGateway) CreateFile(submissionID int, name, extension, code string) (*codepost.File, error) {
	m.CreateFileCalls = append(m.CreateFileCalls, struct {
		SubmissionID          int
		Name, Extension, Code string
	}{submissionID, name, extension, code})

	if m.CreateFileFunc != nil {
		return m.CreateFileFunc(submissionID, name, extension, code)
	}

	return &codepost.File{ID: 1, Submission: submissionID, Name: name, Extension: extension, Code: code}, nil
}

func (m *MockGateway) DeleteFile(id int) error {
	m.DeleteFileCalls = append(m.DeleteFileCalls, id)

	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(id)
	}

	return nil
}

func (m *MockGateway) DeleteComment(id int) error {
	m.DeleteCommentCalls = append(m.DeleteCommentCalls, id)

	if m.DeleteCommentFunc != nil {
		return m.DeleteCommentFunc(id)
	}

	return nil
}
