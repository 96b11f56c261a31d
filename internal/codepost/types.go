package codepost

// Submission links one or more students, a set of file ids, and grading
// state (grader, finalized flag) to an assignment.
type Submission struct {
	ID          int      `json:"id"`
	Assignment  int      `json:"assignment"`
	Students    []string `json:"students"`
	Grader      *string  `json:"grader"`
	Files       []int    `json:"files"`
	IsFinalized bool     `json:"isFinalized"`
}

// Claimed reports whether a grader has claimed this submission.
func (s *Submission) Claimed() bool {
	return s.Grader != nil && *s.Grader != ""
}

// File is a single source file attached to a submission. Files are matched
// across upload cycles by (Name, Extension), never by content.
type File struct {
	ID         int    `json:"id"`
	Submission int    `json:"submission"`
	Name       string `json:"name"`
	Extension  string `json:"extension"`
	Code       string `json:"code"`
	Comments   []int  `json:"comments"`
}

// Comment is a grading annotation anchored to a range within one file.
type Comment struct {
	ID            int    `json:"id"`
	File          int    `json:"file"`
	Text          string `json:"text"`
	PointDelta    int    `json:"pointDelta"`
	StartChar     int    `json:"startChar"`
	EndChar       int    `json:"endChar"`
	StartLine     int    `json:"startLine"`
	EndLine       int    `json:"endLine"`
	RubricComment *int   `json:"rubricComment,omitempty"`
}

// Course is one course/period the API key administers.
type Course struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Period      string `json:"period"`
	Assignments []int  `json:"assignments"`
}

// Assignment is one assignment within a course.
type Assignment struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Course int    `json:"course"`
	Points int    `json:"points"`
}

// User is the authenticated account, as returned by /users/me.
type User struct {
	Email              string   `json:"email"`
	CourseadminCourses []Course `json:"courseadminCourses"`
}
