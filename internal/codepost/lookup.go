package codepost

import "fmt"

// ListCourses returns the courses the API key administers, optionally
// restricted to a course name and/or period. The API exposes no server-side
// filter for these, so filtering happens here.
func (c *Client) ListCourses(name, period string) ([]Course, error) {
	var me User
	if err := c.apiGET("/users/me", &me); err != nil {
		return nil, fmt.Errorf("failed to list courses (is the API key valid?): %w", err)
	}

	var courses []Course
	for _, course := range me.CourseadminCourses {
		if name != "" && course.Name != name {
			continue
		}
		if period != "" && course.Period != period {
			continue
		}
		courses = append(courses, course)
	}

	return courses, nil
}

// GetAssignment retrieves one assignment by id.
func (c *Client) GetAssignment(id int) (*Assignment, error) {
	var a Assignment
	if err := c.apiGET(fmt.Sprintf("/assignments/%d/", id), &a); err != nil {
		return nil, fmt.Errorf("failed to get assignment %d: %w", id, err)
	}

	return &a, nil
}

// FindAssignment resolves a (course name, period, assignment name) triple to
// the assignment itself. Exactly one course must match the name/period pair.
func (c *Client) FindAssignment(courseName, period, assignmentName string) (*Assignment, error) {
	courses, err := c.ListCourses(courseName, period)
	if err != nil {
		return nil, err
	}

	if len(courses) == 0 {
		return nil, fmt.Errorf("no course named %q with period %q is accessible with this API key", courseName, period)
	}
	if len(courses) > 1 {
		return nil, fmt.Errorf("course %q with period %q matched %d courses, expected exactly one", courseName, period, len(courses))
	}

	for _, aid := range courses[0].Assignments {
		assignment, err := c.GetAssignment(aid)
		if err != nil {
			return nil, err
		}

		if assignment.Name == assignmentName {
			return assignment, nil
		}
	}

	return nil, fmt.Errorf("no assignment named %q in course %q (%s)", assignmentName, courseName, period)
}
