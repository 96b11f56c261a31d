// Package codepost is a typed REST client for the grading platform's API.
package codepost

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.codepost.io"

// Client is a typed REST client for the grading platform. The base URL and
// API key are explicit construction parameters rather than package globals,
// so two clients against different deployments can coexist.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// NewClient creates a client for the given endpoint. An empty baseURL selects
// the production endpoint; a nil httpc selects a client with a 30s timeout.
func NewClient(baseURL, apiKey string, httpc *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpc == nil {
		httpc = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc:   httpc,
	}
}

// ListSubmissions returns the submissions of an assignment, optionally
// filtered to a single student and/or grader.
func (c *Client) ListSubmissions(assignmentID int, student, grader string) ([]Submission, error) {
	path := fmt.Sprintf("/assignments/%d/submissions", assignmentID)

	query := url.Values{}
	if student != "" {
		query.Set("student", student)
	}
	if grader != "" {
		query.Set("grader", grader)
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var subs []Submission
	if err := c.apiGET(path, &subs); err != nil {
		return nil, fmt.Errorf("failed to list submissions for assignment %d: %w", assignmentID, err)
	}

	return subs, nil
}

// GetSubmission retrieves one submission by id.
func (c *Client) GetSubmission(id int) (*Submission, error) {
	var sub Submission
	if err := c.apiGET(fmt.Sprintf("/submissions/%d/", id), &sub); err != nil {
		return nil, fmt.Errorf("failed to get submission %d: %w", id, err)
	}

	return &sub, nil
}

// GetFile retrieves one file by id; file ids are listed on submissions.
func (c *Client) GetFile(id int) (*File, error) {
	var f File
	if err := c.apiGET(fmt.Sprintf("/files/%d/", id), &f); err != nil {
		return nil, fmt.Errorf("failed to get file %d: %w", id, err)
	}

	return &f, nil
}

// CreateSubmission creates an empty submission for the given students.
func (c *Client) CreateSubmission(assignmentID int, students []string) (*Submission, error) {
	body := map[string]any{
		"assignment": assignmentID,
		"students":   students,
	}

	var sub Submission
	if err := c.apiPOST("/submissions/", body, &sub); err != nil {
		return nil, fmt.Errorf("failed to create submission for students %v: %w", students, err)
	}

	return &sub, nil
}

// SetSubmissionStudents replaces the roster of a submission.
func (c *Client) SetSubmissionStudents(id int, students []string) (*Submission, error) {
	body := map[string]any{"students": students}

	var sub Submission
	if err := c.apiPATCH(fmt.Sprintf("/submissions/%d/", id), body, &sub); err != nil {
		return nil, fmt.Errorf("failed to set students of submission %d: %w", id, err)
	}

	return &sub, nil
}

// SetSubmissionGrader assigns a grader to a submission. An empty grader
// unclaims it: the API wants an empty string rather than null, and since a
// finalized submission must have a grader, unclaiming also unfinalizes.
func (c *Client) SetSubmissionGrader(id int, grader string) error {
	body := map[string]any{"grader": grader}
	if grader == "" {
		body["isFinalized"] = false
	}

	if err := c.apiPATCH(fmt.Sprintf("/submissions/%d/", id), body, nil); err != nil {
		return fmt.Errorf("failed to set grader of submission %d: %w", id, err)
	}

	return nil
}

// UnclaimSubmission clears the grader of a submission and unfinalizes it.
func (c *Client) UnclaimSubmission(id int) error {
	return c.SetSubmissionGrader(id, "")
}

// DeleteSubmission deletes a submission and everything attached to it.
func (c *Client) DeleteSubmission(id int) error {
	if err := c.apiDELETE(fmt.Sprintf("/submissions/%d/", id)); err != nil {
		return fmt.Errorf("failed to delete submission %d: %w", id, err)
	}

	return nil
}

// CreateFile uploads a file to a submission.
func (c *Client) CreateFile(submissionID int, name, extension, code string) (*File, error) {
	body := map[string]any{
		"submission": submissionID,
		"name":       name,
		"extension":  extension,
		"code":       code,
	}

	var f File
	if err := c.apiPOST("/files/", body, &f); err != nil {
		return nil, fmt.Errorf("failed to upload file %q to submission %d: %w", name, submissionID, err)
	}

	return &f, nil
}

// DeleteFile deletes a file, destroying any comments attached to it.
func (c *Client) DeleteFile(id int) error {
	if err := c.apiDELETE(fmt.Sprintf("/files/%d/", id)); err != nil {
		return fmt.Errorf("failed to delete file %d: %w", id, err)
	}

	return nil
}

// CreateComment adds a comment to a file at the given range.
func (c *Client) CreateComment(comment Comment) (*Comment, error) {
	body := map[string]any{
		"file":       comment.File,
		"text":       comment.Text,
		"pointDelta": comment.PointDelta,
		"startChar":  comment.StartChar,
		"endChar":    comment.EndChar,
		"startLine":  comment.StartLine,
		"endLine":    comment.EndLine,
	}
	if comment.RubricComment != nil {
		body["rubricComment"] = *comment.RubricComment
	}

	var created Comment
	if err := c.apiPOST("/comments/", body, &created); err != nil {
		return nil, fmt.Errorf("failed to create comment on file %d: %w", comment.File, err)
	}

	return &created, nil
}

// DeleteComment deletes a single comment.
func (c *Client) DeleteComment(id int) error {
	if err := c.apiDELETE(fmt.Sprintf("/comments/%d/", id)); err != nil {
		return fmt.Errorf("failed to delete comment %d: %w", id, err)
	}

	return nil
}

func (c *Client) apiGET(path string, out any) error {
	return c.apiDo(http.MethodGet, path, nil, http.StatusOK, out)
}

func (c *Client) apiPOST(path string, body, out any) error {
	return c.apiDo(http.MethodPost, path, body, http.StatusCreated, out)
}

func (c *Client) apiPATCH(path string, body, out any) error {
	return c.apiDo(http.MethodPatch, path, body, http.StatusOK, out)
}

func (c *Client) apiDELETE(path string) error {
	// Successful deletes return 204 with no body.
	return c.apiDo(http.MethodDelete, path, nil, http.StatusNoContent, nil)
}

func (c *Client) apiDo(method, path string, body any, wantStatus int, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != wantStatus {
		return &RemoteError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       string(b),
		}
	}

	if out != nil {
		if err := json.Unmarshal(b, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}
