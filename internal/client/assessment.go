package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/visheshsahu1513/Smart-Learning/internal/domain"
)

// assessErrField is the grading service's error envelope field.
const assessErrField = "message"

// AssessmentClient consumes the assessments/grading service.
type AssessmentClient struct {
	base string
	hc   *http.Client
}

func NewAssessmentClient(baseURL string, hc *http.Client) *AssessmentClient {
	return &AssessmentClient{base: baseURL, hc: hc}
}

func (c *AssessmentClient) req(method, path, token string) request {
	return request{method: method, url: c.base + path, token: token, errField: assessErrField}
}

func (c *AssessmentClient) List(ctx context.Context, token string) ([]domain.Assessment, error) {
	var assessments []domain.Assessment
	if err := doJSON(ctx, c.hc, c.req(http.MethodGet, "/api/assessments", token), &assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

// Create sends the assessment metadata as a JSON part named
// "assessment" next to the question file part, the shape the grading
// service expects.
func (c *AssessmentClient) Create(ctx context.Context, token string, in domain.CreateAssessmentInput) (domain.Assessment, error) {
	meta, err := jsonPart("assessment", map[string]string{"title": in.Title, "description": in.Description})
	if err != nil {
		return domain.Assessment{}, err
	}
	body, ct, err := buildMultipart(meta, filePart("file", in.File.Name, in.File.Content))
	if err != nil {
		return domain.Assessment{}, err
	}
	req := c.req(http.MethodPost, "/api/assessments", token)
	req.body, req.bodyType = body, ct
	var assessment domain.Assessment
	if err := doJSON(ctx, c.hc, req, &assessment); err != nil {
		return domain.Assessment{}, err
	}
	return assessment, nil
}

func (c *AssessmentClient) ListSubmissions(ctx context.Context, token string, assessmentID int64) ([]domain.Submission, error) {
	var submissions []domain.Submission
	req := c.req(http.MethodGet, fmt.Sprintf("/api/assessments/%d/submissions", assessmentID), token)
	if err := doJSON(ctx, c.hc, req, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

func (c *AssessmentClient) Submit(ctx context.Context, token string, in domain.SubmitAnswerInput) (domain.Submission, error) {
	body, ct, err := buildMultipart(filePart("file", in.File.Name, in.File.Content))
	if err != nil {
		return domain.Submission{}, err
	}
	req := c.req(http.MethodPost, fmt.Sprintf("/api/assessments/%d/submit", in.AssessmentID), token)
	req.body, req.bodyType = body, ct
	var submission domain.Submission
	if err := doJSON(ctx, c.hc, req, &submission); err != nil {
		return domain.Submission{}, err
	}
	return submission, nil
}

func (c *AssessmentClient) Grade(ctx context.Context, token string, in domain.GradeInput) (domain.Submission, error) {
	body, ct, err := jsonBody(in)
	if err != nil {
		return domain.Submission{}, err
	}
	req := c.req(http.MethodPost, fmt.Sprintf("/api/assessments/submissions/%d/grade", in.SubmissionID), token)
	req.body, req.bodyType = body, ct
	var submission domain.Submission
	if err := doJSON(ctx, c.hc, req, &submission); err != nil {
		return domain.Submission{}, err
	}
	return submission, nil
}

func (c *AssessmentClient) MyGrades(ctx context.Context, token string) ([]domain.Submission, error) {
	var submissions []domain.Submission
	if err := doJSON(ctx, c.hc, c.req(http.MethodGet, "/api/assessments/my-grades", token), &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}
