package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/visheshsahu1513/Smart-Learning/internal/domain"
)

// courseErrField is the FastAPI error envelope field.
const courseErrField = "detail"

// CourseClient consumes the identity/course service.
type CourseClient struct {
	base string
	hc   *http.Client
}

func NewCourseClient(baseURL string, hc *http.Client) *CourseClient {
	return &CourseClient{base: baseURL, hc: hc}
}

func (c *CourseClient) req(method, path, token string) request {
	return request{method: method, url: c.base + path, token: token, errField: courseErrField}
}

// Signup registers a freshly created identity-provider account with the
// course service.
func (c *CourseClient) Signup(ctx context.Context, email, firebaseUID string) (domain.User, error) {
	body, ct, err := jsonBody(map[string]string{"email": email, "firebase_uid": firebaseUID})
	if err != nil {
		return domain.User{}, err
	}
	req := c.req(http.MethodPost, "/auth/signup", "")
	req.body, req.bodyType = body, ct
	var user domain.User
	if err := doJSON(ctx, c.hc, req, &user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (c *CourseClient) Me(ctx context.Context, token string) (domain.Profile, error) {
	var profile domain.Profile
	if err := doJSON(ctx, c.hc, c.req(http.MethodGet, "/users/me", token), &profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

func (c *CourseClient) ListUsers(ctx context.Context, token string) ([]domain.User, error) {
	var users []domain.User
	if err := doJSON(ctx, c.hc, c.req(http.MethodGet, "/users", token), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *CourseClient) ListCourses(ctx context.Context) ([]domain.Course, error) {
	var courses []domain.Course
	if err := doJSON(ctx, c.hc, c.req(http.MethodGet, "/courses/", ""), &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *CourseClient) CreateCourse(ctx context.Context, token string, in domain.CreateCourseInput) (domain.Course, error) {
	body, ct, err := jsonBody(in)
	if err != nil {
		return domain.Course{}, err
	}
	req := c.req(http.MethodPost, "/courses/", token)
	req.body, req.bodyType = body, ct
	var course domain.Course
	if err := doJSON(ctx, c.hc, req, &course); err != nil {
		return domain.Course{}, err
	}
	return course, nil
}

func (c *CourseClient) UpdateCourse(ctx context.Context, token string, in domain.UpdateCourseInput) (domain.Course, error) {
	body, ct, err := jsonBody(in)
	if err != nil {
		return domain.Course{}, err
	}
	req := c.req(http.MethodPut, fmt.Sprintf("/courses/%d", in.CourseID), token)
	req.body, req.bodyType = body, ct
	var course domain.Course
	if err := doJSON(ctx, c.hc, req, &course); err != nil {
		return domain.Course{}, err
	}
	return course, nil
}

func (c *CourseClient) DeleteCourse(ctx context.Context, token string, id int64) error {
	return doJSON(ctx, c.hc, c.req(http.MethodDelete, fmt.Sprintf("/courses/%d", id), token), nil)
}

// Enroll returns the service's confirmation message.
func (c *CourseClient) Enroll(ctx context.Context, token string, id int64) (string, error) {
	req := c.req(http.MethodPost, fmt.Sprintf("/courses/%d/enroll", id), token)
	var resp struct {
		Message string `json:"message"`
	}
	if err := doJSON(ctx, c.hc, req, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *CourseClient) ListMaterials(ctx context.Context, token string, id int64) ([]domain.Material, error) {
	var materials []domain.Material
	req := c.req(http.MethodGet, fmt.Sprintf("/courses/%d/materials", id), token)
	if err := doJSON(ctx, c.hc, req, &materials); err != nil {
		return nil, err
	}
	return materials, nil
}

func (c *CourseClient) UploadMaterial(ctx context.Context, token string, in domain.UploadMaterialInput) (domain.Material, error) {
	body, ct, err := buildMultipart(
		fieldPart("title", in.Title),
		filePart("file", in.File.Name, in.File.Content),
	)
	if err != nil {
		return domain.Material{}, err
	}
	req := c.req(http.MethodPost, fmt.Sprintf("/courses/%d/materials", in.CourseID), token)
	req.body, req.bodyType = body, ct
	var material domain.Material
	if err := doJSON(ctx, c.hc, req, &material); err != nil {
		return domain.Material{}, err
	}
	return material, nil
}

func (c *CourseClient) ListStudents(ctx context.Context, token string, id int64) ([]domain.Student, error) {
	var students []domain.Student
	req := c.req(http.MethodGet, fmt.Sprintf("/courses/%d/students", id), token)
	if err := doJSON(ctx, c.hc, req, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (c *CourseClient) AssignInstructor(ctx context.Context, token string, in domain.AssignInstructorInput) (domain.Course, error) {
	body, ct, err := jsonBody(in)
	if err != nil {
		return domain.Course{}, err
	}
	req := c.req(http.MethodPatch, fmt.Sprintf("/courses/%d/assign-instructor", in.CourseID), token)
	req.body, req.bodyType = body, ct
	var course domain.Course
	if err := doJSON(ctx, c.hc, req, &course); err != nil {
		return domain.Course{}, err
	}
	return course, nil
}
