package domain

import "io"

// FileUpload carries one file part of a multipart request. Content is
// read exactly once when the command runs.
type FileUpload struct {
	Name    string `validate:"required"`
	Content io.Reader
}

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type CreateCourseInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Capacity    *int   `json:"capacity,omitempty" validate:"omitempty,min=1"`
}

type UpdateCourseInput struct {
	CourseID    int64  `json:"-" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

type AssignInstructorInput struct {
	CourseID     int64 `json:"-" validate:"required"`
	InstructorID int64 `json:"instructor_id" validate:"required"`
}

type UploadMaterialInput struct {
	CourseID int64      `validate:"required"`
	Title    string     `validate:"required"`
	File     FileUpload `validate:"required"`
}

type CreateAssessmentInput struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	File        FileUpload `json:"-" validate:"required"`
}

type SubmitAnswerInput struct {
	AssessmentID int64      `validate:"required"`
	File         FileUpload `validate:"required"`
}

type GradeInput struct {
	AssessmentID int64  `json:"-" validate:"required"`
	SubmissionID int64  `json:"-" validate:"required"`
	Grade        string `json:"grade" validate:"required"`
}
