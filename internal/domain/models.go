package domain

import "time"

type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	default:
		return false
	}
}

// User is the profile record served by the identity/course service.
type User struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	FirebaseUID string `json:"firebase_uid"`
}

// Profile is the /users/me answer: the user plus their enrollments.
type Profile struct {
	User
	EnrolledCourseIDs []int64 `json:"enrolled_course_ids"`
}

type Course struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OwnerID     int64  `json:"owner_id"`
}

type Student struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type Material struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
	DownloadURL string    `json:"download_url"`
}

// Assessment and Submission come from the assessments/grading service,
// which serializes field names in camelCase.
type Assessment struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	QuestionFileURL string    `json:"questionFileUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	OwnerID         int64     `json:"ownerId"`
}

type Submission struct {
	ID                 int64     `json:"id"`
	AssessmentID       int64     `json:"assessmentId"`
	StudentFirebaseUID string    `json:"studentFirebaseUid"`
	StudentEmail       string    `json:"studentEmail"`
	SubmittedAt        time.Time `json:"submittedAt"`
	AnswerFileURL      string    `json:"answerFileUrl"`
	Grade              string    `json:"grade,omitempty"`
}
