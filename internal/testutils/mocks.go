package testutils

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/visheshsahu1513/Smart-Learning/internal/domain"
	"github.com/visheshsahu1513/Smart-Learning/internal/tokenstore"
)

type MockIdentityAPI struct {
	mock.Mock
}

func (m *MockIdentityAPI) SignIn(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockIdentityAPI) SignUp(ctx context.Context, email, password string) (string, string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockIdentityAPI) SendPasswordReset(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

type MockCourseAPI struct {
	mock.Mock
}

func (m *MockCourseAPI) Signup(ctx context.Context, email, firebaseUID string) (domain.User, error) {
	args := m.Called(ctx, email, firebaseUID)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockCourseAPI) Me(ctx context.Context, token string) (domain.Profile, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.Profile), args.Error(1)
}

func (m *MockCourseAPI) ListUsers(ctx context.Context, token string) ([]domain.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockCourseAPI) ListCourses(ctx context.Context) ([]domain.Course, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Course), args.Error(1)
}

func (m *MockCourseAPI) CreateCourse(ctx context.Context, token string, in domain.CreateCourseInput) (domain.Course, error) {
	args := m.Called(ctx, token, in)
	return args.Get(0).(domain.Course), args.Error(1)
}

func (m *MockCourseAPI) UpdateCourse(ctx context.Context, token string, in domain.UpdateCourseInput) (domain.Course, error) {
	args := m.Called(ctx, token, in)
	return args.Get(0).(domain.Course), args.Error(1)
}

func (m *MockCourseAPI) DeleteCourse(ctx context.Context, token string, id int64) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

func (m *MockCourseAPI) Enroll(ctx context.Context, token string, id int64) (string, error) {
	args := m.Called(ctx, token, id)
	return args.String(0), args.Error(1)
}

func (m *MockCourseAPI) ListMaterials(ctx context.Context, token string, id int64) ([]domain.Material, error) {
	args := m.Called(ctx, token, id)
	return args.Get(0).([]domain.Material), args.Error(1)
}

func (m *MockCourseAPI) UploadMaterial(ctx context.Context, token string, in domain.UploadMaterialInput) (domain.Material, error) {
	args := m.Called(ctx, token, in)
	return args.Get(0).(domain.Material), args.Error(1)
}

func (m *MockCourseAPI) ListStudents(ctx context.Context, token string, id int64) ([]domain.Student, error) {
	args := m.Called(ctx, token, id)
	return args.Get(0).([]domain.Student), args.Error(1)
}

func (m *MockCourseAPI) AssignInstructor(ctx context.Context, token string, in domain.AssignInstructorInput) (domain.Course, error) {
	args := m.Called(ctx, token, in)
	return args.Get(0).(domain.Course), args.Error(1)
}

type MockAssessmentAPI struct {
	mock.Mock
}

func (m *MockAssessmentAPI) List(ctx context.Context, token string) ([]domain.Assessment, error) {
	args := m.Called(ctx, token)
	return args.Get(0).([]domain.Assessment), args.Error(1)
}

func (m *MockAssessmentAPI) Create(ctx context.Context, token string, in domain.CreateAssessmentInput) (domain.Assessment, error) {
	args := m.Called(ctx, token, in)
	return args.Get(0).(domain.Assessment), args.Error(1)
}

func (m *MockAssessmentAPI) ListSubmissions(ctx context.Context, token string, assessmentID int64) ([]domain.Submission, error) {
	args := m.Called(ctx, token, assessmentID)
	return args.Get(0).([]domain.Submission), args.Error(1)
}

func (m *MockAssessmentAPI) Submit(ctx context.Context, token string, in domain.SubmitAnswerInput) (domain.Submission, error) {
	args := m.Called(ctx, token, in)
	return args.Get(0).(domain.Submission), args.Error(1)
}

func (m *MockAssessmentAPI) Grade(ctx context.Context, token string, in domain.GradeInput) (domain.Submission, error) {
	args := m.Called(ctx, token, in)
	return args.Get(0).(domain.Submission), args.Error(1)
}

func (m *MockAssessmentAPI) MyGrades(ctx context.Context, token string) ([]domain.Submission, error) {
	args := m.Called(ctx, token)
	return args.Get(0).([]domain.Submission), args.Error(1)
}

// MemoryTokenStore is an in-memory tokenstore.Store for tests.
type MemoryTokenStore struct {
	mu   sync.Mutex
	blob tokenstore.Blob
	set  bool
}

func (s *MemoryTokenStore) Load(context.Context) (tokenstore.Blob, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blob, s.set && s.blob.Token != ""
}

func (s *MemoryTokenStore) Save(_ context.Context, blob tokenstore.Blob) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blob = blob
	s.set = true
	return nil
}

func (s *MemoryTokenStore) Clear(context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blob = tokenstore.Blob{}
	s.set = false
}

// Stored reports the currently persisted token, empty when cleared.
func (s *MemoryTokenStore) Stored() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blob.Token
}
