// Package app wires the stores, the command dispatcher and the backend
// clients into the operations the view layer calls.
package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/visheshsahu1513/Smart-Learning/internal/dispatch"
	"github.com/visheshsahu1513/Smart-Learning/internal/domain"
	"github.com/visheshsahu1513/Smart-Learning/internal/errdefs"
	"github.com/visheshsahu1513/Smart-Learning/internal/logging"
	"github.com/visheshsahu1513/Smart-Learning/internal/state"
	"github.com/visheshsahu1513/Smart-Learning/internal/tokenstore"
)

// IdentityAPI is the external identity provider: credential
// verification and bearer-token minting, nothing else.
type IdentityAPI interface {
	SignIn(ctx context.Context, email, password string) (token string, err error)
	SignUp(ctx context.Context, email, password string) (uid, token string, err error)
	SendPasswordReset(ctx context.Context, email string) error
}

// CourseAPI is the identity/course service.
type CourseAPI interface {
	Signup(ctx context.Context, email, firebaseUID string) (domain.User, error)
	Me(ctx context.Context, token string) (domain.Profile, error)
	ListUsers(ctx context.Context, token string) ([]domain.User, error)
	ListCourses(ctx context.Context) ([]domain.Course, error)
	CreateCourse(ctx context.Context, token string, in domain.CreateCourseInput) (domain.Course, error)
	UpdateCourse(ctx context.Context, token string, in domain.UpdateCourseInput) (domain.Course, error)
	DeleteCourse(ctx context.Context, token string, id int64) error
	Enroll(ctx context.Context, token string, id int64) (string, error)
	ListMaterials(ctx context.Context, token string, id int64) ([]domain.Material, error)
	UploadMaterial(ctx context.Context, token string, in domain.UploadMaterialInput) (domain.Material, error)
	ListStudents(ctx context.Context, token string, id int64) ([]domain.Student, error)
	AssignInstructor(ctx context.Context, token string, in domain.AssignInstructorInput) (domain.Course, error)
}

// AssessmentAPI is the assessments/grading service.
type AssessmentAPI interface {
	List(ctx context.Context, token string) ([]domain.Assessment, error)
	Create(ctx context.Context, token string, in domain.CreateAssessmentInput) (domain.Assessment, error)
	ListSubmissions(ctx context.Context, token string, assessmentID int64) ([]domain.Submission, error)
	Submit(ctx context.Context, token string, in domain.SubmitAnswerInput) (domain.Submission, error)
	Grade(ctx context.Context, token string, in domain.GradeInput) (domain.Submission, error)
	MyGrades(ctx context.Context, token string) ([]domain.Submission, error)
}

type App struct {
	log         *logging.Logger
	d           *dispatch.Dispatcher
	identity    IdentityAPI
	courses     CourseAPI
	assessments AssessmentAPI
	tokens      tokenstore.Store

	session     *state.SessionStore
	courseState *state.CourseStore
	assessState *state.AssessmentStore
}

func New(
	log *logging.Logger,
	d *dispatch.Dispatcher,
	identity IdentityAPI,
	courses CourseAPI,
	assessments AssessmentAPI,
	tokens tokenstore.Store,
) *App {
	return &App{
		log:         log,
		d:           d,
		identity:    identity,
		courses:     courses,
		assessments: assessments,
		tokens:      tokens,
		session:     state.NewSessionStore(),
		courseState: state.NewCourseStore(),
		assessState: state.NewAssessmentStore(),
	}
}

// Session exposes the session store for reads and subscriptions.
func (a *App) Session() *state.SessionStore { return a.session }

// Courses exposes the course store for reads and subscriptions.
func (a *App) Courses() *state.CourseStore { return a.courseState }

// Assessments exposes the assessment store for reads and subscriptions.
func (a *App) Assessments() *state.AssessmentStore { return a.assessState }

// Wait blocks until every in-flight command has settled.
func (a *App) Wait() { a.d.Wait() }

// settled delivers an error without dispatching, for failures caught
// before any command starts.
func settled(err error) <-chan error {
	done := make(chan error, 1)
	done <- err
	return done
}

// token snapshots the bearer token when a command starts running; a
// token refreshed mid-flight never applies to calls already started.
func (a *App) token() (string, error) {
	token := a.session.Token()
	if token == "" {
		return "", errdefs.New(errdefs.KindAuthorization, "not authenticated")
	}
	return token, nil
}

func (a *App) saveToken(ctx context.Context, token string) {
	if err := a.tokens.Save(ctx, tokenstore.Blob{Token: token}); err != nil {
		a.log.Warn(ctx, "could not persist auth token", zap.Error(err))
	}
}
