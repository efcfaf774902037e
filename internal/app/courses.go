package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/visheshsahu1513/Smart-Learning/internal/dispatch"
	"github.com/visheshsahu1513/Smart-Learning/internal/domain"
	"github.com/visheshsahu1513/Smart-Learning/internal/errdefs"
	"github.com/visheshsahu1513/Smart-Learning/internal/validate"
)

func courseKey(id int64) string { return fmt.Sprintf("course/%d", id) }

// FetchCourses refreshes the course list. The catalog is public; no
// token is attached.
func (a *App) FetchCourses(ctx context.Context) <-chan error {
	return dispatch.Run(ctx, a.d, "courses/fetchCourses", "courses",
		func(ctx context.Context) ([]domain.Course, error) {
			return a.courses.ListCourses(ctx)
		},
		dispatch.Hooks[[]domain.Course]{
			Pending:   a.courseState.Begin,
			Fulfilled: a.courseState.SetItems,
			Rejected:  func(e *errdefs.Error) { a.courseState.Fail(e.Message) },
			Canceled:  a.courseState.Idle,
		})
}

// CreateCourse creates a course and prepends the confirmed record.
func (a *App) CreateCourse(ctx context.Context, in domain.CreateCourseInput) <-chan error {
	if err := validate.Struct(in); err != nil {
		return settled(err)
	}
	return dispatch.Run(ctx, a.d, "courses/createCourse", "courses/create",
		func(ctx context.Context) (domain.Course, error) {
			token, err := a.token()
			if err != nil {
				return domain.Course{}, err
			}
			return a.courses.CreateCourse(ctx, token, in)
		},
		dispatch.Hooks[domain.Course]{
			Pending:   a.courseState.Begin,
			Fulfilled: a.courseState.Prepend,
			Rejected:  func(e *errdefs.Error) { a.courseState.Fail(e.Message) },
			Canceled:  a.courseState.Idle,
		})
}

// UpdateCourse replaces the confirmed course record in place.
func (a *App) UpdateCourse(ctx context.Context, in domain.UpdateCourseInput) <-chan error {
	if err := validate.Struct(in); err != nil {
		return settled(err)
	}
	return dispatch.Run(ctx, a.d, "courses/updateCourse", courseKey(in.CourseID),
		func(ctx context.Context) (domain.Course, error) {
			token, err := a.token()
			if err != nil {
				return domain.Course{}, err
			}
			return a.courses.UpdateCourse(ctx, token, in)
		},
		dispatch.Hooks[domain.Course]{
			Fulfilled: a.courseState.ReplaceByID,
			Rejected:  func(e *errdefs.Error) { a.courseState.Fail(e.Message) },
		})
}

// DeleteCourse removes the course once the server confirms. There is
// no optimistic removal.
func (a *App) DeleteCourse(ctx context.Context, id int64) <-chan error {
	return dispatch.Run(ctx, a.d, "courses/deleteCourse", courseKey(id),
		func(ctx context.Context) (int64, error) {
			token, err := a.token()
			if err != nil {
				return 0, err
			}
			if err := a.courses.DeleteCourse(ctx, token, id); err != nil {
				return 0, err
			}
			return id, nil
		},
		dispatch.Hooks[int64]{
			Fulfilled: a.courseState.RemoveByID,
			Rejected:  func(e *errdefs.Error) { a.courseState.Fail(e.Message) },
		})
}

// EnrollInCourse enrolls the current user and reflects the enrollment
// immediately, without a full profile refetch.
func (a *App) EnrollInCourse(ctx context.Context, id int64) <-chan error {
	return dispatch.Run(ctx, a.d, "courses/enrollInCourse", courseKey(id),
		func(ctx context.Context) (string, error) {
			token, err := a.token()
			if err != nil {
				return "", err
			}
			return a.courses.Enroll(ctx, token, id)
		},
		dispatch.Hooks[string]{
			Fulfilled: func(message string) {
				a.session.AddEnrolledCourse(id)
				a.log.Info(ctx, "enrolled in course",
					zap.Int64("course_id", id), zap.String("message", message))
			},
			Rejected: func(e *errdefs.Error) { a.courseState.Fail(e.Message) },
		})
}

// FetchCourseMaterials loads the material list into the course's own
// detail slot, independent of the collection status.
func (a *App) FetchCourseMaterials(ctx context.Context, id int64) <-chan error {
	return dispatch.Run(ctx, a.d, "courses/fetchCourseMaterials", courseKey(id)+"/materials",
		func(ctx context.Context) ([]domain.Material, error) {
			token, err := a.token()
			if err != nil {
				return nil, err
			}
			return a.courses.ListMaterials(ctx, token, id)
		},
		dispatch.Hooks[[]domain.Material]{
			Pending:   func() { a.courseState.BeginDetail(id) },
			Fulfilled: func(materials []domain.Material) { a.courseState.SetMaterials(id, materials) },
			Rejected:  func(e *errdefs.Error) { a.courseState.FailDetail(id, e.Message) },
			Canceled:  func() { a.courseState.IdleDetail(id) },
		})
}

// FetchEnrolledStudents loads the roster into the course's detail slot.
func (a *App) FetchEnrolledStudents(ctx context.Context, id int64) <-chan error {
	return dispatch.Run(ctx, a.d, "courses/fetchEnrolledStudents", courseKey(id)+"/students",
		func(ctx context.Context) ([]domain.Student, error) {
			token, err := a.token()
			if err != nil {
				return nil, err
			}
			return a.courses.ListStudents(ctx, token, id)
		},
		dispatch.Hooks[[]domain.Student]{
			Fulfilled: func(students []domain.Student) { a.courseState.SetStudents(id, students) },
			Rejected:  func(e *errdefs.Error) { a.courseState.FailDetail(id, e.Message) },
		})
}

// UploadCourseMaterial uploads one file and appends the confirmed
// material to the course's list.
func (a *App) UploadCourseMaterial(ctx context.Context, in domain.UploadMaterialInput) <-chan error {
	if err := validate.Struct(in); err != nil {
		return settled(err)
	}
	return dispatch.Run(ctx, a.d, "courses/uploadCourseMaterial", courseKey(in.CourseID),
		func(ctx context.Context) (domain.Material, error) {
			token, err := a.token()
			if err != nil {
				return domain.Material{}, err
			}
			return a.courses.UploadMaterial(ctx, token, in)
		},
		dispatch.Hooks[domain.Material]{
			Pending:   func() { a.courseState.BeginDetail(in.CourseID) },
			Fulfilled: func(m domain.Material) { a.courseState.AppendMaterial(in.CourseID, m) },
			Rejected:  func(e *errdefs.Error) { a.courseState.FailDetail(in.CourseID, e.Message) },
			Canceled:  func() { a.courseState.IdleDetail(in.CourseID) },
		})
}

// AssignInstructor reassigns the course and replaces the confirmed
// record in place.
func (a *App) AssignInstructor(ctx context.Context, in domain.AssignInstructorInput) <-chan error {
	if err := validate.Struct(in); err != nil {
		return settled(err)
	}
	return dispatch.Run(ctx, a.d, "courses/assignInstructor", courseKey(in.CourseID),
		func(ctx context.Context) (domain.Course, error) {
			token, err := a.token()
			if err != nil {
				return domain.Course{}, err
			}
			return a.courses.AssignInstructor(ctx, token, in)
		},
		dispatch.Hooks[domain.Course]{
			Fulfilled: a.courseState.ReplaceByID,
			Rejected:  func(e *errdefs.Error) { a.courseState.Fail(e.Message) },
		})
}

// ClearCourseDetail drops a course's detail state on navigation away.
func (a *App) ClearCourseDetail(id int64) {
	a.courseState.ClearDetail(id)
}
