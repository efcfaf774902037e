package app

import (
	"context"
	"fmt"

	"github.com/visheshsahu1513/Smart-Learning/internal/dispatch"
	"github.com/visheshsahu1513/Smart-Learning/internal/domain"
	"github.com/visheshsahu1513/Smart-Learning/internal/errdefs"
	"github.com/visheshsahu1513/Smart-Learning/internal/validate"
)

func assessmentKey(id int64) string { return fmt.Sprintf("assessment/%d", id) }

// FetchAssessments refreshes the assessment list.
func (a *App) FetchAssessments(ctx context.Context) <-chan error {
	return dispatch.Run(ctx, a.d, "assessments/fetchAssessments", "assessments",
		func(ctx context.Context) ([]domain.Assessment, error) {
			token, err := a.token()
			if err != nil {
				return nil, err
			}
			return a.assessments.List(ctx, token)
		},
		dispatch.Hooks[[]domain.Assessment]{
			Pending:   a.assessState.Begin,
			Fulfilled: a.assessState.SetItems,
			Rejected:  func(e *errdefs.Error) { a.assessState.Fail(e.Message) },
			Canceled:  a.assessState.Idle,
		})
}

// CreateAssessment creates an assessment with its question file and
// prepends the confirmed record.
func (a *App) CreateAssessment(ctx context.Context, in domain.CreateAssessmentInput) <-chan error {
	if err := validate.Struct(in); err != nil {
		return settled(err)
	}
	return dispatch.Run(ctx, a.d, "assessments/createAssessment", "assessments/create",
		func(ctx context.Context) (domain.Assessment, error) {
			token, err := a.token()
			if err != nil {
				return domain.Assessment{}, err
			}
			return a.assessments.Create(ctx, token, in)
		},
		dispatch.Hooks[domain.Assessment]{
			Pending:   a.assessState.Begin,
			Fulfilled: a.assessState.Prepend,
			Rejected:  func(e *errdefs.Error) { a.assessState.Fail(e.Message) },
			Canceled:  a.assessState.Idle,
		})
}

// FetchSubmissions loads every submission for one assessment into its
// grading-view slot.
func (a *App) FetchSubmissions(ctx context.Context, assessmentID int64) <-chan error {
	return dispatch.Run(ctx, a.d, "assessments/fetchSubmissionsForAssessment", assessmentKey(assessmentID)+"/submissions",
		func(ctx context.Context) ([]domain.Submission, error) {
			token, err := a.token()
			if err != nil {
				return nil, err
			}
			return a.assessments.ListSubmissions(ctx, token, assessmentID)
		},
		dispatch.Hooks[[]domain.Submission]{
			Pending:   func() { a.assessState.BeginDetail(assessmentID) },
			Fulfilled: func(subs []domain.Submission) { a.assessState.SetSubmissions(assessmentID, subs) },
			Rejected:  func(e *errdefs.Error) { a.assessState.FailDetail(assessmentID, e.Message) },
			Canceled:  func() { a.assessState.IdleDetail(assessmentID) },
		})
}

// SubmitAnswer turns in the student's answer file and appends the
// confirmed submission.
func (a *App) SubmitAnswer(ctx context.Context, in domain.SubmitAnswerInput) <-chan error {
	if err := validate.Struct(in); err != nil {
		return settled(err)
	}
	return dispatch.Run(ctx, a.d, "assessments/submitAnswer", assessmentKey(in.AssessmentID),
		func(ctx context.Context) (domain.Submission, error) {
			token, err := a.token()
			if err != nil {
				return domain.Submission{}, err
			}
			return a.assessments.Submit(ctx, token, in)
		},
		dispatch.Hooks[domain.Submission]{
			Pending:   func() { a.assessState.BeginDetail(in.AssessmentID) },
			Fulfilled: func(s domain.Submission) { a.assessState.AppendSubmission(in.AssessmentID, s) },
			Rejected:  func(e *errdefs.Error) { a.assessState.FailDetail(in.AssessmentID, e.Message) },
			Canceled:  func() { a.assessState.IdleDetail(in.AssessmentID) },
		})
}

// GradeSubmission records the instructor's grade and replaces the
// graded submission in place.
func (a *App) GradeSubmission(ctx context.Context, in domain.GradeInput) <-chan error {
	if err := validate.Struct(in); err != nil {
		return settled(err)
	}
	return dispatch.Run(ctx, a.d, "assessments/gradeSubmission", fmt.Sprintf("submission/%d", in.SubmissionID),
		func(ctx context.Context) (domain.Submission, error) {
			token, err := a.token()
			if err != nil {
				return domain.Submission{}, err
			}
			return a.assessments.Grade(ctx, token, in)
		},
		dispatch.Hooks[domain.Submission]{
			Pending:   func() { a.assessState.BeginDetail(in.AssessmentID) },
			Fulfilled: func(s domain.Submission) { a.assessState.ReplaceSubmission(in.AssessmentID, s) },
			Rejected:  func(e *errdefs.Error) { a.assessState.FailDetail(in.AssessmentID, e.Message) },
			Canceled:  func() { a.assessState.IdleDetail(in.AssessmentID) },
		})
}

// FetchMyGrades loads the student's own submissions and grades.
func (a *App) FetchMyGrades(ctx context.Context) <-chan error {
	return dispatch.Run(ctx, a.d, "assessments/fetchMyGrades", "assessments/my-grades",
		func(ctx context.Context) ([]domain.Submission, error) {
			token, err := a.token()
			if err != nil {
				return nil, err
			}
			return a.assessments.MyGrades(ctx, token)
		},
		dispatch.Hooks[[]domain.Submission]{
			Pending:   a.assessState.BeginMyGrades,
			Fulfilled: a.assessState.SetMyGrades,
			Rejected:  func(e *errdefs.Error) { a.assessState.FailMyGrades(e.Message) },
			Canceled:  a.assessState.IdleMyGrades,
		})
}

// ClearAssessmentDetail drops an assessment's grading-view state on
// navigation away.
func (a *App) ClearAssessmentDetail(id int64) {
	a.assessState.ClearDetail(id)
}
