package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visheshsahu1513/Smart-Learning/internal/domain"
	"github.com/visheshsahu1513/Smart-Learning/internal/state"
)

func TestAssessmentListLifecycle(t *testing.T) {
	st := state.NewAssessmentStore()
	assert.Equal(t, state.StatusIdle, st.List().Status)

	st.Begin()
	assert.Equal(t, state.StatusLoading, st.List().Status)

	st.Fail("service unreachable")
	list := st.List()
	assert.Equal(t, state.StatusFailed, list.Status)
	assert.Equal(t, "service unreachable", list.Error)

	st.Begin()
	st.SetItems([]domain.Assessment{{ID: 1, Title: "Quiz 1"}})
	assert.Equal(t, state.StatusSucceeded, st.List().Status)
}

func TestAssessmentPrepend(t *testing.T) {
	st := state.NewAssessmentStore()
	st.SetItems([]domain.Assessment{{ID: 1}})

	st.Prepend(domain.Assessment{ID: 2, Title: "Midterm"})

	list := st.List()
	require.Len(t, list.Items, 2)
	assert.Equal(t, int64(2), list.Items[0].ID)
}

func TestSubmissionAppend(t *testing.T) {
	st := state.NewAssessmentStore()
	st.SetSubmissions(3, []domain.Submission{{ID: 1, AssessmentID: 3}})

	st.AppendSubmission(3, domain.Submission{ID: 2, AssessmentID: 3})

	detail, ok := st.Detail(3)
	require.True(t, ok)
	require.Len(t, detail.Submissions, 2)
	assert.Equal(t, int64(2), detail.Submissions[1].ID)
}

func TestReplaceSubmission(t *testing.T) {
	t.Run("GradedInPlace", func(t *testing.T) {
		st := state.NewAssessmentStore()
		st.SetSubmissions(3, []domain.Submission{
			{ID: 5, AssessmentID: 3},
			{ID: 7, AssessmentID: 3},
			{ID: 9, AssessmentID: 3},
		})

		st.ReplaceSubmission(3, domain.Submission{ID: 7, AssessmentID: 3, Grade: "A"})

		detail, ok := st.Detail(3)
		require.True(t, ok)
		require.Len(t, detail.Submissions, 3)
		assert.Equal(t, int64(5), detail.Submissions[0].ID)
		assert.Empty(t, detail.Submissions[0].Grade)
		assert.Equal(t, "A", detail.Submissions[1].Grade)
		assert.Empty(t, detail.Submissions[2].Grade)
	})

	t.Run("MissingIDIsANoOp", func(t *testing.T) {
		st := state.NewAssessmentStore()
		st.SetSubmissions(3, []domain.Submission{{ID: 5, AssessmentID: 3}})

		st.ReplaceSubmission(3, domain.Submission{ID: 99, Grade: "F"})

		detail, _ := st.Detail(3)
		require.Len(t, detail.Submissions, 1)
		assert.Empty(t, detail.Submissions[0].Grade)
	})
}

func TestAssessmentDetailIndependentStatuses(t *testing.T) {
	st := state.NewAssessmentStore()
	st.Begin()
	st.BeginDetail(3)
	st.FailDetail(3, "forbidden")

	assert.Equal(t, state.StatusLoading, st.List().Status)
	detail, _ := st.Detail(3)
	assert.Equal(t, state.StatusFailed, detail.Status)
	assert.Equal(t, "forbidden", detail.Error)
}

func TestAssessmentClearDetail(t *testing.T) {
	st := state.NewAssessmentStore()
	st.SetSubmissions(3, []domain.Submission{{ID: 1}})

	st.ClearDetail(3)

	_, ok := st.Detail(3)
	assert.False(t, ok)
}

func TestMyGrades(t *testing.T) {
	st := state.NewAssessmentStore()
	assert.Equal(t, state.StatusIdle, st.MyGrades().Status)

	st.BeginMyGrades()
	assert.Equal(t, state.StatusLoading, st.MyGrades().Status)

	st.SetMyGrades([]domain.Submission{{ID: 1, Grade: "B"}})
	grades := st.MyGrades()
	assert.Equal(t, state.StatusSucceeded, grades.Status)
	require.Len(t, grades.Items, 1)

	// my-grades status is independent of list and details
	assert.Equal(t, state.StatusIdle, st.List().Status)

	st.FailMyGrades("nope")
	grades = st.MyGrades()
	assert.Equal(t, state.StatusFailed, grades.Status)
	assert.Equal(t, "nope", grades.Error)
}
