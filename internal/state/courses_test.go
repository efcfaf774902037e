package state_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visheshsahu1513/Smart-Learning/internal/domain"
	"github.com/visheshsahu1513/Smart-Learning/internal/state"
)

func TestCourseListLifecycle(t *testing.T) {
	st := state.NewCourseStore()
	assert.Equal(t, state.StatusIdle, st.List().Status)

	st.Begin()
	assert.Equal(t, state.StatusLoading, st.List().Status)

	st.SetItems([]domain.Course{{ID: 1, Title: "Algebra"}})
	list := st.List()
	assert.Equal(t, state.StatusSucceeded, list.Status)
	assert.Len(t, list.Items, 1)

	// succeeded is not terminal: the next fetch re-enters loading
	st.Begin()
	assert.Equal(t, state.StatusLoading, st.List().Status)

	st.Fail("boom")
	list = st.List()
	assert.Equal(t, state.StatusFailed, list.Status)
	assert.Equal(t, "boom", list.Error)
}

func TestCoursePrepend(t *testing.T) {
	st := state.NewCourseStore()
	st.SetItems([]domain.Course{{ID: 1}, {ID: 2}})

	st.Prepend(domain.Course{ID: 42, Title: "CS101", OwnerID: 1})

	list := st.List()
	require.Len(t, list.Items, 3)
	assert.Equal(t, int64(42), list.Items[0].ID)
	assert.Equal(t, "CS101", list.Items[0].Title)
	assert.Equal(t, int64(1), list.Items[1].ID)
}

func TestCourseReplaceByID(t *testing.T) {
	t.Run("ReplacesInPlace", func(t *testing.T) {
		st := state.NewCourseStore()
		st.SetItems([]domain.Course{{ID: 1, Title: "Old"}, {ID: 2}})

		st.ReplaceByID(domain.Course{ID: 1, Title: "New"})

		list := st.List()
		require.Len(t, list.Items, 2)
		assert.Equal(t, "New", list.Items[0].Title)
		assert.Equal(t, int64(2), list.Items[1].ID)
	})

	t.Run("MissingIDIsANoOp", func(t *testing.T) {
		st := state.NewCourseStore()
		st.SetItems([]domain.Course{{ID: 1, Title: "Old"}})

		st.ReplaceByID(domain.Course{ID: 99, Title: "Ghost"})

		list := st.List()
		require.Len(t, list.Items, 1)
		assert.Equal(t, "Old", list.Items[0].Title)
	})
}

func TestCourseRemoveByID(t *testing.T) {
	st := state.NewCourseStore()
	st.SetItems([]domain.Course{{ID: 1}, {ID: 2}, {ID: 3}})

	st.RemoveByID(2)

	list := st.List()
	require.Len(t, list.Items, 2)
	for _, c := range list.Items {
		assert.NotEqual(t, int64(2), c.ID)
	}
}

func TestCourseDetailIsIndependentOfList(t *testing.T) {
	st := state.NewCourseStore()
	st.Begin()
	st.BeginDetail(5)
	st.SetMaterials(5, []domain.Material{{ID: 1, Title: "Syllabus"}})

	// detail succeeded while the list is still loading
	assert.Equal(t, state.StatusLoading, st.List().Status)
	detail, ok := st.Detail(5)
	require.True(t, ok)
	assert.Equal(t, state.StatusSucceeded, detail.Status)
	assert.Len(t, detail.Materials, 1)
}

func TestCourseDetailKeyedByID(t *testing.T) {
	// two detail views open at once keep separate state instead of
	// overwriting a shared slot
	st := state.NewCourseStore()
	st.BeginDetail(5)
	st.BeginDetail(9)

	st.SetMaterials(9, []domain.Material{{ID: 2, Title: "Notes"}})
	st.SetMaterials(5, []domain.Material{{ID: 1, Title: "Syllabus"}})

	d5, ok := st.Detail(5)
	require.True(t, ok)
	d9, ok := st.Detail(9)
	require.True(t, ok)
	assert.Equal(t, "Syllabus", d5.Materials[0].Title)
	assert.Equal(t, "Notes", d9.Materials[0].Title)
}

func TestCourseDetailStudentsAndMaterials(t *testing.T) {
	st := state.NewCourseStore()
	st.SetMaterials(5, []domain.Material{{ID: 1}})
	st.SetStudents(5, []domain.Student{{ID: 7, Email: "s@x.com"}})
	st.AppendMaterial(5, domain.Material{ID: 2, Title: "Week 2"})

	detail, ok := st.Detail(5)
	require.True(t, ok)
	assert.Len(t, detail.Materials, 2)
	assert.Equal(t, "Week 2", detail.Materials[1].Title)
	assert.Len(t, detail.Students, 1)
}

func TestCourseClearDetail(t *testing.T) {
	st := state.NewCourseStore()
	st.SetMaterials(5, []domain.Material{{ID: 1}})

	st.ClearDetail(5)

	detail, ok := st.Detail(5)
	assert.False(t, ok)
	assert.Equal(t, state.StatusIdle, detail.Status)
	assert.Empty(t, detail.Materials)
}

func TestCourseDetailLRUEviction(t *testing.T) {
	st := state.NewCourseStore()
	for i := 1; i <= 9; i++ {
		st.SetMaterials(int64(i), []domain.Material{{ID: int64(i)}})
	}

	// cap is 8: the least recently used entry is gone
	_, ok := st.Detail(1)
	assert.False(t, ok)
	for i := 2; i <= 9; i++ {
		_, ok := st.Detail(int64(i))
		assert.True(t, ok, fmt.Sprintf("course %d should still be cached", i))
	}
}
