package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visheshsahu1513/Smart-Learning/internal/domain"
	"github.com/visheshsahu1513/Smart-Learning/internal/state"
)

func TestSessionToken(t *testing.T) {
	t.Run("SetTokenTracksAuthentication", func(t *testing.T) {
		st := state.NewSessionStore()
		require.False(t, st.Snapshot().IsAuthenticated)

		changed := st.SetToken("T1")
		assert.True(t, changed)
		s := st.Snapshot()
		assert.True(t, s.IsAuthenticated)
		assert.Equal(t, "T1", s.Token)
	})

	t.Run("SameTokenIsNotAChange", func(t *testing.T) {
		st := state.NewSessionStore()
		require.True(t, st.SetToken("T1"))
		assert.False(t, st.SetToken("T1"))
		assert.True(t, st.SetToken("T2"))
	})

	t.Run("AuthenticatedBeforeProfileArrives", func(t *testing.T) {
		st := state.NewSessionStore()
		st.SetToken("T1")
		s := st.Snapshot()
		assert.True(t, s.IsAuthenticated)
		assert.Nil(t, s.User)
		assert.Empty(t, s.Role)
	})
}

func TestSessionProfile(t *testing.T) {
	st := state.NewSessionStore()
	st.SetToken("T1")
	st.Begin()
	assert.Equal(t, state.StatusLoading, st.Snapshot().Status)

	st.ApplyProfile(domain.Profile{
		User:              domain.User{ID: 1, Email: "a@b.com", Role: domain.RoleStudent},
		EnrolledCourseIDs: []int64{5, 9},
	})

	s := st.Snapshot()
	assert.Equal(t, state.StatusSucceeded, s.Status)
	assert.Equal(t, domain.RoleStudent, s.Role)
	require.NotNil(t, s.User)
	assert.Equal(t, "a@b.com", s.User.Email)
	assert.Equal(t, []int64{5, 9}, s.EnrolledIDs())
	assert.True(t, s.IsAuthenticated)
}

func TestSessionReset(t *testing.T) {
	st := state.NewSessionStore()
	st.SetToken("T1")
	st.ApplyProfile(domain.Profile{
		User:              domain.User{ID: 1, Role: domain.RoleStudent},
		EnrolledCourseIDs: []int64{5},
	})

	st.Reset()

	s := st.Snapshot()
	assert.False(t, s.IsAuthenticated)
	assert.Empty(t, s.Token)
	assert.Empty(t, s.Role)
	assert.Nil(t, s.User)
	assert.Empty(t, s.EnrolledIDs())
	assert.Equal(t, state.StatusIdle, s.Status)
}

func TestAddEnrolledCourse(t *testing.T) {
	st := state.NewSessionStore()
	st.AddEnrolledCourse(5)
	st.AddEnrolledCourse(9)
	st.AddEnrolledCourse(5) // idempotent

	s := st.Snapshot()
	assert.Equal(t, []int64{5, 9}, s.EnrolledIDs())
	assert.True(t, s.Enrolled(5))
	assert.False(t, s.Enrolled(7))
}

func TestSessionSnapshotIsACopy(t *testing.T) {
	st := state.NewSessionStore()
	st.ApplyProfile(domain.Profile{
		User:              domain.User{ID: 1},
		EnrolledCourseIDs: []int64{5},
	})

	s := st.Snapshot()
	s.EnrolledCourseIDs[99] = struct{}{}
	s.User.ID = 42

	fresh := st.Snapshot()
	assert.False(t, fresh.Enrolled(99))
	assert.Equal(t, int64(1), fresh.User.ID)
}

func TestSessionSubscribe(t *testing.T) {
	st := state.NewSessionStore()
	var fired int
	st.Subscribe(func() { fired++ })

	st.SetToken("T1")
	st.SetToken("T1") // no change, no signal
	st.Reset()

	assert.Equal(t, 2, fired)
}
