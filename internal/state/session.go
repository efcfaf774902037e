package state

import (
	"sort"
	"sync"

	"github.com/visheshsahu1513/Smart-Learning/internal/domain"
)

// Session is a point-in-time copy of the auth state. IsAuthenticated
// tracks token presence only; User and Role lag it by one profile
// fetch, so both can be unset while IsAuthenticated is already true.
type Session struct {
	Token             string
	User              *domain.User
	Role              domain.Role
	IsAuthenticated   bool
	EnrolledCourseIDs map[int64]struct{}
	Status            Status
	Error             string
}

// Enrolled reports whether the user is enrolled in the given course.
func (s Session) Enrolled(courseID int64) bool {
	_, ok := s.EnrolledCourseIDs[courseID]
	return ok
}

// EnrolledIDs returns the enrollment set in ascending order.
func (s Session) EnrolledIDs() []int64 {
	ids := make([]int64, 0, len(s.EnrolledCourseIDs))
	for id := range s.EnrolledCourseIDs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// SessionStore owns the session. The token is written only by login,
// persistence restore, profile-fetch failure and logout; every
// authorized command reads a snapshot of it at dispatch time.
type SessionStore struct {
	notifier
	mu sync.Mutex
	s  Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{s: emptySession()}
}

func emptySession() Session {
	return Session{Status: StatusIdle, EnrolledCourseIDs: map[int64]struct{}{}}
}

// Snapshot returns a copy safe to read without holding the store lock.
func (st *SessionStore) Snapshot() Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.copyLocked()
}

func (st *SessionStore) copyLocked() Session {
	s := st.s
	ids := make(map[int64]struct{}, len(st.s.EnrolledCourseIDs))
	for id := range st.s.EnrolledCourseIDs {
		ids[id] = struct{}{}
	}
	s.EnrolledCourseIDs = ids
	if st.s.User != nil {
		u := *st.s.User
		s.User = &u
	}
	return s
}

// Token returns the current bearer token, empty when logged out.
func (st *SessionStore) Token() string {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.s.Token
}

// SetToken installs a token from login or persistence restore and
// reports whether the value actually changed. A changed, non-empty
// token is the sole trigger for a profile fetch.
func (st *SessionStore) SetToken(token string) bool {
	st.mu.Lock()
	changed := st.s.Token != token
	if changed {
		st.s.Token = token
		st.s.IsAuthenticated = token != ""
	}
	st.mu.Unlock()
	if changed {
		st.notify()
	}
	return changed
}

// Begin marks an auth command (login, signup, profile fetch) in flight.
func (st *SessionStore) Begin() {
	st.mu.Lock()
	st.s.Status = StatusLoading
	st.s.Error = ""
	st.mu.Unlock()
	st.notify()
}

// Settle marks the last auth command finished without touching fields,
// used by commands with no session payload (signup, password reset).
func (st *SessionStore) Settle() {
	st.mu.Lock()
	st.s.Status = StatusSucceeded
	st.mu.Unlock()
	st.notify()
}

func (st *SessionStore) Fail(msg string) {
	st.mu.Lock()
	st.s.Status = StatusFailed
	st.s.Error = msg
	st.mu.Unlock()
	st.notify()
}

// Idle rewinds the status after a cancelled command so the session is
// not stuck at loading.
func (st *SessionStore) Idle() {
	st.mu.Lock()
	st.s.Status = StatusIdle
	st.mu.Unlock()
	st.notify()
}

// ApplyProfile fills in the user, role and enrollment set after a
// successful profile fetch.
func (st *SessionStore) ApplyProfile(p domain.Profile) {
	st.mu.Lock()
	u := p.User
	st.s.User = &u
	st.s.Role = p.Role
	st.s.Status = StatusSucceeded
	st.s.Error = ""
	st.s.EnrolledCourseIDs = make(map[int64]struct{}, len(p.EnrolledCourseIDs))
	for _, id := range p.EnrolledCourseIDs {
		st.s.EnrolledCourseIDs[id] = struct{}{}
	}
	st.mu.Unlock()
	st.notify()
}

// AddEnrolledCourse reflects a confirmed enrollment without a full
// profile refetch. Inserting an already present id is a no-op.
func (st *SessionStore) AddEnrolledCourse(courseID int64) {
	st.mu.Lock()
	_, present := st.s.EnrolledCourseIDs[courseID]
	if !present {
		st.s.EnrolledCourseIDs[courseID] = struct{}{}
	}
	st.mu.Unlock()
	if !present {
		st.notify()
	}
}

// Reset clears every session field, the in-memory half of a logout.
func (st *SessionStore) Reset() {
	st.mu.Lock()
	st.s = emptySession()
	st.mu.Unlock()
	st.notify()
}
