package state

import (
	"sync"

	"github.com/visheshsahu1513/Smart-Learning/internal/domain"
)

// detailCacheCap bounds how many detail views keep cached state.
const detailCacheCap = 8

// CourseList is a snapshot of the course collection.
type CourseList struct {
	Items  []domain.Course
	Status Status
	Error  string
}

// CourseDetail is the per-course detail state: materials and enrolled
// students, with a status independent of the collection's own.
type CourseDetail struct {
	Materials []domain.Material
	Students  []domain.Student
	Status    Status
	Error     string
}

// CourseStore mirrors the course list resource plus a keyed cache of
// open course detail views.
type CourseStore struct {
	notifier
	mu      sync.Mutex
	items   []domain.Course
	status  Status
	err     string
	details *detailCache[CourseDetail]
}

func NewCourseStore() *CourseStore {
	return &CourseStore{
		status:  StatusIdle,
		details: newDetailCache[CourseDetail](detailCacheCap),
	}
}

func (st *CourseStore) List() CourseList {
	st.mu.Lock()
	defer st.mu.Unlock()
	items := make([]domain.Course, len(st.items))
	copy(items, st.items)
	return CourseList{Items: items, Status: st.status, Error: st.err}
}

// Begin marks a collection command in flight.
func (st *CourseStore) Begin() {
	st.mu.Lock()
	st.status = StatusLoading
	st.err = ""
	st.mu.Unlock()
	st.notify()
}

func (st *CourseStore) SetItems(items []domain.Course) {
	st.mu.Lock()
	st.items = items
	st.status = StatusSucceeded
	st.mu.Unlock()
	st.notify()
}

// Prepend inserts a confirmed new course at the head of the list,
// keeping most-recent-first ordering.
func (st *CourseStore) Prepend(c domain.Course) {
	st.mu.Lock()
	st.items = append([]domain.Course{c}, st.items...)
	st.status = StatusSucceeded
	st.mu.Unlock()
	st.notify()
}

// ReplaceByID swaps the course with a matching id in place. A missing
// id is silently dropped; the command confirmed against this same
// collection, so the id is expected to exist.
func (st *CourseStore) ReplaceByID(c domain.Course) {
	st.mu.Lock()
	for i := range st.items {
		if st.items[i].ID == c.ID {
			st.items[i] = c
			break
		}
	}
	st.mu.Unlock()
	st.notify()
}

// RemoveByID drops the course after the server confirmed the delete.
func (st *CourseStore) RemoveByID(id int64) {
	st.mu.Lock()
	kept := st.items[:0]
	for _, c := range st.items {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	st.items = kept
	st.mu.Unlock()
	st.notify()
}

func (st *CourseStore) Fail(msg string) {
	st.mu.Lock()
	st.status = StatusFailed
	st.err = msg
	st.mu.Unlock()
	st.notify()
}

// Idle rewinds the collection status after a cancelled command.
func (st *CourseStore) Idle() {
	st.mu.Lock()
	st.status = StatusIdle
	st.mu.Unlock()
	st.notify()
}

// Detail returns a snapshot of one course's detail state.
func (st *CourseStore) Detail(id int64) (CourseDetail, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	d, ok := st.details.get(id)
	if !ok {
		return CourseDetail{Status: StatusIdle}, false
	}
	out := CourseDetail{Status: d.Status, Error: d.Error}
	out.Materials = make([]domain.Material, len(d.Materials))
	copy(out.Materials, d.Materials)
	out.Students = make([]domain.Student, len(d.Students))
	copy(out.Students, d.Students)
	return out, true
}

func (st *CourseStore) BeginDetail(id int64) {
	st.mu.Lock()
	d := st.details.getOrCreate(id)
	d.Status = StatusLoading
	d.Error = ""
	st.mu.Unlock()
	st.notify()
}

func (st *CourseStore) SetMaterials(id int64, materials []domain.Material) {
	st.mu.Lock()
	d := st.details.getOrCreate(id)
	d.Materials = materials
	d.Status = StatusSucceeded
	st.mu.Unlock()
	st.notify()
}

func (st *CourseStore) SetStudents(id int64, students []domain.Student) {
	st.mu.Lock()
	d := st.details.getOrCreate(id)
	d.Students = students
	d.Status = StatusSucceeded
	st.mu.Unlock()
	st.notify()
}

// AppendMaterial adds a confirmed upload to the course's material list.
func (st *CourseStore) AppendMaterial(id int64, m domain.Material) {
	st.mu.Lock()
	d := st.details.getOrCreate(id)
	d.Materials = append(d.Materials, m)
	d.Status = StatusSucceeded
	st.mu.Unlock()
	st.notify()
}

func (st *CourseStore) FailDetail(id int64, msg string) {
	st.mu.Lock()
	d := st.details.getOrCreate(id)
	d.Status = StatusFailed
	d.Error = msg
	st.mu.Unlock()
	st.notify()
}

func (st *CourseStore) IdleDetail(id int64) {
	st.mu.Lock()
	if d, ok := st.details.get(id); ok {
		d.Status = StatusIdle
	}
	st.mu.Unlock()
	st.notify()
}

// ClearDetail evicts a course's detail state when the view navigates
// away.
func (st *CourseStore) ClearDetail(id int64) {
	st.mu.Lock()
	st.details.delete(id)
	st.mu.Unlock()
	st.notify()
}
