package state

import (
	"sync"

	"github.com/visheshsahu1513/Smart-Learning/internal/domain"
)

// AssessmentList is a snapshot of the assessment collection.
type AssessmentList struct {
	Items  []domain.Assessment
	Status Status
	Error  string
}

// AssessmentDetail is the per-assessment grading view state: the
// submissions turned in for it.
type AssessmentDetail struct {
	Submissions []domain.Submission
	Status      Status
	Error       string
}

// GradeList is the student's own submissions with their grades.
type GradeList struct {
	Items  []domain.Submission
	Status Status
	Error  string
}

// AssessmentStore mirrors the assessment list, a keyed cache of open
// grading views, and the student's own grade list.
type AssessmentStore struct {
	notifier
	mu       sync.Mutex
	items    []domain.Assessment
	status   Status
	err      string
	details  *detailCache[AssessmentDetail]
	myGrades GradeList
}

func NewAssessmentStore() *AssessmentStore {
	return &AssessmentStore{
		status:   StatusIdle,
		details:  newDetailCache[AssessmentDetail](detailCacheCap),
		myGrades: GradeList{Status: StatusIdle},
	}
}

func (st *AssessmentStore) List() AssessmentList {
	st.mu.Lock()
	defer st.mu.Unlock()
	items := make([]domain.Assessment, len(st.items))
	copy(items, st.items)
	return AssessmentList{Items: items, Status: st.status, Error: st.err}
}

func (st *AssessmentStore) Begin() {
	st.mu.Lock()
	st.status = StatusLoading
	st.err = ""
	st.mu.Unlock()
	st.notify()
}

func (st *AssessmentStore) SetItems(items []domain.Assessment) {
	st.mu.Lock()
	st.items = items
	st.status = StatusSucceeded
	st.mu.Unlock()
	st.notify()
}

// Prepend inserts a confirmed new assessment at the head of the list.
func (st *AssessmentStore) Prepend(a domain.Assessment) {
	st.mu.Lock()
	st.items = append([]domain.Assessment{a}, st.items...)
	st.status = StatusSucceeded
	st.mu.Unlock()
	st.notify()
}

func (st *AssessmentStore) Fail(msg string) {
	st.mu.Lock()
	st.status = StatusFailed
	st.err = msg
	st.mu.Unlock()
	st.notify()
}

func (st *AssessmentStore) Idle() {
	st.mu.Lock()
	st.status = StatusIdle
	st.mu.Unlock()
	st.notify()
}

// Detail returns a snapshot of one assessment's grading view state.
func (st *AssessmentStore) Detail(id int64) (AssessmentDetail, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	d, ok := st.details.get(id)
	if !ok {
		return AssessmentDetail{Status: StatusIdle}, false
	}
	out := AssessmentDetail{Status: d.Status, Error: d.Error}
	out.Submissions = make([]domain.Submission, len(d.Submissions))
	copy(out.Submissions, d.Submissions)
	return out, true
}

func (st *AssessmentStore) BeginDetail(id int64) {
	st.mu.Lock()
	d := st.details.getOrCreate(id)
	d.Status = StatusLoading
	d.Error = ""
	st.mu.Unlock()
	st.notify()
}

func (st *AssessmentStore) SetSubmissions(id int64, submissions []domain.Submission) {
	st.mu.Lock()
	d := st.details.getOrCreate(id)
	d.Submissions = submissions
	d.Status = StatusSucceeded
	st.mu.Unlock()
	st.notify()
}

// AppendSubmission adds the student's confirmed submission to the
// assessment's list.
func (st *AssessmentStore) AppendSubmission(id int64, s domain.Submission) {
	st.mu.Lock()
	d := st.details.getOrCreate(id)
	d.Submissions = append(d.Submissions, s)
	d.Status = StatusSucceeded
	st.mu.Unlock()
	st.notify()
}

// ReplaceSubmission swaps a graded submission in place, found by linear
// scan on its id. A missing id is silently dropped.
func (st *AssessmentStore) ReplaceSubmission(assessmentID int64, s domain.Submission) {
	st.mu.Lock()
	d := st.details.getOrCreate(assessmentID)
	for i := range d.Submissions {
		if d.Submissions[i].ID == s.ID {
			d.Submissions[i] = s
			break
		}
	}
	d.Status = StatusSucceeded
	st.mu.Unlock()
	st.notify()
}

func (st *AssessmentStore) FailDetail(id int64, msg string) {
	st.mu.Lock()
	d := st.details.getOrCreate(id)
	d.Status = StatusFailed
	d.Error = msg
	st.mu.Unlock()
	st.notify()
}

func (st *AssessmentStore) IdleDetail(id int64) {
	st.mu.Lock()
	if d, ok := st.details.get(id); ok {
		d.Status = StatusIdle
	}
	st.mu.Unlock()
	st.notify()
}

// ClearDetail evicts an assessment's grading view state.
func (st *AssessmentStore) ClearDetail(id int64) {
	st.mu.Lock()
	st.details.delete(id)
	st.mu.Unlock()
	st.notify()
}

func (st *AssessmentStore) MyGrades() GradeList {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := st.myGrades
	out.Items = make([]domain.Submission, len(st.myGrades.Items))
	copy(out.Items, st.myGrades.Items)
	return out
}

func (st *AssessmentStore) BeginMyGrades() {
	st.mu.Lock()
	st.myGrades.Status = StatusLoading
	st.myGrades.Error = ""
	st.mu.Unlock()
	st.notify()
}

func (st *AssessmentStore) SetMyGrades(items []domain.Submission) {
	st.mu.Lock()
	st.myGrades.Items = items
	st.myGrades.Status = StatusSucceeded
	st.mu.Unlock()
	st.notify()
}

func (st *AssessmentStore) FailMyGrades(msg string) {
	st.mu.Lock()
	st.myGrades.Status = StatusFailed
	st.myGrades.Error = msg
	st.mu.Unlock()
	st.notify()
}

func (st *AssessmentStore) IdleMyGrades() {
	st.mu.Lock()
	st.myGrades.Status = StatusIdle
	st.mu.Unlock()
	st.notify()
}
