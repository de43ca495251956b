package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"campusevents/internal/domain"
)

// In-memory repository fakes shared by the service tests. The pair-keyed
// repos enforce the (event_id, student_id) unique constraint under a mutex,
// mirroring what postgres does, so duplicate and race behavior can be tested
// without a database.

func pairKey(eventID, studentID string) string {
	return eventID + ":" + studentID
}

type memEventRepo struct {
	mu     sync.Mutex
	events map[string]*domain.Event
	nextID int
	err    error
}

func newMemEventRepo() *memEventRepo {
	return &memEventRepo{events: make(map[string]*domain.Event)}
}

func (m *memEventRepo) Create(ctx context.Context, event *domain.Event) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	event.ID = fmt.Sprintf("ev-%d", m.nextID)
	m.events[event.ID] = event
	return nil
}

func (m *memEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	ev, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ev, nil
}

func (m *memEventRepo) ListUpcoming(ctx context.Context, after time.Time) ([]*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Event
	for _, ev := range m.events {
		if ev.EventDate.After(after) {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EventDate.Before(out[j].EventDate) })
	return out, nil
}

func (m *memEventRepo) Update(ctx context.Context, id string, upd domain.EventUpdate, updatedAt time.Time) (*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ev, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Title != nil {
		ev.Title = *upd.Title
	}
	if upd.Description != nil {
		ev.Description = *upd.Description
	}
	if upd.EventDate != nil {
		ev.EventDate = *upd.EventDate
	}
	if upd.Location != nil {
		ev.Location = *upd.Location
	}
	ev.UpdatedAt = updatedAt
	return ev, nil
}

func (m *memEventRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.events, id)
	return nil
}

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMemUserRepo(users ...*domain.User) *memUserRepo {
	m := &memUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *memUserRepo) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return domain.ErrDuplicateEmail
		}
	}
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(m.users)+1)
	}
	m.users[user.ID] = user
	return nil
}

func (m *memUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

type memRegistrationRepo struct {
	mu     sync.Mutex
	byPair map[string]*domain.Registration
	nextID int
	err    error
	// existsOverride forces ExistsByEventAndStudent to report false, so the
	// constraint path in Create can be exercised on its own.
	existsOverride bool
}

func newMemRegistrationRepo() *memRegistrationRepo {
	return &memRegistrationRepo{byPair: make(map[string]*domain.Registration)}
}

func (m *memRegistrationRepo) Create(ctx context.Context, reg *domain.Registration) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := pairKey(reg.EventID, reg.StudentID)
	if _, ok := m.byPair[key]; ok {
		return domain.ErrDuplicateRegistration
	}
	m.nextID++
	reg.ID = fmt.Sprintf("reg-%d", m.nextID)
	m.byPair[key] = reg
	return nil
}

func (m *memRegistrationRepo) ExistsByEventAndStudent(ctx context.Context, eventID, studentID string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if m.existsOverride {
		return false, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.byPair[pairKey(eventID, studentID)]
	return ok, nil
}

func (m *memRegistrationRepo) ListByEvent(ctx context.Context, eventID string) ([]*domain.RegisteredStudent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.RegisteredStudent
	for _, reg := range m.byPair {
		if reg.EventID == eventID {
			out = append(out, &domain.RegisteredStudent{UserID: reg.StudentID, RegisteredAt: reg.RegisteredAt})
		}
	}
	return out, nil
}

func (m *memRegistrationRepo) CountByEvent(ctx context.Context, eventID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, reg := range m.byPair {
		if reg.EventID == eventID {
			count++
		}
	}
	return count, nil
}

func (m *memRegistrationRepo) CountByStudent(ctx context.Context, studentID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, reg := range m.byPair {
		if reg.StudentID == studentID {
			count++
		}
	}
	return count, nil
}

type memAttendanceRepo struct {
	mu     sync.Mutex
	byPair map[string]*domain.Attendance
	titles map[string]string // event id -> title, for recent attendance joins
	dates  map[string]time.Time
	nextID int
	err    error
}

func newMemAttendanceRepo() *memAttendanceRepo {
	return &memAttendanceRepo{
		byPair: make(map[string]*domain.Attendance),
		titles: make(map[string]string),
		dates:  make(map[string]time.Time),
	}
}

func (m *memAttendanceRepo) Create(ctx context.Context, att *domain.Attendance) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := pairKey(att.EventID, att.StudentID)
	if _, ok := m.byPair[key]; ok {
		return domain.ErrDuplicateAttendance
	}
	m.nextID++
	att.ID = fmt.Sprintf("att-%d", m.nextID)
	m.byPair[key] = att
	return nil
}

func (m *memAttendanceRepo) ExistsByEventAndStudent(ctx context.Context, eventID, studentID string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.byPair[pairKey(eventID, studentID)]
	return ok, nil
}

func (m *memAttendanceRepo) ListByEvent(ctx context.Context, eventID string) ([]*domain.AttendedStudent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.AttendedStudent
	for _, att := range m.byPair {
		if att.EventID == eventID {
			out = append(out, &domain.AttendedStudent{UserID: att.StudentID, MarkedAt: att.MarkedAt})
		}
	}
	return out, nil
}

func (m *memAttendanceRepo) ListRecentByStudent(ctx context.Context, studentID string, limit int) ([]*domain.RecentAttendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var atts []*domain.Attendance
	for _, att := range m.byPair {
		if att.StudentID == studentID {
			atts = append(atts, att)
		}
	}
	sort.Slice(atts, func(i, j int) bool { return atts[i].MarkedAt.After(atts[j].MarkedAt) })
	if len(atts) > limit {
		atts = atts[:limit]
	}
	out := make([]*domain.RecentAttendance, 0, len(atts))
	for _, att := range atts {
		out = append(out, &domain.RecentAttendance{
			EventTitle: m.titles[att.EventID],
			EventDate:  m.dates[att.EventID],
			MarkedAt:   att.MarkedAt,
		})
	}
	return out, nil
}

func (m *memAttendanceRepo) CountByEvent(ctx context.Context, eventID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, att := range m.byPair {
		if att.EventID == eventID {
			count++
		}
	}
	return count, nil
}

func (m *memAttendanceRepo) CountByStudent(ctx context.Context, studentID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, att := range m.byPair {
		if att.StudentID == studentID {
			count++
		}
	}
	return count, nil
}

type memFeedbackRepo struct {
	mu     sync.Mutex
	byPair map[string]*domain.Feedback
	nextID int
}

func newMemFeedbackRepo() *memFeedbackRepo {
	return &memFeedbackRepo{byPair: make(map[string]*domain.Feedback)}
}

func (m *memFeedbackRepo) Create(ctx context.Context, fb *domain.Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := pairKey(fb.EventID, fb.StudentID)
	if _, ok := m.byPair[key]; ok {
		return domain.ErrDuplicateFeedback
	}
	m.nextID++
	fb.ID = fmt.Sprintf("fb-%d", m.nextID)
	m.byPair[key] = fb
	return nil
}

func (m *memFeedbackRepo) ExistsByEventAndStudent(ctx context.Context, eventID, studentID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.byPair[pairKey(eventID, studentID)]
	return ok, nil
}

func (m *memFeedbackRepo) ListByEvent(ctx context.Context, eventID string) ([]*domain.FeedbackEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.FeedbackEntry
	for _, fb := range m.byPair {
		if fb.EventID == eventID {
			out = append(out, &domain.FeedbackEntry{ID: fb.ID, Rating: fb.Rating, Comment: fb.Comment, SubmittedAt: fb.SubmittedAt})
		}
	}
	return out, nil
}

type stubEmailService struct {
	mu   sync.Mutex
	sent []*domain.RegistrationEmailData
	err  error
}

func (s *stubEmailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationEmailData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, data)
	return nil
}
