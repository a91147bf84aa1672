package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/lcc360/tutormatch/internal/config"
	"github.com/lcc360/tutormatch/internal/db"
	"github.com/lcc360/tutormatch/pkg/models"
)

// memStore is an in-memory db.Store for handler tests.
type memStore struct {
	mu       sync.Mutex
	students map[string]*models.StudentProfile
	tutors   map[string]*models.TutorProfile
	cfg      *models.WeightConfig
	nextID   int
}

func newMemStore() *memStore {
	return &memStore{
		students: make(map[string]*models.StudentProfile),
		tutors:   make(map[string]*models.TutorProfile),
	}
}

func (m *memStore) genID() string {
	m.nextID++
	return fmt.Sprintf("id-%d", m.nextID)
}

func (m *memStore) CreateStudent(ctx context.Context, s *models.StudentProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.ID == "" {
		s.ID = m.genID()
	}
	if s.Status == "" {
		s.Status = models.StudentActive
	}
	copied := *s
	m.students[s.ID] = &copied
	return nil
}

func (m *memStore) GetStudent(ctx context.Context, id string) (*models.StudentProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.students[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (m *memStore) ListStudents(ctx context.Context) ([]*models.StudentProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.StudentProfile, 0, len(m.students))
	for _, s := range m.students {
		copied := *s
		out = append(out, &copied)
	}
	return out, nil
}

func (m *memStore) ListActiveStudents(ctx context.Context) ([]*models.StudentProfile, error) {
	all, _ := m.ListStudents(ctx)
	out := all[:0]
	for _, s := range all {
		if s.IsActive() {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memStore) UpdateStudent(ctx context.Context, s *models.StudentProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.students[s.ID]; !ok {
		return db.ErrNotFound
	}
	copied := *s
	m.students[s.ID] = &copied
	return nil
}

func (m *memStore) DeleteStudent(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.students[id]; !ok {
		return db.ErrNotFound
	}
	delete(m.students, id)
	return nil
}

func (m *memStore) CreateTutor(ctx context.Context, t *models.TutorProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.ID == "" {
		t.ID = m.genID()
	}
	if t.Status == "" {
		t.Status = models.TutorActive
	}
	copied := *t
	m.tutors[t.ID] = &copied
	return nil
}

func (m *memStore) GetTutor(ctx context.Context, id string) (*models.TutorProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tutors[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	copied := *t
	return &copied, nil
}

func (m *memStore) ListTutors(ctx context.Context) ([]*models.TutorProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.TutorProfile, 0, len(m.tutors))
	for _, t := range m.tutors {
		copied := *t
		out = append(out, &copied)
	}
	return out, nil
}

func (m *memStore) ListActiveTutors(ctx context.Context) ([]*models.TutorProfile, error) {
	all, _ := m.ListTutors(ctx)
	out := all[:0]
	for _, t := range all {
		if t.IsActive() {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memStore) UpdateTutor(ctx context.Context, t *models.TutorProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tutors[t.ID]; !ok {
		return db.ErrNotFound
	}
	copied := *t
	m.tutors[t.ID] = &copied
	return nil
}

func (m *memStore) DeleteTutor(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tutors[id]; !ok {
		return db.ErrNotFound
	}
	delete(m.tutors, id)
	return nil
}

func (m *memStore) GetActiveWeightConfig(ctx context.Context) (*models.WeightConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cfg == nil {
		return nil, db.ErrNotFound
	}
	copied := *m.cfg
	return &copied, nil
}

func (m *memStore) CreateWeightConfig(ctx context.Context, cfg *models.WeightConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *cfg
	m.cfg = &copied
	return nil
}

func (m *memStore) SaveWeightConfig(ctx context.Context, cfg *models.WeightConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cfg == nil {
		return db.ErrNotFound
	}
	copied := *cfg
	m.cfg = &copied
	return nil
}

func (m *memStore) Ping(ctx context.Context) error { return nil }
func (m *memStore) Close() error                   { return nil }

// newTestService wires a service around a fresh in-memory store.
func newTestService() (*Service, *memStore) {
	store := newMemStore()
	svc := NewService("test", config.Default(), store)
	return svc, store
}
