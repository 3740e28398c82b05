package service

import (
	"context"
	"strconv"
	"sync"

	"github.com/MKhiriev/internship-tracker/internal/adapter"
	"github.com/MKhiriev/internship-tracker/models"
)

// memoryDocs is an in-memory DocumentStore that pushes a snapshot to every
// matching stream after each write.
type memoryDocs struct {
	mu      sync.Mutex
	nextID  int
	seq     map[string]uint64
	records []models.Internship
	streams []*memoryStream
}

func newMemoryDocs() *memoryDocs {
	return &memoryDocs{seq: make(map[string]uint64)}
}

func (m *memoryDocs) SubscribeInternships(_ context.Context, filter models.Filter) (adapter.SnapshotStream, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := &memoryStream{
		userID:  filter.Value,
		updates: make(chan models.RecordSet, 16),
		broken:  make(chan error, 1),
		closed:  make(chan struct{}),
	}
	m.streams = append(m.streams, s)
	s.updates <- m.snapshotLocked(filter.Value)
	return s, nil
}

func (m *memoryDocs) ListInternships(_ context.Context, filter models.Filter) ([]models.Internship, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ownedLocked(filter.Value), nil
}

func (m *memoryDocs) InsertInternship(_ context.Context, rec models.Internship) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	rec.ID = "rec-" + strconv.Itoa(m.nextID)
	m.records = append(m.records, rec)
	m.publishLocked(rec.UserID)
	return rec.ID, nil
}

func (m *memoryDocs) UpdateInternship(_ context.Context, rec models.Internship) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.records {
		if m.records[i].ID == rec.ID {
			m.records[i].InternshipFields = rec.InternshipFields
			m.records[i].Updated = rec.Updated
			m.publishLocked(m.records[i].UserID)
			return nil
		}
	}
	return adapter.ErrNotFound
}

func (m *memoryDocs) DeleteInternship(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.records {
		if m.records[i].ID == id {
			userID := m.records[i].UserID
			m.records = append(m.records[:i], m.records[i+1:]...)
			m.publishLocked(userID)
			return nil
		}
	}
	return adapter.ErrNotFound
}

func (m *memoryDocs) GetInternship(_ context.Context, id string) (models.Internship, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rec := range m.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return models.Internship{}, adapter.ErrNotFound
}

func (m *memoryDocs) GetUser(_ context.Context, id string) (models.User, error) {
	return models.User{ID: id}, nil
}

func (m *memoryDocs) ownedLocked(userID string) []models.Internship {
	out := []models.Internship{}
	for _, rec := range m.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out
}

func (m *memoryDocs) snapshotLocked(userID string) models.RecordSet {
	m.seq[userID]++
	return models.RecordSet{Seq: m.seq[userID], Records: m.ownedLocked(userID)}
}

func (m *memoryDocs) publishLocked(userID string) {
	for _, s := range m.streams {
		if s.userID == userID {
			s.updates <- m.snapshotLocked(userID)
		}
	}
}

type memoryStream struct {
	userID  string
	updates chan models.RecordSet
	broken  chan error
	closed  chan struct{}
	once    sync.Once
}

func (s *memoryStream) Next() (models.RecordSet, error) {
	select {
	case set := <-s.updates:
		return set, nil
	case err := <-s.broken:
		return models.RecordSet{}, err
	case <-s.closed:
		return models.RecordSet{}, adapter.ErrStreamClosed
	}
}

func (s *memoryStream) Close() error {
	s.once.Do(func() { close(s.closed) })
	return nil
}
