package services

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"technomech-api/models"
)

// MemoryStore holds submissions in a map. Used by tests and usable as an
// ephemeral backend; nothing survives a restart.
type MemoryStore struct {
	mu          sync.Mutex
	submissions map[string]models.Submission
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{submissions: make(map[string]models.Submission)}
}

// Seed inserts records as-is, keeping their ids, timestamps and statuses.
func (s *MemoryStore) Seed(subs ...models.Submission) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sub := range subs {
		s.submissions[sub.ID] = sub
	}
}

// Len reports the number of stored submissions.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.submissions)
}

func (s *MemoryStore) List() ([]models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Submission, 0, len(s.submissions))
	for _, sub := range s.submissions {
		out = append(out, sub)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) Create(fields models.SubmissionFields) (models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	submission := models.Submission{
		ID:        uuid.NewString(),
		Name:      fields.Name,
		Email:     fields.Email,
		Phone:     fields.Phone,
		Company:   fields.Company,
		Subject:   fields.Subject,
		Message:   fields.Message,
		Status:    models.StatusNew,
		CreatedAt: time.Now(),
	}
	s.submissions[submission.ID] = submission
	return submission, nil
}

func (s *MemoryStore) Update(id string, update models.SubmissionUpdate) (models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	submission, ok := s.submissions[id]
	if !ok {
		return models.Submission{}, ErrNotFound
	}
	update.Apply(&submission)
	s.submissions[id] = submission
	return submission, nil
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.submissions, id)
	return nil
}

func (s *MemoryStore) DeleteMany(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		delete(s.submissions, id)
	}
	return nil
}
