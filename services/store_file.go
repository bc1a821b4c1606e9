package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"technomech-api/models"
)

// FileStore keeps the whole collection as one JSON array on disk and
// rewrites it wholesale on every mutation. A mutex serializes in-process
// operations; a second process writing the same file still races
// last-writer-wins on the full rewrite. Acceptable for this low-traffic
// deployment, and why the database-backed store is preferred when
// configured.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates the data directory if needed.
func NewFileStore(path string) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) load() ([]models.Submission, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Submission{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var submissions []models.Submission
	if err := json.Unmarshal(data, &submissions); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return submissions, nil
}

// save writes through a temp file, syncs and renames so a crash right
// after a successful call never loses the change.
func (s *FileStore) save(submissions []models.Submission) error {
	data, err := json.MarshalIndent(submissions, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "submissions-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

func (s *FileStore) List() ([]models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	submissions, err := s.load()
	if err != nil {
		return nil, err
	}
	sort.Slice(submissions, func(i, j int) bool {
		return submissions[i].CreatedAt.After(submissions[j].CreatedAt)
	})
	return submissions, nil
}

func (s *FileStore) Create(fields models.SubmissionFields) (models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	submissions, err := s.load()
	if err != nil {
		return models.Submission{}, err
	}

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
	submissions = append(submissions, submission)

	if err := s.save(submissions); err != nil {
		return models.Submission{}, err
	}
	return submission, nil
}

func (s *FileStore) Update(id string, update models.SubmissionUpdate) (models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	submissions, err := s.load()
	if err != nil {
		return models.Submission{}, err
	}

	for i := range submissions {
		if submissions[i].ID == id {
			update.Apply(&submissions[i])
			if err := s.save(submissions); err != nil {
				return models.Submission{}, err
			}
			return submissions[i], nil
		}
	}
	return models.Submission{}, ErrNotFound
}

func (s *FileStore) Delete(id string) error {
	return s.DeleteMany([]string{id})
}

func (s *FileStore) DeleteMany(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	submissions, err := s.load()
	if err != nil {
		return err
	}

	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	kept := submissions[:0]
	removed := false
	for _, sub := range submissions {
		if drop[sub.ID] {
			removed = true
			continue
		}
		kept = append(kept, sub)
	}
	if !removed {
		// Nothing matched; missing ids are a no-op.
		return nil
	}
	return s.save(kept)
}
