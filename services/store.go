package services

import (
	"errors"

	"technomech-api/models"
)

// ErrNotFound is returned by Update when no submission has the given id.
// Delete and DeleteMany treat missing ids as no-ops instead.
var ErrNotFound = errors.New("submission not found")

// SubmissionStore is the durable CRUD layer for contact submissions.
// Implementations must persist each mutation before returning, assign
// the identifier and createdAt on Create, and order List newest first.
type SubmissionStore interface {
	List() ([]models.Submission, error)
	Create(fields models.SubmissionFields) (models.Submission, error)
	Update(id string, update models.SubmissionUpdate) (models.Submission, error)
	Delete(id string) error
	DeleteMany(ids []string) error
}
