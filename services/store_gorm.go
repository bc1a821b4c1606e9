package services

import (
	"errors"

	"gorm.io/gorm"

	"technomech-api/models"
)

// GormStore persists submissions in the contact_submissions table. Each
// operation is an independent per-row write; no multi-row transaction is
// needed because no operation spans more than one record.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the submissions table and returns the store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&models.Submission{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) List() ([]models.Submission, error) {
	var submissions []models.Submission
	if err := s.db.Order("created_at DESC").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (s *GormStore) Create(fields models.SubmissionFields) (models.Submission, error) {
	submission := models.Submission{
		Name:    fields.Name,
		Email:   fields.Email,
		Phone:   fields.Phone,
		Company: fields.Company,
		Subject: fields.Subject,
		Message: fields.Message,
		Status:  models.StatusNew,
	}
	if err := s.db.Create(&submission).Error; err != nil {
		return models.Submission{}, err
	}
	return submission, nil
}

func (s *GormStore) Update(id string, update models.SubmissionUpdate) (models.Submission, error) {
	var submission models.Submission
	if err := s.db.Where("submission_id = ?", id).First(&submission).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Submission{}, ErrNotFound
		}
		return models.Submission{}, err
	}

	cols := update.Columns()
	if len(cols) == 0 {
		return submission, nil
	}
	if err := s.db.Model(&submission).Updates(cols).Error; err != nil {
		return models.Submission{}, err
	}
	update.Apply(&submission)
	return submission, nil
}

func (s *GormStore) Delete(id string) error {
	// Deleting an unknown id affects zero rows, which is the intended no-op.
	return s.db.Where("submission_id = ?", id).Delete(&models.Submission{}).Error
}

func (s *GormStore) DeleteMany(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.Where("submission_id IN ?", ids).Delete(&models.Submission{}).Error
}
