package services

import (
	"fmt"
	"log"
	"time"

	"technomech-api/models"
	"technomech-api/utils"
)

// ValidationError is a client input rejection with a human-readable
// reason. Never retried by the server.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// ContactInput is the raw untrusted contact form payload.
type ContactInput struct {
	Name         string
	Email        string
	Phone        string
	Company      string
	Subject      string
	Message      string
	CaptchaValue string
}

// Records still "new" after this long are moved to "pending" on the next
// listing (read-triggered, no background clock).
const pendingAfter = 24 * time.Hour

// SubmissionService orchestrates the contact-submission lifecycle:
// validation gate, durable create, best-effort notification dispatch and
// the read-triggered aging rule. Admin reads/edits/deletes go through the
// same service but bypass validation and notifications.
type SubmissionService struct {
	store       SubmissionStore
	notifier    *Notifier
	captcha     *CaptchaVerifier
	phonePrefix func() string
	emailDomain func() string
	now         func() time.Time
}

func NewSubmissionService(store SubmissionStore, notifier *Notifier, captcha *CaptchaVerifier,
	phonePrefix, emailDomain func() string) *SubmissionService {
	return &SubmissionService{
		store:       store,
		notifier:    notifier,
		captcha:     captcha,
		phonePrefix: phonePrefix,
		emailDomain: emailDomain,
		now:         time.Now,
	}
}

// validate applies the gate rules and returns the cleaned field set.
func (s *SubmissionService) validate(in ContactInput) (models.SubmissionFields, error) {
	name := utils.SanitizeInput(in.Name)
	email := utils.SanitizeInput(in.Email)
	subject := utils.SanitizeInput(in.Subject)
	message := utils.SanitizeInput(in.Message)

	if name == "" || email == "" || subject == "" || message == "" {
		return models.SubmissionFields{}, &ValidationError{Reason: "Missing required fields"}
	}

	phone, ok := utils.NormalizePhone(in.Phone, s.phonePrefix())
	if !ok {
		return models.SubmissionFields{}, &ValidationError{Reason: "Invalid phone number. Must be exactly 10 digits."}
	}

	domain := s.emailDomain()
	if !utils.ValidContactEmail(email, domain) {
		return models.SubmissionFields{}, &ValidationError{
			Reason: fmt.Sprintf("Invalid email. Only %s addresses are supported.", domain),
		}
	}

	return models.SubmissionFields{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Company: utils.SanitizeInput(in.Company),
		Subject: subject,
		Message: message,
	}, nil
}

// Submit runs the end-to-end create flow. On a validation rejection no
// record is written and no notification fires. Notification outcomes are
// returned for observability but never fail a completed create.
func (s *SubmissionService) Submit(in ContactInput) (models.Submission, []SendResult, error) {
	fields, err := s.validate(in)
	if err != nil {
		return models.Submission{}, nil, err
	}

	if s.captcha != nil {
		if err := s.captcha.Verify(in.CaptchaValue); err != nil {
			return models.Submission{}, nil, err
		}
	}

	submission, err := s.store.Create(fields)
	if err != nil {
		return models.Submission{}, nil, fmt.Errorf("create submission: %w", err)
	}
	log.Printf("[CONTACT] submission %s created for %s", submission.ID, submission.Email)

	var results []SendResult
	if s.notifier != nil {
		results = s.notifier.Dispatch(submission)
	}
	return submission, results, nil
}

// List returns all submissions newest first and applies the aging rule:
// any record still "new" older than 24 hours moves to "pending", persisted
// immediately. The transition happens only here, on a full listing, never
// on single reads and never from a timer.
func (s *SubmissionService) List() ([]models.Submission, error) {
	submissions, err := s.store.List()
	if err != nil {
		return nil, err
	}

	cutoff := s.now().Add(-pendingAfter)
	pending := models.StatusPending
	for i := range submissions {
		if submissions[i].Status == models.StatusNew && submissions[i].CreatedAt.Before(cutoff) {
			updated, err := s.store.Update(submissions[i].ID, models.SubmissionUpdate{Status: &pending})
			if err != nil {
				log.Printf("[CONTACT] aging update for %s failed: %v", submissions[i].ID, err)
				continue
			}
			submissions[i] = updated
		}
	}
	return submissions, nil
}

// Update applies an admin partial edit. Identifier and createdAt are not
// mutable; a status, when present, must be one of the known values.
func (s *SubmissionService) Update(id string, update models.SubmissionUpdate) (models.Submission, error) {
	if update.Status != nil && !models.ValidStatus(*update.Status) {
		return models.Submission{}, &ValidationError{Reason: fmt.Sprintf("Invalid status %q", *update.Status)}
	}
	return s.store.Update(id, update)
}

// Delete removes one submission; unknown ids are a no-op.
func (s *SubmissionService) Delete(id string) error {
	return s.store.Delete(id)
}

// DeleteMany removes every existing id in the list; missing ids are
// ignored without affecting the rest.
func (s *SubmissionService) DeleteMany(ids []string) error {
	return s.store.DeleteMany(ids)
}
