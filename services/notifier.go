package services

import (
	"fmt"
	"log"
	"time"

	"technomech-api/models"
	"technomech-api/utils"
)

// Send kinds reported in SendResult.
const (
	SendUserAck    = "user_ack"
	SendAdminAlert = "admin_alert"
)

// SendResult records the outcome of one notification attempt.
type SendResult struct {
	Kind      string
	Recipient string
	Err       error
}

// SendFunc delivers one HTML mail. config.SendMail in production.
type SendFunc func(to []string, subject, html string) error

// Notifier sends the submitter acknowledgment and the operator lead alert
// after a successful create. Both sends run concurrently and both
// outcomes are collected before returning; a failed send is logged, never
// surfaced to the caller, and never rolls back the create.
type Notifier struct {
	send       SendFunc
	adminEmail func() string
	configured func() bool
	timeout    time.Duration
}

const sendTimeout = 15 * time.Second

func NewNotifier(send SendFunc, configured func() bool, adminEmail func() string) *Notifier {
	return &Notifier{
		send:       send,
		adminEmail: adminEmail,
		configured: configured,
		timeout:    sendTimeout,
	}
}

// Dispatch fires both notifications for a freshly created submission and
// joins the results. Unconfigured mail skips everything; a missing
// operator address skips only that branch.
func (n *Notifier) Dispatch(submission models.Submission) []SendResult {
	if !n.configured() {
		log.Printf("[MAIL] smtp not configured, skipping notifications for submission %s", submission.ID)
		return nil
	}

	type job struct {
		kind      string
		recipient string
		subject   string
		body      string
	}

	jobs := []job{{
		kind:      SendUserAck,
		recipient: submission.Email,
		subject:   fmt.Sprintf("We received your inquiry, %s", submission.Name),
		body:      userAckEmailHTML(submission.Name, utils.ReferenceID()),
	}}
	if admin := n.adminEmail(); admin != "" {
		jobs = append(jobs, job{
			kind:      SendAdminAlert,
			recipient: admin,
			subject:   fmt.Sprintf("New lead: %s - %s", submission.Name, submission.Subject),
			body:      adminAlertEmailHTML(submission),
		})
	} else {
		log.Printf("[MAIL] no operator address configured, skipping lead alert for submission %s", submission.ID)
	}

	results := make(chan SendResult, len(jobs))
	for _, j := range jobs {
		go func(j job) {
			done := make(chan error, 1)
			go func() {
				done <- n.send([]string{j.recipient}, j.subject, j.body)
			}()

			var err error
			select {
			case err = <-done:
			case <-time.After(n.timeout):
				// Bound worst-case request latency on a hung SMTP conversation.
				err = fmt.Errorf("send timed out after %s", n.timeout)
			}
			results <- SendResult{Kind: j.kind, Recipient: j.recipient, Err: err}
		}(j)
	}

	collected := make([]SendResult, 0, len(jobs))
	for range jobs {
		r := <-results
		if r.Err != nil {
			log.Printf("[MAIL] %s to %s failed: %v", r.Kind, r.Recipient, r.Err)
		} else {
			log.Printf("[MAIL] %s sent to %s", r.Kind, r.Recipient)
		}
		collected = append(collected, r)
	}
	return collected
}
