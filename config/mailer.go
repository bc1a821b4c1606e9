package config

import (
	"crypto/tls"
	"fmt"
	"os"
	"strconv"

	mail "github.com/go-mail/mail/v2"
)

func smtpHost() string { return os.Getenv("SMTP_HOST") }

func smtpPort() int {
	p, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if p == 0 {
		p = 587
	}
	return p
}

// SMTPFrom is the sender address, e.g. "Techno Mech <no-reply@technomechengineers.in>".
func SMTPFrom() string { return os.Getenv("SMTP_FROM") }

// MailConfigured reports whether outbound mail can be sent. When false,
// notification sends are skipped (logged), never treated as request errors.
func MailConfigured() bool {
	return smtpHost() != "" && SMTPFrom() != ""
}

// SendMail delivers an HTML mail over SMTP with mandatory STARTTLS.
func SendMail(to []string, subject, html string) error {
	if len(to) == 0 {
		return nil
	}
	if !MailConfigured() {
		return fmt.Errorf("smtp not configured (SMTP_HOST/SMTP_FROM)")
	}

	m := mail.NewMessage()
	m.SetHeader("From", SMTPFrom())
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	d := mail.NewDialer(smtpHost(), smtpPort(), os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASS"))
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.TLSConfig = &tls.Config{
		// ServerName must match the SMTP hostname, e.g. "smtp.gmail.com".
		ServerName:         smtpHost(),
		InsecureSkipVerify: os.Getenv("SMTP_SKIP_TLS_VERIFY") == "1",
	}

	return d.DialAndSend(m)
}
