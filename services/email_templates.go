package services

import (
	"fmt"
	"html"

	"technomech-api/models"
)

// userAckEmailHTML builds the acknowledgment mail sent to the submitter.
// referenceID is cosmetic only, never used for lookup.
func userAckEmailHTML(name, referenceID string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin: 0; padding: 0; background-color: #f4f4f4; font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; color: #333;">
    <div style="max-width: 600px; margin: 40px auto; background-color: #ffffff;">
        <div style="background-color: #000000; padding: 40px 20px; text-align: center;">
            <span style="color: #ffffff; font-size: 20px; letter-spacing: 1px; text-transform: uppercase;">%s</span>
        </div>
        <div style="padding: 40px;">
            <div style="font-size: 24px; font-weight: bold; margin-bottom: 20px; color: #111;">%s, thank you for contacting us.</div>
            <p style="color: #555; margin-bottom: 30px;">We have received your message and our team is currently reviewing your inquiry. You will receive an update from us shortly regarding your request.</p>
            <div style="background-color: #f9f9f9; padding: 20px; border-radius: 4px; margin-bottom: 30px;">
                <div style="margin-bottom: 15px;">
                    <span style="font-size: 12px; text-transform: uppercase; color: #888; font-weight: bold; display: block; margin-bottom: 5px;">Inquiry ID</span>
                    <span style="font-size: 16px; color: #333; font-weight: 500;">%s</span>
                </div>
                <div>
                    <span style="font-size: 12px; text-transform: uppercase; color: #888; font-weight: bold; display: block; margin-bottom: 5px;">Status</span>
                    <span style="font-size: 16px; color: #2e7d32; font-weight: 500;">Received</span>
                </div>
            </div>
            <a href="%s" style="display: block; background-color: #000000; color: #ffffff; text-align: center; padding: 15px 0; text-decoration: none; font-weight: bold; text-transform: uppercase; letter-spacing: 1px; font-size: 14px; border-radius: 4px;">Visit Our Website</a>
        </div>
        <div style="background-color: #1a1a1a; padding: 40px 20px; text-align: center; color: #666; font-size: 12px;">
            <p style="margin: 5px 0;">%s</p>
            <p style="margin: 5px 0;">%s</p>
            <p style="margin-top: 20px; font-size: 10px; color: #444;">You received this email because you contacted us via our website.</p>
        </div>
    </div>
</body>
</html>`,
		html.EscapeString(models.CompanyName),
		html.EscapeString(name),
		html.EscapeString(referenceID),
		models.CompanyWebsite,
		html.EscapeString(models.CompanyName),
		html.EscapeString(models.CompanyAddress),
	)
}

// adminAlertEmailHTML builds the full-record lead alert sent to the
// operator address.
func adminAlertEmailHTML(s models.Submission) string {
	row := func(label, value string) string {
		return fmt.Sprintf(`<div style="margin-bottom: 20px;">
                <span style="font-weight: bold; color: #000; display: block; margin-bottom: 5px;">%s</span>
                <div style="color: #555; background: #fafafa; padding: 10px; border-radius: 4px; border: 1px solid #eee;">%s</div>
            </div>`, html.EscapeString(label), html.EscapeString(value))
	}

	company := s.Company
	if company == "" {
		company = "-"
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="margin: 0; padding: 0; background-color: #f4f4f4; font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; color: #333;">
    <div style="max-width: 600px; margin: 40px auto; background-color: #ffffff;">
        <div style="background-color: #000000; padding: 30px 20px; text-align: center;">
            <h1 style="color: #ffffff; font-size: 20px; margin: 0; text-transform: uppercase; letter-spacing: 1px;">New Lead Notification</h1>
        </div>
        <div style="padding: 40px;">
            <div style="font-size: 14px; text-transform: uppercase; color: #888; font-weight: bold; border-bottom: 2px solid #eee; padding-bottom: 10px; margin-bottom: 20px;">Submission Details</div>
            %s%s%s%s
            <div style="font-size: 14px; text-transform: uppercase; color: #888; font-weight: bold; border-bottom: 2px solid #eee; padding-bottom: 10px; margin: 30px 0 20px;">Contact Information</div>
            %s%s%s
        </div>
        <div style="background-color: #f9f9f9; padding: 20px; text-align: center; font-size: 12px; color: #888; border-top: 1px solid #eee;">
            Received %s
        </div>
    </div>
</body>
</html>`,
		row("Name", s.Name),
		row("Subject", s.Subject),
		row("Message", s.Message),
		row("Company", company),
		row("Email", s.Email),
		row("Phone", s.Phone),
		row("Submission ID", s.ID),
		s.CreatedAt.Format("02 Jan 2006 15:04"),
	)
}
