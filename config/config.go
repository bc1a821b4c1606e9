package config

import (
	"os"
	"strings"
)

// Env lookups happen at call time, after godotenv has loaded .env in main.
// Every value here is optional: a missing value degrades the related
// feature (mail skipped, chat disabled, captcha skipped, admin login
// rejected) instead of failing the request or the boot.

// ContactPhonePrefix is the country-code prefix stored in front of the
// 10-digit phone number.
func ContactPhonePrefix() string {
	if p := os.Getenv("CONTACT_PHONE_PREFIX"); p != "" {
		return p
	}
	return "+91"
}

// ContactEmailDomain is the required email suffix for contact submissions.
func ContactEmailDomain() string {
	if d := os.Getenv("CONTACT_EMAIL_DOMAIN"); d != "" {
		if !strings.HasPrefix(d, "@") {
			d = "@" + d
		}
		return strings.ToLower(d)
	}
	return "@gmail.com"
}

// AdminEmail is the operator address for lead alerts. Empty skips the
// alert branch.
func AdminEmail() string {
	return os.Getenv("ADMIN_EMAIL")
}

// AdminUsername returns the configured admin login name.
func AdminUsername() string {
	return os.Getenv("ADMIN_USERNAME")
}

// AdminPassword returns the plain admin password, used only when no
// bcrypt hash is configured.
func AdminPassword() string {
	return os.Getenv("ADMIN_PASSWORD")
}

// AdminPasswordHash returns the bcrypt hash of the admin password.
// Preferred over ADMIN_PASSWORD when both are set.
func AdminPasswordHash() string {
	return os.Getenv("ADMIN_PASSWORD_HASH")
}

// JWTSecret signs the admin session cookie.
func JWTSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// RecaptchaSecret enables bot verification when non-empty.
func RecaptchaSecret() string {
	return os.Getenv("RECAPTCHA_SECRET_KEY")
}

// GeminiAPIKey enables the chat endpoint when non-empty.
func GeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

// SubmissionsFile is the JSON file used by the file-backed store when no
// database is configured.
func SubmissionsFile() string {
	if p := os.Getenv("SUBMISSIONS_FILE"); p != "" {
		return p
	}
	return "data/submissions.json"
}

// DatabaseConfigured reports whether a MySQL connection is configured.
func DatabaseConfigured() bool {
	return os.Getenv("DB_DATABASE") != ""
}
