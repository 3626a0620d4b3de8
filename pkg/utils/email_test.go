package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendEmailRejectsMissingConfig(t *testing.T) {
	t.Setenv("EMAIL_FROM", "")
	t.Setenv("EMAIL_PASSWORD", "")
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_PORT", "")

	err := sendEmail([]string{"player@example.com"}, "subject", "body")
	assert.EqualError(t, err, "email configuration not set")
}

func TestSendEmailReadsConfigAtSendTime(t *testing.T) {
	// Set after process start, the way godotenv populates the env in main.
	// An unreachable loopback port makes the send fail at dial, proving the
	// config was picked up rather than frozen at package init.
	t.Setenv("EMAIL_FROM", "noreply@example.com")
	t.Setenv("EMAIL_PASSWORD", "secret")
	t.Setenv("SMTP_HOST", "127.0.0.1")
	t.Setenv("SMTP_PORT", "1")

	err := sendEmail([]string{"player@example.com"}, "subject", "body")
	assert.Error(t, err)
	assert.NotContains(t, err.Error(), "configuration not set")
}
