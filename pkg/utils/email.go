package utils

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

const companyName = "PlayPals"

// Common header template for all emails
const emailHeader = `
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<div style="text-align: center; margin-bottom: 30px; background-color: #f9f9f9; padding: 20px;">
			<h2 style="color: #2e7d32; margin: 0;">PlayPals</h2>
		</div>
`

// Common footer template for all emails
const emailFooter = `
		<div style="text-align: center; margin-top: 20px; font-size: 12px; color: #666; border-top: 1px solid #eee; padding-top: 20px;">
			<p>This is an automated message, please do not reply to this email.</p>
			<p>© 2026 PlayPals. All rights reserved.</p>
		</div>
	</div>
</body>
</html>
`

func sendEmail(to []string, subject, body string) error {
	// Read per send; package init runs before godotenv loads .env
	emailFrom := os.Getenv("EMAIL_FROM")
	emailPassword := os.Getenv("EMAIL_PASSWORD")
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")

	if emailFrom == "" || emailPassword == "" || smtpHost == "" || smtpPort == "" {
		return fmt.Errorf("email configuration not set")
	}

	// Headers
	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("%s <%s>", companyName, emailFrom)
	headers["To"] = strings.Join(to, ",")
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	// Build message
	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + body

	auth := smtp.PlainAuth("", emailFrom, emailPassword, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, emailFrom, to, []byte(message)); err != nil {
		log.WithError(err).Error("Failed to send email")
		return err
	}

	log.WithField("recipients", to).Info("Email sent")
	return nil
}

// SendPasswordResetOTP emails the reset code to the account's address.
func SendPasswordResetOTP(email, otp string) error {
	subject := "Password Reset Code - PlayPals"
	body := fmt.Sprintf(emailHeader+`
				<div style="background-color: #f9f9f9; padding: 20px; border-radius: 5px;">
					<h1 style="color: #2c3e50; text-align: center;">Password Reset</h1>
					<p>Hello,</p>
					<p>We received a request to reset your PlayPals password. Use the code below to continue:</p>
					<div style="text-align: center; margin: 30px 0;">
						<span style="font-size: 32px; letter-spacing: 8px; font-weight: bold; color: #2e7d32;">%s</span>
					</div>
					<p>The code expires in 15 minutes. If you did not request a reset, you can safely ignore this email.</p>
					<p>Best regards,<br>The PlayPals Team</p>
				</div>`+emailFooter,
		otp)

	return sendEmail([]string{email}, subject, body)
}

// SendBookingConfirmedEmail notifies a user that payment went through and
// their turf booking is confirmed.
func SendBookingConfirmedEmail(email, turfName, day string) error {
	baseURL := os.Getenv("BASE_URL")
	subject := "Booking Confirmed - PlayPals"
	body := fmt.Sprintf(emailHeader+`
				<div style="background-color: #f9f9f9; padding: 20px; border-radius: 5px;">
					<h1 style="color: #2c3e50; text-align: center;">Booking Confirmed</h1>
					<p>Hello,</p>
					<p>Your booking at <strong>%s</strong> on <strong>%s</strong> is confirmed. See you on the turf!</p>
					<div style="text-align: center; margin: 30px 0;">
						<a href="%s/bookings" style="background-color: #2e7d32; color: white; padding: 12px 25px; text-decoration: none; border-radius: 5px;">View Your Bookings</a>
					</div>
					<p>Best regards,<br>The PlayPals Team</p>
				</div>`+emailFooter,
		turfName, day, baseURL)

	return sendEmail([]string{email}, subject, body)
}
