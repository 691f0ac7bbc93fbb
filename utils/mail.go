package utils

import (
	"fmt"
	"net/smtp"
	"os"
)

// SendContactMessage forwards a contact-form submission to the shop
// mailbox configured in the environment.
func SendContactMessage(name, email, message string) error {
	notifyEmail := os.Getenv("ADMIN_NOTIFY_EMAIL")
	if notifyEmail == "" {
		return fmt.Errorf("ADMIN_NOTIFY_EMAIL is not set")
	}

	body := fmt.Sprintf(
		"From: %s\r\nSubject: New contact message\r\n\r\nNew message from %s (%s):\r\n\r\n%s\r\n",
		os.Getenv("FROM_EMAIL"),
		name,
		email,
		message,
	)

	auth := smtp.PlainAuth(
		"",
		os.Getenv("FROM_EMAIL"),
		os.Getenv("FROM_EMAIL_PASSWORD"),
		os.Getenv("FROM_EMAIL_SMTP"),
	)

	if err := smtp.SendMail(os.Getenv("SMTP_ADDRESS"), auth, os.Getenv("FROM_EMAIL"), []string{notifyEmail}, []byte(body)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
