package lib

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
)

// SendWelcomeEmail sends a greeting to a freshly signed-up user. Delivery is
// best effort: failures are logged and never surfaced to the request. A blank
// SMTP host disables sending entirely.
func SendWelcomeEmail(toEmail, firstName string) {
	cfg := GetConfig()
	if cfg.Email.SMTPHost == "" {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.Email.FromEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Welcome to DevMatch!")
	m.SetBody("text/plain", fmt.Sprintf("Hi %s, your account has been created. Start exploring your feed!", firstName))

	d := gomail.NewDialer(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPUsername, cfg.Email.SMTPPassword)

	go func() {
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Error sending welcome email to %s: %v", toEmail, err)
		}
	}()
}
