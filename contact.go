package main

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
)

// ContactForm holds a visitor's contact submission. Validation happens
// through gin's binding tags when the form is parsed.
type ContactForm struct {
	Name    string `form:"fullName" binding:"required"`
	Email   string `form:"email" binding:"required,email"`
	Message string `form:"message" binding:"required,min=10"`
}

// Mailer delivers a validated contact submission.
type Mailer interface {
	Send(form ContactForm) error
}

// newMailerFromEnv returns the SMTP mailer when credentials are
// configured, and otherwise a mailer that only logs the submission so
// the contact form still works in development.
func newMailerFromEnv() Mailer {
	if os.Getenv("SMTP_USER") == "" || os.Getenv("SMTP_PASS") == "" {
		log.Println("SMTP credentials not configured, contact submissions will be logged only")
		return logMailer{}
	}
	return smtpMailer{
		host: getenvDefault("SMTP_HOST", "smtp.gmail.com"),
		port: getenvDefault("SMTP_PORT", "587"),
		user: os.Getenv("SMTP_USER"),
		pass: os.Getenv("SMTP_PASS"),
		to:   getenvDefault("TO_EMAIL", "karim.helal.dev@gmail.com"),
	}
}

// smtpMailer sends contact submissions by email.
type smtpMailer struct {
	host string
	port string
	user string
	pass string
	to   string
}

func (m smtpMailer) Send(form ContactForm) error {
	subject := fmt.Sprintf("Portfolio Contact: %s", form.Name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, form.Name, form.Email, form.Message)

	// Compose email
	msg := []byte("To: " + m.to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + m.user + "\r\n" +
		"Reply-To: " + form.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	if err := smtp.SendMail(m.host+":"+m.port, auth, m.user, []string{m.to}, msg); err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}

	log.Printf("Email sent successfully from %s (%s)", form.Name, form.Email)
	return nil
}

// logMailer is the development fallback: it records the submission in
// the server log and reports success.
type logMailer struct{}

func (logMailer) Send(form ContactForm) error {
	log.Printf("Contact submission (not sent, SMTP unconfigured): name=%q email=%q message=%q",
		form.Name, form.Email, form.Message)
	return nil
}
