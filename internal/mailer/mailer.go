// Package mailer sends the platform's notification emails over SMTP. Delivery
// is best-effort: every function logs and returns on failure, and when SMTP
// is not configured it silently skips, so callers can always ignore errors.
package mailer

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/drvince/womb-backend/internal/config"
)

// ErrNotConfigured is returned when SMTP settings are absent. It is not a
// failure; the platform runs fine without outbound email.
var ErrNotConfigured = errors.New("smtp not configured")

// Mailer dispatches HTML email with a plain-text alternative.
type Mailer struct {
	cfg config.Config
}

func New(cfg config.Config) *Mailer { return &Mailer{cfg: cfg} }

func (m *Mailer) send(to []string, subject, htmlBody, textBody string) error {
	if !m.cfg.EmailEnabled() {
		log.Printf("mailer: smtp not configured, skipping %q", subject)
		return ErrNotConfigured
	}
	if len(to) == 0 {
		log.Printf("mailer: no recipients for %q, skipping", subject)
		return ErrNotConfigured
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.SMTPUser)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", textBody)
	msg.AddAlternative("text/html", htmlBody)

	d := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUser, m.cfg.SMTPPassword)
	if err := d.DialAndSend(msg); err != nil {
		log.Printf("mailer: send %q to %s failed: %v", subject, strings.Join(to, ","), err)
		return err
	}
	log.Printf("mailer: sent %q to %s", subject, strings.Join(to, ","))
	return nil
}

// SendNewRegistration notifies the configured admin recipients that a signup
// is waiting for activation.
func (m *Mailer) SendNewRegistration(userEmail, userName string) error {
	subject := "New User Registration - Dr. Vince Platform"
	html := fmt.Sprintf(`<html><body style="font-family: Arial, sans-serif; color: #333;">
<h2 style="color: #4A90E2;">New User Registration</h2>
<p><strong>Full Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Status:</strong> Pending Activation</p>
<p>Please log in to the admin dashboard to review and activate this user account.</p>
<p style="color: #666; font-size: 12px;">This is an automated notification from the Dr. Vince Platform.</p>
</body></html>`, userName, userEmail)
	text := fmt.Sprintf(`New User Registration - Dr. Vince Platform

A new user has registered on the platform:

Full Name: %s
Email: %s
Status: Pending Activation

Please log in to the admin dashboard to review and activate this user account.`, userName, userEmail)
	return m.send(m.cfg.AdminEmails, subject, html, text)
}

// SendUserApproved tells a user their account was activated by an admin.
func (m *Mailer) SendUserApproved(userEmail, userName string) error {
	subject := "Account Approved - Welcome to Dr. Vince Platform"
	html := fmt.Sprintf(`<html><body style="font-family: Arial, sans-serif; color: #333;">
<h2 style="color: #4CAF50;">Account Approved!</h2>
<p>Hi %s,</p>
<p>Great news! Your account has been <strong>approved</strong> by our administrator.</p>
<p>You can now log in and access all features of the Dr. Vince Platform.</p>
<p>Email: %s<br>Status: Active</p>
<p style="color: #666; font-size: 12px;">This is an automated notification from the Dr. Vince Platform.</p>
</body></html>`, userName, userEmail)
	text := fmt.Sprintf(`Account Approved - Welcome to Dr. Vince Platform

Hi %s,

Great news! Your account has been approved by our administrator.
You can now log in and access all features of the Dr. Vince Platform.

Email: %s
Status: Active`, userName, userEmail)
	return m.send([]string{userEmail}, subject, html, text)
}

// SendUserDeactivated tells a user their account was rejected or deactivated.
func (m *Mailer) SendUserDeactivated(userEmail, userName string) error {
	subject := "Account Status Update - Dr. Vince Platform"
	html := fmt.Sprintf(`<html><body style="font-family: Arial, sans-serif; color: #333;">
<h2 style="color: #f44336;">Account Status Update</h2>
<p>Hi %s,</p>
<p>Your account is no longer active on the Dr. Vince Platform.</p>
<p>If you believe this is a mistake, please contact support.</p>
<p style="color: #666; font-size: 12px;">This is an automated notification from the Dr. Vince Platform.</p>
</body></html>`, userName)
	text := fmt.Sprintf(`Account Status Update - Dr. Vince Platform

Hi %s,

Your account is no longer active on the Dr. Vince Platform.
If you believe this is a mistake, please contact support.`, userName)
	return m.send([]string{userEmail}, subject, html, text)
}
