package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"lumina/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Lumina Academy <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// SendWelcomeEmail sends the registration confirmation with the assigned
// institutional id. Failures are the caller's to log, sign-up never blocks on it.
func SendWelcomeEmail(name, email, studentID string) error {
	body := getEmailTemplate("Welcome to Lumina", fmt.Sprintf(
		`<p>Hi %s,</p>
		<p>Your Lumina account is ready. Your institutional ID is <b>%s</b> —
		students use it to sign in to the portal.</p>
		<p>See you in class!</p>`, name, studentID))

	return SendEmail([]string{email}, "Welcome to Lumina Academy", body)
}

// getEmailTemplate wraps body content in the shared HTML frame
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<html>
	  <body style="font-family: Arial, sans-serif; background:#f8fafc; padding:24px;">
	    <div style="max-width:560px;margin:auto;background:#ffffff;border-radius:12px;padding:32px;border:1px solid #e2e8f0;">
	      <h2 style="color:#4f46e5;margin-top:0;">%s</h2>
	      %s
	      <hr style="border:none;border-top:1px solid #e2e8f0;margin:24px 0;" />
	      <p style="font-size:12px;color:#94a3b8;">Lumina Education Portal</p>
	    </div>
	  </body>
	</html>`, title, bodyContent)
}
