package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// SendPasswordResetOTP sends a one-time password reset code
func (s *EmailService) SendPasswordResetOTP(toEmail, code string) error {
	htmlContent, err := s.renderPasswordResetOTP(code)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := "Password Reset Code - Milk More"
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendEmail(toEmail, message)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// buildHTMLEmail builds an HTML email message
func (s *EmailService) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
	)

	return []byte(headers + htmlBody)
}

// renderPasswordResetOTP renders the password reset OTP email template
func (s *EmailService) renderPasswordResetOTP(code string) (string, error) {
	tmpl, err := template.New("password_reset_otp").Parse(passwordResetOTPTemplate)
	if err != nil {
		return "", err
	}

	data := struct {
		Code    string
		AppName string
	}{
		Code:    code,
		AppName: "Milk More",
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// passwordResetOTPTemplate is the HTML template for password reset OTP emails
const passwordResetOTPTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Password Reset Code</title>
</head>
<body style="margin:0;padding:0;background-color:#f4f4f4;font-family:Arial,Helvetica,sans-serif;">
    <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background-color:#f4f4f4;padding:24px 0;">
        <tr>
            <td align="center">
                <table role="presentation" width="480" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;padding:32px;">
                    <tr>
                        <td style="color:#2E8B57;font-size:22px;font-weight:bold;padding-bottom:16px;">
                            {{.AppName}}
                        </td>
                    </tr>
                    <tr>
                        <td style="color:#333333;font-size:14px;line-height:22px;padding-bottom:24px;">
                            We received a request to reset your password. Use the code
                            below to continue. It expires in 10 minutes.
                        </td>
                    </tr>
                    <tr>
                        <td align="center" style="padding-bottom:24px;">
                            <span style="display:inline-block;background-color:#EAF7EC;color:#2E8B57;font-size:28px;font-weight:bold;letter-spacing:6px;padding:12px 24px;border-radius:6px;">{{.Code}}</span>
                        </td>
                    </tr>
                    <tr>
                        <td style="color:#888888;font-size:12px;line-height:18px;">
                            If you did not request a password reset, you can safely ignore
                            this email.
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`
