package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"techverse/config"
	"techverse/models"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Techverse <%s>\r\n", from)
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

// HTML wrapper shared by all outgoing mail
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #0F172A; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #0891B2; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #0F172A; line-height: 1.6; }
			.footer { padding: 20px; text-align: center; color: #64748B; font-size: 12px; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">%s</div>
			<div class="footer">Techverse &middot; Unlock Your Potential</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendInquiryNotification mails the admin about a new inquiry
func SendInquiryNotification(adminEmail string, inq *models.Inquiry) {
	if inq == nil {
		return
	}

	body := fmt.Sprintf("<p>A new inquiry just arrived.</p><p><b>Name:</b> %s<br><b>Email:</b> %s", inq.Name, inq.Email)
	if inq.Phone != nil {
		body += fmt.Sprintf("<br><b>Phone:</b> %s", *inq.Phone)
	}
	if inq.CourseInterest != nil {
		body += fmt.Sprintf("<br><b>Course Interest:</b> %s", *inq.CourseInterest)
	}
	if inq.Message != nil {
		body += fmt.Sprintf("</p><p><b>Message:</b><br>%s", *inq.Message)
	}
	body += "</p>"

	html := getEmailTemplate("New Inquiry Received", body)
	SendEmail([]string{adminEmail}, "New inquiry from "+inq.Name, html)
}

// SendPaymentConfirmation mails the student after a payment is confirmed
func SendPaymentConfirmation(email, name, courseName, reference string) {
	body := fmt.Sprintf("<p>Hi %s,</p><p>Your payment for <b>%s</b> has been confirmed. Welcome aboard!</p>", name, courseName)
	if reference != "" {
		body += fmt.Sprintf("<p>Payment reference: <b>%s</b></p>", reference)
	}
	body += "<p>You will receive your onboarding details shortly.</p>"

	html := getEmailTemplate("Payment Confirmed", body)
	SendEmail([]string{email}, "Payment confirmed for "+courseName, html)
}

// SendPaymentReminder nudges a student whose enrollment is still pending
func SendPaymentReminder(email, name, courseName, paymentLink string) {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your enrollment in <b>%s</b> is reserved but the payment is still pending.</p><p><a href=\"%s\">Complete your payment</a> to secure your seat.</p>",
		name, courseName, paymentLink,
	)

	html := getEmailTemplate("Complete Your Enrollment", body)
	SendEmail([]string{email}, "Your seat in "+courseName+" is waiting", html)
}
