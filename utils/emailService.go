package utils

import (
	"coursehub/config"
	"fmt"
	"net/smtp"
	"strings"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password
	if from == "" {
		return fmt.Errorf("email sender is not configured")
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: CourseHub <%s>\r\n", from)
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

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A237E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A237E; line-height: 1.6; }
			.content h2 { color: #1A237E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #4CAF50; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>CourseHub</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				This is an automated message from CourseHub. Please do not reply.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendEnrollmentEmail notifies a student after a successful course purchase
func SendEnrollmentEmail(email, studentName, courseTitle, transactionID string, amount float64) error {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your payment was received and you are now enrolled in:</p>
		<div class="info-box"><strong>%s</strong></div>
		<p>Transaction ID: <strong>%s</strong><br/>Amount paid: <strong>%.2f BDT</strong></p>
		<p>You can start learning right away from your dashboard.</p>
	`, studentName, courseTitle, transactionID, amount)

	return SendEmail([]string{email}, "Enrollment Confirmation - CourseHub", getEmailTemplate("Enrollment Successful", body))
}

// SendCourseStatusEmail notifies the owning faculty after an admin review decision
func SendCourseStatusEmail(email, facultyName, courseTitle, status, reason string) error {
	var body string
	if status == "APPROVED" {
		body = fmt.Sprintf(`
			<p>Dear %s,</p>
			<p>Good news! Your course has been approved and is now live on the catalog:</p>
			<div class="info-box"><strong>%s</strong></div>
		`, facultyName, courseTitle)
		return SendEmail([]string{email}, "Course Approved - CourseHub", getEmailTemplate("Course Approved", body))
	}

	body = fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your course was not approved in its current form:</p>
		<div class="info-box"><strong>%s</strong></div>
		<p>Reviewer note: %s</p>
		<p>You can revise the course and it will be reviewed again.</p>
	`, facultyName, courseTitle, reason)
	return SendEmail([]string{email}, "Course Review Update - CourseHub", getEmailTemplate("Course Rejected", body))
}

// SendFacultyStatusEmail notifies a faculty applicant of the admin decision
func SendFacultyStatusEmail(email, facultyName, status string) error {
	var body string
	if status == "APPROVED" {
		body = fmt.Sprintf(`
			<p>Dear %s,</p>
			<p>Your faculty account has been approved. You can now log in and start creating courses.</p>
		`, facultyName)
		return SendEmail([]string{email}, "Faculty Account Approved - CourseHub", getEmailTemplate("Welcome Aboard", body))
	}

	body = fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We are sorry, your faculty application was not approved at this time.</p>
	`, facultyName)
	return SendEmail([]string{email}, "Faculty Application Update - CourseHub", getEmailTemplate("Application Update", body))
}
