package email

import (
	"fmt"
	"time"
)

// AppointmentEmailData carries what the booking emails need.
type AppointmentEmailData struct {
	PatientName string
	Email       string
	StartTime   time.Time
	DurationMin int
	AppName     string
}

// BuildAppointmentConfirmedEmail creates the confirmation sent right after a
// patient books a slot.
func BuildAppointmentConfirmedEmail(data AppointmentEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "NutriVida"
	}

	name := data.PatientName
	if name == "" {
		name = "there"
	}

	when := data.StartTime.Format("Monday, 02 Jan 2006 at 15:04")
	subject := fmt.Sprintf("Your %s appointment is confirmed", appName)

	textBody := fmt.Sprintf(`Hi %s,

Your appointment is confirmed for %s (%d minutes).

If you need to reschedule, reply to this email or use the app.

See you soon,
The %s Team`,
		name, when, data.DurationMin, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #16a34a;">Hi %s,</h2>
    <p>Your appointment is confirmed for <strong>%s</strong> (%d minutes).</p>
    <p>If you need to reschedule, reply to this email or use the app.</p>
    <p>See you soon,<br>The %s Team</p>
</body>
</html>`, name, when, data.DurationMin, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildAppointmentCancelledEmail creates the notice sent when the
// nutritionist cancels a booked appointment.
func BuildAppointmentCancelledEmail(data AppointmentEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "NutriVida"
	}

	name := data.PatientName
	if name == "" {
		name = "there"
	}

	when := data.StartTime.Format("Monday, 02 Jan 2006 at 15:04")
	subject := fmt.Sprintf("Your %s appointment was cancelled", appName)

	textBody := fmt.Sprintf(`Hi %s,

Your appointment on %s was cancelled.

Please open the app to pick a new time that works for you.

The %s Team`,
		name, when, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
	}
}

// WelcomeEmailData carries what the account-creation email needs.
type WelcomeEmailData struct {
	PatientName string
	Email       string
	AppName     string
	BaseURL     string
}

// BuildWelcomeEmail creates the email sent right after a patient signs up.
func BuildWelcomeEmail(data WelcomeEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "NutriVida"
	}

	name := data.PatientName
	if name == "" {
		name = "there"
	}

	subject := fmt.Sprintf("Welcome to %s", appName)

	textBody := fmt.Sprintf(`Hi %s,

Welcome to %s. Your account is ready.

Next steps: fill in your intake questionnaire and book your first
appointment from the app.

%s

The %s Team`,
		name, appName, data.BaseURL, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
	}
}
