package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/nutrivida/nutrivida_backend/internal/repo"
	"github.com/nutrivida/nutrivida_backend/internal/repo/enttest"
	"github.com/nutrivida/nutrivida_backend/internal/repo/hook"
	entuser "github.com/nutrivida/nutrivida_backend/internal/repo/user"
)

func newTestService(t *testing.T) (*repo.Client, Service) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client, New(client, nil, time.UTC)
}

func seedPatient(t *testing.T, client *repo.Client, first, last, email string) *repo.User {
	t.Helper()
	u, err := client.User.Create().
		SetFirstName(first).
		SetLastName(last).
		SetEmail(email).
		SetPasswordHash("irrelevant").
		SetOnboardingStep(entuser.OnboardingStepScheduling).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	return u
}

func seedAvailability(t *testing.T, svc Service, date string, times []string) {
	t.Helper()
	if err := svc.UpsertAvailability(context.Background(), date, times); err != nil {
		t.Fatalf("seed availability: %v", err)
	}
}

func TestConfirmBooking(t *testing.T) {
	ctx := context.Background()
	client, svc := newTestService(t)
	patient := seedPatient(t, client, "Ana", "Souza", "ana@example.com")
	seedAvailability(t, svc, "2099-06-15", []string{"09:00", "10:00"})

	appt, err := svc.ConfirmBooking(ctx, patient.ID, ConfirmBookingRequest{Date: "2099-06-15", Time: "10:00"})
	if err != nil {
		t.Fatalf("ConfirmBooking: %v", err)
	}

	want := time.Date(2099, time.June, 15, 10, 0, 0, 0, time.UTC)
	if !appt.StartTime.Equal(want) {
		t.Errorf("StartTime = %v, want %v", appt.StartTime, want)
	}
	if appt.PatientName != "Ana Souza" || appt.PatientEmail != "ana@example.com" {
		t.Errorf("snapshot = %q / %q", appt.PatientName, appt.PatientEmail)
	}
	if appt.DurationMinutes != SlotDurationMinutes {
		t.Errorf("DurationMinutes = %d, want %d", appt.DurationMinutes, SlotDurationMinutes)
	}

	// first booking completes onboarding
	u := client.User.GetX(ctx, patient.ID)
	if u.OnboardingStep != entuser.OnboardingStepCompleted {
		t.Errorf("OnboardingStep = %s, want completed", u.OnboardingStep)
	}

	// the booked start is gone from the bookable set
	slots, err := svc.BookableSlots(ctx, "2099-06-15")
	if err != nil {
		t.Fatalf("BookableSlots: %v", err)
	}
	if len(slots) != 1 || slots[0].Hour() != 9 {
		t.Errorf("remaining slots = %v, want only 09:00", slots)
	}
}

func TestConfirmBookingStaleSelection(t *testing.T) {
	ctx := context.Background()
	client, svc := newTestService(t)
	ana := seedPatient(t, client, "Ana", "Souza", "ana@example.com")
	bia := seedPatient(t, client, "Bia", "Lima", "bia@example.com")
	seedAvailability(t, svc, "2099-06-15", []string{"10:00"})

	if _, err := svc.ConfirmBooking(ctx, ana.ID, ConfirmBookingRequest{Date: "2099-06-15", Time: "10:00"}); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	// the slot Bia still sees on a stale screen is no longer bookable
	_, err := svc.ConfirmBooking(ctx, bia.ID, ConfirmBookingRequest{Date: "2099-06-15", Time: "10:00"})
	if !errors.Is(err, ErrInvalidSlot) {
		t.Errorf("stale slot err = %v, want ErrInvalidSlot", err)
	}

	// a time the nutritionist never offered
	_, err = svc.ConfirmBooking(ctx, bia.ID, ConfirmBookingRequest{Date: "2099-06-15", Time: "23:00"})
	if !errors.Is(err, ErrInvalidSlot) {
		t.Errorf("unoffered slot err = %v, want ErrInvalidSlot", err)
	}
}

// Two requests pass the bookable pre-check for the same slot; the unique
// index on start_time decides, and the loser sees ErrSlotAlreadyBooked.
func TestConfirmBookingLosesRace(t *testing.T) {
	ctx := context.Background()
	client, svc := newTestService(t)
	ana := seedPatient(t, client, "Ana", "Souza", "ana@example.com")
	bia := seedPatient(t, client, "Bia", "Lima", "bia@example.com")
	seedAvailability(t, svc, "2099-06-15", []string{"10:00"})

	start := time.Date(2099, time.June, 15, 10, 0, 0, 0, time.UTC)

	// Squeeze a competing booking in after the pre-check, right before
	// Ana's insert reaches the database.
	var raced bool
	client.Appointment.Use(func(next repo.Mutator) repo.Mutator {
		return hook.AppointmentFunc(func(ctx context.Context, m *repo.AppointmentMutation) (repo.Value, error) {
			if m.Op().Is(repo.OpCreate) && !raced {
				raced = true
				if err := client.Appointment.Create().
					SetPatientID(bia.ID).
					SetPatientName("Bia Lima").
					SetPatientEmail(bia.Email).
					SetStartTime(start).
					SetDurationMinutes(SlotDurationMinutes).
					Exec(ctx); err != nil {
					t.Fatalf("competing booking: %v", err)
				}
			}
			return next.Mutate(ctx, m)
		})
	})

	_, err := svc.ConfirmBooking(ctx, ana.ID, ConfirmBookingRequest{Date: "2099-06-15", Time: "10:00"})
	if !errors.Is(err, ErrSlotAlreadyBooked) {
		t.Fatalf("raced booking err = %v, want ErrSlotAlreadyBooked", err)
	}

	n, err := client.Appointment.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count appointments: %v", err)
	}
	if n != 1 {
		t.Errorf("appointments = %d, want 1", n)
	}
}

func TestConfirmBookingUnknownPatient(t *testing.T) {
	ctx := context.Background()
	client, svc := newTestService(t)
	ghost := seedPatient(t, client, "Gone", "User", "gone@example.com")
	if err := client.User.DeleteOne(ghost).Exec(ctx); err != nil {
		t.Fatalf("delete patient: %v", err)
	}
	seedAvailability(t, svc, "2099-06-15", []string{"10:00"})

	_, err := svc.ConfirmBooking(ctx, ghost.ID, ConfirmBookingRequest{Date: "2099-06-15", Time: "10:00"})
	if !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("err = %v, want ErrPatientNotFound", err)
	}
}

func TestCancelAppointmentFreesSlot(t *testing.T) {
	ctx := context.Background()
	client, svc := newTestService(t)
	patient := seedPatient(t, client, "Ana", "Souza", "ana@example.com")
	seedAvailability(t, svc, "2099-06-15", []string{"10:00"})

	appt, err := svc.ConfirmBooking(ctx, patient.ID, ConfirmBookingRequest{Date: "2099-06-15", Time: "10:00"})
	if err != nil {
		t.Fatalf("ConfirmBooking: %v", err)
	}

	if err := svc.CancelAppointment(ctx, appt.ID); err != nil {
		t.Fatalf("CancelAppointment: %v", err)
	}

	slots, err := svc.BookableSlots(ctx, "2099-06-15")
	if err != nil {
		t.Fatalf("BookableSlots: %v", err)
	}
	if len(slots) != 1 {
		t.Errorf("slots after cancel = %v, want the freed 10:00", slots)
	}

	if err := svc.CancelAppointment(ctx, appt.ID); !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("second cancel err = %v, want ErrAppointmentNotFound", err)
	}
}

func TestUpsertAvailability(t *testing.T) {
	ctx := context.Background()
	_, svc := newTestService(t)

	if err := svc.UpsertAvailability(ctx, "june 15th", []string{"10:00"}); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("bad date err = %v, want ErrInvalidDate", err)
	}
	if err := svc.UpsertAvailability(ctx, "2099-06-15", []string{"25:00"}); !errors.Is(err, ErrInvalidTimes) {
		t.Errorf("bad time err = %v, want ErrInvalidTimes", err)
	}

	// dedupe and sort on write
	seedAvailability(t, svc, "2099-06-15", []string{"14:00", "09:00", "14:00"})
	days, err := svc.ListAvailability(ctx)
	if err != nil {
		t.Fatalf("ListAvailability: %v", err)
	}
	if len(days) != 1 || len(days[0].Times) != 2 || days[0].Times[0] != "09:00" {
		t.Errorf("availability = %+v", days)
	}

	// replace, then clear via empty set
	seedAvailability(t, svc, "2099-06-15", []string{"11:00"})
	seedAvailability(t, svc, "2099-06-15", nil)
	days, err = svc.ListAvailability(ctx)
	if err != nil {
		t.Fatalf("ListAvailability: %v", err)
	}
	if len(days) != 0 {
		t.Errorf("availability after clear = %+v, want none", days)
	}
}
