package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/nutrivida/nutrivida_backend/internal/repo"
	entappt "github.com/nutrivida/nutrivida_backend/internal/repo/appointment"
	entwindow "github.com/nutrivida/nutrivida_backend/internal/repo/availabilitywindow"
	entuser "github.com/nutrivida/nutrivida_backend/internal/repo/user"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type DayAvailability struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}

type ConfirmBookingRequest struct {
	Date string // "2006-01-02"
	Time string // "15:04"
}

// CancelledEvent is the payload published on appointment cancellation.
// The row is already deleted when workers see it, so it carries what the
// cancellation email needs.
type CancelledEvent struct {
	AppointmentID string    `json:"appointment_id"`
	PatientID     string    `json:"patient_id"`
	PatientName   string    `json:"patient_name"`
	PatientEmail  string    `json:"patient_email"`
	StartTime     time.Time `json:"start_time"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Availability management (nutritionist)
	ListAvailability(ctx context.Context) ([]DayAvailability, error)
	UpsertAvailability(ctx context.Context, date string, times []string) error

	// Patient-facing schedule views
	BookableSlots(ctx context.Context, date string) ([]time.Time, error)
	MonthView(ctx context.Context, year int, month time.Month) ([]DayCell, error)

	// Booking lifecycle
	ConfirmBooking(ctx context.Context, patientID uuid.UUID, req ConfirmBookingRequest) (*repo.Appointment, error)
	CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error
	ListAppointments(ctx context.Context, from, to time.Time) ([]*repo.Appointment, error)
	PatientAppointments(ctx context.Context, patientID uuid.UUID) ([]*repo.Appointment, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type bookingService struct {
	db  *repo.Client
	nc  *nats.Conn
	loc *time.Location
}

func New(db *repo.Client, nc *nats.Conn, loc *time.Location) Service {
	return &bookingService{db: db, nc: nc, loc: loc}
}

// ---------------------------------------------------------------------------
// Availability
// ---------------------------------------------------------------------------

func (s *bookingService) ListAvailability(ctx context.Context) ([]DayAvailability, error) {
	rows, err := s.db.AvailabilityWindow.Query().
		Order(entwindow.ByDate()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list availability: %w", err)
	}

	out := make([]DayAvailability, 0, len(rows))
	for _, w := range rows {
		out = append(out, DayAvailability{Date: w.Date, Times: w.Times})
	}
	return out, nil
}

func (s *bookingService) UpsertAvailability(ctx context.Context, date string, times []string) error {
	if _, err := time.ParseInLocation(dateLayout, date, s.loc); err != nil {
		return ErrInvalidDate
	}

	// an empty time set means no availability, stored as absence
	if len(times) == 0 {
		_, err := s.db.AvailabilityWindow.Delete().
			Where(entwindow.Date(date)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("clear availability: %w", err)
		}
		return nil
	}

	cleaned, err := normalizeTimes(times)
	if err != nil {
		return err
	}

	err = s.db.AvailabilityWindow.Create().
		SetDate(date).
		SetTimes(cleaned).
		OnConflictColumns(entwindow.FieldDate).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert availability: %w", err)
	}
	return nil
}

// normalizeTimes validates, dedupes and sorts "15:04" entries.
func normalizeTimes(times []string) ([]string, error) {
	seen := make(map[string]struct{}, len(times))
	out := make([]string, 0, len(times))
	for _, t := range times {
		parsed, err := time.Parse(clockLayout, t)
		if err != nil {
			return nil, ErrInvalidTimes
		}
		canonical := parsed.Format(clockLayout)
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		out = append(out, canonical)
	}
	sort.Strings(out)
	return out, nil
}

// ---------------------------------------------------------------------------
// Schedule views
// ---------------------------------------------------------------------------

func (s *bookingService) BookableSlots(ctx context.Context, date string) ([]time.Time, error) {
	dayStart, err := time.ParseInLocation(dateLayout, date, s.loc)
	if err != nil {
		return nil, ErrInvalidDate
	}

	window, err := s.db.AvailabilityWindow.Query().
		Where(entwindow.Date(date)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get availability: %w", err)
	}

	booked, err := s.bookedStarts(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	return ComputeBookableSlots(date, window.Times, booked, time.Now(), s.loc), nil
}

func (s *bookingService) MonthView(ctx context.Context, year int, month time.Month) ([]DayCell, error) {
	windows, err := s.db.AvailabilityWindow.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list availability: %w", err)
	}
	availability := make(map[string][]string, len(windows))
	for _, w := range windows {
		availability[w.Date] = w.Times
	}

	// the grid can spill up to six days into the adjacent months
	first := time.Date(year, month, 1, 0, 0, 0, 0, s.loc)
	booked, err := s.bookedStarts(ctx, first.AddDate(0, 0, -6), first.AddDate(0, 1, 6))
	if err != nil {
		return nil, err
	}

	return MonthGrid(year, month, availability, booked, time.Now(), s.loc), nil
}

func (s *bookingService) bookedStarts(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	appts, err := s.db.Appointment.Query().
		Where(
			entappt.StartTimeGTE(from),
			entappt.StartTimeLT(to),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	starts := make([]time.Time, 0, len(appts))
	for _, a := range appts {
		starts = append(starts, a.StartTime)
	}
	return starts, nil
}

// ---------------------------------------------------------------------------
// Booking lifecycle
// ---------------------------------------------------------------------------

func (s *bookingService) ConfirmBooking(ctx context.Context, patientID uuid.UUID, req ConfirmBookingRequest) (*repo.Appointment, error) {
	start, err := CombineDateTime(req.Date, req.Time, s.loc)
	if err != nil {
		return nil, ErrInvalidSlot
	}

	patient, err := s.db.User.Query().
		Where(entuser.ID(patientID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}

	// Optimistic pre-check against the freshest bookable set. This is a
	// UX filter only; the unique index on start_time is the arbiter.
	slots, err := s.BookableSlots(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	if !containsInstant(slots, start) {
		return nil, ErrInvalidSlot
	}

	appt, err := s.db.Appointment.Create().
		SetPatientID(patient.ID).
		SetPatientName(patient.FirstName + " " + patient.LastName).
		SetPatientEmail(patient.Email).
		SetStartTime(start).
		SetDurationMinutes(SlotDurationMinutes).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			// lost the race against a concurrent booking
			return nil, ErrSlotAlreadyBooked
		}
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	// First booking completes onboarding. Failure here must not undo
	// the appointment; the step is re-derivable on next login.
	if patient.OnboardingStep == entuser.OnboardingStepScheduling {
		if err := s.db.User.UpdateOneID(patient.ID).
			SetOnboardingStep(entuser.OnboardingStepCompleted).
			Exec(ctx); err != nil {
			slog.Warn("advance onboarding step failed", "patient_id", patient.ID, "error", err)
		}
	}

	if s.nc != nil {
		subject := fmt.Sprintf("nutrivida.appointment.created.%s", appt.ID.String())
		_ = s.nc.Publish(subject, []byte(appt.ID.String()))
	}

	return appt, nil
}

func containsInstant(slots []time.Time, start time.Time) bool {
	for _, s := range slots {
		if s.Equal(start) {
			return true
		}
	}
	return false
}

func (s *bookingService) CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	appt, err := s.db.Appointment.Query().
		Where(entappt.ID(appointmentID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrAppointmentNotFound
		}
		return fmt.Errorf("get appointment: %w", err)
	}

	// cancellation is deletion; the slot becomes bookable again
	if err := s.db.Appointment.DeleteOneID(appointmentID).Exec(ctx); err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}

	if s.nc != nil {
		payload, _ := json.Marshal(CancelledEvent{
			AppointmentID: appt.ID.String(),
			PatientID:     appt.PatientID.String(),
			PatientName:   appt.PatientName,
			PatientEmail:  appt.PatientEmail,
			StartTime:     appt.StartTime,
		})
		subject := fmt.Sprintf("nutrivida.appointment.cancelled.%s", appt.ID.String())
		_ = s.nc.Publish(subject, payload)
	}

	return nil
}

func (s *bookingService) ListAppointments(ctx context.Context, from, to time.Time) ([]*repo.Appointment, error) {
	appts, err := s.db.Appointment.Query().
		Where(
			entappt.StartTimeGTE(from),
			entappt.StartTimeLT(to),
		).
		Order(entappt.ByStartTime()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

func (s *bookingService) PatientAppointments(ctx context.Context, patientID uuid.UUID) ([]*repo.Appointment, error) {
	appts, err := s.db.Appointment.Query().
		Where(entappt.PatientID(patientID)).
		Order(entappt.ByStartTime()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patient appointments: %w", err)
	}
	return appts, nil
}
