package checklist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nutrivida/nutrivida_backend/internal/repo"
	enthabit "github.com/nutrivida/nutrivida_backend/internal/repo/habit"
	entcheck "github.com/nutrivida/nutrivida_backend/internal/repo/habitcheck"
	"github.com/nutrivida/nutrivida_backend/internal/service/gamification"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateHabitRequest struct {
	Title       string
	Description *string
	Position    int
}

type UpdateHabitRequest struct {
	Title       *string
	Description *string
	Position    *int
	IsActive    *bool
}

// DayItem is one habit with its checked state for a given day.
type DayItem struct {
	Habit   *repo.Habit `json:"habit"`
	Checked bool        `json:"checked"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Habit management (nutritionist)
	ListHabits(ctx context.Context, includeInactive bool) ([]*repo.Habit, error)
	CreateHabit(ctx context.Context, req CreateHabitRequest) (*repo.Habit, error)
	UpdateHabit(ctx context.Context, habitID uuid.UUID, req UpdateHabitRequest) (*repo.Habit, error)
	DeleteHabit(ctx context.Context, habitID uuid.UUID) error

	// Patient checklist
	Today(ctx context.Context, patientID uuid.UUID) ([]DayItem, error)
	SetChecked(ctx context.Context, patientID, habitID uuid.UUID, checked bool) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type checklistService struct {
	db    *repo.Client
	gamif gamification.Service
	loc   *time.Location
}

func New(db *repo.Client, gamif gamification.Service, loc *time.Location) Service {
	return &checklistService{db: db, gamif: gamif, loc: loc}
}

// ---------------------------------------------------------------------------
// Habit management
// ---------------------------------------------------------------------------

func (s *checklistService) ListHabits(ctx context.Context, includeInactive bool) ([]*repo.Habit, error) {
	q := s.db.Habit.Query()
	if !includeInactive {
		q = q.Where(enthabit.IsActive(true))
	}
	habits, err := q.Order(enthabit.ByPosition(), enthabit.ByCreatedAt()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	return habits, nil
}

func (s *checklistService) CreateHabit(ctx context.Context, req CreateHabitRequest) (*repo.Habit, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	c := s.db.Habit.Create().
		SetTitle(title).
		SetPosition(req.Position)
	if req.Description != nil {
		c = c.SetDescription(*req.Description)
	}

	habit, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create habit: %w", err)
	}
	return habit, nil
}

func (s *checklistService) UpdateHabit(ctx context.Context, habitID uuid.UUID, req UpdateHabitRequest) (*repo.Habit, error) {
	upd := s.db.Habit.UpdateOneID(habitID)

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, ErrEmptyTitle
		}
		upd = upd.SetTitle(title)
	}
	if req.Description != nil {
		upd = upd.SetDescription(*req.Description)
	}
	if req.Position != nil {
		upd = upd.SetPosition(*req.Position)
	}
	if req.IsActive != nil {
		upd = upd.SetIsActive(*req.IsActive)
	}

	habit, err := upd.Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrHabitNotFound
		}
		return nil, fmt.Errorf("update habit: %w", err)
	}
	return habit, nil
}

func (s *checklistService) DeleteHabit(ctx context.Context, habitID uuid.UUID) error {
	if err := s.db.Habit.DeleteOneID(habitID).Exec(ctx); err != nil {
		if repo.IsNotFound(err) {
			return ErrHabitNotFound
		}
		return fmt.Errorf("delete habit: %w", err)
	}

	// orphaned checks are harmless history but would skew completion counts
	if _, err := s.db.HabitCheck.Delete().
		Where(entcheck.HabitID(habitID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete habit checks: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Patient checklist
// ---------------------------------------------------------------------------

func (s *checklistService) Today(ctx context.Context, patientID uuid.UUID) ([]DayItem, error) {
	day := gamification.DayKey(time.Now(), s.loc)

	habits, err := s.ListHabits(ctx, false)
	if err != nil {
		return nil, err
	}

	checks, err := s.db.HabitCheck.Query().
		Where(entcheck.PatientID(patientID), entcheck.Day(day)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list habit checks: %w", err)
	}
	checked := make(map[uuid.UUID]struct{}, len(checks))
	for _, c := range checks {
		checked[c.HabitID] = struct{}{}
	}

	items := make([]DayItem, 0, len(habits))
	for _, h := range habits {
		_, ok := checked[h.ID]
		items = append(items, DayItem{Habit: h, Checked: ok})
	}
	return items, nil
}

func (s *checklistService) SetChecked(ctx context.Context, patientID, habitID uuid.UUID, checked bool) error {
	exists, err := s.db.Habit.Query().
		Where(enthabit.ID(habitID), enthabit.IsActive(true)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("get habit: %w", err)
	}
	if !exists {
		return ErrHabitNotFound
	}

	day := gamification.DayKey(time.Now(), s.loc)

	if checked {
		err = s.db.HabitCheck.Create().
			SetPatientID(patientID).
			SetHabitID(habitID).
			SetDay(day).
			Exec(ctx)
		// repeated check of the same habit is a no-op
		if err != nil && !repo.IsConstraintError(err) {
			return fmt.Errorf("create habit check: %w", err)
		}
	} else {
		if _, err := s.db.HabitCheck.Delete().
			Where(
				entcheck.PatientID(patientID),
				entcheck.HabitID(habitID),
				entcheck.Day(day),
			).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete habit check: %w", err)
		}
	}

	// a toggle can complete (or no longer complete) today's task set
	if err := s.gamif.EvaluateDailyTasks(ctx, patientID); err != nil {
		slog.Warn("daily task evaluation failed", "patient_id", patientID, "error", err)
	}
	return nil
}
