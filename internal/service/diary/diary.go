package diary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nutrivida/nutrivida_backend/internal/repo"
	entdiary "github.com/nutrivida/nutrivida_backend/internal/repo/diaryentry"
	"github.com/nutrivida/nutrivida_backend/internal/service/gamification"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateEntryRequest struct {
	Meal        string // breakfast | lunch | dinner | snack
	Description string
	MediaKey    *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	CreateEntry(ctx context.Context, patientID uuid.UUID, req CreateEntryRequest) (*repo.DiaryEntry, error)
	DeleteEntry(ctx context.Context, patientID, entryID uuid.UUID) error
	ListDay(ctx context.Context, patientID uuid.UUID, day string) ([]*repo.DiaryEntry, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type diaryService struct {
	db    *repo.Client
	gamif gamification.Service
	loc   *time.Location
}

func New(db *repo.Client, gamif gamification.Service, loc *time.Location) Service {
	return &diaryService{db: db, gamif: gamif, loc: loc}
}

func (s *diaryService) CreateEntry(ctx context.Context, patientID uuid.UUID, req CreateEntryRequest) (*repo.DiaryEntry, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	meal := entdiary.Meal(req.Meal)
	if err := entdiary.MealValidator(meal); err != nil {
		return nil, ErrInvalidMeal
	}

	c := s.db.DiaryEntry.Create().
		SetPatientID(patientID).
		SetDay(gamification.DayKey(time.Now(), s.loc)).
		SetMeal(meal).
		SetDescription(description)
	if req.MediaKey != nil {
		c = c.SetMediaKey(*req.MediaKey)
	}

	entry, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create diary entry: %w", err)
	}

	// the first entry of the day can complete the task set
	if err := s.gamif.EvaluateDailyTasks(ctx, patientID); err != nil {
		slog.Warn("daily task evaluation failed", "patient_id", patientID, "error", err)
	}

	return entry, nil
}

func (s *diaryService) DeleteEntry(ctx context.Context, patientID, entryID uuid.UUID) error {
	entry, err := s.db.DiaryEntry.Get(ctx, entryID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrEntryNotFound
		}
		return fmt.Errorf("get diary entry: %w", err)
	}
	if entry.PatientID != patientID {
		return ErrNotOwner
	}

	if err := s.db.DiaryEntry.DeleteOneID(entryID).Exec(ctx); err != nil {
		return fmt.Errorf("delete diary entry: %w", err)
	}
	return nil
}

func (s *diaryService) ListDay(ctx context.Context, patientID uuid.UUID, day string) ([]*repo.DiaryEntry, error) {
	if day == "" {
		day = gamification.DayKey(time.Now(), s.loc)
	}
	entries, err := s.db.DiaryEntry.Query().
		Where(entdiary.PatientID(patientID), entdiary.Day(day)).
		Order(entdiary.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list diary entries: %w", err)
	}
	return entries, nil
}
