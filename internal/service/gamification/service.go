package gamification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/nutrivida/nutrivida_backend/internal/repo"
	entdiary "github.com/nutrivida/nutrivida_backend/internal/repo/diaryentry"
	entpin "github.com/nutrivida/nutrivida_backend/internal/repo/earnedpin"
	entstate "github.com/nutrivida/nutrivida_backend/internal/repo/gamificationstate"
	enthabit "github.com/nutrivida/nutrivida_backend/internal/repo/habit"
	entcheck "github.com/nutrivida/nutrivida_backend/internal/repo/habitcheck"
	enthydration "github.com/nutrivida/nutrivida_backend/internal/repo/hydrationlog"
)

// DefaultGoalML is used until the patient (or nutritionist) sets a goal.
const DefaultGoalML = 2000

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type HydrationDay struct {
	Day              string `json:"day"`
	IntakeML         int    `json:"intake_ml"`
	GoalML           int    `json:"goal_ml"`
	GoalMet          bool   `json:"goal_met"`
	GoalMetToday     bool   `json:"goal_met_today"` // true only on the call that crossed the goal
	TotalGoalMetDays int    `json:"total_goal_met_days"`
	CurrentTier      Tier   `json:"current_tier"`
}

type Progress struct {
	TotalGoalMetDays        int    `json:"total_goal_met_days"`
	WeekKey                 string `json:"week_key"`
	WeeklyStreakCount       int    `json:"weekly_streak_count"`
	TotalTaskTiersCompleted int    `json:"total_task_tiers_completed"`
	CurrentHydrationTier    Tier   `json:"current_hydration_tier"`
	CurrentTaskTier         Tier   `json:"current_task_tier"`
	AllTasksDoneToday       bool   `json:"all_tasks_done_today"`
	EarnedPins              []Pin  `json:"earned_pins"`
}

type Pin struct {
	TierName string    `json:"tier_name"`
	TierType TierType  `json:"tier_type"`
	EarnedAt time.Time `json:"earned_at"`
}

// PinUnlockedEvent is the payload published on the NATS pin subject.
type PinUnlockedEvent struct {
	PatientID string   `json:"patient_id"`
	TierName  string   `json:"tier_name"`
	TierType  TierType `json:"tier_type"`
	Image     string   `json:"image"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Hydration track
	HydrationToday(ctx context.Context, patientID uuid.UUID) (*HydrationDay, error)
	RecordIntake(ctx context.Context, patientID uuid.UUID, intakeML int) (*HydrationDay, error)
	SetHydrationGoal(ctx context.Context, patientID uuid.UUID, goalML int) (*HydrationDay, error)

	// Task track; called after every diary or checklist mutation
	EvaluateDailyTasks(ctx context.Context, patientID uuid.UUID) error

	// Combined view for the rewards screen
	GetProgress(ctx context.Context, patientID uuid.UUID) (*Progress, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type gamificationService struct {
	db  *repo.Client
	nc  *nats.Conn
	loc *time.Location
}

func New(db *repo.Client, nc *nats.Conn, loc *time.Location) Service {
	return &gamificationService{db: db, nc: nc, loc: loc}
}

// ---------------------------------------------------------------------------
// Hydration
// ---------------------------------------------------------------------------

func (s *gamificationService) HydrationToday(ctx context.Context, patientID uuid.UUID) (*HydrationDay, error) {
	log, err := s.todayLog(ctx, patientID)
	if err != nil {
		return nil, err
	}
	state, err := s.state(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return &HydrationDay{
		Day:              log.Day,
		IntakeML:         log.IntakeMl,
		GoalML:           log.GoalMl,
		GoalMet:          log.GoalMet,
		TotalGoalMetDays: state.TotalGoalMetDays,
		CurrentTier:      HydrationTiers.Current(state.TotalGoalMetDays),
	}, nil
}

func (s *gamificationService) RecordIntake(ctx context.Context, patientID uuid.UUID, intakeML int) (*HydrationDay, error) {
	log, err := s.todayLog(ctx, patientID)
	if err != nil {
		return nil, err
	}
	state, err := s.state(ctx, patientID)
	if err != nil {
		return nil, err
	}
	earned, err := s.pinChecker(ctx, patientID)
	if err != nil {
		return nil, err
	}

	st := HydrationState{
		IntakeML:         log.IntakeMl,
		GoalML:           log.GoalMl,
		GoalMet:          log.GoalMet,
		TotalGoalMetDays: state.TotalGoalMetDays,
	}
	st, events := ApplyHydrationIntake(st, intakeML, earned)

	log, err = log.Update().
		SetIntakeMl(st.IntakeML).
		SetGoalMet(st.GoalMet).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update hydration log: %w", err)
	}

	// The day record is the primary action; a counter write failure is
	// reconciled from persisted state on the next load, not surfaced.
	if st.TotalGoalMetDays != state.TotalGoalMetDays {
		if err := state.Update().
			SetTotalGoalMetDays(st.TotalGoalMetDays).
			Exec(ctx); err != nil {
			slog.Warn("hydration counter update failed",
				"patient_id", patientID, "error", err)
		}
	}

	s.handleEvents(ctx, patientID, events)

	// a goal met now may complete the daily task set too
	if hasEvent(events, EventGoalMetToday) {
		if err := s.EvaluateDailyTasks(ctx, patientID); err != nil {
			slog.Warn("daily task evaluation failed",
				"patient_id", patientID, "error", err)
		}
	}

	return &HydrationDay{
		Day:              log.Day,
		IntakeML:         log.IntakeMl,
		GoalML:           log.GoalMl,
		GoalMet:          log.GoalMet,
		GoalMetToday:     hasEvent(events, EventGoalMetToday),
		TotalGoalMetDays: st.TotalGoalMetDays,
		CurrentTier:      HydrationTiers.Current(st.TotalGoalMetDays),
	}, nil
}

func (s *gamificationService) SetHydrationGoal(ctx context.Context, patientID uuid.UUID, goalML int) (*HydrationDay, error) {
	if goalML <= 0 {
		return nil, ErrInvalidGoal
	}

	log, err := s.todayLog(ctx, patientID)
	if err != nil {
		return nil, err
	}
	state, err := s.state(ctx, patientID)
	if err != nil {
		return nil, err
	}

	// The goal-met flag never reverts within a day, even if the goal is
	// raised above the current intake afterwards.
	log, err = log.Update().
		SetGoalMl(goalML).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update hydration goal: %w", err)
	}

	return &HydrationDay{
		Day:              log.Day,
		IntakeML:         log.IntakeMl,
		GoalML:           log.GoalMl,
		GoalMet:          log.GoalMet,
		TotalGoalMetDays: state.TotalGoalMetDays,
		CurrentTier:      HydrationTiers.Current(state.TotalGoalMetDays),
	}, nil
}

// todayLog returns today's hydration row, creating it with the goal
// carried over from the most recent day (or the default) if absent.
func (s *gamificationService) todayLog(ctx context.Context, patientID uuid.UUID) (*repo.HydrationLog, error) {
	day := DayKey(time.Now(), s.loc)

	log, err := s.db.HydrationLog.Query().
		Where(enthydration.PatientID(patientID), enthydration.Day(day)).
		Only(ctx)
	if err == nil {
		return log, nil
	}
	if !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get hydration log: %w", err)
	}

	goal := DefaultGoalML
	prev, err := s.db.HydrationLog.Query().
		Where(enthydration.PatientID(patientID)).
		Order(enthydration.ByDay(sql.OrderDesc())).
		First(ctx)
	if err == nil {
		goal = prev.GoalMl
	} else if !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get previous hydration log: %w", err)
	}

	log, err = s.db.HydrationLog.Create().
		SetPatientID(patientID).
		SetDay(day).
		SetGoalMl(goal).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			// concurrent create for the same day, reread
			return s.db.HydrationLog.Query().
				Where(enthydration.PatientID(patientID), enthydration.Day(day)).
				Only(ctx)
		}
		return nil, fmt.Errorf("create hydration log: %w", err)
	}
	return log, nil
}

// ---------------------------------------------------------------------------
// Daily tasks
// ---------------------------------------------------------------------------

func (s *gamificationService) EvaluateDailyTasks(ctx context.Context, patientID uuid.UUID) error {
	now := time.Now()
	day := DayKey(now, s.loc)
	week := WeekKey(now, s.loc)

	allDone, err := s.allTasksDone(ctx, patientID, day)
	if err != nil {
		return err
	}

	state, err := s.state(ctx, patientID)
	if err != nil {
		return err
	}
	earned, err := s.pinChecker(ctx, patientID)
	if err != nil {
		return err
	}

	st := TaskState{
		WeekKey:             state.WeekKey,
		WeeklyStreakCount:   state.WeeklyStreakCount,
		TotalTiersCompleted: state.TotalTaskTiersCompleted,
		AllDoneDay:          state.AllDoneDay,
	}
	st, events := ApplyTaskCompletion(st, day, week, allDone, earned)

	if err := state.Update().
		SetWeekKey(st.WeekKey).
		SetWeeklyStreakCount(st.WeeklyStreakCount).
		SetTotalTaskTiersCompleted(st.TotalTiersCompleted).
		SetAllDoneDay(st.AllDoneDay).
		Exec(ctx); err != nil {
		return fmt.Errorf("update gamification state: %w", err)
	}

	s.handleEvents(ctx, patientID, events)
	return nil
}

// allTasksDone checks the three daily conditions against the store.
func (s *gamificationService) allTasksDone(ctx context.Context, patientID uuid.UUID, day string) (bool, error) {
	hydrationMet, err := s.db.HydrationLog.Query().
		Where(
			enthydration.PatientID(patientID),
			enthydration.Day(day),
			enthydration.GoalMet(true),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check hydration: %w", err)
	}

	diaryHasEntry, err := s.db.DiaryEntry.Query().
		Where(entdiary.PatientID(patientID), entdiary.Day(day)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check diary: %w", err)
	}

	habitCount, err := s.db.Habit.Query().
		Where(enthabit.IsActive(true)).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count habits: %w", err)
	}
	checkCount, err := s.db.HabitCheck.Query().
		Where(entcheck.PatientID(patientID), entcheck.Day(day)).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count habit checks: %w", err)
	}
	// an empty checklist never counts as completed
	allHabitsChecked := habitCount > 0 && checkCount >= habitCount

	return AllTasksDone(hydrationMet, diaryHasEntry, allHabitsChecked), nil
}

// ---------------------------------------------------------------------------
// Progress view
// ---------------------------------------------------------------------------

func (s *gamificationService) GetProgress(ctx context.Context, patientID uuid.UUID) (*Progress, error) {
	state, err := s.state(ctx, patientID)
	if err != nil {
		return nil, err
	}

	pins, err := s.db.EarnedPin.Query().
		Where(entpin.PatientID(patientID)).
		Order(entpin.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pins: %w", err)
	}

	now := time.Now()
	day := DayKey(now, s.loc)
	week := WeekKey(now, s.loc)

	// a stale week key means the visible streak is zero
	streak := state.WeeklyStreakCount
	if state.WeekKey != week {
		streak = 0
	}

	out := &Progress{
		TotalGoalMetDays:        state.TotalGoalMetDays,
		WeekKey:                 week,
		WeeklyStreakCount:       streak,
		TotalTaskTiersCompleted: state.TotalTaskTiersCompleted,
		CurrentHydrationTier:    HydrationTiers.Current(state.TotalGoalMetDays),
		CurrentTaskTier:         TaskTiers.Current(state.TotalTaskTiersCompleted),
		AllTasksDoneToday:       state.AllDoneDay == day,
		EarnedPins:              make([]Pin, 0, len(pins)),
	}
	for _, p := range pins {
		out.EarnedPins = append(out.EarnedPins, Pin{
			TierName: p.TierName,
			TierType: TierType(p.TierType),
			EarnedAt: p.CreatedAt,
		})
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Shared helpers
// ---------------------------------------------------------------------------

// state returns the patient's counter row, creating it if absent.
func (s *gamificationService) state(ctx context.Context, patientID uuid.UUID) (*repo.GamificationState, error) {
	state, err := s.db.GamificationState.Query().
		Where(entstate.PatientID(patientID)).
		Only(ctx)
	if err == nil {
		return state, nil
	}
	if !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get gamification state: %w", err)
	}

	state, err = s.db.GamificationState.Create().
		SetPatientID(patientID).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return s.db.GamificationState.Query().
				Where(entstate.PatientID(patientID)).
				Only(ctx)
		}
		return nil, fmt.Errorf("create gamification state: %w", err)
	}
	return state, nil
}

func (s *gamificationService) pinChecker(ctx context.Context, patientID uuid.UUID) (PinEarned, error) {
	pins, err := s.db.EarnedPin.Query().
		Where(entpin.PatientID(patientID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pins: %w", err)
	}
	set := make(map[string]struct{}, len(pins))
	for _, p := range pins {
		set[string(p.TierType)+"/"+p.TierName] = struct{}{}
	}
	return func(name string, typ TierType) bool {
		_, ok := set[string(typ)+"/"+name]
		return ok
	}, nil
}

// handleEvents persists unlocked pins and publishes them. The unique
// index on earned_pins makes the unlock at-most-once even when two
// requests race.
func (s *gamificationService) handleEvents(ctx context.Context, patientID uuid.UUID, events []Event) {
	for _, e := range events {
		if e.Kind != EventTierUnlocked {
			continue
		}

		err := s.db.EarnedPin.Create().
			SetPatientID(patientID).
			SetTierName(e.Tier.Name).
			SetTierType(entpin.TierType(e.Type)).
			Exec(ctx)
		if err != nil {
			if repo.IsConstraintError(err) {
				// lost the race, the winner already published
				continue
			}
			slog.Warn("record earned pin failed",
				"patient_id", patientID, "tier", e.Tier.Name, "error", err)
			continue
		}

		if s.nc != nil {
			payload, _ := json.Marshal(PinUnlockedEvent{
				PatientID: patientID.String(),
				TierName:  e.Tier.Name,
				TierType:  e.Type,
				Image:     e.Tier.Image,
			})
			subject := fmt.Sprintf("nutrivida.pin.unlocked.%s", patientID.String())
			_ = s.nc.Publish(subject, payload)
		}
	}
}
