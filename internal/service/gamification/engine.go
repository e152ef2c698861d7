package gamification

import (
	"fmt"
	"time"
)

const (
	// OvershootAllowanceML bounds how far intake may exceed the goal.
	OvershootAllowanceML = 5000

	// StreakTarget is the number of all-tasks-done days that completes
	// one weekly streak.
	StreakTarget = 5
)

// EventKind names the reward events the engine can emit.
type EventKind string

const (
	EventGoalMetToday EventKind = "goal_met_today"
	EventTierUnlocked EventKind = "tier_unlocked"
)

// Event is a reward trigger produced by an engine transition. Callers
// persist the pin (for unlocks) and fan the event out to notifications.
type Event struct {
	Kind EventKind
	Type TierType
	Tier Tier
}

// PinEarned reports whether a pin was already recorded for the patient.
// Backed by the earned_pins unique index in production, by a map in tests.
type PinEarned func(tierName string, tierType TierType) bool

// HydrationState is one day's hydration record plus the lifetime counter.
type HydrationState struct {
	IntakeML         int
	GoalML           int
	GoalMet          bool
	TotalGoalMetDays int
}

// ApplyHydrationIntake sets the day's intake and advances the hydration
// track. Intake is clamped to [0, goal+allowance]. The goal-met flag
// transitions false to true at most once per day; only that transition
// increments TotalGoalMetDays and emits EventGoalMetToday. A tier
// advance emits EventTierUnlocked unless the pin was already earned.
// Repeated calls within a day with the same or smaller intake change
// nothing but the intake value.
func ApplyHydrationIntake(st HydrationState, newIntakeML int, earned PinEarned) (HydrationState, []Event) {
	if newIntakeML < 0 {
		newIntakeML = 0
	}
	if max := st.GoalML + OvershootAllowanceML; newIntakeML > max {
		newIntakeML = max
	}

	prevTier := HydrationTiers.Current(st.TotalGoalMetDays)
	st.IntakeML = newIntakeML

	var events []Event
	if newIntakeML >= st.GoalML && !st.GoalMet {
		st.GoalMet = true
		st.TotalGoalMetDays++
		events = append(events, Event{Kind: EventGoalMetToday, Type: TierHydration})
	}

	newTier := HydrationTiers.Current(st.TotalGoalMetDays)
	if newTier.Threshold > prevTier.Threshold && !earned(newTier.Name, TierHydration) {
		events = append(events, Event{Kind: EventTierUnlocked, Type: TierHydration, Tier: newTier})
	}

	return st, events
}

// AllTasksDone is the cross-cutting daily completion flag.
func AllTasksDone(hydrationGoalMet, diaryHasEntry, allHabitsChecked bool) bool {
	return hydrationGoalMet && diaryHasEntry && allHabitsChecked
}

// TaskState is the weekly streak track.
type TaskState struct {
	WeekKey             string
	WeeklyStreakCount   int
	TotalTiersCompleted int
	AllDoneDay          string
}

// ApplyTaskCompletion advances the streak when all tasks are done for
// the first time on day. A week change resets the in-week streak before
// anything else. Reaching StreakTarget completes one tier: the total
// increments and the streak resets. Tier unlocks are gated by earned
// exactly like the hydration track.
func ApplyTaskCompletion(st TaskState, day, weekKey string, allDone bool, earned PinEarned) (TaskState, []Event) {
	if st.WeekKey != weekKey {
		st.WeekKey = weekKey
		st.WeeklyStreakCount = 0
	}

	if !allDone || st.AllDoneDay == day {
		return st, nil
	}

	st.AllDoneDay = day
	st.WeeklyStreakCount++

	var events []Event
	if st.WeeklyStreakCount >= StreakTarget {
		prevTier := TaskTiers.Current(st.TotalTiersCompleted)
		st.TotalTiersCompleted++
		st.WeeklyStreakCount = 0

		newTier := TaskTiers.Current(st.TotalTiersCompleted)
		if newTier.Threshold > prevTier.Threshold && !earned(newTier.Name, TierTask) {
			events = append(events, Event{Kind: EventTierUnlocked, Type: TierTask, Tier: newTier})
		}
	}

	return st, events
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// DayKey formats t as a calendar day in the practice timezone.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// WeekKey formats t's ISO week in the practice timezone, e.g. "2025-W28".
func WeekKey(t time.Time, loc *time.Location) string {
	year, week := t.In(loc).ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
