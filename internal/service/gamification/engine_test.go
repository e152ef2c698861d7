package gamification

import (
	"testing"
	"time"
)

func noPins(string, TierType) bool { return false }

func pinSet(pins ...string) PinEarned {
	set := make(map[string]struct{}, len(pins))
	for _, p := range pins {
		set[p] = struct{}{}
	}
	return func(name string, typ TierType) bool {
		_, ok := set[string(typ)+"/"+name]
		return ok
	}
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestTierTableCurrent(t *testing.T) {
	table := TierTable{
		{Threshold: 0, Name: "base"},
		{Threshold: 5, Name: "mid"},
		{Threshold: 10, Name: "top"},
	}

	tests := []struct {
		counter int
		want    string
	}{
		{0, "base"},
		{4, "base"},
		{5, "mid"},
		{9, "mid"},
		{10, "top"},
		{1000, "top"},
	}
	for _, tt := range tests {
		if got := table.Current(tt.counter); got.Name != tt.want {
			t.Errorf("Current(%d) = %s, want %s", tt.counter, got.Name, tt.want)
		}
	}
}

func TestApplyHydrationIntakeClamp(t *testing.T) {
	st := HydrationState{GoalML: 2000}

	got, _ := ApplyHydrationIntake(st, -100, noPins)
	if got.IntakeML != 0 {
		t.Errorf("negative intake clamped to %d, want 0", got.IntakeML)
	}

	got, _ = ApplyHydrationIntake(st, 99999, noPins)
	if got.IntakeML != 7000 {
		t.Errorf("excessive intake clamped to %d, want 7000", got.IntakeML)
	}
}

func TestApplyHydrationIntakeGoalMetOncePerDay(t *testing.T) {
	st := HydrationState{GoalML: 2000}

	// goal reached for the first time today
	st, events := ApplyHydrationIntake(st, 2000, noPins)
	if !st.GoalMet {
		t.Fatal("GoalMet = false after reaching goal")
	}
	if st.TotalGoalMetDays != 1 {
		t.Fatalf("TotalGoalMetDays = %d, want 1", st.TotalGoalMetDays)
	}
	if countEvents(events, EventGoalMetToday) != 1 {
		t.Fatalf("expected one goal-met event, got %v", events)
	}

	// intake adjusted up then back down the same day
	st, events = ApplyHydrationIntake(st, 2500, noPins)
	if len(events) != 0 {
		t.Fatalf("raising intake re-emitted events: %v", events)
	}
	st, events = ApplyHydrationIntake(st, 2000, noPins)
	if len(events) != 0 || st.TotalGoalMetDays != 1 {
		t.Errorf("same-day re-apply changed state: days=%d events=%v", st.TotalGoalMetDays, events)
	}

	// even dropping below the goal does not clear the flag
	st, _ = ApplyHydrationIntake(st, 500, noPins)
	if !st.GoalMet || st.TotalGoalMetDays != 1 {
		t.Errorf("flag or counter changed on intake decrease: met=%v days=%d", st.GoalMet, st.TotalGoalMetDays)
	}
}

func TestApplyHydrationIntakeTierUnlock(t *testing.T) {
	// day 7 crosses the first real hydration threshold
	st := HydrationState{GoalML: 2000, TotalGoalMetDays: 6}

	st, events := ApplyHydrationIntake(st, 2000, noPins)
	if st.TotalGoalMetDays != 7 {
		t.Fatalf("TotalGoalMetDays = %d, want 7", st.TotalGoalMetDays)
	}
	if countEvents(events, EventTierUnlocked) != 1 {
		t.Fatalf("expected one unlock, got %v", events)
	}
	for _, e := range events {
		if e.Kind == EventTierUnlocked && e.Tier.Name != "stream" {
			t.Errorf("unlocked tier = %s, want stream", e.Tier.Name)
		}
	}
}

func TestApplyHydrationIntakeUnlockAtMostOnce(t *testing.T) {
	st := HydrationState{GoalML: 2000, TotalGoalMetDays: 6}

	st, events := ApplyHydrationIntake(st, 2000, pinSet("hydration/stream"))
	if countEvents(events, EventTierUnlocked) != 0 {
		t.Errorf("already-earned pin unlocked again: %v", events)
	}
	if countEvents(events, EventGoalMetToday) != 1 {
		t.Errorf("goal-met event suppressed by earned pin: %v", events)
	}
	if got := HydrationTiers.Current(st.TotalGoalMetDays).Name; got != "stream" {
		t.Errorf("current tier = %s, want stream", got)
	}
}

func TestHydrationTierMonotonic(t *testing.T) {
	st := HydrationState{GoalML: 2000}
	prev := HydrationTiers.Current(st.TotalGoalMetDays)

	// simulate 120 consecutive days, flag reset each morning
	for day := 0; day < 120; day++ {
		st.GoalMet = false
		st, _ = ApplyHydrationIntake(st, 2000, noPins)

		cur := HydrationTiers.Current(st.TotalGoalMetDays)
		if cur.Threshold < prev.Threshold {
			t.Fatalf("tier regressed from %s to %s on day %d", prev.Name, cur.Name, day)
		}
		prev = cur
	}
	if prev.Name != "ocean" {
		t.Errorf("final tier = %s, want ocean", prev.Name)
	}
}

func TestAllTasksDone(t *testing.T) {
	tests := []struct {
		hydration, diary, habits bool
		want                     bool
	}{
		{true, true, true, true},
		{false, true, true, false},
		{true, false, true, false},
		{true, true, false, false},
		{false, false, false, false},
	}
	for _, tt := range tests {
		if got := AllTasksDone(tt.hydration, tt.diary, tt.habits); got != tt.want {
			t.Errorf("AllTasksDone(%v, %v, %v) = %v", tt.hydration, tt.diary, tt.habits, got)
		}
	}
}

func TestApplyTaskCompletionStreak(t *testing.T) {
	st := TaskState{}
	week := "2025-W28"
	days := []string{"2025-07-07", "2025-07-08", "2025-07-09", "2025-07-10", "2025-07-11"}

	var all []Event
	for i, day := range days {
		var events []Event
		st, events = ApplyTaskCompletion(st, day, week, true, noPins)
		all = append(all, events...)

		// re-evaluation on the same day must not double count
		st, events = ApplyTaskCompletion(st, day, week, true, noPins)
		if len(events) != 0 {
			t.Fatalf("day %d re-apply emitted events: %v", i, events)
		}
	}

	if st.TotalTiersCompleted != 1 {
		t.Errorf("TotalTiersCompleted = %d, want 1", st.TotalTiersCompleted)
	}
	if st.WeeklyStreakCount != 0 {
		t.Errorf("WeeklyStreakCount = %d, want 0 after completing a streak", st.WeeklyStreakCount)
	}
	if countEvents(all, EventTierUnlocked) != 1 {
		t.Errorf("expected exactly one task unlock, got %v", all)
	}
	for _, e := range all {
		if e.Kind == EventTierUnlocked && (e.Type != TierTask || e.Tier.Name != "sprout") {
			t.Errorf("unlock = %s/%s, want task/sprout", e.Type, e.Tier.Name)
		}
	}
}

func TestApplyTaskCompletionWeekChangeResetsStreak(t *testing.T) {
	st := TaskState{WeekKey: "2025-W28", WeeklyStreakCount: 3, AllDoneDay: "2025-07-11"}

	st, events := ApplyTaskCompletion(st, "2025-07-14", "2025-W29", true, noPins)
	if st.WeekKey != "2025-W29" {
		t.Errorf("WeekKey = %s, want 2025-W29", st.WeekKey)
	}
	if st.WeeklyStreakCount != 1 {
		t.Errorf("WeeklyStreakCount = %d, want 1 after week rollover", st.WeeklyStreakCount)
	}
	if len(events) != 0 {
		t.Errorf("unexpected events: %v", events)
	}
}

func TestApplyTaskCompletionIncompleteDayIsNoop(t *testing.T) {
	st := TaskState{WeekKey: "2025-W28", WeeklyStreakCount: 2, AllDoneDay: "2025-07-08"}

	got, events := ApplyTaskCompletion(st, "2025-07-09", "2025-W28", false, noPins)
	if got != st || len(events) != 0 {
		t.Errorf("incomplete day mutated state: %+v events=%v", got, events)
	}
}

func TestWeekKey(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"2025-07-10T12:00", "2025-W28"},
		// ISO week 1 of 2026 starts Monday 2025-12-29
		{"2025-12-29T00:00", "2026-W01"},
		{"2025-12-28T23:59", "2025-W52"},
		{"2026-01-01T00:00", "2026-W01"},
	}
	for _, tt := range tests {
		ts, err := time.ParseInLocation("2006-01-02T15:04", tt.value, time.UTC)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.value, err)
		}
		if got := WeekKey(ts, time.UTC); got != tt.want {
			t.Errorf("WeekKey(%s) = %s, want %s", tt.value, got, tt.want)
		}
	}
}
