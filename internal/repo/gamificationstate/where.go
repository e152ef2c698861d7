// Code generated by ent, DO NOT EDIT.

package gamificationstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nutrivida/nutrivida_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldEQ(FieldPatientID, v))
}

// TotalGoalMetDays applies equality check predicate on the "total_goal_met_days" field. It's identical to TotalGoalMetDaysEQ.
func TotalGoalMetDays(v int) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldEQ(FieldTotalGoalMetDays, v))
}

// WeekKey applies equality check predicate on the "week_key" field. It's identical to WeekKeyEQ.
func WeekKey(v string) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldEQ(FieldWeekKey, v))
}

// WeeklyStreakCount applies equality check predicate on the "weekly_streak_count" field. It's identical to WeeklyStreakCountEQ.
func WeeklyStreakCount(v int) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldEQ(FieldWeeklyStreakCount, v))
}

// TotalTaskTiersCompleted applies equality check predicate on the "total_task_tiers_completed" field. It's identical to TotalTaskTiersCompletedEQ.
func TotalTaskTiersCompleted(v int) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldEQ(FieldTotalTaskTiersCompleted, v))
}

// AllDoneDay applies equality check predicate on the "all_done_day" field. It's identical to AllDoneDayEQ.
func AllDoneDay(v string) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldEQ(FieldAllDoneDay, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldLTE(FieldPatientID, v))
}

// TotalGoalMetDaysEQ applies the EQ predicate on the "total_goal_met_days" field.
func TotalGoalMetDaysEQ(v int) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldEQ(FieldTotalGoalMetDays, v))
}

// TotalGoalMetDaysNEQ applies the NEQ predicate on the "total_goal_met_days" field.
func TotalGoalMetDaysNEQ(v int) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldNEQ(FieldTotalGoalMetDays, v))
}

// TotalGoalMetDaysIn applies the In predicate on the "total_goal_met_days" field.
func TotalGoalMetDaysIn(vs ...int) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldIn(FieldTotalGoalMetDays, vs...))
}

// TotalGoalMetDaysNotIn applies the NotIn predicate on the "total_goal_met_days" field.
func TotalGoalMetDaysNotIn(vs ...int) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldNotIn(FieldTotalGoalMetDays, vs...))
}

// TotalGoalMetDaysGT applies the GT predicate on the "total_goal_met_days" field.
func TotalGoalMetDaysGT(v int) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldGT(FieldTotalGoalMetDays, v))
}

// TotalGoalMetDaysGTE applies the GTE predicate on the "total_goal_met_days" field.
func TotalGoalMetDaysGTE(v int) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldGTE(FieldTotalGoalMetDays, v))
}

// TotalGoalMetDaysLT applies the LT predicate on the "total_goal_met_days" field.
func TotalGoalMetDaysLT(v int) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldLT(FieldTotalGoalMetDays, v))
}

// TotalGoalMetDaysLTE applies the LTE predicate on the "total_goal_met_days" field.
func TotalGoalMetDaysLTE(v int) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldLTE(FieldTotalGoalMetDays, v))
}

// WeekKeyEQ applies the EQ predicate on the "week_key" field.
func WeekKeyEQ(v string) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldEQ(FieldWeekKey, v))
}

// WeekKeyNEQ applies the NEQ predicate on the "week_key" field.
func WeekKeyNEQ(v string) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldNEQ(FieldWeekKey, v))
}

// WeekKeyIn applies the In predicate on the "week_key" field.
func WeekKeyIn(vs ...string) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldIn(FieldWeekKey, vs...))
}

// WeekKeyNotIn applies the NotIn predicate on the "week_key" field.
func WeekKeyNotIn(vs ...string) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldNotIn(FieldWeekKey, vs...))
}

// WeekKeyGT applies the GT predicate on the "week_key" field.
func WeekKeyGT(v string) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldGT(FieldWeekKey, v))
}

// WeekKeyGTE applies the GTE predicate on the "week_key" field.
func WeekKeyGTE(v string) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldGTE(FieldWeekKey, v))
}

// WeekKeyLT applies the LT predicate on the "week_key" field.
func WeekKeyLT(v string) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldLT(FieldWeekKey, v))
}

// WeekKeyLTE applies the LTE predicate on the "week_key" field.
func WeekKeyLTE(v string) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldLTE(FieldWeekKey, v))
}

// WeekKeyContains applies the Contains predicate on the "week_key" field.
func WeekKeyContains(v string) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldContains(FieldWeekKey, v))
}

// WeekKeyHasPrefix applies the HasPrefix predicate on the "week_key" field.
func WeekKeyHasPrefix(v string) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldHasPrefix(FieldWeekKey, v))
}

// WeekKeyHasSuffix applies the HasSuffix predicate on the "week_key" field.
func WeekKeyHasSuffix(v string) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldHasSuffix(FieldWeekKey, v))
}

// WeekKeyEqualFold applies the EqualFold predicate on the "week_key" field.
func WeekKeyEqualFold(v string) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldEqualFold(FieldWeekKey, v))
}

// WeekKeyContainsFold applies the ContainsFold predicate on the "week_key" field.
func WeekKeyContainsFold(v string) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldContainsFold(FieldWeekKey, v))
}

// WeeklyStreakCountEQ applies the EQ predicate on the "weekly_streak_count" field.
func WeeklyStreakCountEQ(v int) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldEQ(FieldWeeklyStreakCount, v))
}

// WeeklyStreakCountNEQ applies the NEQ predicate on the "weekly_streak_count" field.
func WeeklyStreakCountNEQ(v int) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldNEQ(FieldWeeklyStreakCount, v))
}

// WeeklyStreakCountIn applies the In predicate on the "weekly_streak_count" field.
func WeeklyStreakCountIn(vs ...int) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldIn(FieldWeeklyStreakCount, vs...))
}

// WeeklyStreakCountNotIn applies the NotIn predicate on the "weekly_streak_count" field.
func WeeklyStreakCountNotIn(vs ...int) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldNotIn(FieldWeeklyStreakCount, vs...))
}

// WeeklyStreakCountGT applies the GT predicate on the "weekly_streak_count" field.
func WeeklyStreakCountGT(v int) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldGT(FieldWeeklyStreakCount, v))
}

// WeeklyStreakCountGTE applies the GTE predicate on the "weekly_streak_count" field.
func WeeklyStreakCountGTE(v int) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldGTE(FieldWeeklyStreakCount, v))
}

// WeeklyStreakCountLT applies the LT predicate on the "weekly_streak_count" field.
func WeeklyStreakCountLT(v int) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldLT(FieldWeeklyStreakCount, v))
}

// WeeklyStreakCountLTE applies the LTE predicate on the "weekly_streak_count" field.
func WeeklyStreakCountLTE(v int) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldLTE(FieldWeeklyStreakCount, v))
}

// TotalTaskTiersCompletedEQ applies the EQ predicate on the "total_task_tiers_completed" field.
func TotalTaskTiersCompletedEQ(v int) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldEQ(FieldTotalTaskTiersCompleted, v))
}

// TotalTaskTiersCompletedNEQ applies the NEQ predicate on the "total_task_tiers_completed" field.
func TotalTaskTiersCompletedNEQ(v int) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldNEQ(FieldTotalTaskTiersCompleted, v))
}

// TotalTaskTiersCompletedIn applies the In predicate on the "total_task_tiers_completed" field.
func TotalTaskTiersCompletedIn(vs ...int) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldIn(FieldTotalTaskTiersCompleted, vs...))
}

// TotalTaskTiersCompletedNotIn applies the NotIn predicate on the "total_task_tiers_completed" field.
func TotalTaskTiersCompletedNotIn(vs ...int) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldNotIn(FieldTotalTaskTiersCompleted, vs...))
}

// TotalTaskTiersCompletedGT applies the GT predicate on the "total_task_tiers_completed" field.
func TotalTaskTiersCompletedGT(v int) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldGT(FieldTotalTaskTiersCompleted, v))
}

// TotalTaskTiersCompletedGTE applies the GTE predicate on the "total_task_tiers_completed" field.
func TotalTaskTiersCompletedGTE(v int) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldGTE(FieldTotalTaskTiersCompleted, v))
}

// TotalTaskTiersCompletedLT applies the LT predicate on the "total_task_tiers_completed" field.
func TotalTaskTiersCompletedLT(v int) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldLT(FieldTotalTaskTiersCompleted, v))
}

// TotalTaskTiersCompletedLTE applies the LTE predicate on the "total_task_tiers_completed" field.
func TotalTaskTiersCompletedLTE(v int) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldLTE(FieldTotalTaskTiersCompleted, v))
}

// AllDoneDayEQ applies the EQ predicate on the "all_done_day" field.
func AllDoneDayEQ(v string) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldEQ(FieldAllDoneDay, v))
}

// AllDoneDayNEQ applies the NEQ predicate on the "all_done_day" field.
func AllDoneDayNEQ(v string) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldNEQ(FieldAllDoneDay, v))
}

// AllDoneDayIn applies the In predicate on the "all_done_day" field.
func AllDoneDayIn(vs ...string) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldIn(FieldAllDoneDay, vs...))
}

// AllDoneDayNotIn applies the NotIn predicate on the "all_done_day" field.
func AllDoneDayNotIn(vs ...string) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldNotIn(FieldAllDoneDay, vs...))
}

// AllDoneDayGT applies the GT predicate on the "all_done_day" field.
func AllDoneDayGT(v string) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldGT(FieldAllDoneDay, v))
}

// AllDoneDayGTE applies the GTE predicate on the "all_done_day" field.
func AllDoneDayGTE(v string) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldGTE(FieldAllDoneDay, v))
}

// AllDoneDayLT applies the LT predicate on the "all_done_day" field.
func AllDoneDayLT(v string) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldLT(FieldAllDoneDay, v))
}

// AllDoneDayLTE applies the LTE predicate on the "all_done_day" field.
func AllDoneDayLTE(v string) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldLTE(FieldAllDoneDay, v))
}

// AllDoneDayContains applies the Contains predicate on the "all_done_day" field.
func AllDoneDayContains(v string) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldContains(FieldAllDoneDay, v))
}

// AllDoneDayHasPrefix applies the HasPrefix predicate on the "all_done_day" field.
func AllDoneDayHasPrefix(v string) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldHasPrefix(FieldAllDoneDay, v))
}

// AllDoneDayHasSuffix applies the HasSuffix predicate on the "all_done_day" field.
func AllDoneDayHasSuffix(v string) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldHasSuffix(FieldAllDoneDay, v))
}

// AllDoneDayEqualFold applies the EqualFold predicate on the "all_done_day" field.
func AllDoneDayEqualFold(v string) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldEqualFold(FieldAllDoneDay, v))
}

// AllDoneDayContainsFold applies the ContainsFold predicate on the "all_done_day" field.
func AllDoneDayContainsFold(v string) predicate.GamificationState {
	return predicate.GamificationState(sql.FieldContainsFold(FieldAllDoneDay, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GamificationState) predicate.GamificationState {
	return predicate.GamificationState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GamificationState) predicate.GamificationState {
	return predicate.GamificationState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GamificationState) predicate.GamificationState {
	return predicate.GamificationState(sql.NotPredicates(p))
}
