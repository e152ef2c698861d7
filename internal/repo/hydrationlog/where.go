// Code generated by ent, DO NOT EDIT.

package hydrationlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nutrivida/nutrivida_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldEQ(FieldPatientID, v))
}

// Day applies equality check predicate on the "day" field. It's identical to DayEQ.
func Day(v string) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldEQ(FieldDay, v))
}

// IntakeMl applies equality check predicate on the "intake_ml" field. It's identical to IntakeMlEQ.
func IntakeMl(v int) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldEQ(FieldIntakeMl, v))
}

// GoalMl applies equality check predicate on the "goal_ml" field. It's identical to GoalMlEQ.
func GoalMl(v int) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldEQ(FieldGoalMl, v))
}

// GoalMet applies equality check predicate on the "goal_met" field. It's identical to GoalMetEQ.
func GoalMet(v bool) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldEQ(FieldGoalMet, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldLTE(FieldPatientID, v))
}

// DayEQ applies the EQ predicate on the "day" field.
func DayEQ(v string) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldEQ(FieldDay, v))
}

// DayNEQ applies the NEQ predicate on the "day" field.
func DayNEQ(v string) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldNEQ(FieldDay, v))
}

// DayIn applies the In predicate on the "day" field.
func DayIn(vs ...string) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldIn(FieldDay, vs...))
}

// DayNotIn applies the NotIn predicate on the "day" field.
func DayNotIn(vs ...string) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldNotIn(FieldDay, vs...))
}

// DayGT applies the GT predicate on the "day" field.
func DayGT(v string) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldGT(FieldDay, v))
}

// DayGTE applies the GTE predicate on the "day" field.
func DayGTE(v string) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldGTE(FieldDay, v))
}

// DayLT applies the LT predicate on the "day" field.
func DayLT(v string) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldLT(FieldDay, v))
}

// DayLTE applies the LTE predicate on the "day" field.
func DayLTE(v string) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldLTE(FieldDay, v))
}

// DayContains applies the Contains predicate on the "day" field.
func DayContains(v string) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldContains(FieldDay, v))
}

// DayHasPrefix applies the HasPrefix predicate on the "day" field.
func DayHasPrefix(v string) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldHasPrefix(FieldDay, v))
}

// DayHasSuffix applies the HasSuffix predicate on the "day" field.
func DayHasSuffix(v string) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldHasSuffix(FieldDay, v))
}

// DayEqualFold applies the EqualFold predicate on the "day" field.
func DayEqualFold(v string) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldEqualFold(FieldDay, v))
}

// DayContainsFold applies the ContainsFold predicate on the "day" field.
func DayContainsFold(v string) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldContainsFold(FieldDay, v))
}

// IntakeMlEQ applies the EQ predicate on the "intake_ml" field.
func IntakeMlEQ(v int) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldEQ(FieldIntakeMl, v))
}

// IntakeMlNEQ applies the NEQ predicate on the "intake_ml" field.
func IntakeMlNEQ(v int) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldNEQ(FieldIntakeMl, v))
}

// IntakeMlIn applies the In predicate on the "intake_ml" field.
func IntakeMlIn(vs ...int) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldIn(FieldIntakeMl, vs...))
}

// IntakeMlNotIn applies the NotIn predicate on the "intake_ml" field.
func IntakeMlNotIn(vs ...int) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldNotIn(FieldIntakeMl, vs...))
}

// IntakeMlGT applies the GT predicate on the "intake_ml" field.
func IntakeMlGT(v int) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldGT(FieldIntakeMl, v))
}

// IntakeMlGTE applies the GTE predicate on the "intake_ml" field.
func IntakeMlGTE(v int) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldGTE(FieldIntakeMl, v))
}

// IntakeMlLT applies the LT predicate on the "intake_ml" field.
func IntakeMlLT(v int) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldLT(FieldIntakeMl, v))
}

// IntakeMlLTE applies the LTE predicate on the "intake_ml" field.
func IntakeMlLTE(v int) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldLTE(FieldIntakeMl, v))
}

// GoalMlEQ applies the EQ predicate on the "goal_ml" field.
func GoalMlEQ(v int) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldEQ(FieldGoalMl, v))
}

// GoalMlNEQ applies the NEQ predicate on the "goal_ml" field.
func GoalMlNEQ(v int) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldNEQ(FieldGoalMl, v))
}

// GoalMlIn applies the In predicate on the "goal_ml" field.
func GoalMlIn(vs ...int) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldIn(FieldGoalMl, vs...))
}

// GoalMlNotIn applies the NotIn predicate on the "goal_ml" field.
func GoalMlNotIn(vs ...int) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldNotIn(FieldGoalMl, vs...))
}

// GoalMlGT applies the GT predicate on the "goal_ml" field.
func GoalMlGT(v int) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldGT(FieldGoalMl, v))
}

// GoalMlGTE applies the GTE predicate on the "goal_ml" field.
func GoalMlGTE(v int) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldGTE(FieldGoalMl, v))
}

// GoalMlLT applies the LT predicate on the "goal_ml" field.
func GoalMlLT(v int) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldLT(FieldGoalMl, v))
}

// GoalMlLTE applies the LTE predicate on the "goal_ml" field.
func GoalMlLTE(v int) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldLTE(FieldGoalMl, v))
}

// GoalMetEQ applies the EQ predicate on the "goal_met" field.
func GoalMetEQ(v bool) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldEQ(FieldGoalMet, v))
}

// GoalMetNEQ applies the NEQ predicate on the "goal_met" field.
func GoalMetNEQ(v bool) predicate.HydrationLog {
	return predicate.HydrationLog(sql.FieldNEQ(FieldGoalMet, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HydrationLog) predicate.HydrationLog {
	return predicate.HydrationLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HydrationLog) predicate.HydrationLog {
	return predicate.HydrationLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HydrationLog) predicate.HydrationLog {
	return predicate.HydrationLog(sql.NotPredicates(p))
}
