// Code generated by ent, DO NOT EDIT.

package habitcheck

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nutrivida/nutrivida_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldEQ(FieldCreatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldEQ(FieldPatientID, v))
}

// HabitID applies equality check predicate on the "habit_id" field. It's identical to HabitIDEQ.
func HabitID(v uuid.UUID) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldEQ(FieldHabitID, v))
}

// Day applies equality check predicate on the "day" field. It's identical to DayEQ.
func Day(v string) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldEQ(FieldDay, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldLTE(FieldCreatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldLTE(FieldPatientID, v))
}

// HabitIDEQ applies the EQ predicate on the "habit_id" field.
func HabitIDEQ(v uuid.UUID) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldEQ(FieldHabitID, v))
}

// HabitIDNEQ applies the NEQ predicate on the "habit_id" field.
func HabitIDNEQ(v uuid.UUID) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldNEQ(FieldHabitID, v))
}

// HabitIDIn applies the In predicate on the "habit_id" field.
func HabitIDIn(vs ...uuid.UUID) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldIn(FieldHabitID, vs...))
}

// HabitIDNotIn applies the NotIn predicate on the "habit_id" field.
func HabitIDNotIn(vs ...uuid.UUID) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldNotIn(FieldHabitID, vs...))
}

// HabitIDGT applies the GT predicate on the "habit_id" field.
func HabitIDGT(v uuid.UUID) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldGT(FieldHabitID, v))
}

// HabitIDGTE applies the GTE predicate on the "habit_id" field.
func HabitIDGTE(v uuid.UUID) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldGTE(FieldHabitID, v))
}

// HabitIDLT applies the LT predicate on the "habit_id" field.
func HabitIDLT(v uuid.UUID) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldLT(FieldHabitID, v))
}

// HabitIDLTE applies the LTE predicate on the "habit_id" field.
func HabitIDLTE(v uuid.UUID) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldLTE(FieldHabitID, v))
}

// DayEQ applies the EQ predicate on the "day" field.
func DayEQ(v string) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldEQ(FieldDay, v))
}

// DayNEQ applies the NEQ predicate on the "day" field.
func DayNEQ(v string) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldNEQ(FieldDay, v))
}

// DayIn applies the In predicate on the "day" field.
func DayIn(vs ...string) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldIn(FieldDay, vs...))
}

// DayNotIn applies the NotIn predicate on the "day" field.
func DayNotIn(vs ...string) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldNotIn(FieldDay, vs...))
}

// DayGT applies the GT predicate on the "day" field.
func DayGT(v string) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldGT(FieldDay, v))
}

// DayGTE applies the GTE predicate on the "day" field.
func DayGTE(v string) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldGTE(FieldDay, v))
}

// DayLT applies the LT predicate on the "day" field.
func DayLT(v string) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldLT(FieldDay, v))
}

// DayLTE applies the LTE predicate on the "day" field.
func DayLTE(v string) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldLTE(FieldDay, v))
}

// DayContains applies the Contains predicate on the "day" field.
func DayContains(v string) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldContains(FieldDay, v))
}

// DayHasPrefix applies the HasPrefix predicate on the "day" field.
func DayHasPrefix(v string) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldHasPrefix(FieldDay, v))
}

// DayHasSuffix applies the HasSuffix predicate on the "day" field.
func DayHasSuffix(v string) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldHasSuffix(FieldDay, v))
}

// DayEqualFold applies the EqualFold predicate on the "day" field.
func DayEqualFold(v string) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldEqualFold(FieldDay, v))
}

// DayContainsFold applies the ContainsFold predicate on the "day" field.
func DayContainsFold(v string) predicate.HabitCheck {
	return predicate.HabitCheck(sql.FieldContainsFold(FieldDay, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HabitCheck) predicate.HabitCheck {
	return predicate.HabitCheck(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HabitCheck) predicate.HabitCheck {
	return predicate.HabitCheck(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HabitCheck) predicate.HabitCheck {
	return predicate.HabitCheck(sql.NotPredicates(p))
}
