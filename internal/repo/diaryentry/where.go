// Code generated by ent, DO NOT EDIT.

package diaryentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nutrivida/nutrivida_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldPatientID, v))
}

// Day applies equality check predicate on the "day" field. It's identical to DayEQ.
func Day(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldDay, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldDescription, v))
}

// MediaKey applies equality check predicate on the "media_key" field. It's identical to MediaKeyEQ.
func MediaKey(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldMediaKey, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLTE(FieldPatientID, v))
}

// DayEQ applies the EQ predicate on the "day" field.
func DayEQ(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldDay, v))
}

// DayNEQ applies the NEQ predicate on the "day" field.
func DayNEQ(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNEQ(FieldDay, v))
}

// DayIn applies the In predicate on the "day" field.
func DayIn(vs ...string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldIn(FieldDay, vs...))
}

// DayNotIn applies the NotIn predicate on the "day" field.
func DayNotIn(vs ...string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNotIn(FieldDay, vs...))
}

// DayGT applies the GT predicate on the "day" field.
func DayGT(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGT(FieldDay, v))
}

// DayGTE applies the GTE predicate on the "day" field.
func DayGTE(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGTE(FieldDay, v))
}

// DayLT applies the LT predicate on the "day" field.
func DayLT(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLT(FieldDay, v))
}

// DayLTE applies the LTE predicate on the "day" field.
func DayLTE(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLTE(FieldDay, v))
}

// DayContains applies the Contains predicate on the "day" field.
func DayContains(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldContains(FieldDay, v))
}

// DayHasPrefix applies the HasPrefix predicate on the "day" field.
func DayHasPrefix(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldHasPrefix(FieldDay, v))
}

// DayHasSuffix applies the HasSuffix predicate on the "day" field.
func DayHasSuffix(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldHasSuffix(FieldDay, v))
}

// DayEqualFold applies the EqualFold predicate on the "day" field.
func DayEqualFold(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEqualFold(FieldDay, v))
}

// DayContainsFold applies the ContainsFold predicate on the "day" field.
func DayContainsFold(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldContainsFold(FieldDay, v))
}

// MealEQ applies the EQ predicate on the "meal" field.
func MealEQ(v Meal) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldMeal, v))
}

// MealNEQ applies the NEQ predicate on the "meal" field.
func MealNEQ(v Meal) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNEQ(FieldMeal, v))
}

// MealIn applies the In predicate on the "meal" field.
func MealIn(vs ...Meal) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldIn(FieldMeal, vs...))
}

// MealNotIn applies the NotIn predicate on the "meal" field.
func MealNotIn(vs ...Meal) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNotIn(FieldMeal, vs...))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldContainsFold(FieldDescription, v))
}

// MediaKeyEQ applies the EQ predicate on the "media_key" field.
func MediaKeyEQ(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldMediaKey, v))
}

// MediaKeyNEQ applies the NEQ predicate on the "media_key" field.
func MediaKeyNEQ(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNEQ(FieldMediaKey, v))
}

// MediaKeyIn applies the In predicate on the "media_key" field.
func MediaKeyIn(vs ...string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldIn(FieldMediaKey, vs...))
}

// MediaKeyNotIn applies the NotIn predicate on the "media_key" field.
func MediaKeyNotIn(vs ...string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNotIn(FieldMediaKey, vs...))
}

// MediaKeyGT applies the GT predicate on the "media_key" field.
func MediaKeyGT(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGT(FieldMediaKey, v))
}

// MediaKeyGTE applies the GTE predicate on the "media_key" field.
func MediaKeyGTE(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGTE(FieldMediaKey, v))
}

// MediaKeyLT applies the LT predicate on the "media_key" field.
func MediaKeyLT(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLT(FieldMediaKey, v))
}

// MediaKeyLTE applies the LTE predicate on the "media_key" field.
func MediaKeyLTE(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLTE(FieldMediaKey, v))
}

// MediaKeyContains applies the Contains predicate on the "media_key" field.
func MediaKeyContains(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldContains(FieldMediaKey, v))
}

// MediaKeyHasPrefix applies the HasPrefix predicate on the "media_key" field.
func MediaKeyHasPrefix(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldHasPrefix(FieldMediaKey, v))
}

// MediaKeyHasSuffix applies the HasSuffix predicate on the "media_key" field.
func MediaKeyHasSuffix(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldHasSuffix(FieldMediaKey, v))
}

// MediaKeyIsNil applies the IsNil predicate on the "media_key" field.
func MediaKeyIsNil() predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldIsNull(FieldMediaKey))
}

// MediaKeyNotNil applies the NotNil predicate on the "media_key" field.
func MediaKeyNotNil() predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNotNull(FieldMediaKey))
}

// MediaKeyEqualFold applies the EqualFold predicate on the "media_key" field.
func MediaKeyEqualFold(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEqualFold(FieldMediaKey, v))
}

// MediaKeyContainsFold applies the ContainsFold predicate on the "media_key" field.
func MediaKeyContainsFold(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldContainsFold(FieldMediaKey, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DiaryEntry) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DiaryEntry) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DiaryEntry) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.NotPredicates(p))
}
