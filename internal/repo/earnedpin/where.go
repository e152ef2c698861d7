// Code generated by ent, DO NOT EDIT.

package earnedpin

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nutrivida/nutrivida_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldEQ(FieldCreatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldEQ(FieldPatientID, v))
}

// TierName applies equality check predicate on the "tier_name" field. It's identical to TierNameEQ.
func TierName(v string) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldEQ(FieldTierName, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldLTE(FieldCreatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldLTE(FieldPatientID, v))
}

// TierNameEQ applies the EQ predicate on the "tier_name" field.
func TierNameEQ(v string) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldEQ(FieldTierName, v))
}

// TierNameNEQ applies the NEQ predicate on the "tier_name" field.
func TierNameNEQ(v string) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldNEQ(FieldTierName, v))
}

// TierNameIn applies the In predicate on the "tier_name" field.
func TierNameIn(vs ...string) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldIn(FieldTierName, vs...))
}

// TierNameNotIn applies the NotIn predicate on the "tier_name" field.
func TierNameNotIn(vs ...string) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldNotIn(FieldTierName, vs...))
}

// TierNameGT applies the GT predicate on the "tier_name" field.
func TierNameGT(v string) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldGT(FieldTierName, v))
}

// TierNameGTE applies the GTE predicate on the "tier_name" field.
func TierNameGTE(v string) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldGTE(FieldTierName, v))
}

// TierNameLT applies the LT predicate on the "tier_name" field.
func TierNameLT(v string) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldLT(FieldTierName, v))
}

// TierNameLTE applies the LTE predicate on the "tier_name" field.
func TierNameLTE(v string) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldLTE(FieldTierName, v))
}

// TierNameContains applies the Contains predicate on the "tier_name" field.
func TierNameContains(v string) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldContains(FieldTierName, v))
}

// TierNameHasPrefix applies the HasPrefix predicate on the "tier_name" field.
func TierNameHasPrefix(v string) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldHasPrefix(FieldTierName, v))
}

// TierNameHasSuffix applies the HasSuffix predicate on the "tier_name" field.
func TierNameHasSuffix(v string) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldHasSuffix(FieldTierName, v))
}

// TierNameEqualFold applies the EqualFold predicate on the "tier_name" field.
func TierNameEqualFold(v string) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldEqualFold(FieldTierName, v))
}

// TierNameContainsFold applies the ContainsFold predicate on the "tier_name" field.
func TierNameContainsFold(v string) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldContainsFold(FieldTierName, v))
}

// TierTypeEQ applies the EQ predicate on the "tier_type" field.
func TierTypeEQ(v TierType) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldEQ(FieldTierType, v))
}

// TierTypeNEQ applies the NEQ predicate on the "tier_type" field.
func TierTypeNEQ(v TierType) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldNEQ(FieldTierType, v))
}

// TierTypeIn applies the In predicate on the "tier_type" field.
func TierTypeIn(vs ...TierType) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldIn(FieldTierType, vs...))
}

// TierTypeNotIn applies the NotIn predicate on the "tier_type" field.
func TierTypeNotIn(vs ...TierType) predicate.EarnedPin {
	return predicate.EarnedPin(sql.FieldNotIn(FieldTierType, vs...))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EarnedPin) predicate.EarnedPin {
	return predicate.EarnedPin(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EarnedPin) predicate.EarnedPin {
	return predicate.EarnedPin(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EarnedPin) predicate.EarnedPin {
	return predicate.EarnedPin(sql.NotPredicates(p))
}
