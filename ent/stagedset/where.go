// Code generated by ent, DO NOT EDIT.

package stagedset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jaemin/econquiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldLTE(FieldID, id))
}

// SetID applies equality check predicate on the "set_id" field. It's identical to SetIDEQ.
func SetID(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldEQ(FieldSetID, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldEQ(FieldSource, v))
}

// Payload applies equality check predicate on the "payload" field. It's identical to PayloadEQ.
func Payload(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldEQ(FieldPayload, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldEQ(FieldCreatedAt, v))
}

// SetIDEQ applies the EQ predicate on the "set_id" field.
func SetIDEQ(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldEQ(FieldSetID, v))
}

// SetIDNEQ applies the NEQ predicate on the "set_id" field.
func SetIDNEQ(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldNEQ(FieldSetID, v))
}

// SetIDIn applies the In predicate on the "set_id" field.
func SetIDIn(vs ...string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldIn(FieldSetID, vs...))
}

// SetIDNotIn applies the NotIn predicate on the "set_id" field.
func SetIDNotIn(vs ...string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldNotIn(FieldSetID, vs...))
}

// SetIDGT applies the GT predicate on the "set_id" field.
func SetIDGT(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldGT(FieldSetID, v))
}

// SetIDGTE applies the GTE predicate on the "set_id" field.
func SetIDGTE(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldGTE(FieldSetID, v))
}

// SetIDLT applies the LT predicate on the "set_id" field.
func SetIDLT(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldLT(FieldSetID, v))
}

// SetIDLTE applies the LTE predicate on the "set_id" field.
func SetIDLTE(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldLTE(FieldSetID, v))
}

// SetIDContains applies the Contains predicate on the "set_id" field.
func SetIDContains(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldContains(FieldSetID, v))
}

// SetIDHasPrefix applies the HasPrefix predicate on the "set_id" field.
func SetIDHasPrefix(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldHasPrefix(FieldSetID, v))
}

// SetIDHasSuffix applies the HasSuffix predicate on the "set_id" field.
func SetIDHasSuffix(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldHasSuffix(FieldSetID, v))
}

// SetIDEqualFold applies the EqualFold predicate on the "set_id" field.
func SetIDEqualFold(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldEqualFold(FieldSetID, v))
}

// SetIDContainsFold applies the ContainsFold predicate on the "set_id" field.
func SetIDContainsFold(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldContainsFold(FieldSetID, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldContainsFold(FieldSource, v))
}

// PayloadEQ applies the EQ predicate on the "payload" field.
func PayloadEQ(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldEQ(FieldPayload, v))
}

// PayloadNEQ applies the NEQ predicate on the "payload" field.
func PayloadNEQ(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldNEQ(FieldPayload, v))
}

// PayloadIn applies the In predicate on the "payload" field.
func PayloadIn(vs ...string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldIn(FieldPayload, vs...))
}

// PayloadNotIn applies the NotIn predicate on the "payload" field.
func PayloadNotIn(vs ...string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldNotIn(FieldPayload, vs...))
}

// PayloadGT applies the GT predicate on the "payload" field.
func PayloadGT(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldGT(FieldPayload, v))
}

// PayloadGTE applies the GTE predicate on the "payload" field.
func PayloadGTE(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldGTE(FieldPayload, v))
}

// PayloadLT applies the LT predicate on the "payload" field.
func PayloadLT(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldLT(FieldPayload, v))
}

// PayloadLTE applies the LTE predicate on the "payload" field.
func PayloadLTE(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldLTE(FieldPayload, v))
}

// PayloadContains applies the Contains predicate on the "payload" field.
func PayloadContains(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldContains(FieldPayload, v))
}

// PayloadHasPrefix applies the HasPrefix predicate on the "payload" field.
func PayloadHasPrefix(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldHasPrefix(FieldPayload, v))
}

// PayloadHasSuffix applies the HasSuffix predicate on the "payload" field.
func PayloadHasSuffix(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldHasSuffix(FieldPayload, v))
}

// PayloadEqualFold applies the EqualFold predicate on the "payload" field.
func PayloadEqualFold(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldEqualFold(FieldPayload, v))
}

// PayloadContainsFold applies the ContainsFold predicate on the "payload" field.
func PayloadContainsFold(v string) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldContainsFold(FieldPayload, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StagedSet {
	return predicate.StagedSet(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StagedSet) predicate.StagedSet {
	return predicate.StagedSet(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StagedSet) predicate.StagedSet {
	return predicate.StagedSet(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StagedSet) predicate.StagedSet {
	return predicate.StagedSet(sql.NotPredicates(p))
}
