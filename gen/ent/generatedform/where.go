// Code generated by ent, DO NOT EDIT.

package generatedform

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dfmora/car2data/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldEQ(FieldOwnerID, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldEQ(FieldDocumentID, v))
}

// FormType applies equality check predicate on the "form_type" field. It's identical to FormTypeEQ.
func FormType(v string) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldEQ(FieldFormType, v))
}

// OutputPath applies equality check predicate on the "output_path" field. It's identical to OutputPathEQ.
func OutputPath(v string) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldEQ(FieldOutputPath, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldEQ(FieldCreatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uuid.UUID) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uuid.UUID) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uuid.UUID) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uuid.UUID) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldLTE(FieldOwnerID, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldNotIn(FieldDocumentID, vs...))
}

// FormTypeEQ applies the EQ predicate on the "form_type" field.
func FormTypeEQ(v string) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldEQ(FieldFormType, v))
}

// FormTypeNEQ applies the NEQ predicate on the "form_type" field.
func FormTypeNEQ(v string) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldNEQ(FieldFormType, v))
}

// FormTypeIn applies the In predicate on the "form_type" field.
func FormTypeIn(vs ...string) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldIn(FieldFormType, vs...))
}

// FormTypeNotIn applies the NotIn predicate on the "form_type" field.
func FormTypeNotIn(vs ...string) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldNotIn(FieldFormType, vs...))
}

// FormTypeGT applies the GT predicate on the "form_type" field.
func FormTypeGT(v string) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldGT(FieldFormType, v))
}

// FormTypeGTE applies the GTE predicate on the "form_type" field.
func FormTypeGTE(v string) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldGTE(FieldFormType, v))
}

// FormTypeLT applies the LT predicate on the "form_type" field.
func FormTypeLT(v string) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldLT(FieldFormType, v))
}

// FormTypeLTE applies the LTE predicate on the "form_type" field.
func FormTypeLTE(v string) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldLTE(FieldFormType, v))
}

// FormTypeContains applies the Contains predicate on the "form_type" field.
func FormTypeContains(v string) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldContains(FieldFormType, v))
}

// FormTypeHasPrefix applies the HasPrefix predicate on the "form_type" field.
func FormTypeHasPrefix(v string) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldHasPrefix(FieldFormType, v))
}

// FormTypeHasSuffix applies the HasSuffix predicate on the "form_type" field.
func FormTypeHasSuffix(v string) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldHasSuffix(FieldFormType, v))
}

// FormTypeEqualFold applies the EqualFold predicate on the "form_type" field.
func FormTypeEqualFold(v string) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldEqualFold(FieldFormType, v))
}

// FormTypeContainsFold applies the ContainsFold predicate on the "form_type" field.
func FormTypeContainsFold(v string) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldContainsFold(FieldFormType, v))
}

// OutputPathEQ applies the EQ predicate on the "output_path" field.
func OutputPathEQ(v string) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldEQ(FieldOutputPath, v))
}

// OutputPathNEQ applies the NEQ predicate on the "output_path" field.
func OutputPathNEQ(v string) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldNEQ(FieldOutputPath, v))
}

// OutputPathIn applies the In predicate on the "output_path" field.
func OutputPathIn(vs ...string) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldIn(FieldOutputPath, vs...))
}

// OutputPathNotIn applies the NotIn predicate on the "output_path" field.
func OutputPathNotIn(vs ...string) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldNotIn(FieldOutputPath, vs...))
}

// OutputPathGT applies the GT predicate on the "output_path" field.
func OutputPathGT(v string) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldGT(FieldOutputPath, v))
}

// OutputPathGTE applies the GTE predicate on the "output_path" field.
func OutputPathGTE(v string) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldGTE(FieldOutputPath, v))
}

// OutputPathLT applies the LT predicate on the "output_path" field.
func OutputPathLT(v string) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldLT(FieldOutputPath, v))
}

// OutputPathLTE applies the LTE predicate on the "output_path" field.
func OutputPathLTE(v string) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldLTE(FieldOutputPath, v))
}

// OutputPathContains applies the Contains predicate on the "output_path" field.
func OutputPathContains(v string) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldContains(FieldOutputPath, v))
}

// OutputPathHasPrefix applies the HasPrefix predicate on the "output_path" field.
func OutputPathHasPrefix(v string) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldHasPrefix(FieldOutputPath, v))
}

// OutputPathHasSuffix applies the HasSuffix predicate on the "output_path" field.
func OutputPathHasSuffix(v string) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldHasSuffix(FieldOutputPath, v))
}

// OutputPathEqualFold applies the EqualFold predicate on the "output_path" field.
func OutputPathEqualFold(v string) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldEqualFold(FieldOutputPath, v))
}

// OutputPathContainsFold applies the ContainsFold predicate on the "output_path" field.
func OutputPathContainsFold(v string) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldContainsFold(FieldOutputPath, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.GeneratedForm {
	return predicate.GeneratedForm(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.GeneratedForm {
	return predicate.GeneratedForm(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GeneratedForm) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GeneratedForm) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GeneratedForm) predicate.GeneratedForm {
	return predicate.GeneratedForm(sql.NotPredicates(p))
}
