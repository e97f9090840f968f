// Code generated by ent, DO NOT EDIT.

package blueprintcollection

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dsp2b/dsp2b/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldLTE(FieldID, id))
}

// BlueprintID applies equality check predicate on the "blueprint_id" field. It's identical to BlueprintIDEQ.
func BlueprintID(v uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldEQ(FieldBlueprintID, v))
}

// CollectionID applies equality check predicate on the "collection_id" field. It's identical to CollectionIDEQ.
func CollectionID(v uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldEQ(FieldCollectionID, v))
}

// RootCollectionID applies equality check predicate on the "root_collection_id" field. It's identical to RootCollectionIDEQ.
func RootCollectionID(v uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldEQ(FieldRootCollectionID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldEQ(FieldCreatedAt, v))
}

// BlueprintIDEQ applies the EQ predicate on the "blueprint_id" field.
func BlueprintIDEQ(v uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldEQ(FieldBlueprintID, v))
}

// BlueprintIDNEQ applies the NEQ predicate on the "blueprint_id" field.
func BlueprintIDNEQ(v uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldNEQ(FieldBlueprintID, v))
}

// BlueprintIDIn applies the In predicate on the "blueprint_id" field.
func BlueprintIDIn(vs ...uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldIn(FieldBlueprintID, vs...))
}

// BlueprintIDNotIn applies the NotIn predicate on the "blueprint_id" field.
func BlueprintIDNotIn(vs ...uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldNotIn(FieldBlueprintID, vs...))
}

// BlueprintIDGT applies the GT predicate on the "blueprint_id" field.
func BlueprintIDGT(v uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldGT(FieldBlueprintID, v))
}

// BlueprintIDGTE applies the GTE predicate on the "blueprint_id" field.
func BlueprintIDGTE(v uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldGTE(FieldBlueprintID, v))
}

// BlueprintIDLT applies the LT predicate on the "blueprint_id" field.
func BlueprintIDLT(v uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldLT(FieldBlueprintID, v))
}

// BlueprintIDLTE applies the LTE predicate on the "blueprint_id" field.
func BlueprintIDLTE(v uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldLTE(FieldBlueprintID, v))
}

// CollectionIDEQ applies the EQ predicate on the "collection_id" field.
func CollectionIDEQ(v uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldEQ(FieldCollectionID, v))
}

// CollectionIDNEQ applies the NEQ predicate on the "collection_id" field.
func CollectionIDNEQ(v uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldNEQ(FieldCollectionID, v))
}

// CollectionIDIn applies the In predicate on the "collection_id" field.
func CollectionIDIn(vs ...uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldIn(FieldCollectionID, vs...))
}

// CollectionIDNotIn applies the NotIn predicate on the "collection_id" field.
func CollectionIDNotIn(vs ...uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldNotIn(FieldCollectionID, vs...))
}

// CollectionIDGT applies the GT predicate on the "collection_id" field.
func CollectionIDGT(v uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldGT(FieldCollectionID, v))
}

// CollectionIDGTE applies the GTE predicate on the "collection_id" field.
func CollectionIDGTE(v uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldGTE(FieldCollectionID, v))
}

// CollectionIDLT applies the LT predicate on the "collection_id" field.
func CollectionIDLT(v uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldLT(FieldCollectionID, v))
}

// CollectionIDLTE applies the LTE predicate on the "collection_id" field.
func CollectionIDLTE(v uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldLTE(FieldCollectionID, v))
}

// RootCollectionIDEQ applies the EQ predicate on the "root_collection_id" field.
func RootCollectionIDEQ(v uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldEQ(FieldRootCollectionID, v))
}

// RootCollectionIDNEQ applies the NEQ predicate on the "root_collection_id" field.
func RootCollectionIDNEQ(v uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldNEQ(FieldRootCollectionID, v))
}

// RootCollectionIDIn applies the In predicate on the "root_collection_id" field.
func RootCollectionIDIn(vs ...uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldIn(FieldRootCollectionID, vs...))
}

// RootCollectionIDNotIn applies the NotIn predicate on the "root_collection_id" field.
func RootCollectionIDNotIn(vs ...uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldNotIn(FieldRootCollectionID, vs...))
}

// RootCollectionIDGT applies the GT predicate on the "root_collection_id" field.
func RootCollectionIDGT(v uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldGT(FieldRootCollectionID, v))
}

// RootCollectionIDGTE applies the GTE predicate on the "root_collection_id" field.
func RootCollectionIDGTE(v uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldGTE(FieldRootCollectionID, v))
}

// RootCollectionIDLT applies the LT predicate on the "root_collection_id" field.
func RootCollectionIDLT(v uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldLT(FieldRootCollectionID, v))
}

// RootCollectionIDLTE applies the LTE predicate on the "root_collection_id" field.
func RootCollectionIDLTE(v uint) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldLTE(FieldRootCollectionID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BlueprintCollection) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BlueprintCollection) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BlueprintCollection) predicate.BlueprintCollection {
	return predicate.BlueprintCollection(sql.NotPredicates(p))
}
