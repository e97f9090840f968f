// Code generated by ent, DO NOT EDIT.

package blueprintproduct

import (
	"entgo.io/ent/dialect/sql"
	"github.com/dsp2b/dsp2b/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uint) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldLTE(FieldID, id))
}

// BlueprintID applies equality check predicate on the "blueprint_id" field. It's identical to BlueprintIDEQ.
func BlueprintID(v uint) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldEQ(FieldBlueprintID, v))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v int) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldEQ(FieldItemID, v))
}

// Count applies equality check predicate on the "count" field. It's identical to CountEQ.
func Count(v int) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldEQ(FieldCount, v))
}

// BlueprintIDEQ applies the EQ predicate on the "blueprint_id" field.
func BlueprintIDEQ(v uint) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldEQ(FieldBlueprintID, v))
}

// BlueprintIDNEQ applies the NEQ predicate on the "blueprint_id" field.
func BlueprintIDNEQ(v uint) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldNEQ(FieldBlueprintID, v))
}

// BlueprintIDIn applies the In predicate on the "blueprint_id" field.
func BlueprintIDIn(vs ...uint) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldIn(FieldBlueprintID, vs...))
}

// BlueprintIDNotIn applies the NotIn predicate on the "blueprint_id" field.
func BlueprintIDNotIn(vs ...uint) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldNotIn(FieldBlueprintID, vs...))
}

// BlueprintIDGT applies the GT predicate on the "blueprint_id" field.
func BlueprintIDGT(v uint) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldGT(FieldBlueprintID, v))
}

// BlueprintIDGTE applies the GTE predicate on the "blueprint_id" field.
func BlueprintIDGTE(v uint) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldGTE(FieldBlueprintID, v))
}

// BlueprintIDLT applies the LT predicate on the "blueprint_id" field.
func BlueprintIDLT(v uint) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldLT(FieldBlueprintID, v))
}

// BlueprintIDLTE applies the LTE predicate on the "blueprint_id" field.
func BlueprintIDLTE(v uint) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldLTE(FieldBlueprintID, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v int) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v int) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...int) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...int) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v int) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v int) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v int) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v int) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldLTE(FieldItemID, v))
}

// CountEQ applies the EQ predicate on the "count" field.
func CountEQ(v int) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldEQ(FieldCount, v))
}

// CountNEQ applies the NEQ predicate on the "count" field.
func CountNEQ(v int) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldNEQ(FieldCount, v))
}

// CountIn applies the In predicate on the "count" field.
func CountIn(vs ...int) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldIn(FieldCount, vs...))
}

// CountNotIn applies the NotIn predicate on the "count" field.
func CountNotIn(vs ...int) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldNotIn(FieldCount, vs...))
}

// CountGT applies the GT predicate on the "count" field.
func CountGT(v int) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldGT(FieldCount, v))
}

// CountGTE applies the GTE predicate on the "count" field.
func CountGTE(v int) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldGTE(FieldCount, v))
}

// CountLT applies the LT predicate on the "count" field.
func CountLT(v int) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldLT(FieldCount, v))
}

// CountLTE applies the LTE predicate on the "count" field.
func CountLTE(v int) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.FieldLTE(FieldCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BlueprintProduct) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BlueprintProduct) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BlueprintProduct) predicate.BlueprintProduct {
	return predicate.BlueprintProduct(sql.NotPredicates(p))
}
