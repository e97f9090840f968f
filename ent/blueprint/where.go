// Code generated by ent, DO NOT EDIT.

package blueprint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dsp2b/dsp2b/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uint) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLTE(FieldID, id))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldDeletedAt, v))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uint) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldOwnerID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldUpdatedAt, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldDescription, v))
}

// DescriptionHTML applies equality check predicate on the "description_html" field. It's identical to DescriptionHTMLEQ.
func DescriptionHTML(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldDescriptionHTML, v))
}

// Payload applies equality check predicate on the "payload" field. It's identical to PayloadEQ.
func Payload(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldPayload, v))
}

// CopyCount applies equality check predicate on the "copy_count" field. It's identical to CopyCountEQ.
func CopyCount(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldCopyCount, v))
}

// IconLayout applies equality check predicate on the "icon_layout" field. It's identical to IconLayoutEQ.
func IconLayout(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldIconLayout, v))
}

// LikeCount applies equality check predicate on the "like_count" field. It's identical to LikeCountEQ.
func LikeCount(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldLikeCount, v))
}

// CollectionCount applies equality check predicate on the "collection_count" field. It's identical to CollectionCountEQ.
func CollectionCount(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldCollectionCount, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotNull(FieldDeletedAt))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uint) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uint) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uint) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uint) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uint) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uint) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uint) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uint) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLTE(FieldOwnerID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLTE(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldContainsFold(FieldDescription, v))
}

// DescriptionHTMLEQ applies the EQ predicate on the "description_html" field.
func DescriptionHTMLEQ(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldDescriptionHTML, v))
}

// DescriptionHTMLNEQ applies the NEQ predicate on the "description_html" field.
func DescriptionHTMLNEQ(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNEQ(FieldDescriptionHTML, v))
}

// DescriptionHTMLIn applies the In predicate on the "description_html" field.
func DescriptionHTMLIn(vs ...string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIn(FieldDescriptionHTML, vs...))
}

// DescriptionHTMLNotIn applies the NotIn predicate on the "description_html" field.
func DescriptionHTMLNotIn(vs ...string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotIn(FieldDescriptionHTML, vs...))
}

// DescriptionHTMLGT applies the GT predicate on the "description_html" field.
func DescriptionHTMLGT(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGT(FieldDescriptionHTML, v))
}

// DescriptionHTMLGTE applies the GTE predicate on the "description_html" field.
func DescriptionHTMLGTE(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGTE(FieldDescriptionHTML, v))
}

// DescriptionHTMLLT applies the LT predicate on the "description_html" field.
func DescriptionHTMLLT(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLT(FieldDescriptionHTML, v))
}

// DescriptionHTMLLTE applies the LTE predicate on the "description_html" field.
func DescriptionHTMLLTE(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLTE(FieldDescriptionHTML, v))
}

// DescriptionHTMLContains applies the Contains predicate on the "description_html" field.
func DescriptionHTMLContains(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldContains(FieldDescriptionHTML, v))
}

// DescriptionHTMLHasPrefix applies the HasPrefix predicate on the "description_html" field.
func DescriptionHTMLHasPrefix(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldHasPrefix(FieldDescriptionHTML, v))
}

// DescriptionHTMLHasSuffix applies the HasSuffix predicate on the "description_html" field.
func DescriptionHTMLHasSuffix(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldHasSuffix(FieldDescriptionHTML, v))
}

// DescriptionHTMLIsNil applies the IsNil predicate on the "description_html" field.
func DescriptionHTMLIsNil() predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIsNull(FieldDescriptionHTML))
}

// DescriptionHTMLNotNil applies the NotNil predicate on the "description_html" field.
func DescriptionHTMLNotNil() predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotNull(FieldDescriptionHTML))
}

// DescriptionHTMLEqualFold applies the EqualFold predicate on the "description_html" field.
func DescriptionHTMLEqualFold(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEqualFold(FieldDescriptionHTML, v))
}

// DescriptionHTMLContainsFold applies the ContainsFold predicate on the "description_html" field.
func DescriptionHTMLContainsFold(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldContainsFold(FieldDescriptionHTML, v))
}

// PayloadEQ applies the EQ predicate on the "payload" field.
func PayloadEQ(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldPayload, v))
}

// PayloadNEQ applies the NEQ predicate on the "payload" field.
func PayloadNEQ(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNEQ(FieldPayload, v))
}

// PayloadIn applies the In predicate on the "payload" field.
func PayloadIn(vs ...string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIn(FieldPayload, vs...))
}

// PayloadNotIn applies the NotIn predicate on the "payload" field.
func PayloadNotIn(vs ...string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotIn(FieldPayload, vs...))
}

// PayloadGT applies the GT predicate on the "payload" field.
func PayloadGT(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGT(FieldPayload, v))
}

// PayloadGTE applies the GTE predicate on the "payload" field.
func PayloadGTE(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGTE(FieldPayload, v))
}

// PayloadLT applies the LT predicate on the "payload" field.
func PayloadLT(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLT(FieldPayload, v))
}

// PayloadLTE applies the LTE predicate on the "payload" field.
func PayloadLTE(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLTE(FieldPayload, v))
}

// PayloadContains applies the Contains predicate on the "payload" field.
func PayloadContains(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldContains(FieldPayload, v))
}

// PayloadHasPrefix applies the HasPrefix predicate on the "payload" field.
func PayloadHasPrefix(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldHasPrefix(FieldPayload, v))
}

// PayloadHasSuffix applies the HasSuffix predicate on the "payload" field.
func PayloadHasSuffix(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldHasSuffix(FieldPayload, v))
}

// PayloadEqualFold applies the EqualFold predicate on the "payload" field.
func PayloadEqualFold(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEqualFold(FieldPayload, v))
}

// PayloadContainsFold applies the ContainsFold predicate on the "payload" field.
func PayloadContainsFold(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldContainsFold(FieldPayload, v))
}

// PicturesIsNil applies the IsNil predicate on the "pictures" field.
func PicturesIsNil() predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIsNull(FieldPictures))
}

// PicturesNotNil applies the NotNil predicate on the "pictures" field.
func PicturesNotNil() predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotNull(FieldPictures))
}

// TagsIDIsNil applies the IsNil predicate on the "tags_id" field.
func TagsIDIsNil() predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIsNull(FieldTagsID))
}

// TagsIDNotNil applies the NotNil predicate on the "tags_id" field.
func TagsIDNotNil() predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotNull(FieldTagsID))
}

// CopyCountEQ applies the EQ predicate on the "copy_count" field.
func CopyCountEQ(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldCopyCount, v))
}

// CopyCountNEQ applies the NEQ predicate on the "copy_count" field.
func CopyCountNEQ(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNEQ(FieldCopyCount, v))
}

// CopyCountIn applies the In predicate on the "copy_count" field.
func CopyCountIn(vs ...int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIn(FieldCopyCount, vs...))
}

// CopyCountNotIn applies the NotIn predicate on the "copy_count" field.
func CopyCountNotIn(vs ...int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotIn(FieldCopyCount, vs...))
}

// CopyCountGT applies the GT predicate on the "copy_count" field.
func CopyCountGT(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGT(FieldCopyCount, v))
}

// CopyCountGTE applies the GTE predicate on the "copy_count" field.
func CopyCountGTE(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGTE(FieldCopyCount, v))
}

// CopyCountLT applies the LT predicate on the "copy_count" field.
func CopyCountLT(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLT(FieldCopyCount, v))
}

// CopyCountLTE applies the LTE predicate on the "copy_count" field.
func CopyCountLTE(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLTE(FieldCopyCount, v))
}

// IconLayoutEQ applies the EQ predicate on the "icon_layout" field.
func IconLayoutEQ(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldIconLayout, v))
}

// IconLayoutNEQ applies the NEQ predicate on the "icon_layout" field.
func IconLayoutNEQ(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNEQ(FieldIconLayout, v))
}

// IconLayoutIn applies the In predicate on the "icon_layout" field.
func IconLayoutIn(vs ...int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIn(FieldIconLayout, vs...))
}

// IconLayoutNotIn applies the NotIn predicate on the "icon_layout" field.
func IconLayoutNotIn(vs ...int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotIn(FieldIconLayout, vs...))
}

// IconLayoutGT applies the GT predicate on the "icon_layout" field.
func IconLayoutGT(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGT(FieldIconLayout, v))
}

// IconLayoutGTE applies the GTE predicate on the "icon_layout" field.
func IconLayoutGTE(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGTE(FieldIconLayout, v))
}

// IconLayoutLT applies the LT predicate on the "icon_layout" field.
func IconLayoutLT(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLT(FieldIconLayout, v))
}

// IconLayoutLTE applies the LTE predicate on the "icon_layout" field.
func IconLayoutLTE(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLTE(FieldIconLayout, v))
}

// LikeCountEQ applies the EQ predicate on the "like_count" field.
func LikeCountEQ(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldLikeCount, v))
}

// LikeCountNEQ applies the NEQ predicate on the "like_count" field.
func LikeCountNEQ(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNEQ(FieldLikeCount, v))
}

// LikeCountIn applies the In predicate on the "like_count" field.
func LikeCountIn(vs ...int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIn(FieldLikeCount, vs...))
}

// LikeCountNotIn applies the NotIn predicate on the "like_count" field.
func LikeCountNotIn(vs ...int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotIn(FieldLikeCount, vs...))
}

// LikeCountGT applies the GT predicate on the "like_count" field.
func LikeCountGT(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGT(FieldLikeCount, v))
}

// LikeCountGTE applies the GTE predicate on the "like_count" field.
func LikeCountGTE(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGTE(FieldLikeCount, v))
}

// LikeCountLT applies the LT predicate on the "like_count" field.
func LikeCountLT(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLT(FieldLikeCount, v))
}

// LikeCountLTE applies the LTE predicate on the "like_count" field.
func LikeCountLTE(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLTE(FieldLikeCount, v))
}

// CollectionCountEQ applies the EQ predicate on the "collection_count" field.
func CollectionCountEQ(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldCollectionCount, v))
}

// CollectionCountNEQ applies the NEQ predicate on the "collection_count" field.
func CollectionCountNEQ(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNEQ(FieldCollectionCount, v))
}

// CollectionCountIn applies the In predicate on the "collection_count" field.
func CollectionCountIn(vs ...int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIn(FieldCollectionCount, vs...))
}

// CollectionCountNotIn applies the NotIn predicate on the "collection_count" field.
func CollectionCountNotIn(vs ...int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotIn(FieldCollectionCount, vs...))
}

// CollectionCountGT applies the GT predicate on the "collection_count" field.
func CollectionCountGT(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGT(FieldCollectionCount, v))
}

// CollectionCountGTE applies the GTE predicate on the "collection_count" field.
func CollectionCountGTE(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGTE(FieldCollectionCount, v))
}

// CollectionCountLT applies the LT predicate on the "collection_count" field.
func CollectionCountLT(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLT(FieldCollectionCount, v))
}

// CollectionCountLTE applies the LTE predicate on the "collection_count" field.
func CollectionCountLTE(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLTE(FieldCollectionCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Blueprint) predicate.Blueprint {
	return predicate.Blueprint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Blueprint) predicate.Blueprint {
	return predicate.Blueprint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Blueprint) predicate.Blueprint {
	return predicate.Blueprint(sql.NotPredicates(p))
}
