// Code generated by ent, DO NOT EDIT.

package runtime

import (
	"time"

	"github.com/dsp2b/dsp2b/ent/blueprint"
	"github.com/dsp2b/dsp2b/ent/blueprintcollection"
	"github.com/dsp2b/dsp2b/ent/blueprintlike"
	"github.com/dsp2b/dsp2b/ent/collection"
	"github.com/dsp2b/dsp2b/ent/collectionlike"
	"github.com/dsp2b/dsp2b/ent/schema"
	"github.com/dsp2b/dsp2b/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	blueprintMixin := schema.Blueprint{}.Mixin()
	blueprintMixinHooks0 := blueprintMixin[0].Hooks()
	blueprint.Hooks[0] = blueprintMixinHooks0[0]
	blueprintFields := schema.Blueprint{}.Fields()
	_ = blueprintFields
	// blueprintDescCreatedAt is the schema descriptor for created_at field.
	blueprintDescCreatedAt := blueprintFields[2].Descriptor()
	// blueprint.DefaultCreatedAt holds the default value on creation for the created_at field.
	blueprint.DefaultCreatedAt = blueprintDescCreatedAt.Default.(func() time.Time)
	// blueprintDescUpdatedAt is the schema descriptor for updated_at field.
	blueprintDescUpdatedAt := blueprintFields[3].Descriptor()
	// blueprint.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	blueprint.DefaultUpdatedAt = blueprintDescUpdatedAt.Default.(func() time.Time)
	// blueprintDescTitle is the schema descriptor for title field.
	blueprintDescTitle := blueprintFields[4].Descriptor()
	// blueprint.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	blueprint.TitleValidator = blueprintDescTitle.Validators[0].(func(string) error)
	// blueprintDescPayload is the schema descriptor for payload field.
	blueprintDescPayload := blueprintFields[7].Descriptor()
	// blueprint.PayloadValidator is a validator for the "payload" field. It is called by the builders before save.
	blueprint.PayloadValidator = blueprintDescPayload.Validators[0].(func(string) error)
	// blueprintDescCopyCount is the schema descriptor for copy_count field.
	blueprintDescCopyCount := blueprintFields[10].Descriptor()
	// blueprint.DefaultCopyCount holds the default value on creation for the copy_count field.
	blueprint.DefaultCopyCount = blueprintDescCopyCount.Default.(int)
	// blueprint.CopyCountValidator is a validator for the "copy_count" field. It is called by the builders before save.
	blueprint.CopyCountValidator = blueprintDescCopyCount.Validators[0].(func(int) error)
	// blueprintDescIconLayout is the schema descriptor for icon_layout field.
	blueprintDescIconLayout := blueprintFields[11].Descriptor()
	// blueprint.DefaultIconLayout holds the default value on creation for the icon_layout field.
	blueprint.DefaultIconLayout = blueprintDescIconLayout.Default.(int)
	// blueprintDescLikeCount is the schema descriptor for like_count field.
	blueprintDescLikeCount := blueprintFields[12].Descriptor()
	// blueprint.DefaultLikeCount holds the default value on creation for the like_count field.
	blueprint.DefaultLikeCount = blueprintDescLikeCount.Default.(int)
	// blueprint.LikeCountValidator is a validator for the "like_count" field. It is called by the builders before save.
	blueprint.LikeCountValidator = blueprintDescLikeCount.Validators[0].(func(int) error)
	// blueprintDescCollectionCount is the schema descriptor for collection_count field.
	blueprintDescCollectionCount := blueprintFields[13].Descriptor()
	// blueprint.DefaultCollectionCount holds the default value on creation for the collection_count field.
	blueprint.DefaultCollectionCount = blueprintDescCollectionCount.Default.(int)
	// blueprint.CollectionCountValidator is a validator for the "collection_count" field. It is called by the builders before save.
	blueprint.CollectionCountValidator = blueprintDescCollectionCount.Validators[0].(func(int) error)
	blueprintcollectionFields := schema.BlueprintCollection{}.Fields()
	_ = blueprintcollectionFields
	// blueprintcollectionDescCreatedAt is the schema descriptor for created_at field.
	blueprintcollectionDescCreatedAt := blueprintcollectionFields[4].Descriptor()
	// blueprintcollection.DefaultCreatedAt holds the default value on creation for the created_at field.
	blueprintcollection.DefaultCreatedAt = blueprintcollectionDescCreatedAt.Default.(func() time.Time)
	blueprintlikeFields := schema.BlueprintLike{}.Fields()
	_ = blueprintlikeFields
	// blueprintlikeDescCreatedAt is the schema descriptor for created_at field.
	blueprintlikeDescCreatedAt := blueprintlikeFields[3].Descriptor()
	// blueprintlike.DefaultCreatedAt holds the default value on creation for the created_at field.
	blueprintlike.DefaultCreatedAt = blueprintlikeDescCreatedAt.Default.(func() time.Time)
	collectionMixin := schema.Collection{}.Mixin()
	collectionMixinHooks0 := collectionMixin[0].Hooks()
	collection.Hooks[0] = collectionMixinHooks0[0]
	collectionFields := schema.Collection{}.Fields()
	_ = collectionFields
	// collectionDescCreatedAt is the schema descriptor for created_at field.
	collectionDescCreatedAt := collectionFields[3].Descriptor()
	// collection.DefaultCreatedAt holds the default value on creation for the created_at field.
	collection.DefaultCreatedAt = collectionDescCreatedAt.Default.(func() time.Time)
	// collectionDescUpdatedAt is the schema descriptor for updated_at field.
	collectionDescUpdatedAt := collectionFields[4].Descriptor()
	// collection.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	collection.DefaultUpdatedAt = collectionDescUpdatedAt.Default.(func() time.Time)
	// collectionDescTitle is the schema descriptor for title field.
	collectionDescTitle := collectionFields[5].Descriptor()
	// collection.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	collection.TitleValidator = collectionDescTitle.Validators[0].(func(string) error)
	// collectionDescPublic is the schema descriptor for public field.
	collectionDescPublic := collectionFields[7].Descriptor()
	// collection.DefaultPublic holds the default value on creation for the public field.
	collection.DefaultPublic = collectionDescPublic.Default.(bool)
	collectionlikeFields := schema.CollectionLike{}.Fields()
	_ = collectionlikeFields
	// collectionlikeDescCreatedAt is the schema descriptor for created_at field.
	collectionlikeDescCreatedAt := collectionlikeFields[3].Descriptor()
	// collectionlike.DefaultCreatedAt holds the default value on creation for the created_at field.
	collectionlike.DefaultCreatedAt = collectionlikeDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[1].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[2].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[3].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[5].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[7].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
}

const (
	Version = "v0.14.4"                                         // Version of ent codegen.
	Sum     = "h1:/DhDraSLXIkBhyiVoJeSshr4ZYi7femzhj6/TckzZuI=" // Sum of ent codegen.
)
