// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Blueprint is the predicate function for blueprint builders.
type Blueprint func(*sql.Selector)

// BlueprintCollection is the predicate function for blueprintcollection builders.
type BlueprintCollection func(*sql.Selector)

// BlueprintLike is the predicate function for blueprintlike builders.
type BlueprintLike func(*sql.Selector)

// BlueprintProduct is the predicate function for blueprintproduct builders.
type BlueprintProduct func(*sql.Selector)

// Collection is the predicate function for collection builders.
type Collection func(*sql.Selector)

// CollectionLike is the predicate function for collectionlike builders.
type CollectionLike func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
