// Package service composes repository queries into entity navigation.
//
// It sits on top of the repository layer and answers the cross-entity
// questions ("who wrote this reply?", "which questions does this user
// follow?") so that repositories never need to call each other. All
// dependency edges point downward: services depend on repositories,
// repositories depend only on the database handle.
package service
