// Package models defines the entities of the question/answer domain.
//
// Each type corresponds to one row of a relational table and carries an
// explicit FromRow factory that converts a field-named row map into typed
// attributes. An entity's ID is zero until storage assigns one through a
// repository create; repositories treat a zero ID as "not persisted yet".
package models
