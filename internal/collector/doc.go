// Package collector turns the element-start events of a Core Data model
// document into a model.Model.
//
// The Collector is a plain builder: it keeps the ordered entity list and an
// index to the entity most recently opened. Attribute and relationship events
// attach to that entity. Decode drives a Collector from an encoding/xml token
// stream.
package collector
