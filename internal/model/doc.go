// Package model holds the in-memory representation of a Core Data model:
// entities with their attributes and relationships, kept in document order.
package model
