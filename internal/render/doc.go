// Package render produces Markdown documentation lines from a model.Model.
//
// Lines is the fixed entity template. Renderer adds optional document-level
// sections (front matter, title, table of contents) ahead of it. Both are pure:
// the same model always yields the same lines.
package render
