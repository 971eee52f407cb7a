// Package pipeline wires the XML collector to the Markdown renderer.
//
// Render is the bare bytes-to-Markdown conversion. Service wraps it with
// file discovery, document identity, optional document sections, logging
// and HTML previews.
package pipeline
