// Package markdown holds the Markdown-side helpers around generated model
// documentation: HTML previews through goldmark, reading back front matter,
// and discovering model files on disk.
package markdown
