// Package report contains the exporters that persist a finished run:
// CSV tables, interactive HTML charts, a Markdown summary and a SQLite
// results archive.
package report
