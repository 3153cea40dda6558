// Package loaders provides format-specific document loaders and the
// registry that dispatches raw documents to them by MIME type.
package loaders
