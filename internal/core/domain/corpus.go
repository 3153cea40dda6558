package domain

import "time"

// RawDocument represents opaque bytes fetched by a connector.
// It is the connector's output before loading/normalisation.
type RawDocument struct {
	// Source identifies the connector that produced this document
	// (e.g., "filesystem", "github").
	Source string

	// URI is the original location (file path, issue URL, etc).
	URI string

	// MIMEType is the content type (e.g., "text/plain", "image/png").
	MIMEType string

	// Content is the raw bytes.
	Content []byte

	// Metadata contains connector-specific key-value pairs.
	Metadata map[string]any
}

// Document is the canonical text representation after loading.
// All formats (plain text, JSON, Markdown, HTML, DOCX, scanned images)
// converge on this shape before preprocessing.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Source identifies the connector that produced the document.
	Source string

	// URI is the original location, kept for provenance.
	URI string

	// Title is the human-readable title.
	Title string

	// Content is the full plain-text content after loading.
	Content string

	// Format records the input format the document was loaded from.
	Format string

	// Metadata contains arbitrary key-value pairs.
	Metadata map[string]any

	// LoadedAt is when the document entered the corpus.
	LoadedAt time.Time
}

// Bag is a preprocessed unit of text used for vectorisation.
// Documents are split into sentence bags, cleaned and stop-filtered
// before they reach the topic model.
type Bag struct {
	// DocumentID links to the owning Document.
	DocumentID string

	// Position is the ordinal position within the document.
	Position int

	// Text is the cleaned bag content.
	Text string
}

// Corpus is the ordered, immutable collection of loaded documents.
// It is built once per run and never mutated afterwards.
type Corpus struct {
	docs []Document
}

// NewCorpus creates a corpus from the given documents.
// The slice is copied so later mutation of the argument cannot
// reach into the corpus.
func NewCorpus(docs []Document) *Corpus {
	cp := make([]Document, len(docs))
	copy(cp, docs)
	return &Corpus{docs: cp}
}

// Len returns the number of documents.
func (c *Corpus) Len() int {
	return len(c.docs)
}

// Documents returns the documents in load order.
// Callers must not modify the returned slice.
func (c *Corpus) Documents() []Document {
	return c.docs
}

// Document returns the document at position i.
func (c *Corpus) Document(i int) Document {
	return c.docs[i]
}

// IsEmpty reports whether the corpus holds no documents or only
// documents without content.
func (c *Corpus) IsEmpty() bool {
	for i := range c.docs {
		if c.docs[i].Content != "" {
			return false
		}
	}
	return true
}
