// Package docx extracts text from DOCX files by reading the
// word/document.xml entry and collecting its text runs.
package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driven"
	"github.com/meridian-sci/svomap-cli/internal/loaders"
)

// Ensure Loader implements the interface.
var _ driven.Loader = (*Loader)(nil)

// Loader handles DOCX documents.
type Loader struct{}

// New creates a new DOCX loader.
func New() *Loader {
	return &Loader{}
}

// SupportedMIMETypes returns the MIME types this loader handles.
func (l *Loader) SupportedMIMETypes() []string {
	return []string{
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
}

// Priority returns the selection priority.
func (l *Loader) Priority() int {
	return 60
}

// Load unzips the DOCX and extracts paragraph text.
func (l *Loader) Load(_ context.Context, raw *domain.RawDocument) (*driven.LoadResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	content, err := extractText(raw.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: read DOCX %s: %v", domain.ErrInvalidInput, raw.URI, err)
	}

	doc := domain.Document{
		ID:       uuid.New().String(),
		Source:   raw.Source,
		URI:      raw.URI,
		Title:    loaders.TitleFor(raw),
		Content:  content,
		Format:   "docx",
		Metadata: loaders.CopyMetadata(raw),
		LoadedAt: time.Now(),
	}

	return &driven.LoadResult{Document: doc}, nil
}

// extractText reads word/document.xml from the archive and walks its
// tokens, emitting text runs and paragraph breaks.
func extractText(data []byte) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open archive: %w", err)
	}

	var docXML io.ReadCloser
	for _, f := range reader.File {
		if f.Name == "word/document.xml" {
			docXML, err = f.Open()
			if err != nil {
				return "", fmt.Errorf("open document.xml: %w", err)
			}
			break
		}
	}
	if docXML == nil {
		return "", fmt.Errorf("word/document.xml not found")
	}
	defer docXML.Close()

	var sb strings.Builder
	decoder := xml.NewDecoder(docXML)
	inText := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}

	return strings.TrimSpace(sb.String()), nil
}
