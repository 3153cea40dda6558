package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestLoader_Load(t *testing.T) {
	loader := New()

	t.Run("extracts paragraph text", func(t *testing.T) {
		docXML := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Reduce flood risk </w:t></w:r><w:r><w:t>along the river.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Monitor soil moisture.</w:t></w:r></w:p>
  </w:body>
</w:document>`

		raw := &domain.RawDocument{
			URI:      "narrative.docx",
			MIMEType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			Content:  buildDocx(t, docXML),
		}

		result, err := loader.Load(context.Background(), raw)
		require.NoError(t, err)
		assert.Equal(t, "Reduce flood risk along the river.\nMonitor soil moisture.", result.Document.Content)
		assert.Equal(t, "docx", result.Document.Format)
	})

	t.Run("not a zip archive", func(t *testing.T) {
		raw := &domain.RawDocument{
			URI:      "broken.docx",
			MIMEType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			Content:  []byte("plain text, not a zip"),
		}

		_, err := loader.Load(context.Background(), raw)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	})

	t.Run("missing document.xml", func(t *testing.T) {
		var buf bytes.Buffer
		w := zip.NewWriter(&buf)
		f, err := w.Create("other.xml")
		require.NoError(t, err)
		_, err = f.Write([]byte("<x/>"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		raw := &domain.RawDocument{
			URI:      "empty.docx",
			MIMEType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			Content:  buf.Bytes(),
		}

		_, err = loader.Load(context.Background(), raw)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	})
}
