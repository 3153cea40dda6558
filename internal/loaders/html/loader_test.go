package html

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
)

func TestLoader_Load(t *testing.T) {
	loader := New()

	t.Run("strips markup and scripts", func(t *testing.T) {
		content := `<html><head><title>Public Comment</title><script>alert(1)</script></head>
<body><p>Farmers want &amp; need irrigation forecasts.</p><style>p{color:red}</style></body></html>`
		raw := &domain.RawDocument{
			URI:      "comment.html",
			MIMEType: "text/html",
			Content:  []byte(content),
		}

		result, err := loader.Load(context.Background(), raw)
		require.NoError(t, err)
		assert.Contains(t, result.Document.Content, "Farmers want & need irrigation forecasts.")
		assert.NotContains(t, result.Document.Content, "alert")
		assert.NotContains(t, result.Document.Content, "color:red")
		assert.NotContains(t, result.Document.Content, "<p>")
	})

	t.Run("title from title element", func(t *testing.T) {
		raw := &domain.RawDocument{
			URI:      "page.html",
			MIMEType: "text/html",
			Content:  []byte(`<html><head><title> Public Comment </title></head><body>x</body></html>`),
		}

		result, err := loader.Load(context.Background(), raw)
		require.NoError(t, err)
		assert.Equal(t, "Public Comment", result.Document.Title)
	})
}
