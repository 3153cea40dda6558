package filesystem

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func collect(t *testing.T, c *Connector) []domain.RawDocument {
	t.Helper()

	docsChan, errsChan := c.Fetch(context.Background())
	var docs []domain.RawDocument
	for doc := range docsChan {
		docs = append(docs, doc)
	}
	for err := range errsChan {
		require.NoError(t, err)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].URI < docs[j].URI })
	return docs
}

func TestConnector_Validate(t *testing.T) {
	t.Run("valid directory", func(t *testing.T) {
		c := New(Config{Root: t.TempDir()})
		assert.NoError(t, c.Validate(context.Background()))
	})

	t.Run("missing directory", func(t *testing.T) {
		c := New(Config{Root: filepath.Join(t.TempDir(), "nope")})
		err := c.Validate(context.Background())
		assert.True(t, errors.Is(err, domain.ErrConnectorValidation))
	})

	t.Run("empty root", func(t *testing.T) {
		c := New(Config{})
		err := c.Validate(context.Background())
		assert.True(t, errors.Is(err, domain.ErrConnectorValidation))
	})

	t.Run("root is a file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.txt", "x")
		c := New(Config{Root: filepath.Join(dir, "a.txt")})
		err := c.Validate(context.Background())
		assert.True(t, errors.Is(err, domain.ErrConnectorValidation))
	})
}

func TestConnector_Fetch(t *testing.T) {
	t.Run("streams all files", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "notes.txt", "flood levels rising")
		writeFile(t, dir, "sub/plan.md", "# Plan")

		c := New(Config{Root: dir})
		docs := collect(t, c)

		require.Len(t, docs, 2)
		assert.Equal(t, "flood levels rising", string(docs[0].Content))
		assert.Equal(t, "text/plain", docs[0].MIMEType)
		assert.Equal(t, "text/markdown", docs[1].MIMEType)
		assert.Equal(t, "filesystem", docs[0].Source)
		assert.Equal(t, "sub/plan.md", docs[1].Metadata["relative_path"])
	})

	t.Run("include patterns filter", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "keep.md", "keep")
		writeFile(t, dir, "skip.txt", "skip")

		c := New(Config{Root: dir, Include: []string{"**/*.md"}})
		docs := collect(t, c)

		require.Len(t, docs, 1)
		assert.Contains(t, docs[0].URI, "keep.md")
	})

	t.Run("exclude patterns filter", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "keep.txt", "keep")
		writeFile(t, dir, "drafts/skip.txt", "skip")

		c := New(Config{Root: dir, Exclude: []string{"drafts/**"}})
		docs := collect(t, c)

		require.Len(t, docs, 1)
		assert.Contains(t, docs[0].URI, "keep.txt")
	})

	t.Run("hidden directories skipped", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".git/config", "secret")
		writeFile(t, dir, "visible.txt", "visible")

		c := New(Config{Root: dir})
		docs := collect(t, c)

		require.Len(t, docs, 1)
		assert.Contains(t, docs[0].URI, "visible.txt")
	})

	t.Run("cancelled context stops walk", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.txt", "a")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c := New(Config{Root: dir})
		docsChan, errsChan := c.Fetch(ctx)
		for range docsChan {
		}
		var fetchErr error
		for err := range errsChan {
			fetchErr = err
		}
		assert.Error(t, fetchErr)
	})
}

func TestMimeFor(t *testing.T) {
	assert.Equal(t, "application/json", mimeFor("/data/survey.JSON"))
	assert.Equal(t, "image/jpeg", mimeFor("scan.jpg"))
	assert.Equal(t, "application/octet-stream", mimeFor("binary.bin"))
}
