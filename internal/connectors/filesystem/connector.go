// Package filesystem streams narrative documents from a local
// directory tree, filtered by include/exclude glob patterns.
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driven"
)

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// mimeByExtension maps file extensions to the MIME types the loader
// registry dispatches on. Unknown extensions fall through to
// application/octet-stream and are skipped during loading.
var mimeByExtension = map[string]string{
	".txt":      "text/plain",
	".text":     "text/plain",
	".csv":      "text/csv",
	".tsv":      "text/tab-separated-values",
	".md":       "text/markdown",
	".markdown": "text/markdown",
	".json":     "application/json",
	".html":     "text/html",
	".htm":      "text/html",
	".xhtml":    "application/xhtml+xml",
	".docx":     "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".png":      "image/png",
	".jpg":      "image/jpeg",
	".jpeg":     "image/jpeg",
	".tif":      "image/tiff",
	".tiff":     "image/tiff",
	".bmp":      "image/bmp",
}

// Config holds filesystem connector settings.
type Config struct {
	// Root is the directory to scan.
	Root string

	// Include holds glob patterns relative to Root. Empty means
	// include everything.
	Include []string

	// Exclude holds glob patterns relative to Root. Matches are
	// skipped even when included.
	Exclude []string
}

// Connector fetches documents from a local directory.
type Connector struct {
	config  Config
	watcher *fsnotify.Watcher
	mu      sync.Mutex
	closed  bool
}

// New creates a new filesystem connector.
func New(cfg Config) *Connector {
	return &Connector{config: cfg}
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "filesystem"
}

// Capabilities returns the connector's capabilities.
func (c *Connector) Capabilities() driven.ConnectorCapabilities {
	return driven.ConnectorCapabilities{
		SupportsWatch:        true,
		RequiresAuth:         false,
		SupportsRateLimiting: false,
	}
}

// Validate checks the root directory exists and is readable.
func (c *Connector) Validate(_ context.Context) error {
	if c.config.Root == "" {
		return fmt.Errorf("%w: input directory not set", domain.ErrConnectorValidation)
	}

	info, err := os.Stat(c.config.Root)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrConnectorValidation, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", domain.ErrConnectorValidation, c.config.Root)
	}

	for _, pattern := range append(append([]string{}, c.config.Include...), c.config.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: bad glob pattern %q", domain.ErrConnectorValidation, pattern)
		}
	}

	return nil
}

// Fetch walks the directory tree and streams matching files.
func (c *Connector) Fetch(ctx context.Context) (<-chan domain.RawDocument, <-chan error) {
	docsChan := make(chan domain.RawDocument)
	errsChan := make(chan error, 1)

	go func() {
		defer close(docsChan)
		defer close(errsChan)

		root := c.config.Root
		err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			if entry.IsDir() {
				// Skip hidden directories like .git wholesale.
				if name := entry.Name(); name != "." && strings.HasPrefix(name, ".") {
					return filepath.SkipDir
				}
				return nil
			}

			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return relErr
			}
			rel = filepath.ToSlash(rel)

			if !c.matches(rel) {
				return nil
			}

			content, readErr := os.ReadFile(path)
			if readErr != nil {
				return fmt.Errorf("read %s: %w", path, readErr)
			}

			info, infoErr := entry.Info()
			if infoErr != nil {
				return infoErr
			}

			doc := domain.RawDocument{
				Source:   c.Type(),
				URI:      path,
				MIMEType: mimeFor(path),
				Content:  content,
				Metadata: map[string]any{
					"relative_path": rel,
					"size_bytes":    info.Size(),
					"modified_at":   info.ModTime(),
				},
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case docsChan <- doc:
			}
			return nil
		})
		if err != nil {
			errsChan <- fmt.Errorf("walk %s: %w", root, err)
		}
	}()

	return docsChan, errsChan
}

// Watch signals whenever a file under the root changes.
func (c *Connector) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch every directory in the tree; fsnotify is not recursive.
	err = filepath.WalkDir(c.config.Root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			return nil
		}
		if name := entry.Name(); name != "." && strings.HasPrefix(name, ".") {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", c.config.Root, err)
	}

	c.mu.Lock()
	c.watcher = watcher
	c.mu.Unlock()

	signals := make(chan struct{}, 1)

	go func() {
		defer close(signals)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				// Coalesce bursts; a pending signal is enough.
				select {
				case signals <- struct{}{}:
				default:
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return signals, nil
}

// Close releases resources.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.watcher != nil {
		watcher := c.watcher
		c.watcher = nil
		return watcher.Close()
	}
	return nil
}

// matches applies include then exclude patterns to a slash-separated
// relative path.
func (c *Connector) matches(rel string) bool {
	included := len(c.config.Include) == 0
	for _, pattern := range c.config.Include {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			included = true
			break
		}
	}
	if !included {
		return false
	}

	for _, pattern := range c.config.Exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return false
		}
	}
	return true
}

// mimeFor maps a file path to a MIME type by extension.
func mimeFor(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if mt, ok := mimeByExtension[ext]; ok {
		return mt
	}
	return "application/octet-stream"
}
