// Package tui provides an interactive terminal browser for pipeline
// results, following the Elm architecture.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/meridian-sci/svomap-cli/internal/adapters/driving/tui/keymap"
	"github.com/meridian-sci/svomap-cli/internal/adapters/driving/tui/styles"
	"github.com/meridian-sci/svomap-cli/internal/core/domain"
)

// Tab selects which detail pane is shown for the selected topic.
type Tab int

const (
	TabTerms Tab = iota
	TabDomains
	TabVariables
	TabDocuments
	tabCount
)

// String returns the tab label.
func (t Tab) String() string {
	switch t {
	case TabTerms:
		return "terms"
	case TabDomains:
		return "domains"
	case TabVariables:
		return "variables"
	case TabDocuments:
		return "documents"
	default:
		return "unknown"
	}
}

// Browser is a read-only viewer over a finished run.
// It implements tea.Model for use with Bubbletea.
type Browser struct {
	result *domain.RunResult
	styles *styles.Styles
	keymap *keymap.KeyMap

	selected int
	tab      Tab
	showHelp bool

	width  int
	height int
	ready  bool
}

// Ensure Browser implements tea.Model.
var _ tea.Model = (*Browser)(nil)

// NewBrowser creates a browser over the given run result.
func NewBrowser(result *domain.RunResult) (*Browser, error) {
	if result == nil || result.Model == nil {
		return nil, fmt.Errorf("%w: browser needs a completed run", domain.ErrInvalidInput)
	}
	return &Browser{
		result: result,
		styles: styles.DefaultStyles(),
		keymap: keymap.DefaultKeyMap(),
	}, nil
}

// Init initialises the browser.
func (b *Browser) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.ready = true
		return b, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keymap.Quit):
			return b, tea.Quit
		case key.Matches(msg, b.keymap.Up):
			if b.selected > 0 {
				b.selected--
			}
		case key.Matches(msg, b.keymap.Down):
			if b.selected < len(b.result.Model.Topics)-1 {
				b.selected++
			}
		case key.Matches(msg, b.keymap.NextTab):
			b.tab = (b.tab + 1) % tabCount
		case key.Matches(msg, b.keymap.PrevTab):
			b.tab = (b.tab + tabCount - 1) % tabCount
		case key.Matches(msg, b.keymap.Help):
			b.showHelp = !b.showHelp
		}
	}
	return b, nil
}

// View renders the browser.
func (b *Browser) View() string {
	if !b.ready {
		return "Loading..."
	}

	var sb strings.Builder
	sb.WriteString(b.styles.Title.Render("svomap results"))
	sb.WriteString("\n\n")

	left := b.renderTopicList()
	right := b.renderDetail()
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	sb.WriteString("\n")

	if b.showHelp {
		sb.WriteString(b.styles.Help.Render(
			"↑/k up · ↓/j down · tab switch pane · q quit"))
	} else {
		sb.WriteString(b.styles.Help.Render("? for help"))
	}
	return sb.String()
}

func (b *Browser) renderTopicList() string {
	counts := b.result.Model.DominantTopicCounts()

	var lines []string
	lines = append(lines, b.styles.Subtitle.Render("Topics"))
	for _, topic := range b.result.Model.Topics {
		label := fmt.Sprintf("topic %d (%d docs)", topic.ID, counts[topic.ID])
		if topic.ID == b.selected {
			lines = append(lines, b.styles.Selected.Render("> "+label))
		} else {
			lines = append(lines, b.styles.Normal.Render("  "+label))
		}
	}
	return b.styles.Pane.Render(strings.Join(lines, "\n"))
}

func (b *Browser) renderDetail() string {
	var lines []string
	lines = append(lines, b.renderTabBar())
	lines = append(lines, "")

	switch b.tab {
	case TabTerms:
		lines = append(lines, b.renderTerms()...)
	case TabDomains:
		lines = append(lines, b.renderDomains()...)
	case TabVariables:
		lines = append(lines, b.renderVariables()...)
	case TabDocuments:
		lines = append(lines, b.renderDocuments()...)
	}
	return b.styles.Pane.Render(strings.Join(lines, "\n"))
}

func (b *Browser) renderTabBar() string {
	var parts []string
	for t := TabTerms; t < tabCount; t++ {
		if t == b.tab {
			parts = append(parts, b.styles.Subtitle.Render("["+t.String()+"]"))
		} else {
			parts = append(parts, b.styles.Muted.Render(" "+t.String()+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (b *Browser) renderTerms() []string {
	topic := b.result.Model.Topics[b.selected]
	terms := topic.TopTerms(10)

	lines := make([]string, 0, len(terms))
	for _, tw := range terms {
		lines = append(lines, b.styles.Normal.Render(
			fmt.Sprintf("%-20s %.4f", tw.Term, tw.Weight)))
	}
	if len(lines) == 0 {
		lines = append(lines, b.styles.Muted.Render("no terms"))
	}
	return lines
}

func (b *Browser) renderDomains() []string {
	mapping := b.mapping()
	if mapping == nil || len(mapping.Backbone) == 0 {
		return []string{b.styles.Muted.Render("no backbone match")}
	}

	lines := make([]string, 0, len(mapping.Backbone))
	for _, match := range mapping.Backbone {
		label := fmt.Sprintf("%-20s %.2f", match.Domain, match.Score)
		if match.Manual {
			label = fmt.Sprintf("%-20s manual", match.Domain)
		}
		lines = append(lines, b.styles.Normal.Render(label))
		for _, sub := range match.Subdisciplines {
			lines = append(lines, b.styles.Muted.Render("  "+sub))
		}
	}
	return lines
}

func (b *Browser) renderVariables() []string {
	mapping := b.mapping()
	if mapping == nil || len(mapping.SVO) == 0 {
		return []string{b.styles.Muted.Render("no linked variables")}
	}

	lines := make([]string, 0, len(mapping.SVO))
	for _, link := range mapping.SVO {
		lines = append(lines, b.styles.Normal.Render(
			fmt.Sprintf("%-18s -> %-24s %.2f", link.Term, link.Variable, link.Score)))
	}
	return lines
}

func (b *Browser) renderDocuments() []string {
	var lines []string
	for pos, topicID := range b.result.Model.DominantTopics {
		if topicID != b.selected || pos >= b.result.Corpus.Len() {
			continue
		}
		doc := b.result.Corpus.Document(pos)
		lines = append(lines, b.styles.Normal.Render(doc.Title))
		lines = append(lines, b.styles.Muted.Render("  "+doc.URI))
	}
	if len(lines) == 0 {
		lines = append(lines, b.styles.Muted.Render("no documents dominated by this topic"))
	}
	return lines
}

// mapping returns the mapping for the selected topic, if any.
func (b *Browser) mapping() *domain.MappingResult {
	for i := range b.result.Mappings {
		if b.result.Mappings[i].TopicID == b.selected {
			return &b.result.Mappings[i]
		}
	}
	return nil
}
