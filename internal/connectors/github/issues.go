package github

import (
	"fmt"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
)

// MIMETypeIssue is the MIME type assigned to rendered issue threads.
// Issue bodies are GitHub-flavoured Markdown, so the Markdown loader
// takes them.
const MIMETypeIssue = "text/markdown"

// buildIssueDocument renders an issue and its comment thread as a
// single Markdown narrative.
func buildIssueDocument(
	owner, name string, issue *gh.Issue, comments []*gh.IssueComment,
) domain.RawDocument {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", issue.GetTitle())
	if body := strings.TrimSpace(issue.GetBody()); body != "" {
		sb.WriteString(body)
		sb.WriteString("\n")
	}
	for _, comment := range comments {
		if body := strings.TrimSpace(comment.GetBody()); body != "" {
			sb.WriteString("\n")
			sb.WriteString(body)
			sb.WriteString("\n")
		}
	}

	labels := make([]string, len(issue.Labels))
	for i, l := range issue.Labels {
		labels[i] = l.GetName()
	}

	return domain.RawDocument{
		Source:   "github",
		URI:      buildIssueURI(owner, name, issue.GetNumber()),
		MIMEType: MIMETypeIssue,
		Content:  []byte(sb.String()),
		Metadata: map[string]any{
			"title":      issue.GetTitle(),
			"owner":      owner,
			"repo":       name,
			"number":     issue.GetNumber(),
			"state":      issue.GetState(),
			"author":     issue.GetUser().GetLogin(),
			"labels":     labels,
			"comments":   len(comments),
			"html_url":   issue.GetHTMLURL(),
			"created_at": issue.GetCreatedAt().Format(time.RFC3339),
			"updated_at": issue.GetUpdatedAt().Format(time.RFC3339),
		},
	}
}

// buildIssueURI creates a URI for an issue.
func buildIssueURI(owner, name string, number int) string {
	return fmt.Sprintf("github://%s/%s/issues/%d", owner, name, number)
}
