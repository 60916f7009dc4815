package render

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wrenware/repovis/internal/domain"
)

// Status markers prefixed to every user-facing outcome message.
const (
	SuccessMark = "✅" // ✅
	ErrorMark   = "❌" // ❌
)

const defaultPadWidth = 20

var (
	nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	urlStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true)
)

// Line formats one repository for display: the name, left-padded to width
// (default when width <= 0, clamped when the name is longer), followed by
// the repository URL. It fails only when the URL does not parse.
func Line(repo domain.Repository, width int) (string, error) {
	if _, err := url.Parse(repo.URL); err != nil {
		return "", fmt.Errorf("parsing repository URL %q: %w", repo.URL, err)
	}
	if width <= 0 {
		width = defaultPadWidth
	}
	pad := width - len(repo.Name)
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + nameStyle.Render(repo.Name) + " " + urlStyle.Render(repo.URL), nil
}

// WebURL rewrites an API-domain repository URL into its browsable
// web-domain form: the "api." host label is dropped and, for the listing
// endpoint's /repos/{owner}/{name} shape, so is the leading /repos path
// segment. Any other URL is returned unchanged.
func WebURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || !strings.HasPrefix(u.Host, "api.") {
		return raw
	}
	u.Host = strings.TrimPrefix(u.Host, "api.")
	if rest, ok := strings.CutPrefix(u.Path, "/repos/"); ok {
		u.Path = "/" + rest
	}
	return u.String()
}
