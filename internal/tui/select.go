package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wrenware/repovis/internal/domain"
)

var (
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	markStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	tagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// SelectModel is an immutable Bubbletea model that lets the user toggle a
// subset of the fetched repositories. Selection order is preserved: the
// caller processes repositories in the order they were toggled on.
type SelectModel struct {
	repos   []domain.Repository
	cursor  int
	order   []int
	chosen  map[int]bool
	done    bool
	aborted bool
}

// NewSelectModel creates a selector over the given repositories.
func NewSelectModel(repos []domain.Repository) SelectModel {
	return SelectModel{repos: repos, chosen: map[int]bool{}}
}

// Init implements tea.Model.
func (m SelectModel) Init() tea.Cmd {
	return nil
}

// Update handles key events.
func (m SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "down", "j":
		if m.cursor < len(m.repos)-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case " ":
		m = m.toggle(m.cursor)
	case "enter":
		m.done = true
		return m, tea.Quit
	case "q", "esc", "ctrl+c":
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m SelectModel) toggle(index int) SelectModel {
	chosen := make(map[int]bool, len(m.chosen))
	for k, v := range m.chosen {
		chosen[k] = v
	}
	var order []int
	if chosen[index] {
		delete(chosen, index)
		for _, i := range m.order {
			if i != index {
				order = append(order, i)
			}
		}
	} else {
		chosen[index] = true
		order = append(append([]int(nil), m.order...), index)
	}
	m.chosen = chosen
	m.order = order
	return m
}

// Selection returns the chosen indices in toggle order.
func (m SelectModel) Selection() []int {
	return append([]int(nil), m.order...)
}

// Aborted reports whether the user quit without confirming.
func (m SelectModel) Aborted() bool {
	return m.aborted
}

// View renders the selectable repository list.
func (m SelectModel) View() string {
	if len(m.repos) == 0 {
		return "No repositories found.\n"
	}
	var sb strings.Builder
	sb.WriteString(" Select repositories\n\n")
	for i, repo := range m.repos {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		mark := "[ ]"
		if m.chosen[i] {
			mark = markStyle.Render("[x]")
		}
		line := fmt.Sprintf("%s%s %s", cursor, mark, repo.Name)
		if tag := repo.VisibilityTag(); tag != "" {
			line += " " + tagStyle.Render("("+tag+")")
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString("\n ↑/↓: navigate   space: toggle   enter: confirm   q: abort\n")
	return sb.String()
}

// SelectRepositories runs the selector and returns the chosen indices in
// selection order. Aborting or confirming an empty selection returns
// domain.ErrNoSelection.
func SelectRepositories(repos []domain.Repository) ([]int, error) {
	program := tea.NewProgram(NewSelectModel(repos))
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("running repository selector: %w", err)
	}
	model, ok := final.(SelectModel)
	if !ok {
		return nil, fmt.Errorf("unexpected selector model type %T", final)
	}
	if model.Aborted() || len(model.Selection()) == 0 {
		return nil, domain.ErrNoSelection
	}
	return model.Selection(), nil
}
