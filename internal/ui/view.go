package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	endpoint := m.endpoints[m.active]
	b.WriteString(titleStyle.Render("items board"))
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("backend: %s (%s)", endpoint.Name, endpoint.URL)))
	b.WriteString("\n\n")

	b.WriteString(panelStyle.Render(m.itemsPanel()))
	b.WriteString("\n")
	b.WriteString(panelStyle.Render(m.profilePanel()))

	help := "a add · d delete · r reload · p profile · s switch backend · q quit"
	if m.adding {
		help = "enter next/submit · tab switch field · esc cancel"
	}
	if m.confirming {
		help = "delete selected item? y/n"
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}

func (m Model) itemsPanel() string {
	var lines []string
	lines = append(lines, headerStyle.Render("Items"))

	switch m.itemsState {
	case stateIdle:
		lines = append(lines, mutedStyle.Render("press r to load items"))
	case stateLoading:
		lines = append(lines, mutedStyle.Render("loading…"))
	case stateError:
		lines = append(lines, errorStyle.Render("error: "+m.itemsErr))
	case stateSuccess:
		if len(m.items) == 0 {
			lines = append(lines, mutedStyle.Render("no items yet"))
		}
		for i, it := range m.items {
			prefix := "  "
			line := fmt.Sprintf("#%d %s · %s", it.ID, it.Title, it.Content)
			if i == m.cursor {
				prefix = selectedStyle.Render("> ")
				line = selectedStyle.Render(line)
			}
			lines = append(lines, prefix+line)
		}
	}

	if m.adding {
		lines = append(lines, "")
		lines = append(lines, "title:   "+m.inputs[0].View())
		lines = append(lines, "content: "+m.inputs[1].View())
		if m.formErr != "" {
			lines = append(lines, errorStyle.Render(m.formErr))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) profilePanel() string {
	var lines []string
	lines = append(lines, headerStyle.Render("GitHub profile"))

	switch m.profileState {
	case stateIdle:
		lines = append(lines, mutedStyle.Render("press p to fetch the server's GitHub profile"))
	case stateLoading:
		lines = append(lines, mutedStyle.Render("loading…"))
	case stateError:
		lines = append(lines, errorStyle.Render("error: "+m.profileErr))
	case stateSuccess:
		lines = append(lines, successStyle.Render("@"+m.profile.Login))
		if m.profile.Name != "" {
			lines = append(lines, m.profile.Name)
		}
		if m.profile.AvatarURL != "" {
			lines = append(lines, mutedStyle.Render(m.profile.AvatarURL))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
