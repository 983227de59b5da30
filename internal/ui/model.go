// Package ui implements the interactive guide browser for 'guidebook browse'.
package ui

import (
	"fmt"
	"strings"

	"guidebook/internal/catalog"
	"guidebook/internal/render"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type state int

const (
	stateList state = iota
	stateReading
)

type model struct {
	docs         []catalog.Doc
	cursor       int
	currentState state
	viewport     viewport.Model
	width        int
	height       int
	ready        bool
}

// Run starts the browser over the given guides and blocks until it exits.
func Run(docs []catalog.Doc) error {
	p := tea.NewProgram(initialModel(docs), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func initialModel(docs []catalog.Doc) model {
	return model{docs: docs, currentState: stateList}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Leave room for the header and footer around the viewport.
		m.viewport = viewport.New(msg.Width, max(msg.Height-4, 1))
		m.ready = true
		if m.currentState == stateReading {
			m.viewport.SetContent(m.readingContent())
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Back):
			if m.currentState == stateReading {
				m.currentState = stateList
			}
			return m, nil
		}

		switch m.currentState {
		case stateList:
			return m.updateList(msg), nil
		case stateReading:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m model) updateList(msg tea.KeyMsg) model {
	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.docs)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Read):
		if len(m.docs) > 0 && m.ready {
			m.currentState = stateReading
			m.viewport.SetContent(m.readingContent())
			m.viewport.GotoTop()
		}
	}
	return m
}

func (m model) readingContent() string {
	return render.Colorize(m.docs[m.cursor].Body)
}

func (m model) View() string {
	if !m.ready {
		return "loading..."
	}
	switch m.currentState {
	case stateReading:
		return m.readingView()
	default:
		return m.listView()
	}
}

func (m model) listView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Guides"))
	b.WriteString("\n\n")
	for i, d := range m.docs {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		line := fmt.Sprintf("%s%s  %s", marker, slugStyle.Render(d.Slug), d.Title)
		if d.Draft {
			line += " " + draftStyle.Render("(draft)")
		}
		b.WriteString(line)
		b.WriteString("\n")
		if i == m.cursor && d.Description != "" {
			for _, l := range render.Wrap(d.Description, max(m.width-4, 20)) {
				b.WriteString("    " + descStyle.Render(l) + "\n")
			}
		}
	}
	b.WriteString("\n")
	b.WriteString(footer(keys.Up, keys.Down, keys.Read, keys.Quit))
	return b.String()
}

func (m model) readingView() string {
	d := m.docs[m.cursor]
	header := titleStyle.Render(d.Title) + " " + draftStyle.Render("("+d.Slug+")")
	return header + "\n\n" + m.viewport.View() + "\n" + footer(keys.Back, keys.Quit)
}

func footer(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerStyle.Render(h.Desc))
	}
	return footerStyle.Render(strings.Join(parts, footerStyle.Render(" | ")))
}
