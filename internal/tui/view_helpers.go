// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-tic-tac-toe/internal/board"
	"github.com/MKhiriev/go-tic-tac-toe/models"
	"github.com/charmbracelet/bubbles/key"
)

const uiDivider = "──────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
	}

	return appStyle.Render(b.String())
}

// renderHotKeys joins the help of bindings as "key: action │ key: action".
func renderHotKeys(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, help.Key+": "+help.Desc)
	}
	return strings.Join(parts, " │ ")
}

// renderBoard draws g with the cursor cell highlighted. A negative cursor
// hides it.
func renderBoard(g board.Grid, cursor int) string {
	size := g.Size()
	separator := strings.Repeat("───┼", size-1) + "───"

	var b strings.Builder
	for row := 0; row < size; row++ {
		if row > 0 {
			b.WriteString(separator)
			b.WriteString("\n")
		}
		for col := 0; col < size; col++ {
			if col > 0 {
				b.WriteString("│")
			}
			i := row*size + col
			style := cellStyle
			if i == cursor {
				style = cursorStyle
			}
			b.WriteString(style.Render(renderMark(g.At(i))))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderMark(p models.Player) string {
	switch p {
	case models.PlayerX:
		return xStyle.Render("X")
	case models.PlayerO:
		return oStyle.Render("O")
	default:
		return emptyStyle.Render("·")
	}
}
