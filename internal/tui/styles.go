// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	statusStyle     = lipgloss.NewStyle().Italic(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	cellStyle   = lipgloss.NewStyle().Width(3).Align(lipgloss.Center)
	cursorStyle = cellStyle.Reverse(true)
	xStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	oStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	emptyStyle  = lipgloss.NewStyle().Faint(true)
)
