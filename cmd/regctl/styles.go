package main

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	successColor = lipgloss.Color("#04B575")
	errorColor   = lipgloss.Color("#FF4B4B")
	typeColor    = lipgloss.Color("#00D7FF")
	keyColor     = lipgloss.Color("#7D56F4")

	successStyle = lipgloss.NewStyle().Foreground(successColor)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(errorColor)
	typeStyle    = lipgloss.NewStyle().Foreground(typeColor)
	keyStyle     = lipgloss.NewStyle().Bold(true).Foreground(keyColor)
)

func renderSuccess(s string) string {
	if noColor {
		return s
	}
	return successStyle.Render(s)
}

func renderError(err error) string {
	msg := "Error: " + err.Error()
	if noColor {
		return msg
	}
	return errorStyle.Render(msg)
}

func renderType(s string) string {
	if noColor {
		return s
	}
	return typeStyle.Render(s)
}

func renderKey(s string) string {
	if noColor {
		return s
	}
	return keyStyle.Render(s)
}
