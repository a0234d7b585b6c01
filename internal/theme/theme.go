package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes the Lip Gloss styles shared across the UI.
type Styles struct {
	Header        *lipgloss.Style
	Footer        *lipgloss.Style
	Error         *lipgloss.Style
	Info          *lipgloss.Style
	Item          *lipgloss.Style
	SelectedItem  *lipgloss.Style
	EmptyState    *lipgloss.Style
	EntryTitle    *lipgloss.Style
	WordCount     *lipgloss.Style
	WordCountOver *lipgloss.Style
	PageInfo      *lipgloss.Style
	SearchPrompt  *lipgloss.Style
	Placeholder   *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	EmptyState: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	EntryTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	WordCount: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	WordCountOver: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	),
	PageInfo: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	SearchPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
