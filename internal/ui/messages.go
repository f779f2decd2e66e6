package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// QuitMsg signals the application should quit.
type QuitMsg struct{}

// RestartMsg signals the wizard should reset for the next customer.
type RestartMsg struct{}

// ErrorMsg carries an error to be displayed.
type ErrorMsg struct {
	Err error
}

// StatusMsg carries a status update for the footer.
type StatusMsg struct {
	Message string
	IsError bool
}

// Command constructors

// ReportError returns a command that reports an error.
func ReportError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// Quit returns a command that quits the application.
func Quit() tea.Cmd {
	return func() tea.Msg {
		return QuitMsg{}
	}
}

// Restart returns a command that resets the wizard for the next customer.
func Restart() tea.Cmd {
	return func() tea.Msg {
		return RestartMsg{}
	}
}

// SendStatus returns a command that sends a footer status update.
func SendStatus(message string, isError bool) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Message: message, IsError: isError}
	}
}
