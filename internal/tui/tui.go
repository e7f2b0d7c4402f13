// Package tui is the interactive viewer: a table, an outline and the outline text of one
// document, with row reordering, cell detail and quickfill hints.
package tui

import (
	"aboutliner/internal/model"
	"aboutliner/internal/quickfill"
	"aboutliner/internal/textconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Options struct {
	Title        string
	Data         model.SectionData
	TextOptions  textconv.Options
	Catalog      quickfill.Catalog
	Style        string
	MaxCellWidth int
	// InputTTY reads keys from the terminal when stdin carried the document.
	InputTTY bool
}

func Run(opts Options) error {
	applyColorProfilePreference()
	opts.Style = resolveStyle(opts.Style)
	lipgloss.SetHasDarkBackground(opts.Style != "light")

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.InputTTY {
		progOpts = append(progOpts, tea.WithInputTTY())
	}
	_, err := tea.NewProgram(newAppModel(opts), progOpts...).Run()
	return err
}
