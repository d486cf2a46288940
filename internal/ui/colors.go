package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Colors used by the browser. The artist path and the playlist path each have their own accent.
const (
	colorArtists   = "#7D56F4"
	colorPlaylists = "#F25D94"
	colorOK        = "#04B575"
	colorErr       = "#FF5F87"
	colorWarn      = "#FFA500"
	colorMuted     = "#626262"
	colorTitleText = "#FFFDF5"
)

var styles = NewPalette()

// Palette holds the named [lipgloss.Style] values shared by every view.
type Palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
	warn  lipgloss.Style
	help  lipgloss.Style
}

func NewPalette() *Palette {
	return &Palette{
		title: NewBold(colorPlaylists).MarginBottom(1),
		ok:    NewBold(colorOK),
		err:   NewBold(colorErr),
		warn:  NewStyle(colorWarn),
		help:  NewEm(colorMuted),
	}
}

// accent returns the section color for v.
func accent(v ViewState) string {
	switch v {
	case PlaylistListView, PlaylistTrackView, ConfirmView, ExportView, ResultView:
		return colorPlaylists
	case MenuView:
		return colorMuted
	default:
		return colorArtists
	}
}

// listTitle is the banner style for a list shown in view v.
func (p *Palette) listTitle(v ViewState) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(accent(v))).
		Foreground(lipgloss.Color(colorTitleText)).
		Padding(0, 1)
}

// delegate renders list rows with the selection highlighted in the section color.
func (p *Palette) delegate(v ViewState) list.DefaultDelegate {
	c := lipgloss.Color(accent(v))

	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.Foreground(c).BorderLeftForeground(c)
	d.Styles.SelectedDesc = d.Styles.SelectedDesc.Foreground(c).BorderLeftForeground(c)
	return d
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}
