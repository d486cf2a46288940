package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/desertthunder/catalog/internal/models"
	"github.com/desertthunder/catalog/internal/shared"
	"github.com/desertthunder/catalog/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	MenuView ViewState = iota
	ArtistListView
	AlbumListView
	TrackListView
	PlaylistListView
	PlaylistTrackView
	ConfirmView
	ExportView
	ResultView
)

// Model represents the TUI application state.
type Model struct {
	ctx        context.Context
	view       ViewState
	catalog    Catalog
	exporter   *tasks.Exporter
	exportOpts tasks.BulkExportOpts
	width      int
	height     int

	menu              list.Model
	artistList        list.Model
	albumList         list.Model
	trackList         list.Model
	playlistList      list.Model
	playlistTrackList list.Model

	artist      *models.Artist
	album       *models.AlbumRow
	playlist    *models.Playlist
	confirmFrom ViewState

	progressChan chan tasks.ProgressUpdate
	done         chan Msg
	progress     tasks.ProgressUpdate
	result       *tasks.BulkExportResult
	err          error
	help         help.Model
	keys         keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
//
// opts configures playlist exports started from the browser; its OutputDir and Format follow [tasks.BulkExportOpts] defaults when empty.
func NewModel(ctx context.Context, catalog Catalog, exporter *tasks.Exporter, opts tasks.BulkExportOpts) *Model {
	m := &Model{
		ctx:        ctx,
		view:       MenuView,
		catalog:    catalog,
		exporter:   exporter,
		exportOpts: opts,
		help:       help.New(),
		keys:       newKeyMap(),
	}
	m.menu = m.newList(MenuView, "Catalog", []list.Item{
		menuItem{title: "Artists", desc: "Browse artists, their albums and tracks", target: ArtistListView},
		menuItem{title: "Playlists", desc: "Browse and export playlists", target: PlaylistListView},
	})
	m.artistList = m.newList(ArtistListView, "Artists", nil)
	m.albumList = m.newList(AlbumListView, "Albums", nil)
	m.trackList = m.newList(TrackListView, "Tracks", nil)
	m.playlistList = m.newList(PlaylistListView, "Playlists", nil)
	m.playlistTrackList = m.newList(PlaylistTrackView, "Playlist tracks", nil)
	return m
}

// Init starts on the menu; nothing is loaded until a path is chosen.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, l := range m.lists() {
			l.SetSize(m.listSize())
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case Msg:
		return m.handleMsg(msg)
	}

	return m.updateList(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil && m.view != ResultView {
		return fmt.Sprintf("%s\n\n%s",
			styles.err.Render(fmt.Sprintf("Error: %v", m.err)),
			m.help.ShortHelpView([]key.Binding{m.keys.back, m.keys.quit}))
	}

	switch m.view {
	case MenuView:
		return m.renderList(&m.menu, m.keys.enter, m.keys.quit)
	case ArtistListView:
		return m.renderList(&m.artistList, m.keys.enter, m.keys.back, m.keys.quit)
	case AlbumListView:
		return m.renderList(&m.albumList, m.keys.enter, m.keys.back, m.keys.quit)
	case TrackListView:
		return m.renderList(&m.trackList, m.keys.back, m.keys.menu, m.keys.quit)
	case PlaylistListView:
		return m.renderList(&m.playlistList, m.keys.enter, m.keys.export, m.keys.back, m.keys.quit)
	case PlaylistTrackView:
		return m.renderList(&m.playlistTrackList, m.keys.export, m.keys.back, m.keys.quit)
	case ConfirmView:
		return m.renderConfirm()
	case ExportView:
		return m.renderExport()
	case ResultView:
		return m.renderResult()
	default:
		return ""
	}
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	l := m.current()
	if l != nil && l.FilterState() == list.Filtering {
		return m.updateList(msg)
	}
	if key.Matches(msg, m.keys.quit) {
		return m, tea.Quit
	}

	if m.err != nil && m.view != ResultView {
		if key.Matches(msg, m.keys.back) {
			m.err = nil
		}
		return m, nil
	}

	if l != nil && l.FilterState() == list.FilterApplied && key.Matches(msg, m.keys.back) {
		return m.updateList(msg)
	}
	if l != nil && m.view != MenuView && key.Matches(msg, m.keys.menu) {
		m.view = MenuView
		return m, nil
	}

	switch m.view {
	case MenuView:
		if key.Matches(msg, m.keys.enter) {
			if item, ok := m.menu.SelectedItem().(menuItem); ok {
				return m, m.open(item.target)
			}
		}

	case ArtistListView:
		switch {
		case key.Matches(msg, m.keys.back):
			m.view = MenuView
			return m, nil
		case key.Matches(msg, m.keys.enter):
			if item, ok := m.artistList.SelectedItem().(artistItem); ok {
				m.artist = &item.artist
				return m, m.fetchAlbums(item.artist.ID)
			}
		}

	case AlbumListView:
		switch {
		case key.Matches(msg, m.keys.back):
			m.view = ArtistListView
			return m, nil
		case key.Matches(msg, m.keys.enter):
			if item, ok := m.albumList.SelectedItem().(albumItem); ok {
				m.album = &item.album
				return m, m.fetchTracks(item.album.AlbumID)
			}
		}

	case TrackListView:
		if key.Matches(msg, m.keys.back) {
			m.view = AlbumListView
			return m, nil
		}

	case PlaylistListView:
		switch {
		case key.Matches(msg, m.keys.back):
			m.view = MenuView
			return m, nil
		case key.Matches(msg, m.keys.enter), key.Matches(msg, m.keys.export):
			item, ok := m.playlistList.SelectedItem().(playlistItem)
			if !ok {
				break
			}
			m.playlist = &item.playlist
			if key.Matches(msg, m.keys.export) {
				m.confirm()
				return m, nil
			}
			return m, m.fetchPlaylistTracks(item.playlist.ID)
		}

	case PlaylistTrackView:
		switch {
		case key.Matches(msg, m.keys.back):
			m.view = PlaylistListView
			return m, nil
		case key.Matches(msg, m.keys.export):
			m.confirm()
			return m, nil
		}

	case ConfirmView:
		switch {
		case key.Matches(msg, m.keys.yes):
			m.view = ExportView
			return m, m.startExport()
		case key.Matches(msg, m.keys.no), key.Matches(msg, m.keys.back):
			m.view = m.confirmFrom
		}
		return m, nil

	case ExportView:
		return m, nil

	case ResultView:
		switch {
		case key.Matches(msg, m.keys.back), key.Matches(msg, m.keys.enter):
			m.view = m.confirmFrom
			m.result, m.err = nil, nil
		case key.Matches(msg, m.keys.menu):
			m.view = MenuView
			m.result, m.err = nil, nil
		}
		return m, nil
	}

	return m.updateList(msg)
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgArtistsFetched:
		p := msg.data.(fetched[models.Artist])
		if p.err != nil {
			m.err = p.err
			return m, nil
		}
		m.artistList = m.newList(ArtistListView, "Artists", toItems(p.rows, func(a models.Artist) list.Item { return artistItem{artist: a} }))
		m.view = ArtistListView

	case MsgAlbumsFetched:
		p := msg.data.(fetched[models.AlbumRow])
		if p.err != nil {
			m.err = p.err
			return m, nil
		}
		m.albumList = m.newList(AlbumListView, fmt.Sprintf("Albums by %s", m.artist.Name),
			toItems(p.rows, func(a models.AlbumRow) list.Item { return albumItem{album: a} }))
		m.view = AlbumListView

	case MsgTracksFetched:
		p := msg.data.(fetched[models.TrackRow])
		if p.err != nil {
			m.err = p.err
			return m, nil
		}
		m.trackList = m.newList(TrackListView, fmt.Sprintf("Tracks on '%s'", m.album.Title),
			toItems(p.rows, func(t models.TrackRow) list.Item { return trackItem{track: t} }))
		m.view = TrackListView

	case MsgPlaylistsFetched:
		p := msg.data.(fetched[models.Playlist])
		if p.err != nil {
			m.err = p.err
			return m, nil
		}
		m.playlistList = m.newList(PlaylistListView, "Playlists", toItems(p.rows, func(pl models.Playlist) list.Item { return playlistItem{playlist: pl} }))
		m.view = PlaylistListView

	case MsgPlaylistTracksFetched:
		p := msg.data.(fetched[models.PlaylistTrackRow])
		if p.err != nil {
			m.err = p.err
			return m, nil
		}
		m.playlistTrackList = m.newList(PlaylistTrackView, fmt.Sprintf("Tracks in '%s'", m.playlist.Name),
			toItems(p.rows, func(t models.PlaylistTrackRow) list.Item { return playlistTrackItem{track: t} }))
		m.view = PlaylistTrackView

	case MsgProgressUpdate:
		m.progress = msg.data.(tasks.ProgressUpdate)
		return m, m.waitForProgress()

	case MsgExportComplete:
		p := msg.data.(exported)
		m.result = p.result
		m.err = p.err
		m.view = ResultView
		m.progressChan, m.done = nil, nil
	}
	return m, nil
}

func (m *Model) confirm() {
	m.confirmFrom = m.view
	m.view = ConfirmView
}

// open loads the first list of a drill-down path.
func (m *Model) open(target ViewState) tea.Cmd {
	switch target {
	case ArtistListView:
		return m.fetchArtists()
	case PlaylistListView:
		return m.fetchPlaylists()
	default:
		return nil
	}
}

// current returns the list shown by the current view, or nil.
func (m *Model) current() *list.Model {
	switch m.view {
	case MenuView:
		return &m.menu
	case ArtistListView:
		return &m.artistList
	case AlbumListView:
		return &m.albumList
	case TrackListView:
		return &m.trackList
	case PlaylistListView:
		return &m.playlistList
	case PlaylistTrackView:
		return &m.playlistTrackList
	default:
		return nil
	}
}

func (m *Model) lists() []*list.Model {
	return []*list.Model{&m.menu, &m.artistList, &m.albumList, &m.trackList, &m.playlistList, &m.playlistTrackList}
}

func (m *Model) listSize() (int, int) {
	return max(m.width-4, 0), max(m.height-8, 0)
}

func (m *Model) newList(v ViewState, title string, items []list.Item) list.Model {
	l := list.New(items, styles.delegate(v), 0, 0)
	l.Title = title
	l.Styles.Title = styles.listTitle(v)
	l.SetSize(m.listSize())
	return l
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	l := m.current()
	if l == nil {
		return m, nil
	}

	var cmd tea.Cmd
	*l, cmd = l.Update(msg)
	return m, cmd
}

func (m *Model) fetchArtists() tea.Cmd {
	return func() tea.Msg {
		rows, err := m.catalog.Artists(m.ctx)
		return artistsFetchedMsg(rows, err)
	}
}

func (m *Model) fetchAlbums(artistID int64) tea.Cmd {
	return func() tea.Msg {
		rows, err := m.catalog.AlbumsByArtist(m.ctx, artistID)
		return albumsFetchedMsg(rows, err)
	}
}

func (m *Model) fetchTracks(albumID int64) tea.Cmd {
	return func() tea.Msg {
		rows, err := m.catalog.TracksByAlbum(m.ctx, albumID)
		return tracksFetchedMsg(rows, err)
	}
}

func (m *Model) fetchPlaylists() tea.Cmd {
	return func() tea.Msg {
		rows, err := m.catalog.Playlists(m.ctx)
		return playlistsFetchedMsg(rows, err)
	}
}

func (m *Model) fetchPlaylistTracks(playlistID int64) tea.Cmd {
	return func() tea.Msg {
		rows, err := m.catalog.PlaylistTracks(m.ctx, playlistID)
		return playlistTracksFetchedMsg(rows, err)
	}
}

// startExport runs a single-playlist export in the background. Progress and the final result arrive as messages.
func (m *Model) startExport() tea.Cmd {
	if m.exporter == nil {
		return func() tea.Msg {
			return exportCompleteMsg(nil, fmt.Errorf("%w: exporter not initialized", shared.ErrMissingArgument))
		}
	}

	progress := make(chan tasks.ProgressUpdate, 50)
	done := make(chan Msg, 1)
	m.progressChan, m.done = progress, done
	m.progress = tasks.ProgressUpdate{}

	id, opts := m.playlist.ID, m.exportOpts
	go func() {
		result, err := m.exporter.BulkExport(m.ctx, progress, []int64{id}, opts)
		close(progress)
		done <- exportCompleteMsg(result, err)
	}()

	return m.waitForProgress()
}

func (m *Model) waitForProgress() tea.Cmd {
	progress, done := m.progressChan, m.done
	return func() tea.Msg {
		if update, ok := <-progress; ok {
			return progressUpdateMsg(update)
		}
		return <-done
	}
}

func (m *Model) renderList(l *list.Model, keys ...key.Binding) string {
	return fmt.Sprintf("%s\n\n%s", l.View(), m.help.ShortHelpView(keys))
}

func (m *Model) renderConfirm() string {
	title := styles.title.Render(fmt.Sprintf("Export '%s'?", m.playlist.Name))

	format, dir := m.exportOpts.Format, m.exportOpts.OutputDir
	if format == "" {
		format = "json"
	}
	if dir == "" {
		dir = "a new catalog_export_* directory"
	}
	info := fmt.Sprintf("\nPlaylist: %s\nFormat: %s\nOutput: %s\n", m.playlist.Name, format, dir)

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.yes, m.keys.no, m.keys.quit})
	return fmt.Sprintf("%s\n%s\n%s", title, info, helpView)
}

func (m *Model) renderExport() string {
	title := styles.title.Render("Exporting Playlist")

	var phase string
	switch m.progress.Phase {
	case tasks.FetchPlaylist:
		phase = fmt.Sprintf("Loading tracks (%d/%d)", m.progress.Step, m.progress.Total)
	case tasks.ExportPlaylist:
		phase = fmt.Sprintf("Writing files (%d/%d)", m.progress.Step, m.progress.Total)
	case tasks.WriteManifest:
		phase = "Writing manifest..."
	default:
		phase = "Starting..."
	}

	return fmt.Sprintf("%s\n\n%s\n%s", title, phase, styles.help.Render(m.progress.Message))
}

func (m *Model) renderResult() string {
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.back, m.keys.menu, m.keys.quit})

	if m.err != nil {
		return fmt.Sprintf("%s\n\n%s", styles.err.Render(fmt.Sprintf("Export failed: %v", m.err)), helpView)
	}
	if m.result == nil || len(m.result.Results) == 0 {
		return fmt.Sprintf("%s\n\n%s", styles.err.Render("No result available"), helpView)
	}

	res := m.result.Results[0]
	if !res.Success {
		failed := styles.warn.Render(fmt.Sprintf("Failed to export %s: %s", res.PlaylistName, res.ErrorMessage))
		return fmt.Sprintf("%s\n\n%s", failed, helpView)
	}

	var b strings.Builder
	b.WriteString(styles.ok.Render("✓ Export Complete!"))
	fmt.Fprintf(&b, "\n\nPlaylist: %s\nFiles:\n", res.PlaylistName)
	for _, f := range res.Files {
		fmt.Fprintf(&b, "  • %s\n", f)
	}
	if m.result.ManifestPath != "" {
		fmt.Fprintf(&b, "Manifest: %s\n", m.result.ManifestPath)
	}
	return fmt.Sprintf("%s\n%s", b.String(), helpView)
}
