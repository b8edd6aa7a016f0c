package console

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mekvam/logdeck/internal/apiclient"
	"github.com/mekvam/logdeck/internal/apitypes"
	"github.com/rs/zerolog"
)

// DisplayMode tags what the content area currently shows. It always reflects
// the most recently completed request for the active stream; late responses
// from a previously selected stream are discarded before they can touch it.
type DisplayMode int

const (
	ModeTail DisplayMode = iota
	ModeSearching
	ModeSearchResults
	ModeEmpty
	ModeNotFound
	ModeError
)

const (
	loadingPlaceholder   = "Loading..."
	noLogFilePlaceholder = "No log file yet. The service creates it on first write."
	emptyLogPlaceholder  = "Log is empty."
	searchingPlaceholder = "Searching..."
	noMatchesPlaceholder = "No matches found."
)

// Model is the console session: one state object owned by the Update loop,
// mutated only through its own messages.
type Model struct {
	client     *apiclient.Client
	log        zerolog.Logger
	archiveDir string

	activeStream apitypes.Stream
	displayMode  DisplayMode
	content      string

	stats      apitypes.StatsResponse
	statsKnown bool

	searchInput textinput.Model
	countLabel  string

	confirming bool
	status     string

	viewport viewport.Model
	width    int
	height   int
	ready    bool
	quitting bool
}

func New(client *apiclient.Client, archiveDir string, log zerolog.Logger) Model {
	si := textinput.New()
	si.Placeholder = "search..."
	si.CharLimit = 200
	si.Prompt = "/ "

	return Model{
		client:       client,
		log:          log,
		archiveDir:   archiveDir,
		activeStream: apitypes.StreamRequests,
		displayMode:  ModeTail,
		content:      loadingPlaceholder,
		searchInput:  si,
		width:        100,
		height:       30,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadTailCmd(m.client, m.activeStream),
		loadStatsCmd(m.client, m.activeStream),
	)
}

// ActiveStream exposes the current stream selection.
func (m Model) ActiveStream() apitypes.Stream { return m.activeStream }

// Mode exposes the current display mode.
func (m Model) Mode() DisplayMode { return m.displayMode }

// Content exposes the text currently bound to the content area.
func (m Model) Content() string { return m.content }

// CountLabel exposes the match-count area text.
func (m Model) CountLabel() string { return m.countLabel }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := max(1, m.height-chromeHeight)
		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
			if m.displayMode == ModeTail {
				m.viewport.GotoBottom()
			}
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tailLoadedMsg:
		if msg.stream != m.activeStream {
			m.log.Debug().Str("stream", string(msg.stream)).Msg("discarding stale tail response")
			return m, nil
		}
		if strings.TrimSpace(msg.body) == "" {
			m.displayMode = ModeEmpty
			m.setContent(emptyLogPlaceholder, false)
		} else {
			m.displayMode = ModeTail
			m.setContent(msg.body, true)
		}
		return m, nil

	case tailFailedMsg:
		if msg.stream != m.activeStream {
			return m, nil
		}
		if errors.Is(msg.err, apiclient.ErrNoLogFile) {
			m.displayMode = ModeNotFound
			m.setContent(noLogFilePlaceholder, false)
		} else {
			m.displayMode = ModeError
			m.setContent("failed to load log: "+msg.err.Error(), false)
		}
		return m, nil

	case statsLoadedMsg:
		if msg.stream != m.activeStream {
			return m, nil
		}
		m.stats = msg.stats
		m.statsKnown = true
		return m, nil

	case statsFailedMsg:
		// Stale values stay on screen; a failed refresh never blanks the
		// stats panel.
		if msg.stream == m.activeStream {
			m.log.Warn().Err(msg.err).Msg("stats refresh failed")
		}
		return m, nil

	case searchDoneMsg:
		if msg.stream != m.activeStream {
			m.log.Debug().Str("stream", string(msg.stream)).Msg("discarding stale search response")
			return m, nil
		}
		m.displayMode = ModeSearchResults
		m.countLabel = matchLabel(msg.resp.Count)
		if msg.resp.Count > 0 && len(msg.resp.Results) > 0 {
			m.setContent(strings.Join(msg.resp.Results, "\n"), false)
		} else {
			m.setContent(noMatchesPlaceholder, false)
		}
		return m, nil

	case searchFailedMsg:
		if msg.stream != m.activeStream {
			return m, nil
		}
		m.displayMode = ModeError
		m.setContent("search failed: "+msg.err.Error(), false)
		m.countLabel = ""
		return m, nil

	case archiveDoneMsg:
		if msg.err != nil {
			m.status = "archive failed: " + msg.err.Error()
		} else {
			m.status = "archive saved to " + msg.path
		}
		return m, nil

	case resetMsg:
		// Fires a fixed delay after archiving, against whatever stream is
		// current by then. Last writer wins.
		cmd := m.fullReset()
		return m, cmd
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirming {
		switch msg.String() {
		case "y", "Y":
			m.confirming = false
			m.status = "archiving " + m.activeStream.Label() + " log..."
			return m, tea.Batch(
				archiveCmd(m.client, m.activeStream, m.archiveDir),
				resetTickCmd(),
			)
		case "n", "N", "esc":
			m.confirming = false
		}
		return m, nil
	}

	if m.searchInput.Focused() {
		switch msg.String() {
		case "enter":
			m.searchInput.Blur()
			return m.submitSearch(m.searchInput.Value())
		case "esc":
			m.searchInput.Blur()
			m.searchInput.SetValue("")
			return m.submitSearch("")
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "1":
		return m.switchStream(apitypes.StreamRequests)

	case "2":
		return m.switchStream(apitypes.StreamErrors)

	case "tab":
		if m.activeStream == apitypes.StreamRequests {
			return m.switchStream(apitypes.StreamErrors)
		}
		return m.switchStream(apitypes.StreamRequests)

	case "/":
		m.searchInput.Focus()
		return m, textinput.Blink

	case "r":
		cmd := m.fullReset()
		return m, cmd

	case "a":
		m.confirming = true
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// switchStream changes the active stream and performs a full reset. A no-op
// when the target is already selected.
func (m Model) switchStream(target apitypes.Stream) (tea.Model, tea.Cmd) {
	if target == m.activeStream {
		return m, nil
	}
	m.activeStream = target
	cmd := m.fullReset()
	return m, cmd
}

// fullReset clears the search state and re-triggers the tail and stats loads
// for the active stream. Used on start, stream switch and after archiving.
func (m *Model) fullReset() tea.Cmd {
	m.searchInput.SetValue("")
	m.searchInput.Blur()
	m.countLabel = ""
	m.setContent(loadingPlaceholder, false)
	return tea.Batch(
		loadTailCmd(m.client, m.activeStream),
		loadStatsCmd(m.client, m.activeStream),
	)
}

// submitSearch runs a scoped query, or falls back to the tail view when the
// term is empty.
func (m Model) submitSearch(term string) (tea.Model, tea.Cmd) {
	if term == "" {
		m.countLabel = ""
		m.setContent(loadingPlaceholder, false)
		return m, loadTailCmd(m.client, m.activeStream)
	}

	m.displayMode = ModeSearching
	m.setContent(searchingPlaceholder, false)
	m.countLabel = searchingPlaceholder
	return m, searchCmd(m.client, m.activeStream, term)
}

func (m *Model) setContent(text string, followTail bool) {
	m.content = text
	if m.ready {
		m.viewport.SetContent(text)
		if followTail {
			m.viewport.GotoBottom()
		} else {
			m.viewport.GotoTop()
		}
	}
}
