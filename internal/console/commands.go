package console

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mekvam/logdeck/internal/apiclient"
	"github.com/mekvam/logdeck/internal/apitypes"
)

// archiveResetDelay is the fixed wait before the post-archive full reset.
// There is no confirmation that the server finished truncating; the delay is
// a best-effort heuristic. TODO: poll the stats endpoint for size 0 instead.
const archiveResetDelay = 2 * time.Second

// Every response message carries the stream captured when the request was
// issued. Update compares it against the current selection and drops
// mismatches, so a late response from a previous stream can never clobber
// the display.
type tailLoadedMsg struct {
	stream apitypes.Stream
	body   string
}

type tailFailedMsg struct {
	stream apitypes.Stream
	err    error
}

type statsLoadedMsg struct {
	stream apitypes.Stream
	stats  apitypes.StatsResponse
}

type statsFailedMsg struct {
	stream apitypes.Stream
	err    error
}

type searchDoneMsg struct {
	stream apitypes.Stream
	term   string
	resp   apitypes.SearchResponse
}

type searchFailedMsg struct {
	stream apitypes.Stream
	err    error
}

type archiveDoneMsg struct {
	stream apitypes.Stream
	path   string
	err    error
}

type resetMsg struct{}

func loadTailCmd(client *apiclient.Client, stream apitypes.Stream) tea.Cmd {
	return func() tea.Msg {
		body, err := client.Tail(context.Background(), stream)
		if err != nil {
			return tailFailedMsg{stream: stream, err: err}
		}
		return tailLoadedMsg{stream: stream, body: body}
	}
}

func loadStatsCmd(client *apiclient.Client, stream apitypes.Stream) tea.Cmd {
	return func() tea.Msg {
		stats, err := client.Stats(context.Background(), stream)
		if err != nil {
			return statsFailedMsg{stream: stream, err: err}
		}
		return statsLoadedMsg{stream: stream, stats: *stats}
	}
}

func searchCmd(client *apiclient.Client, stream apitypes.Stream, term string) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.Search(context.Background(), stream, term)
		if err != nil {
			return searchFailedMsg{stream: stream, err: err}
		}
		return searchDoneMsg{stream: stream, term: term, resp: *resp}
	}
}

func archiveCmd(client *apiclient.Client, stream apitypes.Stream, destDir string) tea.Cmd {
	return func() tea.Msg {
		path, err := client.Archive(context.Background(), stream, destDir)
		return archiveDoneMsg{stream: stream, path: path, err: err}
	}
}

func resetTickCmd() tea.Cmd {
	return tea.Tick(archiveResetDelay, func(time.Time) tea.Msg {
		return resetMsg{}
	})
}
