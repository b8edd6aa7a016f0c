package apiclient

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/mekvam/logdeck/internal/apitypes"
	"github.com/mekvam/logdeck/internal/constants"
	"github.com/mekvam/logdeck/internal/helpers"
)

// Tail fetches the raw content of the stream's log file. A 404 maps to
// ErrNoLogFile; other non-2xx statuses map to StatusError.
func (c *Client) Tail(ctx context.Context, stream apitypes.Stream) (string, error) {
	resp, err := c.do(ctx, "/api/logs/"+stream.LogFile())
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrNoLogFile
	}
	if !is2xx(resp.StatusCode) {
		return "", statusError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read tail response: %w", err)
	}
	return string(body), nil
}

// Stats fetches the stream's current size and retention cap.
func (c *Client) Stats(ctx context.Context, stream apitypes.Stream) (*apitypes.StatsResponse, error) {
	query := url.Values{"type": {string(stream)}}
	var response apitypes.StatsResponse
	if err := c.getJSON(ctx, "/api/logs/stats?"+query.Encode(), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Search runs a scoped query against the stream. The server caps the result
// list; the client passes it through untouched.
func (c *Client) Search(ctx context.Context, stream apitypes.Stream, term string) (*apitypes.SearchResponse, error) {
	query := url.Values{"q": {term}, "type": {string(stream)}}
	var response apitypes.SearchResponse
	if err := c.getJSON(ctx, "/api/logs/search?"+query.Encode(), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Archive downloads the stream's current log file into destDir and returns
// the written path. Serving the download and truncating the live file are one
// server-side operation; a successful response means the file was cleared.
func (c *Client) Archive(ctx context.Context, stream apitypes.Stream, destDir string) (string, error) {
	query := url.Values{"type": {string(stream)}}
	resp, err := c.do(ctx, "/api/logs/archive?"+query.Encode())
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrNoLogFile
	}
	if !is2xx(resp.StatusCode) {
		return "", statusError(resp)
	}

	path := filepath.Join(destDir, archiveFilename(resp.Header.Get("Content-Disposition"), stream))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.ModeFileDefault)
	if err != nil {
		return "", fmt.Errorf("failed to create archive file: %w", err)
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write archive file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close archive file: %w", err)
	}
	return path, nil
}

// archiveFilename prefers the server-provided attachment name, falling back
// to a timestamped local name.
func archiveFilename(disposition string, stream apitypes.Stream) string {
	if disposition != "" {
		if _, params, err := mime.ParseMediaType(disposition); err == nil {
			if name := helpers.SanitizeFilename(params["filename"]); name != "" {
				return name
			}
		}
	}
	return fmt.Sprintf("%s_archive_%s.log", stream, time.Now().Format(constants.ArchiveTimestampLayout))
}
