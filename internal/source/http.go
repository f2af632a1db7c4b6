package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"svw.info/sudoku-tui/internal/domain"
	"svw.info/sudoku-tui/internal/ports"
)

// HTTP fetches puzzles from the remote generator service.
type HTTP struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTP builds a source against baseURL authenticating with apiKey.
// Requests are logged at debug level through logger.
func NewHTTP(baseURL, apiKey string, logger *slog.Logger) *HTTP {
	return &HTTP{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Transport: &loggingTransport{base: http.DefaultTransport, logger: logger},
		},
	}
}

// generateResp mirrors the service's /generate-sudoku body. Error is
// populated on non-2xx responses.
// []int rather than []uint8: encoding/json would read []uint8 as a
// base64 string, not a number array.
type generateResp struct {
	Difficulty string `json:"difficulty,omitempty"`
	Puzzle     []int  `json:"puzzle"`
	Solution   []int  `json:"solution"`
	Error      string `json:"error,omitempty"`
}

// Fetch issues a single GET against /generate-sudoku. Any failure
// (transport, status, body shape) comes back as a descriptive error
// with no partial puzzle.
func (s *HTTP) Fetch(ctx context.Context, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	u := s.baseURL + "/generate-sudoku?difficulty=" + url.QueryEscape(d.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	req.Header.Set("X-Api-Key", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, fmt.Errorf("puzzle service unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	st := ports.Stats{Bytes: len(body), Duration: time.Since(start)}
	if err != nil {
		return nil, st, fmt.Errorf("puzzle service: reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &e) == nil && e.Error != "" {
			return nil, st, fmt.Errorf("puzzle service: %s (%s)", e.Error, resp.Status)
		}
		return nil, st, fmt.Errorf("puzzle service: unexpected status %s", resp.Status)
	}

	var gr generateResp
	if err := json.Unmarshal(body, &gr); err != nil {
		return nil, st, fmt.Errorf("puzzle service: invalid JSON: %w", err)
	}
	if len(gr.Puzzle) != domain.GridSize || len(gr.Solution) != domain.GridSize {
		return nil, st, fmt.Errorf("puzzle service: got %d/%d cells, want %d/%d",
			len(gr.Puzzle), len(gr.Solution), domain.GridSize, domain.GridSize)
	}

	p := &domain.Puzzle{Difficulty: d}
	for i := 0; i < domain.GridSize; i++ {
		if gr.Puzzle[i] < 0 || gr.Puzzle[i] > 9 || gr.Solution[i] < 0 || gr.Solution[i] > 9 {
			return nil, st, fmt.Errorf("puzzle service: cell %d out of range", i)
		}
		p.Givens[i] = uint8(gr.Puzzle[i])
		p.Solution[i] = uint8(gr.Solution[i])
	}
	if err := p.Check(); err != nil {
		return nil, st, fmt.Errorf("puzzle service: %w", err)
	}
	return p, st, nil
}

// loggingTransport logs method, url, status, bytes, and duration for
// every request that goes out.
type loggingTransport struct {
	base   http.RoundTripper
	logger *slog.Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	dur := time.Since(start)
	if err != nil {
		t.logger.Debug("http",
			"method", req.Method,
			"url", req.URL.String(),
			"err", err,
			"dur", dur.Round(time.Millisecond),
		)
		return nil, err
	}
	t.logger.Debug("http",
		"method", req.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"bytes", resp.ContentLength,
		"dur", dur.Round(time.Millisecond),
	)
	return resp, nil
}
