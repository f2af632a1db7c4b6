package source

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"svw.info/sudoku-tui/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// wireBody builds a contract-conforming response: solution cycling
// 1..9 per row block, givens agreeing on a handful of cells.
func wireBody() (puzzle, solution []int) {
	puzzle = make([]int, domain.GridSize)
	solution = make([]int, domain.GridSize)
	for i := range solution {
		solution[i] = i%9 + 1
	}
	for _, i := range []int{0, 10, 20, 40, 80} {
		puzzle[i] = solution[i]
	}
	return puzzle, solution
}

func TestFetchSuccess(t *testing.T) {
	puzzle, solution := wireBody()
	var gotPath, gotKey, gotCT, gotDiff string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-Api-Key")
		gotCT = r.Header.Get("Content-Type")
		gotDiff = r.URL.Query().Get("difficulty")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"difficulty": "easy",
			"puzzle":     puzzle,
			"solution":   solution,
		})
	}))
	defer srv.Close()

	s := NewHTTP(srv.URL+"/", "sekrit", testLogger())
	p, st, err := s.Fetch(context.Background(), domain.Easy)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if gotPath != "/generate-sudoku" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotKey != "sekrit" {
		t.Fatalf("X-Api-Key = %q", gotKey)
	}
	if gotCT != "application/json" {
		t.Fatalf("Content-Type = %q", gotCT)
	}
	if gotDiff != "easy" {
		t.Fatalf("difficulty = %q", gotDiff)
	}
	if p.Difficulty != domain.Easy {
		t.Fatalf("puzzle difficulty = %v", p.Difficulty)
	}
	if p.Givens[0] != uint8(solution[0]) || p.Solution[80] != uint8(solution[80]) {
		t.Fatalf("grids not copied through: %v %v", p.Givens[0], p.Solution[80])
	}
	if st.Bytes == 0 || st.Duration <= 0 {
		t.Fatalf("stats not populated: %+v", st)
	}
}

func TestFetchUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized Access"})
	}))
	defer srv.Close()

	s := NewHTTP(srv.URL, "wrong", testLogger())
	_, _, err := s.Fetch(context.Background(), domain.Medium)
	if err == nil {
		t.Fatalf("401 did not error")
	}
	if !strings.Contains(err.Error(), "Unauthorized Access") || !strings.Contains(err.Error(), "401") {
		t.Fatalf("error lacks status detail: %v", err)
	}
}

func TestFetchStatusWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := NewHTTP(srv.URL, "k", testLogger())
	_, _, err := s.Fetch(context.Background(), domain.Medium)
	if err == nil || !strings.Contains(err.Error(), "502") {
		t.Fatalf("want status-derived error, got %v", err)
	}
}

func TestFetchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "not json at all")
	}))
	defer srv.Close()

	s := NewHTTP(srv.URL, "k", testLogger())
	if _, _, err := s.Fetch(context.Background(), domain.Medium); err == nil {
		t.Fatalf("malformed body did not error")
	}
}

func TestFetchRejectsBadContracts(t *testing.T) {
	puzzle, solution := wireBody()

	cases := []struct {
		name     string
		puzzle   []int
		solution []int
	}{
		{"short puzzle", puzzle[:80], solution},
		{"short solution", puzzle, solution[:80]},
		{"zero in solution", puzzle, append(append([]int{}, solution[:80]...), 0)},
		{"given contradicts solution", func() []int {
			p := append([]int{}, puzzle...)
			p[0] = solution[0]%9 + 1
			return p
		}(), solution},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(map[string]any{
					"puzzle":   tc.puzzle,
					"solution": tc.solution,
				})
			}))
			defer srv.Close()

			s := NewHTTP(srv.URL, "k", testLogger())
			if _, _, err := s.Fetch(context.Background(), domain.Medium); err == nil {
				t.Fatalf("accepted out-of-contract body")
			}
		})
	}
}

func TestFetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	s := NewHTTP(srv.URL, "k", testLogger())
	_, _, err := s.Fetch(context.Background(), domain.Medium)
	if err == nil || !strings.Contains(err.Error(), "unreachable") {
		t.Fatalf("want transport error, got %v", err)
	}
}
