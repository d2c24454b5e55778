package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r)
	return r
}

const testEasyPuzzleString = "003020600900305001001806400008102900700000008006708200002609500800203009005010300"

func testEasyGivens(t *testing.T) []int {
	t.Helper()
	out := make([]int, len(testEasyPuzzleString))
	for i, ch := range testEasyPuzzleString {
		out[i] = int(ch - '0')
	}
	return out
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthHandler(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if id := w.Header().Get("X-Request-Id"); id == "" {
		t.Error("expected X-Request-Id header to be set")
	}
}

func TestSolveHandler(t *testing.T) {
	r := newTestRouter()
	w := postJSON(t, r, "/api/solve", map[string][]int{"givens": testEasyGivens(t)})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Grid []int `json:"grid"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	for i, v := range resp.Grid {
		if v < 1 || v > 9 {
			t.Fatalf("cell %d not solved: %d", i, v)
		}
	}
}

func TestSolveHandlerRejectsBadLength(t *testing.T) {
	r := newTestRouter()
	w := postJSON(t, r, "/api/solve", map[string][]int{"givens": {1, 2, 3}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestStepsHandler(t *testing.T) {
	r := newTestRouter()
	w := postJSON(t, r, "/api/steps", map[string][]int{"givens": testEasyGivens(t)})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "\"steps\"") {
		t.Fatalf("expected steps array in response body: %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "\"changed_cells\"") {
		t.Fatalf("expected changed_cells in step response body: %s", w.Body.String())
	}
}
