package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"svw.info/sudokusolve/internal/infrastructure/storage"
	"svw.info/sudokusolve/internal/solver"
	"svw.info/sudokusolve/internal/usecase"
	"svw.info/sudokusolve/internal/validator"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	uc := usecase.NewService(solver.NewBacktracking(), validator.New(), storage.NewFS(t.TempDir()))
	e := gin.New()
	New(uc).Register(e)
	return e
}

func postJSON(t *testing.T, e *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func get(t *testing.T, e *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

var classic = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func TestSolveEndpoint(t *testing.T) {
	e := newTestRouter(t)
	w := postJSON(t, e, "/api/v1/solve", gin.H{"board": classic})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp solveResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Solved || resp.Calls == 0 {
		t.Errorf("resp = %+v", resp)
	}
	if want := [9]uint8{5, 3, 4, 6, 7, 8, 9, 1, 2}; resp.Board[0] != want {
		t.Errorf("first row = %v, want %v", resp.Board[0], want)
	}
}

func TestSolveEndpointRejectsConflictingBoard(t *testing.T) {
	e := newTestRouter(t)
	board := classic
	board[8] = [9]uint8{5, 0, 0, 0, 8, 0, 0, 7, 9} // duplicate 5 in column 1
	w := postJSON(t, e, "/api/v1/solve", gin.H{"board": board})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body = %s", w.Code, w.Body.String())
	}
}

func TestSolveEndpointUnsatisfiable(t *testing.T) {
	e := newTestRouter(t)
	// Consistent board, but (0,0) has no candidate left: its row holds
	// 2-9 and its column holds 1.
	var board [9][9]uint8
	board[0] = [9]uint8{0, 2, 3, 4, 5, 6, 7, 8, 9}
	board[1][0] = 1
	w := postJSON(t, e, "/api/v1/solve", gin.H{"board": board})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422; body = %s", w.Code, w.Body.String())
	}
	var resp solveResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Solved {
		t.Error("unsatisfiable board reported solved")
	}
}

func TestSolveEndpointBadJSON(t *testing.T) {
	e := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve", bytes.NewReader([]byte("{oops")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestValidateEndpoint(t *testing.T) {
	e := newTestRouter(t)
	var board [9][9]uint8
	board[0][0] = 5
	board[0][5] = 5
	w := postJSON(t, e, "/api/v1/validate", gin.H{"board": board})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp validateResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.OK || len(resp.Conflicts) == 0 {
		t.Errorf("resp = %+v, want conflicts", resp)
	}
}

func TestExampleEndpoints(t *testing.T) {
	e := newTestRouter(t)

	w := get(t, e, "/api/v1/puzzles")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var list struct {
		Puzzles []exampleMeta `json:"puzzles"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	if len(list.Puzzles) != 3 {
		t.Errorf("list = %+v, want 3 entries", list.Puzzles)
	}

	if w := get(t, e, "/api/v1/puzzles/easy"); w.Code != http.StatusOK {
		t.Errorf("get easy status = %d", w.Code)
	}
	if w := get(t, e, "/api/v1/puzzles/nonsense"); w.Code != http.StatusNotFound {
		t.Errorf("get unknown status = %d, want 404", w.Code)
	}
}

func TestSaveLoadEndpoints(t *testing.T) {
	e := newTestRouter(t)

	w := postJSON(t, e, "/api/v1/saved", gin.H{"board": gin.H{"board": classic}, "name": "classic"})
	if w.Code != http.StatusOK {
		t.Fatalf("save status = %d, body = %s", w.Code, w.Body.String())
	}
	var saved struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &saved); err != nil {
		t.Fatal(err)
	}
	if saved.ID == "" {
		t.Fatal("save returned no id")
	}

	if w := get(t, e, "/api/v1/saved/"+saved.ID); w.Code != http.StatusOK {
		t.Errorf("load status = %d", w.Code)
	}
	if w := get(t, e, "/api/v1/saved/missing"); w.Code != http.StatusNotFound {
		t.Errorf("load missing status = %d, want 404", w.Code)
	}

	w = get(t, e, "/api/v1/saved")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var list struct {
		Puzzles []json.RawMessage `json:"puzzles"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	if len(list.Puzzles) != 1 {
		t.Errorf("list has %d entries, want 1", len(list.Puzzles))
	}
}
