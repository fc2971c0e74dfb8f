package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/robalobadob/wordle/apps/go-cli/internal/play"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestServer(src words.Source) *Server {
	svc := play.NewService(src,
		play.WithPicker(play.PickerFunc(func(int) (int, error) { return 0, nil })),
		play.WithLogger(zerolog.Nop()),
	)
	return New(svc, "")
}

func do(t *testing.T, s *Server, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	out := map[string]any{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec, out
}

func TestHealth(t *testing.T) {
	s := newTestServer(words.StaticSource{"otter"})
	rec, body := do(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestGameFlow(t *testing.T) {
	s := newTestServer(words.StaticSource{"otter"})

	rec, body := do(t, s, http.MethodPost, "/game/guess", `{"guess":"water"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "no_active_game", body["error"])

	rec, body = do(t, s, http.MethodGet, "/game", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "none", body["state"])

	rec, body = do(t, s, http.MethodPost, "/game/new", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, body["sessionId"])
	assert.EqualValues(t, 5, body["remaining"])

	rec, body = do(t, s, http.MethodPost, "/game/guess", `{"guess":"water"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"absent", "absent", "correct", "correct", "correct"}, body["marks"])
	assert.Equal(t, "playing", body["state"])
	assert.EqualValues(t, 4, body["remaining"])
	assert.NotContains(t, body, "answer")

	rec, body = do(t, s, http.MethodPost, "/game/guess", `{"guess":"WATER"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "duplicate_guess", body["error"])

	rec, body = do(t, s, http.MethodPost, "/game/guess", `{"guess":"wat"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_guess", body["error"])

	rec, body = do(t, s, http.MethodPost, "/game/guess", `{"guess":"otter"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "won", body["state"])
	assert.Equal(t, "otter", body["answer"])

	rec, body = do(t, s, http.MethodPost, "/game/guess", `{"guess":"crane"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "game_over", body["error"])

	rec, body = do(t, s, http.MethodGet, "/game", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "won", body["state"])
	rows, ok := body["rows"].([]any)
	require.True(t, ok)
	assert.Len(t, rows, 2)

	rec, body = do(t, s, http.MethodGet, "/debug/words", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, body["words"])
}

func TestBadJSON(t *testing.T) {
	s := newTestServer(words.StaticSource{"otter"})
	rec, body := do(t, s, http.MethodPost, "/game/guess", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_json", body["error"])
}

func TestEmptyWordList(t *testing.T) {
	s := newTestServer(words.StaticSource{})
	rec, body := do(t, s, http.MethodPost, "/game/new", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "empty_word_list", body["error"])
}

func TestWordLoadingError(t *testing.T) {
	s := newTestServer(words.NewFileSource("testdata/missing.txt"))
	rec, body := do(t, s, http.MethodPost, "/game/new", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "word_loading", body["error"])
}

func TestNotFoundAndPreflight(t *testing.T) {
	s := newTestServer(words.StaticSource{"otter"})
	rec, body := do(t, s, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", body["error"])

	rec, _ = do(t, s, http.MethodOptions, "/game/new", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestStartShutsDown(t *testing.T) {
	s := newTestServer(words.StaticSource{"otter"})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
