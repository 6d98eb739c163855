package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/tennisscore/internal/api"
	"github.com/mcoot/tennisscore/internal/api/apierr"
	"github.com/mcoot/tennisscore/internal/api/handler"
	"github.com/mcoot/tennisscore/internal/api/response"
	"github.com/mcoot/tennisscore/internal/factory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
	})

	return &testServer{handler: router}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	switch b := body.(type) {
	case nil:
		reqBody = bytes.NewBuffer(nil)
	case string:
		reqBody = bytes.NewBufferString(b)
	default:
		data, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decodeResult(t *testing.T, rr *httptest.ResponseRecorder) response.GameResult {
	t.Helper()
	var resp response.GameResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) apierr.APIError {
	t.Helper()
	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestPlayPost(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/tennis/play", map[string]string{"sequence": "XYXYXX"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	resp := decodeResult(t, rr)
	assert.Equal(t, "XYXYXX", resp.Sequence)
	assert.Equal(t, []string{
		"Player X : 15 / Player Y : 0",
		"Player X : 15 / Player Y : 15",
		"Player X : 30 / Player Y : 15",
		"Player X : 30 / Player Y : 30",
		"Player X : 40 / Player Y : 30",
		"Player X wins the game",
	}, resp.Scores)
}

func TestPlayPath(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/tennis/play/MNMNMN", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeResult(t, rr)
	assert.Equal(t, "MNMNMN", resp.Sequence)
	require.Len(t, resp.Scores, 6)
	assert.Equal(t, "Deuce", resp.Scores[5])
}

func TestPlayStopsAtGameEnd(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/tennis/play/ABABABAAAAAAA", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeResult(t, rr)
	require.Len(t, resp.Scores, 8)
	assert.Equal(t, "Advantage Player A", resp.Scores[6])
	assert.Equal(t, "Player A wins the game", resp.Scores[7])
}

func TestPlayLowercase(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/tennis/play/abab", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeResult(t, rr)
	assert.Equal(t, "abab", resp.Sequence)
	assert.Equal(t, "Player A : 30 / Player B : 30", resp.Scores[3])
}

func TestPlayRepeatedRequestsMatch(t *testing.T) {
	ts := newTestServer(t)

	first := ts.request(http.MethodGet, "/api/v1/tennis/play/ABABABAB", nil)
	second := ts.request(http.MethodPost, "/api/v1/tennis/play", map[string]string{"sequence": "ABABABAB"})

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, decodeResult(t, first), decodeResult(t, second))
}

func TestPlayInvalidCharacter(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/tennis/play/A1", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	apiErr := decodeError(t, rr)
	assert.Equal(t, apierr.CodeInvalidSequence, apiErr.Code)
	assert.Contains(t, apiErr.Message, "invalid character in sequence: 1")
}

func TestPlayWrongLetterCount(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/tennis/play", map[string]string{"sequence": "ABCABC"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	apiErr := decodeError(t, rr)
	assert.Equal(t, apierr.CodeInvalidSequence, apiErr.Code)
	assert.Contains(t, apiErr.Message, "Found: 3")
}

func TestPlayEmptySequence(t *testing.T) {
	ts := newTestServer(t)

	for _, body := range []any{map[string]string{"sequence": "  "}, map[string]string{}} {
		rr := ts.request(http.MethodPost, "/api/v1/tennis/play", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		apiErr := decodeError(t, rr)
		assert.Equal(t, apierr.CodeInvalidSequence, apiErr.Code)
		assert.Contains(t, apiErr.Message, "cannot be null or empty")
	}
}

func TestPlayMalformedBody(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/tennis/play", "{not json")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, decodeError(t, rr).Code)
}

func TestPlayBodyTooLarge(t *testing.T) {
	ts := newTestServer(t)

	sequence := "A" + strings.Repeat("B", handler.MaxRequestBodyBytes)
	rr := ts.request(http.MethodPost, "/api/v1/tennis/play", map[string]string{"sequence": sequence})
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Equal(t, apierr.CodeRequestTooLarge, decodeError(t, rr).Code)
}

func TestPlayLongSequenceUnderLimit(t *testing.T) {
	ts := newTestServer(t)

	sequence := "A" + strings.Repeat("B", handler.MaxRequestBodyBytes/2)
	rr := ts.request(http.MethodPost, "/api/v1/tennis/play", map[string]string{"sequence": sequence})
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeResult(t, rr)
	assert.Equal(t, sequence, resp.Sequence)
	require.Len(t, resp.Scores, 5)
	assert.Equal(t, "Player B wins the game", resp.Scores[4])
}

func TestPlayEncodedSpaceInPath(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/tennis/play/A%20B", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidSequence, decodeError(t, rr).Code)
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/tennis/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeNotFound, decodeError(t, rr).Code)
}

func TestWrongMethod(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodDelete, "/api/v1/tennis/play", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, apierr.CodeMethodNotAllowed, decodeError(t, rr).Code)
}
