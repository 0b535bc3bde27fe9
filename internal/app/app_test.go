package app

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"motorkeys_backend/internal/config"
	"motorkeys_backend/internal/testutil"
	"motorkeys_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type copyProcessor struct{}

func (copyProcessor) Process(in, out string) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	return os.WriteFile(out, data, 0644)
}

func (copyProcessor) Poster(in, out string) error {
	return os.WriteFile(out, []byte("jpg"), 0644)
}

func (copyProcessor) Probe(path string) (*util.VideoInfo, error) {
	return &util.VideoInfo{Duration: 1.5}, nil
}

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		Server:    config.ServerConfig{Port: "0", Mode: gin.TestMode},
		Storage:   config.StorageConfig{Type: "local", LocalPath: t.TempDir(), PublicURL: "/public"},
		Redis:     config.RedisConfig{RecentLimit: 10},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
		RateLimit: config.RateLimitConfig{MaxRequests: 1000, WindowMinutes: 1},
		UGC: config.UGCConfig{
			MaxImageBytes: 1 << 20,
			MaxVideoBytes: 1 << 20,
			FFmpegPath:    "ffmpeg-not-installed",
			WorkDir:       t.TempDir(),
		},
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	a, err := Build(testConfig(t), testutil.NewDB(t), nil, copyProcessor{})
	require.NoError(t, err)
	return a
}

func do(t *testing.T, a *App, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") != "" {
		_ = json.Unmarshal(w.Body.Bytes(), &out)
	}
	return w, out
}

func TestHealth(t *testing.T) {
	a := newTestApp(t)
	w, body := do(t, a, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	components := body["data"].(map[string]any)["components"].(map[string]any)
	assert.Equal(t, "up", components["database"])
	assert.Equal(t, "disabled", components["redis"])
	assert.Equal(t, "unavailable", components["ffmpeg"])
}

func TestWordRoutes(t *testing.T) {
	a := newTestApp(t)

	w, body := do(t, a, http.MethodGet, "/api/words/dog", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dog", body["data"].(map[string]any)["id"])

	w, _ = do(t, a, http.MethodGet, "/api/words/unicornz", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, body = do(t, a, http.MethodGet, "/api/words?pos=verb&grade=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	for _, item := range body["data"].([]any) {
		assert.Equal(t, "verb", item.(map[string]any)["partOfSpeech"])
	}

	w, _ = do(t, a, http.MethodGet, "/api/words?sight=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body = do(t, a, http.MethodGet, "/api/words/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Positive(t, body["data"].(map[string]any)["totalWords"])

	w, body = do(t, a, http.MethodGet, "/api/word-lists/kindergarten_core/words?core=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["data"].(map[string]any)["words"], 2)

	w, _ = do(t, a, http.MethodGet, "/api/word-lists/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, body = do(t, a, http.MethodGet, "/api/words/dog/lists", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, body["data"])
}

func TestLearnerFlow(t *testing.T) {
	a := newTestApp(t)

	w, body := do(t, a, http.MethodPost, "/api/learners", gin.H{"name": "Sam"})
	require.Equal(t, http.StatusCreated, w.Code)
	id := body["data"].(map[string]any)["id"].(string)

	w, _ = do(t, a, http.MethodPost, "/api/learners", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	attempt := gin.H{
		"wordId": "sun",
		"keystrokes": []gin.H{
			{"key": "s", "timestamp": 0, "isCorrect": true},
			{"key": "y", "timestamp": 150, "isCorrect": false, "expectedKey": "u"},
			{"key": "u", "timestamp": 300, "isCorrect": true},
			{"key": "n", "timestamp": 500, "isCorrect": true},
		},
		"elapsedMs":   600,
		"letterCount": 3,
	}
	w, body = do(t, a, http.MethodPost, "/api/learners/"+id+"/attempts", attempt)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	profile := body["data"].(map[string]any)["profile"].(map[string]any)
	assert.EqualValues(t, 1, profile["wordsCompleted"])
	assert.EqualValues(t, 1, profile["rightHandErrors"])

	attempt["letterCount"] = 0
	w, _ = do(t, a, http.MethodPost, "/api/learners/"+id+"/attempts", attempt)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	attempt["letterCount"] = 3
	w, _ = do(t, a, http.MethodPost, "/api/learners/nobody/attempts", attempt)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, body = do(t, a, http.MethodGet, "/api/learners/"+id+"/motor", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, []any{"sun"}, data["recentWords"])
	assert.Equal(t, "right", data["weakerHand"])
}

func TestUGCAndSignRoutes(t *testing.T) {
	a := newTestApp(t)

	png := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))
	w, body := do(t, a, http.MethodPost, "/api/ugc/word", gin.H{
		"word":      "Blorp",
		"syllables": []string{"blorp"},
		"segments":  []string{"bl", "orp"},
		"imageType": "drawing",
		"imageData": png,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "blorp", body["word"])

	w, _ = do(t, a, http.MethodGet, "/public/ugc/words/blorp/image.png", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, a, http.MethodGet, "/api/words/user:blorp", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, body = do(t, a, http.MethodPatch, "/api/ugc/word/blorp", gin.H{"active": false})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["active"])

	w, _ = do(t, a, http.MethodPatch, "/api/ugc/word/blorp", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body = do(t, a, http.MethodGet, "/api/ugc/words", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["count"])

	w, body = do(t, a, http.MethodPost, "/api/ugc/word", gin.H{"word": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])

	w, _ = do(t, a, http.MethodDelete, "/api/ugc/word/blorp", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = do(t, a, http.MethodGet, "/api/ugc/word/blorp", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	webm := "data:video/webm;base64," + base64.StdEncoding.EncodeToString([]byte("\x1A\x45\xDF\xA3\x9f\x42\x86\x81\x01"))
	w, body = do(t, a, http.MethodPost, "/api/signs/upload", gin.H{"word": "cat", "videoData": webm, "duration": 1200})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "/public/signs/cat/sign_loop.mp4", body["videoUrl"])

	w, body = do(t, a, http.MethodGet, "/api/words/cat", nil)
	require.Equal(t, http.StatusOK, w.Code)
	asl := body["data"].(map[string]any)["asl"].(map[string]any)
	assert.Equal(t, true, asl["hasRecordedSignVideo"])

	w, _ = do(t, a, http.MethodPatch, "/api/signs/cat", gin.H{"status": "bogus"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, body = do(t, a, http.MethodPatch, "/api/signs/cat", gin.H{"status": "deleted"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "deleted", body["status"])
	w, _ = do(t, a, http.MethodPatch, "/api/signs/dog", gin.H{"status": "pending"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, body = do(t, a, http.MethodGet, "/api/signs/list", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["count"])
}

func TestApplyConfigUpdatesLimits(t *testing.T) {
	a := newTestApp(t)
	cfg := testConfig(t)
	cfg.UGC.MaxImageBytes = 8
	cfg.UGC.MaxVideoBytes = 16
	a.ApplyConfig(cfg)

	assert.Equal(t, int64(8), a.services.ugc.MaxImageBytes())
	assert.Equal(t, int64(16), a.services.sign.MaxVideoBytes())

	png := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))
	w, _ := do(t, a, http.MethodPost, "/api/ugc/word", gin.H{
		"word": "zap", "syllables": []string{"zap"}, "segments": []string{"z", "ap"}, "imageData": png,
	})
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
