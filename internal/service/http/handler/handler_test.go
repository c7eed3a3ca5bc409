package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/scribe-hub/config"
	"github.com/reusedev/scribe-hub/internal/modules/logs"
	"github.com/rs/zerolog"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.GConfig = config.Default()
	config.GConfig.APIKey = "test-key"
	logs.Logger = zerolog.New(io.Discard)
	os.Exit(m.Run())
}

type stubGateway struct {
	model string
	text  string
	err   error
}

func (s *stubGateway) Model() string { return s.model }

func (s *stubGateway) GenerateText(ctx context.Context, prompt string) (string, error) {
	return s.text, s.err
}

func (s *stubGateway) GenerateVision(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	return s.text, s.err
}

func newRouter(gw Gateway) *gin.Engine {
	e := gin.New()
	h := New(gw)
	e.GET("/", h.Home)
	e.GET("/health", h.Health)
	e.GET("/test-api", h.TestAPI)
	e.POST("/detect-text", h.DetectText)
	e.POST("/analyze", h.Analyze)
	return e
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func multipartBody(t *testing.T, field string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile(field, "sample.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(data); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, w.FormDataContentType()
}

func doRequest(t *testing.T, e *gin.Engine, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestAnalyze_NoImageField(t *testing.T) {
	e := newRouter(&stubGateway{})
	body, contentType := multipartBody(t, "file", []byte("irrelevant"))
	w := doRequest(t, e, http.MethodPost, "/analyze", body, contentType)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", w.Code)
	}
	if got := decodeBody(t, w)["error"]; got != "No image uploaded" {
		t.Fatalf("error: %v", got)
	}
}

func TestAnalyze_EmptyImage(t *testing.T) {
	e := newRouter(&stubGateway{})
	body, contentType := multipartBody(t, "image", nil)
	w := doRequest(t, e, http.MethodPost, "/analyze", body, contentType)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", w.Code)
	}
	if got := decodeBody(t, w)["error"]; got != "Empty image file" {
		t.Fatalf("error: %v", got)
	}
}

func TestAnalyze_InvalidImage(t *testing.T) {
	e := newRouter(&stubGateway{})
	body, contentType := multipartBody(t, "image", []byte("not an image"))
	w := doRequest(t, e, http.MethodPost, "/analyze", body, contentType)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", w.Code)
	}
	got, _ := decodeBody(t, w)["error"].(string)
	if !bytes.Contains([]byte(got), []byte("Invalid image format")) {
		t.Fatalf("error: %q", got)
	}
}

func TestAnalyze_Success(t *testing.T) {
	text := "Text Written: \"hello\"\n\nStrengths:\n- steady lines\n\n```json\n{\"Legibility\": 81}\n```"
	e := newRouter(&stubGateway{model: "gemini-2.5-flash", text: text})
	body, contentType := multipartBody(t, "image", pngBytes(t))
	w := doRequest(t, e, http.MethodPost, "/analyze", body, contentType)
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d body: %s", w.Code, w.Body.String())
	}
	got := decodeBody(t, w)
	if got["detected_text"] != "hello" {
		t.Fatalf("detected_text: %v", got["detected_text"])
	}
	scores, ok := got["scores"].(map[string]interface{})
	if !ok || scores["Legibility"] != float64(81) {
		t.Fatalf("scores: %v", got["scores"])
	}
}

func TestAnalyze_FallbackScores(t *testing.T) {
	e := newRouter(&stubGateway{text: "The sample could not be graded in detail."})
	body, contentType := multipartBody(t, "image", pngBytes(t))
	w := doRequest(t, e, http.MethodPost, "/analyze", body, contentType)
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d", w.Code)
	}
	scores, ok := decodeBody(t, w)["scores"].(map[string]interface{})
	if !ok {
		t.Fatalf("scores missing")
	}
	if len(scores) != 5 {
		t.Fatalf("fallback scores: %v", scores)
	}
	for category, score := range scores {
		if score != float64(70) {
			t.Fatalf("category %s: %v", category, score)
		}
	}
}

func TestAnalyze_QuotaError(t *testing.T) {
	e := newRouter(&stubGateway{err: errors.New("googleapi: Error 429: Quota exceeded for quota metric")})
	body, contentType := multipartBody(t, "image", pngBytes(t))
	w := doRequest(t, e, http.MethodPost, "/analyze", body, contentType)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status: %d", w.Code)
	}
	if got := decodeBody(t, w)["error"]; got != "API quota exceeded. Wait a minute." {
		t.Fatalf("error: %v", got)
	}
}

func TestAnalyze_InvalidKeyError(t *testing.T) {
	e := newRouter(&stubGateway{err: errors.New("API_KEY_INVALID: API key not valid")})
	body, contentType := multipartBody(t, "image", pngBytes(t))
	w := doRequest(t, e, http.MethodPost, "/analyze", body, contentType)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status: %d", w.Code)
	}
	if got := decodeBody(t, w)["error"]; got != "Invalid API key" {
		t.Fatalf("error: %v", got)
	}
}

func TestAnalyze_GenericError(t *testing.T) {
	e := newRouter(&stubGateway{err: errors.New("connection reset by peer")})
	body, contentType := multipartBody(t, "image", pngBytes(t))
	w := doRequest(t, e, http.MethodPost, "/analyze", body, contentType)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status: %d", w.Code)
	}
	got, _ := decodeBody(t, w)["error"].(string)
	if got != "Analysis failed: connection reset by peer" {
		t.Fatalf("error: %q", got)
	}
}

func TestDetectText_Success(t *testing.T) {
	e := newRouter(&stubGateway{text: `"Hello World"`})
	body, contentType := multipartBody(t, "image", pngBytes(t))
	w := doRequest(t, e, http.MethodPost, "/detect-text", body, contentType)
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d body: %s", w.Code, w.Body.String())
	}
	if got := decodeBody(t, w)["text"]; got != "Hello World" {
		t.Fatalf("text: %v", got)
	}
}

func TestDetectText_Failure(t *testing.T) {
	e := newRouter(&stubGateway{err: errors.New("upstream closed")})
	body, contentType := multipartBody(t, "image", pngBytes(t))
	w := doRequest(t, e, http.MethodPost, "/detect-text", body, contentType)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status: %d", w.Code)
	}
	if got := decodeBody(t, w)["error"]; got != "Detection failed: upstream closed" {
		t.Fatalf("error: %v", got)
	}
}

func TestHome(t *testing.T) {
	e := newRouter(&stubGateway{})
	w := doRequest(t, e, http.MethodGet, "/", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d", w.Code)
	}
	got := decodeBody(t, w)
	if got["status"] != "running" {
		t.Fatalf("status field: %v", got["status"])
	}
	if _, ok := got["endpoints"].(map[string]interface{}); !ok {
		t.Fatalf("endpoints: %v", got["endpoints"])
	}
}

func TestHealth(t *testing.T) {
	e := newRouter(&stubGateway{model: "gemini-2.5-flash"})
	w := doRequest(t, e, http.MethodGet, "/health", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d", w.Code)
	}
	got := decodeBody(t, w)
	if got["status"] != "healthy" {
		t.Fatalf("status field: %v", got["status"])
	}
	if got["api_configured"] != true {
		t.Fatalf("api_configured: %v", got["api_configured"])
	}
	if got["model"] != "gemini-2.5-flash" {
		t.Fatalf("model: %v", got["model"])
	}
}

func TestTestAPI(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		e := newRouter(&stubGateway{model: "gemini-2.5-flash", text: "API is working!"})
		w := doRequest(t, e, http.MethodGet, "/test-api", nil, "")
		if w.Code != http.StatusOK {
			t.Fatalf("status: %d", w.Code)
		}
		got := decodeBody(t, w)
		if got["status"] != "success" {
			t.Fatalf("status field: %v", got["status"])
		}
		if got["test_response"] != "API is working!" {
			t.Fatalf("test_response: %v", got["test_response"])
		}
	})

	t.Run("failure", func(t *testing.T) {
		e := newRouter(&stubGateway{err: errors.New("permission denied")})
		w := doRequest(t, e, http.MethodGet, "/test-api", nil, "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status: %d", w.Code)
		}
		got := decodeBody(t, w)
		if got["status"] != "error" {
			t.Fatalf("status field: %v", got["status"])
		}
		if got["message"] != "permission denied" {
			t.Fatalf("message: %v", got["message"])
		}
	})
}
