package handlers

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/virelai/hugostego/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter() (*gin.Engine, *Handlers) {
	h := NewHandlers(service.NewSteganographyService())
	r := gin.New()
	r.GET("/health", h.HealthHandler)
	r.GET("/capacity", h.CalculateCapacityHandler)
	r.POST("/embed", h.EmbedHandler)
	r.POST("/extract", h.ExtractHandler)
	return r, h
}

func encodedCoverPNG(t *testing.T, w, hgt int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, hgt))
	for y := 0; y < hgt; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{128, 128, 128, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test cover PNG: %v", err)
	}
	return buf.Bytes()
}

func multipartEmbedBody(t *testing.T, cover []byte, secret []byte, key string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	coverPart, err := w.CreateFormFile("cover", "cover.png")
	if err != nil {
		t.Fatalf("CreateFormFile cover: %v", err)
	}
	coverPart.Write(cover)

	secretPart, err := w.CreateFormFile("secret", "secret.bin")
	if err != nil {
		t.Fatalf("CreateFormFile secret: %v", err)
	}
	secretPart.Write(secret)

	if err := w.WriteField("stego_key", key); err != nil {
		t.Fatalf("WriteField stego_key: %v", err)
	}
	w.Close()
	return body, w.FormDataContentType()
}

func TestHealthHandler(t *testing.T) {
	r, _ := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCapacityHandlerMissingDimensions(t *testing.T) {
	r, _ := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/capacity", nil)
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCapacityHandlerOK(t *testing.T) {
	r, _ := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/capacity?width=64&height=64", nil)
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestEmbedExtractHandlerRoundTrip(t *testing.T) {
	r, _ := newTestRouter()
	cover := encodedCoverPNG(t, 64, 64)

	body, contentType := multipartEmbedBody(t, cover, []byte("end-to-end handler test"), "handler-test-key")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/embed", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("embed expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	stegoPNG := rec.Body.Bytes()

	extractBody := &bytes.Buffer{}
	w := multipart.NewWriter(extractBody)
	stegoPart, err := w.CreateFormFile("stego", "stego.png")
	if err != nil {
		t.Fatalf("CreateFormFile stego: %v", err)
	}
	stegoPart.Write(stegoPNG)
	w.WriteField("stego_key", "handler-test-key")
	w.Close()

	rec2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPost, "/extract", extractBody)
	req2.Header.Set("Content-Type", w.FormDataContentType())
	r.ServeHTTP(rec2, req2)

	if rec2.Code != http.StatusOK {
		t.Fatalf("extract expected 200, got %d: %s", rec2.Code, rec2.Body.String())
	}
	if rec2.Body.String() != "end-to-end handler test" {
		t.Fatalf("payload mismatch: got %q", rec2.Body.String())
	}
}

func TestExtractHandlerWrongKeyReturnsUnauthorized(t *testing.T) {
	r, _ := newTestRouter()
	cover := encodedCoverPNG(t, 64, 64)

	body, contentType := multipartEmbedBody(t, cover, []byte("secret"), "right-key")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/embed", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("embed expected 200, got %d", rec.Code)
	}

	extractBody := &bytes.Buffer{}
	w := multipart.NewWriter(extractBody)
	stegoPart, _ := w.CreateFormFile("stego", "stego.png")
	stegoPart.Write(rec.Body.Bytes())
	w.WriteField("stego_key", "wrong-key")
	w.Close()

	rec2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPost, "/extract", extractBody)
	req2.Header.Set("Content-Type", w.FormDataContentType())
	r.ServeHTTP(rec2, req2)

	if rec2.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec2.Code, rec2.Body.String())
	}
}
