package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	fotzpdf "github.com/adam420412/fotz-pdf-microservice"
)

// stubGenerator returns canned payloads and records the last request.
type stubGenerator struct {
	pdf     []byte
	archive []byte
	err     error

	lastPDFReq     fotzpdf.Request
	lastPackageReq fotzpdf.PackageRequest
}

func (s *stubGenerator) GeneratePDF(_ context.Context, req fotzpdf.Request) ([]byte, error) {
	s.lastPDFReq = req
	return s.pdf, s.err
}

func (s *stubGenerator) GeneratePackage(_ context.Context, req fotzpdf.PackageRequest) ([]byte, error) {
	s.lastPackageReq = req
	return s.archive, s.err
}

func newTestHandler(gen *stubGenerator) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newServer(gen, logger).routes()
}

func TestHealthEndpoint(t *testing.T) {
	h := newTestHandler(&stubGenerator{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body healthResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Status != "healthy" {
		t.Errorf("status = %q, want healthy", body.Status)
	}
	if body.Service != "FOTZ PDF Microservice" {
		t.Errorf("service = %q", body.Service)
	}
	if body.Version != "1.0.0" {
		t.Errorf("version = %q", body.Version)
	}
}

func TestGeneratePDFEndpoint(t *testing.T) {
	gen := &stubGenerator{pdf: []byte("%PDF-stub")}
	h := newTestHandler(gen)

	body := `{
		"content": "# Treść",
		"title": "Mój Ebook: Wersja 2!",
		"toc_items": [{"title": "Wstęp", "page": 3}],
		"keywords_to_bold": ["automatyzacja"],
		"cover_url": "http://cdn/cover.png",
		"infographic_urls": ["http://cdn/a.png"],
		"logo_url": "http://cdn/logo.png"
	}`

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/generate-pdf", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("Content-Type = %q, want application/pdf", got)
	}
	wantDisp := "attachment; filename=Mój_Ebook_Wersja_2.pdf"
	if got := rec.Header().Get("Content-Disposition"); got != wantDisp {
		t.Errorf("Content-Disposition = %q, want %q", got, wantDisp)
	}
	if rec.Body.String() != "%PDF-stub" {
		t.Errorf("body = %q", rec.Body.String())
	}

	req := gen.lastPDFReq
	if req.Content != "# Treść" {
		t.Errorf("Content = %q", req.Content)
	}
	if len(req.TocEntries) != 1 || req.TocEntries[0].Title != "Wstęp" || req.TocEntries[0].Page != 3 {
		t.Errorf("TocEntries = %v", req.TocEntries)
	}
	if len(req.Keywords) != 1 || req.Keywords[0] != "automatyzacja" {
		t.Errorf("Keywords = %v", req.Keywords)
	}
	if req.CoverURL != "http://cdn/cover.png" || req.LogoURL != "http://cdn/logo.png" {
		t.Errorf("asset URLs not mapped: %+v", req)
	}
}

func TestGenerateZipEndpoint(t *testing.T) {
	gen := &stubGenerator{archive: []byte("PK-stub")}
	h := newTestHandler(gen)

	body := `{
		"title": "Pakiet",
		"pdf_content": "# Treść",
		"mockup_url": "http://cdn/mockup.png",
		"blog_post": "# Wpis",
		"shop_description": "Opis."
	}`

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/generate-zip", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "application/zip" {
		t.Errorf("Content-Type = %q, want application/zip", got)
	}
	wantDisp := "attachment; filename=Pakiet_FOTZ.zip"
	if got := rec.Header().Get("Content-Disposition"); got != wantDisp {
		t.Errorf("Content-Disposition = %q, want %q", got, wantDisp)
	}

	req := gen.lastPackageReq
	if req.Content != "# Treść" {
		t.Errorf("pdf_content not mapped to Content: %q", req.Content)
	}
	if req.MockupURL != "http://cdn/mockup.png" {
		t.Errorf("MockupURL = %q", req.MockupURL)
	}
	if req.BlogPost != "# Wpis" || req.ShopDescription != "Opis." {
		t.Errorf("marketing texts not mapped: %+v", req)
	}
}

func TestGenerateEndpointsRejectWrongMethod(t *testing.T) {
	h := newTestHandler(&stubGenerator{})

	for _, path := range []string{"/generate-pdf", "/generate-zip"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("GET %s status = %d, want 405", path, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /health status = %d, want 405", rec.Code)
	}
}

func TestGeneratePDFBadJSON(t *testing.T) {
	h := newTestHandler(&stubGenerator{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/generate-pdf", strings.NewReader("{not json")))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGeneratePDFEmptyContentIsBadRequest(t *testing.T) {
	h := newTestHandler(&stubGenerator{err: fotzpdf.ErrEmptyContent})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/generate-pdf", strings.NewReader(`{"content": ""}`)))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGeneratePDFInternalError(t *testing.T) {
	h := newTestHandler(&stubGenerator{err: errors.New("browser exploded")})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/generate-pdf", strings.NewReader(`{"content": "# x"}`)))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}

	var body errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Detail == "" {
		t.Error("error detail is empty")
	}
}

func TestCORS(t *testing.T) {
	h := newTestHandler(&stubGenerator{})

	t.Run("preflight", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/generate-pdf", nil))

		if rec.Code != http.StatusNoContent {
			t.Errorf("status = %d, want 204", rec.Code)
		}
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("Allow-Origin = %q, want *", got)
		}
		if got := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, "POST") {
			t.Errorf("Allow-Methods = %q", got)
		}
	})

	t.Run("simple request carries origin header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("Allow-Origin = %q, want *", got)
		}
	})
}
