package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	fotzpdf "github.com/adam420412/fotz-pdf-microservice"
)

const (
	serviceName    = "FOTZ PDF Microservice"
	serviceVersion = "1.0.0"
)

// generator is the part of fotzpdf.Service the HTTP layer depends on.
type generator interface {
	GeneratePDF(ctx context.Context, req fotzpdf.Request) ([]byte, error)
	GeneratePackage(ctx context.Context, req fotzpdf.PackageRequest) ([]byte, error)
}

// pdfRequest is the JSON body of POST /generate-pdf.
type pdfRequest struct {
	Content         string             `json:"content"`
	Title           string             `json:"title"`
	Subtitle        string             `json:"subtitle"`
	Author          string             `json:"author"`
	TocItems        []fotzpdf.TocEntry `json:"toc_items"`
	KeywordsToBold  []string           `json:"keywords_to_bold"`
	CoverURL        string             `json:"cover_url"`
	InfographicURLs []string           `json:"infographic_urls"`
	LogoURL         string             `json:"logo_url"`
}

func (r pdfRequest) toRequest() fotzpdf.Request {
	return fotzpdf.Request{
		Content:         r.Content,
		Title:           r.Title,
		Subtitle:        r.Subtitle,
		Author:          r.Author,
		TocEntries:      r.TocItems,
		Keywords:        r.KeywordsToBold,
		CoverURL:        r.CoverURL,
		InfographicURLs: r.InfographicURLs,
		LogoURL:         r.LogoURL,
	}
}

// zipRequest is the JSON body of POST /generate-zip. It carries everything
// pdfRequest does plus the extra package assets.
type zipRequest struct {
	pdfRequest
	PDFContent      string `json:"pdf_content"`
	MockupURL       string `json:"mockup_url"`
	BlogPost        string `json:"blog_post"`
	ShopDescription string `json:"shop_description"`
}

func (r zipRequest) toPackageRequest() fotzpdf.PackageRequest {
	req := r.toRequest()
	if r.PDFContent != "" {
		req.Content = r.PDFContent
	}
	return fotzpdf.PackageRequest{
		Request:         req,
		MockupURL:       r.MockupURL,
		BlogPost:        r.BlogPost,
		ShopDescription: r.ShopDescription,
	}
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// server routes HTTP requests to the document generator.
type server struct {
	gen    generator
	logger *slog.Logger
}

func newServer(gen generator, logger *slog.Logger) *server {
	return &server{gen: gen, logger: logger}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/generate-pdf", s.handleGeneratePDF)
	mux.HandleFunc("/generate-zip", s.handleGenerateZip)
	mux.HandleFunc("/health", s.handleHealth)
	return corsMiddleware(s.logMiddleware(mux))
}

func (s *server) handleGeneratePDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Detail: "method not allowed"})
		return
	}

	var req pdfRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid JSON body"})
		return
	}

	pdf, err := s.gen.GeneratePDF(r.Context(), req.toRequest())
	if err != nil {
		s.writeGenerateError(w, "generate-pdf", err)
		return
	}

	filename := fotzpdf.SanitizeTitle(req.Title) + ".pdf"
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (s *server) handleGenerateZip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Detail: "method not allowed"})
		return
	}

	var req zipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid JSON body"})
		return
	}

	archive, err := s.gen.GeneratePackage(r.Context(), req.toPackageRequest())
	if err != nil {
		s.writeGenerateError(w, "generate-zip", err)
		return
	}

	filename := fotzpdf.SanitizeTitle(req.Title) + "_FOTZ.zip"
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Detail: "method not allowed"})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "healthy",
		Service: serviceName,
		Version: serviceVersion,
	})
}

func (s *server) writeGenerateError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, fotzpdf.ErrEmptyContent) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: err.Error()})
		return
	}
	s.logger.Error("generation failed", "op", op, "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// corsMiddleware allows cross-origin calls from any frontend.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).String(),
		)
	})
}
