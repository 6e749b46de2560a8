package fotzpdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Service orchestrates the ebook assembly pipeline. A single Service is
// safe for concurrent requests: all its configuration is read-only and
// every request owns an isolated scratch directory.
type Service struct {
	cfg        serviceConfig
	normalizer *Normalizer
	converter  htmlConverter
	injector   *contentInjector
	fetcher    assetFetcher
	pdf        pdfConverter
	composer   pageComposer
	merger     documentMerger
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTheme, WithFetchTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			theme:         DefaultTheme(),
			renderTimeout: defaultRenderTimeout,
			fetchTimeout:  defaultFetchTimeout,
		},
		injector: newContentInjector(),
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create pipeline stages if not injected (e.g., by tests)
	s.normalizer = NewNormalizer(s.cfg.properNouns, s.cfg.suffixAlphabet, s.cfg.suffixWindow)
	if s.converter == nil {
		s.converter = newGoldmarkConverter()
	}
	if s.fetcher == nil {
		s.fetcher = newHTTPFetcher(s.cfg.fetchTimeout, s.cfg.httpClient)
	}
	if s.pdf == nil {
		s.pdf = newRodConverter(s.cfg.renderTimeout)
	}
	if s.composer == nil {
		s.composer = newFullBleedComposer(s.pdf)
	}
	if s.merger == nil {
		s.merger = pdfcpuMerger{}
	}

	return s
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pdf != nil {
		return s.pdf.Close()
	}
	return nil
}

// GeneratePDF runs the full pipeline and returns the finished ebook.
// Scratch files live in a request-scoped temp directory removed on every
// exit path. Absent optional assets degrade gracefully; any other failure
// aborts the request.
func (s *Service) GeneratePDF(ctx context.Context, req Request) ([]byte, error) {
	if req.Content == "" {
		return nil, ErrEmptyContent
	}

	scratch, err := os.MkdirTemp("", "fotz-pdf-*")
	if err != nil {
		return nil, fmt.Errorf("creating scratch dir: %w", err)
	}
	defer os.RemoveAll(scratch)

	return s.generatePDF(ctx, req.withDefaults(), scratch)
}

// generatePDF assembles the final document inside an existing scratch dir
// so GeneratePackage can share it.
func (s *Service) generatePDF(ctx context.Context, req Request, scratch string) ([]byte, error) {
	content := s.normalizer.Normalize(req.Content, req.Keywords)

	htmlDoc, err := s.converter.ToHTML(ctx, content, req.Title)
	if err != nil {
		return nil, fmt.Errorf("rendering markup: %w", err)
	}

	htmlDoc = s.injector.InjectCSS(htmlDoc, buildThemeCSS(s.cfg.theme))

	htmlDoc, err = s.injector.InjectTOC(htmlDoc, req.TocEntries, s.cfg.theme)
	if err != nil {
		return nil, fmt.Errorf("injecting table of contents: %w", err)
	}

	// The logo travels inside the content markup, not as a merged page.
	if req.LogoURL != "" {
		if path, ok := s.fetcher.Fetch(ctx, req.LogoURL, scratch, "logo.png"); ok {
			htmlDoc, err = s.injector.InjectLogo(htmlDoc, path, s.cfg.theme)
			if err != nil {
				return nil, fmt.Errorf("injecting logo block: %w", err)
			}
		}
	}

	contentPDF, err := s.pdf.ToPDF(ctx, htmlDoc, &pdfOptions{PageNumbers: true})
	if err != nil {
		return nil, fmt.Errorf("rendering content document: %w", err)
	}

	// Page sources in fixed order: cover, content, infographics.
	var parts []string

	if req.CoverURL != "" {
		if path, ok := s.fetcher.Fetch(ctx, req.CoverURL, scratch, "cover.png"); ok {
			coverPath, err := s.composePart(ctx, path, filepath.Join(scratch, "cover.pdf"))
			if err != nil {
				return nil, fmt.Errorf("composing cover page: %w", err)
			}
			parts = append(parts, coverPath)
		}
	}

	contentPath := filepath.Join(scratch, "content.pdf")
	if err := os.WriteFile(contentPath, contentPDF, 0o600); err != nil {
		return nil, fmt.Errorf("writing content document: %w", err)
	}
	parts = append(parts, contentPath)

	for i, url := range req.InfographicURLs {
		path, ok := s.fetcher.Fetch(ctx, url, scratch, fmt.Sprintf("infographic_%d.png", i))
		if !ok {
			continue
		}
		pagePath, err := s.composePart(ctx, path, filepath.Join(scratch, fmt.Sprintf("infographic_%d.pdf", i)))
		if err != nil {
			return nil, fmt.Errorf("composing infographic page %d: %w", i+1, err)
		}
		parts = append(parts, pagePath)
	}

	finalPath := filepath.Join(scratch, "final.pdf")
	if err := s.merger.Merge(ctx, parts, finalPath); err != nil {
		return nil, fmt.Errorf("merging document: %w", err)
	}

	final, err := os.ReadFile(finalPath)
	if err != nil {
		return nil, fmt.Errorf("reading final document: %w", err)
	}
	return final, nil
}

// composePart renders one full-bleed image page and writes it to outPath.
func (s *Service) composePart(ctx context.Context, imagePath, outPath string) (string, error) {
	pagePDF, err := s.composer.ComposePage(ctx, imagePath)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(outPath, pagePDF, 0o600); err != nil {
		return "", fmt.Errorf("writing composed page: %w", err)
	}
	return outPath, nil
}

// GeneratePackage generates the ebook and bundles it with raw copies of
// the downloaded assets and the marketing texts into a ZIP archive.
// Entries for optional inputs appear only when the input was supplied and
// its fetch succeeded.
func (s *Service) GeneratePackage(ctx context.Context, req PackageRequest) ([]byte, error) {
	if req.Content == "" {
		return nil, ErrEmptyContent
	}

	scratch, err := os.MkdirTemp("", "fotz-zip-*")
	if err != nil {
		return nil, fmt.Errorf("creating scratch dir: %w", err)
	}
	defer os.RemoveAll(scratch)

	pdfBytes, err := s.generatePDF(ctx, req.Request.withDefaults(), scratch)
	if err != nil {
		return nil, err
	}

	entries := []archiveEntry{
		{Name: SanitizeTitle(req.Title) + ".pdf", Data: pdfBytes},
	}

	// Raw assets are fetched separately from the pipeline copies so the
	// archive carries the original bytes, untouched by page composition.
	if req.CoverURL != "" {
		if data, ok := s.fetchBytes(ctx, req.CoverURL, scratch, "cover_dl.png"); ok {
			entries = append(entries, archiveEntry{Name: coverEntryName, Data: data})
		}
	}
	if req.MockupURL != "" {
		if data, ok := s.fetchBytes(ctx, req.MockupURL, scratch, "mockup_dl.png"); ok {
			entries = append(entries, archiveEntry{Name: mockupEntryName, Data: data})
		}
	}
	for i, url := range req.InfographicURLs {
		if data, ok := s.fetchBytes(ctx, url, scratch, fmt.Sprintf("inf_%d_dl.png", i+1)); ok {
			entries = append(entries, archiveEntry{Name: infographicEntryName(i + 1), Data: data})
		}
	}
	if req.BlogPost != "" {
		entries = append(entries, archiveEntry{Name: blogEntryName, Data: []byte(req.BlogPost)})
	}
	if req.ShopDescription != "" {
		entries = append(entries, archiveEntry{Name: shopEntryName, Data: []byte(req.ShopDescription)})
	}
	if req.LogoURL != "" {
		if data, ok := s.fetchBytes(ctx, req.LogoURL, scratch, "logo_dl.png"); ok {
			entries = append(entries, archiveEntry{Name: logoEntryName, Data: data})
		}
	}

	return buildArchive(entries)
}

// fetchBytes downloads an asset and reads it back. Fetch absence is a skip;
// a local read failure after a successful fetch is not expected and bubbles
// up as absent too, matching the fetcher's degradation contract.
func (s *Service) fetchBytes(ctx context.Context, url, dir, filename string) ([]byte, bool) {
	path, ok := s.fetcher.Fetch(ctx, url, dir, filename)
	if !ok {
		return nil, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return data, true
}
