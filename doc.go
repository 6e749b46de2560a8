// Package fotzpdf assembles styled PDF ebooks and distributable packages
// from translated Markdown content and remote image assets.
//
// # Pipeline
//
// A generation request flows through these stages:
//
//  1. Text normalization (heading casing rules, keyword emphasis)
//  2. Markdown to HTML via Goldmark (tables, fenced code highlighting)
//  3. HTML injection (theme CSS, table of contents, closing logo block)
//  4. Content PDF rendering via headless Chrome (go-rod)
//  5. Full-bleed A4 pages for the cover and infographics (cover-fit scaling)
//  6. Page-level merge via pdfcpu: [cover, content, infographics...]
//
// # Quick Start
//
// Create a service, generate an ebook, and close when done:
//
//	svc := fotzpdf.New()
//	defer svc.Close()
//
//	pdf, err := svc.GeneratePDF(ctx, fotzpdf.Request{
//	    Content: "## Wstęp\n\nTreść poradnika...",
//	    Title:   "Mój Ebook",
//	})
//
// GeneratePackage additionally bundles the ebook with the raw downloaded
// assets and marketing texts into a ZIP archive.
//
// # Degradation
//
// Remote asset fetches are best effort: an unreachable cover, infographic or
// logo is simply omitted from the output. Every other failure (rendering,
// decoding, merging, local I/O) aborts the whole request.
//
// # Browser Requirements
//
// PDF rendering requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run. For containers set
// ROD_BROWSER_BIN to a pre-installed binary; the sandbox is disabled
// automatically in CI and containerized environments.
package fotzpdf
