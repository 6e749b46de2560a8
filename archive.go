package fotzpdf

import (
	"archive/zip"
	"bytes"
	"fmt"
	"regexp"
)

// Archive entry names, fixed by the distribution contract.
const (
	coverEntryName  = "cover_a4.png"
	mockupEntryName = "mockup_tablet.png"
	logoEntryName   = "logo_fotz.png"
	blogEntryName   = "blog_post.md"
	shopEntryName   = "opis_sklepu.md"
)

// infographicEntryName returns the archive name for the i-th infographic
// (1-based, caller-supplied order).
func infographicEntryName(i int) string {
	return fmt.Sprintf("infographic_%d.png", i)
}

// Go's \w is ASCII-only, so the letter/digit classes are spelled out to
// keep characters like ó.
var (
	unsafeTitleChars = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	whitespaceRun    = regexp.MustCompile(`\s+`)
)

// SanitizeTitle makes a request title safe for filenames: every character
// outside letters, digits, underscore, hyphen and whitespace is stripped,
// then whitespace runs become single underscores.
func SanitizeTitle(title string) string {
	title = unsafeTitleChars.ReplaceAllString(title, "")
	return whitespaceRun.ReplaceAllString(title, "_")
}

// archiveEntry is one named blob in the distribution package.
type archiveEntry struct {
	Name string
	Data []byte
}

// buildArchive writes entries into a deflated ZIP archive. Entry names are
// unique by construction; no further ordering is guaranteed to consumers.
func buildArchive(entries []archiveEntry) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, e := range entries {
		w, err := zw.Create(e.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrArchiveWrite, e.Name, err)
		}
		if _, err := w.Write(e.Data); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrArchiveWrite, e.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArchiveWrite, err)
	}
	return buf.Bytes(), nil
}
