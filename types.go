package fotzpdf

import (
	"net/http"
	"time"
)

// Defaults applied to optional request fields.
const (
	DefaultSubtitle = "Poradnik"
	DefaultAuthor   = "FOTZ Studio"
)

// A4 page dimensions. Layout math works in PDF points; Chrome's print
// options take inches.
const (
	PageWidthPt  = 595.28
	PageHeightPt = 841.89

	paperWidthInches  = 8.27
	paperHeightInches = 11.69
)

// TocEntry is one table-of-contents row. Page numbers are caller-supplied
// and trusted as-is; they are never validated against the rendered page
// count of the content document.
type TocEntry struct {
	Title string `json:"title"`
	Page  int    `json:"page"`
}

// Request describes a single ebook generation. Content is required;
// everything else is optional with the stated defaults.
type Request struct {
	Content         string
	Title           string
	Subtitle        string // default "Poradnik"
	Author          string // default "FOTZ Studio"
	TocEntries      []TocEntry
	Keywords        []string // emphasis keywords, applied in order
	CoverURL        string
	InfographicURLs []string // composed in the supplied order
	LogoURL         string
}

// withDefaults fills omitted optional fields.
func (r Request) withDefaults() Request {
	if r.Subtitle == "" {
		r.Subtitle = DefaultSubtitle
	}
	if r.Author == "" {
		r.Author = DefaultAuthor
	}
	return r
}

// PackageRequest extends Request with the artifacts that only appear in the
// distributable ZIP package.
type PackageRequest struct {
	Request
	MockupURL       string
	BlogPost        string
	ShopDescription string
}

// Theme holds the three brand colors driving the document styling.
// It is process-wide, read-only configuration, not request-scoped.
type Theme struct {
	Primary   string
	Secondary string
	Accent    string
}

// DefaultTheme returns the FOTZ brand colors.
func DefaultTheme() Theme {
	return Theme{
		Primary:   "#601A43", // burgundy
		Secondary: "#162E52", // navy blue
		Accent:    "#C9A227", // gold
	}
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	theme          Theme
	properNouns    []string
	suffixAlphabet string
	suffixWindow   int
	renderTimeout  time.Duration
	fetchTimeout   time.Duration
	httpClient     *http.Client
}

// defaultRenderTimeout bounds a single Chrome print-to-PDF pass.
const defaultRenderTimeout = 2 * time.Minute

// WithTheme replaces the brand colors used for document styling.
func WithTheme(t Theme) Option {
	return func(s *Service) { s.cfg.theme = t }
}

// WithProperNouns replaces the registry of names that keep their canonical
// casing in standardized headings.
func WithProperNouns(nouns []string) Option {
	return func(s *Service) { s.cfg.properNouns = nouns }
}

// WithSuffixMatching tunes the keyword inflection window: alphabet is a
// regexp character-class body, window the maximum trailing letters matched
// after a keyword. Zero values keep the Polish defaults.
func WithSuffixMatching(alphabet string, window int) Option {
	return func(s *Service) {
		s.cfg.suffixAlphabet = alphabet
		s.cfg.suffixWindow = window
	}
}

// WithRenderTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithRenderTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("fotzpdf: WithRenderTimeout duration must be positive")
	}
	return func(s *Service) { s.cfg.renderTimeout = d }
}

// WithFetchTimeout sets the per-asset download timeout.
// Panics if d <= 0.
func WithFetchTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("fotzpdf: WithFetchTimeout duration must be positive")
	}
	return func(s *Service) { s.cfg.fetchTimeout = d }
}

// WithHTTPClient sets the client used for asset downloads.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Service) { s.cfg.httpClient = c }
}
