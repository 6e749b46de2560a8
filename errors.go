package fotzpdf

import "errors"

// Sentinel errors for pipeline operations.
var (
	ErrEmptyContent   = errors.New("content cannot be empty")
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrImageDecode    = errors.New("image decode failed")
	ErrTemplateRender = errors.New("template rendering failed")
	ErrMergeFailed    = errors.New("document merge failed")
	ErrArchiveWrite   = errors.New("archive write failed")
)
