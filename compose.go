package fotzpdf

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"image"
	"os"

	// Decoders for the raster formats remote assets arrive in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// pageLayout places a raster image on a single A4 page using cover-fit
// scaling: the image fills the whole page and overflow is clipped, never
// letterboxed. All values are in PDF points.
type pageLayout struct {
	Scale   float64
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}

// coverFitLayout computes the cover-fit placement for an image of the
// given pixel dimensions: scale = max(pageW/imgW, pageH/imgH), scaled
// image centered on the page.
func coverFitLayout(imgWidth, imgHeight int) pageLayout {
	scaleW := PageWidthPt / float64(imgWidth)
	scaleH := PageHeightPt / float64(imgHeight)
	scale := scaleW
	if scaleH > scale {
		scale = scaleH
	}

	w := float64(imgWidth) * scale
	h := float64(imgHeight) * scale
	return pageLayout{
		Scale:   scale,
		Width:   w,
		Height:  h,
		OffsetX: (PageWidthPt - w) / 2,
		OffsetY: (PageHeightPt - h) / 2,
	}
}

// pageComposer wraps a single raster image as one full-bleed PDF page.
type pageComposer interface {
	ComposePage(ctx context.Context, imagePath string) ([]byte, error)
}

// fullBleedComposer renders the image-page template through the shared PDF
// renderer with zero margins.
type fullBleedComposer struct {
	pdf  pdfConverter
	tmpl *template.Template
}

// newFullBleedComposer creates a fullBleedComposer.
// Panics if the embedded template is broken (programmer error).
func newFullBleedComposer(pdf pdfConverter) *fullBleedComposer {
	return &fullBleedComposer{pdf: pdf, tmpl: mustTemplate("imagepage")}
}

// imagePageData feeds the full-bleed page template.
type imagePageData struct {
	pageLayout
	PageWidth  float64
	PageHeight float64
	ImageSrc   template.URL
}

// ComposePage loads the image, computes its cover-fit placement and renders
// a single borderless A4 page. A fetched-but-undecodable image fails the
// page; the assembler treats that as fatal to the request.
func (c *fullBleedComposer) ComposePage(ctx context.Context, imagePath string) ([]byte, error) {
	f, err := os.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}
	cfg, _, err := image.DecodeConfig(f)
	closeErr := f.Close()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrImageDecode, imagePath, err)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, closeErr)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %s: empty dimensions", ErrImageDecode, imagePath)
	}

	data := imagePageData{
		pageLayout: coverFitLayout(cfg.Width, cfg.Height),
		PageWidth:  PageWidthPt,
		PageHeight: PageHeightPt,
		ImageSrc:   template.URL("file://" + imagePath),
	}

	var buf bytes.Buffer
	if err := c.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	return c.pdf.ToPDF(ctx, buf.String(), &pdfOptions{FullBleed: true})
}
