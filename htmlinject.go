package fotzpdf

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/adam420412/fotz-pdf-microservice/internal/assets"
)

// Fixed strings rendered into the injected blocks.
const (
	tocHeading    = "SPIS TREŚCI"
	logoCaption   = "FOTZ Studio"
	logoLinkURL   = "https://fotz.pl"
	logoLinkLabel = "fotz.pl"
)

// tocData feeds the table-of-contents template.
type tocData struct {
	Heading string
	Color   string
	Entries []TocEntry
}

// logoData feeds the closing logo-page template.
type logoData struct {
	ImageSrc  template.URL
	Caption   string
	LinkURL   string
	LinkLabel string
	Color     string
}

// contentInjector places theme CSS, the table of contents and the closing
// logo block into the rendered HTML document.
type contentInjector struct {
	tocTmpl  *template.Template
	logoTmpl *template.Template
}

// newContentInjector creates a contentInjector with the embedded templates.
// Panics if a template cannot be loaded or parsed (programmer error).
func newContentInjector() *contentInjector {
	return &contentInjector{
		tocTmpl:  mustTemplate("toc"),
		logoTmpl: mustTemplate("logo"),
	}
}

func mustTemplate(name string) *template.Template {
	content, err := assets.LoadTemplate(name)
	if err != nil {
		panic("failed to load " + name + " template: " + err.Error())
	}
	tmpl, err := template.New(name).Parse(content)
	if err != nil {
		panic("failed to parse " + name + " template: " + err.Error())
	}
	return tmpl
}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
func (c *contentInjector) InjectCSS(htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// InjectTOC renders the table-of-contents block and inserts it at the top
// of the document body, before the main content. Page numbers are rendered
// exactly as supplied. With no entries the document passes through.
func (c *contentInjector) InjectTOC(htmlContent string, entries []TocEntry, theme Theme) (string, error) {
	if len(entries) == 0 {
		return htmlContent, nil
	}

	var buf bytes.Buffer
	data := tocData{Heading: tocHeading, Color: theme.Primary, Entries: entries}
	if err := c.tocTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	return insertAfterBodyOpen(htmlContent, buf.String()), nil
}

// InjectLogo renders the closing logo block and inserts it before </body>.
// An empty logoPath (the asset was absent) passes the document through.
func (c *contentInjector) InjectLogo(htmlContent, logoPath string, theme Theme) (string, error) {
	if logoPath == "" {
		return htmlContent, nil
	}

	var buf bytes.Buffer
	data := logoData{
		ImageSrc:  template.URL("file://" + logoPath),
		Caption:   logoCaption,
		LinkURL:   logoLinkURL,
		LinkLabel: logoLinkLabel,
		Color:     theme.Secondary,
	}
	if err := c.logoTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	blockHTML := buf.String()
	lowerHTML := strings.ToLower(htmlContent)
	if idx := strings.Index(lowerHTML, "</body>"); idx != -1 {
		return htmlContent[:idx] + blockHTML + htmlContent[idx:], nil
	}
	return htmlContent + blockHTML, nil
}

// insertAfterBodyOpen places blockHTML right after the opening <body> tag,
// falling back to prepending when no body tag exists.
func insertAfterBodyOpen(htmlContent, blockHTML string) string {
	lowerHTML := strings.ToLower(htmlContent)
	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + blockHTML + htmlContent[insertPos:]
		}
	}
	return blockHTML + htmlContent
}
