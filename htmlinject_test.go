package fotzpdf

import (
	"strings"
	"testing"
)

const testDoc = `<!DOCTYPE html>
<html lang="pl">
<head>
<meta charset="utf-8">
<title>t</title>
</head>
<body>
<p>treść</p>
</body>
</html>`

func TestInjectCSS(t *testing.T) {
	inj := newContentInjector()

	t.Run("before closing head", func(t *testing.T) {
		got := inj.InjectCSS(testDoc, "body { color: red; }")

		styleIdx := strings.Index(got, "<style>")
		headIdx := strings.Index(got, "</head>")
		if styleIdx == -1 || headIdx == -1 || styleIdx > headIdx {
			t.Errorf("style block not placed before </head>:\n%s", got)
		}
	})

	t.Run("after body open when no head", func(t *testing.T) {
		doc := `<body class="x"><p>hi</p></body>`
		got := inj.InjectCSS(doc, "p {}")

		want := `<body class="x"><style>p {}</style><p>hi</p></body>`
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("prepended when neither tag exists", func(t *testing.T) {
		got := inj.InjectCSS("<p>hi</p>", "p {}")
		if !strings.HasPrefix(got, "<style>p {}</style>") {
			t.Errorf("style block not prepended: %q", got)
		}
	})

	t.Run("empty css passes through", func(t *testing.T) {
		if got := inj.InjectCSS(testDoc, ""); got != testDoc {
			t.Error("document modified with empty CSS")
		}
	})

	t.Run("closing sequences escaped", func(t *testing.T) {
		got := inj.InjectCSS(testDoc, `p { content: "</style>"; }`)
		if strings.Count(got, "</style>") != 1 {
			t.Errorf("style block breakout not escaped:\n%s", got)
		}
	})
}

func TestInjectTOC(t *testing.T) {
	inj := newContentInjector()
	theme := DefaultTheme()

	t.Run("no entries passes through", func(t *testing.T) {
		got, err := inj.InjectTOC(testDoc, nil, theme)
		if err != nil {
			t.Fatalf("InjectTOC: %v", err)
		}
		if got != testDoc {
			t.Error("document modified with no entries")
		}
	})

	t.Run("entries rendered at top of body", func(t *testing.T) {
		entries := []TocEntry{
			{Title: "Wstęp", Page: 3},
			{Title: "Rozdział 1", Page: 7},
		}
		got, err := inj.InjectTOC(testDoc, entries, theme)
		if err != nil {
			t.Fatalf("InjectTOC: %v", err)
		}

		for _, want := range []string{"SPIS TREŚCI", "Wstęp", "Rozdział 1", ">3<", ">7<", theme.Primary} {
			if !strings.Contains(got, want) {
				t.Errorf("output missing %q", want)
			}
		}

		tocIdx := strings.Index(got, "SPIS TREŚCI")
		contentIdx := strings.Index(got, "<p>treść</p>")
		if tocIdx == -1 || contentIdx == -1 || tocIdx > contentIdx {
			t.Error("table of contents not placed before the content")
		}
	})

	t.Run("page numbers rendered as supplied", func(t *testing.T) {
		got, err := inj.InjectTOC(testDoc, []TocEntry{{Title: "x", Page: 999}}, theme)
		if err != nil {
			t.Fatalf("InjectTOC: %v", err)
		}
		if !strings.Contains(got, ">999<") {
			t.Errorf("supplied page number missing: %q", got)
		}
	})

	t.Run("entry titles are escaped", func(t *testing.T) {
		got, err := inj.InjectTOC(testDoc, []TocEntry{{Title: "<b>x</b>", Page: 1}}, theme)
		if err != nil {
			t.Fatalf("InjectTOC: %v", err)
		}
		if strings.Contains(got, "<b>x</b>") {
			t.Error("entry title not escaped")
		}
	})
}

func TestInjectLogo(t *testing.T) {
	inj := newContentInjector()
	theme := DefaultTheme()

	t.Run("empty path passes through", func(t *testing.T) {
		got, err := inj.InjectLogo(testDoc, "", theme)
		if err != nil {
			t.Fatalf("InjectLogo: %v", err)
		}
		if got != testDoc {
			t.Error("document modified with empty logo path")
		}
	})

	t.Run("logo block before closing body", func(t *testing.T) {
		got, err := inj.InjectLogo(testDoc, "/tmp/scratch/logo.png", theme)
		if err != nil {
			t.Fatalf("InjectLogo: %v", err)
		}

		for _, want := range []string{
			"file:///tmp/scratch/logo.png",
			"FOTZ Studio",
			"https://fotz.pl",
			"page-break-before: always",
			theme.Secondary,
		} {
			if !strings.Contains(got, want) {
				t.Errorf("output missing %q", want)
			}
		}

		logoIdx := strings.Index(got, "FOTZ Studio")
		bodyIdx := strings.LastIndex(got, "</body>")
		if logoIdx == -1 || bodyIdx == -1 || logoIdx > bodyIdx {
			t.Error("logo block not placed before </body>")
		}
	})

	t.Run("appended when no closing body tag", func(t *testing.T) {
		got, err := inj.InjectLogo("<p>hi</p>", "/tmp/logo.png", theme)
		if err != nil {
			t.Fatalf("InjectLogo: %v", err)
		}
		if !strings.HasPrefix(got, "<p>hi</p>") {
			t.Errorf("content not preserved at front: %q", got)
		}
		if !strings.Contains(got, "file:///tmp/logo.png") {
			t.Error("logo block missing")
		}
	})
}
