package fotzpdf

import (
	"os"
	"strings"
	"testing"
)

func TestWriteTempHTML(t *testing.T) {
	content := "<html><body>hi</body></html>"

	path, cleanup, err := writeTempHTML(content)
	if err != nil {
		t.Fatalf("writeTempHTML: %v", err)
	}

	if !strings.HasSuffix(path, ".html") {
		t.Errorf("path %q does not end in .html, Chrome would not parse it", path)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading temp file: %v", err)
	}
	if string(got) != content {
		t.Errorf("content = %q, want %q", got, content)
	}

	cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("cleanup did not remove the file")
	}
}

func TestBuildPDFOptions(t *testing.T) {
	t.Run("content pages get book margins", func(t *testing.T) {
		opts := buildPDFOptions(nil)

		if *opts.PaperWidth != paperWidthInches || *opts.PaperHeight != paperHeightInches {
			t.Errorf("paper = %vx%v, want %vx%v", *opts.PaperWidth, *opts.PaperHeight, paperWidthInches, paperHeightInches)
		}
		if !opts.PrintBackground {
			t.Error("PrintBackground not set")
		}
		if *opts.MarginTop != marginInches || *opts.MarginLeft != marginInches || *opts.MarginRight != marginInches {
			t.Error("content margins not applied")
		}
		if *opts.MarginBottom != marginBottomInches {
			t.Errorf("MarginBottom = %v, want %v", *opts.MarginBottom, marginBottomInches)
		}
		if opts.DisplayHeaderFooter {
			t.Error("footer enabled without PageNumbers")
		}
	})

	t.Run("full bleed zeroes all margins", func(t *testing.T) {
		opts := buildPDFOptions(&pdfOptions{FullBleed: true})

		for name, m := range map[string]*float64{
			"top": opts.MarginTop, "bottom": opts.MarginBottom,
			"left": opts.MarginLeft, "right": opts.MarginRight,
		} {
			if *m != 0 {
				t.Errorf("margin %s = %v, want 0", name, *m)
			}
		}
		if opts.DisplayHeaderFooter {
			t.Error("footer enabled on a full-bleed page")
		}
	})

	t.Run("page numbers enable the footer counter", func(t *testing.T) {
		opts := buildPDFOptions(&pdfOptions{PageNumbers: true})

		if !opts.DisplayHeaderFooter {
			t.Fatal("DisplayHeaderFooter not set")
		}
		if !strings.Contains(opts.FooterTemplate, `class="pageNumber"`) {
			t.Errorf("footer template missing page counter: %q", opts.FooterTemplate)
		}
		if !strings.Contains(opts.FooterTemplate, "text-align: center") {
			t.Error("footer counter not centered")
		}
		if opts.HeaderTemplate == "" {
			t.Error("header template left unset, Chrome would print its default")
		}
	})
}
