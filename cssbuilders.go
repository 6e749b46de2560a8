package fotzpdf

import "fmt"

// buildThemeCSS renders the ebook stylesheet for the given theme. Page
// size, margins and the page-number footer are handled through the PDF
// print options rather than @page rules, which Chrome's print pipeline
// only partially supports.
//
// The Open Sans import degrades gracefully: when the font service is
// unreachable the stack falls back to the local Arial/sans-serif families
// and layout proceeds unchanged.
func buildThemeCSS(t Theme) string {
	return fmt.Sprintf(`
@import url('https://fonts.googleapis.com/css2?family=Open+Sans:wght@400;600;700&display=swap');

body {
  font-family: 'Open Sans', Arial, sans-serif;
  font-size: 11pt;
  line-height: 1.6;
  color: #333;
  text-align: justify;
}

h1 {
  font-size: 24pt;
  color: %[1]s;
  margin-top: 40pt;
  margin-bottom: 20pt;
  page-break-before: always;
}

h2 {
  font-size: 18pt;
  color: %[1]s;
  margin-top: 30pt;
  margin-bottom: 15pt;
  border-bottom: 2px solid %[1]s;
  padding-bottom: 5pt;
}

h3 {
  font-size: 14pt;
  color: %[2]s;
  margin-top: 20pt;
  margin-bottom: 10pt;
}

h4 {
  font-size: 12pt;
  color: %[2]s;
  font-weight: bold;
  margin-top: 15pt;
  margin-bottom: 8pt;
}

p {
  margin-bottom: 10pt;
  text-align: justify;
}

strong {
  color: %[2]s;
}

a {
  color: %[2]s;
  text-decoration: underline;
}

blockquote {
  border-left: 4px solid %[1]s;
  margin: 20pt 0;
  padding: 15pt 20pt;
  background-color: #f9f9f9;
  font-style: italic;
  color: %[2]s;
}

table {
  width: 100%%;
  border-collapse: collapse;
  margin: 15pt 0;
  font-size: 10pt;
}

th {
  background-color: %[1]s;
  color: white;
  padding: 10pt 8pt;
  text-align: left;
  font-weight: bold;
}

td {
  padding: 8pt;
  border: 1px solid #ddd;
}

tr:nth-child(even) {
  background-color: #f5f5f5;
}

ul, ol {
  margin-left: 20pt;
  margin-bottom: 10pt;
}

li {
  margin-bottom: 5pt;
}

.toc {
  margin: 30pt 0;
}

.toc-item {
  display: flex;
  justify-content: space-between;
  padding: 8pt 0;
  border-bottom: 1px dotted #ccc;
}

.toc-title {
  color: %[2]s;
}

.toc-page {
  color: #666;
}
`, t.Primary, t.Secondary)
}
