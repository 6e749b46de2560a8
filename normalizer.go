package fotzpdf

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultProperNouns lists names that keep their canonical casing inside
// standardized headings. Lookup is case-insensitive; the registry entry
// wins over whatever casing the input used.
var DefaultProperNouns = []string{
	"Notion", "Trello", "Asana", "Google", "Zapier", "YouTube",
	"Instagram", "TikTok", "Facebook", "LinkedIn", "Twitter",
	"Excel", "Tableau", "PowerBI", "Buffer", "HubSpot",
	"ICE", "EVP", "SOP", "AI", "API", "DeepL", "FOTZ",
}

// Keyword suffix matching defaults, tuned for Polish inflection. The
// alphabet is a regexp character-class body; both values are configurable
// for other locales.
const (
	DefaultSuffixAlphabet = "a-ząćęłńóśźż"
	DefaultSuffixWindow   = 6
)

// headingLine matches ATX headings of depth 2 to 4, one line at a time.
var headingLine = regexp.MustCompile(`(?m)^(#{2,4})\s+(.+)$`)

// Normalizer applies the editorial rules to Markdown content before
// rendering. Both rules are regex-based and line/paragraph scoped by
// design, not a full Markdown parse.
type Normalizer struct {
	canonical map[string]string // lowercased word -> canonical casing
	alphabet  string
	window    int
}

// NewNormalizer creates a Normalizer. Nil or zero arguments keep the
// built-in Polish defaults.
func NewNormalizer(properNouns []string, alphabet string, window int) *Normalizer {
	if properNouns == nil {
		properNouns = DefaultProperNouns
	}
	if alphabet == "" {
		alphabet = DefaultSuffixAlphabet
	}
	if window <= 0 {
		window = DefaultSuffixWindow
	}

	canonical := make(map[string]string, len(properNouns))
	for _, pn := range properNouns {
		canonical[strings.ToLower(pn)] = pn
	}
	return &Normalizer{canonical: canonical, alphabet: alphabet, window: window}
}

// Normalize applies heading standardization first, then keyword emphasis.
func (n *Normalizer) Normalize(content string, keywords []string) string {
	content = n.StandardizeHeadings(content)
	if len(keywords) > 0 {
		content = n.EmphasizeKeywords(content, keywords)
	}
	return content
}

// StandardizeHeadings rewrites level 2-4 headings: the first word is
// capitalized (first letter upper, rest lowered), registry words get their
// canonical casing, every other word is lowercased. The marker and a
// single following space are preserved.
// Headings with no text are left unmodified.
func (n *Normalizer) StandardizeHeadings(content string) string {
	return headingLine.ReplaceAllStringFunc(content, func(line string) string {
		m := headingLine.FindStringSubmatch(line)
		words := strings.Fields(m[2])
		if len(words) == 0 {
			return line
		}

		out := make([]string, 0, len(words))
		out = append(out, capitalize(words[0]))
		for _, w := range words[1:] {
			if canon, ok := n.canonical[strings.ToLower(w)]; ok {
				out = append(out, canon)
			} else {
				out = append(out, strings.ToLower(w))
			}
		}
		return m[1] + " " + strings.Join(out, " ")
	})
}

// EmphasizeKeywords bolds, per keyword in order and per paragraph (blocks
// separated by a blank line), the first occurrence of the keyword plus up
// to window trailing letters from the suffix alphabet. The widened match
// catches common inflected forms. Occurrences already wrapped in emphasis
// markers are skipped, so a later keyword never double-marks a span an
// earlier one claimed.
func (n *Normalizer) EmphasizeKeywords(content string, keywords []string) string {
	if len(keywords) == 0 {
		return content
	}

	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		re, err := regexp.Compile(fmt.Sprintf(`(?i)%s[%s]{0,%d}`, regexp.QuoteMeta(kw), n.alphabet, n.window))
		if err != nil {
			// Malformed alphabet override; emphasis is best effort.
			continue
		}

		paragraphs := strings.Split(content, "\n\n")
		for i, para := range paragraphs {
			paragraphs[i] = emphasizeFirst(para, re)
		}
		content = strings.Join(paragraphs, "\n\n")
	}
	return content
}

// emphasizeFirst wraps the first match in the paragraph that is not
// directly preceded or followed by emphasis markers. RE2 has no lookaround,
// so the guard inspects the two characters on each side of the match.
func emphasizeFirst(para string, re *regexp.Regexp) string {
	for _, loc := range re.FindAllStringIndex(para, -1) {
		start, end := loc[0], loc[1]
		if start >= 2 && para[start-2:start] == "**" {
			continue
		}
		if end+2 <= len(para) && para[end:end+2] == "**" {
			continue
		}
		return para[:start] + "**" + para[start:end] + "**" + para[end:]
	}
	return para
}

// capitalize uppercases the first rune and lowercases the rest, so a
// fully uppercase first word like "AI" comes out as "Ai".
func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError && size <= 1 {
		return word
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
}
