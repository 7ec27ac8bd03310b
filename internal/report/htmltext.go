package report

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/imusman-khan/sonarpdf/internal/model"
)

// blockTags are HTML elements that separate paragraphs when converting rule
// descriptions to plain text.
var blockTags = map[string]bool{
	"p": true, "div": true, "ul": true, "ol": true, "table": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// htmlToText converts rule-description HTML into plain text paragraphs.
// Block elements become paragraph breaks, list items become bullet lines,
// and <pre> content is skipped entirely - code examples are extracted
// separately by codeExamples so they can be rendered as monospace blocks.
//
// Design decision: We use the x/net/html tokenizer instead of regex
// replacement chains. The tokenizer handles entities, attribute quoting,
// and malformed markup for free, which is exactly where regexes on HTML
// fall over.
func htmlToText(src string) string {
	tok := html.NewTokenizer(strings.NewReader(src))
	var (
		b        strings.Builder
		preDepth int
	)
	for {
		switch tok.Next() {
		case html.ErrorToken:
			// io.EOF or malformed tail; either way we keep what we have.
			return tidyText(b.String())
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := tok.TagName()
			switch tag := string(name); {
			case tag == "pre":
				preDepth++
			case tag == "br":
				b.WriteString("\n")
			case tag == "li":
				b.WriteString("\n• ")
			case blockTags[tag]:
				b.WriteString("\n\n")
			}
		case html.EndTagToken:
			name, _ := tok.TagName()
			switch tag := string(name); {
			case tag == "pre":
				if preDepth > 0 {
					preDepth--
				}
			case tag == "li":
				b.WriteString("\n")
			case blockTags[tag]:
				b.WriteString("\n\n")
			}
		case html.TextToken:
			if preDepth == 0 {
				// Newlines inside text nodes are source formatting, not
				// line breaks; paragraph breaks come from the tags above.
				b.WriteString(strings.ReplaceAll(string(tok.Text()), "\n", " "))
			}
		}
	}
}

// tidyText normalizes whitespace after tag removal: runs of spaces collapse
// to one, lines are trimmed, and runs of blank lines collapse to a single
// paragraph break.
func tidyText(s string) string {
	lines := strings.Split(s, "\n")
	var (
		out        []string
		blankRun   bool
		wroteFirst bool
	)
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			blankRun = true
			continue
		}
		if blankRun && wroteFirst {
			out = append(out, "")
		}
		out = append(out, line)
		blankRun = false
		wroteFirst = true
	}
	return strings.Join(out, "\n")
}

// codeExamples extracts the labeled code snippets from a rule description:
// every <pre data-diff-type="noncompliant"> and <pre data-diff-type=
// "compliant"> block, in document order. Markup inside the blocks (syntax
// highlighting spans) is dropped; entities are already decoded by the
// tokenizer.
func codeExamples(src string) []model.CodeExample {
	tok := html.NewTokenizer(strings.NewReader(src))
	var examples []model.CodeExample
	for {
		switch tok.Next() {
		case html.ErrorToken:
			return examples
		case html.StartTagToken:
			name, hasAttr := tok.TagName()
			if string(name) != "pre" || !hasAttr {
				continue
			}
			diffType := preDiffType(tok)
			if diffType == "" {
				continue
			}
			code := collectPreText(tok)
			examples = append(examples, model.CodeExample{
				Compliant: diffType == "compliant",
				Code:      code,
			})
		}
	}
}

// preDiffType returns the data-diff-type attribute value of the current
// <pre> tag, or empty string when absent.
func preDiffType(tok *html.Tokenizer) string {
	for {
		key, val, more := tok.TagAttr()
		if string(key) == "data-diff-type" {
			return string(val)
		}
		if !more {
			return ""
		}
	}
}

// collectPreText gathers the text content of the current <pre> block,
// ignoring nested tags, until the closing </pre>.
func collectPreText(tok *html.Tokenizer) string {
	var b strings.Builder
	for {
		switch tok.Next() {
		case html.ErrorToken:
			return strings.Trim(b.String(), "\n")
		case html.TextToken:
			b.Write(tok.Text())
		case html.EndTagToken:
			name, _ := tok.TagName()
			if string(name) == "pre" {
				return strings.Trim(b.String(), "\n")
			}
		}
	}
}

// stripLineMarkup removes the syntax-highlighting markup from a source line
// returned by api/sources/lines, leaving the raw code text.
func stripLineMarkup(code string) string {
	if !strings.Contains(code, "<") && !strings.Contains(code, "&") {
		return code
	}
	tok := html.NewTokenizer(strings.NewReader(code))
	var b strings.Builder
	for {
		switch tok.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(tok.Text())
		}
	}
}
