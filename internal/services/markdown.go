package services

import (
	"regexp"
	"strings"
)

var boldSpanPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)

type listState int

const (
	listNone listState = iota
	listUnordered
	listOrdered
)

func (state listState) closingTag() string {
	if state == listOrdered {
		return "</ol>"
	}
	return "</ul>"
}

// MarkdownToHTML converts the constrained markdown dialect produced by the
// text generator (headers, bold spans, bullet and numbered lists, paragraphs)
// into an HTML fragment. Header prefixes and bold spans are substituted
// textually before the line scan, so they are not line-aware.
func MarkdownToHTML(text string) string {
	text = strings.ReplaceAll(text, "### ", "<h4>")
	text = strings.ReplaceAll(text, "\n##", "</h4>\n<h3>")
	text = strings.ReplaceAll(text, "\n#", "</h3>\n<h2>")
	text = boldSpanPattern.ReplaceAllString(text, "<strong>$1</strong>")

	lines := strings.Split(text, "\n")
	htmlLines := make([]string, 0, len(lines))
	state := listNone

	closeList := func() {
		if state == listNone {
			return
		}
		htmlLines = append(htmlLines, state.closingTag())
		state = listNone
	}

	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(stripped, "- ") || strings.HasPrefix(stripped, "* "):
			if state == listOrdered {
				closeList()
			}
			if state == listNone {
				htmlLines = append(htmlLines, "<ul>")
				state = listUnordered
			}
			htmlLines = append(htmlLines, "<li>"+stripped[2:]+"</li>")
		case isNumberedItem(stripped):
			if state == listUnordered {
				closeList()
			}
			if state == listNone {
				htmlLines = append(htmlLines, "<ol>")
				state = listOrdered
			}
			htmlLines = append(htmlLines, "<li>"+numberedItemContent(stripped)+"</li>")
		default:
			closeList()
			if stripped != "" {
				htmlLines = append(htmlLines, "<p>"+line+"</p>")
			} else {
				htmlLines = append(htmlLines, "")
			}
		}
	}
	closeList()

	return strings.Join(htmlLines, "\n")
}

func isNumberedItem(stripped string) bool {
	if stripped == "" || stripped[0] < '0' || stripped[0] > '9' {
		return false
	}
	head := stripped
	if len(head) > 5 {
		head = head[:5]
	}
	return strings.Contains(head, ". ")
}

func numberedItemContent(stripped string) string {
	parts := strings.SplitN(stripped, ". ", 2)
	if len(parts) == 2 {
		return parts[1]
	}
	return stripped
}
