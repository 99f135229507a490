package utils

import (
	"regexp"
	"strings"
)

// SlackTextLimit is the ceiling Slack enforces on message text.
const SlackTextLimit = 40000

var (
	markdownLinkRegex = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	headingRegex      = regexp.MustCompile(`(?m)^#+\s*(.+)$`)
	boldRegex         = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

// ConvertMarkdownToSlack rewrites standard markdown into Slack mrkdwn.
// Generation output arrives as markdown, Slack renders *bold* and <url|text>.
func ConvertMarkdownToSlack(message string) string {
	// Links first: [text](url) -> <url|text>, before bold rewriting can
	// touch the link text
	result := markdownLinkRegex.ReplaceAllString(message, "<$2|$1>")

	// Headings become bold lines; strip any embedded ** so the heading does
	// not end up double-wrapped
	result = headingRegex.ReplaceAllStringFunc(result, func(match string) string {
		content := headingRegex.ReplaceAllString(match, "$1")
		content = boldRegex.ReplaceAllString(content, "$1")
		return "*" + content + "*"
	})

	// Remaining **text** becomes *text*
	result = boldRegex.ReplaceAllString(result, "*$1*")

	return result
}

// TruncateText caps text at limit runes, appending a marker when it had to cut
func TruncateText(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	const marker = "… (truncated)"
	cut := limit - len([]rune(marker))
	if cut < 0 {
		cut = 0
	}
	return strings.TrimSpace(string(runes[:cut])) + marker
}
