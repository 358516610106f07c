package fetcher

import (
	"strings"

	"golang.org/x/net/html"
)

// CleanText strips HTML tags and script/style bodies, decodes entities and
// collapses whitespace. Plain text only has its whitespace collapsed.
func CleanText(input string) string {
	if !strings.ContainsAny(input, "<&") {
		return collapseSpace(input)
	}

	tokenizer := html.NewTokenizer(strings.NewReader(input))
	var textBuilder strings.Builder
	inScript := false
	inStyle := false

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return collapseSpace(textBuilder.String())

		case html.StartTagToken:
			switch tokenizer.Token().Data {
			case "script":
				inScript = true
			case "style":
				inStyle = true
			case "br", "p", "div", "li":
				textBuilder.WriteString(" ")
			}

		case html.EndTagToken:
			switch tokenizer.Token().Data {
			case "script":
				inScript = false
			case "style":
				inStyle = false
			case "p", "div", "li":
				textBuilder.WriteString(" ")
			}

		case html.SelfClosingTagToken:
			textBuilder.WriteString(" ")

		case html.TextToken:
			if !inScript && !inStyle {
				textBuilder.WriteString(tokenizer.Token().Data)
			}
		}
	}
}

// collapseSpace removes excessive whitespace
func collapseSpace(input string) string {
	return strings.Join(strings.Fields(input), " ")
}
