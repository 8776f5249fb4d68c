package checkout

import (
	"net/url"
	"strings"
	"unicode"
)

const DefaultChatBaseURL = "https://wa.me"

var componentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// BuildExternalOrderLink builds the chat deep link for the order text.
func BuildExternalOrderLink(text, destination string) string {
	return BuildExternalOrderLinkWithBase(DefaultChatBaseURL, text, destination)
}

// BuildExternalOrderLinkWithBase keeps only the digits of destination. A
// destination without digits still yields a link, just one with no recipient.
func BuildExternalOrderLinkWithBase(baseURL, text, destination string) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = DefaultChatBaseURL
	}
	return base + "/" + digitsOnly(destination) + "?text=" + encodeComponent(text)
}

// encodeComponent escapes like a browser's encodeURIComponent, so spaces
// become %20 and the marks !'()* stay literal.
func encodeComponent(text string) string {
	return componentEscaper.Replace(url.QueryEscape(text))
}

func digitsOnly(value string) string {
	return strings.Map(func(r rune) rune {
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			return r
		}
		return -1
	}, value)
}
