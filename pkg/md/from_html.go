package md

import (
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// ConvertHTML converts an HTML fragment to adorn markup by reducing it to
// Markdown first.
func (c *Converter) ConvertHTML(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", err
	}

	return c.Convert([]byte(markdown))
}
