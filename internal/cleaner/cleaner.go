package cleaner

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var whitespace = regexp.MustCompile(`\s+`)

// JobDescription normalizes a pasted job description. Postings copied
// from job boards often come with markup; anything that looks like HTML
// is stripped down to its text blocks before it goes into a prompt.
func JobDescription(input string) string {
	if !strings.Contains(input, "<") {
		return strings.TrimSpace(input)
	}
	return cleanHTML(input)
}

func cleanHTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return collapse(stripTags(html))
	}
	doc.Find("script, style, nav, header, footer, iframe, noscript").Remove()
	doc.Find(".menu, .navigation, .social, .banner, .ads, .cookie, .popup").Remove()

	var blocks []string
	doc.Find("p, li, h1, h2, h3, h4, h5, h6").Each(func(i int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if len(text) > 0 {
			blocks = append(blocks, text)
		}
	})
	if len(blocks) > 0 {
		return strings.Join(blocks, "\n\n")
	}

	if body := strings.TrimSpace(doc.Find("body").Text()); len(body) > 0 {
		return collapse(body)
	}
	return collapse(doc.Text())
}

func stripTags(html string) string {
	re := regexp.MustCompile("<[^>]*>")
	return re.ReplaceAllString(html, " ")
}

func collapse(text string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
}
