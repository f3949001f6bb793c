package render

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// parseAnchors pulls the anchors matching selector out of a rendered HTML
// snapshot. Relative hrefs are resolved against pageURL so adapters always
// see absolute URLs, matching what a browser exposes as a.href.
func parseAnchors(htmlSrc, pageURL, selector string) ([]Anchor, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlSrc))
	if err != nil {
		return nil, fmt.Errorf("parse page html: %w", err)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}

	var out []Anchor
	doc.Find(selector).Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}
		out = append(out, Anchor{
			Text: a.Text(),
			Href: resolveHref(base, href),
		})
	})
	return out, nil
}

func resolveHref(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	if base == nil {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}
