// Package digest renders the consolidated new-postings email body.
package digest

import (
	"fmt"
	"html"
	"strings"

	"careerwatch/internal/domain"
)

// Subject is the fixed digest subject line.
const Subject = "New job postings detected"

const defaultGroupLimit = 25

// Renderer builds one HTML digest covering every alerting client: grouped by
// client, then by division in the fixed display order, with long groups
// capped and summarized.
type Renderer struct {
	GroupLimit int // max entries listed per division group; 0 means default
}

func (r Renderer) limit() int {
	if r.GroupLimit > 0 {
		return r.GroupLimit
	}
	return defaultGroupLimit
}

func (r Renderer) HTML(alerts []domain.Alert) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; font-size: 14px;">`)
	b.WriteString(`<p><b>New job postings detected</b></p>`)

	for _, alert := range alerts {
		fmt.Fprintf(&b, `<p style="margin: 16px 0 6px 0;"><b>%s</b><br/>`, html.EscapeString(alert.ClientName))
		fmt.Fprintf(&b, `<span>Careers: <a href="%s">%s</a></span></p>`,
			html.EscapeString(alert.ClientURL), html.EscapeString(alert.ClientURL))

		byDiv := map[domain.Division][]domain.ClassifiedJob{}
		for _, job := range alert.Jobs {
			d := job.Division
			if d == "" {
				d = domain.DivisionUncategorized
			}
			byDiv[d] = append(byDiv[d], job)
		}

		for _, d := range domain.DivisionOrder {
			list := byDiv[d]
			if len(list) == 0 {
				continue
			}

			fmt.Fprintf(&b, `<div style="margin: 8px 0 2px 0;"><b>%s</b></div>`, html.EscapeString(string(d)))
			b.WriteString(`<ul style="margin-top: 6px;">`)

			shown := list
			if len(shown) > r.limit() {
				shown = shown[:r.limit()]
			}
			for _, job := range shown {
				title := job.Title
				if title == "" {
					title = job.URL
				}
				fmt.Fprintf(&b, `<li><a href="%s">%s</a></li>`,
					html.EscapeString(job.URL), html.EscapeString(title))
			}
			if n := len(list) - r.limit(); n > 0 {
				fmt.Fprintf(&b, `<li>(and %d more)</li>`, n)
			}

			b.WriteString(`</ul>`)
		}
	}

	b.WriteString(`</div>`)
	return b.String()
}
