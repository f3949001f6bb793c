// Package workday handles both plain Workday boards and hub pages that link
// out to several Workday tenants (one org, many subsidiaries). Hub links are
// collapsed to tenant roots, each root is visited in turn, and the results
// are unioned.
package workday

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"careerwatch/internal/domain"
	"careerwatch/internal/render"
	"careerwatch/internal/scrape/util"
)

var jobSuffixRe = regexp.MustCompile(`(?i)/job/.*$`)

type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (a *Adapter) Name() string { return "workday" }

func (a *Adapter) Match(startURL, finalURL string) bool {
	return strings.Contains(startURL, "myworkdayjobs.com") ||
		strings.Contains(finalURL, "myworkdayjobs.com") ||
		strings.Contains(startURL, "oneoncology.com")
}

func (a *Adapter) Extract(ctx context.Context, pg render.Page) ([]domain.Job, error) {
	anchors, err := pg.Anchors(`a[href*="myworkdayjobs.com/"]`)
	if err != nil {
		return nil, fmt.Errorf("workday hub anchors: %w", err)
	}

	seen := map[string]bool{}
	var roots []string
	for _, an := range anchors {
		root := TenantRoot(an.Href)
		if root == "" || seen[root] {
			continue
		}
		seen[root] = true
		roots = append(roots, root)
	}

	// The page itself may already be a tenant board (a redirect straight in),
	// in which case it won't link to itself from the hub anchors.
	if cur := TenantRoot(pg.URL()); cur != "" &&
		strings.Contains(strings.ToLower(cur), "myworkdayjobs.com/") && !seen[cur] {
		roots = append(roots, cur)
	}

	var all []domain.Job
	for _, root := range roots {
		jobs, err := a.extractRoot(ctx, pg, root)
		if err != nil {
			// one broken tenant must not cost us the others
			log.Printf("[workday] tenant root failed root=%s err=%v", root, err)
			continue
		}
		all = append(all, jobs...)
	}
	return util.DedupeByURL(all), nil
}

func (a *Adapter) extractRoot(ctx context.Context, pg render.Page, root string) ([]domain.Job, error) {
	if _, err := pg.Navigate(ctx, root); err != nil {
		return nil, err
	}

	anchors, err := pg.Anchors(`a[href*="/job/"]`)
	if err != nil {
		return nil, err
	}

	var jobs []domain.Job
	for _, an := range anchors {
		if !strings.Contains(strings.ToLower(an.Href), "/job/") {
			continue
		}
		title := util.CleanText(an.Text)
		if util.IsJunkTitle(title) {
			continue
		}
		jobs = append(jobs, domain.Job{Title: title, URL: an.Href})
	}
	return jobs, nil
}

// TenantRoot strips a job-detail suffix and any trailing slash off a Workday
// link, leaving the base board URL for one tenant.
func TenantRoot(href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	href = jobSuffixRe.ReplaceAllString(href, "")
	return strings.TrimSuffix(href, "/")
}
