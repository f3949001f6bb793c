package scrape

import (
	"context"
	"fmt"
	"regexp"

	"careerwatch/internal/domain"
	"careerwatch/internal/render"
	"careerwatch/internal/scrape/util"
)

// Unrecognized platforms get the broad-keyword treatment: keep any anchor
// whose URL smells like a posting. Trades precision for coverage.
var fallbackURLRe = regexp.MustCompile(`(?i)job|jobs|posting|jobdetails|viewjob`)

type fallbackAdapter struct{}

// NewFallback returns the catch-all strategy. It matches everything, so it
// must stay last in the adapter order.
func NewFallback() fallbackAdapter { return fallbackAdapter{} }

func (fallbackAdapter) Name() string { return "generic" }

func (fallbackAdapter) Match(_, _ string) bool { return true }

func (fallbackAdapter) Extract(_ context.Context, pg render.Page) ([]domain.Job, error) {
	anchors, err := pg.Anchors(`a[href]`)
	if err != nil {
		return nil, fmt.Errorf("generic anchors: %w", err)
	}

	var jobs []domain.Job
	for _, an := range anchors {
		title := util.CleanText(an.Text)
		if util.IsJunkTitle(title) {
			continue
		}
		if !fallbackURLRe.MatchString(an.Href) {
			continue
		}
		jobs = append(jobs, domain.Job{Title: title, URL: an.Href})
	}
	return util.DedupeByURL(jobs), nil
}
