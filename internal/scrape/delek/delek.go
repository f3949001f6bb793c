package delek

import (
	"context"
	"fmt"
	"strings"

	"careerwatch/internal/domain"
	"careerwatch/internal/render"
	"careerwatch/internal/scrape/util"
)

type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (a *Adapter) Name() string { return "delek" }

func (a *Adapter) Match(startURL, _ string) bool {
	return strings.Contains(startURL, "jobs.delekus.com")
}

func (a *Adapter) Extract(_ context.Context, pg render.Page) ([]domain.Job, error) {
	anchors, err := pg.Anchors(`a[href*="/job/"]`)
	if err != nil {
		return nil, fmt.Errorf("delek anchors: %w", err)
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
	return util.DedupeByURL(jobs), nil
}
