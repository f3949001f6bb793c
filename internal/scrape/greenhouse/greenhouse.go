package greenhouse

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"careerwatch/internal/domain"
	"careerwatch/internal/render"
	"careerwatch/internal/scrape/util"
)

// Greenhouse boards link postings as /<slug>/jobs/<numeric id>; anything under
// /jobs/ without the id is board chrome (filters, "view all" links).
var jobPathRe = regexp.MustCompile(`/jobs/\d+`)

type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (a *Adapter) Name() string { return "greenhouse" }

func (a *Adapter) Match(startURL, _ string) bool {
	return strings.Contains(startURL, "greenhouse.io")
}

func (a *Adapter) Extract(_ context.Context, pg render.Page) ([]domain.Job, error) {
	anchors, err := pg.Anchors(`a[href*="/jobs/"]`)
	if err != nil {
		return nil, fmt.Errorf("greenhouse anchors: %w", err)
	}

	var jobs []domain.Job
	for _, an := range anchors {
		if !jobPathRe.MatchString(an.Href) {
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
