package icims

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

var jobPathRe = regexp.MustCompile(`/jobs/\d+`)

type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (a *Adapter) Name() string { return "icims" }

func (a *Adapter) Match(startURL, _ string) bool {
	return strings.Contains(startURL, "icims.com")
}

func (a *Adapter) Extract(ctx context.Context, pg render.Page) ([]domain.Job, error) {
	// Some iCIMS portals render an empty result list until a search is
	// submitted. Clicking is best effort; portals without the button still
	// list jobs directly.
	if err := pg.ClickButton(ctx, "search"); err != nil {
		log.Printf("[icims] search click skipped: %v", err)
	}

	anchors, err := pg.Anchors(`a[href*="/jobs/"]`)
	if err != nil {
		return nil, fmt.Errorf("icims anchors: %w", err)
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
