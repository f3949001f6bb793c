package dayforce

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"careerwatch/internal/domain"
	"careerwatch/internal/render"
	"careerwatch/internal/scrape/util"
)

// Dayforce tenants expose posting links in a few different URL shapes
// depending on portal version, so we scan every anchor and keep the ones that
// look like an actual posting on the platform host.
var (
	hostRe     = regexp.MustCompile(`(?i)dayforcehcm\.com`)
	postingRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)/candidateportal/jobs/\d+`),
		regexp.MustCompile(`(?i)/jobs/\d+`),
		regexp.MustCompile(`(?i)/(posting|jobposting)/`),
	}
)

type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (a *Adapter) Name() string { return "dayforce" }

func (a *Adapter) Match(startURL, _ string) bool {
	return strings.Contains(startURL, "dayforcehcm.com")
}

func (a *Adapter) Extract(_ context.Context, pg render.Page) ([]domain.Job, error) {
	anchors, err := pg.Anchors(`a[href]`)
	if err != nil {
		return nil, fmt.Errorf("dayforce anchors: %w", err)
	}

	var jobs []domain.Job
	for _, an := range anchors {
		if !hostRe.MatchString(an.Href) || !looksLikePosting(an.Href) {
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

func looksLikePosting(href string) bool {
	for _, re := range postingRes {
		if re.MatchString(href) {
			return true
		}
	}
	return false
}
