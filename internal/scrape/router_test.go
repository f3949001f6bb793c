package scrape_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerwatch/internal/render"
	"careerwatch/internal/scrape"
)

// fakePage scripts navigation and anchor queries so adapters can be exercised
// without a browser. Anchor sets are keyed by "currentURL selector".
type fakePage struct {
	urlNow   string
	redirect map[string]string
	navErr   map[string]error
	anchors  map[string][]render.Anchor
	clicked  []string
	clickErr error
	navs     []string
}

func (f *fakePage) Navigate(_ context.Context, target string) (string, error) {
	f.navs = append(f.navs, target)
	if err := f.navErr[target]; err != nil {
		return "", err
	}
	final := target
	if r, ok := f.redirect[target]; ok {
		final = r
	}
	f.urlNow = final
	return final, nil
}

func (f *fakePage) URL() string { return f.urlNow }

func (f *fakePage) Anchors(selector string) ([]render.Anchor, error) {
	return f.anchors[f.urlNow+" "+selector], nil
}

func (f *fakePage) ClickButton(_ context.Context, name string) error {
	f.clicked = append(f.clicked, name)
	return f.clickErr
}

func TestRouterGreenhouse(t *testing.T) {
	start := "https://boards.greenhouse.io/acme"
	pg := &fakePage{
		anchors: map[string][]render.Anchor{
			start + ` a[href*="/jobs/"]`: {
				{Text: "Senior Software Engineer", Href: "https://boards.greenhouse.io/acme/jobs/101"},
				{Text: "View All Jobs", Href: "https://boards.greenhouse.io/acme/jobs/102"},
				{Text: "How to apply", Href: "https://boards.greenhouse.io/acme/jobs/apply"},
				{Text: "Senior Software Engineer", Href: "https://boards.greenhouse.io/acme/jobs/101"},
			},
		},
	}

	jobs, err := scrape.NewRouter().Extract(context.Background(), pg, start)
	require.NoError(t, err)

	require.Len(t, jobs, 1)
	assert.Equal(t, "Senior Software Engineer", jobs[0].Title)
	assert.Equal(t, "https://boards.greenhouse.io/acme/jobs/101", jobs[0].URL)
}

func TestRouterRedirectIntoWorkday(t *testing.T) {
	start := "https://careers.example.com/start"
	board := "https://acme.wd5.myworkdayjobs.com/en-US/External"
	pg := &fakePage{
		redirect: map[string]string{start: board},
		anchors: map[string][]render.Anchor{
			// board links no other tenants; its own URL becomes the root
			board + ` a[href*="/job/"]`: {
				{Text: "Platform Engineer", Href: board + "/job/NYC/Platform-Engineer_R123"},
				{Text: "Sign In", Href: board + "/job/NYC/Sign-In_R0"},
			},
		},
	}

	jobs, err := scrape.NewRouter().Extract(context.Background(), pg, start)
	require.NoError(t, err)

	// the final URL, not the configured one, selected the workday strategy
	require.Len(t, jobs, 1)
	assert.Equal(t, "Platform Engineer", jobs[0].Title)
	assert.Contains(t, pg.navs, board)
}

func TestRouterWorkdayHubUnionSkipsFailingTenant(t *testing.T) {
	hub := "https://www.oneoncology.com/careers"
	root1 := "https://ten1.wd1.myworkdayjobs.com/External"
	root2 := "https://ten2.wd1.myworkdayjobs.com/Careers"
	pg := &fakePage{
		navErr: map[string]error{root2: errors.New("timeout")},
		anchors: map[string][]render.Anchor{
			hub + ` a[href*="myworkdayjobs.com/"]`: {
				{Text: "Practice One", Href: root1 + "/job/Nashville/Nurse_R1"},
				{Text: "Practice One again", Href: root1 + "/"},
				{Text: "Practice Two", Href: root2 + "/job/Dallas/Tech_R2"},
			},
			root1 + ` a[href*="/job/"]`: {
				{Text: "Oncology Nurse", Href: root1 + "/job/Nashville/Nurse_R1"},
				{Text: "Staff Accountant", Href: root1 + "/job/Nashville/Accountant_R2"},
				{Text: "Oncology Nurse", Href: root1 + "/job/Nashville/Nurse_R1"},
			},
		},
	}

	jobs, err := scrape.NewRouter().Extract(context.Background(), pg, hub)
	require.NoError(t, err)

	// root2 failed: logged and skipped, root1's jobs still come through deduped
	require.Len(t, jobs, 2)
	assert.Equal(t, "Oncology Nurse", jobs[0].Title)
	assert.Equal(t, "Staff Accountant", jobs[1].Title)
	assert.Contains(t, pg.navs, root1)
	assert.Contains(t, pg.navs, root2)
}

func TestRouterDayforce(t *testing.T) {
	start := "https://us123.dayforcehcm.com/CandidatePortal/en-US/acme"
	pg := &fakePage{
		anchors: map[string][]render.Anchor{
			start + ` a[href]`: {
				{Text: "Terminal Operator", Href: "https://us123.dayforcehcm.com/CandidatePortal/en-US/acme/jobs/4521"},
				{Text: "Maintenance Technician", Href: "https://us123.dayforcehcm.com/CandidatePortal/en-US/acme/Posting/View/99"},
				{Text: "Off-platform", Href: "https://example.com/jobs/1"},
				{Text: "Home", Href: "https://us123.dayforcehcm.com/CandidatePortal/jobs/1"},
			},
		},
	}

	jobs, err := scrape.NewRouter().Extract(context.Background(), pg, start)
	require.NoError(t, err)

	require.Len(t, jobs, 2)
	assert.Equal(t, "Terminal Operator", jobs[0].Title)
	assert.Equal(t, "Maintenance Technician", jobs[1].Title)
}

func TestRouterICIMSClickIsBestEffort(t *testing.T) {
	start := "https://careers-acme.icims.com/jobs/search"
	pg := &fakePage{
		clickErr: errors.New("no button matching \"search\""),
		anchors: map[string][]render.Anchor{
			start + ` a[href*="/jobs/"]`: {
				{Text: "Financial Analyst", Href: "https://careers-acme.icims.com/jobs/2210/financial-analyst/job"},
				{Text: "Search Results", Href: "https://careers-acme.icims.com/jobs/search?ss=1"},
			},
		},
	}

	jobs, err := scrape.NewRouter().Extract(context.Background(), pg, start)
	require.NoError(t, err)

	assert.Equal(t, []string{"search"}, pg.clicked)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Financial Analyst", jobs[0].Title)
}

func TestRouterDelek(t *testing.T) {
	start := "https://jobs.delekus.com/search"
	pg := &fakePage{
		anchors: map[string][]render.Anchor{
			start + ` a[href*="/job/"]`: {
				{Text: "Refinery Operator", Href: "https://jobs.delekus.com/job/tyler/refinery-operator/123"},
				{Text: "FAQ", Href: "https://jobs.delekus.com/job/faq"},
			},
		},
	}

	jobs, err := scrape.NewRouter().Extract(context.Background(), pg, start)
	require.NoError(t, err)

	require.Len(t, jobs, 1)
	assert.Equal(t, "Refinery Operator", jobs[0].Title)
}

func TestRouterFallback(t *testing.T) {
	start := "https://careers.smallco.com/openings"
	pg := &fakePage{
		anchors: map[string][]render.Anchor{
			start + ` a[href]`: {
				{Text: "Delivery Driver", Href: "https://careers.smallco.com/viewjob?id=9"},
				{Text: "Our Story", Href: "https://careers.smallco.com/story"},
				{Text: "Home", Href: "https://careers.smallco.com/jobs"},
			},
		},
	}

	jobs, err := scrape.NewRouter().Extract(context.Background(), pg, start)
	require.NoError(t, err)

	// keyword URL filter plus junk-title filter, nothing else
	require.Len(t, jobs, 1)
	assert.Equal(t, "Delivery Driver", jobs[0].Title)
}

func TestRouterNavigationErrorPropagates(t *testing.T) {
	start := "https://boards.greenhouse.io/down"
	pg := &fakePage{
		navErr: map[string]error{start: errors.New("net::ERR_TIMED_OUT")},
	}

	jobs, err := scrape.NewRouter().Extract(context.Background(), pg, start)
	require.Error(t, err)
	assert.Nil(t, jobs)
}
