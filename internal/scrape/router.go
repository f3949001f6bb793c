// Package scrape routes a client's rendered career page to the extraction
// strategy matching its platform, with a generic fallback for everything
// else.
package scrape

import (
	"context"
	"fmt"
	"strings"

	"careerwatch/internal/domain"
	"careerwatch/internal/render"
	"careerwatch/internal/scrape/dayforce"
	"careerwatch/internal/scrape/delek"
	"careerwatch/internal/scrape/greenhouse"
	"careerwatch/internal/scrape/icims"
	"careerwatch/internal/scrape/types"
	"careerwatch/internal/scrape/workday"
)

// DefaultAdapters returns the platform adapters in priority order. First
// match wins; the generic fallback always matches and closes the list.
func DefaultAdapters() []types.Adapter {
	return []types.Adapter{
		greenhouse.New(),
		workday.New(),
		dayforce.New(),
		icims.New(),
		delek.New(),
		NewFallback(),
	}
}

type Router struct {
	adapters []types.Adapter
}

func NewRouter(adapters ...types.Adapter) *Router {
	if len(adapters) == 0 {
		adapters = DefaultAdapters()
	}
	return &Router{adapters: adapters}
}

// Extract navigates the shared page to startURL, picks the first adapter
// whose signature matches, and returns its candidates. Errors here are the
// caller's problem; the run loop isolates them per client.
func (r *Router) Extract(ctx context.Context, pg render.Page, startURL string) ([]domain.Job, error) {
	finalURL, err := pg.Navigate(ctx, startURL)
	if err != nil {
		return nil, fmt.Errorf("navigate %s: %w", startURL, err)
	}

	start := strings.ToLower(startURL)
	final := strings.ToLower(finalURL)

	for _, ad := range r.adapters {
		if !ad.Match(start, final) {
			continue
		}
		jobs, err := ad.Extract(ctx, pg)
		if err != nil {
			return nil, fmt.Errorf("%s extract: %w", ad.Name(), err)
		}
		return jobs, nil
	}
	return nil, nil // unreachable while the fallback is installed
}
