// Package run drives one monitoring pass: every configured client in order,
// on one shared browser page, with per-client fault isolation.
package run

import (
	"context"
	"fmt"
	"log"

	"careerwatch/internal/classify"
	"careerwatch/internal/config"
	"careerwatch/internal/domain"
	"careerwatch/internal/render"
)

// Extractor is what the runner needs from the adapter router.
type Extractor interface {
	Extract(ctx context.Context, pg render.Page, startURL string) ([]domain.Job, error)
}

// SeenStore is the slice of the store the run loop touches. Left nil in
// dry-run mode, where the loop never reaches it.
type SeenStore interface {
	Seen(client string) map[string]bool
	MarkSeen(client string, urls []string)
}

type Options struct {
	DryRun       bool
	PreviewLimit int // jobs shown per client in dry-run output
}

type Runner struct {
	Router Extractor
	Store  SeenStore
	Opts   Options
}

// RunOnce walks the clients strictly in order. A failing client is logged,
// contributes zero jobs, and never aborts the rest of the run. Returned
// alerts hold only jobs not previously seen; their URLs are already marked
// seen in the store (in memory) by the time this returns.
func (r *Runner) RunOnce(ctx context.Context, pg render.Page, clients []config.Client) []domain.Alert {
	var alerts []domain.Alert

	for _, c := range clients {
		log.Printf("[run] checking client=%q url=%s", c.Name, c.URL)

		jobs, err := r.Router.Extract(ctx, pg, c.URL)
		if err != nil {
			log.Printf("[run] client=%q err=%v", c.Name, err)
			if r.Opts.DryRun {
				r.printPreview(c, nil)
			}
			continue
		}

		classified := make([]domain.ClassifiedJob, 0, len(jobs))
		for _, j := range jobs {
			classified = append(classified, domain.ClassifiedJob{
				Job:      j,
				Division: classify.Classify(j.Title, j.URL),
			})
		}

		if r.Opts.DryRun {
			r.printPreview(c, classified)
			continue
		}

		seen := r.Store.Seen(c.Name)
		var fresh []domain.ClassifiedJob
		for _, j := range classified {
			if !seen[j.URL] {
				fresh = append(fresh, j)
			}
		}
		log.Printf("[run] client=%q extracted=%d new=%d", c.Name, len(classified), len(fresh))
		if len(fresh) == 0 {
			continue
		}

		urls := make([]string, 0, len(fresh))
		for _, j := range fresh {
			urls = append(urls, j.URL)
		}
		r.Store.MarkSeen(c.Name, urls)

		alerts = append(alerts, domain.Alert{
			ClientName: c.Name,
			ClientURL:  c.URL,
			Jobs:       fresh,
		})
	}

	return alerts
}

func (r *Runner) printPreview(c config.Client, jobs []domain.ClassifiedJob) {
	limit := r.Opts.PreviewLimit
	if limit <= 0 {
		limit = 10
	}

	fmt.Println("\n========== DRY RUN ==========")
	fmt.Printf("Client: %s\n", c.Name)
	fmt.Printf("Careers: %s\n", c.URL)
	fmt.Printf("Detected jobs: %d\n", len(jobs))

	for i, j := range jobs {
		if i >= limit {
			break
		}
		title := j.Title
		if title == "" {
			title = "(no title)"
		}
		div := j.Division
		if div == "" {
			div = domain.DivisionUncategorized
		}
		fmt.Printf("%d. [%s] %s | %s\n", i+1, div, title, j.URL)
	}
	if len(jobs) > limit {
		fmt.Printf("... and %d more\n", len(jobs)-limit)
	}
	fmt.Println("========== END DRY RUN ==========")
	fmt.Println()
}
