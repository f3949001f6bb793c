package types

import (
	"context"

	"careerwatch/internal/domain"
	"careerwatch/internal/render"
)

// Adapter is one platform-specific extraction strategy. Match gets the
// lower-cased configured URL and the lower-cased URL the renderer actually
// landed on, so a redirect into a known platform still routes correctly.
// Extract runs against the already-loaded page and returns cleaned,
// deduplicated candidates.
type Adapter interface {
	Name() string
	Match(startURL, finalURL string) bool
	Extract(ctx context.Context, pg render.Page) ([]domain.Job, error)
}
