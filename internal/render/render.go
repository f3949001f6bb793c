// Package render wraps the headless browser behind the minimal surface the
// extraction adapters need: navigate somewhere, read the anchors currently in
// the DOM, and best-effort click a named button.
package render

import (
	"context"
	"time"
)

// Anchor is one <a> element as the adapters see it: visible text plus the
// href resolved against the page URL.
type Anchor struct {
	Text string
	Href string
}

// Page is one rendered browser tab. The run shares a single Page across all
// clients, so implementations are not safe for concurrent use.
type Page interface {
	// Navigate loads url, waits for the content-parsed milestone plus a
	// settling delay, and returns the URL the browser ended up on.
	Navigate(ctx context.Context, url string) (string, error)

	// URL returns the current page URL.
	URL() string

	// Anchors returns the anchors matching a CSS selector, hrefs resolved
	// to absolute URLs.
	Anchors(selector string) ([]Anchor, error)

	// ClickButton clicks the first button whose accessible name matches,
	// with a short timeout of its own. Callers treat failure as advisory.
	ClickButton(ctx context.Context, name string) error
}

// Options tunes navigation behavior for every Page the browser hands out.
type Options struct {
	NavTimeout    time.Duration // per page.goto
	SettleDelay   time.Duration // post-load wait for client-side rendering
	ActionTimeout time.Duration // clicks and other optional interactions
}
