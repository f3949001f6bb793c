package render

import (
	"context"
	"fmt"
	"log"
	"regexp"

	"github.com/playwright-community/playwright-go"
)

// Browser owns the Playwright runtime and one headless Chromium instance.
type Browser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	opts    Options
}

// NewBrowser installs browser binaries if needed and launches headless
// Chromium. Close must be called to stop the driver process.
func NewBrowser(opts Options) (*Browser, error) {
	if err := playwright.Install(&playwright.RunOptions{Verbose: false}); err != nil {
		return nil, fmt.Errorf("install playwright: %w", err)
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
		Args: []string{
			"--disable-blink-features=AutomationControlled",
			"--disable-dev-shm-usage",
			"--no-sandbox",
		},
	})
	if err != nil {
		if stopErr := pw.Stop(); stopErr != nil {
			log.Printf("[render] error stopping playwright: %v", stopErr)
		}
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	return &Browser{pw: pw, browser: browser, opts: opts}, nil
}

func (b *Browser) Close() error {
	if b.browser != nil {
		if err := b.browser.Close(); err != nil {
			return err
		}
	}
	if b.pw != nil {
		if err := b.pw.Stop(); err != nil {
			return err
		}
	}
	return nil
}

// NewPage opens one tab. The run loop reuses it for every client so only one
// render context is alive at a time.
func (b *Browser) NewPage() (Page, error) {
	p, err := b.browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("new page: %w", err)
	}
	return &playwrightPage{page: p, opts: b.opts}, nil
}

type playwrightPage struct {
	page playwright.Page
	opts Options
}

func (p *playwrightPage) Navigate(ctx context.Context, target string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// DOMContentLoaded rather than networkidle: listing pages routinely keep
	// long-lived background requests open and would never settle.
	_, err := p.page.Goto(target, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(float64(p.opts.NavTimeout.Milliseconds())),
	})
	if err != nil {
		return "", fmt.Errorf("goto %s: %w", target, err)
	}

	// let client-side rendering populate the DOM before anyone reads it
	p.page.WaitForTimeout(float64(p.opts.SettleDelay.Milliseconds()))

	return p.page.URL(), nil
}

func (p *playwrightPage) URL() string {
	return p.page.URL()
}

func (p *playwrightPage) Anchors(selector string) ([]Anchor, error) {
	html, err := p.page.Content()
	if err != nil {
		return nil, fmt.Errorf("page content: %w", err)
	}
	return parseAnchors(html, p.page.URL(), selector)
}

func (p *playwrightPage) ClickButton(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	loc := p.page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{
		Name: regexp.MustCompile(`(?i)` + regexp.QuoteMeta(name)),
	})
	n, err := loc.Count()
	if err != nil {
		return fmt.Errorf("locate button %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("no button matching %q", name)
	}

	if err := loc.First().Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(float64(p.opts.ActionTimeout.Milliseconds())),
	}); err != nil {
		return fmt.Errorf("click button %q: %w", name, err)
	}

	p.page.WaitForTimeout(float64(p.opts.SettleDelay.Milliseconds()))
	return nil
}
