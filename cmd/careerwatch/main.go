package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"

	"careerwatch/internal/config"
	"careerwatch/internal/digest"
	"careerwatch/internal/notify"
	"careerwatch/internal/render"
	"careerwatch/internal/run"
	"careerwatch/internal/scrape"
	"careerwatch/internal/secrets"
	"careerwatch/internal/store"
)

func main() {
	dryRunFlag := flag.Bool("dry-run", false, "extract and classify only; no seen-state, no mail")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found")
	}

	dryRun := *dryRunFlag || strings.EqualFold(os.Getenv("DRY_RUN"), "true")

	// Data dir: use env if provided (schedulers can pass one), else local.
	dataDir := os.Getenv("CAREERWATCH_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	cfgPath, err := config.EnsureUserConfig(dataDir, filepath.Join("config", "config.yml"))
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", cfgPath, err)
	}
	cfg, res := config.NormalizeAndValidate(cfg)
	for _, w := range res.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !res.OK() {
		log.Fatalf("[config] invalid: %s", strings.Join(res.Errors, "; "))
	}

	// One run at a time; overlapping scheduler fires would race on seen-state.
	lock := flock.New(filepath.Join(dataDir, "careerwatch.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("run lock: %v", err)
	}
	if !locked {
		log.Fatal("another run is already in progress")
	}
	defer func() { _ = lock.Unlock() }()

	ctx := context.Background()

	var seenStore *store.SeenStore
	if !dryRun {
		db, err := store.Open(filepath.Join(dataDir, "careerwatch.db"))
		if err != nil {
			log.Fatalf("open seen-state db: %v", err)
		}
		defer db.Close()
		if err := store.Migrate(db.Pool); err != nil {
			log.Fatalf("migrate seen-state db: %v", err)
		}
		seenStore = store.NewSeenStore(db.Pool)
		if err := seenStore.Load(ctx); err != nil {
			log.Fatalf("load seen-state: %v", err)
		}
	}

	browser, err := render.NewBrowser(render.Options{
		NavTimeout:    time.Duration(cfg.Scrape.NavTimeoutSeconds) * time.Second,
		SettleDelay:   time.Duration(cfg.Scrape.SettleSeconds) * time.Second,
		ActionTimeout: time.Duration(cfg.Scrape.ActionTimeoutSeconds) * time.Second,
	})
	if err != nil {
		log.Fatalf("browser: %v", err)
	}
	defer func() {
		if err := browser.Close(); err != nil {
			log.Printf("[render] close: %v", err)
		}
	}()

	pg, err := browser.NewPage()
	if err != nil {
		log.Fatalf("browser page: %v", err)
	}

	runner := &run.Runner{
		Router: scrape.NewRouter(),
		Opts: run.Options{
			DryRun:       dryRun,
			PreviewLimit: cfg.Scrape.PreviewLimit,
		},
	}
	if seenStore != nil {
		runner.Store = seenStore
	}

	alerts := runner.RunOnce(ctx, pg, cfg.Clients)

	if dryRun {
		log.Println("[run] dry run complete; no mail sent, seen-state untouched")
		return
	}

	if len(alerts) > 0 {
		if cfg.Mail.Enabled {
			account := secrets.SMTPKeyringAccount(cfg.Mail.Username, cfg.Mail.SMTPHost)
			password, err := secrets.GetSMTPPassword(account)
			if err != nil {
				log.Fatalf("[mail] %v", err)
			}

			body := digest.Renderer{GroupLimit: cfg.Scrape.DigestGroupLimit}.HTML(alerts)
			mailer := notify.NewMailer(notify.Config{
				Host:     cfg.Mail.SMTPHost,
				Port:     cfg.Mail.SMTPPort,
				Username: cfg.Mail.Username,
				From:     cfg.Mail.From,
				To:       cfg.Mail.To,
			}, password)

			// Send before persisting: if the digest never goes out, these
			// jobs must stay unseen so the next run re-raises them.
			if err := mailer.Send(ctx, digest.Subject, body); err != nil {
				log.Fatalf("[mail] %v", err)
			}
			log.Printf("[mail] digest sent clients=%d", len(alerts))
		} else {
			log.Printf("[mail] disabled; %d client(s) had new jobs", len(alerts))
		}
	} else {
		log.Println("[run] no new jobs found")
	}

	if err := seenStore.Persist(ctx); err != nil {
		log.Fatalf("persist seen-state: %v", err)
	}
}
