package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims client entries and reports anything that would
// make the run misbehave. Returns a normalized copy.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	var clients []Client
	seenNames := map[string]bool{}
	for i, c := range out.Clients {
		c.Name = strings.TrimSpace(c.Name)
		c.URL = strings.TrimSpace(c.URL)

		if c.Name == "" && c.URL == "" {
			continue // blank yaml entry
		}
		if c.Name == "" {
			res.addErr("clients[%d]: name is required", i)
			continue
		}
		if c.URL == "" {
			res.addErr("client %q: url is required", c.Name)
			continue
		}
		low := strings.ToLower(c.URL)
		if !strings.HasPrefix(low, "http://") && !strings.HasPrefix(low, "https://") {
			res.addErr("client %q: url must be http(s), got %q", c.Name, c.URL)
			continue
		}

		key := strings.ToLower(c.Name)
		if seenNames[key] {
			// seen-state is keyed by name; duplicates would share a set
			res.addWarn("duplicate client name %q; seen-state will be merged", c.Name)
		}
		seenNames[key] = true
		clients = append(clients, c)
	}
	out.Clients = clients

	if len(out.Clients) == 0 {
		res.addErr("no clients configured")
	}

	if out.Scrape.SettleSeconds >= out.Scrape.NavTimeoutSeconds {
		res.addWarn("scrape.settle_seconds (%d) >= nav_timeout_seconds (%d); navigation will dominate the run",
			out.Scrape.SettleSeconds, out.Scrape.NavTimeoutSeconds)
	}

	if out.Mail.Enabled {
		if strings.TrimSpace(out.Mail.SMTPHost) == "" {
			res.addErr("mail.smtp_host is required when mail.enabled=true")
		}
		if strings.TrimSpace(out.Mail.Username) == "" {
			res.addErr("mail.username is required when mail.enabled=true")
		}
		if strings.TrimSpace(out.Mail.From) == "" {
			res.addErr("mail.from is required when mail.enabled=true")
		}
		if len(out.Mail.To) == 0 {
			res.addErr("mail.to needs at least one recipient when mail.enabled=true")
		}
	} else {
		res.addWarn("mail.enabled is false; new postings will only be logged")
	}

	return out, res
}
