package util

import "careerwatch/internal/domain"

// DedupeByURL keeps the first record per distinct URL, preserving input order.
// Records with an empty URL are dropped outright.
func DedupeByURL(jobs []domain.Job) []domain.Job {
	seen := map[string]bool{}
	out := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.URL == "" || seen[j.URL] {
			continue
		}
		seen[j.URL] = true
		out = append(out, j)
	}
	return out
}
