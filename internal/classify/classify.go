// Package classify assigns a business division to a posting from keyword
// evidence in its title and URL. Postings are never dropped here: no signal
// means Uncategorized, not an error.
package classify

import (
	"strings"

	"careerwatch/internal/domain"
	"careerwatch/internal/scrape/util"
)

// Keyword tables are matched as plain substrings against the lower-cased
// "title url" blob. A few entries carry deliberate spacing ("it ", "ap ") to
// avoid firing inside unrelated words.
var techKeywords = []string{
	"software", "engineer", "developer", "devops", "sre", "site reliability",
	"data", "analytics", "machine learning", "ml", "ai", "cloud", "aws", "azure", "gcp",
	"security", "cyber", "infosec", "network", "systems", "infrastructure",
	"it ", " it-", "help desk", "helpdesk", "service desk", "servicedesk",
	"qa", "test ", "testing", "automation", "product manager", "product management",
	"solutions engineer", "integration", "implementation", "salesforce", "sap", "oracle",
	"sql", "python", "java", "javascript", "react", "node", "kubernetes", "docker",
	"architect", "platform", "mobile", "ios", "android",
}

var financeKeywords = []string{
	"accounting", "accountant", "finance", "financial", "fp&a", "fpa",
	"controller", "controllership", "cpa", "audit", "auditor",
	"tax", "treasury", "payroll", "ap ", "a/p", "accounts payable",
	"ar ", "a/r", "accounts receivable", "billing", "credit", "collections",
	"bookkeeper", "bookkeeping", "cost accountant", "revenue", "budget", "forecast",
	"procurement", "purchasing", "p2p", "r2r",
}

var generalKeywords = []string{
	"operations", "operator", "warehouse", "manufacturing", "plant",
	"production", "logistics", "driver", "terminal", "maintenance", "technician",
	"field", "safety", "health & safety", "hse", "hr ", "human resources",
	"recruiter", "recruiting", "coordinator", "assistant", "admin",
	"customer service", "csr", "sales", "account manager", "marketing",
	"manager", "supervisor", "specialist", "analyst",
}

// Classify scores the title+URL blob against the three keyword tables and
// returns the winning division. Technology and Finance need a strict win over
// both rivals; any general-staffing hit that isn't beaten takes General
// Staffing; everything else lands in Uncategorized. Total function.
func Classify(title, url string) domain.Division {
	blob := strings.ToLower(util.CleanText(title) + " " + url)

	tech := score(blob, techKeywords)
	fin := score(blob, financeKeywords)
	gen := score(blob, generalKeywords)

	switch {
	case tech > fin && tech > gen:
		return domain.DivisionTechnology
	case fin > tech && fin > gen:
		return domain.DivisionFinance
	case gen > 0:
		return domain.DivisionGeneralStaffing
	}
	return domain.DivisionUncategorized
}

func score(blob string, keywords []string) int {
	n := 0
	for _, k := range keywords {
		if strings.Contains(blob, k) {
			n++
		}
	}
	return n
}
