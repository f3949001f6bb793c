package domain

// Division is the coarse business category a posting gets filed under.
type Division string

const (
	DivisionTechnology      Division = "Technology"
	DivisionFinance         Division = "Finance"
	DivisionGeneralStaffing Division = "General Staffing"
	DivisionUncategorized   Division = "Uncategorized"
)

// DivisionOrder is the fixed display order for digests and previews.
var DivisionOrder = []Division{
	DivisionTechnology,
	DivisionFinance,
	DivisionGeneralStaffing,
	DivisionUncategorized,
}

// Job is one candidate posting pulled off a career page. URL is the identity
// key; Title is display-only and may be empty.
type Job struct {
	Title string
	URL   string
}

// ClassifiedJob is a Job with its division attached. Immutable once built.
type ClassifiedJob struct {
	Job
	Division Division
}

// Alert collects the newly observed jobs for one client in one run.
type Alert struct {
	ClientName string
	ClientURL  string
	Jobs       []ClassifiedJob
}
