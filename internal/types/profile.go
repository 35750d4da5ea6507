// Package types provides the typed records shared across the PortfolioAI
// system: validated extraction results and API request/response shapes.
package types

// WorkExperience is one position in a candidate's history.
type WorkExperience struct {
	Title   string `json:"title"`
	Company string `json:"company"`
	Years   string `json:"years"`
	Summary string `json:"summary"`
}

// ResumeProfile is the validated, structured form of a resume. Instances are
// produced by the extraction pipeline and are not mutated afterwards.
type ResumeProfile struct {
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	Summary    string           `json:"summary"`
	Skills     []string         `json:"skills"`
	Experience []WorkExperience `json:"experience"`
}

// OptimizationReport is the validated result of comparing a profile against a
// target job description.
type OptimizationReport struct {
	MatchScore  int      `json:"match_score"`
	KeywordGaps []string `json:"keyword_gaps"`
	Suggestions []string `json:"suggestions"`
}

// JobPosting is a job opening considered by the alert matching daemon.
type JobPosting struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	SourceURL   string `json:"source_url"`
	Description string `json:"description"`
}

// ScoredJob pairs a posting with its match result for a specific candidate.
type ScoredJob struct {
	Title      string `json:"title"`
	Company    string `json:"company"`
	SourceURL  string `json:"source_url"`
	MatchScore int    `json:"match_score"`
	FitReason  string `json:"fit_reason"`
}
