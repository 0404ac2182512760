package models

import "time"

// Certainty grades how conservative the evidence behind a finding is.
type Certainty string

const (
	CertaintyHigh   Certainty = "HIGH"
	CertaintyMedium Certainty = "MEDIUM"
	CertaintyLow    Certainty = "LOW"
)

// Finding is a single detected issue: an unused export or a piece of
// orphaned infrastructure.
type Finding struct {
	File      string    `json:"file"`
	Name      string    `json:"name"`
	Line      int       `json:"line,omitempty"`
	Kind      string    `json:"kind,omitempty"` // export kind as reported upstream
	Type      string    `json:"type,omitempty"` // infrastructure or factory (orphans only)
	Certainty Certainty `json:"certainty"`

	// LastCommit is an optional enrichment filled by callers from git
	// history; the engine itself never populates it.
	LastCommit *time.Time `json:"last_commit,omitempty"`
}

// Orphan finding types.
const (
	OrphanInfrastructure = "infrastructure"
	OrphanFactory        = "factory"
)

// FindingSummary aggregates findings by certainty and file.
type FindingSummary struct {
	Total       int            `json:"total"`
	ByCertainty map[string]int `json:"by_certainty"`
	ByFile      map[string]int `json:"by_file"`
}

// NewFindingSummary creates an initialized summary.
func NewFindingSummary() FindingSummary {
	return FindingSummary{
		ByCertainty: make(map[string]int),
		ByFile:      make(map[string]int),
	}
}

// Add updates the summary with a finding.
func (s *FindingSummary) Add(f Finding) {
	s.Total++
	s.ByCertainty[string(f.Certainty)]++
	s.ByFile[f.File]++
}

// UnusedExportAnalysis is the unused-export detector's result.
type UnusedExportAnalysis struct {
	Findings []Finding      `json:"findings"`
	Summary  FindingSummary `json:"summary"`
}

// OrphanAnalysis is the orphaned-infrastructure detector's result.
type OrphanAnalysis struct {
	Findings []Finding      `json:"findings"`
	Summary  FindingSummary `json:"summary"`
}

// CycleAnalysis is the cycle detector's result. Each cycle is an ordered
// file sequence that starts and ends at the closing node, so a self-import
// reads [f, f] and a mutual import reads [a, b, a].
type CycleAnalysis struct {
	Cycles  [][]string   `json:"cycles"`
	Summary CycleSummary `json:"summary"`
}

// CycleSummary aggregates cycle statistics.
type CycleSummary struct {
	Total         int `json:"total"`
	LargestCycle  int `json:"largest_cycle"`
	FilesInvolved int `json:"files_involved"`
}

// CalculateSummary recomputes the summary from the cycle list.
func (a *CycleAnalysis) CalculateSummary() {
	a.Summary = CycleSummary{Total: len(a.Cycles)}
	involved := make(map[string]struct{})
	for _, cycle := range a.Cycles {
		// The closing node repeats at the tail; the cycle length is the
		// number of distinct hops.
		size := len(cycle) - 1
		if size < 1 {
			size = len(cycle)
		}
		if size > a.Summary.LargestCycle {
			a.Summary.LargestCycle = size
		}
		for _, f := range cycle {
			involved[f] = struct{}{}
		}
	}
	a.Summary.FilesInvolved = len(involved)
}
