package models

import "testing"

func TestFindingSummaryAdd(t *testing.T) {
	s := NewFindingSummary()

	s.Add(Finding{File: "src/a.js", Name: "x", Certainty: CertaintyMedium})
	s.Add(Finding{File: "src/a.js", Name: "y", Certainty: CertaintyLow})
	s.Add(Finding{File: "src/b.js", Name: "z", Certainty: CertaintyMedium})

	if s.Total != 3 {
		t.Errorf("Total = %d, want 3", s.Total)
	}
	if s.ByCertainty["MEDIUM"] != 2 || s.ByCertainty["LOW"] != 1 {
		t.Errorf("ByCertainty = %v", s.ByCertainty)
	}
	if s.ByFile["src/a.js"] != 2 || s.ByFile["src/b.js"] != 1 {
		t.Errorf("ByFile = %v", s.ByFile)
	}
}

func TestCycleAnalysisCalculateSummary(t *testing.T) {
	a := &CycleAnalysis{
		Cycles: [][]string{
			{"a.js", "b.js", "a.js"},
			{"c.js", "c.js"},
			{"d.js", "e.js", "f.js", "d.js"},
		},
	}
	a.CalculateSummary()

	if a.Summary.Total != 3 {
		t.Errorf("Total = %d, want 3", a.Summary.Total)
	}
	// The closing node repeats; size counts distinct hops.
	if a.Summary.LargestCycle != 3 {
		t.Errorf("LargestCycle = %d, want 3", a.Summary.LargestCycle)
	}
	if a.Summary.FilesInvolved != 6 {
		t.Errorf("FilesInvolved = %d, want 6", a.Summary.FilesInvolved)
	}
}

func TestCycleAnalysisEmptySummary(t *testing.T) {
	a := &CycleAnalysis{}
	a.CalculateSummary()

	if a.Summary.Total != 0 || a.Summary.LargestCycle != 0 || a.Summary.FilesInvolved != 0 {
		t.Errorf("empty analysis summary = %+v, want zeros", a.Summary)
	}
}

func TestRepoMapHelpers(t *testing.T) {
	m := &RepoMap{Files: map[string]FileRecord{
		"src/b.js": {},
		"src/a.js": {},
	}}

	keys := m.FileKeys()
	if len(keys) != 2 || keys[0] != "src/a.js" || keys[1] != "src/b.js" {
		t.Errorf("FileKeys() = %v, want sorted", keys)
	}
	if !m.Has("src/a.js") || m.Has("src/c.js") {
		t.Error("Has() mismatch")
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
}

func TestRepoMapNilSafe(t *testing.T) {
	var m *RepoMap

	if m.FileKeys() != nil {
		t.Error("nil map FileKeys() should be nil")
	}
	if m.Has("x") {
		t.Error("nil map Has() should be false")
	}
	if m.Len() != 0 {
		t.Error("nil map Len() should be 0")
	}
}
