package model

// Report is the persisted lint result of one source file.
type Report struct {
	Path        Path        `yaml:"path"`
	Hash        string      `yaml:"hash"`
	Fingerprint string      `yaml:"fingerprint"` // rule settings the report was produced with
	Literals    int         `yaml:"literals"`
	Candidates  int         `yaml:"candidates"`
	Ignored     int         `yaml:"ignored"`
	Violations  []Violation `yaml:"violations"`
}

// NewReport captures a FileResult produced under the given rule fingerprint.
func NewReport(result FileResult, fingerprint string) Report {
	report := Report{
		Fingerprint: fingerprint,
		Literals:    result.Literals,
		Candidates:  result.Candidates,
		Ignored:     result.Ignored,
		Violations:  result.Violations,
	}

	if result.Source.Origin != nil {
		report.Path = result.Source.Origin.FullPath
		report.Hash = result.Source.Origin.Hash
	}

	return report
}

// FileResult restores the lint outcome stored in the report.
func (r Report) FileResult() FileResult {
	return FileResult{
		Source: Source{Origin: &File{
			FullPath:  r.Path,
			ShortPath: r.Path,
			Hash:      r.Hash,
		}},
		Literals:   r.Literals,
		Candidates: r.Candidates,
		Ignored:    r.Ignored,
		Violations: r.Violations,
		Cached:     true,
	}
}
