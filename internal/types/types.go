package types

// RunRequest represents a single normalization run
type RunRequest struct {
	InputPath    string
	OutputPath   string
	ProblemsPath string
}

// RunResult holds the counters of a single run
type RunResult struct {
	Processed int64 // lines written to the output file
	Problems  int64 // lines copied to the problems file
}

// Total returns the number of input lines seen
func (r RunResult) Total() int64 {
	return r.Processed + r.Problems
}
