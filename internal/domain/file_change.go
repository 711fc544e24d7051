package domain

// ChangeType classifies how a file differs between two branch tips
type ChangeType string

const (
	ChangeAdded    ChangeType = "added"
	ChangeDeleted  ChangeType = "deleted"
	ChangeModified ChangeType = "modified"
	ChangeRenamed  ChangeType = "renamed"
	ChangeUnknown  ChangeType = "unknown"
)

// Symbol returns the one-letter marker used in listings (A, D, M, R, ?)
func (c ChangeType) Symbol() string {
	switch c {
	case ChangeAdded:
		return "A"
	case ChangeDeleted:
		return "D"
	case ChangeModified:
		return "M"
	case ChangeRenamed:
		return "R"
	default:
		return "?"
	}
}

// FileChange describes one file in a branch diff.
// Path is the new path, or the old path for deletions. OldPath is set only for renames.
type FileChange struct {
	Additions  int        `json:"additions" yaml:"additions"`
	ChangeType ChangeType `json:"change_type" yaml:"change_type"`
	Deletions  int        `json:"deletions" yaml:"deletions"`
	IsBinary   bool       `json:"is_binary,omitempty" yaml:"is_binary,omitempty"`
	OldPath    string     `json:"old_path,omitempty" yaml:"old_path,omitempty"`
	Patch      string     `json:"patch" yaml:"patch"`
	Path       string     `json:"path" yaml:"path"`
}

// DisplayPath returns "old -> new" for renames and Path otherwise
func (f FileChange) DisplayPath() string {
	if f.ChangeType == ChangeRenamed && f.OldPath != "" {
		return f.OldPath + " -> " + f.Path
	}
	return f.Path
}

// DiffSummary aggregates a change set
type DiffSummary struct {
	Additions int `json:"additions" yaml:"additions"`
	Deletions int `json:"deletions" yaml:"deletions"`
	Files     int `json:"files" yaml:"files"`
}

// Summarize totals the line counts of a change set
func Summarize(changes []FileChange) DiffSummary {
	summary := DiffSummary{Files: len(changes)}
	for _, c := range changes {
		summary.Additions += c.Additions
		summary.Deletions += c.Deletions
	}
	return summary
}
