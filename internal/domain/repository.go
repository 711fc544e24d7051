package domain

// Repository is a git working copy found under the repositories root.
type Repository struct {
	ID   uint   `json:"id,omitempty" yaml:"id,omitempty"`
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}
