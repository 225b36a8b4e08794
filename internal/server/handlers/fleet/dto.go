package fleet

// BranchRequest represents the request payload for creating or switching a branch.
type BranchRequest struct {
	Branch string `json:"branch" validate:"required,min=1,max=255"`
}

// TagRequest represents the request payload for creating a tag.
type TagRequest struct {
	Tag     string `json:"tag"               validate:"required,min=1,max=255"`
	Message string `json:"message,omitempty" validate:"max=1000"`
}

// TagBranchRequest represents the request payload for creating a branch from a tag.
type TagBranchRequest struct {
	Branch string `json:"branch" validate:"required,min=1,max=255"`
}

// MergeRequest represents the request payload for merging branches.
type MergeRequest struct {
	Target  string `json:"target"            validate:"required,min=1,max=255"`
	Source  string `json:"source"            validate:"required,min=1,max=255,nefield=Target"`
	Message string `json:"message,omitempty" validate:"max=1000"`
}

// PushRequest represents the request payload for pushing pending changes.
type PushRequest struct {
	Message string `json:"message,omitempty" validate:"max=1000"`
}
