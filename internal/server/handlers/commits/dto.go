package commits

import "time"

// GetRequest selects a commit log page.
type GetRequest struct {
	Page     int    `query:"page"     validate:"gte=0"`
	Size     int    `query:"size"     validate:"gte=0,lte=500"`
	Username string `query:"username" validate:"max=255"`
	Project  string `query:"project"  validate:"max=255"`
}

type EntryResponse struct {
	Project    string    `json:"project"`
	Username   string    `json:"username"`
	CommitID   string    `json:"commit_id"`
	Message    string    `json:"message"`
	CommitTime time.Time `json:"commit_time"`
}

// PageResponse represents one page of the fleet commit log.
type PageResponse struct {
	Index      int             `json:"index"`
	Size       int             `json:"size"`
	TotalData  int             `json:"total_data"`
	TotalPages int             `json:"total_pages"`
	Data       []EntryResponse `json:"data"`
	Users      []string        `json:"users"` // Distinct authors on this page
}
