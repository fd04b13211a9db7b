package models

import "time"

// Comment represents a GitHub issue comment on the pull request thread.
type Comment struct {
	ID        int64
	Body      string
	User      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
