package models

import (
	"fmt"
	"time"
)

const linkIDPrefix = "link-"

// Link is a single entry of the feed
type Link struct {
	Seq         uint      `json:"-" gorm:"primaryKey;autoIncrement"`
	ID          string    `json:"id" gorm:"size:64;uniqueIndex;not null"`
	URL         string    `json:"url" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for the Link model
func (Link) TableName() string {
	return "links"
}

// LinkID formats the identifier of the n-th link
func LinkID(n int) string {
	return fmt.Sprintf("%s%d", linkIDPrefix, n)
}

// SeedLink returns the record every feed starts with
func SeedLink() Link {
	return Link{
		ID:          LinkID(0),
		URL:         "www.howtographql.com",
		Description: "Fullstack tutorial for GraphQL",
	}
}
