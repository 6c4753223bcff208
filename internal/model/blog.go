package model

import (
	"time"
)

type BlogPost struct {
	Slug        string
	Title       string
	Description string
	Date        string
	ReadTime    string
	Tags        []string
	Content     string
	PublishedAt time.Time
}
