package models

import "time"

type ProjectThumbnail struct {
	Square   string `json:"square" validate:"required"`
	Vertical string `json:"vertical" validate:"required"`
}

// Project is a source video. Duration is in seconds.
type Project struct {
	ID          string           `json:"id"`
	Slug        string           `json:"slug"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Thumbnail   ProjectThumbnail `json:"thumbnail"`
	VideoSrc    string           `json:"videoSrc,omitempty"`
	Poster      string           `json:"poster,omitempty"`
	Duration    float64          `json:"duration"`
	Points      int              `json:"points"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}
