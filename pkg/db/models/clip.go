package models

import "github.com/angelmondragon/opusclip-demo/pkg/enums"

// Clip is a [Start, End) range of its project's video, in seconds.
type Clip struct {
	ID        string  `json:"id"`
	ProjectID string  `json:"projectId"`
	Title     string  `json:"title"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
	Thumbnail string  `json:"thumbnail,omitempty"`
}

type CaptionBlock struct {
	ID     string  `json:"id"`
	ClipID string  `json:"clipId"`
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
	Text   string  `json:"text"`
}

// TimelineSegment mirrors a clip's boundaries when Type is clip.
type TimelineSegment struct {
	ID        string            `json:"id"`
	ProjectID string            `json:"projectId"`
	Start     float64           `json:"start"`
	End       float64           `json:"end"`
	Type      enums.SegmentType `json:"type"`
	ClipID    string            `json:"clipId,omitempty"`
}
