package models

import (
	"time"

	"github.com/angelmondragon/opusclip-demo/pkg/enums"
)

// ProjectPatch lists every project field an update may change. Nil fields are left alone.
type ProjectPatch struct {
	Slug        *string           `json:"slug,omitempty" validate:"omitempty,min=1,max=120"`
	Title       *string           `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string           `json:"description,omitempty" validate:"omitempty,max=2000"`
	Thumbnail   *ProjectThumbnail `json:"thumbnail,omitempty"`
	VideoSrc    *string           `json:"videoSrc,omitempty"`
	Poster      *string           `json:"poster,omitempty"`
	Duration    *float64          `json:"duration,omitempty" validate:"omitempty,gte=0"`
	Points      *int              `json:"points,omitempty" validate:"omitempty,gte=0"`
}

// Apply returns p with the patch merged over it. UpdatedAt is the caller's concern.
func (patch ProjectPatch) Apply(p Project) Project {
	if patch.Slug != nil {
		p.Slug = *patch.Slug
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Thumbnail != nil {
		p.Thumbnail = *patch.Thumbnail
	}
	if patch.VideoSrc != nil {
		p.VideoSrc = *patch.VideoSrc
	}
	if patch.Poster != nil {
		p.Poster = *patch.Poster
	}
	if patch.Duration != nil {
		p.Duration = *patch.Duration
	}
	if patch.Points != nil {
		p.Points = *patch.Points
	}
	return p
}

// IsEmpty reports whether the patch changes nothing.
func (patch ProjectPatch) IsEmpty() bool {
	return patch == ProjectPatch{}
}

type ClipPatch struct {
	Title     *string  `json:"title,omitempty" validate:"omitempty,max=200"`
	Start     *float64 `json:"start,omitempty" validate:"omitempty,gte=0"`
	End       *float64 `json:"end,omitempty" validate:"omitempty,gte=0"`
	Thumbnail *string  `json:"thumbnail,omitempty"`
}

func (patch ClipPatch) Apply(c Clip) Clip {
	if patch.Title != nil {
		c.Title = *patch.Title
	}
	if patch.Start != nil {
		c.Start = *patch.Start
	}
	if patch.End != nil {
		c.End = *patch.End
	}
	if patch.Thumbnail != nil {
		c.Thumbnail = *patch.Thumbnail
	}
	return c
}

type ProfilePatch struct {
	Name                 *string            `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Email                *string            `json:"email,omitempty" validate:"omitempty,email"`
	Avatar               *string            `json:"avatar,omitempty"`
	Role                 *enums.UserRole    `json:"role,omitempty" validate:"omitempty,oneof=creator marketer educator other"`
	PreferredAspectRatio *enums.AspectRatio `json:"preferredAspectRatio,omitempty" validate:"omitempty,oneof=9:16 1:1 16:9"`
}

func (patch ProfilePatch) Apply(p UserProfile) UserProfile {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	if patch.Avatar != nil {
		p.Avatar = *patch.Avatar
	}
	if patch.Role != nil {
		p.Role = *patch.Role
	}
	if patch.PreferredAspectRatio != nil {
		p.PreferredAspectRatio = *patch.PreferredAspectRatio
	}
	return p
}

// CreateProjectInput carries the optional fields of a new project. Empty values
// take the documented defaults.
type CreateProjectInput struct {
	ID          string            `json:"id,omitempty" validate:"omitempty,max=120"`
	Slug        string            `json:"slug,omitempty" validate:"omitempty,max=120"`
	Title       string            `json:"title,omitempty" validate:"omitempty,max=200"`
	Description string            `json:"description,omitempty" validate:"omitempty,max=2000"`
	Thumbnail   *ProjectThumbnail `json:"thumbnail,omitempty"`
	VideoSrc    string            `json:"videoSrc,omitempty"`
	Poster      string            `json:"poster,omitempty"`
	Duration    float64           `json:"duration,omitempty" validate:"omitempty,gte=0"`
	Points      int               `json:"points,omitempty" validate:"omitempty,gte=0"`
	CreatedAt   *time.Time        `json:"createdAt,omitempty"`
}
