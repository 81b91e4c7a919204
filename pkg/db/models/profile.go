package models

import (
	"time"

	"github.com/angelmondragon/opusclip-demo/pkg/enums"
)

// UserProfile is the single installation-wide user. Created by seed, never deleted.
type UserProfile struct {
	ID                   string            `json:"id"`
	Name                 string            `json:"name"`
	Email                string            `json:"email"`
	Avatar               string            `json:"avatar,omitempty"`
	Role                 enums.UserRole    `json:"role"`
	PreferredAspectRatio enums.AspectRatio `json:"preferredAspectRatio"`
	CreatedAt            time.Time         `json:"createdAt"`
	UpdatedAt            time.Time         `json:"updatedAt"`
}
