package enums

import "fmt"

// SocialPlatform names a connected publishing destination.
type SocialPlatform string

const (
	SocialPlatformYouTube   SocialPlatform = "youtube"
	SocialPlatformTikTok    SocialPlatform = "tiktok"
	SocialPlatformInstagram SocialPlatform = "instagram"
	SocialPlatformTwitter   SocialPlatform = "twitter"
	SocialPlatformLinkedIn  SocialPlatform = "linkedin"
)

var validSocialPlatforms = []SocialPlatform{
	SocialPlatformYouTube,
	SocialPlatformTikTok,
	SocialPlatformInstagram,
	SocialPlatformTwitter,
	SocialPlatformLinkedIn,
}

// String implements fmt.Stringer.
func (v SocialPlatform) String() string {
	return string(v)
}

// IsValid reports whether the value is a known SocialPlatform.
func (v SocialPlatform) IsValid() bool {
	for _, candidate := range validSocialPlatforms {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseSocialPlatform converts raw input into a SocialPlatform.
func ParseSocialPlatform(value string) (SocialPlatform, error) {
	for _, candidate := range validSocialPlatforms {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid social platform %q", value)
}
