package dataaccess

// Storage keys. The _v1 suffix versions the document layout.
const (
	KeyProfile   = "oc_profile_v1"
	KeyProjects  = "oc_projects_v1"
	KeyClips     = "oc_clips_v1"
	KeyCaptions  = "oc_captions_v1"
	KeyTimeline  = "oc_timeline_v1"
	KeyLastSaved = "oc_last_saved_v1"
)

// PersistentKeys lists every key the data layer owns, in write order.
var PersistentKeys = []string{KeyProfile, KeyProjects, KeyClips, KeyCaptions, KeyTimeline, KeyLastSaved}
