package enums

import "fmt"

// AnalyticsEventType names an event in the local analytics log. Clients may log
// arbitrary types; the constants below are the ones the service emits itself.
type AnalyticsEventType string

const (
	AnalyticsEventPageView        AnalyticsEventType = "page_view"
	AnalyticsEventCTAClick        AnalyticsEventType = "cta_click"
	AnalyticsEventInteraction     AnalyticsEventType = "interaction"
	AnalyticsEventDebugReset      AnalyticsEventType = "debug_reset_data"
	AnalyticsEventDebugSeed       AnalyticsEventType = "debug_seed_data"
	AnalyticsEventEditorPlay      AnalyticsEventType = "editor_play"
	AnalyticsEventEditorPause     AnalyticsEventType = "editor_pause"
	AnalyticsEventEditorSplit     AnalyticsEventType = "editor_split"
	AnalyticsEventExportStart     AnalyticsEventType = "editor_export_start"
	AnalyticsEventExportComplete  AnalyticsEventType = "editor_export_complete"
	AnalyticsEventUploadStart     AnalyticsEventType = "hero_upload_start"
	AnalyticsEventUploadSuccess   AnalyticsEventType = "hero_upload_success"
	AnalyticsEventUploadError     AnalyticsEventType = "hero_upload_error"
	AnalyticsEventOnboardingDone  AnalyticsEventType = "onboarding_completed"
	AnalyticsEventDashboardCreate AnalyticsEventType = "dashboard_new_project"
)

var knownAnalyticsEventTypes = []AnalyticsEventType{
	AnalyticsEventPageView,
	AnalyticsEventCTAClick,
	AnalyticsEventInteraction,
	AnalyticsEventDebugReset,
	AnalyticsEventDebugSeed,
	AnalyticsEventEditorPlay,
	AnalyticsEventEditorPause,
	AnalyticsEventEditorSplit,
	AnalyticsEventExportStart,
	AnalyticsEventExportComplete,
	AnalyticsEventUploadStart,
	AnalyticsEventUploadSuccess,
	AnalyticsEventUploadError,
	AnalyticsEventOnboardingDone,
	AnalyticsEventDashboardCreate,
}

// String implements fmt.Stringer.
func (a AnalyticsEventType) String() string {
	return string(a)
}

// IsKnown reports whether the service itself emits this type.
func (a AnalyticsEventType) IsKnown() bool {
	for _, candidate := range knownAnalyticsEventTypes {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAnalyticsEventType accepts any non-empty type name up to 64 bytes.
func ParseAnalyticsEventType(value string) (AnalyticsEventType, error) {
	if value == "" || len(value) > 64 {
		return "", fmt.Errorf("invalid analytics event type %q", value)
	}
	return AnalyticsEventType(value), nil
}
