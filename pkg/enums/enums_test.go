package enums

import "testing"

func TestParseAspectRatio(t *testing.T) {
	for _, raw := range []string{"9:16", "1:1", "16:9"} {
		got, err := ParseAspectRatio(raw)
		if err != nil {
			t.Fatalf("ParseAspectRatio(%q) unexpected error: %v", raw, err)
		}
		if got.String() != raw {
			t.Fatalf("expected %q got %q", raw, got)
		}
	}
	if _, err := ParseAspectRatio("4:3"); err == nil {
		t.Fatal("expected 4:3 to be rejected")
	}
}

func TestOnboardingStatusValues(t *testing.T) {
	if !OnboardingStatusNotStarted.IsValid() || OnboardingStatusNotStarted != "not-started" {
		t.Fatalf("unexpected not-started value %q", OnboardingStatusNotStarted)
	}
	if OnboardingStatus("done").IsValid() {
		t.Fatal("unexpected valid status")
	}
}

func TestParseUserRole(t *testing.T) {
	if _, err := ParseUserRole("creator"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseUserRole("Creator"); err == nil {
		t.Fatal("expected case-sensitive parse to fail")
	}
}

func TestParseAnalyticsEventType(t *testing.T) {
	got, err := ParseAnalyticsEventType("custom_event")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.IsKnown() {
		t.Fatal("custom event should not be known")
	}
	if !AnalyticsEventPageView.IsKnown() {
		t.Fatal("page_view should be known")
	}
	if _, err := ParseAnalyticsEventType(""); err == nil {
		t.Fatal("expected empty type to be rejected")
	}
}
