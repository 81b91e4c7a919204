package enums

import "fmt"

// ExportResolution is the rendered height of an export.
type ExportResolution string

const (
	ExportResolution720p  ExportResolution = "720p"
	ExportResolution1080p ExportResolution = "1080p"
	ExportResolution4K    ExportResolution = "4k"
)

var validExportResolutions = []ExportResolution{
	ExportResolution720p,
	ExportResolution1080p,
	ExportResolution4K,
}

// String implements fmt.Stringer.
func (v ExportResolution) String() string {
	return string(v)
}

// IsValid reports whether the value is a known ExportResolution.
func (v ExportResolution) IsValid() bool {
	for _, candidate := range validExportResolutions {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseExportResolution converts raw input into a ExportResolution.
func ParseExportResolution(value string) (ExportResolution, error) {
	for _, candidate := range validExportResolutions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid export resolution %q", value)
}
