package enums

import "fmt"

// ExportFormat is the container of an export.
type ExportFormat string

const (
	ExportFormatMP4 ExportFormat = "mp4"
	ExportFormatMOV ExportFormat = "mov"
	ExportFormatAVI ExportFormat = "avi"
)

var validExportFormats = []ExportFormat{
	ExportFormatMP4,
	ExportFormatMOV,
	ExportFormatAVI,
}

// String implements fmt.Stringer.
func (v ExportFormat) String() string {
	return string(v)
}

// IsValid reports whether the value is a known ExportFormat.
func (v ExportFormat) IsValid() bool {
	for _, candidate := range validExportFormats {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseExportFormat converts raw input into a ExportFormat.
func ParseExportFormat(value string) (ExportFormat, error) {
	for _, candidate := range validExportFormats {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid export format %q", value)
}
