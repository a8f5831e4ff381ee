package export

import (
	"encoding/json"
	"path/filepath"
	"strings"
)

// Format represents a supported export format.
type Format string

// Supported formats.
const (
	FormatUnknown  Format = ""
	FormatNative   Format = "postman"  // Collection format v2.1 (native)
	FormatInsomnia Format = "insomnia" // Insomnia v4 export
	FormatOpenAPI  Format = "openapi"  // OpenAPI 3.0
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known format.
func (f Format) IsValid() bool {
	switch f {
	case FormatNative, FormatInsomnia, FormatOpenAPI:
		return true
	default:
		return false
	}
}

// ParseFormat parses a format string into a Format type. Aliases used at
// the tool boundary are accepted. Returns FormatUnknown for unrecognized
// format strings.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "postman", "native":
		return FormatNative
	case "insomnia", "alternate":
		return FormatInsomnia
	case "openapi", "swagger", "oas", "api-description":
		return FormatOpenAPI
	default:
		return FormatUnknown
	}
}

// AllFormats returns a list of all supported formats.
func AllFormats() []Format {
	return []Format{
		FormatNative,
		FormatInsomnia,
		FormatOpenAPI,
	}
}

// DetectFormat attempts to auto-detect the format from file content and
// filename. Returns FormatUnknown if the format cannot be determined.
func DetectFormat(data []byte, filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".yaml" || ext == ".yml" {
		return detectFormatFromYAML(data)
	}
	return detectFormatFromJSON(data)
}

// detectFormatFromJSON detects format from JSON content.
func detectFormatFromJSON(data []byte) Format {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return FormatUnknown
	}

	// Insomnia exports carry their own envelope markers.
	if _, ok := raw["__export_format"]; ok {
		return FormatInsomnia
	}
	if t, ok := raw["_type"]; ok && string(t) == `"export"` {
		return FormatInsomnia
	}

	if _, ok := raw["openapi"]; ok {
		return FormatOpenAPI
	}
	if _, ok := raw["swagger"]; ok {
		return FormatOpenAPI
	}

	if _, hasInfo := raw["info"]; hasInfo {
		if _, hasItem := raw["item"]; hasItem {
			return FormatNative
		}
	}

	return FormatUnknown
}

// detectFormatFromYAML detects format from YAML content. Only OpenAPI
// documents are conventionally written as YAML.
func detectFormatFromYAML(data []byte) Format {
	content := string(data)
	if strings.Contains(content, "openapi:") || strings.Contains(content, "swagger:") {
		return FormatOpenAPI
	}
	return FormatUnknown
}
