package export

import "testing"

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"postman", FormatNative},
		{"native", FormatNative},
		{"POSTMAN", FormatNative},
		{"insomnia", FormatInsomnia},
		{"alternate", FormatInsomnia},
		{"openapi", FormatOpenAPI},
		{"swagger", FormatOpenAPI},
		{"oas", FormatOpenAPI},
		{"api-description", FormatOpenAPI},
		{"  openapi  ", FormatOpenAPI},
		{"har", FormatUnknown},
		{"", FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseFormat(tt.in); got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatIsValid(t *testing.T) {
	for _, f := range AllFormats() {
		if !f.IsValid() {
			t.Errorf("%q reported invalid", f)
		}
	}
	if FormatUnknown.IsValid() {
		t.Error("unknown format reported valid")
	}
	if Format("har").IsValid() {
		t.Error("har reported valid")
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		filename string
		want     Format
	}{
		{
			name: "native collection",
			data: `{"info":{"name":"API"},"item":[]}`,
			want: FormatNative,
		},
		{
			name: "insomnia by export format",
			data: `{"__export_format":4,"resources":[]}`,
			want: FormatInsomnia,
		},
		{
			name: "insomnia by type",
			data: `{"_type":"export","resources":[]}`,
			want: FormatInsomnia,
		},
		{
			name: "openapi json",
			data: `{"openapi":"3.0.0","info":{"title":"x"}}`,
			want: FormatOpenAPI,
		},
		{
			name: "swagger json",
			data: `{"swagger":"2.0"}`,
			want: FormatOpenAPI,
		},
		{
			name:     "openapi yaml",
			data:     "openapi: 3.0.0\ninfo:\n  title: x\n",
			filename: "api.yaml",
			want:     FormatOpenAPI,
		},
		{
			name: "malformed",
			data: `{not json`,
			want: FormatUnknown,
		},
		{
			name: "info without item",
			data: `{"info":{"name":"API"}}`,
			want: FormatUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFormat([]byte(tt.data), tt.filename); got != tt.want {
				t.Errorf("DetectFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}
