package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/getpostkit/postkit/internal/id"
)

func fixedNow() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func convertInsomnia(t *testing.T, synth bool) *InsomniaExport {
	t.Helper()
	doc, err := (&InsomniaConverter{}).Convert(sampleCollection(), ConvertOptions{
		IncludeSynthesized: synth,
		IDs:                &id.Sequence{Prefix: "test"},
		Now:                fixedNow,
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	return doc.(*InsomniaExport)
}

func TestInsomniaConverter_Envelope(t *testing.T) {
	out := convertInsomnia(t, true)

	if out.Type != "export" || out.ExportFormat != 4 {
		t.Errorf("envelope = %q/%d", out.Type, out.ExportFormat)
	}
	if out.ExportSource != "postkit" {
		t.Errorf("source = %q", out.ExportSource)
	}
	if out.ExportDate != "2024-06-01T12:00:00Z" {
		t.Errorf("date = %q", out.ExportDate)
	}
}

func TestInsomniaConverter_ResourceTree(t *testing.T) {
	out := convertInsomnia(t, true)

	// workspace, environment, request, request_group, nested request
	if len(out.Resources) != 5 {
		t.Fatalf("got %d resources, want 5", len(out.Resources))
	}

	ws := out.Resources[0]
	if ws["_type"] != "workspace" || ws["name"] != "Sample API" || ws["parentId"] != nil {
		t.Errorf("workspace = %+v", ws)
	}
	wsID := ws["_id"].(string)

	env := out.Resources[1]
	if env["_type"] != "environment" || env["name"] != "Base Environment" || env["parentId"] != wsID {
		t.Errorf("environment = %+v", env)
	}
	data := env["data"].(map[string]any)
	if data["base_url"] != "https://api.example.com" {
		t.Errorf("environment data = %+v", data)
	}
	if data["access_token"] != "your_api_key_here" {
		t.Errorf("environment data = %+v", data)
	}

	req := out.Resources[2]
	if req["_type"] != "request" || req["parentId"] != wsID || req["method"] != "GET" {
		t.Errorf("request = %+v", req)
	}

	group := out.Resources[3]
	if group["_type"] != "request_group" || group["name"] != "Admin" || group["parentId"] != wsID {
		t.Errorf("request_group = %+v", group)
	}

	nested := out.Resources[4]
	if nested["_type"] != "request" || nested["parentId"] != group["_id"] {
		t.Errorf("nested request = %+v", nested)
	}
}

func TestInsomniaConverter_URLEnrichment(t *testing.T) {
	out := convertInsomnia(t, true)

	url := out.Resources[2]["url"].(string)
	for _, want := range []string{"page=1", "limit=10", "format=json"} {
		if !strings.Contains(url, want) {
			t.Errorf("url %q missing %q", url, want)
		}
	}
}

func TestInsomniaConverter_SynthesizedBody(t *testing.T) {
	out := convertInsomnia(t, true)

	body := out.Resources[4]["body"].(map[string]any)
	if body["mimeType"] != "application/json" {
		t.Errorf("body mimeType = %v", body["mimeType"])
	}
	if !strings.Contains(body["text"].(string), "Sample Item") {
		t.Errorf("body text = %v", body["text"])
	}
}

func TestInsomniaConverter_NoSynthesis(t *testing.T) {
	out := convertInsomnia(t, false)

	env := out.Resources[1]
	if data := env["data"].(map[string]any); len(data) != 0 {
		t.Errorf("environment data populated without synthesis: %+v", data)
	}
	if body := out.Resources[4]["body"].(map[string]any); len(body) != 0 {
		t.Errorf("body synthesized when disabled: %+v", body)
	}
	if url := out.Resources[2]["url"].(string); url != "https://api.example.com/users?page=1" {
		t.Errorf("url rewritten without synthesis: %q", url)
	}
}

func TestInsomniaConverter_Deterministic(t *testing.T) {
	render := func() string {
		t.Helper()
		data, err := json.Marshal(convertInsomnia(t, true))
		if err != nil {
			t.Fatal(err)
		}
		return string(data)
	}

	if a, b := render(), render(); a != b {
		t.Error("two conversions with the same id source and clock differ")
	}
}
