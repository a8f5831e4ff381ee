package export

import (
	"net/url"
	"strings"
	"time"

	"github.com/getpostkit/postkit/internal/id"
	"github.com/getpostkit/postkit/pkg/postman"
	"github.com/getpostkit/postkit/pkg/synth"
)

// exportSource identifies documents produced by this tool.
const exportSource = "postkit"

// InsomniaExport is the Insomnia v4 export envelope.
type InsomniaExport struct {
	Type         string           `json:"_type"`
	ExportFormat int              `json:"__export_format"`
	ExportDate   string           `json:"__export_date"`
	ExportSource string           `json:"__export_source"`
	Resources    []map[string]any `json:"resources"`
}

// InsomniaConverter produces Insomnia v4 exports: a workspace resource, a
// base environment, and a flat resource list linked by parentId.
type InsomniaConverter struct{}

// Format returns FormatInsomnia.
func (*InsomniaConverter) Format() Format { return FormatInsomnia }

// Convert builds the Insomnia export document.
func (c *InsomniaConverter) Convert(col *postman.Collection, opts ConvertOptions) (any, error) {
	ids := opts.ids()
	now := opts.now()
	g := synth.NewGenerator(synth.DefaultConfig())

	workspaceID := ids.NextID()
	resources := []map[string]any{{
		"_id":         workspaceID,
		"_type":       "workspace",
		"name":        col.Info.Name,
		"description": col.Info.Description,
		"parentId":    nil,
		"created":     now.UnixMilli(),
		"modified":    now.UnixMilli(),
	}}

	envData := map[string]any{}
	if opts.IncludeSynthesized {
		for _, v := range synth.EnvironmentVariables(col) {
			envData[v.Key] = v.Value
		}
	}
	resources = append(resources, map[string]any{
		"_id":               ids.NextID(),
		"_type":             "environment",
		"name":              "Base Environment",
		"data":              envData,
		"dataPropertyOrder": nil,
		"color":             nil,
		"isPrivate":         false,
		"metaSortKey":       now.UnixMilli(),
		"parentId":          workspaceID,
		"created":           now.UnixMilli(),
		"modified":          now.UnixMilli(),
	})

	resources = insomniaItems(col.Items, resources, workspaceID, opts.IncludeSynthesized, ids, now, g)

	return &InsomniaExport{
		Type:         "export",
		ExportFormat: 4,
		ExportDate:   now.UTC().Format(time.RFC3339),
		ExportSource: exportSource,
		Resources:    resources,
	}, nil
}

// insomniaItems appends request and request_group resources depth-first,
// preserving document order under each parent.
func insomniaItems(items []postman.Item, resources []map[string]any, parentID string, enrich bool, ids id.Source, now time.Time, g *synth.Generator) []map[string]any {
	for _, it := range items {
		if it.Kind == postman.KindRequest {
			req := it.Request
			if req == nil {
				continue
			}
			resources = append(resources, map[string]any{
				"_id":                             ids.NextID(),
				"_type":                           "request",
				"name":                            it.Name,
				"description":                     it.Description,
				"url":                             insomniaURL(req.URL.Raw, req.Method, enrich, g),
				"method":                          req.Method,
				"headers":                         insomniaHeaders(req.Headers, req.Method, enrich, g),
				"body":                            insomniaBody(req.Body, req.Method, enrich, g),
				"parameters":                      []any{},
				"authentication":                  map[string]any{},
				"metaSortKey":                     now.UnixMilli(),
				"isPrivate":                       false,
				"settingStoreCookies":             true,
				"settingSendCookies":              true,
				"settingDisableRenderRequestBody": false,
				"settingEncodeUrl":                true,
				"settingRebuildPath":              true,
				"settingFollowRedirects":          "global",
				"parentId":                        parentID,
				"created":                         now.UnixMilli(),
				"modified":                        now.UnixMilli(),
			})
			continue
		}

		folderID := ids.NextID()
		resources = append(resources, map[string]any{
			"_id":                      folderID,
			"_type":                    "request_group",
			"name":                     it.Name,
			"description":              it.Description,
			"environment":              map[string]any{},
			"environmentPropertyOrder": nil,
			"metaSortKey":              now.UnixMilli(),
			"parentId":                 parentID,
			"created":                  now.UnixMilli(),
			"modified":                 now.UnixMilli(),
		})
		resources = insomniaItems(it.Items, resources, folderID, enrich, ids, now, g)
	}
	return resources
}

// insomniaURL inlines synthesized query parameters into the URL string.
// Parameters already present in the URL are kept as-is.
func insomniaURL(rawURL, method string, enrich bool, g *synth.Generator) string {
	if !enrich {
		return rawURL
	}

	full := rawURL
	if !strings.HasPrefix(full, "http") {
		full = "https://api.example.com" + full
	}
	u, err := url.Parse(full)
	if err != nil {
		return rawURL
	}

	q := u.Query()
	for _, p := range g.QueryParams(rawURL, method) {
		if !q.Has(p.Key) {
			q.Set(p.Key, p.Value)
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// insomniaHeaders converts existing header rows and appends synthesized ones
// that are not already present, matching keys case-insensitively.
func insomniaHeaders(headers []postman.Header, method string, enrich bool, g *synth.Generator) []map[string]any {
	out := make([]map[string]any, 0, len(headers))
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[strings.ToLower(h.Key)] = true
		out = append(out, map[string]any{
			"name":        h.Key,
			"value":       h.Value,
			"description": h.Description,
			"disabled":    h.Disabled,
		})
	}
	if !enrich {
		return out
	}

	hasBody := method == "POST" || method == "PUT" || method == "PATCH"
	for _, h := range g.Headers(method, hasBody) {
		if !present[strings.ToLower(h.Key)] {
			out = append(out, map[string]any{
				"name":        h.Key,
				"value":       h.Value,
				"description": h.Description,
				"disabled":    false,
			})
		}
	}
	return out
}

// insomniaBody converts a request body to the Insomnia shape, synthesizing a
// JSON body for body-carrying methods that lack one.
func insomniaBody(body *postman.Body, method string, enrich bool, g *synth.Generator) map[string]any {
	if body != nil {
		return insomniaBodyFrom(body)
	}
	if !enrich || (method != "POST" && method != "PUT" && method != "PATCH") {
		return map[string]any{}
	}

	generated := g.Body(method, "application/json")
	if generated == nil {
		return map[string]any{}
	}
	return map[string]any{
		"mimeType": "application/json",
		"text":     generated.Raw,
	}
}

// insomniaBodyFrom maps each body mode onto mimeType/text or params.
func insomniaBodyFrom(body *postman.Body) map[string]any {
	switch body.Mode {
	case postman.BodyModeRaw:
		mime := "application/json"
		if body.Options != nil && body.Options.Raw != nil {
			switch body.Options.Raw.Language {
			case "xml":
				mime = "application/xml"
			case "text":
				mime = "text/plain"
			}
		}
		return map[string]any{"mimeType": mime, "text": body.Raw}
	case postman.BodyModeURLEncoded:
		return map[string]any{
			"mimeType": "application/x-www-form-urlencoded",
			"params":   insomniaParams(body.URLEncoded),
		}
	case postman.BodyModeFormData:
		return map[string]any{
			"mimeType": "multipart/form-data",
			"params":   insomniaParams(body.FormData),
		}
	default:
		return map[string]any{}
	}
}

func insomniaParams(params []postman.FormParam) []map[string]any {
	out := make([]map[string]any, 0, len(params))
	for _, p := range params {
		out = append(out, map[string]any{
			"name":  p.Key,
			"value": p.Value,
		})
	}
	return out
}
