package synth

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	"github.com/beevik/etree"

	"github.com/getpostkit/postkit/pkg/postman"
)

// fallbackBase is prepended to scheme-less URLs so they parse.
const fallbackBase = "https://api.example.com"

// UserAgent identifies synthesized requests.
const UserAgent = "postkit/1.0"

// Config controls which kinds of data the Generator synthesizes.
type Config struct {
	QueryParams     bool
	RequestBodies   bool
	Headers         bool
	RealisticValues bool
}

// DefaultConfig enables everything.
func DefaultConfig() Config {
	return Config{
		QueryParams:     true,
		RequestBodies:   true,
		Headers:         true,
		RealisticValues: true,
	}
}

// Generator synthesizes request data. All methods are pure; a Generator is
// safe for concurrent use.
type Generator struct {
	cfg Config
}

// NewGenerator creates a Generator with the given config.
func NewGenerator(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// pathVarPattern matches :name and {name} path segments.
var pathVarPattern = regexp.MustCompile(`[:{]([^}/:]+)}?`)

// QueryParams synthesizes query parameters for a URL. Existing parameters
// whose value is empty or an unresolved {{...}} reference get concrete
// values; GET requests additionally pick up conventional parameters keyed
// off URL path keywords. Keys already present in the URL are never
// duplicated.
func (g *Generator) QueryParams(rawURL, method string) []postman.QueryParam {
	if !g.cfg.QueryParams {
		return nil
	}

	var params []postman.QueryParam
	existing := make(map[string]bool)

	full := rawURL
	if !strings.HasPrefix(full, "http") {
		full = fallbackBase + full
	}
	if u, err := url.Parse(full); err == nil {
		for _, kv := range parseQueryOrdered(u.RawQuery) {
			existing[kv.key] = true
			if kv.value == "" || strings.HasPrefix(kv.value, "{{") {
				params = append(params, postman.QueryParam{
					Key:         kv.key,
					Value:       ValueFor(kv.key),
					Description: DescriptionFor(kv.key),
				})
			}
		}
	}

	has := func(key string) bool {
		if existing[key] {
			return true
		}
		for _, p := range params {
			if p.Key == key {
				return true
			}
		}
		return false
	}

	if method == "GET" {
		if strings.Contains(rawURL, "/users") || strings.Contains(rawURL, "/user") {
			if !has("page") {
				params = append(params, postman.QueryParam{Key: "page", Value: "1", Description: "Page number for pagination"})
			}
			if !has("limit") {
				params = append(params, postman.QueryParam{Key: "limit", Value: "10", Description: "Number of items per page"})
			}
			if !has("sort") {
				params = append(params, postman.QueryParam{Key: "sort", Value: "created_at", Description: "Sort field"})
			}
		}

		if strings.Contains(rawURL, "/search") {
			if !has("q") {
				params = append(params, postman.QueryParam{Key: "q", Value: "example search", Description: "Search query"})
			}
		}

		if strings.Contains(rawURL, "/filter") {
			if !has("status") {
				params = append(params, postman.QueryParam{Key: "status", Value: "active", Description: "Filter by status"})
			}
		}

		if !has("format") {
			params = append(params, postman.QueryParam{Key: "format", Value: "json", Description: "Response format"})
		}
	}

	return params
}

type queryKV struct {
	key   string
	value string
}

// parseQueryOrdered splits a raw query string preserving document order,
// which url.Values would lose.
func parseQueryOrdered(rawQuery string) []queryKV {
	if rawQuery == "" {
		return nil
	}
	var out []queryKV
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if k, err := url.QueryUnescape(key); err == nil {
			key = k
		}
		if v, err := url.QueryUnescape(value); err == nil {
			value = v
		}
		out = append(out, queryKV{key: key, value: value})
	}
	return out
}

// Body synthesizes a request body for the method and declared content type.
// GET, HEAD, and DELETE never get a body. Unrecognized content types fall
// back to JSON.
func (g *Generator) Body(method, contentType string) *postman.Body {
	if !g.cfg.RequestBodies {
		return nil
	}
	switch method {
	case "GET", "HEAD", "DELETE":
		return nil
	}
	if contentType == "" {
		contentType = "application/json"
	}

	switch strings.ToLower(contentType) {
	case "application/json":
		return g.jsonBody(method)

	case "application/x-www-form-urlencoded":
		return &postman.Body{
			Mode:       postman.BodyModeURLEncoded,
			URLEncoded: formFields(false),
		}

	case "multipart/form-data":
		return &postman.Body{
			Mode:     postman.BodyModeFormData,
			FormData: formFields(true),
		}

	case "text/plain":
		return &postman.Body{
			Mode: postman.BodyModeRaw,
			Raw:  "Sample text content for the request body",
		}

	case "application/xml":
		return &postman.Body{
			Mode: postman.BodyModeRaw,
			Raw:  xmlBody(),
			Options: &postman.BodyOptions{
				Raw: &postman.RawOptions{Language: "xml"},
			},
		}

	default:
		return g.jsonBody(method)
	}
}

// jsonBody builds a raw JSON body whose payload differs by method.
func (g *Generator) jsonBody(method string) *postman.Body {
	var payload any
	switch method {
	case "POST":
		payload = map[string]any{
			"name":        "Sample Item",
			"description": "This is a sample item created via API",
			"status":      "active",
			"metadata": map[string]any{
				"created_by": "api_user",
				"tags":       []string{"sample", "demo"},
			},
		}
	case "PUT":
		payload = map[string]any{
			"id":          12345,
			"name":        "Updated Item",
			"description": "This item has been updated",
			"status":      "active",
			"updated_at":  "2024-01-01T00:00:00Z",
		}
	case "PATCH":
		payload = map[string]any{
			"status":     "inactive",
			"updated_at": "2024-01-01T00:00:00Z",
		}
	default:
		payload = map[string]any{
			"data": "sample_value",
		}
	}

	raw, _ := json.MarshalIndent(payload, "", "  ")
	return &postman.Body{
		Mode: postman.BodyModeRaw,
		Raw:  string(raw),
		Options: &postman.BodyOptions{
			Raw: &postman.RawOptions{Language: "json"},
		},
	}
}

// formFields returns the fixed form rows; multipart adds a file field.
func formFields(multipart bool) []postman.FormParam {
	fields := []postman.FormParam{
		{Key: "name", Value: "Sample Name", Description: "Item name"},
		{Key: "description", Value: "Sample description", Description: "Item description"},
		{Key: "status", Value: "active", Description: "Item status"},
	}
	if multipart {
		fields = append(fields, postman.FormParam{
			Key: "file", Type: "file", Description: "File upload",
		})
	}
	return fields
}

// xmlBody builds the XML mirror of the JSON POST payload.
func xmlBody() string {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	req := doc.CreateElement("request")
	req.CreateElement("name").SetText("Sample Item")
	req.CreateElement("description").SetText("This is a sample XML request")
	req.CreateElement("status").SetText("active")

	meta := req.CreateElement("metadata")
	meta.CreateElement("created_by").SetText("api_user")
	tags := meta.CreateElement("tags")
	tags.CreateElement("tag").SetText("sample")
	tags.CreateElement("tag").SetText("demo")

	doc.Indent(4)
	out, _ := doc.WriteToString()
	return strings.TrimRight(out, "\n")
}

// Headers synthesizes conventional request headers in a fixed order:
// Content-Type (body-carrying POST/PUT/PATCH only), Accept, Authorization,
// User-Agent, X-API-Key.
func (g *Generator) Headers(method string, hasBody bool) []postman.Header {
	if !g.cfg.Headers {
		return nil
	}

	var headers []postman.Header

	if hasBody && (method == "POST" || method == "PUT" || method == "PATCH") {
		headers = append(headers, postman.Header{
			Key:         "Content-Type",
			Value:       "application/json",
			Description: "Content type of the request body",
		})
	}

	headers = append(headers,
		postman.Header{
			Key:         "Accept",
			Value:       "application/json",
			Description: "Accepted response content types",
		},
		postman.Header{
			Key:         "Authorization",
			Value:       "Bearer {{access_token}}",
			Description: "Authentication token",
		},
		postman.Header{
			Key:         "User-Agent",
			Value:       UserAgent,
			Description: "Client identifier",
		},
		postman.Header{
			Key:         "X-API-Key",
			Value:       "{{api_key}}",
			Description: "API key for authentication",
		},
	)

	return headers
}

// PathVariables scans a URL for :name and {name} path segments and
// synthesizes a value for each.
func (g *Generator) PathVariables(rawURL string) map[string]string {
	variables := make(map[string]string)
	for _, m := range pathVarPattern.FindAllStringSubmatch(rawURL, -1) {
		if name := m[1]; name != "" {
			variables[name] = ValueFor(name)
		}
	}
	return variables
}
