package export

import (
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/getpostkit/postkit/pkg/postman"
	"github.com/getpostkit/postkit/pkg/synth"
)

// OpenAPIConverter produces OpenAPI 3.0 documents. Requests map to path
// operations with canned responses; no data synthesis is applied, so the
// output depends only on the collection.
type OpenAPIConverter struct{}

// Format returns FormatOpenAPI.
func (*OpenAPIConverter) Format() Format { return FormatOpenAPI }

// pathPattern recovers a path from URLs the standard parser rejects.
var pathPattern = regexp.MustCompile(`^(?:https?://[^/]+)?(/.*)?$`)

// Convert builds the OpenAPI document. The result is a plain map so JSON
// rendering is key-sorted and deterministic.
func (c *OpenAPIConverter) Convert(col *postman.Collection, opts ConvertOptions) (any, error) {
	info := map[string]any{
		"title":   col.Info.Name,
		"version": "1.0.0",
	}
	if col.Info.Description != "" {
		info["description"] = col.Info.Description
	}

	doc := map[string]any{
		"openapi": "3.0.0",
		"info":    info,
		"servers": []any{
			map[string]any{
				"url":         "https://api.example.com",
				"description": "API Server",
			},
		},
		"paths": map[string]any{},
		"components": map[string]any{
			"schemas": map[string]any{},
			"securitySchemes": map[string]any{
				"bearerAuth": map[string]any{
					"type":   "http",
					"scheme": "bearer",
				},
				"apiKey": map[string]any{
					"type": "apiKey",
					"in":   "header",
					"name": "X-API-Key",
				},
			},
		},
	}

	openAPIItems(col.Items, doc["paths"].(map[string]any))
	return doc, nil
}

// openAPIItems merges every request in the tree into the paths object.
func openAPIItems(items []postman.Item, paths map[string]any) {
	for _, it := range items {
		if it.Kind == postman.KindFolder {
			openAPIItems(it.Items, paths)
			continue
		}
		req := it.Request
		if req == nil {
			continue
		}

		method := strings.ToLower(req.Method)
		path := extractPath(req.URL.Raw)

		pathItem, ok := paths[path].(map[string]any)
		if !ok {
			pathItem = map[string]any{}
			paths[path] = pathItem
		}

		op := map[string]any{
			"summary":     it.Name,
			"description": it.Description,
			"parameters":  openAPIParameters(req),
			"responses": map[string]any{
				"200": map[string]any{
					"description": "Successful response",
					"content": map[string]any{
						"application/json": map[string]any{
							"schema": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"message": map[string]any{
										"type":    "string",
										"example": "Success",
									},
								},
							},
						},
					},
				},
			},
		}

		if method == "post" || method == "put" || method == "patch" {
			op["requestBody"] = map[string]any{
				"content": map[string]any{
					"application/json": map[string]any{
						"schema": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"name":        map[string]any{"type": "string", "example": "Sample Item"},
								"description": map[string]any{"type": "string", "example": "Sample description"},
								"status":      map[string]any{"type": "string", "example": "active"},
							},
						},
					},
				},
			}
		}

		pathItem[method] = op
	}
}

// extractPath pulls the path component from a request URL, defaulting to "/".
func extractPath(rawURL string) string {
	full := rawURL
	if !strings.HasPrefix(full, "http") {
		full = "https://api.example.com" + full
	}
	if u, err := url.Parse(full); err == nil && u.Path != "" {
		return u.Path
	}

	m := pathPattern.FindStringSubmatch(rawURL)
	if m == nil || m[1] == "" {
		return "/"
	}
	path, _, _ := strings.Cut(m[1], "?")
	if path == "" {
		return "/"
	}
	return path
}

// openAPIParameters builds parameter objects from path variables and any
// query rows present on a structured URL.
func openAPIParameters(req *postman.Request) []any {
	params := []any{}

	g := synth.NewGenerator(synth.DefaultConfig())
	pathVars := g.PathVariables(req.URL.Raw)
	names := make([]string, 0, len(pathVars))
	for name := range pathVars {
		names = append(names, name)
	}
	// Map iteration order is random; pin it.
	sort.Strings(names)
	for _, name := range names {
		params = append(params, map[string]any{
			"name":     name,
			"in":       "path",
			"required": true,
			"schema": map[string]any{
				"type":    "string",
				"example": pathVars[name],
			},
		})
	}

	if req.URL.Structured() {
		for _, q := range req.URL.Query {
			p := map[string]any{
				"name":     q.Key,
				"in":       "query",
				"required": false,
				"schema": map[string]any{
					"type":    "string",
					"example": q.Value,
				},
			}
			if q.Description != "" {
				p["description"] = q.Description
			}
			params = append(params, p)
		}
	}

	return params
}
