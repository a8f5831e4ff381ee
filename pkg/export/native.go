package export

import (
	"maps"
	"strings"

	"github.com/getpostkit/postkit/pkg/postman"
	"github.com/getpostkit/postkit/pkg/synth"
)

// Version is the fixed version block stamped on exported collections.
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}

// NativeConverter produces collection format v2.1 documents, optionally
// enriched with synthesized query parameters, headers, and bodies.
type NativeConverter struct{}

// Format returns FormatNative.
func (*NativeConverter) Format() Format { return FormatNative }

// Convert builds a new v2.1 collection document. The result is always a
// fresh structure; the input is never touched.
func (c *NativeConverter) Convert(col *postman.Collection, opts ConvertOptions) (any, error) {
	g := synth.NewGenerator(synth.DefaultConfig())

	out := &postman.Collection{
		Info: postman.Info{
			Name:        col.Info.Name,
			Description: col.Info.Description,
			Schema:      postman.SchemaV21,
			Version:     Version{Major: 1, Minor: 0, Patch: 0},
		},
		Items:     nativeItems(col.Items, opts.IncludeSynthesized, g),
		Variables: append([]postman.Variable(nil), col.Variables...),
	}
	if col.Auth != nil {
		out.Auth = maps.Clone(col.Auth)
	}
	return out, nil
}

// nativeItems clones and optionally enriches an item tree.
func nativeItems(items []postman.Item, enrich bool, g *synth.Generator) []postman.Item {
	out := make([]postman.Item, 0, len(items))
	for _, it := range items {
		if it.Kind == postman.KindRequest {
			out = append(out, nativeRequest(it, enrich, g))
			continue
		}
		out = append(out, postman.Item{
			Kind:        postman.KindFolder,
			Name:        it.Name,
			Description: it.Description,
			Items:       nativeItems(it.Items, enrich, g),
		})
	}
	return out
}

// nativeRequest clones one request item and fills the gaps with synthesized
// data: query parameters on structured URLs, conventional headers that are
// not already set, and a body for body-carrying methods that lack one.
func nativeRequest(it postman.Item, enrich bool, g *synth.Generator) postman.Item {
	out := postman.Item{
		Kind:        postman.KindRequest,
		Name:        it.Name,
		Description: it.Description,
		Request:     cloneRequest(it.Request),
		Responses:   append([]postman.Response(nil), it.Responses...),
	}
	if !enrich || out.Request == nil {
		return out
	}

	req := out.Request
	method := req.Method

	// Query enrichment applies to structured URLs only; a bare string URL
	// has no parameter rows to extend.
	if req.URL.Structured() {
		for _, p := range g.QueryParams(req.URL.Raw, method) {
			req.URL.Query = append(req.URL.Query, p)
		}
	}

	present := make(map[string]bool, len(req.Headers))
	for _, h := range req.Headers {
		present[strings.ToLower(h.Key)] = true
	}
	hasBody := method == "POST" || method == "PUT" || method == "PATCH"
	for _, h := range g.Headers(method, hasBody) {
		if !present[strings.ToLower(h.Key)] {
			req.Headers = append(req.Headers, h)
		}
	}

	// Presence of a body object, even an empty one, suppresses synthesis.
	if hasBody && req.Body == nil {
		contentType := req.HeaderValue("Content-Type")
		req.Body = g.Body(method, contentType)
	}

	return out
}

// cloneRequest deep-copies a request so enrichment cannot leak into the
// caller's collection.
func cloneRequest(r *postman.Request) *postman.Request {
	if r == nil {
		return nil
	}
	out := *r

	u := r.URL
	u.Host = append([]string(nil), r.URL.Host...)
	u.Path = append([]string(nil), r.URL.Path...)
	u.Query = append([]postman.QueryParam(nil), r.URL.Query...)
	u.Variables = append([]postman.Variable(nil), r.URL.Variables...)
	out.URL = u

	out.Headers = append([]postman.Header(nil), r.Headers...)

	if r.Body != nil {
		b := *r.Body
		b.FormData = append([]postman.FormParam(nil), r.Body.FormData...)
		b.URLEncoded = append([]postman.FormParam(nil), r.Body.URLEncoded...)
		if r.Body.GraphQL != nil {
			b.GraphQL = maps.Clone(r.Body.GraphQL)
		}
		if r.Body.Options != nil {
			o := *r.Body.Options
			if r.Body.Options.Raw != nil {
				ro := *r.Body.Options.Raw
				o.Raw = &ro
			}
			b.Options = &o
		}
		out.Body = &b
	}
	if r.Auth != nil {
		out.Auth = maps.Clone(r.Auth)
	}
	return &out
}
