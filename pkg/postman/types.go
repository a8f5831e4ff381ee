package postman

import (
	"encoding/json"
	"strings"
)

// SchemaV21 is the collection format v2.1 schema identifier stamped on
// every exported native document.
const SchemaV21 = "https://schema.getpostman.com/json/collection/v2.1.0/collection.json"

// Collection is the root document: an info block plus an ordered tree of
// items. Conversion treats collections as read-only input and always
// produces new structures.
type Collection struct {
	Info      Info           `json:"info"`
	Items     []Item         `json:"item"`
	Variables []Variable     `json:"variable,omitempty"`
	Auth      map[string]any `json:"auth,omitempty"`
}

// Info is the collection metadata block.
type Info struct {
	ID          string `json:"_postman_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Schema      string `json:"schema,omitempty"`
	Version     any    `json:"version,omitempty"`
}

// ItemKind discriminates the Item union.
type ItemKind string

// Item kinds.
const (
	KindRequest ItemKind = "request"
	KindFolder  ItemKind = "folder"
)

// Item is a tagged union: a request leaf or a folder of nested items.
// Kind is decided once during unmarshaling (an item carrying a "request"
// key is a request, anything else is a folder) and never re-inferred.
type Item struct {
	Kind        ItemKind
	ID          string
	Name        string
	Description string
	Request     *Request
	Responses   []Response
	Items       []Item
}

// itemWire is the on-the-wire shape shared by both kinds.
type itemWire struct {
	ID          string          `json:"id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Request     json.RawMessage `json:"request,omitempty"`
	Responses   []Response      `json:"response,omitempty"`
	Items       []Item          `json:"item,omitempty"`
}

// UnmarshalJSON decides the union tag at parse time.
func (it *Item) UnmarshalJSON(data []byte) error {
	var w itemWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	it.ID = w.ID
	it.Name = w.Name
	it.Description = w.Description
	it.Responses = w.Responses
	it.Items = w.Items
	if len(w.Request) > 0 {
		it.Kind = KindRequest
		req := &Request{}
		if err := json.Unmarshal(w.Request, req); err != nil {
			return err
		}
		it.Request = req
	} else {
		it.Kind = KindFolder
	}
	return nil
}

// MarshalJSON emits the wire shape for the item's kind.
func (it Item) MarshalJSON() ([]byte, error) {
	if it.Kind == KindRequest {
		return json.Marshal(struct {
			ID          string     `json:"id,omitempty"`
			Name        string     `json:"name"`
			Description string     `json:"description,omitempty"`
			Request     *Request   `json:"request"`
			Responses   []Response `json:"response,omitempty"`
		}{it.ID, it.Name, it.Description, it.Request, it.Responses})
	}
	items := it.Items
	if items == nil {
		items = []Item{}
	}
	return json.Marshal(struct {
		ID          string `json:"id,omitempty"`
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
		Items       []Item `json:"item"`
	}{it.ID, it.Name, it.Description, items})
}

// Request is a single HTTP request definition.
type Request struct {
	Method      string         `json:"method"`
	URL         URL            `json:"url"`
	Headers     []Header       `json:"header,omitempty"`
	Body        *Body          `json:"body,omitempty"`
	Description string         `json:"description,omitempty"`
	Auth        map[string]any `json:"auth,omitempty"`
}

// Header is a request header row.
type Header struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Disabled    bool   `json:"disabled,omitempty"`
}

// QueryParam is a URL query parameter row.
type QueryParam struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Disabled    bool   `json:"disabled,omitempty"`
}

// URL carries both wire encodings of a request URL: a bare string or a
// structured object. Structured reports which one the source document used;
// query enrichment only touches structured URLs.
type URL struct {
	Raw       string
	Protocol  string
	Host      []string
	Port      string
	Path      []string
	Query     []QueryParam
	Variables []Variable

	structured bool
}

// urlWire is the structured object encoding.
type urlWire struct {
	Raw       string       `json:"raw,omitempty"`
	Protocol  string       `json:"protocol,omitempty"`
	Host      []string     `json:"host,omitempty"`
	Port      string       `json:"port,omitempty"`
	Path      []string     `json:"path,omitempty"`
	Query     []QueryParam `json:"query,omitempty"`
	Variables []Variable   `json:"variable,omitempty"`
}

// StringURL builds a bare-string URL.
func StringURL(raw string) URL {
	return URL{Raw: raw}
}

// StructuredURL builds an object-encoded URL from a raw string.
func StructuredURL(raw string) URL {
	return URL{Raw: raw, structured: true}
}

// Structured reports whether the URL came from (or will render as) the
// object encoding.
func (u *URL) Structured() bool { return u.structured }

// SetStructured switches the URL to the object encoding.
func (u *URL) SetStructured() { u.structured = true }

// String returns the raw URL text.
func (u URL) String() string { return u.Raw }

// UnmarshalJSON accepts both the bare-string and object encodings.
func (u *URL) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*u = URL{Raw: raw}
		return nil
	}
	var w urlWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*u = URL{
		Raw:        w.Raw,
		Protocol:   w.Protocol,
		Host:       w.Host,
		Port:       w.Port,
		Path:       w.Path,
		Query:      w.Query,
		Variables:  w.Variables,
		structured: true,
	}
	return nil
}

// MarshalJSON renders the encoding the URL was built with.
func (u URL) MarshalJSON() ([]byte, error) {
	if !u.structured {
		return json.Marshal(u.Raw)
	}
	return json.Marshal(urlWire{
		Raw:       u.Raw,
		Protocol:  u.Protocol,
		Host:      u.Host,
		Port:      u.Port,
		Path:      u.Path,
		Query:     u.Query,
		Variables: u.Variables,
	})
}

// Body is a mode-tagged request payload; only the payload matching Mode is
// populated.
type Body struct {
	Mode       string         `json:"mode"`
	Raw        string         `json:"raw,omitempty"`
	Options    *BodyOptions   `json:"options,omitempty"`
	FormData   []FormParam    `json:"formdata,omitempty"`
	URLEncoded []FormParam    `json:"urlencoded,omitempty"`
	GraphQL    map[string]any `json:"graphql,omitempty"`
	File       *BodyFile      `json:"file,omitempty"`
}

// Body modes.
const (
	BodyModeRaw        = "raw"
	BodyModeFormData   = "formdata"
	BodyModeURLEncoded = "urlencoded"
	BodyModeBinary     = "file"
	BodyModeGraphQL    = "graphql"
)

// BodyOptions declares the sub-language of a raw body.
type BodyOptions struct {
	Raw *RawOptions `json:"raw,omitempty"`
}

// RawOptions names the raw body language (json, xml, text).
type RawOptions struct {
	Language string `json:"language,omitempty"`
}

// FormParam is a formdata or urlencoded row. Type is "text" or "file".
type FormParam struct {
	Key         string `json:"key"`
	Value       string `json:"value,omitempty"`
	Type        string `json:"type,omitempty"`
	Src         string `json:"src,omitempty"`
	Description string `json:"description,omitempty"`
}

// BodyFile references a binary body source.
type BodyFile struct {
	Src string `json:"src"`
}

// Variable is a key/value pair with a secrecy classification.
type Variable struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Enabled     *bool  `json:"enabled,omitempty"`
}

// Variable types.
const (
	VariableDefault = "default"
	VariableSecret  = "secret"
)

// Response is a saved example response on a request item.
type Response struct {
	Name            string   `json:"name"`
	OriginalRequest *Request `json:"originalRequest,omitempty"`
	Status          string   `json:"status,omitempty"`
	Code            int      `json:"code,omitempty"`
	Headers         []Header `json:"header,omitempty"`
	Body            string   `json:"body,omitempty"`
	PreviewLanguage string   `json:"_postman_previewlanguage,omitempty"`
}

// CountItems returns the number of items in the tree, folders included.
func CountItems(items []Item) int {
	n := 0
	for _, it := range items {
		n++
		if it.Kind == KindFolder {
			n += CountItems(it.Items)
		}
	}
	return n
}

// HasBody reports whether the request carries a populated body.
func (r *Request) HasBody() bool {
	if r.Body == nil {
		return false
	}
	switch r.Body.Mode {
	case BodyModeRaw:
		return r.Body.Raw != ""
	case BodyModeFormData:
		return len(r.Body.FormData) > 0
	case BodyModeURLEncoded:
		return len(r.Body.URLEncoded) > 0
	case BodyModeGraphQL:
		return len(r.Body.GraphQL) > 0
	case BodyModeBinary:
		return r.Body.File != nil
	}
	return false
}

// HeaderValue returns the value of the first header matching key
// case-insensitively, or "".
func (r *Request) HeaderValue(key string) string {
	for _, h := range r.Headers {
		if strings.EqualFold(h.Key, key) {
			return h.Value
		}
	}
	return ""
}
