// Package postman defines the collection data model and the remote API client.
//
// The data model mirrors the Collection Format v2.1 wire shapes: a Collection
// holds an info block, an ordered tree of Items (requests and folders), and
// optional variables. Items are a tagged union; the discriminant is decided
// once when a document is unmarshaled, so consumers switch on Item.Kind
// instead of probing for field presence.
//
// URLs come off the wire in two encodings, a bare string or a structured
// object. URL preserves which encoding the source used (Structured reports
// it) because downstream enrichment only applies to structured URLs.
//
// The Client interface wraps the remote management API. Construct one with
// NewClient and functional options:
//
//	client := postman.NewClient(apiKey,
//	    postman.WithTimeout(10*time.Second),
//	)
//	cols, err := client.ListCollections(ctx, "")
//
// All client methods return *APIError for remote failures, with status codes
// mapped to actionable messages (invalid key, missing resource, rate limit).
package postman
