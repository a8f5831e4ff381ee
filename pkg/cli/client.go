package cli

import (
	"fmt"
	"os"

	"github.com/getpostkit/postkit/pkg/mcp"
	"github.com/getpostkit/postkit/pkg/postman"
)

// resolveAPIKey returns the API key from the --api-key flag or the
// environment, in that order.
func resolveAPIKey() string {
	if apiKey != "" {
		return apiKey
	}
	return os.Getenv(mcp.APIKeyEnv)
}

// newClient builds a remote API client from the global flags.
func newClient() (postman.Client, error) {
	key := resolveAPIKey()
	if key == "" {
		return nil, fmt.Errorf("no API key configured\n\nSet the %s environment variable or pass --api-key.\nKeys can be generated at https://go.postman.co/settings/me/api-keys", mcp.APIKeyEnv)
	}

	opts := []postman.ClientOption{}
	if baseURL != "" {
		opts = append(opts, postman.WithBaseURL(baseURL))
	}
	return postman.NewClient(key, opts...), nil
}
