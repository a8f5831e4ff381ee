package export

import (
	"context"
	"fmt"

	"github.com/getpostkit/postkit/pkg/postman"
)

// fakeClient implements the collection surface the export operations touch.
// Unimplemented methods panic via the embedded nil interface.
type fakeClient struct {
	postman.Client

	collections map[string]*postman.Collection
	summaries   []*postman.CollectionSummary

	created map[string]*postman.Collection
	updated map[string]*postman.Collection

	getErr    error
	listErr   error
	createErr error
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		collections: make(map[string]*postman.Collection),
		created:     make(map[string]*postman.Collection),
		updated:     make(map[string]*postman.Collection),
	}
}

func (f *fakeClient) GetCollection(ctx context.Context, id string) (*postman.Collection, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	col, ok := f.collections[id]
	if !ok {
		return nil, &postman.APIError{StatusCode: 404, Message: "resource not found"}
	}
	return col, nil
}

func (f *fakeClient) ListCollections(ctx context.Context, workspaceID string) ([]*postman.CollectionSummary, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.summaries, nil
}

func (f *fakeClient) CreateCollection(ctx context.Context, workspaceID string, col *postman.Collection) (*postman.CollectionSummary, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	id := fmt.Sprintf("col-%d", len(f.created)+1)
	f.created[id] = col
	return &postman.CollectionSummary{ID: id, Name: col.Info.Name}, nil
}

func (f *fakeClient) UpdateCollection(ctx context.Context, id string, col *postman.Collection) (*postman.CollectionSummary, error) {
	f.updated[id] = col
	return &postman.CollectionSummary{ID: id, Name: col.Info.Name}, nil
}

// sampleCollection builds a small collection exercising both URL encodings,
// a folder, and a body-less POST.
func sampleCollection() *postman.Collection {
	listURL := postman.StructuredURL("https://api.example.com/users?page=1")
	listURL.Host = []string{"api", "example", "com"}
	listURL.Path = []string{"users"}
	listURL.Query = []postman.QueryParam{{Key: "page", Value: "1"}}

	return &postman.Collection{
		Info: postman.Info{Name: "Sample API", Description: "demo"},
		Items: []postman.Item{
			{
				Kind: postman.KindRequest,
				Name: "List Users",
				Request: &postman.Request{
					Method: "GET",
					URL:    listURL,
					Headers: []postman.Header{
						{Key: "Authorization", Value: "Bearer {{access_token}}"},
					},
				},
			},
			{
				Kind: postman.KindFolder,
				Name: "Admin",
				Items: []postman.Item{
					{
						Kind: postman.KindRequest,
						Name: "Create User",
						Request: &postman.Request{
							Method: "POST",
							URL:    postman.StringURL("{{base_url}}/users"),
						},
					},
				},
			},
		},
	}
}
