package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/getpostkit/postkit/internal/id"
	"github.com/getpostkit/postkit/pkg/postman"
)

// Request and folder tool handlers. The remote API has no per-request
// endpoints, so every operation here fetches the collection, rebuilds the
// item tree with the pure helpers in pkg/postman, and PUTs the whole
// document back.

func handleCreateRequest(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	collectionID := getString(args, "collectionId", "")
	if collectionID == "" {
		return ToolResultError("collectionId is required"), nil
	}
	name := getString(args, "name", "")
	if name == "" {
		return ToolResultError("name is required"), nil
	}
	rawURL := getString(args, "url", "")
	if rawURL == "" {
		return ToolResultError("url is required"), nil
	}
	method := getString(args, "method", "")
	if method == "" {
		return ToolResultError("method is required"), nil
	}

	ctx := context.Background()

	col, err := client.GetCollection(ctx, collectionID)
	if err != nil {
		return ToolResultErrorf("Failed to fetch collection: %s", apiError(err)), nil
	}

	body, err := parseBody(getMap(args, "body"))
	if err != nil {
		return ToolResultErrorf("Invalid body: %v", err), nil
	}

	item := postman.Item{
		Kind: postman.KindRequest,
		ID:   id.UUID(),
		Name: name,
		Request: &postman.Request{
			Method:      method,
			URL:         postman.StringURL(rawURL),
			Headers:     parseHeaders(getSlice(args, "headers")),
			Body:        body,
			Description: getString(args, "description", ""),
		},
	}

	items, err := postman.InsertItem(col.Items, getString(args, "folderId", ""), item)
	if err != nil {
		return ToolResultErrorf("Failed to create request: %v", err), nil
	}
	col.Items = items

	if _, err := client.UpdateCollection(ctx, collectionID, col); err != nil {
		return ToolResultErrorf("Failed to update collection: %s", apiError(err)), nil
	}

	return ToolResultText(fmt.Sprintf("Request created successfully:\n%s", mustJSON(item))), nil
}

func handleGetRequest(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	collectionID := getString(args, "collectionId", "")
	if collectionID == "" {
		return ToolResultError("collectionId is required"), nil
	}
	requestID := getString(args, "requestId", "")
	if requestID == "" {
		return ToolResultError("requestId is required"), nil
	}

	col, err := client.GetCollection(context.Background(), collectionID)
	if err != nil {
		return ToolResultErrorf("Failed to fetch collection: %s", apiError(err)), nil
	}

	item, ok := postman.FindItem(col.Items, requestID)
	if !ok || item.Kind != postman.KindRequest {
		return ToolResultErrorf("Request %s not found in collection", requestID), nil
	}

	return ToolResultJSON(item)
}

func handleUpdateRequest(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	collectionID := getString(args, "collectionId", "")
	if collectionID == "" {
		return ToolResultError("collectionId is required"), nil
	}
	requestID := getString(args, "requestId", "")
	if requestID == "" {
		return ToolResultError("requestId is required"), nil
	}

	ctx := context.Background()

	col, err := client.GetCollection(ctx, collectionID)
	if err != nil {
		return ToolResultErrorf("Failed to fetch collection: %s", apiError(err)), nil
	}

	existing, ok := postman.FindItem(col.Items, requestID)
	if !ok || existing.Kind != postman.KindRequest {
		return ToolResultErrorf("Request %s not found in collection", requestID), nil
	}

	body, err := parseBody(getMap(args, "body"))
	if err != nil {
		return ToolResultErrorf("Invalid body: %v", err), nil
	}

	var updated postman.Item
	items, _ := postman.ReplaceItem(col.Items, requestID, func(it postman.Item) postman.Item {
		it.Name = getString(args, "name", it.Name)
		req := *it.Request
		req.Method = getString(args, "method", req.Method)
		req.Description = getString(args, "description", req.Description)
		if rawURL := getString(args, "url", ""); rawURL != "" {
			req.URL = postman.StringURL(rawURL)
		}
		if headers := getSlice(args, "headers"); headers != nil {
			req.Headers = parseHeaders(headers)
		}
		if body != nil {
			req.Body = body
		}
		it.Request = &req
		updated = it
		return it
	})
	col.Items = items

	if _, err := client.UpdateCollection(ctx, collectionID, col); err != nil {
		return ToolResultErrorf("Failed to update collection: %s", apiError(err)), nil
	}

	return ToolResultText(fmt.Sprintf("Request updated successfully:\n%s", mustJSON(updated))), nil
}

func handleDeleteRequest(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	collectionID := getString(args, "collectionId", "")
	if collectionID == "" {
		return ToolResultError("collectionId is required"), nil
	}
	requestID := getString(args, "requestId", "")
	if requestID == "" {
		return ToolResultError("requestId is required"), nil
	}

	ctx := context.Background()

	col, err := client.GetCollection(ctx, collectionID)
	if err != nil {
		return ToolResultErrorf("Failed to fetch collection: %s", apiError(err)), nil
	}

	items, removed, ok := postman.RemoveItem(col.Items, requestID)
	if !ok || removed.Kind != postman.KindRequest {
		return ToolResultErrorf("Request %s not found in collection", requestID), nil
	}
	col.Items = items

	if _, err := client.UpdateCollection(ctx, collectionID, col); err != nil {
		return ToolResultErrorf("Failed to update collection: %s", apiError(err)), nil
	}

	return ToolResultText(fmt.Sprintf("Request %q deleted successfully", removed.Name)), nil
}

func handleCreateFolder(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	collectionID := getString(args, "collectionId", "")
	if collectionID == "" {
		return ToolResultError("collectionId is required"), nil
	}
	name := getString(args, "name", "")
	if name == "" {
		return ToolResultError("name is required"), nil
	}

	ctx := context.Background()

	col, err := client.GetCollection(ctx, collectionID)
	if err != nil {
		return ToolResultErrorf("Failed to fetch collection: %s", apiError(err)), nil
	}

	folder := postman.Item{
		Kind:        postman.KindFolder,
		ID:          id.UUID(),
		Name:        name,
		Description: getString(args, "description", ""),
		Items:       []postman.Item{},
	}

	items, err := postman.InsertItem(col.Items, getString(args, "parentFolderId", ""), folder)
	if err != nil {
		return ToolResultErrorf("Failed to create folder: %v", err), nil
	}
	col.Items = items

	if _, err := client.UpdateCollection(ctx, collectionID, col); err != nil {
		return ToolResultErrorf("Failed to update collection: %s", apiError(err)), nil
	}

	return ToolResultText(fmt.Sprintf("Folder created successfully:\n%s", mustJSON(folder))), nil
}

func handleUpdateFolder(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	collectionID := getString(args, "collectionId", "")
	if collectionID == "" {
		return ToolResultError("collectionId is required"), nil
	}
	folderID := getString(args, "folderId", "")
	if folderID == "" {
		return ToolResultError("folderId is required"), nil
	}

	ctx := context.Background()

	col, err := client.GetCollection(ctx, collectionID)
	if err != nil {
		return ToolResultErrorf("Failed to fetch collection: %s", apiError(err)), nil
	}

	existing, ok := postman.FindItem(col.Items, folderID)
	if !ok || existing.Kind != postman.KindFolder {
		return ToolResultErrorf("Folder %s not found in collection", folderID), nil
	}

	var updated postman.Item
	items, _ := postman.ReplaceItem(col.Items, folderID, func(it postman.Item) postman.Item {
		it.Name = getString(args, "name", it.Name)
		it.Description = getString(args, "description", it.Description)
		updated = it
		return it
	})
	col.Items = items

	if _, err := client.UpdateCollection(ctx, collectionID, col); err != nil {
		return ToolResultErrorf("Failed to update collection: %s", apiError(err)), nil
	}

	return ToolResultText(fmt.Sprintf("Folder updated successfully:\n%s", mustJSON(updated))), nil
}

func handleDeleteFolder(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	collectionID := getString(args, "collectionId", "")
	if collectionID == "" {
		return ToolResultError("collectionId is required"), nil
	}
	folderID := getString(args, "folderId", "")
	if folderID == "" {
		return ToolResultError("folderId is required"), nil
	}

	ctx := context.Background()

	col, err := client.GetCollection(ctx, collectionID)
	if err != nil {
		return ToolResultErrorf("Failed to fetch collection: %s", apiError(err)), nil
	}

	items, removed, ok := postman.RemoveItem(col.Items, folderID)
	if !ok || removed.Kind != postman.KindFolder {
		return ToolResultErrorf("Folder %s not found in collection", folderID), nil
	}
	col.Items = items

	if _, err := client.UpdateCollection(ctx, collectionID, col); err != nil {
		return ToolResultErrorf("Failed to update collection: %s", apiError(err)), nil
	}

	return ToolResultText(fmt.Sprintf("Folder %q and its contents deleted successfully", removed.Name)), nil
}

func handleMoveRequest(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	collectionID := getString(args, "collectionId", "")
	if collectionID == "" {
		return ToolResultError("collectionId is required"), nil
	}
	requestID := getString(args, "requestId", "")
	if requestID == "" {
		return ToolResultError("requestId is required"), nil
	}
	targetFolderID := getString(args, "targetFolderId", "")

	ctx := context.Background()

	col, err := client.GetCollection(ctx, collectionID)
	if err != nil {
		return ToolResultErrorf("Failed to fetch collection: %s", apiError(err)), nil
	}

	items, err := postman.MoveItem(col.Items, requestID, targetFolderID)
	if err != nil {
		return ToolResultErrorf("Failed to move request: %v", err), nil
	}
	col.Items = items

	if _, err := client.UpdateCollection(ctx, collectionID, col); err != nil {
		return ToolResultErrorf("Failed to update collection: %s", apiError(err)), nil
	}

	target := "collection root"
	if targetFolderID != "" {
		target = "folder " + targetFolderID
	}
	return ToolResultText(fmt.Sprintf("Request %s moved to %s successfully", requestID, target)), nil
}

// parseHeaders converts tool argument rows into request headers. Rows
// without a key are skipped.
func parseHeaders(rows []interface{}) []postman.Header {
	headers := make([]postman.Header, 0, len(rows))
	for _, row := range rows {
		m, ok := row.(map[string]interface{})
		if !ok {
			continue
		}
		key := getString(m, "key", "")
		if key == "" {
			continue
		}
		headers = append(headers, postman.Header{
			Key:         key,
			Value:       getString(m, "value", ""),
			Description: getString(m, "description", ""),
			Disabled:    getBool(m, "disabled", false),
		})
	}
	return headers
}

// parseBody converts a body argument into a request body via a JSON
// round-trip, so nested formdata/urlencoded rows decode through the same
// tags as the wire format. Returns nil when no body was given.
func parseBody(raw map[string]interface{}) (*postman.Body, error) {
	if raw == nil {
		return nil, nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var body postman.Body
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, err
	}
	if body.Mode == "" {
		return nil, fmt.Errorf("body mode is required")
	}
	return &body, nil
}
