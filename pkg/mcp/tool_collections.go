package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/getpostkit/postkit/pkg/postman"
)

// Collection tool handlers.

func handleListCollections(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	workspaceID := getString(args, "workspaceId", "")

	collections, err := client.ListCollections(context.Background(), workspaceID)
	if err != nil {
		return ToolResultErrorf("Failed to list collections: %s", apiError(err)), nil
	}

	if len(collections) == 0 {
		return ToolResultText("No collections found."), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d collection(s):\n\n", len(collections))
	for _, col := range collections {
		fmt.Fprintf(&sb, "- %s (ID: %s", col.Name, col.ID)
		if col.UID != "" {
			fmt.Fprintf(&sb, ", UID: %s", col.UID)
		}
		sb.WriteString(")\n")
	}
	return ToolResultText(sb.String()), nil
}

func handleGetCollection(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	collectionID := getString(args, "collectionId", "")
	if collectionID == "" {
		return ToolResultError("collectionId is required"), nil
	}

	col, err := client.GetCollection(context.Background(), collectionID)
	if err != nil {
		return ToolResultErrorf("Failed to get collection: %s", apiError(err)), nil
	}

	return ToolResultJSON(col)
}

func handleCreateCollection(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	name := getString(args, "name", "")
	if name == "" {
		return ToolResultError("name is required"), nil
	}

	col := &postman.Collection{
		Info: postman.Info{
			Name:        name,
			Description: getString(args, "description", ""),
			Schema:      postman.SchemaV21,
		},
		Items: []postman.Item{},
	}

	summary, err := client.CreateCollection(context.Background(), getString(args, "workspaceId", ""), col)
	if err != nil {
		return ToolResultErrorf("Failed to create collection: %s", apiError(err)), nil
	}

	return ToolResultText(fmt.Sprintf("Collection created successfully:\n%s", mustJSON(summary))), nil
}

func handleUpdateCollection(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	collectionID := getString(args, "collectionId", "")
	if collectionID == "" {
		return ToolResultError("collectionId is required"), nil
	}

	ctx := context.Background()

	// The remote API replaces the whole document on update, so fetch the
	// current collection and overlay the metadata fields.
	col, err := client.GetCollection(ctx, collectionID)
	if err != nil {
		return ToolResultErrorf("Failed to fetch collection: %s", apiError(err)), nil
	}

	col.Info.Name = getString(args, "name", col.Info.Name)
	col.Info.Description = getString(args, "description", col.Info.Description)

	summary, err := client.UpdateCollection(ctx, collectionID, col)
	if err != nil {
		return ToolResultErrorf("Failed to update collection: %s", apiError(err)), nil
	}

	return ToolResultText(fmt.Sprintf("Collection updated successfully:\n%s", mustJSON(summary))), nil
}

func handleDeleteCollection(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	collectionID := getString(args, "collectionId", "")
	if collectionID == "" {
		return ToolResultError("collectionId is required"), nil
	}

	if err := client.DeleteCollection(context.Background(), collectionID); err != nil {
		return ToolResultErrorf("Failed to delete collection: %s", apiError(err)), nil
	}

	return ToolResultText(fmt.Sprintf("Collection %s deleted successfully", collectionID)), nil
}
