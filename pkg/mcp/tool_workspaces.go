package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/getpostkit/postkit/pkg/postman"
)

// Workspace tool handlers. Each is a thin translation layer over the remote
// API client: extract arguments, call, render the result as text.

func handleListWorkspaces(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	workspaces, err := client.ListWorkspaces(context.Background())
	if err != nil {
		return ToolResultErrorf("Failed to list workspaces: %s", apiError(err)), nil
	}

	if len(workspaces) == 0 {
		return ToolResultText("No workspaces found."), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d workspace(s):\n\n", len(workspaces))
	for _, ws := range workspaces {
		fmt.Fprintf(&sb, "- %s (ID: %s, Type: %s", ws.Name, ws.ID, ws.Type)
		if ws.Visibility != "" {
			fmt.Fprintf(&sb, ", Visibility: %s", ws.Visibility)
		}
		sb.WriteString(")\n")
	}
	return ToolResultText(sb.String()), nil
}

func handleGetWorkspace(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	workspaceID := getString(args, "workspaceId", "")
	if workspaceID == "" {
		return ToolResultError("workspaceId is required"), nil
	}

	ws, err := client.GetWorkspace(context.Background(), workspaceID)
	if err != nil {
		return ToolResultErrorf("Failed to get workspace: %s", apiError(err)), nil
	}

	return ToolResultJSON(ws)
}

func handleCreateWorkspace(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	name := getString(args, "name", "")
	if name == "" {
		return ToolResultError("name is required"), nil
	}

	req := postman.WorkspaceRequest{
		Name:        name,
		Type:        getString(args, "type", "personal"),
		Description: getString(args, "description", ""),
	}

	ws, err := client.CreateWorkspace(context.Background(), req)
	if err != nil {
		return ToolResultErrorf("Failed to create workspace: %s", apiError(err)), nil
	}

	return ToolResultText(fmt.Sprintf("Workspace created successfully:\n%s", mustJSON(ws))), nil
}

func handleUpdateWorkspace(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	workspaceID := getString(args, "workspaceId", "")
	if workspaceID == "" {
		return ToolResultError("workspaceId is required"), nil
	}

	ctx := context.Background()

	// Partial update: fetch current state, overlay the provided fields.
	current, err := client.GetWorkspace(ctx, workspaceID)
	if err != nil {
		return ToolResultErrorf("Failed to get workspace: %s", apiError(err)), nil
	}

	req := postman.WorkspaceRequest{
		Name:        getString(args, "name", current.Name),
		Type:        current.Type,
		Description: getString(args, "description", current.Description),
	}

	ws, err := client.UpdateWorkspace(ctx, workspaceID, req)
	if err != nil {
		return ToolResultErrorf("Failed to update workspace: %s", apiError(err)), nil
	}

	return ToolResultText(fmt.Sprintf("Workspace updated successfully:\n%s", mustJSON(ws))), nil
}

func handleDeleteWorkspace(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	workspaceID := getString(args, "workspaceId", "")
	if workspaceID == "" {
		return ToolResultError("workspaceId is required"), nil
	}

	if err := client.DeleteWorkspace(context.Background(), workspaceID); err != nil {
		return ToolResultErrorf("Failed to delete workspace: %s", apiError(err)), nil
	}

	return ToolResultText(fmt.Sprintf("Workspace %s deleted successfully", workspaceID)), nil
}
