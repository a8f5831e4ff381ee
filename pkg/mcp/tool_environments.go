package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/getpostkit/postkit/pkg/postman"
)

// Environment tool handlers.

func handleListEnvironments(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	workspaceID := getString(args, "workspaceId", "")

	environments, err := client.ListEnvironments(context.Background(), workspaceID)
	if err != nil {
		return ToolResultErrorf("Failed to list environments: %s", apiError(err)), nil
	}

	if len(environments) == 0 {
		return ToolResultText("No environments found."), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d environment(s):\n\n", len(environments))
	for _, env := range environments {
		fmt.Fprintf(&sb, "- %s (ID: %s)\n", env.Name, env.ID)
	}
	return ToolResultText(sb.String()), nil
}

func handleGetEnvironment(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	environmentID := getString(args, "environmentId", "")
	if environmentID == "" {
		return ToolResultError("environmentId is required"), nil
	}

	env, err := client.GetEnvironment(context.Background(), environmentID)
	if err != nil {
		return ToolResultErrorf("Failed to get environment: %s", apiError(err)), nil
	}

	return ToolResultJSON(env)
}

func handleCreateEnvironment(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	name := getString(args, "name", "")
	if name == "" {
		return ToolResultError("name is required"), nil
	}

	env := &postman.Environment{
		Name:   name,
		Values: parseVariables(getSlice(args, "values")),
	}

	created, err := client.CreateEnvironment(context.Background(), getString(args, "workspaceId", ""), env)
	if err != nil {
		return ToolResultErrorf("Failed to create environment: %s", apiError(err)), nil
	}

	return ToolResultText(fmt.Sprintf("Environment created successfully:\n%s", mustJSON(created))), nil
}

func handleUpdateEnvironment(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	environmentID := getString(args, "environmentId", "")
	if environmentID == "" {
		return ToolResultError("environmentId is required"), nil
	}

	ctx := context.Background()

	current, err := client.GetEnvironment(ctx, environmentID)
	if err != nil {
		return ToolResultErrorf("Failed to get environment: %s", apiError(err)), nil
	}

	env := &postman.Environment{
		Name:   getString(args, "name", current.Name),
		Values: current.Values,
	}
	if values := getSlice(args, "values"); values != nil {
		env.Values = parseVariables(values)
	}

	updated, err := client.UpdateEnvironment(ctx, environmentID, env)
	if err != nil {
		return ToolResultErrorf("Failed to update environment: %s", apiError(err)), nil
	}

	return ToolResultText(fmt.Sprintf("Environment updated successfully:\n%s", mustJSON(updated))), nil
}

func handleDeleteEnvironment(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	environmentID := getString(args, "environmentId", "")
	if environmentID == "" {
		return ToolResultError("environmentId is required"), nil
	}

	if err := client.DeleteEnvironment(context.Background(), environmentID); err != nil {
		return ToolResultErrorf("Failed to delete environment: %s", apiError(err)), nil
	}

	return ToolResultText(fmt.Sprintf("Environment %s deleted successfully", environmentID)), nil
}

// parseVariables converts tool argument rows into environment variables.
// Rows without a key are skipped; enabled defaults to true.
func parseVariables(rows []interface{}) []postman.Variable {
	vars := make([]postman.Variable, 0, len(rows))
	for _, row := range rows {
		m, ok := row.(map[string]interface{})
		if !ok {
			continue
		}
		key := getString(m, "key", "")
		if key == "" {
			continue
		}
		v := postman.Variable{
			Key:   key,
			Value: getString(m, "value", ""),
			Type:  getString(m, "type", postman.VariableDefault),
		}
		if enabled := getBoolPtr(m, "enabled"); enabled != nil {
			v.Enabled = enabled
		}
		vars = append(vars, v)
	}
	return vars
}
