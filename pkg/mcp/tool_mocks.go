package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/getpostkit/postkit/pkg/postman"
	"github.com/getpostkit/postkit/pkg/synth"
)

// Mock server tool handlers.

func handleListMockServers(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	workspaceID := getString(args, "workspaceId", "")

	mocks, err := client.ListMockServers(context.Background(), workspaceID)
	if err != nil {
		return ToolResultErrorf("Failed to list mock servers: %s", apiError(err)), nil
	}

	if len(mocks) == 0 {
		return ToolResultText("No mock servers found."), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d mock server(s):\n\n", len(mocks))
	for _, mock := range mocks {
		fmt.Fprintf(&sb, "- %s (ID: %s", mock.Name, mock.ID)
		if mock.URL != "" {
			fmt.Fprintf(&sb, ", URL: %s", mock.URL)
		}
		sb.WriteString(")\n")
	}
	return ToolResultText(sb.String()), nil
}

func handleGetMockServer(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	mockID := getString(args, "mockId", "")
	if mockID == "" {
		return ToolResultError("mockId is required"), nil
	}

	mock, err := client.GetMockServer(context.Background(), mockID)
	if err != nil {
		return ToolResultErrorf("Failed to get mock server: %s", apiError(err)), nil
	}

	return ToolResultJSON(mock)
}

func handleCreateMockServer(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	name := getString(args, "name", "")
	if name == "" {
		return ToolResultError("name is required"), nil
	}
	collectionID := getString(args, "collectionId", "")
	if collectionID == "" {
		return ToolResultError("collectionId is required"), nil
	}

	config, err := parseMockConfig(getMap(args, "config"))
	if err != nil {
		return ToolResultErrorf("Invalid config: %v", err), nil
	}

	req := postman.MockServerRequest{
		Name:           name,
		CollectionUID:  collectionID,
		EnvironmentUID: getString(args, "environmentId", ""),
		Private:        getBool(args, "private", false),
		Config:         config,
	}

	mock, err := client.CreateMockServer(context.Background(), "", req)
	if err != nil {
		return ToolResultErrorf("Failed to create mock server: %s", apiError(err)), nil
	}

	return ToolResultText(fmt.Sprintf("Mock server created successfully:\n%s", mustJSON(mock))), nil
}

func handleCreateAIMockServer(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	name := getString(args, "name", "")
	if name == "" {
		return ToolResultError("name is required"), nil
	}
	collectionID := getString(args, "collectionId", "")
	if collectionID == "" {
		return ToolResultError("collectionId is required"), nil
	}

	ctx := context.Background()

	col, err := client.GetCollection(ctx, collectionID)
	if err != nil {
		return ToolResultErrorf("Failed to fetch collection: %s", apiError(err)), nil
	}

	// Replace saved responses with generated examples, then push the
	// enriched collection back before binding the mock server to it.
	enriched, requests, examples := synth.AttachExamples(col, synth.ExampleOptions{
		Realistic:     getBool(args, "generateRealisticData", true),
		IncludeErrors: getBool(args, "includeErrorResponses", true),
	})

	if _, err := client.UpdateCollection(ctx, collectionID, enriched); err != nil {
		return ToolResultErrorf("Failed to update collection with examples: %s", apiError(err)), nil
	}

	req := postman.MockServerRequest{
		Name:           name,
		CollectionUID:  collectionID,
		EnvironmentUID: getString(args, "environmentId", ""),
		Private:        getBool(args, "private", false),
	}
	if delay := getString(args, "responseDelay", ""); delay != "" {
		req.Config = &postman.MockConfig{
			Delay: &postman.Delay{Type: "fixed", Preset: delay},
		}
	}

	mock, err := client.CreateMockServer(ctx, "", req)
	if err != nil {
		return ToolResultErrorf("Failed to create mock server: %s", apiError(err)), nil
	}

	summary := fmt.Sprintf("Generated %d example response(s) across %d request(s).", examples, requests)
	return ToolResultText(fmt.Sprintf(
		"AI-powered mock server created successfully!\n\n%s\n\nMock Server Details:\n%s",
		summary, mustJSON(mock),
	)), nil
}

func handleUpdateMockServer(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	mockID := getString(args, "mockId", "")
	if mockID == "" {
		return ToolResultError("mockId is required"), nil
	}

	ctx := context.Background()

	current, err := client.GetMockServer(ctx, mockID)
	if err != nil {
		return ToolResultErrorf("Failed to get mock server: %s", apiError(err)), nil
	}

	req := postman.MockServerRequest{
		Name:           getString(args, "name", current.Name),
		CollectionUID:  current.CollectionUID,
		EnvironmentUID: getString(args, "environmentId", current.EnvironmentUID),
		Private:        current.Private,
		Config:         current.Config,
	}
	if private := getBoolPtr(args, "private"); private != nil {
		req.Private = *private
	}
	if rawConfig := getMap(args, "config"); rawConfig != nil {
		config, err := parseMockConfig(rawConfig)
		if err != nil {
			return ToolResultErrorf("Invalid config: %v", err), nil
		}
		req.Config = config
	}

	mock, err := client.UpdateMockServer(ctx, mockID, req)
	if err != nil {
		return ToolResultErrorf("Failed to update mock server: %s", apiError(err)), nil
	}

	return ToolResultText(fmt.Sprintf("Mock server updated successfully:\n%s", mustJSON(mock))), nil
}

func handleDeleteMockServer(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	mockID := getString(args, "mockId", "")
	if mockID == "" {
		return ToolResultError("mockId is required"), nil
	}

	if err := client.DeleteMockServer(context.Background(), mockID); err != nil {
		return ToolResultErrorf("Failed to delete mock server: %s", apiError(err)), nil
	}

	return ToolResultText(fmt.Sprintf("Mock server %s deleted successfully", mockID)), nil
}

func handleGetMockServerCallLogs(args map[string]interface{}, session *MCPSession, server *Server) (*ToolResult, error) {
	client, errResult := requireClient(server)
	if errResult != nil {
		return errResult, nil
	}

	mockID := getString(args, "mockId", "")
	if mockID == "" {
		return ToolResultError("mockId is required"), nil
	}
	limit := getInt(args, "limit", 0)

	logs, err := client.MockCallLogs(context.Background(), mockID, limit)
	if err != nil {
		return ToolResultErrorf("Failed to get call logs: %s", apiError(err)), nil
	}

	if len(logs) == 0 {
		return ToolResultText("No call logs found."), nil
	}

	return ToolResultText(fmt.Sprintf("Found %d call log(s):\n%s", len(logs), mustJSON(logs))), nil
}

// parseMockConfig converts a config argument into a mock server config via
// a JSON round-trip. Returns nil when no config was given.
func parseMockConfig(raw map[string]interface{}) (*postman.MockConfig, error) {
	if raw == nil {
		return nil, nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var config postman.MockConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	return &config, nil
}
