package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/getpostkit/postkit/pkg/logging"
	"github.com/getpostkit/postkit/pkg/postman"
)

// ServerVersion is the postkit server version.
const ServerVersion = "0.2.0"

// Server is the MCP protocol server.
type Server struct {
	config     *Config
	client     postman.Client
	sessions   *SessionManager
	tools      *ToolRegistry
	httpServer *http.Server
	stopCh     chan struct{}
	mu         sync.RWMutex
	running    bool
	log        *slog.Logger
}

// NewServer creates a new MCP server. The client talks to the remote
// management API; when nil, one is built from the config's API key.
func NewServer(cfg *Config, client postman.Client) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if client == nil && cfg.APIKey != "" {
		opts := []postman.ClientOption{}
		if cfg.BaseURL != "" {
			opts = append(opts, postman.WithBaseURL(cfg.BaseURL))
		}
		client = postman.NewClient(cfg.APIKey, opts...)
	}

	s := &Server{
		config:   cfg,
		client:   client,
		sessions: NewSessionManager(cfg),
		stopCh:   make(chan struct{}),
		log:      logging.Nop(),
	}

	// Initialize tool registry with handlers
	s.tools = NewToolRegistry(s)

	return s
}

// Start starts the MCP HTTP server.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("MCP server is already running")
	}

	if err := s.config.Validate(); err != nil {
		return fmt.Errorf("invalid MCP config: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc(s.config.Path, s.handleMCP)

	s.httpServer = &http.Server{
		Addr:         s.config.Address(),
		Handler:      s.withMiddleware(mux),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	// Start session cleanup routine
	s.sessions.StartCleanupRoutine(time.Minute, s.stopCh)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("MCP server error", "error", err)
		}
	}()

	s.running = true
	return nil
}

// Stop gracefully shuts down the MCP server.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	close(s.stopCh)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("MCP server shutdown: %w", err)
	}

	s.sessions.Close()
	s.running = false
	return nil
}

// Handler returns the HTTP handler for the MCP server.
// This is useful for testing without starting the HTTP server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(s.config.Path, s.handleMCP)
	return s.withMiddleware(mux)
}

// withMiddleware wraps the handler with CORS and origin validation.
func (s *Server) withMiddleware(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Localhost check if remote not allowed
		if !s.config.AllowRemote {
			if !isLocalhost(r.RemoteAddr) {
				http.Error(w, "Remote access not allowed", http.StatusForbidden)
				return
			}
		}

		// Origin validation
		origin := r.Header.Get(HeaderOrigin)
		if origin != "" && !s.isOriginAllowed(origin) {
			http.Error(w, "Origin not allowed", http.StatusForbidden)
			return
		}

		// CORS headers
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Mcp-Session-Id, MCP-Protocol-Version, Last-Event-ID")
		w.Header().Set("Access-Control-Expose-Headers", "Mcp-Session-Id")

		// Handle preflight
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		handler.ServeHTTP(w, r)
	})
}

// isLocalhost checks if the remote address is localhost.
func isLocalhost(remoteAddr string) bool {
	// Empty address is allowed (test environment or internal calls)
	if remoteAddr == "" {
		return true
	}

	// Remove port if present
	host := remoteAddr
	if idx := strings.LastIndex(remoteAddr, ":"); idx != -1 {
		host = remoteAddr[:idx]
	}
	// Handle IPv6 addresses in brackets
	host = strings.TrimPrefix(host, "[")
	host = strings.TrimSuffix(host, "]")

	return host == "127.0.0.1" || host == "localhost" || host == "::1"
}

// isOriginAllowed checks if the origin is in the allowed list.
func (s *Server) isOriginAllowed(origin string) bool {
	for _, allowed := range s.config.AllowedOrigins {
		if allowed == "*" {
			return true
		}
		if matchOrigin(origin, allowed) {
			return true
		}
	}
	return false
}

// matchOrigin matches an origin against a pattern (supports * wildcard for port).
func matchOrigin(origin, pattern string) bool {
	if origin == pattern {
		return true
	}

	// Handle wildcard patterns like "http://localhost:*"
	if strings.HasSuffix(pattern, ":*") {
		prefix := strings.TrimSuffix(pattern, "*")
		// Match origin starting with prefix followed by digits
		if strings.HasPrefix(origin, prefix) {
			rest := origin[len(prefix):]
			// Check if rest is all digits (port number)
			for _, c := range rest {
				if c < '0' || c > '9' {
					return false
				}
			}
			return len(rest) > 0
		}
	}

	return false
}

// handleMCP is the main handler for MCP requests.
func (s *Server) handleMCP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		// SSE stream
		s.handleSSE(w, r)
	case "POST":
		// JSON-RPC request
		s.handleJSONRPC(w, r)
	case "DELETE":
		// Session termination
		s.handleSessionDelete(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleJSONRPC handles JSON-RPC POST requests.
func (s *Server) handleJSONRPC(w http.ResponseWriter, r *http.Request) {
	// Parse the request
	req, parseErr := ParseRequest(r.Body)
	if parseErr != nil {
		s.writeError(w, nil, parseErr)
		return
	}

	// Get or create session
	sessionID := r.Header.Get(HeaderSessionID)
	var session *MCPSession

	// Initialize is special - creates a new session
	if req.Method == "initialize" {
		var err error
		session, err = s.sessions.Create()
		if err != nil {
			s.writeError(w, req.ID, InternalError(err))
			return
		}
		// Return session ID in header
		w.Header().Set(HeaderSessionID, session.ID)
	} else {
		// All other methods require an existing session
		if sessionID == "" {
			s.writeError(w, req.ID, SessionRequiredError())
			return
		}
		session = s.sessions.Get(sessionID)
		if session == nil {
			s.writeError(w, req.ID, SessionExpiredError(sessionID))
			return
		}
		session.Touch()
	}

	// Dispatch the request
	result, err := s.dispatch(session, req)

	// Handle notification (no response needed)
	if req.IsNotification() {
		w.WriteHeader(http.StatusAccepted)
		return
	}

	// Handle error
	if err != nil {
		s.writeError(w, req.ID, err)
		return
	}

	// Write success response
	s.writeSuccess(w, req.ID, result)
}

// dispatch routes the request to the appropriate handler.
func (s *Server) dispatch(session *MCPSession, req *JSONRPCRequest) (interface{}, *JSONRPCError) {
	switch req.Method {
	// Lifecycle methods
	case "initialize":
		return s.handleInitialize(session, req.Params)
	case "initialized":
		return s.handleInitialized(session)
	case "ping":
		return s.handlePing()

	// Tool methods
	case "tools/list":
		return s.handleToolsList(session)
	case "tools/call":
		return s.handleToolsCall(session, req.Params)

	default:
		return nil, MethodNotFoundError(req.Method)
	}
}

// handleInitialize handles the initialize request.
func (s *Server) handleInitialize(session *MCPSession, params json.RawMessage) (interface{}, *JSONRPCError) {
	initParams, err := UnmarshalParamsRequired[InitializeParams](params)
	if err != nil {
		return nil, err
	}

	// Negotiate protocol version: echo any supported version back.
	if !IsProtocolVersionSupported(initParams.ProtocolVersion) {
		return nil, ProtocolVersionError(initParams.ProtocolVersion, SupportedProtocolVersions)
	}

	// Store client info
	session.SetClientData(initParams.ProtocolVersion, initParams.ClientInfo, initParams.Capabilities)
	session.SetState(SessionStateInitialized)

	// Return server capabilities
	return &InitializeResult{
		ProtocolVersion: initParams.ProtocolVersion,
		Capabilities: ServerCapabilities{
			Tools: &ToolsCapability{
				ListChanged: false,
			},
		},
		ServerInfo: ServerInfo{
			Name:    "postkit",
			Version: ServerVersion,
		},
	}, nil
}

// handleInitialized handles the initialized notification.
func (s *Server) handleInitialized(session *MCPSession) (interface{}, *JSONRPCError) {
	if session.GetState() != SessionStateInitialized {
		return nil, NotInitializedError()
	}
	session.SetState(SessionStateReady)
	return nil, nil
}

// handlePing handles the ping request.
func (s *Server) handlePing() (interface{}, *JSONRPCError) {
	return map[string]interface{}{}, nil
}

// handleToolsList returns the list of available tools.
func (s *Server) handleToolsList(session *MCPSession) (interface{}, *JSONRPCError) {
	if session.GetState() != SessionStateReady {
		return nil, NotInitializedError()
	}

	return &ToolsListResult{
		Tools: s.tools.List(),
	}, nil
}

// handleToolsCall executes a tool.
func (s *Server) handleToolsCall(session *MCPSession, params json.RawMessage) (interface{}, *JSONRPCError) {
	if session.GetState() != SessionStateReady {
		return nil, NotInitializedError()
	}

	callParams, err := UnmarshalParamsRequired[ToolCallParams](params)
	if err != nil {
		return nil, err
	}

	result, toolErr := s.tools.Execute(callParams.Name, callParams.Arguments, session)
	if toolErr != nil {
		return result, nil // Tool errors are returned in the result, not as JSON-RPC errors
	}

	return result, nil
}

// handleSSE handles SSE GET requests.
func (s *Server) handleSSE(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(HeaderSessionID)
	if sessionID == "" {
		http.Error(w, "Session required", http.StatusBadRequest)
		return
	}

	session := s.sessions.Get(sessionID)
	if session == nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	if session.GetState() != SessionStateReady {
		http.Error(w, "Session not ready", http.StatusBadRequest)
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}
	sse.WriteHeaders()

	// Event loop
	ctx := r.Context()
	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case <-ctx.Done():
			sse.Close()
			return

		case <-keepalive.C:
			if err := sse.WriteKeepalive(); err != nil {
				sse.Close()
				return
			}

		case notif, ok := <-session.EventChannel:
			if !ok {
				sse.Close()
				return
			}

			data, _ := json.Marshal(notif)
			if err := sse.WriteEvent(&SSEEvent{Event: "message", Data: string(data)}); err != nil {
				sse.Close()
				return
			}
		}
	}
}

// handleSessionDelete handles session termination.
func (s *Server) handleSessionDelete(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(HeaderSessionID)
	if sessionID == "" {
		http.Error(w, "Session required", http.StatusBadRequest)
		return
	}

	s.sessions.Delete(sessionID)
	w.WriteHeader(http.StatusNoContent)
}

// writeError writes a JSON-RPC error response.
func (s *Server) writeError(w http.ResponseWriter, id interface{}, err *JSONRPCError) {
	resp := ErrorResponse(id, err)
	w.Header().Set(HeaderContentType, ContentTypeJSON)
	w.WriteHeader(http.StatusOK) // JSON-RPC errors are returned with 200 OK
	json.NewEncoder(w).Encode(resp)
}

// writeSuccess writes a JSON-RPC success response.
func (s *Server) writeSuccess(w http.ResponseWriter, id interface{}, result interface{}) {
	resp := SuccessResponse(id, result)
	w.Header().Set(HeaderContentType, ContentTypeJSON)
	json.NewEncoder(w).Encode(resp)
}

// initSession registers an externally created session with the manager; the
// stdio transport calls this for its single session.
func (s *Server) initSession(session *MCPSession) {
	s.sessions.Add(session)
}

// Client returns the remote API client.
func (s *Server) Client() postman.Client {
	return s.client
}

// Sessions returns the session manager.
func (s *Server) Sessions() *SessionManager {
	return s.sessions
}

// SetLogger sets the operational logger for the server.
func (s *Server) SetLogger(log *slog.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if log != nil {
		s.log = log
	} else {
		s.log = logging.Nop()
	}
}
