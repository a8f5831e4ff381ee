package mcp

import (
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
)

// HTTP headers used by MCP protocol.
const (
	HeaderSessionID       = "Mcp-Session-Id"
	HeaderProtocolVersion = "MCP-Protocol-Version"
	HeaderLastEventID     = "Last-Event-ID"
	HeaderContentType     = "Content-Type"
	HeaderAccept          = "Accept"
	HeaderOrigin          = "Origin"
)

// Content types.
const (
	ContentTypeJSON        = "application/json"
	ContentTypeEventStream = "text/event-stream"
)

// SSEWriter handles writing Server-Sent Events.
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
	eventID atomic.Int64
	closed  bool
}

// NewSSEWriter creates a new SSE writer.
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("response writer does not support flushing")
	}

	return &SSEWriter{
		w:       w,
		flusher: flusher,
	}, nil
}

// WriteHeaders sets the necessary headers for SSE.
func (s *SSEWriter) WriteHeaders() {
	s.w.Header().Set(HeaderContentType, ContentTypeEventStream)
	s.w.Header().Set("Cache-Control", "no-cache")
	s.w.Header().Set("Connection", "keep-alive")
	s.w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering
}

// WriteEvent writes an SSE event.
func (s *SSEWriter) WriteEvent(event *SSEEvent) error {
	if s.closed {
		return fmt.Errorf("writer is closed")
	}

	var sb strings.Builder

	// Event ID
	if event.ID != "" {
		sb.WriteString("id: ")
		sb.WriteString(event.ID)
		sb.WriteByte('\n')
	} else {
		// Auto-generate ID
		id := s.eventID.Add(1)
		sb.WriteString("id: ")
		sb.WriteString(formatInt64(id))
		sb.WriteByte('\n')
	}

	// Event type
	if event.Event != "" {
		sb.WriteString("event: ")
		sb.WriteString(event.Event)
		sb.WriteByte('\n')
	}

	// Retry hint
	if event.Retry > 0 {
		sb.WriteString("retry: ")
		sb.WriteString(formatInt64(int64(event.Retry)))
		sb.WriteByte('\n')
	}

	// Data (handle multiline)
	lines := strings.Split(event.Data, "\n")
	for _, line := range lines {
		sb.WriteString("data: ")
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	// End with blank line
	sb.WriteByte('\n')

	_, err := s.w.Write([]byte(sb.String()))
	if err != nil {
		return err
	}

	s.flusher.Flush()
	return nil
}

// WriteComment writes an SSE comment (keepalive).
func (s *SSEWriter) WriteComment(comment string) error {
	if s.closed {
		return fmt.Errorf("writer is closed")
	}

	_, err := fmt.Fprintf(s.w, ": %s\n\n", comment)
	if err != nil {
		return err
	}

	s.flusher.Flush()
	return nil
}

// WriteKeepalive writes a keepalive comment.
func (s *SSEWriter) WriteKeepalive() error {
	return s.WriteComment("keepalive")
}

// Close marks the writer as closed.
func (s *SSEWriter) Close() {
	s.closed = true
}

// formatInt64 formats an int64 as string without using fmt.
func formatInt64(n int64) string {
	if n == 0 {
		return "0"
	}

	negative := n < 0
	if negative {
		n = -n
	}

	var digits [20]byte
	i := len(digits)

	for n > 0 {
		i--
		digits[i] = byte('0' + n%10)
		n /= 10
	}

	if negative {
		i--
		digits[i] = '-'
	}

	return string(digits[i:])
}
