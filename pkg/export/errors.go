package export

// ExportError represents an error during conversion or export.
type ExportError struct {
	Format  Format
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	msg := e.Message
	if e.Format != FormatUnknown {
		msg = string(e.Format) + ": " + msg
	}
	if e.Cause != nil {
		msg = msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}

// ImportError represents an error during import.
type ImportError struct {
	Format  Format
	Message string
	Cause   error
}

func (e *ImportError) Error() string {
	msg := e.Message
	if e.Format != FormatUnknown {
		msg = string(e.Format) + ": " + msg
	}
	if e.Cause != nil {
		msg = msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *ImportError) Unwrap() error {
	return e.Cause
}
