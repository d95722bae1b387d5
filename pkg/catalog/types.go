package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Response is the envelope every endpoint wraps its payload in.
type Response[T any] struct {
	Status  string `json:"status"            yaml:"status"`
	Data    T      `json:"data"              yaml:"data"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"    yaml:"meta,omitempty"`
}

// Meta carries server-side pagination information.
type Meta struct {
	Page       int `json:"page"        yaml:"page"`
	Limit      int `json:"limit"       yaml:"limit"`
	Total      int `json:"total"       yaml:"total"`
	TotalPages int `json:"total_pages" yaml:"total_pages"`
}

// List is a normalized list result. List endpoints answer either the full
// envelope or a bare JSON array; UnmarshalJSON accepts both so downstream
// code always sees one canonical shape.
type List[T any] struct {
	Items []T   `json:"data" yaml:"data"`
	Meta  *Meta `json:"meta" yaml:"meta"`
}

// UnmarshalJSON implements the dual-shape decoding.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T

		err := json.Unmarshal(data, &items)
		if err != nil {
			return fmt.Errorf("parsing list response: %w", err)
		}

		l.Items = items
		l.Meta = nil

		return nil
	}

	var envelope struct {
		Data []T   `json:"data"`
		Meta *Meta `json:"meta"`
	}

	err := json.Unmarshal(data, &envelope)
	if err != nil {
		return fmt.Errorf("parsing list envelope: %w", err)
	}

	l.Items = envelope.Data
	l.Meta = envelope.Meta

	return nil
}

// TotalPages returns the reported page count, or 0 when the server sent no
// pagination meta.
func (l *List[T]) TotalPages() int {
	if l.Meta == nil {
		return 0
	}

	return l.Meta.TotalPages
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// NoopLogger discards everything. Used wherever a Logger is optional.
type NoopLogger struct{}

// Debug implements Logger.
func (NoopLogger) Debug(string, map[string]interface{}) {}

// Info implements Logger.
func (NoopLogger) Info(string, map[string]interface{}) {}

// Warn implements Logger.
func (NoopLogger) Warn(string, map[string]interface{}) {}

// Error implements Logger.
func (NoopLogger) Error(string, map[string]interface{}) {}
