package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
}

// marshalJSON encodes v compactly, without HTML escaping or a trailing newline.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func writeJSON(w http.ResponseWriter, status int, data any) error {
	body, err := marshalJSON(data)
	if err != nil {
		return fmt.Errorf("marshalJSON > %w", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
	return nil
}

func writeError(w http.ResponseWriter, status int, message string) error {
	return writeJSON(w, status, errorResponse{Error: message})
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// writeInternalError writes the internal error message as a JSON string, not an object.
// Clients depend on this shape.
func (s *Service) writeInternalError(w http.ResponseWriter) {
	body, _ := marshalJSON(s.messages.Internal)
	writeText(w, http.StatusInternalServerError, string(body))
}
