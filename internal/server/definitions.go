package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/at-ishikawa/wordbook/internal/dictionary"
)

// definitionRequest is the body of POST /api/definitions.
type definitionRequest struct {
	Word       string `validate:"required"`
	Definition string `validate:"required"`
	// nonString is set when a present value is neither a string nor falsy.
	nonString bool
}

// UnmarshalJSON reads only the exact keys "word" and "definition".
// null, false, 0 and "" count as missing, and a body that is not an object has no fields.
func (req *definitionRequest) UnmarshalJSON(data []byte) error {
	var body any
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}

	fields, _ := body.(map[string]any)
	req.Word = req.readField(fields["word"])
	req.Definition = req.readField(fields["definition"])
	return nil
}

// readField keeps the JSON text of a non-string value so that presence checks still see it.
func (req *definitionRequest) readField(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if !v {
			return ""
		}
	case float64:
		if v == 0 {
			return ""
		}
	}

	req.nonString = true
	text, _ := json.Marshal(value)
	return string(text)
}

// definitionInput is a definitionRequest after normalization.
// Fields are validated in declaration order.
type definitionInput struct {
	Word       string `validate:"word"`
	Definition string `validate:"required"`
}

func newValidator() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation("word", func(fl validator.FieldLevel) bool {
		return dictionary.IsValidWord(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("failed to register word validation: %w", err)
	}
	return validate, nil
}

func (s *Service) handleGetWord(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query().Get("word")
	if strings.TrimSpace(query) == "" {
		return writeError(w, http.StatusBadRequest, s.messages.MissingQuery)
	}

	word := dictionary.Normalize(query)
	if !s.store.Exists(word) {
		return writeError(w, http.StatusNotFound, s.messages.WordNotFound)
	}

	definition, _ := s.store.Lookup(word)
	return writeJSON(w, http.StatusOK, dictionary.Entry{
		Word:       word,
		Definition: definition,
	})
}

func (s *Service) handlePostWord(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("io.ReadAll > %w", err)
	}

	var req *definitionRequest
	if err := json.Unmarshal(body, &req); err != nil || req == nil {
		s.logger.Debug("failed to parse a definition request", "error", err)
		return writeError(w, http.StatusBadRequest, s.messages.InvalidJSON)
	}

	if err := s.validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("validate.Struct(definitionRequest) > %w", err)
		}
		return writeError(w, http.StatusBadRequest, s.messages.MissingFields)
	}
	if req.nonString {
		return writeError(w, http.StatusBadRequest, s.messages.InvalidJSON)
	}

	input := definitionInput{
		Word:       dictionary.Normalize(req.Word),
		Definition: strings.TrimSpace(req.Definition),
	}
	if err := s.validate.Struct(input); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("validate.Struct(definitionInput) > %w", err)
		}
		if validationErrors[0].Field() == "Word" {
			return writeError(w, http.StatusBadRequest, s.messages.InvalidWord)
		}
		return writeError(w, http.StatusBadRequest, s.messages.EmptyDefinition)
	}

	s.insertMu.Lock()
	defer s.insertMu.Unlock()

	if s.store.Exists(input.Word) {
		writeText(w, http.StatusConflict, s.messages.Duplicate)
		return nil
	}

	s.store.Insert(input.Word, input.Definition)
	writeText(w, http.StatusCreated, s.messages.Recorded(s.requestCount.Load(), s.now(), s.store.Count()))
	return nil
}
