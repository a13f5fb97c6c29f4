package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"strings"

	t "github.com/Temutjin2k/car-rental-system/internal/domain/types"
)

type envelope map[string]any

func writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return errors.New("failed to encode json")
	}

	js = append(js, '\n')

	maps.Copy(w.Header(), headers)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)

	return nil
}

func readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	// Use http.MaxBytesReader() to limit the size of the request body to 1MB.
	maxBytes := 1_048_576
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	// Decode the request body to the destination.
	if err := dec.Decode(dst); err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError

		var maxBytesError *http.MaxBytesError
		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")

		// Decode() reports unknown fields as "json: unknown field "<name>"".
		// There's an open issue at https://github.com/golang/go/issues/29035
		// regarding turning this into a distinct error type in the future.
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)

		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)
		case errors.As(err, &invalidUnmarshalError):
			return fmt.Errorf("invalid unmarshal error: %w", err)
		default:
			return err
		}
	}

	// The body must hold a single JSON value only.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

// GetCode maps a service error to an HTTP status code. Remote statuses
// carried by a RequestError pass through untouched; a transport failure
// maps to 502 because the rental API never answered.
func GetCode(err error) int {
	var reqErr *t.RequestError

	switch {
	case IsOneOf(err, t.ErrNotLoggedIn):
		return http.StatusUnauthorized
	case IsOneOf(err, t.ErrCarNotFound, t.ErrUserNotFound, t.ErrNotFound):
		return http.StatusNotFound
	case IsOneOf(err, t.ErrCarNotAvailable):
		return http.StatusConflict
	case IsOneOf(err, t.ErrInvalidDateRange, t.ErrInvalidRating, t.ErrEmptyReviewText):
		return http.StatusUnprocessableEntity
	case errors.As(err, &reqErr):
		if reqErr.IsTransport() {
			return http.StatusBadGateway
		}
		return reqErr.Status
	default:
		return http.StatusInternalServerError
	}
}

// remoteMessage returns the display text for a failed rental API call.
// Business error text travels verbatim; transport failures collapse to a
// generic message because the raw error is useless to the visitor.
func remoteMessage(err error) string {
	var reqErr *t.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.IsTransport() {
			return "The rental service is temporarily unavailable. Please try again."
		}
		return reqErr.Message
	}
	return err.Error()
}

func IsOneOf(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
