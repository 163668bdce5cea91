// Package document reads and writes JSON:API documents over net/http.
// Resource documents are produced with google/jsonapi; error documents and
// request bodies are handled here because they need source pointers and
// nullable attributes.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/google/jsonapi"
)

// MediaType is the JSON:API content type used for both requests and responses.
const MediaType = jsonapi.MediaType

const maxBodyBytes = 1 << 20

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMalformedDocument    = errors.New("malformed JSON:API document")
)

// TypeMismatchError is returned when a request document carries a resource
// type other than the one the endpoint accepts.
type TypeMismatchError struct {
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("resource type %q does not match expected type %q", e.Actual, e.Expected)
}

type Source struct {
	Pointer   string `json:"pointer,omitempty"`
	Parameter string `json:"parameter,omitempty"`
}

// Error is a single JSON:API error object.
type Error struct {
	Status string  `json:"status"`
	Title  string  `json:"title"`
	Detail string  `json:"detail,omitempty"`
	Source *Source `json:"source,omitempty"`
}

type ErrorDocument struct {
	Errors []Error `json:"errors"`
}

// NewError builds an error object for an HTTP status.
func NewError(status int, title, detail string) Error {
	return Error{Status: strconv.Itoa(status), Title: title, Detail: detail}
}

// AttributePointer points at an attribute of the primary resource.
func AttributePointer(name string) *Source {
	return &Source{Pointer: "/data/attributes/" + name}
}

// Parameter points at a path or query parameter.
func Parameter(name string) *Source {
	return &Source{Parameter: name}
}

// WriteErrors writes an error document. The status of the first error wins
// when the caller passes a zero status.
func WriteErrors(w http.ResponseWriter, status int, errs ...Error) {
	if status == 0 && len(errs) > 0 {
		status, _ = strconv.Atoi(errs[0].Status)
	}
	w.Header().Set("Content-Type", MediaType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorDocument{Errors: errs})
}

// WriteResource marshals a pointer to a resource struct, or a slice of them,
// with top level links and meta.
func WriteResource(w http.ResponseWriter, status int, model any, links jsonapi.Links, meta jsonapi.Meta) error {
	payload, err := jsonapi.Marshal(model)
	if err != nil {
		return fmt.Errorf("failed to marshal resource: %w", err)
	}

	switch p := payload.(type) {
	case *jsonapi.OnePayload:
		if len(links) > 0 {
			p.Links = &links
		}
		if len(meta) > 0 {
			p.Meta = &meta
		}
	case *jsonapi.ManyPayload:
		if len(links) > 0 {
			p.Links = &links
		}
		if len(meta) > 0 {
			p.Meta = &meta
		}
	}

	w.Header().Set("Content-Type", MediaType)
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}

type requestDocument struct {
	Data *struct {
		Type       string          `json:"type"`
		ID         string          `json:"id,omitempty"`
		Attributes json.RawMessage `json:"attributes"`
	} `json:"data"`
}

// DecodeResource reads a single resource document of resourceType from the
// request body and decodes its attributes into attrs. It returns the resource id,
// which may be empty.
func DecodeResource(r *http.Request, resourceType string, attrs any) (string, error) {
	mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != MediaType || len(params) > 0 {
		return "", ErrUnsupportedMediaType
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	var doc requestDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return "", fmt.Errorf("%w: %s", ErrMalformedDocument, describeJSONError(err))
	}
	if doc.Data == nil {
		return "", fmt.Errorf("%w: missing primary data", ErrMalformedDocument)
	}
	if doc.Data.Type == "" {
		return "", fmt.Errorf("%w: missing resource type", ErrMalformedDocument)
	}
	if doc.Data.Type != resourceType {
		return "", &TypeMismatchError{Expected: resourceType, Actual: doc.Data.Type}
	}

	if len(doc.Data.Attributes) > 0 && string(doc.Data.Attributes) != "null" {
		if err := json.Unmarshal(doc.Data.Attributes, attrs); err != nil {
			return "", fmt.Errorf("%w: %s", ErrMalformedDocument, describeJSONError(err))
		}
	}

	return doc.Data.ID, nil
}

func describeJSONError(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("invalid value for %s", typeErr.Field)
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Sprintf("invalid JSON at offset %d", syntaxErr.Offset)
	}
	return err.Error()
}

// BaseURL returns scheme://host of the request, honoring forwarding headers.
func BaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	host := r.Host
	if fwd := r.Header.Get("X-Forwarded-Host"); fwd != "" {
		host = fwd
	}

	return scheme + "://" + host
}
