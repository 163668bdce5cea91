package document

import (
	"crypto/tls"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/jsonapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID    string  `jsonapi:"primary,widgets"`
	Name  string  `jsonapi:"attr,name"`
	Price float64 `jsonapi:"attr,price"`
}

type widgetAttributes struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
}

func newRequest(contentType, body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/widgets", strings.NewReader(body))
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	return r
}

func TestWriteErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteErrors(rec, http.StatusBadRequest,
		Error{Status: "400", Title: "Validation Error", Detail: "The field must not be blank", Source: AttributePointer("name")},
	)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, MediaType, rec.Header().Get("Content-Type"))
	assert.JSONEq(t,
		`{"errors":[{"status":"400","title":"Validation Error","detail":"The field must not be blank","source":{"pointer":"/data/attributes/name"}}]}`,
		rec.Body.String())
}

func TestWriteErrors_StatusFromFirstError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteErrors(rec, 0, NewError(http.StatusConflict, "Conflict", ""))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"errors":[{"status":"409","title":"Conflict"}]}`, rec.Body.String())
}

func TestWriteResource_Single(t *testing.T) {
	rec := httptest.NewRecorder()
	err := WriteResource(rec, http.StatusCreated, &widget{ID: "3", Name: "bolt", Price: 1.5},
		jsonapi.Links{"self": "http://example.com/widgets/3"}, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, MediaType, rec.Header().Get("Content-Type"))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	data := doc["data"].(map[string]any)
	assert.Equal(t, "widgets", data["type"])
	assert.Equal(t, "3", data["id"])
	assert.Equal(t, "bolt", data["attributes"].(map[string]any)["name"])
	assert.Equal(t, "http://example.com/widgets/3", doc["links"].(map[string]any)["self"])
	assert.NotContains(t, doc, "meta")
}

func TestWriteResource_EmptyCollection(t *testing.T) {
	rec := httptest.NewRecorder()
	err := WriteResource(rec, http.StatusOK, []*widget{}, nil, jsonapi.Meta{"totalElements": 0})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, []any{}, doc["data"])
	assert.EqualValues(t, 0, doc["meta"].(map[string]any)["totalElements"])
}

func TestDecodeResource(t *testing.T) {
	r := newRequest(MediaType, `{"data":{"type":"widgets","id":"9","attributes":{"name":"nut","price":2}}}`)

	var attrs widgetAttributes
	id, err := DecodeResource(r, "widgets", &attrs)
	require.NoError(t, err)

	assert.Equal(t, "9", id)
	assert.Equal(t, "nut", attrs.Name)
	require.NotNil(t, attrs.Price)
	assert.Equal(t, 2.0, *attrs.Price)
}

func TestDecodeResource_MissingAttributes(t *testing.T) {
	r := newRequest(MediaType, `{"data":{"type":"widgets"}}`)

	var attrs widgetAttributes
	_, err := DecodeResource(r, "widgets", &attrs)
	require.NoError(t, err)
	assert.Nil(t, attrs.Price)
}

func TestDecodeResource_Errors(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		check       func(t *testing.T, err error)
	}{
		{
			name:        "plain json media type",
			contentType: "application/json",
			body:        `{"data":{"type":"widgets"}}`,
			check:       func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrUnsupportedMediaType) },
		},
		{
			name:        "media type parameters",
			contentType: MediaType + "; charset=utf-8",
			body:        `{"data":{"type":"widgets"}}`,
			check:       func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrUnsupportedMediaType) },
		},
		{
			name:        "missing content type",
			contentType: "",
			body:        `{}`,
			check:       func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrUnsupportedMediaType) },
		},
		{
			name:        "invalid json",
			contentType: MediaType,
			body:        `{"data":`,
			check:       func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrMalformedDocument) },
		},
		{
			name:        "missing data",
			contentType: MediaType,
			body:        `{"meta":{}}`,
			check:       func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrMalformedDocument) },
		},
		{
			name:        "missing type",
			contentType: MediaType,
			body:        `{"data":{"attributes":{}}}`,
			check:       func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrMalformedDocument) },
		},
		{
			name:        "wrong attribute type",
			contentType: MediaType,
			body:        `{"data":{"type":"widgets","attributes":{"price":"free"}}}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrMalformedDocument)
				assert.ErrorContains(t, err, "price")
			},
		},
		{
			name:        "type mismatch",
			contentType: MediaType,
			body:        `{"data":{"type":"gadgets","attributes":{}}}`,
			check: func(t *testing.T, err error) {
				var mismatch *TypeMismatchError
				require.True(t, errors.As(err, &mismatch))
				assert.Equal(t, "widgets", mismatch.Expected)
				assert.Equal(t, "gadgets", mismatch.Actual)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var attrs widgetAttributes
			_, err := DecodeResource(newRequest(tt.contentType, tt.body), "widgets", &attrs)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestBaseURL(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "http://api.local:8080/product", nil)
	assert.Equal(t, "http://api.local:8080", BaseURL(r))

	r.TLS = &tls.ConnectionState{}
	assert.Equal(t, "https://api.local:8080", BaseURL(r))

	r.Header.Set("X-Forwarded-Proto", "http")
	r.Header.Set("X-Forwarded-Host", "shop.example.com")
	assert.Equal(t, "http://shop.example.com", BaseURL(r))
}
