package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/okian/proinvestix/internal/domain/model"
)

// Request describes one backend call. Path is relative to the base URL.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	// Resource labels metrics and logs; derived from Path when empty.
	Resource string
}

// Get builds a GET request.
func Get(path string, query url.Values) *Request {
	return &Request{Method: http.MethodGet, Path: path, Query: query}
}

// Post builds a POST request with a JSON body.
func Post(path string, body any) *Request {
	return &Request{Method: http.MethodPost, Path: path, Body: body}
}

// Put builds a PUT request with a JSON body.
func Put(path string, body any) *Request {
	return &Request{Method: http.MethodPut, Path: path, Body: body}
}

// Delete builds a DELETE request.
func Delete(path string) *Request {
	return &Request{Method: http.MethodDelete, Path: path}
}

// WithQuery sets the query parameters and returns r.
func (r *Request) WithQuery(q url.Values) *Request {
	r.Query = q
	return r
}

func (r *Request) payload() ([]byte, error) {
	switch b := r.Body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	}
	data, err := json.Marshal(r.Body)
	if err != nil {
		return nil, fmt.Errorf("encode body: %w", err)
	}
	return data, nil
}

// Response is a successful backend answer, body fully read.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the raw body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// DecodeData decodes a payload that is either wrapped in a
// {success, data, meta} envelope or returned bare.
func DecodeData[T any](resp *Response) (T, error) {
	var out T
	if resp == nil {
		return out, ErrNilRequest
	}
	body := resp.Body
	if data, ok := envelopeData(body); ok {
		body = data
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

// DecodePage decodes a paginated list. A bare JSON array yields a single
// page holding every element.
func DecodePage[T any](resp *Response) (model.Page[T], error) {
	var page model.Page[T]
	if resp == nil {
		return page, ErrNilRequest
	}
	trimmed := bytes.TrimSpace(resp.Body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &page.Data); err != nil {
			return page, fmt.Errorf("decode page: %w", err)
		}
		page.Meta = model.Meta{Total: len(page.Data), Page: 1, PerPage: len(page.Data), TotalPages: 1}
		return page, nil
	}
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return page, fmt.Errorf("decode page: %w", err)
	}
	return page, nil
}

func envelopeData(body []byte) (json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if json.Unmarshal(trimmed, &fields) != nil {
		return nil, false
	}
	data, hasData := fields["data"]
	_, hasSuccess := fields["success"]
	_, hasMeta := fields["meta"]
	if !hasData || !(hasSuccess || hasMeta) {
		return nil, false
	}
	return data, true
}
