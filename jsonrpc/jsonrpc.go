package jsonrpc

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Version is the protocol version carried by every request and response.
const Version = "2.0"

// RequestID is the fixed id assigned to every outgoing request. Each call
// travels alone in its own HTTP request, so responses never need to be
// correlated back to requests by id.
const RequestID = 1

const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// ErrMethodRequired is returned by Request.Check when the method name is empty.
var ErrMethodRequired = errors.New("jsonrpc: method is required")

// Request is a JSON-RPC 2.0 request envelope.
//
// Params is marshaled as given. A nil value serializes as "params": null;
// callers that want an empty object should pass an empty map. Keys whose
// values are nil are serialized as explicit JSON nulls, which some APIs
// treat differently from absent keys.
type Request struct {
	ID      int    `json:"id"`
	Version string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

// NewRequest builds a request with the fixed id and protocol version.
func NewRequest(method string, params any) Request {
	return Request{
		ID:      RequestID,
		Version: Version,
		Method:  method,
		Params:  params,
	}
}

// Check validates the request envelope before it is sent.
func (r Request) Check() error {
	if r.Version != Version {
		return fmt.Errorf("jsonrpc: unsupported version %q", r.Version)
	}
	if r.Method == "" {
		return ErrMethodRequired
	}
	return nil
}

// Response is a JSON-RPC 2.0 response envelope.
//
// Result is kept raw so callers can decode it into whatever shape the method
// returns. A present-but-null result decodes to the 4-byte "null" message,
// which is distinct from an absent result (nil slice); HasResult reports the
// difference.
type Response struct {
	ID      json.RawMessage `json:"id,omitempty"`
	Version string          `json:"jsonrpc,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// HasResult reports whether the response contained a result key, even one
// whose value was null.
func (r *Response) HasResult() bool {
	return r.Result != nil
}

// ParseResponse decodes a response envelope from a raw body.
func ParseResponse(data []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("jsonrpc: parse response: %w", err)
	}
	return &resp, nil
}

// Error is a JSON-RPC 2.0 error object.
type Error struct {
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    *ErrorData `json:"data,omitempty"`
}

// ErrorData carries the server's extended error information.
type ErrorData struct {
	Details string `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("jsonrpc: code %d: %s", e.Code, e.Details())
}

// Details returns the most specific description the server provided:
// data.details when present, the top-level message otherwise.
func (e *Error) Details() string {
	if e.Data != nil && e.Data.Details != "" {
		return e.Data.Details
	}
	return e.Message
}

// NewError creates a new Error.
func NewError(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}
