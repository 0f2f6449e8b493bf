// Package jsonrpc provides the JSON-RPC 2.0 wire types used by the
// GravityZone client.
//
// This package implements the client side of the JSON-RPC 2.0 specification
// (https://www.jsonrpc.org/specification) as the GravityZone console speaks
// it: every request is a single call (no batching, no notifications) posted
// over HTTP with a fixed id.
//
// # Requests
//
// Build a request with NewRequest, which fills in the protocol version and
// the fixed id:
//
//	req := jsonrpc.NewRequest("getAccountsList", map[string]any{
//	    "companyId": nil,
//	    "page":      1,
//	})
//	body, err := json.Marshal(req)
//
// Params are marshaled exactly as given. Nil map values become explicit JSON
// nulls; the API distinguishes a null field from an absent one.
//
// # Responses
//
// ParseResponse decodes a response body. Result stays raw for the caller to
// decode; use HasResult to distinguish "result": null from no result at all:
//
//	resp, err := jsonrpc.ParseResponse(body)
//	if err != nil {
//	    // not a JSON-RPC envelope
//	}
//	if resp.HasResult() {
//	    // decode resp.Result
//	}
//
// # Error Handling
//
// Error carries the server's code, message, and optional data.details field.
// Details returns the most specific description available:
//
//	if resp.Error != nil {
//	    log.Println(resp.Error.Code, resp.Error.Details())
//	}
//
// Standard error codes are defined as constants:
//   - CodeParseError (-32700)
//   - CodeInvalidRequest (-32600)
//   - CodeMethodNotFound (-32601)
//   - CodeInvalidParams (-32602)
//   - CodeInternalError (-32603)
package jsonrpc
