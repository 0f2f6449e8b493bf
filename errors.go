package gravityzone

import (
	"errors"
	"net/http"

	"github.com/mnehpets/gravityzone/jsonrpc"
)

// ErrAccessURLRequired is returned by New when the access URL is empty.
var ErrAccessURLRequired = errors.New("gravityzone: access URL is required")

// ErrAPIKeyRequired is returned by New when the API key is empty.
var ErrAPIKeyRequired = errors.New("gravityzone: API key is required")

// ErrEndpointRequired is returned by Call when the endpoint name is empty.
var ErrEndpointRequired = errors.New("gravityzone: endpoint is required")

// ErrorKind classifies an API failure into the categories callers branch on.
type ErrorKind int

const (
	// KindGeneric covers transport failures, malformed responses, and server
	// errors with no more specific classification.
	KindGeneric ErrorKind = iota
	// KindAuthentication means the console rejected the API key (HTTP 401).
	KindAuthentication
	// KindAuthorization means the API key lacks access to the requested
	// endpoint (HTTP 403).
	KindAuthorization
	// KindMethodNotFound means the method does not exist on the endpoint
	// (JSON-RPC code -32601).
	KindMethodNotFound
	// KindInvalidParams means the server rejected the request params
	// (JSON-RPC code -32602).
	KindInvalidParams
	// KindTimeout means the call hit its deadline before a response arrived.
	KindTimeout
)

func (k ErrorKind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication failed"
	case KindAuthorization:
		return "access denied"
	case KindMethodNotFound:
		return "method not found"
	case KindInvalidParams:
		return "invalid params"
	case KindTimeout:
		return "timeout"
	default:
		return "api error"
	}
}

// Error is the error type returned by every failing API call.
//
// It records where the call was headed (endpoint, service, method, params)
// alongside how it failed. Branch on the failure mode with the Is* predicates
// rather than inspecting Kind directly.
type Error struct {
	Kind    ErrorKind
	Message string

	// Endpoint, Service, Method, and Params identify the call that failed.
	Endpoint string
	Service  string
	Method   string
	Params   Params

	// HTTPStatus is the HTTP response status, or 0 when the call failed
	// before a response arrived.
	HTTPStatus int
	// RPCCode is the JSON-RPC error code, or 0 when the response carried no
	// error object.
	RPCCode int

	cause error
}

func (e *Error) Error() string {
	if e == nil {
		return "gravityzone: error: <nil>"
	}
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.HTTPStatus)
	}
	if msg == "" {
		msg = "request failed"
	}
	s := "gravityzone: " + e.Kind.String() + ": " + msg
	if e.Endpoint != "" {
		s += " (" + e.path() + " " + e.Method + ")"
	}
	if e.cause != nil {
		s += ": " + e.cause.Error()
	}
	return s
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func (e *Error) path() string {
	if e.Service != "" {
		return e.Endpoint + "/" + e.Service
	}
	return e.Endpoint
}

// callInfo pins an error to the call that produced it.
type callInfo struct {
	endpoint string
	service  string
	method   string
	params   Params
}

// wrap builds a classified error around a transport-level cause. Errors that
// are already classified pass through untouched.
func (ci callInfo) wrap(kind ErrorKind, message string, cause error) error {
	var ge *Error
	if errors.As(cause, &ge) {
		return cause
	}
	return &Error{
		Kind:     kind,
		Message:  message,
		Endpoint: ci.endpoint,
		Service:  ci.service,
		Method:   ci.method,
		Params:   ci.params,
		cause:    cause,
	}
}

// classify maps an HTTP status and JSON-RPC error object onto an ErrorKind.
//
// The HTTP status is consulted first: 401 and 403 carry authentication
// semantics regardless of any error body. Only then does the JSON-RPC code
// distinguish unknown methods from rejected params. Everything else is
// generic.
func (ci callInfo) classify(status int, rpcErr *jsonrpc.Error) *Error {
	e := &Error{
		Endpoint:   ci.endpoint,
		Service:    ci.service,
		Method:     ci.method,
		Params:     ci.params,
		HTTPStatus: status,
	}
	switch {
	case status == http.StatusUnauthorized:
		e.Kind = KindAuthentication
	case status == http.StatusForbidden:
		e.Kind = KindAuthorization
	case rpcErr != nil && rpcErr.Code == jsonrpc.CodeMethodNotFound:
		e.Kind = KindMethodNotFound
	case rpcErr != nil && rpcErr.Code == jsonrpc.CodeInvalidParams:
		e.Kind = KindInvalidParams
	default:
		e.Kind = KindGeneric
	}
	if rpcErr != nil {
		e.RPCCode = rpcErr.Code
		e.Message = rpcErr.Details()
	}
	return e
}

// IsAuthenticationError reports whether err means the API key was rejected.
func IsAuthenticationError(err error) bool {
	return hasKind(err, KindAuthentication)
}

// IsAuthorizationError reports whether err means the API key lacks access to
// the endpoint it called.
func IsAuthorizationError(err error) bool {
	return hasKind(err, KindAuthorization)
}

// IsMethodNotFoundError reports whether err means the called method does not
// exist on the endpoint.
func IsMethodNotFoundError(err error) bool {
	return hasKind(err, KindMethodNotFound)
}

// IsInvalidParamsError reports whether err means the server rejected the
// request params.
func IsInvalidParamsError(err error) bool {
	return hasKind(err, KindInvalidParams)
}

// IsTimeoutError reports whether err means the call exceeded its deadline.
func IsTimeoutError(err error) bool {
	return hasKind(err, KindTimeout)
}

func hasKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
