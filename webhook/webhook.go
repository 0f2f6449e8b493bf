// Package webhook receives GravityZone push events over HTTP.
//
// The console's event push service, configured with service type jsonRPC,
// delivers batches of events as JSON-RPC 2.0 calls: POST requests whose
// method is "setPushEvents" and whose params carry an events array. Handler
// implements the receiving side as an http.Handler: it enforces POST and
// Content-Type, checks the Authorization header in constant time, hands each
// event to a callback, and acknowledges the batch with a JSON-RPC result.
//
// Protocol:
//   - Deliveries are acknowledged with HTTP 200 and a JSON-RPC response
//     body; the console reads the error object, not the HTTP status.
//   - Malformed envelopes receive parse/invalid-request errors, unknown
//     methods a method-not-found error.
//   - A failing or panicking callback aborts the batch with an internal
//     error so the console redelivers later.
package webhook

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/mnehpets/gravityzone/jsonrpc"
)

// PushMethod is the JSON-RPC method the console invokes on deliveries.
const PushMethod = "setPushEvents"

// maxBodySize caps a delivery body at 8 MiB.
const maxBodySize = 8 << 20

// Event is one push event from a delivery batch.
type Event struct {
	// Module discriminates the event type: av, fw, aph, task-status and
	// so on.
	Module string
	// Raw holds every field of the event as delivered.
	Raw map[string]any
}

// Decode converts the raw event fields into a caller-defined struct,
// matching keys against json tags.
func (e Event) Decode(dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: dst, TagName: "json"})
	if err != nil {
		return fmt.Errorf("webhook: build decoder: %w", err)
	}
	if err := dec.Decode(e.Raw); err != nil {
		return fmt.Errorf("webhook: decode event: %w", err)
	}
	return nil
}

// EventFunc handles one event. Returning an error aborts the rest of the
// batch and reports a JSON-RPC internal error to the console.
type EventFunc func(ctx context.Context, e Event) error

// Option configures a Handler.
type Option func(*Handler)

// WithLogger attaches a logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(h *Handler) { h.log = log }
}

// Handler accepts push deliveries from the console.
type Handler struct {
	authorization string
	fn            EventFunc
	log           *zap.Logger
}

// New builds a Handler that accepts deliveries carrying the given
// Authorization header value (the one configured in the console's push
// settings) and hands each event to fn.
func New(authorization string, fn EventFunc, opts ...Option) (*Handler, error) {
	if authorization == "" {
		return nil, errors.New("webhook: authorization value is required")
	}
	if fn == nil {
		return nil, errors.New("webhook: event func is required")
	}
	h := &Handler{authorization: authorization, fn: fn, log: zap.NewNop()}
	for _, opt := range opts {
		opt(h)
	}
	if h.log == nil {
		h.log = zap.NewNop()
	}
	return h, nil
}

// pushRequest is the delivery envelope. The id is kept raw and echoed back,
// so numeric and string ids both round-trip.
type pushRequest struct {
	ID      json.RawMessage `json:"id"`
	Version string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  struct {
		Events []map[string]any `json:"events"`
	} `json:"params"`
}

type pushResponse struct {
	ID      json.RawMessage `json:"id"`
	Version string          `json:"jsonrpc"`
	Result  any             `json:"result,omitempty"`
	Error   *jsonrpc.Error  `json:"error,omitempty"`
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "push deliveries require POST", http.StatusMethodNotAllowed)
		return
	}

	// Per JSON-RPC over HTTP, Content-Type must be application/json.
	contentType := r.Header.Get("Content-Type")
	if contentType != "" && !strings.HasPrefix(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	if subtle.ConstantTimeCompare([]byte(r.Header.Get("Authorization")), []byte(h.authorization)) != 1 {
		h.log.Warn("rejected delivery with bad authorization")
		http.Error(w, "invalid authorization", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		http.Error(w, "read body", http.StatusBadRequest)
		return
	}

	var req pushRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.respond(w, nil, nil, jsonrpc.NewError(jsonrpc.CodeParseError, "parse error"))
		return
	}
	if req.Version != jsonrpc.Version {
		h.respond(w, req.ID, nil, jsonrpc.NewError(jsonrpc.CodeInvalidRequest, "invalid request"))
		return
	}
	if req.Method != PushMethod {
		h.respond(w, req.ID, nil, jsonrpc.NewError(jsonrpc.CodeMethodNotFound, "method not found: "+req.Method))
		return
	}

	for i, raw := range req.Params.Events {
		module, _ := raw["module"].(string)
		ev := Event{Module: module, Raw: raw}
		if err := h.dispatch(r.Context(), ev); err != nil {
			h.log.Error("event handler failed",
				zap.Int("index", i),
				zap.String("module", module),
				zap.Error(err),
			)
			h.respond(w, req.ID, nil, jsonrpc.NewError(jsonrpc.CodeInternalError, "internal error"))
			return
		}
	}

	h.log.Debug("acknowledged delivery", zap.Int("events", len(req.Params.Events)))
	h.respond(w, req.ID, true, nil)
}

func (h *Handler) dispatch(ctx context.Context, ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Error("event handler panic", zap.Any("panic", r))
			err = errors.New("webhook: event handler panic")
		}
	}()
	return h.fn(ctx, ev)
}

// respond writes a JSON-RPC response envelope with HTTP 200.
func (h *Handler) respond(w http.ResponseWriter, id json.RawMessage, result any, rpcErr *jsonrpc.Error) {
	if id == nil {
		id = json.RawMessage("null")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(pushResponse{ID: id, Version: jsonrpc.Version, Result: result, Error: rpcErr}); err != nil {
		h.log.Error("write response", zap.Error(err))
	}
}
