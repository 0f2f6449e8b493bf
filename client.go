package gravityzone

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mnehpets/gravityzone/jsonrpc"
)

const (
	// DefaultItemsPerPage is the page size requested by paginated listings
	// when the client is not configured otherwise. The console accepts up
	// to 100 items per page.
	DefaultItemsPerPage = 30

	// DefaultTimeout bounds each call unless overridden per client or per
	// call.
	DefaultTimeout = 30 * time.Second

	apiPrefix = "/v1.0/jsonrpc"
)

// Client talks to a GravityZone console through its JSON-RPC API.
//
// All configuration happens at construction time; a Client is safe for
// concurrent use afterwards.
type Client struct {
	baseURL string
	apiKey  string
	perPage int
	timeout time.Duration
	http    *http.Client
	log     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, e.g. to tune the
// transport or install a test double.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithItemsPerPage sets the page size for paginated listings. The console
// caps pages at 100 items; the cap is not enforced client-side.
func WithItemsPerPage(n int) Option {
	return func(c *Client) { c.perPage = n }
}

// WithTimeout sets the default per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// New builds a Client for the console reachable at accessURL,
// authenticating with apiKey as the basic-auth username. The access URL is
// the console address without the API path, e.g.
// https://cloud.gravityzone.bitdefender.com.
func New(accessURL, apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(accessURL) == "" {
		return nil, ErrAccessURLRequired
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrAPIKeyRequired
	}
	u, err := url.Parse(accessURL)
	if err != nil {
		return nil, fmt.Errorf("gravityzone: invalid access URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("gravityzone: invalid access URL %q: scheme must be http or https", accessURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(accessURL, "/") + apiPrefix,
		apiKey:  apiKey,
		perPage: DefaultItemsPerPage,
		timeout: DefaultTimeout,
		http:    &http.Client{},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.perPage <= 0 {
		c.perPage = DefaultItemsPerPage
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	return c, nil
}

// CallOption adjusts a single call.
type CallOption func(*callOptions)

type callOptions struct {
	service string
	timeout time.Duration
}

// WithService routes the call to a sub-service of the endpoint, e.g. the
// computers or virtualmachines inventory under reports.
func WithService(name string) CallOption {
	return func(o *callOptions) { o.service = name }
}

// WithCallTimeout overrides the client's default timeout for this call only.
func WithCallTimeout(d time.Duration) CallOption {
	return func(o *callOptions) { o.timeout = d }
}

// Call invokes method on the named API endpoint and returns the raw result.
//
// The returned value is whatever JSON the server put under the response's
// result key, including an explicit null; decoding it is up to the caller.
// Every failure is an *Error carrying the call context and a classification,
// except for the argument sentinels ErrEndpointRequired and
// jsonrpc.ErrMethodRequired.
func (c *Client) Call(ctx context.Context, endpoint, method string, params Params, opts ...CallOption) (json.RawMessage, error) {
	o := callOptions{timeout: c.timeout}
	for _, opt := range opts {
		opt(&o)
	}

	ci := callInfo{endpoint: endpoint, service: o.service, method: method, params: params}

	if endpoint == "" {
		return nil, ErrEndpointRequired
	}

	// The console rejects "params": null, so a nil map goes out as {}.
	wireParams := params
	if wireParams == nil {
		wireParams = Params{}
	}
	req := jsonrpc.NewRequest(method, wireParams)
	if err := req.Check(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, ci.wrap(KindGeneric, "encode request", err)
	}

	cctx := ctx
	if o.timeout > 0 {
		var cancel context.CancelFunc
		cctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(cctx, http.MethodPost, c.requestURL(endpoint, o.service), bytes.NewReader(body))
	if err != nil {
		return nil, ci.wrap(KindGeneric, "build request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(c.apiKey, "")

	c.log.Debug("dispatching API call",
		zap.String("endpoint", endpoint),
		zap.String("service", o.service),
		zap.String("method", method),
	)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return nil, ci.wrap(KindTimeout, "deadline exceeded", err)
		}
		return nil, ci.wrap(KindGeneric, "request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, ci.wrap(KindTimeout, "deadline exceeded while reading response", err)
		}
		return nil, ci.wrap(KindGeneric, "read response", err)
	}

	if resp.StatusCode >= 400 {
		// Error statuses usually still carry a JSON-RPC error body, which
		// refines the classification and supplies the message.
		var rpcErr *jsonrpc.Error
		if parsed, perr := jsonrpc.ParseResponse(raw); perr == nil {
			rpcErr = parsed.Error
		}
		cerr := ci.classify(resp.StatusCode, rpcErr)
		c.log.Debug("API call failed",
			zap.String("method", method),
			zap.Int("status", resp.StatusCode),
			zap.Error(cerr),
		)
		return nil, cerr
	}

	parsed, err := jsonrpc.ParseResponse(raw)
	if err != nil {
		return nil, ci.wrap(KindGeneric, "malformed response", err)
	}
	if parsed.HasResult() {
		return parsed.Result, nil
	}
	if parsed.Error != nil {
		cerr := ci.classify(resp.StatusCode, parsed.Error)
		c.log.Debug("API call failed",
			zap.String("method", method),
			zap.Int("code", parsed.Error.Code),
			zap.Error(cerr),
		)
		return nil, cerr
	}

	cerr := ci.classify(resp.StatusCode, nil)
	cerr.Message = "response carries neither result nor error"
	return nil, cerr
}

func (c *Client) requestURL(endpoint, service string) string {
	u := c.baseURL + "/" + endpoint
	if service != "" {
		u += "/" + service
	}
	return u
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
