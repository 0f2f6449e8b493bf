package gravityzone_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnehpets/gravityzone"
	"github.com/mnehpets/gravityzone/jsonrpc"
)

const testAPIKey = "0123456789abcdef"

// capturedCall is one request the fake console received.
type capturedCall struct {
	Path          string
	Authorization string
	ContentType   string
	Body          map[string]any
}

// fakeConsole records every request and answers from a canned response
// function.
type fakeConsole struct {
	t       *testing.T
	respond func(call capturedCall) (int, string)

	mu    sync.Mutex
	calls []capturedCall
}

func newFakeConsole(t *testing.T, respond func(capturedCall) (int, string), opts ...gravityzone.Option) (*fakeConsole, *gravityzone.Client) {
	t.Helper()
	fc := &fakeConsole{t: t, respond: respond}
	srv := httptest.NewServer(fc)
	t.Cleanup(srv.Close)

	client, err := gravityzone.New(srv.URL, testAPIKey, opts...)
	require.NoError(t, err)
	return fc, client
}

func (fc *fakeConsole) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	var body map[string]any
	_ = json.Unmarshal(raw, &body)

	call := capturedCall{
		Path:          r.URL.Path,
		Authorization: r.Header.Get("Authorization"),
		ContentType:   r.Header.Get("Content-Type"),
		Body:          body,
	}
	fc.mu.Lock()
	fc.calls = append(fc.calls, call)
	fc.mu.Unlock()

	status, resp := fc.respond(call)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, resp)
}

func (fc *fakeConsole) count() int {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return len(fc.calls)
}

func (fc *fakeConsole) request(i int) capturedCall {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.calls[i]
}

// okResult wraps a result value in a response envelope.
func okResult(result string) (int, string) {
	return http.StatusOK, `{"id":1,"jsonrpc":"2.0","result":` + result + `}`
}

func requestParams(t *testing.T, call capturedCall) map[string]any {
	t.Helper()
	p, ok := call.Body["params"].(map[string]any)
	require.True(t, ok, "request body has no params object: %v", call.Body)
	return p
}

func subParams(t *testing.T, p map[string]any, key string) map[string]any {
	t.Helper()
	m, ok := p[key].(map[string]any)
	require.True(t, ok, "%s is not an object: %v", key, p[key])
	return m
}

func TestNew_Validation(t *testing.T) {
	_, err := gravityzone.New("", "key")
	assert.ErrorIs(t, err, gravityzone.ErrAccessURLRequired)

	_, err = gravityzone.New("   ", "key")
	assert.ErrorIs(t, err, gravityzone.ErrAccessURLRequired)

	_, err = gravityzone.New("https://gz.example.com", "")
	assert.ErrorIs(t, err, gravityzone.ErrAPIKeyRequired)

	_, err = gravityzone.New("https://gz.example.com", "  ")
	assert.ErrorIs(t, err, gravityzone.ErrAPIKeyRequired)

	_, err = gravityzone.New("ftp://gz.example.com", "key")
	assert.ErrorContains(t, err, "scheme")

	_, err = gravityzone.New("https://gz.example.com", "key")
	assert.NoError(t, err)
}

func TestCall_RequestShape(t *testing.T) {
	fc, client := newFakeConsole(t, func(capturedCall) (int, string) {
		return okResult(`true`)
	})

	_, err := client.Call(context.Background(), "general", "getApiKeyDetails", nil)
	require.NoError(t, err)

	require.Equal(t, 1, fc.count())
	call := fc.request(0)
	assert.Equal(t, "/v1.0/jsonrpc/general", call.Path)
	assert.Equal(t, "application/json", call.ContentType)

	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte(testAPIKey+":"))
	assert.Equal(t, wantAuth, call.Authorization)

	assert.Equal(t, float64(1), call.Body["id"])
	assert.Equal(t, "2.0", call.Body["jsonrpc"])
	assert.Equal(t, "getApiKeyDetails", call.Body["method"])
	// A nil params map goes out as an empty object, not null.
	assert.Equal(t, map[string]any{}, requestParams(t, call))
}

func TestCall_ServiceRouting(t *testing.T) {
	fc, client := newFakeConsole(t, func(capturedCall) (int, string) {
		return okResult(`true`)
	})

	_, err := client.Call(context.Background(), "reports", "getReportsList", nil,
		gravityzone.WithService("virtualmachines"))
	require.NoError(t, err)
	assert.Equal(t, "/v1.0/jsonrpc/reports/virtualmachines", fc.request(0).Path)
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	fc := &fakeConsole{t: t, respond: func(capturedCall) (int, string) { return okResult(`true`) }}
	srv := httptest.NewServer(fc)
	t.Cleanup(srv.Close)

	client, err := gravityzone.New(srv.URL+"/", testAPIKey)
	require.NoError(t, err)

	_, err = client.Call(context.Background(), "general", "getApiKeyDetails", nil)
	require.NoError(t, err)
	assert.Equal(t, "/v1.0/jsonrpc/general", fc.request(0).Path)
}

func TestCall_PreservesExplicitNulls(t *testing.T) {
	fc, client := newFakeConsole(t, func(capturedCall) (int, string) {
		return okResult(`true`)
	})

	params := gravityzone.Params{"companyId": nil, "page": 2}
	_, err := client.Call(context.Background(), "network", "getEndpointsList", params)
	require.NoError(t, err)

	got := requestParams(t, fc.request(0))
	require.Contains(t, got, "companyId")
	assert.Nil(t, got["companyId"])
	assert.Equal(t, float64(2), got["page"])
}

func TestCall_ReturnsRawResult(t *testing.T) {
	_, client := newFakeConsole(t, func(capturedCall) (int, string) {
		return okResult(`{"id":"5a8f6b2c","name":"ACME"}`)
	})

	raw, err := client.Call(context.Background(), "companies", "getCompanyDetails", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"5a8f6b2c","name":"ACME"}`, string(raw))
}

func TestCall_NullResultIsNotAnError(t *testing.T) {
	_, client := newFakeConsole(t, func(capturedCall) (int, string) {
		return okResult(`null`)
	})

	raw, err := client.Call(context.Background(), "companies", "getCompanyDetails", nil)
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))
}

func TestCall_Classification(t *testing.T) {
	isGeneric := func(err error) bool {
		var ge *gravityzone.Error
		return errors.As(err, &ge) && ge.Kind == gravityzone.KindGeneric
	}

	cases := []struct {
		name     string
		status   int
		body     string
		check    func(error) bool
		message  string
		wantCode int
	}{
		{
			name:   "401 means bad api key",
			status: http.StatusUnauthorized,
			body:   "",
			check:  gravityzone.IsAuthenticationError,
		},
		{
			name:     "401 wins over rpc code",
			status:   http.StatusUnauthorized,
			body:     `{"id":1,"jsonrpc":"2.0","error":{"code":-32602,"message":"Unauthorized"}}`,
			check:    gravityzone.IsAuthenticationError,
			message:  "Unauthorized",
			wantCode: -32602,
		},
		{
			name:     "403 wins over method not found",
			status:   http.StatusForbidden,
			body:     `{"id":1,"jsonrpc":"2.0","error":{"code":-32601,"message":"Forbidden"}}`,
			check:    gravityzone.IsAuthorizationError,
			message:  "Forbidden",
			wantCode: -32601,
		},
		{
			name:     "method not found",
			status:   http.StatusOK,
			body:     `{"id":1,"jsonrpc":"2.0","error":{"code":-32601,"message":"Method not found"}}`,
			check:    gravityzone.IsMethodNotFoundError,
			message:  "Method not found",
			wantCode: -32601,
		},
		{
			name:     "invalid params prefers details",
			status:   http.StatusBadRequest,
			body:     `{"id":1,"jsonrpc":"2.0","error":{"code":-32602,"message":"Invalid params","data":{"details":"companyId must be a string"}}}`,
			check:    gravityzone.IsInvalidParamsError,
			message:  "companyId must be a string",
			wantCode: -32602,
		},
		{
			name:     "server error is generic",
			status:   http.StatusInternalServerError,
			body:     `{"id":1,"jsonrpc":"2.0","error":{"code":-32000,"message":"Server error"}}`,
			check:    isGeneric,
			message:  "Server error",
			wantCode: -32000,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, client := newFakeConsole(t, func(capturedCall) (int, string) {
				return tc.status, tc.body
			})

			_, err := client.Call(context.Background(), "companies", "getCompanyDetails", nil)
			require.Error(t, err)
			assert.True(t, tc.check(err), "wrong classification: %v", err)

			var ge *gravityzone.Error
			require.ErrorAs(t, err, &ge)
			assert.Equal(t, tc.status, ge.HTTPStatus)
			assert.Equal(t, tc.wantCode, ge.RPCCode)
			if tc.message != "" {
				assert.Equal(t, tc.message, ge.Message)
			}
			assert.Equal(t, "companies", ge.Endpoint)
			assert.Equal(t, "getCompanyDetails", ge.Method)
		})
	}
}

func TestCall_Timeout(t *testing.T) {
	_, client := newFakeConsole(t, func(capturedCall) (int, string) {
		time.Sleep(300 * time.Millisecond)
		return okResult(`true`)
	})

	_, err := client.Call(context.Background(), "network", "getEndpointsList", nil,
		gravityzone.WithCallTimeout(30*time.Millisecond))
	require.Error(t, err)
	assert.True(t, gravityzone.IsTimeoutError(err), "got %v", err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCall_ClientTimeoutOption(t *testing.T) {
	_, client := newFakeConsole(t, func(capturedCall) (int, string) {
		time.Sleep(300 * time.Millisecond)
		return okResult(`true`)
	}, gravityzone.WithTimeout(30*time.Millisecond))

	_, err := client.Call(context.Background(), "network", "getEndpointsList", nil)
	require.Error(t, err)
	assert.True(t, gravityzone.IsTimeoutError(err), "got %v", err)
}

func TestCall_CanceledContextIsNotTimeout(t *testing.T) {
	_, client := newFakeConsole(t, func(capturedCall) (int, string) {
		return okResult(`true`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Call(ctx, "network", "getEndpointsList", nil)
	require.Error(t, err)
	assert.False(t, gravityzone.IsTimeoutError(err))
}

func TestCall_MalformedResponse(t *testing.T) {
	_, client := newFakeConsole(t, func(capturedCall) (int, string) {
		return http.StatusOK, "surprise!"
	})

	_, err := client.Call(context.Background(), "companies", "getCompanyDetails", nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "malformed response")
}

func TestCall_MissingResultAndError(t *testing.T) {
	_, client := newFakeConsole(t, func(capturedCall) (int, string) {
		return http.StatusOK, `{"id":1,"jsonrpc":"2.0"}`
	})

	_, err := client.Call(context.Background(), "companies", "getCompanyDetails", nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "neither result nor error")
}

func TestCall_ArgumentSentinels(t *testing.T) {
	fc, client := newFakeConsole(t, func(capturedCall) (int, string) {
		return okResult(`true`)
	})

	_, err := client.Call(context.Background(), "", "getCompanyDetails", nil)
	assert.ErrorIs(t, err, gravityzone.ErrEndpointRequired)

	_, err = client.Call(context.Background(), "companies", "", nil)
	assert.ErrorIs(t, err, jsonrpc.ErrMethodRequired)

	assert.Equal(t, 0, fc.count())
}
