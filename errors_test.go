package gravityzone_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnehpets/gravityzone"
)

func TestError_Format(t *testing.T) {
	_, client := newFakeConsole(t, func(capturedCall) (int, string) {
		return http.StatusForbidden, ""
	})

	_, err := client.Call(context.Background(), "reports", "getReportsList", nil,
		gravityzone.WithService("computers"))
	require.Error(t, err)

	// No error body, so the message falls back to the HTTP status text.
	assert.Equal(t, "gravityzone: access denied: Forbidden (reports/computers getReportsList)", err.Error())
}

func TestError_FormatWithoutCall(t *testing.T) {
	err := &gravityzone.Error{Kind: gravityzone.KindTimeout, Message: "deadline exceeded"}
	assert.Equal(t, "gravityzone: timeout: deadline exceeded", err.Error())

	err = &gravityzone.Error{Kind: gravityzone.KindGeneric}
	assert.Equal(t, "gravityzone: api error: request failed", err.Error())
}

func TestError_KindStrings(t *testing.T) {
	cases := map[gravityzone.ErrorKind]string{
		gravityzone.KindGeneric:        "api error",
		gravityzone.KindAuthentication: "authentication failed",
		gravityzone.KindAuthorization:  "access denied",
		gravityzone.KindMethodNotFound: "method not found",
		gravityzone.KindInvalidParams:  "invalid params",
		gravityzone.KindTimeout:        "timeout",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}

func TestPredicates_SeeThroughWrapping(t *testing.T) {
	_, client := newFakeConsole(t, func(capturedCall) (int, string) {
		return http.StatusForbidden, ""
	})

	_, err := client.Call(context.Background(), "companies", "getCompaniesList", nil)
	require.Error(t, err)

	wrapped := fmt.Errorf("walk companies: %w", err)
	assert.True(t, gravityzone.IsAuthorizationError(wrapped))
	assert.False(t, gravityzone.IsAuthenticationError(wrapped))
}

func TestPredicates_RejectOtherErrors(t *testing.T) {
	err := errors.New("some other failure")
	assert.False(t, gravityzone.IsAuthenticationError(err))
	assert.False(t, gravityzone.IsAuthorizationError(err))
	assert.False(t, gravityzone.IsMethodNotFoundError(err))
	assert.False(t, gravityzone.IsInvalidParamsError(err))
	assert.False(t, gravityzone.IsTimeoutError(err))

	assert.False(t, gravityzone.IsTimeoutError(nil))
}

func TestError_UnwrapExposesCause(t *testing.T) {
	_, client := newFakeConsole(t, func(capturedCall) (int, string) {
		time.Sleep(300 * time.Millisecond)
		return okResult(`true`)
	})

	_, err := client.Call(context.Background(), "network", "getEndpointsList", nil,
		gravityzone.WithCallTimeout(30*time.Millisecond))
	require.Error(t, err)

	var ge *gravityzone.Error
	require.ErrorAs(t, err, &ge)
	assert.NotNil(t, ge.Unwrap())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestError_CarriesParams(t *testing.T) {
	_, client := newFakeConsole(t, func(capturedCall) (int, string) {
		return http.StatusBadRequest, `{"id":1,"jsonrpc":"2.0","error":{"code":-32602,"message":"Invalid params"}}`
	})

	params := gravityzone.Params{"companyId": "abc"}
	_, err := client.Call(context.Background(), "companies", "getCompanyDetails", params)
	require.Error(t, err)

	var ge *gravityzone.Error
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, "abc", ge.Params["companyId"])
}
