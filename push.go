package gravityzone

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// Push service types accepted by SetPushEventSettings.
const (
	PushServiceJSONRPC = "jsonRPC"
	PushServiceSplunk  = "splunk"
	PushServiceCEF     = "cef"
)

// EventTypes lists every push event type the console can deliver.
var EventTypes = []string{
	"hwid-change",
	"modules",
	"sva",
	"registration",
	"supa-update-status",
	"av",
	"aph",
	"fw",
	"avc",
	"uc",
	"dp",
	"sva-load",
	"task-status",
	"exchange-malware",
	"network-sandboxing",
	"adcloud",
	"exchange-user-credentials",
	"hd",
	"antiexploit",
	"endpoint-moved-out",
	"endpoint-moved-in",
	"troubleshooting-activity",
	"uninstall",
	"install",
	"new-incident",
	"network-monitor",
	"ransomware-mitigation",
	"security-container-update-available",
	"partner-changed",
	"device-control",
}

var (
	// ErrInvalidPushService is returned for service types outside
	// jsonRPC/splunk/cef.
	ErrInvalidPushService = errors.New("gravityzone: push service type must be jsonRPC, splunk or cef")
	// ErrInvalidEventType is returned for event types the console does not
	// deliver.
	ErrInvalidEventType = errors.New("gravityzone: unknown push event type")
)

// PushSettings configures where and how the console delivers push events.
type PushSettings struct {
	// URL is the web service that receives the events.
	URL string
	// ServiceType defaults to PushServiceJSONRPC when empty.
	ServiceType string
	// Authorization is echoed back in the Authorization header of every
	// delivery. Splunk services receive it under the splunkAuthorization
	// key instead.
	Authorization string
	// Enabled defaults to true.
	Enabled *bool
	// ValidateSSL requires a valid certificate on the receiving service.
	// Defaults to true.
	ValidateSSL *bool
	// EventTypes subscribes the listed event types; nil subscribes all of
	// them.
	EventTypes []string
	// Companies limits delivery to these managed companies (include your
	// own); nil or empty means every company you manage.
	Companies []string
}

// SetPushEventSettings replaces the push event settings of the company
// linked to the API key.
func (c *Client) SetPushEventSettings(ctx context.Context, s PushSettings, opts ...CallOption) error {
	service := s.ServiceType
	if service == "" {
		service = PushServiceJSONRPC
	}
	switch service {
	case PushServiceJSONRPC, PushServiceSplunk, PushServiceCEF:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPushService, s.ServiceType)
	}

	authKey := "authorization"
	if service == PushServiceSplunk {
		authKey = "splunkAuthorization"
	}

	types := s.EventTypes
	if types == nil {
		types = EventTypes
	}
	subscriptions := make(Params, len(types))
	for _, t := range types {
		if !slices.Contains(EventTypes, t) {
			return fmt.Errorf("%w: %q", ErrInvalidEventType, t)
		}
		subscriptions[t] = true
	}

	status := 0
	if boolValue(s.Enabled, true) {
		status = 1
	}

	params := Params{
		"status":      status,
		"serviceType": service,
		"serviceSettings": Params{
			"url":                        s.URL,
			"requireValidSslCertificate": boolValue(s.ValidateSSL, true),
			authKey:                      s.Authorization,
		},
		"subscribeToEventTypes": subscriptions,
		"subscribeToCompanies":  maybeStrings(s.Companies),
	}
	_, err := c.call(ctx, opSetPushEventSettings, params, opts...)
	return err
}

// GetPushEventSettings returns the current push event settings.
func (c *Client) GetPushEventSettings(ctx context.Context, opts ...CallOption) (json.RawMessage, error) {
	return c.call(ctx, opGetPushEventSettings, Params{}, opts...)
}

// SendTestPushEvent asks the console to deliver a synthetic event of the
// given type to the configured push service. A nil data map sends an empty
// payload.
func (c *Client) SendTestPushEvent(ctx context.Context, eventType string, data Params, opts ...CallOption) (json.RawMessage, error) {
	if !slices.Contains(EventTypes, eventType) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEventType, eventType)
	}
	if data == nil {
		data = Params{}
	}
	return c.call(ctx, opSendTestPushEvent, Params{"eventType": eventType, "data": data}, opts...)
}

// GetPushEventStats returns the delivery counters of the push service.
func (c *Client) GetPushEventStats(ctx context.Context, opts ...CallOption) (json.RawMessage, error) {
	return c.call(ctx, opGetPushEventStats, Params{}, opts...)
}

// ResetPushEventStats resets the delivery counters of the push service.
func (c *Client) ResetPushEventStats(ctx context.Context, opts ...CallOption) error {
	_, err := c.call(ctx, opResetPushEventStats, Params{}, opts...)
	return err
}
