package gravityzone

import (
	"context"
	"encoding/json"
	"iter"

	"go.uber.org/zap"
)

// page is the envelope shared by every paginated listing.
//
// total is a pointer so a page that omits the field is not mistaken for an
// empty result set.
type page struct {
	Items      []map[string]any `json:"items"`
	Total      *int             `json:"total"`
	Page       int              `json:"page"`
	PagesCount int              `json:"pagesCount"`
	PerPage    int              `json:"perPage"`
}

// Paginate lazily walks every item of a paginated listing, requesting pages
// one at a time as the consumer advances.
//
// The sequence follows the console's paging protocol: requests start at page
// 1 with the client's configured page size, a reported total of zero ends the
// walk before any item, and the walk stops after the page that reports itself
// last. Breaking out of the loop early stops further requests. On failure the
// sequence yields the error once and stops; items already yielded remain
// valid.
//
// The params map is never modified. Each request gets its own copy with the
// page bookkeeping added, so a map may be shared across concurrent walks.
func (c *Client) Paginate(ctx context.Context, endpoint, method string, params Params, opts ...CallOption) iter.Seq2[map[string]any, error] {
	o := callOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	return func(yield func(map[string]any, error) bool) {
		pageNo := 1
		for {
			p := params.clone()
			p["page"] = pageNo
			p["perPage"] = c.perPage

			raw, err := c.Call(ctx, endpoint, method, p, opts...)
			if err != nil {
				yield(nil, err)
				return
			}

			var pg page
			if err := json.Unmarshal(raw, &pg); err != nil {
				ci := callInfo{endpoint: endpoint, service: o.service, method: method, params: p}
				yield(nil, ci.wrap(KindGeneric, "decode page", err))
				return
			}

			c.log.Debug("fetched page",
				zap.String("method", method),
				zap.Int("page", pg.Page),
				zap.Int("pagesCount", pg.PagesCount),
				zap.Int("items", len(pg.Items)),
			)

			if pg.Total != nil && *pg.Total == 0 {
				return
			}
			for _, item := range pg.Items {
				if !yield(item, nil) {
					return
				}
			}
			if pg.Page >= pg.PagesCount {
				return
			}
			pageNo++
		}
	}
}

// Collect drains a sequence into a slice. On error it returns the items
// yielded so far alongside the error.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var out []T
	for v, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}
