package gravityzone

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
)

// CreateReportParams collects the fields of CreateReport. Name, Type and
// TargetIDs are required by the console; the optional sections follow the
// createReport request shapes.
type CreateReportParams struct {
	Name      string
	Type      int
	TargetIDs []string
	// ScheduledInfo sets the recurrence; omitted means an instant report.
	ScheduledInfo Params
	// Options carries the per-report-type options.
	Options Params
	// Emails receives the generated report.
	Emails []string
}

// GetReports walks the scheduled reports matching name and report type.
// With onlyVM set only virtual-machine reports are returned, otherwise
// reports for computers and virtual machines.
func (c *Client) GetReports(ctx context.Context, name string, reportType int, onlyVM bool, opts ...CallOption) iter.Seq2[map[string]any, error] {
	params := Params{"name": name, "type": reportType}
	return c.paginate(ctx, opGetReportsList, params, withService(opts, machineService(onlyVM))...)
}

// CreateReport schedules a report over the given targets and returns its ID.
func (c *Client) CreateReport(ctx context.Context, p CreateReportParams, onlyVM bool, opts ...CallOption) (string, error) {
	params := Params{
		"name":      p.Name,
		"type":      p.Type,
		"targetIds": p.TargetIDs,
	}
	if len(p.ScheduledInfo) > 0 {
		params["scheduledInfo"] = p.ScheduledInfo
	}
	if len(p.Options) > 0 {
		params["options"] = p.Options
	}
	if len(p.Emails) > 0 {
		params["emailsList"] = p.Emails
	}

	raw, err := c.call(ctx, opCreateReport, params, withService(opts, machineService(onlyVM))...)
	if err != nil {
		return "", err
	}
	var id string
	if err := json.Unmarshal(raw, &id); err != nil {
		return "", fmt.Errorf("gravityzone: decode report id: %w", err)
	}
	return id, nil
}

// GetReportLinks returns the download availability and links of a generated
// report.
func (c *Client) GetReportLinks(ctx context.Context, reportID string, opts ...CallOption) (json.RawMessage, error) {
	return c.call(ctx, opGetDownloadLinks, Params{"reportId": reportID}, opts...)
}

// DeleteReport deletes a scheduled report.
func (c *Client) DeleteReport(ctx context.Context, reportID string, opts ...CallOption) error {
	_, err := c.call(ctx, opDeleteReport, Params{"reportId": reportID}, opts...)
	return err
}
