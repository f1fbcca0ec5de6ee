// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equipment

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cogentcore.org/core/base/errors"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/scopos/scopos3d/metrics"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/singleflight"
)

// REST endpoints of the equipment registry.
const (
	ListPath      = "/api/equipment"
	DetailPath    = "/api/equipment/by-model/"
	OverduePath   = "/api/equipment/overdue-simple"
	DefectivePath = "/api/notify/equipment/modelcodes"
)

// DefaultTimeout is the default timeout of one request.
const DefaultTimeout = 30 * time.Second

// StatusError is returned for a response with an unexpected HTTP status.
type StatusError struct {
	Path string
	Code int
}

func (se *StatusError) Error() string {
	return fmt.Sprintf("equipment: GET %s: status %d %s", se.Path, se.Code, http.StatusText(se.Code))
}

// Client is a [Source] backed by the equipment registry REST API.
// Failed requests are retried on connection errors and server errors.
// Concurrent detail requests for the same code share one request.
type Client struct {

	// BaseURL is the URL of the registry, without trailing slash.
	BaseURL string

	// HTTP is the underlying retrying client.
	HTTP *retryablehttp.Client

	// Logger is used for request logging.
	Logger *slog.Logger

	details singleflight.Group
}

// NewClient returns a new client for the registry at baseURL.
func NewClient(baseURL string, timeout time.Duration, retryMax int) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	hc := retryablehttp.NewClient()
	hc.HTTPClient.Timeout = timeout
	hc.RetryMax = retryMax
	hc.Logger = slog.Default()
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: hc, Logger: slog.Default()}
}

// get returns the body of a GET request to path.
func (cl *Client) get(ctx context.Context, endpoint, path string) (gjson.Result, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, cl.BaseURL+path, nil)
	if err != nil {
		return gjson.Result{}, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := cl.HTTP.Do(req)
	if err != nil {
		metrics.EquipmentRequests.WithLabelValues(endpoint, "error").Inc()
		return gjson.Result{}, fmt.Errorf("equipment: GET %s: %w", path, err)
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusNotFound:
		metrics.EquipmentRequests.WithLabelValues(endpoint, "not_found").Inc()
		return gjson.Result{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	case resp.StatusCode != http.StatusOK:
		metrics.EquipmentRequests.WithLabelValues(endpoint, "error").Inc()
		return gjson.Result{}, &StatusError{Path: path, Code: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.EquipmentRequests.WithLabelValues(endpoint, "error").Inc()
		return gjson.Result{}, fmt.Errorf("equipment: GET %s: %w", path, err)
	}
	if !gjson.ValidBytes(body) {
		metrics.EquipmentRequests.WithLabelValues(endpoint, "error").Inc()
		return gjson.Result{}, fmt.Errorf("equipment: GET %s: invalid JSON response", path)
	}
	metrics.EquipmentRequests.WithLabelValues(endpoint, "ok").Inc()
	cl.Logger.Debug("equipment: request done", "path", path, "bytes", len(body))
	return gjson.ParseBytes(body), nil
}

func (cl *Client) List(ctx context.Context) ([]Summary, error) {
	res, err := cl.get(ctx, "list", ListPath)
	if err != nil {
		return nil, err
	}
	if !res.IsArray() {
		return nil, fmt.Errorf("equipment: GET %s: expected an array", ListPath)
	}
	var sums []Summary
	res.ForEach(func(_, item gjson.Result) bool {
		sums = append(sums, summaryFromJSON(item))
		return true
	})
	return sums, nil
}

func (cl *Client) Detail(ctx context.Context, modelCode string) (*Detail, error) {
	ch := cl.details.DoChan(modelCode, func() (any, error) {
		// shared by every caller of the code: one caller giving up must not
		// fail the others. The HTTP timeout still bounds each attempt.
		res, err := cl.get(context.WithoutCancel(ctx), "detail", DetailPath+url.PathEscape(modelCode))
		if err != nil {
			return nil, err
		}
		if !res.IsObject() {
			return nil, fmt.Errorf("equipment: detail %q: expected an object", modelCode)
		}
		return detailFromJSON(res), nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		return r.Val.(*Detail), nil
	}
}

func (cl *Client) OverdueCodes(ctx context.Context) ([]string, error) {
	return cl.codes(ctx, "overdue", OverduePath)
}

func (cl *Client) DefectiveCodes(ctx context.Context) ([]string, error) {
	return cl.codes(ctx, "defective", DefectivePath)
}

func (cl *Client) codes(ctx context.Context, endpoint, path string) ([]string, error) {
	res, err := cl.get(ctx, endpoint, path)
	if err != nil {
		return nil, err
	}
	if !res.IsArray() {
		return nil, fmt.Errorf("equipment: GET %s: expected an array", path)
	}
	var codes []string
	for _, c := range res.Array() {
		if s := c.String(); s != "" {
			codes = append(codes, s)
		}
	}
	return codes, nil
}

// IsNetwork returns true if err is a failure to reach the registry or
// a redirect away from it, as opposed to an answer from it.
func IsNetwork(err error) bool {
	if err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, context.Canceled) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code == http.StatusMovedPermanently || se.Code == http.StatusPermanentRedirect
	}
	return true
}
