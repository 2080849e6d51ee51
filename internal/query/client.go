package query

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	postgrest "github.com/supabase-community/postgrest-go"
)

// TableSource starts a PostgREST query on a table. Both *supabase.Client and
// *postgrest.Client satisfy it.
type TableSource interface {
	From(table string) *postgrest.QueryBuilder
}

// Executor runs query specs. Views depend on this rather than on *Client.
type Executor interface {
	Execute(ctx context.Context, spec Spec, dest interface{}) (Result, error)
}

// Result carries what a query returns besides the decoded rows.
type Result struct {
	Count int64 // exact row count; only set in ModeCount
}

// Client executes Specs against the hosted database. It keeps no state
// between calls: no retries, no caching.
type Client struct {
	source TableSource
	log    *logrus.Entry
}

// NewClient wraps a table source. A nil logger discards query logs.
func NewClient(source TableSource, logger *logrus.Logger) *Client {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.PanicLevel)
	}
	return &Client{source: source, log: logger.WithField("component", "query")}
}

// NewRESTClient builds a bare PostgREST client for a Supabase project, for
// callers that do not need the rest of the Supabase SDK.
func NewRESTClient(supabaseURL, apiKey string) (*postgrest.Client, error) {
	if supabaseURL == "" || apiKey == "" {
		return nil, errors.New("supabase url and api key are required")
	}
	restURL := strings.TrimSuffix(supabaseURL, "/") + "/rest/v1"
	client := postgrest.NewClient(restURL, "", map[string]string{
		"apikey":        apiKey,
		"Authorization": fmt.Sprintf("Bearer %s", apiKey),
	})
	if client.ClientError != nil {
		return nil, fmt.Errorf("failed to initialize PostgREST client: %w", client.ClientError)
	}
	return client, nil
}

type response struct {
	body  []byte
	count int64
	err   error
}

// Execute runs spec and decodes the rows into dest (a pointer to a slice for
// ModeRows, a pointer to a struct for ModeSingle; ignored for ModeCount).
// Remote failures come back as *QueryError.
func (c *Client) Execute(ctx context.Context, spec Spec, dest interface{}) (Result, error) {
	if err := spec.Validate(); err != nil {
		return Result{}, err
	}
	if spec.Mode != ModeCount && dest == nil {
		return Result{}, fmt.Errorf("query %s: %s mode needs a destination", spec.Table, spec.Mode)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("query %s: %w", spec.Table, err)
	}

	fb := c.build(spec)
	start := time.Now()
	done := make(chan response, 1)
	go func() {
		body, count, err := fb.Execute()
		done <- response{body: body, count: count, err: err}
	}()

	var resp response
	select {
	case <-ctx.Done():
		return Result{}, fmt.Errorf("query %s: %w", spec.Table, ctx.Err())
	case resp = <-done:
	}

	entry := c.log.WithFields(logrus.Fields{
		"table":      spec.Table,
		"mode":       spec.Mode.String(),
		"latency_ms": time.Since(start).Milliseconds(),
	})
	if resp.err != nil {
		entry.WithError(resp.err).Warn("Query failed")
		return Result{}, newQueryError(spec.Table, resp.err)
	}
	entry.Debug("Query completed")

	if spec.Mode == ModeCount {
		return Result{Count: resp.count}, nil
	}
	if err := json.Unmarshal(resp.body, dest); err != nil {
		return Result{}, decodeError(spec.Table, err)
	}
	return Result{}, nil
}

func (c *Client) build(spec Spec) *postgrest.FilterBuilder {
	count := ""
	if spec.Mode == ModeCount {
		count = "exact"
	}
	fb := c.source.From(spec.Table).Select(spec.columns(), count, false)
	for _, f := range spec.Filters {
		fb = fb.Eq(f.Column, f.Value)
	}
	if spec.Order != nil {
		fb = fb.Order(spec.Order.Column, &postgrest.OrderOpts{Ascending: !spec.Order.Descending})
	}
	if spec.Range != nil {
		fb = fb.Range(spec.Range.From, spec.Range.To, "")
	}
	switch spec.Mode {
	case ModeSingle:
		fb = fb.Single()
	case ModeCount:
		// GET with no rows rather than HEAD, so error bodies still arrive.
		fb = fb.Limit(0, "")
	}
	return fb
}
