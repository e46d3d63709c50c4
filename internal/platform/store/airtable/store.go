// Package airtable backs the record store with Airtable tables over its REST
// API: one table per record kind, personal access token auth.
package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/fatflowers/paylink/internal/platform/store"
	"github.com/fatflowers/paylink/pkg/config"
	"github.com/fatflowers/paylink/pkg/types"
)

const defaultBaseURL = "https://api.airtable.com/v0"

type Store struct {
	cfg     config.AirtableConfig
	baseURL string
	client  *http.Client
	log     *zap.SugaredLogger
}

func New(cfg *config.Config, log *zap.SugaredLogger) *Store {
	return &Store{
		cfg:     cfg.Airtable,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

// WithBaseURL points the store at a different API host. Used by tests.
func (s *Store) WithBaseURL(base string) *Store {
	s.baseURL = base
	return s
}

type record struct {
	ID          string         `json:"id"`
	CreatedTime time.Time      `json:"createdTime"`
	Fields      map[string]any `json:"fields"`
}

type listResponse struct {
	Records []record `json:"records"`
}

func (s *Store) tableFor(kind types.Kind) string {
	if kind == types.KindSubscription {
		return s.cfg.PlansTable
	}
	return s.cfg.OrdersTable
}

// request performs one Airtable call. Missing credentials surface here as
// ErrStoreUnavailable so a misconfigured deployment fails on first use
// instead of at startup.
func (s *Store) request(ctx context.Context, method string, kind types.Kind, recordID string, fields map[string]any, out any) error {
	if s.cfg.PAT == "" || s.cfg.BaseID == "" {
		return fmt.Errorf("airtable credentials missing: %w", store.ErrStoreUnavailable)
	}
	table := s.tableFor(kind)
	if table == "" {
		return fmt.Errorf("airtable table for kind %q not configured: %w", kind, store.ErrStoreUnavailable)
	}

	u := fmt.Sprintf("%s/%s/%s", s.baseURL, s.cfg.BaseID, url.PathEscape(table))
	if recordID != "" {
		u += "/" + url.PathEscape(recordID)
	}

	var body io.Reader
	if fields != nil {
		raw, err := json.Marshal(map[string]any{"fields": fields})
		if err != nil {
			return fmt.Errorf("airtable: marshal fields: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("airtable: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.PAT)
	if fields != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("airtable: %s %s: %w", method, table, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("airtable: read response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return store.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.log.Errorw("airtable_error", "method", method, "table", table, "status", resp.StatusCode, "body", string(raw))
		return fmt.Errorf("airtable: %s %s: status %d", method, table, resp.StatusCode)
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("airtable: decode response: %w", err)
		}
	}
	return nil
}

func (s *Store) Create(ctx context.Context, kind types.Kind, fields types.ProductFields) (*types.Product, error) {
	sc := schemaFor(kind)
	var rec record
	if err := s.request(ctx, http.MethodPost, kind, "", sc.encode(fields), &rec); err != nil {
		return nil, err
	}
	return sc.decode(rec.ID, kind, rec.CreatedTime, rec.Fields), nil
}

func (s *Store) Get(ctx context.Context, ref types.ProductRef) (*types.Product, error) {
	var rec record
	if err := s.request(ctx, http.MethodGet, ref.Kind, ref.ID, nil, &rec); err != nil {
		return nil, err
	}
	return schemaFor(ref.Kind).decode(rec.ID, ref.Kind, rec.CreatedTime, rec.Fields), nil
}

func (s *Store) List(ctx context.Context, kind types.Kind) ([]*types.Product, error) {
	var resp listResponse
	if err := s.request(ctx, http.MethodGet, kind, "", nil, &resp); err != nil {
		return nil, err
	}
	sc := schemaFor(kind)
	out := make([]*types.Product, 0, len(resp.Records))
	for _, rec := range resp.Records {
		out = append(out, sc.decode(rec.ID, kind, rec.CreatedTime, rec.Fields))
	}
	return out, nil
}

func (s *Store) Update(ctx context.Context, ref types.ProductRef, fields types.ProductFields) error {
	return s.request(ctx, http.MethodPatch, ref.Kind, ref.ID, schemaFor(ref.Kind).encode(fields), nil)
}

func (s *Store) Delete(ctx context.Context, ref types.ProductRef) error {
	return s.request(ctx, http.MethodDelete, ref.Kind, ref.ID, nil, nil)
}
