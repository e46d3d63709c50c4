// Package memory is the mock record store: a process-local list guarded by a
// mutex, used when no remote backend is configured.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/fatflowers/paylink/internal/platform/store"
	"github.com/fatflowers/paylink/pkg/tool"
	"github.com/fatflowers/paylink/pkg/types"
)

type Store struct {
	mu      sync.Mutex
	records map[types.Kind][]*types.Product
}

func New() *Store {
	return &Store{records: make(map[types.Kind][]*types.Product)}
}

func (s *Store) Create(ctx context.Context, kind types.Kind, fields types.ProductFields) (*types.Product, error) {
	p := &types.Product{
		ID:          tool.GenerateUUIDV7(),
		Kind:        kind,
		CompanyName: fields.CompanyName,
		ProductName: fields.ProductName,
		Description: fields.Description,
		Price:       fields.Price,
		CheckoutURL: fields.CheckoutURL,
		LogoURL:     fields.LogoURL,
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[kind] = append(s.records[kind], p)

	cp := *p
	return &cp, nil
}

func (s *Store) Get(ctx context.Context, ref types.ProductRef) (*types.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.records[ref.Kind] {
		if p.ID == ref.ID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) List(ctx context.Context, kind types.Kind) ([]*types.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*types.Product, 0, len(s.records[kind]))
	for _, p := range s.records[kind] {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (s *Store) Update(ctx context.Context, ref types.ProductRef, fields types.ProductFields) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.records[ref.Kind] {
		if p.ID != ref.ID {
			continue
		}
		if fields.CompanyName != "" {
			p.CompanyName = fields.CompanyName
		}
		if fields.ProductName != "" {
			p.ProductName = fields.ProductName
		}
		if fields.Description != "" {
			p.Description = fields.Description
		}
		if fields.Price > 0 {
			p.Price = fields.Price
		}
		if fields.CheckoutURL != "" {
			p.CheckoutURL = fields.CheckoutURL
		}
		if fields.LogoURL != "" {
			p.LogoURL = fields.LogoURL
		}
		return nil
	}
	return store.ErrNotFound
}

func (s *Store) Delete(ctx context.Context, ref types.ProductRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs := s.records[ref.Kind]
	for i, p := range recs {
		if p.ID == ref.ID {
			s.records[ref.Kind] = append(recs[:i], recs[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}
