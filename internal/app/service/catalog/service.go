// Package catalog orchestrates merchant-facing product/plan records: link
// creation, listing, detail, and deletion on top of the configured record
// store.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/fatflowers/paylink/internal/platform/store"
	"github.com/fatflowers/paylink/pkg/config"
	"github.com/fatflowers/paylink/pkg/types"
)

type Service struct {
	cfg   *config.Config
	log   *zap.SugaredLogger
	store store.Store
}

func NewService(cfg *config.Config, log *zap.SugaredLogger, st store.Store) *Service {
	return &Service{cfg: cfg, log: log, store: st}
}

type CreateLinkRequest struct {
	CompanyName string
	ProductName string
	Description string
	LogoURL     string
	Price       float64
	// Origin is the request's Origin header, used for URL composition when
	// no public base URL is configured.
	Origin string
}

type CreatedLink struct {
	URL string
	// Direct marks URLs pointing straight at the provider's hosted payment
	// page instead of this system's checkout form.
	Direct bool
}

// CreateLink persists a record of the given kind and returns its shareable
// checkout URL. Store backends that assign the URL themselves (the provider
// backend returns the hosted invoice page) short-circuit the back-fill.
func (s *Service) CreateLink(ctx context.Context, kind types.Kind, req CreateLinkRequest) (*CreatedLink, error) {
	p, err := s.store.Create(ctx, kind, types.ProductFields{
		CompanyName: req.CompanyName,
		ProductName: req.ProductName,
		Description: req.Description,
		LogoURL:     req.LogoURL,
		Price:       req.Price,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s record: %w", kind, err)
	}
	if p.CheckoutURL != "" {
		return &CreatedLink{URL: p.CheckoutURL, Direct: true}, nil
	}

	url := s.checkoutURL(req.Origin, p.ID, kind)
	if err := s.store.Update(ctx, types.ProductRef{Kind: kind, ID: p.ID}, types.ProductFields{CheckoutURL: url}); err != nil {
		if errors.Is(err, store.ErrUnsupported) {
			s.log.Warnw("checkout_url_backfill_unsupported", "kind", kind, "id", p.ID)
			return &CreatedLink{URL: url}, nil
		}
		return nil, fmt.Errorf("attach checkout url: %w", err)
	}
	return &CreatedLink{URL: url}, nil
}

// checkoutURL derives the customer-facing form URL from the assigned record
// id. The configured public base wins over the caller's Origin header.
func (s *Service) checkoutURL(origin, id string, kind types.Kind) string {
	base := s.cfg.Checkout.PublicBaseURL
	if base == "" {
		base = origin
	}
	url := fmt.Sprintf("%s/checkout/%s", base, id)
	if q := kind.QueryValue(); q != "" {
		url += "?type=" + q
	}
	return url
}

func (s *Service) Get(ctx context.Context, ref types.ProductRef) (*types.Product, error) {
	return s.store.Get(ctx, ref)
}

func (s *Service) Delete(ctx context.Context, ref types.ProductRef) error {
	return s.store.Delete(ctx, ref)
}

// ListItem is the merchant dashboard's row shape.
type ListItem struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	CompanyName string    `json:"companyName"`
	ProductName string    `json:"productName"`
	Price       float64   `json:"price"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"createdAt"`
}

// List merges both record kinds and sorts newest-first for display. The
// stores return native order; sorting is this layer's job.
func (s *Service) List(ctx context.Context) ([]*ListItem, error) {
	oneTime, err := s.store.List(ctx, types.KindOneTime)
	if err != nil {
		return nil, fmt.Errorf("list one-time records: %w", err)
	}
	subs, err := s.store.List(ctx, types.KindSubscription)
	if err != nil {
		return nil, fmt.Errorf("list subscription records: %w", err)
	}

	items := append(
		lo.Map(oneTime, toListItem),
		lo.Map(subs, toListItem)...,
	)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func toListItem(p *types.Product, _ int) *ListItem {
	return &ListItem{
		ID:          p.ID,
		Type:        p.Kind.ListLabel(),
		CompanyName: p.CompanyName,
		ProductName: p.ProductName,
		Price:       p.Price,
		URL:         p.CheckoutURL,
		CreatedAt:   p.CreatedAt,
	}
}
