// Package provider backs the record store with NOWPayments itself: one-time
// records live in the provider's invoice history and subscription records
// are provider plans. Nothing is persisted locally; checkout context rides
// in the packed order reference.
package provider

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/fatflowers/paylink/internal/platform/nowpayments"
	"github.com/fatflowers/paylink/internal/platform/store"
	"github.com/fatflowers/paylink/pkg/orderref"
	"github.com/fatflowers/paylink/pkg/types"
)

type Store struct {
	np  *nowpayments.Client
	log *zap.SugaredLogger
}

func New(np *nowpayments.Client, log *zap.SugaredLogger) *Store {
	return &Store{np: np, log: log}
}

func (s *Store) Create(ctx context.Context, kind types.Kind, fields types.ProductFields) (*types.Product, error) {
	switch kind {
	case types.KindSubscription:
		planID, err := s.np.CreatePlan(ctx, fields.ProductName, fields.Price, 0)
		if err != nil {
			return nil, mapErr(err)
		}
		return &types.Product{
			ID:          planID,
			Kind:        kind,
			CompanyName: fields.CompanyName,
			ProductName: fields.ProductName,
			Description: fields.Description,
			Price:       fields.Price,
			CreatedAt:   time.Now().UTC(),
		}, nil
	default:
		packed, err := orderref.Encode(orderref.Ref{
			CompanyName: fields.CompanyName,
			ProductName: fields.ProductName,
			Price:       fields.Price,
		})
		if err != nil {
			return nil, fmt.Errorf("pack order reference: %w", err)
		}
		inv, err := s.np.CreateInvoice(ctx, nowpayments.InvoiceRequest{
			PriceAmount:      fields.Price,
			OrderID:          packed,
			OrderDescription: fmt.Sprintf("Payment for %s by %s", fields.ProductName, fields.CompanyName),
		})
		if err != nil {
			return nil, mapErr(err)
		}
		p := invoiceToProduct(inv)
		p.Description = fields.Description
		return p, nil
	}
}

func (s *Store) Get(ctx context.Context, ref types.ProductRef) (*types.Product, error) {
	if ref.Kind == types.KindSubscription {
		plan, err := s.np.GetPlan(ctx, ref.ID)
		if err != nil {
			return nil, mapErr(err)
		}
		return planToProduct(plan), nil
	}
	inv, err := s.np.GetInvoice(ctx, ref.ID)
	if err != nil {
		return nil, mapErr(err)
	}
	return invoiceToProduct(inv), nil
}

func (s *Store) List(ctx context.Context, kind types.Kind) ([]*types.Product, error) {
	if kind == types.KindSubscription {
		plans, err := s.np.ListPlans(ctx)
		if err != nil {
			return nil, mapErr(err)
		}
		out := make([]*types.Product, 0, len(plans))
		for i := range plans {
			out = append(out, planToProduct(&plans[i]))
		}
		return out, nil
	}

	invs, err := s.np.ListInvoices(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	out := make([]*types.Product, 0, len(invs))
	for i := range invs {
		out = append(out, invoiceToProduct(&invs[i]))
	}
	return out, nil
}

// Update cannot be expressed against provider-held records; invoices and
// plans are immutable once created.
func (s *Store) Update(ctx context.Context, ref types.ProductRef, fields types.ProductFields) error {
	return store.ErrUnsupported
}

// Delete is likewise unsupported: the provider keeps its invoice history and
// plan registry forever.
func (s *Store) Delete(ctx context.Context, ref types.ProductRef) error {
	return store.ErrUnsupported
}

func mapErr(err error) error {
	if errors.Is(err, nowpayments.ErrNotFound) {
		return store.ErrNotFound
	}
	return err
}

// invoiceToProduct recovers product context from an invoice: the packed
// order reference when it decodes, the order description otherwise.
func invoiceToProduct(inv *nowpayments.Invoice) *types.Product {
	p := &types.Product{
		ID:          inv.ID,
		Kind:        types.KindOneTime,
		ProductName: inv.OrderDescription,
		CheckoutURL: inv.InvoiceURL,
	}
	if ref, err := orderref.Decode(inv.OrderID); err == nil {
		p.CompanyName = ref.CompanyName
		p.ProductName = ref.ProductName
		p.Price = ref.Price
	} else if v, perr := strconv.ParseFloat(inv.PriceAmount, 64); perr == nil {
		p.Price = v
	}
	if ts, err := time.Parse(time.RFC3339, inv.CreatedAt); err == nil {
		p.CreatedAt = ts
	}
	return p
}

func planToProduct(plan *nowpayments.Plan) *types.Product {
	p := &types.Product{
		ID:          plan.ID,
		Kind:        types.KindSubscription,
		ProductName: plan.Title,
		Price:       plan.Amount,
	}
	if ts, err := time.Parse(time.RFC3339, plan.CreatedAt); err == nil {
		p.CreatedAt = ts
	}
	return p
}
