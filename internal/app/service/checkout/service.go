// Package checkout turns a customer's submission into a payment at the
// provider. Price is authoritative from the record store here; nothing the
// client sends can change the charged amount.
package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/fatflowers/paylink/internal/platform/automation"
	"github.com/fatflowers/paylink/internal/platform/nowpayments"
	"github.com/fatflowers/paylink/internal/platform/store"
	"github.com/fatflowers/paylink/pkg/config"
	"github.com/fatflowers/paylink/pkg/orderref"
	"github.com/fatflowers/paylink/pkg/types"
)

// ErrPriceUnresolved means the stored record has no positive price to
// charge; the checkout is rejected before any provider call.
var ErrPriceUnresolved = errors.New("product price missing or not positive")

type Service struct {
	cfg        *config.Config
	log        *zap.SugaredLogger
	store      store.Store
	np         *nowpayments.Client
	automation *automation.Forwarder
}

func NewService(cfg *config.Config, log *zap.SugaredLogger, st store.Store, np *nowpayments.Client, fw *automation.Forwarder) *Service {
	return &Service{cfg: cfg, log: log, store: st, np: np, automation: fw}
}

type SubmitRequest struct {
	Ref   types.ProductRef
	Name  string
	Email string
}

type SubmitResult struct {
	// Raw is set when an automation webhook handled the submission; its
	// body is passed through to the client verbatim.
	Raw            json.RawMessage
	InvoiceURL     string
	SubscriptionID string
}

// Submit resolves the product server-side and creates the payment. The
// stored price is re-read on every submission; a client-supplied price is
// never consulted.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	if s.automation.Enabled() {
		paymentType := "One-time"
		if req.Ref.Kind == types.KindSubscription {
			paymentType = "Subscription"
		}
		raw, err := s.automation.Forward(ctx, automation.Submission{
			ProductID:     req.Ref.ID,
			CustomerName:  req.Name,
			CustomerEmail: req.Email,
			PaymentType:   paymentType,
		})
		if err != nil {
			return nil, err
		}
		return &SubmitResult{Raw: raw}, nil
	}

	p, err := s.store.Get(ctx, req.Ref)
	if err != nil {
		return nil, err
	}
	if p.Price <= 0 {
		return nil, fmt.Errorf("%w: product %s", ErrPriceUnresolved, p.ID)
	}

	packed := s.orderReference(p)

	if req.Ref.Kind == types.KindSubscription {
		return s.subscribe(ctx, p, req.Email, packed)
	}

	inv, err := s.np.CreateInvoice(ctx, nowpayments.InvoiceRequest{
		PriceAmount:      p.Price,
		OrderID:          packed,
		OrderDescription: fmt.Sprintf("Payment for %s by %s", p.ProductName, p.CompanyName),
	})
	if err != nil {
		return nil, err
	}
	return &SubmitResult{InvoiceURL: inv.InvoiceURL}, nil
}

// subscribe creates the plan and then the enrollment. A plan failure aborts
// before any subscription attempt; an enrollment failure leaves the plan
// behind at the provider, which is logged for manual reconciliation.
func (s *Service) subscribe(ctx context.Context, p *types.Product, email, packed string) (*SubmitResult, error) {
	planID, err := s.np.CreatePlan(ctx, p.ProductName, p.Price, 0)
	if err != nil {
		return nil, fmt.Errorf("create subscription plan: %w", err)
	}

	subID, err := s.np.CreateSubscription(ctx, planID, email, packed)
	if err != nil {
		s.log.Warnw("orphaned_subscription_plan", "plan_id", planID, "product_id", p.ID, "error", err.Error())
		return nil, fmt.Errorf("create subscription: %w", err)
	}
	return &SubmitResult{SubscriptionID: subID}, nil
}

// orderReference packs the product context so the webhook can recover it
// without a store lookup. Names the codec rejects fall back to the record
// id, which the webhook logs raw.
func (s *Service) orderReference(p *types.Product) string {
	packed, err := orderref.Encode(orderref.Ref{
		CompanyName: p.CompanyName,
		ProductName: p.ProductName,
		Price:       p.Price,
	})
	if err != nil {
		return p.ID
	}
	return packed
}

type DirectSubscriptionRequest struct {
	CompanyName string
	ProductName string
	Price       float64
	Email       string
}

// CreateDirectSubscription is the storeless flow: plan plus enrollment in
// one call, with the packed triple as the only persisted context.
func (s *Service) CreateDirectSubscription(ctx context.Context, req DirectSubscriptionRequest) (string, error) {
	packed, err := orderref.Encode(orderref.Ref{
		CompanyName: req.CompanyName,
		ProductName: req.ProductName,
		Price:       req.Price,
	})
	if err != nil {
		return "", err
	}

	planID, err := s.np.CreatePlan(ctx, req.ProductName, req.Price, 0)
	if err != nil {
		return "", fmt.Errorf("create subscription plan: %w", err)
	}

	subID, err := s.np.CreateSubscription(ctx, planID, req.Email, packed)
	if err != nil {
		s.log.Warnw("orphaned_subscription_plan", "plan_id", planID, "error", err.Error())
		return "", fmt.Errorf("create subscription: %w", err)
	}
	return subID, nil
}
