package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/drgilson/gascrm-backend/pkg/db/models"
	pkgerrors "github.com/drgilson/gascrm-backend/pkg/errors"
)

// monthlySalesPlaceholder is returned as vendas_mes until order values are
// actually tracked.
const monthlySalesPlaceholder = 0

// Summary is the dashboard payload.
type Summary struct {
	TotalCustomers int64 `json:"total_clientes"`
	MessagesToday  int64 `json:"mensagens_hoje"`
	CustomersAlert int64 `json:"clientes_alerta"`
	MonthlySales   int64 `json:"vendas_mes"`
}

// Service defines the behavior needed by the stats controller.
type Service interface {
	Summary(ctx context.Context) (*Summary, error)
}

type service struct {
	repo          repository
	lookaheadDays int
	now           func() time.Time
}

type repository interface {
	CountActiveCustomers(ctx context.Context) (int64, error)
	CountMessagesBetween(ctx context.Context, from, to time.Time) (int64, error)
	ListActiveWithPurchase(ctx context.Context) ([]models.Customer, error)
}

// ServiceParams bundles the dependencies required to build a stats service.
type ServiceParams struct {
	Repo          repository
	LookaheadDays int

	// Now overrides the clock in tests.
	Now func() time.Time
}

// NewService constructs a stats service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("stats repository is required")
	}
	lookahead := params.LookaheadDays
	if lookahead <= 0 {
		lookahead = 5
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{repo: params.Repo, lookaheadDays: lookahead, now: now}, nil
}

// Summary computes the dashboard numbers. "Today" is the server-local
// calendar day; a customer is in alert when their next expected purchase
// (last purchase + cycle) falls within the lookahead window.
func (s *service) Summary(ctx context.Context) (*Summary, error) {
	total, err := s.repo.CountActiveCustomers(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count customers")
	}

	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	today, err := s.repo.CountMessagesBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count messages")
	}

	candidates, err := s.repo.ListActiveWithPurchase(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list alert candidates")
	}

	// Purchase dates are stored at UTC midnight while dayStart is local, so
	// the comparison is on calendar dates, not instants. Otherwise a next
	// purchase landing exactly on the deadline day slips out of the window
	// in zones east of UTC.
	deadline := dayStart.AddDate(0, 0, s.lookaheadDays)
	var inAlert int64
	for i := range candidates {
		next := candidates[i].NextPurchase()
		if next == nil {
			continue
		}
		nextDay := time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, dayStart.Location())
		if !nextDay.After(deadline) {
			inAlert++
		}
	}

	return &Summary{
		TotalCustomers: total,
		MessagesToday:  today,
		CustomersAlert: inAlert,
		MonthlySales:   monthlySalesPlaceholder,
	}, nil
}
