// Package plan wraps the subscription-plan endpoints. The backend
// transports plan limits and features as JSON-string columns; this
// package parses them into typed values at the boundary so the rest of
// the program never handles the raw strings.
package plan

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"sassmon/internal/api"
	"sassmon/internal/cache"
	"sassmon/internal/domain"
)

// activePlansCacheKey and activePlansTTL control local caching of the
// active plan catalog, which changes rarely but is read by several
// views.
const (
	activePlansCacheKey = "active-plans"
	activePlansTTL      = 5 * time.Minute
)

// Service exposes the subscription-plan endpoints.
type Service struct {
	client *api.Client
	cache  *cache.Cache
	logger *zap.Logger
}

// NewService returns a plan service. A nil cache disables local
// caching of the active plan catalog.
func NewService(client *api.Client, c *cache.Cache, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, cache: c, logger: logger}
}

// List returns one page of plan definitions.
func (s *Service) List(ctx context.Context, params api.PageParams) (api.Paginated[domain.SubscriptionPlan], error) {
	page, err := api.GetPaginated[planDTO](ctx, s.client, "/subscription-plans", params)
	if err != nil {
		return api.Paginated[domain.SubscriptionPlan]{}, err
	}
	return decodePage(page)
}

// Get returns a single plan definition.
func (s *Service) Get(ctx context.Context, id string) (*domain.SubscriptionPlan, error) {
	var dto planDTO
	if err := s.client.Get(ctx, "/subscription-plans/"+id, nil, &dto); err != nil {
		return nil, err
	}
	plan, err := dto.decode()
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// Create defines a new plan.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.SubscriptionPlan, error) {
	wire, err := req.encode()
	if err != nil {
		return nil, err
	}

	var dto planDTO
	if err := s.client.Post(ctx, "/subscription-plans", wire, &dto); err != nil {
		return nil, err
	}
	s.invalidateCatalog()

	plan, err := dto.decode()
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// Update applies partial changes to a plan definition.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*domain.SubscriptionPlan, error) {
	wire, err := req.encode()
	if err != nil {
		return nil, err
	}

	var dto planDTO
	if err := s.client.Put(ctx, "/subscription-plans/"+id, wire, &dto); err != nil {
		return nil, err
	}
	s.invalidateCatalog()

	plan, err := dto.decode()
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// Delete removes a plan definition.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "/subscription-plans/"+id, nil); err != nil {
		return err
	}
	s.invalidateCatalog()
	return nil
}

// Active returns the currently offered plans, served from the local
// catalog cache when fresh.
func (s *Service) Active(ctx context.Context) ([]domain.SubscriptionPlan, error) {
	if s.cache != nil {
		var cached []domain.SubscriptionPlan
		hit, err := s.cache.Get(activePlansCacheKey, activePlansTTL, &cached)
		if err != nil {
			s.logger.Warn("plan: catalog cache read failed", zap.Error(err))
		}
		if hit {
			return cached, nil
		}
	}

	var resp struct {
		Plans []planDTO `json:"plans"`
	}
	if err := s.client.Get(ctx, "/subscription-plans/active", nil, &resp); err != nil {
		return nil, err
	}

	plans, err := decodeAll(resp.Plans)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(activePlansCacheKey, plans); err != nil {
			s.logger.Warn("plan: catalog cache write failed", zap.Error(err))
		}
	}
	return plans, nil
}

// SearchByPricing returns the plans within a monthly price range.
func (s *Service) SearchByPricing(ctx context.Context, minPrice, maxPrice float64) ([]domain.SubscriptionPlan, error) {
	query := url.Values{}
	if minPrice > 0 {
		query.Set("min_price", strconv.FormatFloat(minPrice, 'f', -1, 64))
	}
	if maxPrice > 0 {
		query.Set("max_price", strconv.FormatFloat(maxPrice, 'f', -1, 64))
	}

	var resp struct {
		Plans []planDTO `json:"plans"`
	}
	if err := s.client.Get(ctx, "/subscription-plans/search", query, &resp); err != nil {
		return nil, err
	}
	return decodeAll(resp.Plans)
}

func (s *Service) invalidateCatalog() {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(activePlansCacheKey); err != nil {
		s.logger.Warn("plan: catalog cache invalidation failed", zap.Error(err))
	}
}

func decodePage(page api.Paginated[planDTO]) (api.Paginated[domain.SubscriptionPlan], error) {
	plans, err := decodeAll(page.Data)
	if err != nil {
		return api.Paginated[domain.SubscriptionPlan]{}, err
	}
	return api.Paginated[domain.SubscriptionPlan]{
		Data:       plans,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}

func decodeAll(dtos []planDTO) ([]domain.SubscriptionPlan, error) {
	plans := make([]domain.SubscriptionPlan, 0, len(dtos))
	for _, dto := range dtos {
		plan, err := dto.decode()
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}
