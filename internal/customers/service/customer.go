package service

import (
	"errors"
	"fmt"
	"math"

	customererrors "github.com/reachronakofficial756/excelSort/internal/customers/errors"
	"github.com/reachronakofficial756/excelSort/internal/customers/repository"
	"github.com/reachronakofficial756/excelSort/internal/customers/validator"
	"github.com/reachronakofficial756/excelSort/internal/observability"
	"github.com/reachronakofficial756/excelSort/pkg/config"
	apperrors "github.com/reachronakofficial756/excelSort/pkg/errors"
	"github.com/reachronakofficial756/excelSort/pkg/locale"
	"github.com/reachronakofficial756/excelSort/pkg/model"
	"github.com/reachronakofficial756/excelSort/pkg/sanitizer"
)

// CustomerService builds profile views over the startup snapshot. All reads
// are in-memory lookups, so no method takes a context.
type CustomerService interface {
	View(phone string) (*model.CustomerView, error)
	ViewByPage(page int) (*model.CustomerView, error)
	Search(mobile string) (*model.SearchResult, error)
	List(limit int, offset int) ([]*model.CustomerSummary, int64, error)
	TotalPages() int
	Ready() bool
	Stats() model.DatasetStats
}

type customerService struct {
	repo      repository.CustomerRepository
	validator *validator.SearchValidator
	cfg       *config.Config
}

func NewCustomerService(
	repo repository.CustomerRepository,
	validator *validator.SearchValidator,
	cfg *config.Config,
) CustomerService {
	return &customerService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

// View aggregates every lead and order row keyed by the canonical phone into
// one profile.
func (s *customerService) View(phone string) (*model.CustomerView, error) {
	if s.repo.Empty() {
		return nil, apperrors.Unavailable("Customer data")
	}
	if _, err := s.repo.PageFor(phone); err != nil {
		if errors.Is(err, customererrors.ErrNotFound) {
			return nil, apperrors.NotFound("Customer " + phone)
		}
		s.cfg.Log.Error("Failed to resolve customer page",
			"phone", phone,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to retrieve customer", err)
	}

	leads := s.repo.Leads(phone)
	orders := s.repo.Orders(phone)

	view := &model.CustomerView{
		Phone:        phone,
		DisplayPhone: model.DisplayMobile(phone),
		Leads:        leads,
		Orders:       orders,
		TotalOrders:  len(orders),
		Active:       len(orders) > 0,
		MobileValid:  sanitizer.MobileValid(phone),
	}

	view.Name = displayName(leads, orders)

	if len(orders) > 0 {
		var sum float64
		for _, o := range orders {
			sum += o.OrderValue
		}
		view.AvgOrderValue = math.Round(sum/float64(len(orders))*100) / 100
	}

	view.PrimaryCity = primaryCity(orders)

	if country := locale.InferCountryFromPhone(view.DisplayPhone); country != nil {
		view.Country = country.Code
	}
	view.TimeZone = locale.InferTimezoneFromPhone(view.DisplayPhone)

	return view, nil
}

func (s *customerService) ViewByPage(page int) (*model.CustomerView, error) {
	phone, err := s.repo.PhoneAt(page)
	if err != nil {
		if errors.Is(err, customererrors.ErrNoData) {
			return nil, apperrors.Unavailable("Customer data")
		}
		if errors.Is(err, customererrors.ErrNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("page %d", page))
		}
		s.cfg.Log.Error("Failed to resolve page",
			"page", page,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to retrieve customer page", err)
	}

	return s.View(phone)
}

// Search normalizes the query the same way single lookups have always been
// keyed and resolves it to a page.
func (s *customerService) Search(mobile string) (*model.SearchResult, error) {
	if s.repo.Empty() {
		observability.Searches.WithLabelValues("no_data").Inc()
		return nil, apperrors.Unavailable("Customer data")
	}

	req := &model.SearchRequest{Mobile: mobile}
	if err := s.validator.Validate(req); err != nil {
		observability.Searches.WithLabelValues("invalid").Inc()
		s.cfg.Log.Warn("Search validation failed",
			"mobile", mobile,
			"error", err,
		)
		return nil, apperrors.Validation("Search validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	norm := sanitizer.NormalizeSearchMobile(mobile)
	page, err := s.repo.PageFor(norm)
	if err != nil {
		if errors.Is(err, customererrors.ErrNotFound) {
			observability.Searches.WithLabelValues("not_found").Inc()
			s.cfg.Log.Debug("Search found no customer",
				"mobile", mobile,
				"normalized", norm,
			)
			return nil, apperrors.NotFound("Customer " + norm)
		}
		return nil, apperrors.Internal("Failed to search customers", err)
	}

	observability.Searches.WithLabelValues("found").Inc()
	s.cfg.Log.Debug("Search completed",
		"mobile", mobile,
		"normalized", norm,
		"page", page,
	)

	return &model.SearchResult{Phone: norm, Page: page}, nil
}

func (s *customerService) List(limit int, offset int) ([]*model.CustomerSummary, int64, error) {
	if s.repo.Empty() {
		return nil, 0, apperrors.Unavailable("Customer data")
	}

	limit = config.NormalizePaginationLimit(limit)
	offset = config.NormalizeOffset(offset)

	index := s.repo.RoutingIndex()
	total := int64(len(index))

	if offset >= len(index) {
		return []*model.CustomerSummary{}, total, nil
	}
	end := min(offset+limit, len(index))

	summaries := make([]*model.CustomerSummary, 0, end-offset)
	for i, phone := range index[offset:end] {
		summaries = append(summaries, s.summarize(phone, offset+i+1))
	}

	return summaries, total, nil
}

func (s *customerService) summarize(phone string, page int) *model.CustomerSummary {
	leads := s.repo.Leads(phone)
	orders := s.repo.Orders(phone)

	summary := &model.CustomerSummary{
		Phone:        phone,
		DisplayPhone: model.DisplayMobile(phone),
		TotalOrders:  len(orders),
		Active:       len(orders) > 0,
		Page:         page,
	}
	summary.Name = displayName(leads, orders)
	return summary
}

// displayName picks the first non-blank lead name, falling back to the first
// order's customer name. CRM rows often carry a number with the name cell
// left empty.
func displayName(leads []model.LeadRecord, orders []model.OrderRecord) string {
	for _, l := range leads {
		if l.Name != "" {
			return l.Name
		}
	}
	if len(orders) > 0 {
		return orders[0].CustomerName
	}
	return ""
}

func (s *customerService) TotalPages() int {
	return s.repo.TotalPages()
}

func (s *customerService) Ready() bool {
	return !s.repo.Empty()
}

func (s *customerService) Stats() model.DatasetStats {
	return s.repo.Stats()
}

// primaryCity is the most frequent non-blank order city; ties go to the city
// seen first in source order.
func primaryCity(orders []model.OrderRecord) string {
	counts := make(map[string]int)
	best := ""
	bestCount := 0
	for _, o := range orders {
		if o.City == "" {
			continue
		}
		counts[o.City]++
		if counts[o.City] > bestCount {
			best = o.City
			bestCount = counts[o.City]
		}
	}
	return best
}
