package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"pos/config"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/service"
	"pos/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	directory service.CustomerDirectory
	fallback  entity.LoyaltyConfig
	lang      language.Tag
	logger    *slog.Logger
}

// NewCustomerService creates a new customer service instance
func NewCustomerService(
	directory service.CustomerDirectory,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CustomerUsecase {
	return &customerService{
		directory: directory,
		fallback:  FallbackLoyaltyConfig(cfg),
		lang:      parseLocale(cfg.Checkout.Locale, logger),
		logger:    logger,
	}
}

// FallbackLoyaltyConfig returns the configured fallback, or the built-in defaults.
func FallbackLoyaltyConfig(cfg *config.Config) entity.LoyaltyConfig {
	if cfg == nil || cfg.Loyalty == nil || cfg.Loyalty.Fallback == nil {
		return entity.DefaultLoyaltyConfig()
	}

	fb := cfg.Loyalty.Fallback

	return entity.LoyaltyConfig{
		PointsPerEuro:         fb.PointsPerEuro,
		RedemptionStep:        fb.RedemptionStep,
		DiscountPerRedemption: fb.DiscountPerRedemption,
		AutoDiscountRate:      fb.AutoDiscountRate,
		AutoDiscountThreshold: fb.AutoDiscountThreshold,
	}.Normalized()
}

func parseLocale(locale string, logger *slog.Logger) language.Tag {
	if locale == "" {
		return language.French
	}

	tag, err := language.Parse(locale)
	if err != nil {
		logger.Warn("Invalid checkout locale, using French collation", "locale", locale, "error", err)

		return language.French
	}

	return tag
}

// Search matches the query against name and phone, ordered by name
func (s *customerService) Search(ctx context.Context, query string) ([]entity.Customer, error) {
	customers, err := s.directory.ListCustomers(ctx)
	if err != nil {
		return nil, errors.Wrap(directoryUnavailable(err), "failed to list customers")
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	matches := make([]entity.Customer, 0, len(customers))
	for _, c := range customers {
		if needle == "" ||
			strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.Phone), needle) {
			matches = append(matches, c)
		}
	}

	// A Collator is not safe for concurrent use.
	collator := collate.New(s.lang, collate.IgnoreCase, collate.IgnoreDiacritics)
	slices.SortStableFunc(matches, func(a, b entity.Customer) int {
		return collator.CompareString(a.Name, b.Name)
	})

	return matches, nil
}

// Get returns a single customer
func (s *customerService) Get(ctx context.Context, id string) (*entity.Customer, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domainerrors.NewValidationError("customer_id", "is required")
	}

	customer, err := s.directory.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(directoryUnavailable(err), "failed to find customer")
	}

	return customer, nil
}

// Create registers a customer with a zero loyalty balance
func (s *customerService) Create(ctx context.Context, input *usecase.CreateCustomerInput) (*entity.Customer, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	if name == "" {
		return nil, domainerrors.NewValidationError("name", "is required")
	}
	if phone == "" {
		return nil, domainerrors.NewValidationError("phone", "is required")
	}

	customer, err := s.directory.Create(ctx, service.NewCustomer{
		Name:    name,
		Phone:   phone,
		Address: strings.TrimSpace(input.Address),
		City:    strings.TrimSpace(input.City),
	})
	if err != nil {
		return nil, errors.Wrap(directoryUnavailable(err), "failed to create customer")
	}

	s.logger.Info("Customer created", "customer_id", customer.ID)

	return customer, nil
}

// LoyaltyConfig fetches the loyalty parameters, falling back to the configured defaults
func (s *customerService) LoyaltyConfig(ctx context.Context) entity.LoyaltyConfig {
	cfg, err := s.directory.LoyaltyConfig(ctx)
	if err != nil || cfg == nil {
		s.logger.Warn("Loyalty configuration unavailable, using fallback", "error", err)

		return s.fallback
	}

	return cfg.Normalized()
}

// Redeem debits points from the customer's balance
func (s *customerService) Redeem(
	ctx context.Context,
	customer *entity.CustomerSnapshot,
	points int,
	cfg entity.LoyaltyConfig,
) (decimal.Decimal, error) {
	if customer == nil {
		return decimal.Zero, &domainerrors.RedemptionError{Points: points, Reason: "no customer selected"}
	}

	cfg = cfg.Normalized()
	rejected := func(reason string) error {
		return &domainerrors.RedemptionError{CustomerID: customer.Customer.ID, Points: points, Reason: reason}
	}

	switch {
	case points <= 0:
		return decimal.Zero, rejected("points to redeem must be positive")
	case points%cfg.RedemptionStep != 0:
		return decimal.Zero, rejected(fmt.Sprintf("points must be a multiple of %d", cfg.RedemptionStep))
	case points > customer.PreviousPoints:
		return decimal.Zero, rejected(fmt.Sprintf("insufficient points: %d available", customer.PreviousPoints))
	}

	discount, err := s.directory.Redeem(ctx, customer.Customer.ID, points)
	if err != nil {
		s.logger.Warn("Loyalty redemption rejected",
			"customer_id", customer.Customer.ID,
			"points", points,
			"error", err,
		)

		var backendErr *service.BackendError
		if errors.As(err, &backendErr) && backendErr.Message != "" {
			return decimal.Zero, rejected(backendErr.Message)
		}

		return decimal.Zero, rejected("redemption failed, please retry or skip")
	}

	s.logger.Info("Loyalty points redeemed",
		"customer_id", customer.Customer.ID,
		"points", points,
		"discount", discount.StringFixed(2),
	)

	return discount, nil
}

// directoryUnavailable reports a customer directory failure as a gateway error
func directoryUnavailable(err error) error {
	return domainerrors.ErrBackendUnavailable.WithDetails(err.Error())
}
