package settings

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	pkgerrors "github.com/jacmel/storefront-backend/pkg/errors"
	"github.com/jacmel/storefront-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// UpdateInput is the admin payload replacing the settings record.
type UpdateInput struct {
	Name           string          `json:"name" validate:"required,max=120"`
	ContactNumber  string          `json:"contact_number" validate:"required,max=32"`
	WelcomeMessage string          `json:"welcome_message" validate:"max=500"`
	DeliveryFee    decimal.Decimal `json:"delivery_fee"`
	Logo           string          `json:"logo"`
}

type Service interface {
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, input UpdateInput) (Settings, error)
}

type service struct {
	repo     *Repository
	logg     *logger.Logger
	validate *validator.Validate
}

func NewService(repo *Repository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "settings repo is required")
	}
	if logg == nil {
		logg = logger.Nop()
	}
	return &service{repo: repo, logg: logg, validate: validator.New()}, nil
}

func (s *service) Get(ctx context.Context) (Settings, error) {
	value, err := s.repo.Load(ctx)
	if err != nil {
		return Settings{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load settings")
	}
	return value, nil
}

// Update validates and stores the record. A contact number without digits is
// rejected since no order link could be built from it.
func (s *service) Update(ctx context.Context, input UpdateInput) (Settings, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.ContactNumber = strings.TrimSpace(input.ContactNumber)
	input.WelcomeMessage = strings.TrimSpace(input.WelcomeMessage)
	input.Logo = strings.TrimSpace(input.Logo)

	if err := s.validate.Struct(input); err != nil {
		return Settings{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid settings")
	}
	if input.DeliveryFee.IsNegative() {
		return Settings{}, pkgerrors.New(pkgerrors.CodeValidation, "delivery fee must be non-negative")
	}

	value := Settings(input)
	if value.ContactDigits() == "" {
		return Settings{}, pkgerrors.New(pkgerrors.CodeValidation, "contact number must contain digits")
	}
	if err := s.repo.Save(ctx, value); err != nil {
		return Settings{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save settings")
	}
	s.logg.Info(s.logg.WithField(ctx, "business_name", value.Name), "settings.updated")
	return value, nil
}
