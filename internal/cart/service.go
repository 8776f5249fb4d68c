package cart

import (
	"context"
	"strings"

	"github.com/jacmel/storefront-backend/internal/catalog"
	"github.com/jacmel/storefront-backend/pkg/enums"
	pkgerrors "github.com/jacmel/storefront-backend/pkg/errors"
	"github.com/jacmel/storefront-backend/pkg/logger"
	"github.com/jacmel/storefront-backend/pkg/metrics"
)

const (
	opAdd    = "add"
	opUpdate = "update_quantity"
	opRemove = "remove"
	opClear  = "clear"
)

// AddItemsInput is one add-to-cart action: a dish with its sides and any
// drinks picked alongside it. Either part may be empty, not both.
type AddItemsInput struct {
	EntryID       string
	SideOptionIDs []string
	DrinkIDs      []string
}

// Service applies cart transitions to a session's stored cart.
type Service interface {
	Get(ctx context.Context, sessionID string) (Cart, error)
	AddItems(ctx context.Context, sessionID string, input AddItemsInput) (Cart, error)
	UpdateQuantity(ctx context.Context, sessionID, lineID string, delta int) (Cart, error)
	RemoveLine(ctx context.Context, sessionID, lineID string) (Cart, error)
	Clear(ctx context.Context, sessionID string) (Cart, error)
}

// ServiceParams groups dependencies for the cart service.
type ServiceParams struct {
	Repo    CartRepository
	Menu    MenuReader
	Logger  *logger.Logger
	Metrics *metrics.StorefrontMetrics
}

type service struct {
	repo    CartRepository
	menu    MenuReader
	logg    *logger.Logger
	metrics *metrics.StorefrontMetrics
}

// NewService builds a cart service backed by the provided stack.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart repository required")
	}
	if params.Menu == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "menu reader required")
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	return &service{
		repo:    params.Repo,
		menu:    params.Menu,
		logg:    logg,
		metrics: params.Metrics,
	}, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (Cart, error) {
	if err := requireSession(sessionID); err != nil {
		return Cart{}, err
	}
	return s.load(ctx, sessionID)
}

// AddItems resolves the requested entries before touching the cart so an
// unknown id leaves it unchanged.
func (s *service) AddItems(ctx context.Context, sessionID string, input AddItemsInput) (Cart, error) {
	if err := requireSession(sessionID); err != nil {
		return Cart{}, err
	}
	entryID := strings.TrimSpace(input.EntryID)
	if entryID == "" && len(input.DrinkIDs) == 0 {
		return Cart{}, pkgerrors.New(pkgerrors.CodeValidation, "entry_id or drink_ids is required")
	}

	var main *catalog.MenuEntry
	if entryID != "" {
		entry, err := s.orderable(ctx, entryID)
		if err != nil {
			return Cart{}, err
		}
		main = &entry
	}

	drinks := make([]catalog.MenuEntry, 0, len(input.DrinkIDs))
	for _, id := range input.DrinkIDs {
		drink, err := s.orderable(ctx, strings.TrimSpace(id))
		if err != nil {
			return Cart{}, err
		}
		if drink.Category != enums.MenuCategoryDrinks {
			return Cart{}, pkgerrors.New(pkgerrors.CodeValidation, "drink_ids must reference drinks").
				WithDetails(map[string]any{"entry_id": drink.ID})
		}
		drinks = append(drinks, drink)
	}

	current, err := s.load(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}
	next := current
	if main != nil {
		next = AddMainItem(next, *main, input.SideOptionIDs, s.menu.Options())
	}
	next = AddDrinkItems(next, drinks)
	return s.commit(ctx, sessionID, opAdd, next), nil
}

func (s *service) UpdateQuantity(ctx context.Context, sessionID, lineID string, delta int) (Cart, error) {
	if err := requireSession(sessionID); err != nil {
		return Cart{}, err
	}
	current, err := s.load(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}
	return s.commit(ctx, sessionID, opUpdate, UpdateQuantity(current, lineID, delta)), nil
}

func (s *service) RemoveLine(ctx context.Context, sessionID, lineID string) (Cart, error) {
	if err := requireSession(sessionID); err != nil {
		return Cart{}, err
	}
	current, err := s.load(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}
	return s.commit(ctx, sessionID, opRemove, RemoveLine(current, lineID)), nil
}

func (s *service) Clear(ctx context.Context, sessionID string) (Cart, error) {
	if err := requireSession(sessionID); err != nil {
		return Cart{}, err
	}
	return s.commit(ctx, sessionID, opClear, Clear()), nil
}

func (s *service) orderable(ctx context.Context, id string) (catalog.MenuEntry, error) {
	entry, err := s.menu.Get(ctx, id)
	if err != nil {
		return catalog.MenuEntry{}, err
	}
	if !entry.Available {
		return catalog.MenuEntry{}, pkgerrors.New(pkgerrors.CodeConflict, "menu entry is not available").
			WithDetails(map[string]any{"entry_id": id})
	}
	return entry, nil
}

func (s *service) load(ctx context.Context, sessionID string) (Cart, error) {
	current, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return Cart{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return current, nil
}

// commit persists the new cart without failing the transition: a write error
// is logged and counted, and the computed cart is still returned.
func (s *service) commit(ctx context.Context, sessionID, op string, next Cart) Cart {
	s.metrics.IncCartOperation(op)
	ctx = s.logg.WithFields(ctx, map[string]any{
		"session_id": sessionID,
		"operation":  op,
		"line_count": len(next.Lines),
	})
	if err := s.repo.Save(ctx, sessionID, next); err != nil {
		s.metrics.IncStorageFailure("cart")
		s.logg.WarnErr(ctx, "cart.persist_failed", err)
		return next
	}
	s.logg.Debug(ctx, "cart.updated")
	return next
}

func requireSession(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	return nil
}
