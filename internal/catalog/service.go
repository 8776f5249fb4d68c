package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jacmel/storefront-backend/pkg/enums"
	pkgerrors "github.com/jacmel/storefront-backend/pkg/errors"
	"github.com/jacmel/storefront-backend/pkg/logger"
)

const placeholderImageFormat = "https://picsum.photos/400/300?random="

// ServiceParams groups dependencies for the catalog service.
type ServiceParams struct {
	Repo    *Repository
	Options OptionCatalog
	Logger  *logger.Logger
}

// Service exposes menu browsing and the admin edits.
type Service interface {
	List(ctx context.Context) ([]MenuEntry, error)
	Sections(ctx context.Context) ([]Section, error)
	Featured(ctx context.Context) ([]MenuEntry, error)
	Drinks(ctx context.Context) ([]MenuEntry, error)
	Get(ctx context.Context, id string) (MenuEntry, error)
	Options() OptionCatalog
	Create(ctx context.Context, input EntryInput) (MenuEntry, error)
	Update(ctx context.Context, id string, input EntryInput) (MenuEntry, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo    *Repository
	options OptionCatalog
	logg    *logger.Logger
	newID   func() string
}

// NewService builds the catalog service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "menu repo is required")
	}
	options := params.Options
	if len(options) == 0 {
		options = DefaultSideOptions()
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	return &service{
		repo:    params.Repo,
		options: options,
		logg:    logg,
		newID:   func() string { return uuid.NewString() },
	}, nil
}

func (s *service) List(ctx context.Context) ([]MenuEntry, error) {
	entries, err := s.repo.Load(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load menu")
	}
	return entries, nil
}

func (s *service) Sections(ctx context.Context) ([]Section, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return GroupByCategory(entries), nil
}

func (s *service) Featured(ctx context.Context) ([]MenuEntry, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return FeaturedRotation(entries), nil
}

func (s *service) Drinks(ctx context.Context) ([]MenuEntry, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return Drinks(entries), nil
}

func (s *service) Get(ctx context.Context, id string) (MenuEntry, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return MenuEntry{}, err
	}
	entry, ok := Find(entries, strings.TrimSpace(id))
	if !ok {
		return MenuEntry{}, pkgerrors.New(pkgerrors.CodeNotFound, "menu entry not found")
	}
	return entry, nil
}

func (s *service) Options() OptionCatalog {
	out := make(OptionCatalog, len(s.options))
	copy(out, s.options)
	return out
}

// Create appends a new entry. A missing id gets a fresh one.
func (s *service) Create(ctx context.Context, input EntryInput) (MenuEntry, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return MenuEntry{}, err
	}

	id := strings.TrimSpace(input.ID)
	if id == "" {
		id = s.newID()
	}
	if _, exists := Find(entries, id); exists {
		return MenuEntry{}, pkgerrors.New(pkgerrors.CodeConflict, "menu entry id already exists")
	}

	entry, err := s.buildEntry(id, input)
	if err != nil {
		return MenuEntry{}, err
	}
	entries = append(entries, entry)
	if err := s.save(ctx, entries); err != nil {
		return MenuEntry{}, err
	}
	s.logg.Info(s.logg.WithField(ctx, "entry_id", id), "menu.entry_created")
	return entry, nil
}

// Update replaces an entry in place, keeping its catalog position.
func (s *service) Update(ctx context.Context, id string, input EntryInput) (MenuEntry, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return MenuEntry{}, err
	}

	id = strings.TrimSpace(id)
	idx := indexOf(entries, id)
	if idx < 0 {
		return MenuEntry{}, pkgerrors.New(pkgerrors.CodeNotFound, "menu entry not found")
	}

	entry, err := s.buildEntry(id, input)
	if err != nil {
		return MenuEntry{}, err
	}
	entries[idx] = entry
	if err := s.save(ctx, entries); err != nil {
		return MenuEntry{}, err
	}
	s.logg.Info(s.logg.WithField(ctx, "entry_id", id), "menu.entry_updated")
	return entry, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	entries, err := s.List(ctx)
	if err != nil {
		return err
	}

	id = strings.TrimSpace(id)
	idx := indexOf(entries, id)
	if idx < 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "menu entry not found")
	}
	entries = append(entries[:idx], entries[idx+1:]...)
	if err := s.save(ctx, entries); err != nil {
		return err
	}
	s.logg.Info(s.logg.WithField(ctx, "entry_id", id), "menu.entry_deleted")
	return nil
}

func (s *service) buildEntry(id string, input EntryInput) (MenuEntry, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return MenuEntry{}, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if input.Price.IsNegative() {
		return MenuEntry{}, pkgerrors.New(pkgerrors.CodeValidation, "price must be non-negative")
	}
	category, err := enums.ParseMenuCategory(input.Category)
	if err != nil {
		return MenuEntry{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}
	image := strings.TrimSpace(input.Image)
	if image == "" {
		image = placeholderImageFormat + id
	}

	return MenuEntry{
		ID:          id,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Ingredients: cleanIngredients(input.Ingredients),
		Price:       input.Price,
		Category:    category,
		Available:   available,
		Featured:    input.Featured,
		Image:       image,
	}, nil
}

func (s *service) save(ctx context.Context, entries []MenuEntry) error {
	if err := s.repo.Save(ctx, entries); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save menu")
	}
	return nil
}

func indexOf(entries []MenuEntry, id string) int {
	for i, entry := range entries {
		if entry.ID == id {
			return i
		}
	}
	return -1
}
