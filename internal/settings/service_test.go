package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/jacmel/storefront-backend/pkg/config"
	pkgerrors "github.com/jacmel/storefront-backend/pkg/errors"
	"github.com/jacmel/storefront-backend/pkg/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() config.StorefrontConfig {
	return config.StorefrontConfig{
		BusinessName:   "Bistro Jacmel",
		ContactNumber:  "50937000000",
		WelcomeMessage: "Bienvenue! Découvrez nos saveurs locales.",
		DeliveryFee:    "150",
	}
}

func newTestService(t *testing.T, store storage.Store) Service {
	t.Helper()
	svc, err := NewService(NewRepository(store, Defaults(defaultConfig())), nil)
	require.NoError(t, err)
	return svc
}

func TestGetReturnsDefaults(t *testing.T) {
	svc := newTestService(t, storage.NewMemoryStore())
	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bistro Jacmel", got.Name)
	assert.True(t, got.DeliveryFee.Equal(decimal.NewFromInt(150)))
	assert.Empty(t, got.Logo)
}

func TestUpdatePersists(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	saved, err := svc.Update(ctx, UpdateInput{
		Name:          "  Chez Tante Mirla ",
		ContactNumber: "+509 3700-1122",
		DeliveryFee:   decimal.NewFromInt(200),
		Logo:          "data:image/png;base64,AAAA",
	})
	require.NoError(t, err)
	assert.Equal(t, "Chez Tante Mirla", saved.Name)
	assert.Equal(t, "50937001122", saved.ContactDigits())

	reloaded := newTestService(t, store)
	got, err := reloaded.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved.Name, got.Name)
	assert.True(t, got.DeliveryFee.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, "data:image/png;base64,AAAA", got.Logo)
}

func TestUpdateValidation(t *testing.T) {
	svc := newTestService(t, storage.NewMemoryStore())
	ctx := context.Background()

	cases := map[string]UpdateInput{
		"missing name":   {ContactNumber: "509"},
		"no digits":      {Name: "x", ContactNumber: "call us"},
		"negative fee":   {Name: "x", ContactNumber: "509", DeliveryFee: decimal.NewFromInt(-5)},
		"missing number": {Name: "x"},
	}
	for name, input := range cases {
		if _, err := svc.Update(ctx, input); !pkgerrors.HasCode(err, pkgerrors.CodeValidation) {
			t.Fatalf("%s: expected validation error, got %v", name, err)
		}
	}
}

func TestGetSurfacesStorageFailure(t *testing.T) {
	svc := newTestService(t, failingStore{storage.NewMemoryStore()})
	_, err := svc.Get(context.Background())
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeDependency))
}

type failingStore struct{ *storage.MemoryStore }

func (failingStore) Get(context.Context, string) (string, error) {
	return "", errors.New("connection reset")
}
