package restaurant

import (
	"context"
	"strconv"
	"testing"

	"restaurant-directory/domain"
	"restaurant-directory/entities"
	"restaurant-directory/internal/testutil"
	"restaurant-directory/pkg/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (RestaurantService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	svc := NewRestaurantService(NewRestaurantRepository(db), registry.NewIdentifierRegistry(), zap.NewNop().Sugar())
	return svc, db
}

func ptr[T any](v T) *T {
	return &v
}

func createRequest(name string) domain.CreateRestaurantRequest {
	return domain.CreateRestaurantRequest{
		Name:        name,
		ContactNo:   "9876543210",
		Address:     "12 MG Road, Bengaluru",
		MenuSummary: "South Indian breakfast",
	}
}

func countRestaurants(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&entities.Restaurant{}).Count(&count).Error)
	return count
}

func TestCreateRestaurant_RoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := createRequest("Dosa Corner")
	req.Location = &domain.LocationRequest{Latitude: ptr(12.97), Longitude: ptr(77.59)}

	created, err := svc.CreateRestaurant(ctx, req)
	require.NoError(t, err)
	require.NotEmpty(t, created.RestaurantID)
	assert.Nil(t, created.ID)

	got, err := svc.GetRestaurantByID(ctx, created.RestaurantID)
	require.NoError(t, err)

	assert.Equal(t, created.RestaurantID, got.RestaurantID)
	assert.Equal(t, "Dosa Corner", got.Name)
	assert.Equal(t, "9876543210", got.ContactNo)
	assert.Equal(t, "12 MG Road, Bengaluru", got.Address)
	assert.Equal(t, "South Indian breakfast", got.MenuSummary)
	assert.False(t, got.IsOnline)
	assert.False(t, got.MenuUploaded)
	require.NotNil(t, got.Location)
	assert.Equal(t, "Point", got.Location.Type)
	assert.Equal(t, []float64{77.59, 12.97}, got.Location.Coordinates)
}

func TestCreateRestaurant_PartialLocationIgnored(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := createRequest("Chaat House")
	req.IsOnline = ptr(true)
	req.Location = &domain.LocationRequest{Latitude: ptr(28.61)}

	created, err := svc.CreateRestaurant(ctx, req)
	require.NoError(t, err)

	got, err := svc.GetRestaurantByID(ctx, created.RestaurantID)
	require.NoError(t, err)
	assert.True(t, got.IsOnline)
	assert.Nil(t, got.Location)
}

func TestCreateRestaurant_UniqueIdentities(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		created, err := svc.CreateRestaurant(ctx, createRequest("R"+strconv.Itoa(i)))
		require.NoError(t, err)
		require.False(t, seen[created.RestaurantID])
		seen[created.RestaurantID] = true
	}
}

func TestGetRestaurants_RebuildsIdentifiers(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		_, err := svc.CreateRestaurant(ctx, createRequest(name))
		require.NoError(t, err)
	}

	listed, err := svc.GetRestaurants(ctx, false)
	require.NoError(t, err)
	require.Len(t, listed, 3)

	for i, r := range listed {
		require.NotNil(t, r.ID)
		require.Equal(t, i+1, *r.ID)

		got, err := svc.GetRestaurantByID(ctx, strconv.Itoa(i+1))
		require.NoError(t, err)
		require.Equal(t, r.RestaurantID, got.RestaurantID)
		require.Equal(t, i+1, *got.ID)
	}
}

func TestGetRestaurants_OnlineFilter(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	online := createRequest("Online")
	online.IsOnline = ptr(true)
	_, err := svc.CreateRestaurant(ctx, online)
	require.NoError(t, err)
	_, err = svc.CreateRestaurant(ctx, createRequest("Offline"))
	require.NoError(t, err)

	listed, err := svc.GetRestaurants(ctx, true)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Online", listed[0].Name)
	assert.Equal(t, 1, *listed[0].ID)
}

func TestGetRestaurantByID_StaleIdentifierIsNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	online := createRequest("Online")
	online.IsOnline = ptr(true)
	_, err := svc.CreateRestaurant(ctx, online)
	require.NoError(t, err)
	_, err = svc.CreateRestaurant(ctx, createRequest("Offline"))
	require.NoError(t, err)

	_, err = svc.GetRestaurants(ctx, false)
	require.NoError(t, err)
	_, err = svc.GetRestaurantByID(ctx, "2")
	require.NoError(t, err)

	_, err = svc.GetRestaurants(ctx, true)
	require.NoError(t, err)

	_, err = svc.GetRestaurantByID(ctx, "2")
	require.ErrorIs(t, err, domain.ErrRestaurantNotFound)
}

func TestUpdateRestaurant_PartialFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := createRequest("Old Name")
	req.Location = &domain.LocationRequest{Latitude: ptr(19.07), Longitude: ptr(72.87)}
	created, err := svc.CreateRestaurant(ctx, req)
	require.NoError(t, err)

	updated, err := svc.UpdateRestaurant(ctx, created.RestaurantID, domain.UpdateRestaurantRequest{
		Name: ptr("New Name"),
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "9876543210", updated.ContactNo)
	assert.Equal(t, "South Indian breakfast", updated.MenuSummary)
	require.NotNil(t, updated.Location)
	assert.Equal(t, []float64{72.87, 19.07}, updated.Location.Coordinates)

	updated, err = svc.UpdateRestaurant(ctx, created.RestaurantID, domain.UpdateRestaurantRequest{
		IsOnline: ptr(true),
		Location: &domain.LocationRequest{Latitude: ptr(18.52), Longitude: ptr(73.85)},
	})
	require.NoError(t, err)
	assert.True(t, updated.IsOnline)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, []float64{73.85, 18.52}, updated.Location.Coordinates)

	got, err := svc.GetRestaurantByID(ctx, created.RestaurantID)
	require.NoError(t, err)
	assert.Equal(t, updated.Name, got.Name)
	assert.True(t, got.IsOnline)
}

func TestUpdateRestaurant_NotFound(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateRestaurant(ctx, createRequest("Existing"))
	require.NoError(t, err)

	_, err = svc.UpdateRestaurant(ctx, "missing-id", domain.UpdateRestaurantRequest{Name: ptr("Ghost")})
	require.ErrorIs(t, err, domain.ErrRestaurantNotFound)
	assert.Contains(t, err.Error(), "missing-id")
	assert.Equal(t, int64(1), countRestaurants(t, db))
}

func TestMarkMenuUploaded(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateRestaurant(ctx, createRequest("Biryani Point"))
	require.NoError(t, err)

	marked, err := svc.MarkMenuUploaded(ctx, created.RestaurantID)
	require.NoError(t, err)
	assert.True(t, marked.MenuUploaded)

	_, err = svc.MarkMenuUploaded(ctx, "unknown")
	require.ErrorIs(t, err, domain.ErrRestaurantNotFound)
}

// interleavingRepository runs before() ahead of the next update, as another request landing first would.
type interleavingRepository struct {
	RestaurantRepository
	before func()
}

func (r *interleavingRepository) UpdateRestaurant(ctx context.Context, id string, changes RestaurantChanges) error {
	if before := r.before; before != nil {
		r.before = nil
		before()
	}
	return r.RestaurantRepository.UpdateRestaurant(ctx, id, changes)
}

func TestUpdateRestaurant_ConcurrentFieldUpdatesBothPersist(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	base := NewRestaurantRepository(db)
	repo := &interleavingRepository{RestaurantRepository: base}
	svc := NewRestaurantService(repo, registry.NewIdentifierRegistry(), zap.NewNop().Sugar())

	created, err := svc.CreateRestaurant(ctx, createRequest("A"))
	require.NoError(t, err)

	repo.before = func() {
		require.NoError(t, base.UpdateRestaurant(ctx, created.RestaurantID, RestaurantChanges{Name: ptr("Renamed")}))
	}
	updated, err := svc.UpdateRestaurant(ctx, created.RestaurantID, domain.UpdateRestaurantRequest{
		Address: ptr("New Address"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "New Address", updated.Address)

	stored, err := base.GetRestaurantByID(ctx, created.RestaurantID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Name)
	assert.Equal(t, "New Address", stored.Address)
}

func TestUpdateRestaurant_WritesZeroValues(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := createRequest("Night Owl")
	req.IsOnline = ptr(true)
	created, err := svc.CreateRestaurant(ctx, req)
	require.NoError(t, err)

	updated, err := svc.UpdateRestaurant(ctx, created.RestaurantID, domain.UpdateRestaurantRequest{IsOnline: ptr(false)})
	require.NoError(t, err)
	assert.False(t, updated.IsOnline)
	assert.Equal(t, "Night Owl", updated.Name)
	assert.Equal(t, "9876543210", updated.ContactNo)
}
