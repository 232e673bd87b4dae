package restaurant

import (
	"context"
	"errors"
	"fmt"
	"restaurant-directory/domain"
	"restaurant-directory/entities"
	"restaurant-directory/pkg/registry"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type (
	RestaurantService interface {
		CreateRestaurant(ctx context.Context, req domain.CreateRestaurantRequest) (domain.RestaurantResponse, error)
		GetRestaurants(ctx context.Context, onlineOnly bool) ([]domain.RestaurantResponse, error)
		GetRestaurantByID(ctx context.Context, id string) (domain.RestaurantResponse, error)
		UpdateRestaurant(ctx context.Context, id string, req domain.UpdateRestaurantRequest) (domain.RestaurantResponse, error)
		MarkMenuUploaded(ctx context.Context, id string) (domain.RestaurantResponse, error)
	}

	restaurantService struct {
		restaurantRepository RestaurantRepository
		registry             registry.IdentifierRegistry
		logger               *zap.SugaredLogger
	}
)

func NewRestaurantService(
	restaurantRepository RestaurantRepository,
	identifierRegistry registry.IdentifierRegistry,
	logger *zap.SugaredLogger,
) RestaurantService {
	return &restaurantService{
		restaurantRepository: restaurantRepository,
		registry:             identifierRegistry,
		logger:               logger,
	}
}

func (s *restaurantService) CreateRestaurant(ctx context.Context, req domain.CreateRestaurantRequest) (domain.RestaurantResponse, error) {
	restaurant := &entities.Restaurant{
		ID:          uuid.NewString(),
		Name:        req.Name,
		ContactNo:   req.ContactNo,
		Address:     req.Address,
		MenuSummary: req.MenuSummary,
	}
	if req.IsOnline != nil {
		restaurant.IsOnline = *req.IsOnline
	}
	if req.Location.Complete() {
		restaurant.Location = entities.NewGeoPoint(*req.Location.Latitude, *req.Location.Longitude)
	}

	if err := s.restaurantRepository.CreateRestaurant(ctx, restaurant); err != nil {
		return domain.RestaurantResponse{}, err
	}

	s.logger.Infow("restaurant created", "restaurant_id", restaurant.ID)
	return NewRestaurantResponse(restaurant, s.registry), nil
}

// GetRestaurants lists restaurants and renumbers the identifier registry from the listing order.
func (s *restaurantService) GetRestaurants(ctx context.Context, onlineOnly bool) ([]domain.RestaurantResponse, error) {
	restaurants, err := s.restaurantRepository.GetRestaurants(ctx, onlineOnly)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(restaurants))
	for _, restaurant := range restaurants {
		ids = append(ids, restaurant.ID)
	}
	s.registry.Rebuild(ids)
	s.logger.Debugw("identifier registry rebuilt", "size", len(ids), "online_only", onlineOnly)

	response := make([]domain.RestaurantResponse, 0, len(restaurants))
	for i, restaurant := range restaurants {
		externalID := i + 1
		res := toRestaurantResponse(restaurant)
		res.ID = &externalID
		response = append(response, res)
	}
	return response, nil
}

func (s *restaurantService) GetRestaurantByID(ctx context.Context, id string) (domain.RestaurantResponse, error) {
	restaurant, err := s.resolveRestaurant(ctx, id)
	if err != nil {
		return domain.RestaurantResponse{}, err
	}
	return NewRestaurantResponse(restaurant, s.registry), nil
}

// UpdateRestaurant applies only the supplied fields, so concurrent updates of different fields both persist.
func (s *restaurantService) UpdateRestaurant(ctx context.Context, id string, req domain.UpdateRestaurantRequest) (domain.RestaurantResponse, error) {
	restaurantID := s.registry.Resolve(id)

	changes := RestaurantChanges{
		Name:        req.Name,
		ContactNo:   req.ContactNo,
		Address:     req.Address,
		MenuSummary: req.MenuSummary,
		IsOnline:    req.IsOnline,
	}
	if req.Location.Complete() {
		changes.Location = entities.NewGeoPoint(*req.Location.Latitude, *req.Location.Longitude)
	}

	if err := s.restaurantRepository.UpdateRestaurant(ctx, restaurantID, changes); err != nil {
		return domain.RestaurantResponse{}, notFoundWithID(err, id)
	}

	updated, err := s.restaurantRepository.GetRestaurantByID(ctx, restaurantID)
	if err != nil {
		return domain.RestaurantResponse{}, notFoundWithID(err, id)
	}
	s.logger.Infow("restaurant updated", "restaurant_id", restaurantID)
	return NewRestaurantResponse(updated, s.registry), nil
}

func (s *restaurantService) MarkMenuUploaded(ctx context.Context, id string) (domain.RestaurantResponse, error) {
	restaurant, err := s.restaurantRepository.SetMenuUploaded(ctx, s.registry.Resolve(id), true)
	if err != nil {
		return domain.RestaurantResponse{}, notFoundWithID(err, id)
	}
	return NewRestaurantResponse(restaurant, s.registry), nil
}

func (s *restaurantService) resolveRestaurant(ctx context.Context, id string) (*entities.Restaurant, error) {
	restaurant, err := s.restaurantRepository.GetRestaurantByID(ctx, s.registry.Resolve(id))
	if err != nil {
		return nil, notFoundWithID(err, id)
	}
	return restaurant, nil
}

func notFoundWithID(err error, id string) error {
	if errors.Is(err, domain.ErrRestaurantNotFound) {
		return fmt.Errorf("%w with ID: %s", domain.ErrRestaurantNotFound, id)
	}
	return err
}

// NewRestaurantResponse renders a restaurant with its current external identifier, if it has one.
func NewRestaurantResponse(restaurant *entities.Restaurant, reg registry.IdentifierRegistry) domain.RestaurantResponse {
	res := toRestaurantResponse(restaurant)
	if externalID, ok := reg.ReverseLookup(restaurant.ID); ok {
		res.ID = &externalID
	}
	return res
}

func toRestaurantResponse(restaurant *entities.Restaurant) domain.RestaurantResponse {
	res := domain.RestaurantResponse{
		RestaurantID: restaurant.ID,
		Name:         restaurant.Name,
		ContactNo:    restaurant.ContactNo,
		Address:      restaurant.Address,
		MenuSummary:  restaurant.MenuSummary,
		IsOnline:     restaurant.IsOnline,
		MenuUploaded: restaurant.MenuUploaded,
		CreatedAt:    restaurant.CreatedAt,
		UpdatedAt:    restaurant.UpdatedAt,
	}
	if restaurant.Location != nil {
		res.Location = &domain.Location{
			Type:        restaurant.Location.Type,
			Coordinates: restaurant.Location.Coordinates,
		}
	}
	return res
}
