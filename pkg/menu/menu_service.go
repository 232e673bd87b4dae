package menu

import (
	"context"
	"errors"
	"fmt"
	"restaurant-directory/domain"
	"restaurant-directory/entities"
	"restaurant-directory/pkg/registry"
	"restaurant-directory/pkg/restaurant"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type (
	MenuService interface {
		GetMenu(ctx context.Context, id string) (domain.RestaurantMenuResponse, error)
		UpsertMenu(ctx context.Context, id string, req domain.UpsertMenuRequest) (domain.MenuResponse, error)
	}

	menuService struct {
		menuRepository       MenuRepository
		restaurantRepository restaurant.RestaurantRepository
		registry             registry.IdentifierRegistry
		logger               *zap.SugaredLogger
	}
)

func NewMenuService(
	menuRepository MenuRepository,
	restaurantRepository restaurant.RestaurantRepository,
	identifierRegistry registry.IdentifierRegistry,
	logger *zap.SugaredLogger,
) MenuService {
	return &menuService{
		menuRepository:       menuRepository,
		restaurantRepository: restaurantRepository,
		registry:             identifierRegistry,
		logger:               logger,
	}
}

func (s *menuService) GetMenu(ctx context.Context, id string) (domain.RestaurantMenuResponse, error) {
	owner, err := s.findRestaurant(ctx, id)
	if err != nil {
		return domain.RestaurantMenuResponse{}, err
	}

	menu, err := s.menuRepository.GetMenuByRestaurantID(ctx, owner.ID)
	if err != nil {
		return domain.RestaurantMenuResponse{}, err
	}

	return domain.RestaurantMenuResponse{
		Restaurant: restaurant.NewRestaurantResponse(owner, s.registry),
		Menu:       s.toMenuResponse(menu),
	}, nil
}

// UpsertMenu merges the submitted items with their customisations and replaces the stored menu.
func (s *menuService) UpsertMenu(ctx context.Context, id string, req domain.UpsertMenuRequest) (domain.MenuResponse, error) {
	owner, err := s.findRestaurant(ctx, id)
	if err != nil {
		return domain.MenuResponse{}, err
	}

	items := MergeMenuItems(req.MenuItems, req.Customisations)
	menu := &entities.RestaurantMenu{
		ID:             uuid.NewString(),
		RestaurantID:   owner.ID,
		RestaurantName: owner.Name,
		Items:          items,
		LastUpdated:    time.Now(),
	}

	saved, err := s.menuRepository.UpsertMenu(ctx, menu)
	if err != nil {
		if errors.Is(err, domain.ErrRestaurantNotFound) {
			return domain.MenuResponse{}, fmt.Errorf("%w with ID: %s", domain.ErrRestaurantNotFound, id)
		}
		return domain.MenuResponse{}, err
	}

	s.logger.Infow("menu updated", "restaurant_id", owner.ID, "items", len(items))
	return s.toMenuResponse(saved), nil
}

func (s *menuService) findRestaurant(ctx context.Context, id string) (*entities.Restaurant, error) {
	owner, err := s.restaurantRepository.GetRestaurantByID(ctx, s.registry.Resolve(id))
	if err != nil {
		if errors.Is(err, domain.ErrRestaurantNotFound) {
			return nil, fmt.Errorf("%w with ID: %s", domain.ErrRestaurantNotFound, id)
		}
		return nil, err
	}
	return owner, nil
}

func (s *menuService) toMenuResponse(menu *entities.RestaurantMenu) domain.MenuResponse {
	res := domain.MenuResponse{
		RestaurantID:   menu.RestaurantID,
		RestaurantName: menu.RestaurantName,
		Items:          make([]entities.MenuItem, 0, len(menu.Items)),
		LastUpdated:    menu.LastUpdated,
		CreatedAt:      menu.CreatedAt,
		UpdatedAt:      menu.UpdatedAt,
	}
	if externalID, ok := s.registry.ReverseLookup(menu.RestaurantID); ok {
		res.ID = &externalID
	}
	for _, item := range menu.Items {
		res.Items = append(res.Items, withEmptySlices(item))
	}
	return res
}

// withEmptySlices keeps absent lists rendered as [] rather than null.
func withEmptySlices(item entities.MenuItem) entities.MenuItem {
	if item.DietaryPreference == nil {
		item.DietaryPreference = []string{}
	}
	if item.Customisation.Categories == nil {
		item.Customisation.Categories = []entities.AddOnCategory{}
	}
	for i := range item.Customisation.Categories {
		if item.Customisation.Categories[i].Items == nil {
			item.Customisation.Categories[i].Items = []entities.AddOnItem{}
		}
	}
	return item
}
