package usecase

import (
	"github.com/tu-usuario/food-orders/internal/application/dto"
	"github.com/tu-usuario/food-orders/internal/domain"
	"github.com/tu-usuario/food-orders/internal/domain/access"
	"github.com/tu-usuario/food-orders/internal/domain/entity"
	"github.com/tu-usuario/food-orders/internal/domain/repository"
)

// RestaurantUseCase lecturas de países, restaurantes y menús, acotadas al país
// del principal (regla 1 del evaluador).
type RestaurantUseCase struct {
	restaurantRepo repository.RestaurantRepository
	menuRepo       repository.MenuItemRepository
	countryRepo    repository.CountryRepository
}

// NewRestaurantUseCase construye el caso de uso.
func NewRestaurantUseCase(restaurantRepo repository.RestaurantRepository, menuRepo repository.MenuItemRepository, countryRepo repository.CountryRepository) *RestaurantUseCase {
	return &RestaurantUseCase{restaurantRepo: restaurantRepo, menuRepo: menuRepo, countryRepo: countryRepo}
}

// Countries lista los países disponibles (público: lo usa la pantalla de registro).
func (uc *RestaurantUseCase) Countries() ([]dto.CountryResponse, error) {
	list, err := uc.countryRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CountryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CountryResponse{ID: c.ID, Name: c.Name, Code: c.Code})
	}
	return out, nil
}

// List devuelve los restaurantes del país del principal.
func (uc *RestaurantUseCase) List(p access.Principal) ([]dto.RestaurantResponse, error) {
	list, err := uc.restaurantRepo.ListByCountry(p.CountryID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RestaurantResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toRestaurantResponse(r, nil, nil))
	}
	return out, nil
}

// GetByID devuelve el detalle con país y menú. ErrCrossCountry si el
// restaurante es de otro país, ErrNotFound si no existe.
func (uc *RestaurantUseCase) GetByID(p access.Principal, id string) (*dto.RestaurantResponse, error) {
	r, err := uc.restaurantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if d := access.CanViewRestaurant(p, r); !d.Allowed {
		return nil, domain.ErrCrossCountry
	}
	country, err := uc.countryRepo.GetByID(r.CountryID)
	if err != nil {
		return nil, err
	}
	menu, err := uc.menuRepo.ListByRestaurant(r.ID)
	if err != nil {
		return nil, err
	}
	return toRestaurantResponse(r, country, menu), nil
}

// ListMenu devuelve el menú de un restaurante, con el mismo gate de país que
// la lectura del restaurante.
func (uc *RestaurantUseCase) ListMenu(p access.Principal, restaurantID string) ([]dto.MenuItemResponse, error) {
	r, err := uc.restaurantRepo.GetByID(restaurantID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if d := access.CanViewRestaurant(p, r); !d.Allowed {
		return nil, domain.ErrCrossCountry
	}
	menu, err := uc.menuRepo.ListByRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	return toMenuItemResponses(menu), nil
}

func toRestaurantResponse(r *entity.Restaurant, c *entity.Country, menu []*entity.MenuItem) *dto.RestaurantResponse {
	out := &dto.RestaurantResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		CountryID:   r.CountryID,
	}
	if c != nil {
		out.Country = &dto.CountryResponse{ID: c.ID, Name: c.Name, Code: c.Code}
	}
	if menu != nil {
		out.MenuItems = toMenuItemResponses(menu)
	}
	return out
}

func toMenuItemResponses(menu []*entity.MenuItem) []dto.MenuItemResponse {
	items := make([]dto.MenuItemResponse, 0, len(menu))
	for _, mi := range menu {
		items = append(items, dto.MenuItemResponse{
			ID:           mi.ID,
			RestaurantID: mi.RestaurantID,
			Name:         mi.Name,
			Description:  mi.Description,
			Price:        mi.Price,
			Category:     mi.Category,
			ImageURL:     mi.ImageURL,
			CreatedAt:    mi.CreatedAt,
		})
	}
	return items
}
