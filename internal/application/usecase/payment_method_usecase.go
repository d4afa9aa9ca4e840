package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/food-orders/internal/application/dto"
	"github.com/tu-usuario/food-orders/internal/domain"
	"github.com/tu-usuario/food-orders/internal/domain/access"
	"github.com/tu-usuario/food-orders/internal/domain/entity"
	"github.com/tu-usuario/food-orders/internal/domain/repository"
)

// PaymentMethodUseCase CRUD de métodos de pago, exclusivo de ADMIN y acotado
// a los registros propios (regla 5 del evaluador).
type PaymentMethodUseCase struct {
	repo repository.PaymentMethodRepository
}

// NewPaymentMethodUseCase construye el caso de uso.
func NewPaymentMethodUseCase(repo repository.PaymentMethodRepository) *PaymentMethodUseCase {
	return &PaymentMethodUseCase{repo: repo}
}

// Create registra un método de pago del propio principal (solo ADMIN).
func (uc *PaymentMethodUseCase) Create(p access.Principal, in dto.AddPaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	if d := access.CanManagePaymentMethods(p); !d.Allowed {
		return nil, domain.ErrRoleForbidden
	}
	pm := &entity.PaymentMethod{
		ID:        uuid.New().String(),
		UserID:    p.UserID,
		Type:      in.Type,
		LastFour:  in.LastFour,
		IsDefault: in.IsDefault,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(pm); err != nil {
		return nil, err
	}
	return toPaymentMethodResponse(pm), nil
}

// List devuelve los métodos de pago del principal (solo ADMIN).
func (uc *PaymentMethodUseCase) List(p access.Principal) ([]dto.PaymentMethodResponse, error) {
	if d := access.CanManagePaymentMethods(p); !d.Allowed {
		return nil, domain.ErrRoleForbidden
	}
	list, err := uc.repo.ListByUser(p.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentMethodResponse, 0, len(list))
	for _, pm := range list {
		out = append(out, *toPaymentMethodResponse(pm))
	}
	return out, nil
}

// Delete elimina un método de pago propio. ErrNotFound si no existe,
// ErrNotAuthorized si pertenece a otro usuario.
func (uc *PaymentMethodUseCase) Delete(p access.Principal, id string) error {
	if d := access.CanManagePaymentMethods(p); !d.Allowed {
		return domain.ErrRoleForbidden
	}
	pm, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if pm == nil {
		return domain.ErrNotFound
	}
	if d := access.CanAccessPaymentMethod(p, pm); !d.Allowed {
		return domain.ErrNotAuthorized
	}
	return uc.repo.Delete(id)
}

func toPaymentMethodResponse(pm *entity.PaymentMethod) *dto.PaymentMethodResponse {
	return &dto.PaymentMethodResponse{
		ID:        pm.ID,
		UserID:    pm.UserID,
		Type:      pm.Type,
		LastFour:  pm.LastFour,
		IsDefault: pm.IsDefault,
		CreatedAt: pm.CreatedAt,
	}
}
