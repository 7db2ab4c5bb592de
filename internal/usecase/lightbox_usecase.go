package usecase

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wanderplan/internal/domain"
	"github.com/wanderplan/internal/domain/repository"
	"github.com/wanderplan/internal/pkg/errors"
	"github.com/wanderplan/internal/usecase/dto"
)

// LightboxUseCase - состояние открытой фотогалереи.
// Одна галерея на процесс; Next/Prev циклически заворачиваются, Close
// полностью сбрасывает ссылку на последовательность фото.
type LightboxUseCase struct {
	store  repository.EntityStore
	logger *zap.Logger

	mu     sync.Mutex
	open   bool
	spotID string
	photos []domain.PhotoRef
	index  int
}

// NewLightboxUseCase - создание нового LightboxUseCase
func NewLightboxUseCase(store repository.EntityStore, logger *zap.Logger) *LightboxUseCase {
	return &LightboxUseCase{
		store:  store,
		logger: logger,
	}
}

// Open - открытие галереи фото точки на заданном индексе
func (uc *LightboxUseCase) Open(spotID string, index int) (*dto.LightboxResponse, error) {
	spot, err := uc.store.GetSpot(spotID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(spot.Photos) {
		return nil, errors.ErrPhotoIndexOutOfRange.WithDetails(map[string]interface{}{
			"index": index,
			"total": len(spot.Photos),
		})
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.open = true
	uc.spotID = spot.ID
	uc.photos = append([]domain.PhotoRef(nil), spot.Photos...)
	uc.index = index
	return uc.state(), nil
}

// Next - следующее фото, с последнего заворачивает на первое
func (uc *LightboxUseCase) Next() (*dto.LightboxResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if !uc.open {
		return nil, errors.ErrLightboxClosed
	}
	uc.index = (uc.index + 1) % len(uc.photos)
	return uc.state(), nil
}

// Prev - предыдущее фото, с первого заворачивает на последнее
func (uc *LightboxUseCase) Prev() (*dto.LightboxResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if !uc.open {
		return nil, errors.ErrLightboxClosed
	}
	uc.index = (uc.index - 1 + len(uc.photos)) % len(uc.photos)
	return uc.state(), nil
}

// Close - закрытие галереи и сброс последовательности
func (uc *LightboxUseCase) Close() *dto.LightboxResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.open = false
	uc.spotID = ""
	uc.photos = nil
	uc.index = 0
	return uc.state()
}

// State - текущее состояние галереи
func (uc *LightboxUseCase) State() *dto.LightboxResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state()
}

// state - снимок состояния; вызывается только под mu
func (uc *LightboxUseCase) state() *dto.LightboxResponse {
	resp := &dto.LightboxResponse{
		Open:  uc.open,
		Index: uc.index,
		Total: len(uc.photos),
	}
	if uc.open {
		resp.SpotID = uc.spotID
		resp.Photo = string(uc.photos[uc.index])
	}
	return resp
}
