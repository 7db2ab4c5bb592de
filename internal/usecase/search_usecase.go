package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/wanderplan/internal/config"
	"github.com/wanderplan/internal/domain"
	"github.com/wanderplan/internal/domain/repository"
	"github.com/wanderplan/internal/usecase/dto"
)

// SearchUseCase - use case автодополнения мест с дебаунсом и защитой от гонок.
// Каждый вызов Search получает монотонный токен; побеждает только последний
// выданный вызов, результаты остальных не наблюдаемы.
type SearchUseCase struct {
	placeRepo  repository.PlaceSearchRepository
	cacheRepo  repository.CacheRepository // nil when caching is disabled
	logger     *zap.Logger
	debounce   time.Duration
	cap        int
	minQuery   int
	fetchLimit int
	cacheTTL   time.Duration

	mu            sync.Mutex
	seq           uint64
	cancelPending context.CancelFunc
}

// NewSearchUseCase - создание нового SearchUseCase
func NewSearchUseCase(
	placeRepo repository.PlaceSearchRepository,
	cacheRepo repository.CacheRepository,
	searchCfg *config.SearchConfig,
	fetchLimit int,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *SearchUseCase {
	return &SearchUseCase{
		placeRepo:  placeRepo,
		cacheRepo:  cacheRepo,
		logger:     logger,
		debounce:   searchCfg.Debounce,
		cap:        searchCfg.SuggestionCap,
		minQuery:   searchCfg.MinQueryLength,
		fetchLimit: fetchLimit,
		cacheTTL:   cacheTTL,
	}
}

// Search - поиск подсказок по текстовому запросу.
// Blocks for the debounce window; a newer call supersedes this one, in which
// case the response carries Superseded=true and no suggestions. A provider
// failure degrades to an empty list, never an error.
func (uc *SearchUseCase) Search(ctx context.Context, req dto.SearchRequest) (*dto.SearchResponse, error) {
	query := strings.TrimSpace(req.Query)

	if len([]rune(query)) < uc.minQuery {
		// Короткий запрос отменяет и висящий дебаунс
		uc.mu.Lock()
		uc.seq++
		if uc.cancelPending != nil {
			uc.cancelPending()
			uc.cancelPending = nil
		}
		uc.mu.Unlock()
		return &dto.SearchResponse{Suggestions: []dto.PlaceSuggestion{}}, nil
	}

	// Выдача токена: этот вызов становится последним, предыдущий отменяется
	uc.mu.Lock()
	uc.seq++
	token := uc.seq
	if uc.cancelPending != nil {
		uc.cancelPending()
	}
	waitCtx, cancel := context.WithCancel(ctx)
	uc.cancelPending = cancel
	uc.mu.Unlock()

	defer func() {
		uc.mu.Lock()
		if uc.seq == token {
			uc.cancelPending = nil
		}
		uc.mu.Unlock()
		cancel()
	}()

	// Дебаунс: запрос к провайдеру уходит только после окна тишины
	timer := time.NewTimer(uc.debounce)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-waitCtx.Done():
		return &dto.SearchResponse{Suggestions: []dto.PlaceSuggestion{}, Superseded: true}, nil
	}

	if uc.superseded(token) {
		return &dto.SearchResponse{Suggestions: []dto.PlaceSuggestion{}, Superseded: true}, nil
	}

	var bias *domain.Coordinates
	if req.Lat != nil && req.Lng != nil {
		bias = &domain.Coordinates{Lat: *req.Lat, Lng: *req.Lng}
	}

	cacheKey := uc.cacheKey(query, bias, req.OnlyCities)
	if cached := uc.fromCache(ctx, cacheKey); cached != nil {
		return &dto.SearchResponse{Suggestions: cached, Total: len(cached)}, nil
	}

	features, err := uc.placeRepo.SearchPlaces(ctx, query, bias, uc.fetchLimit)
	if err != nil {
		// Ошибка провайдера не должна ломать ввод пользователя
		uc.logger.Warn("Place search failed, returning empty suggestions",
			zap.String("query", query),
			zap.Error(err))
		return &dto.SearchResponse{Suggestions: []dto.PlaceSuggestion{}}, nil
	}

	// Поздний ответ уже вытесненного вызова отбрасывается
	if uc.superseded(token) {
		return &dto.SearchResponse{Suggestions: []dto.PlaceSuggestion{}, Superseded: true}, nil
	}

	suggestions := make([]dto.PlaceSuggestion, 0, uc.cap)
	for _, f := range features {
		if req.OnlyCities && !f.IsPlaceLike() {
			continue
		}
		suggestions = append(suggestions, buildSuggestion(f, req.OnlyCities))
		if len(suggestions) >= uc.cap {
			break
		}
	}

	uc.toCache(ctx, cacheKey, suggestions)

	return &dto.SearchResponse{
		Suggestions: suggestions,
		Total:       len(suggestions),
	}, nil
}

func (uc *SearchUseCase) superseded(token uint64) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.seq != token
}

func (uc *SearchUseCase) cacheKey(query string, bias *domain.Coordinates, onlyCities bool) string {
	raw := fmt.Sprintf("%s|%v|%t", strings.ToLower(query), bias, onlyCities)
	sum := sha256.Sum256([]byte(raw))
	return "search:suggestions:" + hex.EncodeToString(sum[:8])
}

func (uc *SearchUseCase) fromCache(ctx context.Context, key string) []dto.PlaceSuggestion {
	if uc.cacheRepo == nil {
		return nil
	}
	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil {
		uc.logger.Warn("Suggestion cache read failed", zap.Error(err))
		return nil
	}
	if data == nil {
		return nil
	}
	var suggestions []dto.PlaceSuggestion
	if err := json.Unmarshal(data, &suggestions); err != nil {
		return nil
	}
	return suggestions
}

func (uc *SearchUseCase) toCache(ctx context.Context, key string, suggestions []dto.PlaceSuggestion) {
	if uc.cacheRepo == nil || len(suggestions) == 0 {
		return
	}
	data, err := json.Marshal(suggestions)
	if err != nil {
		return
	}
	if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Suggestion cache write failed", zap.Error(err))
	}
}

// buildSuggestion собирает отображаемые title/subtitle/name для фичи
func buildSuggestion(f domain.PlaceFeature, onlyCities bool) dto.PlaceSuggestion {
	title := firstNonEmpty(f.Name, f.City, f.Town, f.Village, f.State, "Unknown Location")

	var parts []string
	if !onlyCities && f.Street != "" {
		street := f.Street
		if f.HouseNumber != "" {
			street += " " + f.HouseNumber
		}
		parts = append(parts, street)
	}
	// Каскад по полям: совпавший с заголовком уровень пропускается,
	// а не обрывает подбор населённого пункта
	if f.City != "" && f.City != title {
		parts = append(parts, f.City)
	} else if f.Town != "" && f.Town != title {
		parts = append(parts, f.Town)
	} else if f.Village != "" && f.Village != title {
		parts = append(parts, f.Village)
	}
	if f.State != "" && f.State != title {
		parts = append(parts, f.State)
	}
	if f.Country != "" && f.Country != title {
		parts = append(parts, f.Country)
	}
	subtitle := strings.Join(parts, ", ")

	name := title
	if subtitle != "" {
		name = title + ", " + subtitle
	}

	return dto.PlaceSuggestion{
		Name:     name,
		Title:    title,
		Subtitle: subtitle,
		Lat:      f.Lat,
		Lng:      f.Lng,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
