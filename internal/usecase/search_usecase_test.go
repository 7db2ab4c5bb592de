package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wanderplan/internal/config"
	"github.com/wanderplan/internal/domain"
	"github.com/wanderplan/internal/usecase"
	"github.com/wanderplan/internal/usecase/dto"
)

// MockPlaceSearchRepository - мок провайдера поиска мест
type MockPlaceSearchRepository struct {
	mock.Mock
}

func (m *MockPlaceSearchRepository) SearchPlaces(ctx context.Context, query string, bias *domain.Coordinates, limit int) ([]domain.PlaceFeature, error) {
	args := m.Called(ctx, query, bias, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlaceFeature), args.Error(1)
}

func searchConfig(debounce time.Duration) *config.SearchConfig {
	return &config.SearchConfig{
		Debounce:       debounce,
		SuggestionCap:  10,
		MinQueryLength: 2,
	}
}

func cityFeature(name, country string, lat, lng float64) domain.PlaceFeature {
	return domain.PlaceFeature{
		Name:     name,
		Country:  country,
		OSMKey:   "place",
		OSMValue: "city",
		Lat:      lat,
		Lng:      lng,
	}
}

func TestSearchUseCase_Search(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("short query returns empty without provider call", func(t *testing.T) {
		mockRepo := &MockPlaceSearchRepository{}
		uc := usecase.NewSearchUseCase(mockRepo, nil, searchConfig(time.Millisecond), 15, 0, logger)

		resp, err := uc.Search(ctx, dto.SearchRequest{Query: "P"})
		require.NoError(t, err)
		assert.Empty(t, resp.Suggestions)
		assert.False(t, resp.Superseded)
		mockRepo.AssertNotCalled(t, "SearchPlaces")
	})

	t.Run("successful search maps features", func(t *testing.T) {
		mockRepo := &MockPlaceSearchRepository{}
		mockRepo.On("SearchPlaces", mock.Anything, "Paris", (*domain.Coordinates)(nil), 15).
			Return([]domain.PlaceFeature{
				{Name: "Paris", State: "Ile-de-France", Country: "France", OSMKey: "place", OSMValue: "city", Lat: 48.8575, Lng: 2.3514},
			}, nil)

		uc := usecase.NewSearchUseCase(mockRepo, nil, searchConfig(time.Millisecond), 15, 0, logger)

		resp, err := uc.Search(ctx, dto.SearchRequest{Query: "Paris"})
		require.NoError(t, err)
		require.Len(t, resp.Suggestions, 1)
		s := resp.Suggestions[0]
		assert.Equal(t, "Paris", s.Title)
		assert.Equal(t, "Ile-de-France, France", s.Subtitle)
		assert.Equal(t, "Paris, Ile-de-France, France", s.Name)
		assert.InDelta(t, 48.8575, s.Lat, 0.0001)
	})

	t.Run("debounce collapses bursts to one provider call", func(t *testing.T) {
		mockRepo := &MockPlaceSearchRepository{}
		mockRepo.On("SearchPlaces", mock.Anything, "Paris", (*domain.Coordinates)(nil), 15).
			Return([]domain.PlaceFeature{cityFeature("Paris", "France", 48.8575, 2.3514)}, nil)

		uc := usecase.NewSearchUseCase(mockRepo, nil, searchConfig(150*time.Millisecond), 15, 0, logger)

		var wg sync.WaitGroup
		var mu sync.Mutex
		results := map[string]*dto.SearchResponse{}
		for _, q := range []string{"Par", "Pari", "Paris"} {
			wg.Add(1)
			go func(q string) {
				defer wg.Done()
				resp, err := uc.Search(ctx, dto.SearchRequest{Query: q})
				require.NoError(t, err)
				mu.Lock()
				results[q] = resp
				mu.Unlock()
			}(q)
			time.Sleep(50 * time.Millisecond)
		}
		wg.Wait()

		// Only the final keystroke survives the debounce window
		mockRepo.AssertNumberOfCalls(t, "SearchPlaces", 1)
		assert.True(t, results["Par"].Superseded)
		assert.True(t, results["Pari"].Superseded)
		assert.False(t, results["Paris"].Superseded)
		require.Len(t, results["Paris"].Suggestions, 1)
		assert.Equal(t, "Paris", results["Paris"].Suggestions[0].Title)
	})

	t.Run("late response of a superseded call is dropped", func(t *testing.T) {
		mockRepo := &MockPlaceSearchRepository{}
		// The older query resolves slowly, after the newer one was issued
		mockRepo.On("SearchPlaces", mock.Anything, "Lon", (*domain.Coordinates)(nil), 15).
			Run(func(args mock.Arguments) { time.Sleep(200 * time.Millisecond) }).
			Return([]domain.PlaceFeature{cityFeature("Lon", "Unknownland", 0.1, 0.1)}, nil)
		mockRepo.On("SearchPlaces", mock.Anything, "London", (*domain.Coordinates)(nil), 15).
			Return([]domain.PlaceFeature{cityFeature("London", "United Kingdom", 51.5072, -0.1276)}, nil)

		uc := usecase.NewSearchUseCase(mockRepo, nil, searchConfig(10*time.Millisecond), 15, 0, logger)

		var wg sync.WaitGroup
		var oldResp *dto.SearchResponse
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := uc.Search(ctx, dto.SearchRequest{Query: "Lon"})
			require.NoError(t, err)
			oldResp = resp
		}()

		// Let the old call pass its debounce and reach the provider
		time.Sleep(80 * time.Millisecond)

		newResp, err := uc.Search(ctx, dto.SearchRequest{Query: "London"})
		require.NoError(t, err)
		wg.Wait()

		assert.True(t, oldResp.Superseded)
		assert.Empty(t, oldResp.Suggestions)
		require.Len(t, newResp.Suggestions, 1)
		assert.Equal(t, "London", newResp.Suggestions[0].Title)
	})

	t.Run("provider failure degrades to empty list", func(t *testing.T) {
		mockRepo := &MockPlaceSearchRepository{}
		mockRepo.On("SearchPlaces", mock.Anything, "Paris", (*domain.Coordinates)(nil), 15).
			Return(nil, assert.AnError)

		uc := usecase.NewSearchUseCase(mockRepo, nil, searchConfig(time.Millisecond), 15, 0, logger)

		resp, err := uc.Search(ctx, dto.SearchRequest{Query: "Paris"})
		require.NoError(t, err)
		assert.Empty(t, resp.Suggestions)
		assert.False(t, resp.Superseded)
	})

	t.Run("only_cities filters non-places", func(t *testing.T) {
		mockRepo := &MockPlaceSearchRepository{}
		mockRepo.On("SearchPlaces", mock.Anything, "Berlin", (*domain.Coordinates)(nil), 15).
			Return([]domain.PlaceFeature{
				cityFeature("Berlin", "Germany", 52.52, 13.405),
				{Name: "Berlin Doner Kebab", OSMKey: "amenity", OSMValue: "fast_food", Lat: 52.5, Lng: 13.4},
				{Name: "Berliner Strasse", OSMKey: "highway", OSMValue: "residential", Lat: 52.5, Lng: 13.4},
			}, nil)

		uc := usecase.NewSearchUseCase(mockRepo, nil, searchConfig(time.Millisecond), 15, 0, logger)

		resp, err := uc.Search(ctx, dto.SearchRequest{Query: "Berlin", OnlyCities: true})
		require.NoError(t, err)
		require.Len(t, resp.Suggestions, 1)
		assert.Equal(t, "Berlin", resp.Suggestions[0].Title)
	})

	t.Run("suggestions are capped", func(t *testing.T) {
		features := make([]domain.PlaceFeature, 15)
		for i := range features {
			features[i] = cityFeature("Springfield", "USA", float64(30+i), float64(-90-i))
		}
		mockRepo := &MockPlaceSearchRepository{}
		mockRepo.On("SearchPlaces", mock.Anything, "Springfield", (*domain.Coordinates)(nil), 15).
			Return(features, nil)

		uc := usecase.NewSearchUseCase(mockRepo, nil, searchConfig(time.Millisecond), 15, 0, logger)

		resp, err := uc.Search(ctx, dto.SearchRequest{Query: "Springfield"})
		require.NoError(t, err)
		assert.Len(t, resp.Suggestions, 10)
	})

	t.Run("title falls back through locality fields", func(t *testing.T) {
		mockRepo := &MockPlaceSearchRepository{}
		mockRepo.On("SearchPlaces", mock.Anything, "somewhere", (*domain.Coordinates)(nil), 15).
			Return([]domain.PlaceFeature{
				{Town: "Smallville", Country: "USA", OSMKey: "place", OSMValue: "town", Lat: 1, Lng: 1},
				{OSMKey: "place", OSMValue: "locality", Lat: 2, Lng: 2},
			}, nil)

		uc := usecase.NewSearchUseCase(mockRepo, nil, searchConfig(time.Millisecond), 15, 0, logger)

		resp, err := uc.Search(ctx, dto.SearchRequest{Query: "somewhere"})
		require.NoError(t, err)
		require.Len(t, resp.Suggestions, 2)
		assert.Equal(t, "Smallville", resp.Suggestions[0].Title)
		assert.Equal(t, "Unknown Location", resp.Suggestions[1].Title)
	})

	t.Run("locality cascade skips the level matching the title", func(t *testing.T) {
		mockRepo := &MockPlaceSearchRepository{}
		mockRepo.On("SearchPlaces", mock.Anything, "Nantes", (*domain.Coordinates)(nil), 15).
			Return([]domain.PlaceFeature{
				{
					City: "Nantes", Town: "Rezé", Country: "France",
					OSMKey: "place", OSMValue: "city", Lat: 47.2, Lng: -1.55,
				},
			}, nil)

		uc := usecase.NewSearchUseCase(mockRepo, nil, searchConfig(time.Millisecond), 15, 0, logger)

		resp, err := uc.Search(ctx, dto.SearchRequest{Query: "Nantes"})
		require.NoError(t, err)
		require.Len(t, resp.Suggestions, 1)
		// Город совпал с заголовком, но уровень town всё равно попадает в подзаголовок
		assert.Equal(t, "Nantes", resp.Suggestions[0].Title)
		assert.Equal(t, "Rezé, France", resp.Suggestions[0].Subtitle)
	})

	t.Run("street address appears in subtitle when not city-only", func(t *testing.T) {
		mockRepo := &MockPlaceSearchRepository{}
		mockRepo.On("SearchPlaces", mock.Anything, "Louvre", (*domain.Coordinates)(nil), 15).
			Return([]domain.PlaceFeature{
				{
					Name: "Louvre", Street: "Rue de Rivoli", HouseNumber: "99",
					City: "Paris", Country: "France",
					OSMKey: "tourism", OSMValue: "museum", Lat: 48.8606, Lng: 2.3376,
				},
			}, nil)

		uc := usecase.NewSearchUseCase(mockRepo, nil, searchConfig(time.Millisecond), 15, 0, logger)

		resp, err := uc.Search(ctx, dto.SearchRequest{Query: "Louvre"})
		require.NoError(t, err)
		require.Len(t, resp.Suggestions, 1)
		assert.Equal(t, "Rue de Rivoli 99, Paris, France", resp.Suggestions[0].Subtitle)
	})

	t.Run("bias is forwarded to the provider", func(t *testing.T) {
		lat, lng := 48.8575, 2.3514
		mockRepo := &MockPlaceSearchRepository{}
		mockRepo.On("SearchPlaces", mock.Anything, "cafe", &domain.Coordinates{Lat: lat, Lng: lng}, 15).
			Return([]domain.PlaceFeature{}, nil)

		uc := usecase.NewSearchUseCase(mockRepo, nil, searchConfig(time.Millisecond), 15, 0, logger)

		_, err := uc.Search(ctx, dto.SearchRequest{Query: "cafe", Lat: &lat, Lng: &lng})
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}
