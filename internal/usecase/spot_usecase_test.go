package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/wanderplan/internal/pkg/errors"
	"github.com/wanderplan/internal/repository/memory"
	"github.com/wanderplan/internal/usecase"
	"github.com/wanderplan/internal/usecase/dto"
)

func strPtr(s string) *string { return &s }

func timeDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestSpotUseCase_CreateSpot(t *testing.T) {
	logger := zap.NewNop()

	t.Run("saved place without trip", func(t *testing.T) {
		uc := usecase.NewSpotUseCase(memory.NewEntityStore(), logger)

		resp, err := uc.CreateSpot(dto.CreateSpotRequest{
			Name: "Hidden ramen bar",
			Type: "WANT_TO_VISIT",
			Lat:  35.6595,
			Lng:  139.7005,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Nil(t, resp.TripID)
		assert.Equal(t, "WANT_TO_VISIT", resp.Type)
		assert.Equal(t, "Saved place", resp.Description)
	})

	t.Run("saved place keeps an explicit description", func(t *testing.T) {
		uc := usecase.NewSpotUseCase(memory.NewEntityStore(), logger)

		resp, err := uc.CreateSpot(dto.CreateSpotRequest{
			Name:        "Hidden ramen bar",
			Description: "Open past midnight",
			Type:        "WANT_TO_VISIT",
			Lat:         35.6595,
			Lng:         139.7005,
		})
		require.NoError(t, err)
		assert.Equal(t, "Open past midnight", resp.Description)
	})

	t.Run("accommodation defaults", func(t *testing.T) {
		store := memory.NewEntityStore()
		trip, err := store.CreateTrip(newTrip("Tokyo", timeDate(2026, 10, 1), 3))
		require.NoError(t, err)

		uc := usecase.NewSpotUseCase(store, logger)

		resp, err := uc.CreateSpot(dto.CreateSpotRequest{
			TripID: &trip.ID,
			Name:   "Shinjuku Hotel",
			Type:   "ACCOMMODATION",
			Lat:    35.6938,
			Lng:    139.7034,
		})
		require.NoError(t, err)
		require.NotNil(t, resp.IsCheckIn)
		assert.True(t, *resp.IsCheckIn)
		assert.Equal(t, "Manual Base Camp", resp.Description)
	})

	t.Run("itinerary event gets default description", func(t *testing.T) {
		store := memory.NewEntityStore()
		trip, err := store.CreateTrip(newTrip("Tokyo", timeDate(2026, 10, 1), 3))
		require.NoError(t, err)

		uc := usecase.NewSpotUseCase(store, logger)

		itTime := "2026-10-01T14:00:00Z"
		resp, err := uc.CreateSpot(dto.CreateSpotRequest{
			TripID:        &trip.ID,
			Name:          "TeamLab",
			Type:          "ITINERARY",
			Lat:           35.6263,
			Lng:           139.7838,
			ItineraryTime: &itTime,
		})
		require.NoError(t, err)
		assert.Equal(t, "User added activity", resp.Description)
		require.NotNil(t, resp.ItineraryTime)
	})

	t.Run("unknown trip reference", func(t *testing.T) {
		uc := usecase.NewSpotUseCase(memory.NewEntityStore(), logger)

		_, err := uc.CreateSpot(dto.CreateSpotRequest{
			TripID: strPtr("ghost"),
			Name:   "Nowhere",
			Type:   "ITINERARY",
			Lat:    1,
			Lng:    1,
		})
		assert.ErrorIs(t, err, apperrors.ErrUnknownTrip)
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		uc := usecase.NewSpotUseCase(memory.NewEntityStore(), logger)

		_, err := uc.CreateSpot(dto.CreateSpotRequest{Name: "X", Type: "VISITED", Lat: 95, Lng: 0})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCoordinates)
	})

	t.Run("invalid itinerary time", func(t *testing.T) {
		uc := usecase.NewSpotUseCase(memory.NewEntityStore(), logger)

		bad := "yesterday"
		_, err := uc.CreateSpot(dto.CreateSpotRequest{
			Name: "X", Type: "VISITED", Lat: 0, Lng: 0, ItineraryTime: &bad,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidDate)
	})

	t.Run("visited date parses as local calendar date", func(t *testing.T) {
		uc := usecase.NewSpotUseCase(memory.NewEntityStore(), logger)

		visited := "2025-03-15"
		resp, err := uc.CreateSpot(dto.CreateSpotRequest{
			Name: "Old cafe", Type: "VISITED", Lat: 41.3851, Lng: 2.1734, VisitedDate: &visited,
		})
		require.NoError(t, err)
		require.NotNil(t, resp.VisitedDate)
		assert.Equal(t, "2025-03-15", *resp.VisitedDate)
	})
}

func TestSpotUseCase_UpdateSpot(t *testing.T) {
	logger := zap.NewNop()

	t.Run("partial merge keeps untouched fields", func(t *testing.T) {
		store := memory.NewEntityStore()
		uc := usecase.NewSpotUseCase(store, logger)

		created, err := uc.CreateSpot(dto.CreateSpotRequest{
			Name:        "Market",
			Description: "Fresh fish",
			Type:        "WANT_TO_VISIT",
			Lat:         38.7169,
			Lng:         -9.1399,
		})
		require.NoError(t, err)

		updated, err := uc.UpdateSpot(created.ID, dto.UpdateSpotRequest{Name: strPtr("Time Out Market")})
		require.NoError(t, err)
		assert.Equal(t, "Time Out Market", updated.Name)
		assert.Equal(t, "Fresh fish", updated.Description)
		assert.Equal(t, "WANT_TO_VISIT", updated.Type)
	})

	t.Run("coordinates change only as a pair", func(t *testing.T) {
		store := memory.NewEntityStore()
		uc := usecase.NewSpotUseCase(store, logger)

		created, err := uc.CreateSpot(dto.CreateSpotRequest{Name: "A", Type: "VISITED", Lat: 1, Lng: 1})
		require.NoError(t, err)

		lat := 2.0
		_, err = uc.UpdateSpot(created.ID, dto.UpdateSpotRequest{Lat: &lat})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCoordinates)
	})

	t.Run("trip link moves and detaches", func(t *testing.T) {
		store := memory.NewEntityStore()
		uc := usecase.NewSpotUseCase(store, logger)

		trip, err := store.CreateTrip(newTrip("Porto", timeDate(2026, time.October, 1), 3))
		require.NoError(t, err)

		created, err := uc.CreateSpot(dto.CreateSpotRequest{Name: "Livraria Lello", Type: "WANT_TO_VISIT", Lat: 41.15, Lng: -8.61})
		require.NoError(t, err)
		require.Nil(t, created.TripID)

		attached, err := uc.UpdateSpot(created.ID, dto.UpdateSpotRequest{TripID: strPtr(trip.ID)})
		require.NoError(t, err)
		require.NotNil(t, attached.TripID)
		assert.Equal(t, trip.ID, *attached.TripID)

		// Пустая строка отвязывает точку от поездки
		detached, err := uc.UpdateSpot(created.ID, dto.UpdateSpotRequest{TripID: strPtr("")})
		require.NoError(t, err)
		assert.Nil(t, detached.TripID)
	})

	t.Run("trip link requires an existing trip", func(t *testing.T) {
		store := memory.NewEntityStore()
		uc := usecase.NewSpotUseCase(store, logger)

		created, err := uc.CreateSpot(dto.CreateSpotRequest{Name: "A", Type: "VISITED", Lat: 1, Lng: 1})
		require.NoError(t, err)

		_, err = uc.UpdateSpot(created.ID, dto.UpdateSpotRequest{TripID: strPtr("missing-trip")})
		assert.ErrorIs(t, err, apperrors.ErrUnknownTrip)

		// Неудачная перепривязка не трогает точку
		after, err := uc.GetSpot(created.ID)
		require.NoError(t, err)
		assert.Nil(t, after.TripID)
	})

	t.Run("unknown spot", func(t *testing.T) {
		uc := usecase.NewSpotUseCase(memory.NewEntityStore(), logger)
		_, err := uc.UpdateSpot("missing", dto.UpdateSpotRequest{Name: strPtr("x")})
		assert.ErrorIs(t, err, apperrors.ErrSpotNotFound)
	})
}

func TestSpotUseCase_Photos(t *testing.T) {
	logger := zap.NewNop()

	setup := func(t *testing.T) (*usecase.SpotUseCase, string) {
		t.Helper()
		uc := usecase.NewSpotUseCase(memory.NewEntityStore(), logger)
		created, err := uc.CreateSpot(dto.CreateSpotRequest{
			Name:   "Viewpoint",
			Type:   "VISITED",
			Lat:    38.7139,
			Lng:    -9.1334,
			Photos: []string{"photo-a", "photo-b"},
		})
		require.NoError(t, err)
		return uc, created.ID
	}

	t.Run("append keeps order", func(t *testing.T) {
		uc, id := setup(t)

		resp, err := uc.AddPhoto(id, "photo-c")
		require.NoError(t, err)
		assert.Equal(t, []string{"photo-a", "photo-b", "photo-c"}, resp.Photos)
	})

	t.Run("remove by index preserves the rest", func(t *testing.T) {
		uc, id := setup(t)

		resp, err := uc.RemovePhoto(id, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"photo-b"}, resp.Photos)
	})

	t.Run("remove out of range", func(t *testing.T) {
		uc, id := setup(t)

		_, err := uc.RemovePhoto(id, 5)
		assert.ErrorIs(t, err, apperrors.ErrPhotoIndexOutOfRange)
		_, err = uc.RemovePhoto(id, -1)
		assert.ErrorIs(t, err, apperrors.ErrPhotoIndexOutOfRange)
	})
}

func TestSpotUseCase_Selection(t *testing.T) {
	logger := zap.NewNop()

	t.Run("select, read, clear", func(t *testing.T) {
		uc := usecase.NewSpotUseCase(memory.NewEntityStore(), logger)

		created, err := uc.CreateSpot(dto.CreateSpotRequest{Name: "A", Type: "VISITED", Lat: 1, Lng: 1})
		require.NoError(t, err)

		require.NoError(t, uc.Select(created.ID))
		sel := uc.Selection()
		require.NotNil(t, sel.Spot)
		assert.Equal(t, created.ID, sel.Spot.ID)

		uc.ClearSelection()
		assert.Nil(t, uc.Selection().Spot)
	})

	t.Run("selection cleared when spot deleted", func(t *testing.T) {
		uc := usecase.NewSpotUseCase(memory.NewEntityStore(), logger)

		created, err := uc.CreateSpot(dto.CreateSpotRequest{Name: "A", Type: "VISITED", Lat: 1, Lng: 1})
		require.NoError(t, err)
		require.NoError(t, uc.Select(created.ID))

		require.NoError(t, uc.DeleteSpot(created.ID))
		assert.Nil(t, uc.Selection().Spot)
	})

	t.Run("selecting unknown spot fails", func(t *testing.T) {
		uc := usecase.NewSpotUseCase(memory.NewEntityStore(), logger)
		assert.ErrorIs(t, uc.Select("missing"), apperrors.ErrSpotNotFound)
	})
}

func TestSpotUseCase_ListSaved(t *testing.T) {
	logger := zap.NewNop()
	store := memory.NewEntityStore()
	uc := usecase.NewSpotUseCase(store, logger)

	_, err := uc.CreateSpot(dto.CreateSpotRequest{Name: "Saved cafe", Type: "WANT_TO_VISIT", Lat: 1, Lng: 1})
	require.NoError(t, err)
	// Внеплановая точка маршрута без поездки в "сохранённые" не попадает
	_, err = uc.CreateSpot(dto.CreateSpotRequest{Name: "Stray event", Type: "ITINERARY", Lat: 2, Lng: 2})
	require.NoError(t, err)

	saved := uc.ListSaved()
	require.Equal(t, 1, saved.Total)
	assert.Equal(t, "Saved cafe", saved.Spots[0].Name)
}
