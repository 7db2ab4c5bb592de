package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wanderplan/internal/config"
	"github.com/wanderplan/internal/domain"
	"github.com/wanderplan/internal/domain/repository"
)

const validItineraryJSON = `{
	"summary": "Two relaxed days in Lisbon",
	"days": [
		{
			"day": 1,
			"morning_cluster": "Alfama",
			"accommodation": {
				"name": "Alfama Guesthouse",
				"description": "Small guesthouse with river views",
				"reason": "Walking distance to the first day's sights",
				"is_check_in": true,
				"coordinates": {"lat": 38.7126, "lng": -9.1271}
			},
			"activities": [
				{
					"time": "09:30",
					"name": "Castelo de Sao Jorge",
					"notes": "Buy tickets online",
					"location_name": "Alfama",
					"energy_score": 6,
					"duration_min": 120,
					"coordinates": {"lat": 38.7139, "lng": -9.1335}
				}
			]
		},
		{
			"day": 2,
			"morning_cluster": "Belem",
			"activities": [
				{
					"time": "10:00",
					"name": "Pasteis de Belem",
					"notes": "Expect a queue",
					"location_name": "Belem",
					"energy_score": 2,
					"duration_min": 45,
					"coordinates": {"lat": 38.6975, "lng": -9.2032}
				}
			]
		}
	]
}`

func genServer(t *testing.T, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{
					"content": map[string]interface{}{
						"parts": []map[string]interface{}{{"text": text}},
					},
					"finishReason": "STOP",
				},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func testConfig(serverURL string) *config.GenAIConfig {
	return &config.GenAIConfig{
		BaseURL:        serverURL,
		APIKey:         "test_key",
		Model:          "gemini-3-flash-preview",
		Temperature:    0.4,
		RequestTimeout: 5 * time.Second,
	}
}

func TestClient_GenerateItinerary(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	req := repository.ItineraryRequest{
		Destination: "Lisbon",
		Days:        2,
		ChillLevel:  domain.ChillLevelRelaxed,
		StartDate:   "2026-09-10",
		EnergyCap:   12,
	}

	t.Run("successful generation", func(t *testing.T) {
		server := genServer(t, validItineraryJSON)
		defer server.Close()

		client := NewGenAIClient(testConfig(server.URL), logger)

		trip, err := client.GenerateItinerary(context.Background(), req)
		require.NoError(t, err)
		require.NotNil(t, trip)
		assert.Equal(t, "Two relaxed days in Lisbon", trip.Summary)
		require.Len(t, trip.Days, 2)
		assert.Equal(t, "Alfama", trip.Days[0].MorningCluster)
		require.NotNil(t, trip.Days[0].Accommodation)
		assert.True(t, trip.Days[0].Accommodation.IsCheckIn)
		assert.Nil(t, trip.Days[1].Accommodation)
		assert.Equal(t, 6, trip.Days[0].Activities[0].EnergyScore)
	})

	t.Run("request carries model and key", func(t *testing.T) {
		var gotPath, gotKey string
		var gotBody generateRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotKey = r.URL.Query().Get("key")
			json.NewDecoder(r.Body).Decode(&gotBody)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"candidates": []map[string]interface{}{
					{"content": map[string]interface{}{
						"parts": []map[string]interface{}{{"text": validItineraryJSON}},
					}},
				},
			})
		}))
		defer server.Close()

		client := NewGenAIClient(testConfig(server.URL), logger)

		_, err := client.GenerateItinerary(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "/v1beta/models/gemini-3-flash-preview:generateContent", gotPath)
		assert.Equal(t, "test_key", gotKey)
		require.Len(t, gotBody.Contents, 1)
		require.NotEmpty(t, gotBody.Contents[0].Parts)
		assert.Contains(t, gotBody.Contents[0].Parts[0].Text, "Lisbon")
		assert.Contains(t, gotBody.Contents[0].Parts[0].Text, "2026-09-10")
		assert.Contains(t, gotBody.Contents[0].Parts[0].Text, "12")
		assert.Equal(t, "application/json", gotBody.GenerationConfig.ResponseMimeType)
	})

	t.Run("reference images become inline parts", func(t *testing.T) {
		var gotBody generateRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&gotBody)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"candidates": []map[string]interface{}{
					{"content": map[string]interface{}{
						"parts": []map[string]interface{}{{"text": validItineraryJSON}},
					}},
				},
			})
		}))
		defer server.Close()

		client := NewGenAIClient(testConfig(server.URL), logger)

		imgReq := req
		imgReq.Images = []domain.PhotoRef{
			"data:image/jpeg;base64,AAAA",
			"not-a-data-url",
			"data:image/png;base64,BBBB",
		}

		_, err := client.GenerateItinerary(context.Background(), imgReq)
		require.NoError(t, err)
		// prompt + 2 valid images; the malformed ref is skipped
		require.Len(t, gotBody.Contents[0].Parts, 3)
		assert.Equal(t, "image/jpeg", gotBody.Contents[0].Parts[1].InlineData.MimeType)
		assert.Equal(t, "AAAA", gotBody.Contents[0].Parts[1].InlineData.Data)
		assert.Equal(t, "image/png", gotBody.Contents[0].Parts[2].InlineData.MimeType)
	})

	t.Run("code-fenced response is accepted", func(t *testing.T) {
		server := genServer(t, "```json\n"+validItineraryJSON+"\n```")
		defer server.Close()

		client := NewGenAIClient(testConfig(server.URL), logger)

		trip, err := client.GenerateItinerary(context.Background(), req)
		require.NoError(t, err)
		assert.Len(t, trip.Days, 2)
	})

	t.Run("empty days fails validation", func(t *testing.T) {
		server := genServer(t, `{"summary": "nothing", "days": []}`)
		defer server.Close()

		client := NewGenAIClient(testConfig(server.URL), logger)

		_, err := client.GenerateItinerary(context.Background(), req)
		assert.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrInvalidItineraryDocument)
	})

	t.Run("invalid activity time fails validation", func(t *testing.T) {
		server := genServer(t, `{
			"summary": "bad time",
			"days": [{
				"day": 1,
				"activities": [{
					"time": "25:99",
					"name": "Impossible",
					"energy_score": 5,
					"coordinates": {"lat": 1, "lng": 1}
				}]
			}]
		}`)
		defer server.Close()

		client := NewGenAIClient(testConfig(server.URL), logger)

		_, err := client.GenerateItinerary(context.Background(), req)
		assert.Error(t, err)
	})

	t.Run("non-JSON text fails", func(t *testing.T) {
		server := genServer(t, "Sorry, I cannot plan that trip.")
		defer server.Close()

		client := NewGenAIClient(testConfig(server.URL), logger)

		_, err := client.GenerateItinerary(context.Background(), req)
		assert.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrInvalidItineraryDocument)
	})

	t.Run("no candidates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates": []}`))
		}))
		defer server.Close()

		client := NewGenAIClient(testConfig(server.URL), logger)

		_, err := client.GenerateItinerary(context.Background(), req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no candidates")
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := NewGenAIClient(testConfig(server.URL), logger)

		_, err := client.GenerateItinerary(context.Background(), req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "status 429")
	})
}

func TestSplitDataURL(t *testing.T) {
	t.Run("valid jpeg", func(t *testing.T) {
		mime, data, ok := splitDataURL("data:image/jpeg;base64,QUJD")
		require.True(t, ok)
		assert.Equal(t, "image/jpeg", mime)
		assert.Equal(t, "QUJD", data)
	})

	t.Run("not a data url", func(t *testing.T) {
		_, _, ok := splitDataURL("https://example.com/photo.jpg")
		assert.False(t, ok)
	})

	t.Run("missing base64 marker", func(t *testing.T) {
		_, _, ok := splitDataURL("data:image/jpeg,QUJD")
		assert.False(t, ok)
	})

	t.Run("empty payload", func(t *testing.T) {
		_, _, ok := splitDataURL("data:image/jpeg;base64,")
		assert.False(t, ok)
	})
}
