package photon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/wanderplan/internal/config"
	"github.com/wanderplan/internal/domain"
	"github.com/wanderplan/internal/domain/repository"
)

// photonFeature - сырой GeoJSON-объект из ответа Photon
type photonFeature struct {
	Geometry struct {
		// Coordinates are GeoJSON order: [lng, lat].
		Coordinates []float64 `json:"coordinates"`
		Type        string    `json:"type"`
	} `json:"geometry"`
	Properties struct {
		Name        string `json:"name"`
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
		State       string `json:"state"`
		Country     string `json:"country"`
		Street      string `json:"street"`
		HouseNumber string `json:"housenumber"`
		Postcode    string `json:"postcode"`
		OSMKey      string `json:"osm_key"`
		OSMValue    string `json:"osm_value"`
	} `json:"properties"`
}

type photonResponse struct {
	Features []photonFeature `json:"features"`
}

type client struct {
	httpClient *http.Client
	baseURL    string
	language   string
	logger     *zap.Logger
}

// NewPhotonClient создает новый клиент для Photon API (Komoot)
func NewPhotonClient(cfg *config.PhotonConfig, logger *zap.Logger) repository.PlaceSearchRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:  cfg.BaseURL,
		language: cfg.Language,
		logger:   logger,
	}
}

// SearchPlaces выполняет текстовый поиск мест через Photon.
// Жёсткая фильтрация по osm_tag в URL не используется: она выкидывает
// крупные города из-за особенностей тегирования OSM, поэтому фильтрация
// выполняется на клиенте по классификации.
func (c *client) SearchPlaces(ctx context.Context, query string, bias *domain.Coordinates, limit int) ([]domain.PlaceFeature, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("lang", c.language)
	if bias != nil {
		params.Set("lat", strconv.FormatFloat(bias.Lat, 'f', -1, 64))
		params.Set("lon", strconv.FormatFloat(bias.Lng, 'f', -1, 64))
	}

	reqURL := fmt.Sprintf("%s/api/?%s", c.baseURL, params.Encode())

	c.logger.Debug("Calling Photon API",
		zap.String("query", query),
		zap.Int("limit", limit),
		zap.Bool("biased", bias != nil))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Photon API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("photon API error: status %d", resp.StatusCode)
	}

	var photonResp photonResponse
	if err := json.NewDecoder(resp.Body).Decode(&photonResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	features := make([]domain.PlaceFeature, 0, len(photonResp.Features))
	for _, f := range photonResp.Features {
		if len(f.Geometry.Coordinates) < 2 {
			continue
		}
		features = append(features, domain.PlaceFeature{
			Name:        f.Properties.Name,
			City:        f.Properties.City,
			Town:        f.Properties.Town,
			Village:     f.Properties.Village,
			State:       f.Properties.State,
			Country:     f.Properties.Country,
			Street:      f.Properties.Street,
			HouseNumber: f.Properties.HouseNumber,
			Postcode:    f.Properties.Postcode,
			OSMKey:      f.Properties.OSMKey,
			OSMValue:    f.Properties.OSMValue,
			Lat:         f.Geometry.Coordinates[1],
			Lng:         f.Geometry.Coordinates[0],
		})
	}

	c.logger.Debug("Photon API call successful",
		zap.Int("features", len(features)))

	return features, nil
}
