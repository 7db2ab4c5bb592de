package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/wanderplan/internal/config"
	"github.com/wanderplan/internal/domain"
	"github.com/wanderplan/internal/domain/repository"
	"github.com/wanderplan/internal/pkg/validator"
)

// Структуры запроса generateContent (Google Generative Language API v1beta)

type generatePart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generationConfig struct {
	Temperature      float64         `json:"temperature"`
	ResponseMimeType string          `json:"responseMimeType"`
	ResponseSchema   json.RawMessage `json:"responseSchema"`
}

type generateRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig generationConfig  `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// responseSchema заставляет провайдера вернуть строгий JSON-документ маршрута.
// Kept as a raw JSON literal so the schema reads the same as the API docs.
const responseSchema = `{
  "type": "OBJECT",
  "properties": {
    "summary": {"type": "STRING"},
    "days": {
      "type": "ARRAY",
      "items": {
        "type": "OBJECT",
        "properties": {
          "day": {"type": "INTEGER"},
          "morning_cluster": {"type": "STRING"},
          "accommodation": {
            "type": "OBJECT",
            "properties": {
              "name": {"type": "STRING"},
              "description": {"type": "STRING"},
              "reason": {"type": "STRING"},
              "is_check_in": {"type": "BOOLEAN"},
              "coordinates": {
                "type": "OBJECT",
                "properties": {
                  "lat": {"type": "NUMBER"},
                  "lng": {"type": "NUMBER"}
                },
                "required": ["lat", "lng"]
              }
            },
            "required": ["name", "coordinates"]
          },
          "activities": {
            "type": "ARRAY",
            "items": {
              "type": "OBJECT",
              "properties": {
                "time": {"type": "STRING"},
                "name": {"type": "STRING"},
                "notes": {"type": "STRING"},
                "location_name": {"type": "STRING"},
                "energy_score": {"type": "INTEGER"},
                "duration_min": {"type": "INTEGER"},
                "website": {"type": "STRING"},
                "coordinates": {
                  "type": "OBJECT",
                  "properties": {
                    "lat": {"type": "NUMBER"},
                    "lng": {"type": "NUMBER"}
                  },
                  "required": ["lat", "lng"]
                }
              },
              "required": ["time", "name", "energy_score", "coordinates"]
            }
          }
        },
        "required": ["day", "activities"]
      }
    }
  },
  "required": ["summary", "days"]
}`

type client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	logger      *zap.Logger
}

// NewGenAIClient создает новый клиент генеративного провайдера
func NewGenAIClient(cfg *config.GenAIConfig, logger *zap.Logger) repository.GenerationRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		logger:      logger,
	}
}

// GenerateItinerary запрашивает у провайдера структурированный маршрут
func (c *client) GenerateItinerary(ctx context.Context, req repository.ItineraryRequest) (*domain.GeneratedTrip, error) {
	parts := []generatePart{{Text: buildPrompt(req)}}
	for _, img := range req.Images {
		mime, data, ok := splitDataURL(string(img))
		if !ok {
			c.logger.Warn("Skipping malformed reference image")
			continue
		}
		parts = append(parts, generatePart{InlineData: &inlineData{
			MimeType: mime,
			Data:     data,
		}})
	}

	body := generateRequest{
		Contents: []generateContent{{Parts: parts}},
		GenerationConfig: generationConfig{
			Temperature:      c.temperature,
			ResponseMimeType: "application/json",
			ResponseSchema:   json.RawMessage(responseSchema),
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	c.logger.Debug("Calling generation API",
		zap.String("model", c.model),
		zap.String("destination", req.Destination),
		zap.Int("days", req.Days),
		zap.Int("images", len(req.Images)))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("Generation API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)))
		return nil, fmt.Errorf("generation API error: status %d", resp.StatusCode)
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if genResp.Error != nil {
		return nil, fmt.Errorf("generation API error: %s", genResp.Error.Message)
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("generation API returned no candidates")
	}

	text := genResp.Candidates[0].Content.Parts[0].Text

	var trip domain.GeneratedTrip
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &trip); err != nil {
		c.logger.Error("Failed to parse generated itinerary", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", repository.ErrInvalidItineraryDocument, err)
	}

	if err := validator.Validate(&trip); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrInvalidItineraryDocument, err)
	}
	if err := trip.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrInvalidItineraryDocument, err)
	}

	c.logger.Debug("Generation API call successful",
		zap.Int("days", len(trip.Days)))

	return &trip, nil
}

// buildPrompt собирает текстовую инструкцию для провайдера.
// The energy budget steers daily intensity; the schema steers the shape.
func buildPrompt(req repository.ItineraryRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Plan a %d-day trip to %s starting on %s.\n", req.Days, req.Destination, req.StartDate)
	fmt.Fprintf(&b, "Pace: %s. Keep the total energy score of each day at or below %d.\n", req.ChillLevel, req.EnergyCap)
	b.WriteString("Group each day's activities geographically and name the morning cluster (the neighborhood or area where the day starts).\n")
	b.WriteString("Recommend one accommodation per day, placed near that day's morning cluster; mark is_check_in true only on the first night at a new accommodation, and explain the placement in reason.\n")
	b.WriteString("Rate every activity's energy_score from 1 (restful) to 10 (strenuous), estimate duration_min, and write practical notes.\n")
	b.WriteString("Use realistic coordinates for every place. Times are 24h HH:MM local.\n")
	if len(req.Images) > 0 {
		b.WriteString("The attached images show places or moods the traveler likes; let them influence the selection.\n")
	}
	return b.String()
}

// splitDataURL разбирает data-URL вида "data:image/jpeg;base64,AAAA..."
func splitDataURL(s string) (mimeType, data string, ok bool) {
	if !strings.HasPrefix(s, "data:") {
		return "", "", false
	}
	meta, payload, found := strings.Cut(s[len("data:"):], ",")
	if !found || payload == "" {
		return "", "", false
	}
	mimeType = strings.TrimSuffix(meta, ";base64")
	if mimeType == "" || mimeType == meta {
		// Only base64 data URLs are accepted.
		return "", "", false
	}
	return mimeType, payload, true
}

// stripCodeFence снимает обрамление ```json ... ``` если провайдер его добавил
func stripCodeFence(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```json")
	t = strings.TrimPrefix(t, "```")
	t = strings.TrimSuffix(strings.TrimSpace(t), "```")
	return strings.TrimSpace(t)
}
