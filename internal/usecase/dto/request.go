package dto

// SearchRequest - запрос на поиск мест (автодополнение)
type SearchRequest struct {
	Query      string   `json:"query"`
	Lat        *float64 `json:"lat,omitempty" validate:"omitempty,min=-90,max=90"`
	Lng        *float64 `json:"lng,omitempty" validate:"omitempty,min=-180,max=180"`
	OnlyCities bool     `json:"only_cities"`
}

// GenerateTripRequest - запрос на генерацию поездки
type GenerateTripRequest struct {
	Destination string   `json:"destination" validate:"required,min=2"`
	Days        int      `json:"days" validate:"required,min=1,max=30"`
	ChillLevel  string   `json:"chill_level" validate:"required"`
	StartDate   string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	Images      []string `json:"images,omitempty" validate:"omitempty,max=6"`
}

// CreateSpotRequest - запрос на создание точки (spot)
type CreateSpotRequest struct {
	TripID        *string  `json:"trip_id,omitempty"`
	Name          string   `json:"name" validate:"required,min=1"`
	Description   string   `json:"description"`
	Type          string   `json:"type" validate:"required,oneof=VISITED WANT_TO_VISIT ITINERARY ACCOMMODATION"`
	Lat           float64  `json:"lat" validate:"min=-90,max=90"`
	Lng           float64  `json:"lng" validate:"min=-180,max=180"`
	ItineraryTime *string  `json:"itinerary_time,omitempty" validate:"omitempty"`
	VisitedDate   *string  `json:"visited_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Website       string   `json:"website,omitempty" validate:"omitempty,url"`
	Photos        []string `json:"photos,omitempty"`
	IsCheckIn     *bool    `json:"is_check_in,omitempty"`
}

// UpdateSpotRequest - частичное обновление точки; nil-поля не меняются
type UpdateSpotRequest struct {
	TripID        *string   `json:"trip_id,omitempty"`
	Name          *string   `json:"name,omitempty" validate:"omitempty,min=1"`
	Description   *string   `json:"description,omitempty"`
	Type          *string   `json:"type,omitempty" validate:"omitempty,oneof=VISITED WANT_TO_VISIT ITINERARY ACCOMMODATION"`
	Lat           *float64  `json:"lat,omitempty" validate:"omitempty,min=-90,max=90"`
	Lng           *float64  `json:"lng,omitempty" validate:"omitempty,min=-180,max=180"`
	ItineraryTime *string   `json:"itinerary_time,omitempty"`
	VisitedDate   *string   `json:"visited_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Website       *string   `json:"website,omitempty" validate:"omitempty,url"`
	Photos        *[]string `json:"photos,omitempty"`
	IsCheckIn     *bool     `json:"is_check_in,omitempty"`
}

// AddPhotoRequest - запрос на добавление фото к точке
type AddPhotoRequest struct {
	Photo string `json:"photo" validate:"required"`
}

// SelectSpotRequest - запрос на выбор точки на карте
type SelectSpotRequest struct {
	SpotID string `json:"spot_id" validate:"required"`
}

// OpenLightboxRequest - запрос на открытие галереи фото точки
type OpenLightboxRequest struct {
	SpotID string `json:"spot_id" validate:"required"`
	Index  int    `json:"index" validate:"min=0"`
}
