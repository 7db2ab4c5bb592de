package domain

// PlaceFeature - одно место из ответа поискового провайдера.
// Координаты уже приведены к lat/lng (провайдер отдаёт GeoJSON [lng, lat]).
type PlaceFeature struct {
	Name        string `json:"name,omitempty"`
	City        string `json:"city,omitempty"`
	Town        string `json:"town,omitempty"`
	Village     string `json:"village,omitempty"`
	State       string `json:"state,omitempty"`
	Country     string `json:"country,omitempty"`
	Street      string `json:"street,omitempty"`
	HouseNumber string `json:"housenumber,omitempty"`
	Postcode    string `json:"postcode,omitempty"`
	// OSMKey/OSMValue carry the place classification, e.g. "place"/"city"
	// or "amenity"/"restaurant".
	OSMKey   string  `json:"osm_key,omitempty"`
	OSMValue string  `json:"osm_value,omitempty"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

// IsPlaceLike reports whether the feature is an administrative/place-like
// category (city, town, region...) rather than an object or point of interest.
// Used by the onlyCities suggestion filter.
func (f PlaceFeature) IsPlaceLike() bool {
	if f.OSMKey == "place" || f.OSMKey == "boundary" {
		return true
	}
	switch f.OSMValue {
	case "city", "town", "village", "hamlet", "suburb", "borough", "county", "state", "country":
		return true
	}
	switch f.OSMKey {
	case "highway", "amenity", "shop", "tourism", "leisure", "building":
		return false
	}
	// Not clearly an object/POI; keep it rather than risk an empty list.
	return true
}
