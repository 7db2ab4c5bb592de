package errors

import "net/http"

var (
	ErrTripNotFound = New(
		"TRIP_NOT_FOUND",
		"Trip not found",
		http.StatusNotFound,
	)

	ErrSpotNotFound = New(
		"SPOT_NOT_FOUND",
		"Spot not found",
		http.StatusNotFound,
	)

	ErrUnknownTrip = New(
		"UNKNOWN_TRIP",
		"Spot references a trip that does not exist",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidSpotType = New(
		"INVALID_SPOT_TYPE",
		"Invalid spot type",
		http.StatusBadRequest,
	)

	ErrInvalidChillLevel = New(
		"INVALID_CHILL_LEVEL",
		"Invalid chill level",
		http.StatusBadRequest,
	)

	ErrInvalidDate = New(
		"INVALID_DATE",
		"Invalid calendar date",
		http.StatusBadRequest,
	)

	ErrPhotoIndexOutOfRange = New(
		"PHOTO_INDEX_OUT_OF_RANGE",
		"Photo index out of range",
		http.StatusBadRequest,
	)

	ErrLightboxClosed = New(
		"LIGHTBOX_CLOSED",
		"Lightbox is not open",
		http.StatusConflict,
	)

	ErrMissingCredentials = New(
		"CONFIG_MISSING_CREDENTIALS",
		"Generation API key is not configured",
		http.StatusServiceUnavailable,
	)

	ErrGenerationFailed = New(
		"GENERATION_FAILED",
		"Failed to generate itinerary. Please try again.",
		http.StatusBadGateway,
	)

	ErrGenerationInvalidResponse = New(
		"GENERATION_INVALID_RESPONSE",
		"Generation provider returned an invalid itinerary",
		http.StatusBadGateway,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
