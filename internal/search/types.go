package search

type ErrorCode string

const (
	ErrorCodeValidation      ErrorCode = "VALIDATION"
	ErrorCodeCityNotFound    ErrorCode = "CITY_NOT_FOUND"
	ErrorCodeProviderFailure ErrorCode = "PROVIDER_FAILURE"
	ErrorCodeInternalFailure ErrorCode = "INTERNAL_FAILURE"
)

// CodeSearchRequest searches by 3-letter IATA codes.
type CodeSearchRequest struct {
	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Adults      int    `json:"adults"`
	Children    int    `json:"children"`
}

// CitySearchRequest searches by free-text city names, resolved to IATA codes
// before the offer search. The optional state and country codes narrow the
// resolution; a combined code like "US-CA" is accepted for the state.
type CitySearchRequest struct {
	OriginCityName         string `json:"originCityName" binding:"required"`
	DestinationCityName    string `json:"destinationCityName" binding:"required"`
	Date                   string `json:"date" binding:"required"`
	Adults                 int    `json:"adults"`
	Children               int    `json:"children"`
	OriginCountryCode      string `json:"originCountryCode"`
	OriginStateCode        string `json:"originStateCode"`
	DestinationCountryCode string `json:"destinationCountryCode"`
	DestinationStateCode   string `json:"destinationStateCode"`
}

// FlightRecord is the normalized output shape, one per provider offer. Only
// the first segment of the first itinerary is represented; multi-segment and
// return detail is dropped on purpose.
type FlightRecord struct {
	ID            string `json:"id"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	Price         string `json:"price"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
	Duration      string `json:"duration"`
	Airline       string `json:"airline"`
}
