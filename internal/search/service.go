package search

import (
	"context"
	"strings"

	"skyfare/pkg/amadeus"
	"skyfare/pkg/logger"
)

// ProviderClient is the slice of the Amadeus client the gateway needs.
type ProviderClient interface {
	SearchLocations(ctx context.Context, keyword, countryCode string) ([]amadeus.Location, error)
	SearchFlightOffers(ctx context.Context, q amadeus.OffersQuery) ([]amadeus.FlightOffer, error)
}

// Service translates inbound search requests into provider calls and
// normalizes the results.
type Service struct {
	provider ProviderClient
	currency string
	logger   logger.Client
}

func NewService(provider ProviderClient, currency string, logger logger.Client) *Service {
	return &Service{
		provider: provider,
		currency: currency,
		logger:   logger,
	}
}

// SearchByCode runs a flight-offer search for two IATA codes. An empty
// result set is a valid success.
func (s *Service) SearchByCode(ctx context.Context, req CodeSearchRequest) ([]FlightRecord, error) {
	offers, err := s.provider.SearchFlightOffers(ctx, s.buildQuery(req.Origin, req.Destination, req.Date, req.Adults, req.Children))
	if err != nil {
		return nil, err
	}
	return s.mapOffers(offers), nil
}

// SearchByCity resolves both city names to IATA candidates and searches with
// the first candidate of each. Either city resolving to nothing fails with
// CityNotFoundError before any offer search happens.
func (s *Service) SearchByCity(ctx context.Context, req CitySearchRequest) ([]FlightRecord, error) {
	originCodes, err := s.ResolveCityCodes(ctx, req.OriginCityName, req.OriginStateCode, req.OriginCountryCode)
	if err != nil {
		return nil, err
	}
	if len(originCodes) == 0 {
		return nil, &CityNotFoundError{City: req.OriginCityName}
	}

	destCodes, err := s.ResolveCityCodes(ctx, req.DestinationCityName, req.DestinationStateCode, req.DestinationCountryCode)
	if err != nil {
		return nil, err
	}
	if len(destCodes) == 0 {
		return nil, &CityNotFoundError{City: req.DestinationCityName}
	}

	s.logger.Debug("resolved cities",
		logger.Field{Key: "origin", Value: originCodes[0]},
		logger.Field{Key: "destination", Value: destCodes[0]})

	offers, err := s.provider.SearchFlightOffers(ctx, s.buildQuery(originCodes[0], destCodes[0], req.Date, req.Adults, req.Children))
	if err != nil {
		return nil, err
	}
	return s.mapOffers(offers), nil
}

// ResolveCityCodes finds the IATA candidates for a city name. The country
// filter is applied by the provider; the state filter is applied here, since
// the locations endpoint does not accept one. A state code containing a
// separator ("US-CA") is compared by its region suffix. Zero matches is a
// normal outcome, not an error.
func (s *Service) ResolveCityCodes(ctx context.Context, cityName, stateCode, countryCode string) ([]string, error) {
	locations, err := s.provider.SearchLocations(ctx, strings.ToUpper(cityName), countryCode)
	if err != nil {
		return nil, err
	}

	region := stateCode
	if i := strings.LastIndex(stateCode, "-"); i >= 0 {
		region = stateCode[i+1:]
	}

	seen := make(map[string]struct{}, len(locations))
	codes := make([]string, 0, len(locations))
	for _, loc := range locations {
		if loc.IataCode == "" {
			continue
		}
		if region != "" && !strings.EqualFold(loc.Address.StateCode, region) {
			continue
		}
		if _, dup := seen[loc.IataCode]; dup {
			continue
		}
		seen[loc.IataCode] = struct{}{}
		codes = append(codes, loc.IataCode)
	}
	return codes, nil
}

func (s *Service) buildQuery(origin, destination, date string, adults, children int) amadeus.OffersQuery {
	if adults <= 0 {
		adults = 1
	}
	return amadeus.OffersQuery{
		OriginLocationCode:      origin,
		DestinationLocationCode: destination,
		DepartureDate:           date,
		Adults:                  adults,
		Children:                children,
		CurrencyCode:            s.currency,
	}
}

// mapOffers flattens each offer to its first itinerary's first segment.
// Offers the provider returns without itineraries or segments are skipped.
func (s *Service) mapOffers(offers []amadeus.FlightOffer) []FlightRecord {
	records := make([]FlightRecord, 0, len(offers))
	for _, offer := range offers {
		if len(offer.Itineraries) == 0 {
			continue
		}
		itinerary := offer.Itineraries[0]
		if len(itinerary.Segments) == 0 {
			continue
		}
		segment := itinerary.Segments[0]

		records = append(records, FlightRecord{
			ID:            offer.ID,
			Origin:        segment.Departure.IataCode,
			Destination:   segment.Arrival.IataCode,
			Price:         offer.Price.Total,
			DepartureTime: segment.Departure.At,
			ArrivalTime:   segment.Arrival.At,
			Duration:      formatDuration(itinerary.Duration),
			Airline:       segment.CarrierCode,
		})
	}
	return records
}
