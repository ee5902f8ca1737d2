package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"skyfare/pkg/logger"
)

const (
	// ProductionBaseURL and TestBaseURL are the two Amadeus hostnames; the
	// test host serves the self-service sandbox.
	ProductionBaseURL = "https://api.amadeus.com"
	TestBaseURL       = "https://test.api.amadeus.com"

	locationsPath = "/v1/reference-data/locations"
	offersPath    = "/v2/shopping/flight-offers"
)

// BaseURLForEnv selects the provider hostname for the given app environment.
func BaseURLForEnv(env string) string {
	if env == "production" {
		return ProductionBaseURL
	}
	return TestBaseURL
}

// TokenSource supplies a valid bearer token for provider calls.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client calls the Amadeus location and flight-offer endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
	logger     logger.Client
}

func NewClient(httpClient *http.Client, baseURL string, tokens TokenSource, logger logger.Client) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		tokens:     tokens,
		logger:     logger,
	}
}

// Location is one reference-data result. The provider omits iataCode and
// address fields for some entries, so both decode to their zero values.
type Location struct {
	IataCode string   `json:"iataCode"`
	SubType  string   `json:"subType"`
	Name     string   `json:"name"`
	Address  Address  `json:"address"`
	GeoCode  *GeoCode `json:"geoCode,omitempty"`
}

type Address struct {
	CityCode    string `json:"cityCode"`
	StateCode   string `json:"stateCode"`
	CountryCode string `json:"countryCode"`
}

type GeoCode struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type locationsResponse struct {
	Data []Location `json:"data"`
}

// FlightOffer is one shopping result, decoded only as deep as the service
// needs: total price plus per-itinerary durations and segments.
type FlightOffer struct {
	ID          string      `json:"id"`
	Price       OfferPrice  `json:"price"`
	Itineraries []Itinerary `json:"itineraries"`
}

type OfferPrice struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Departure   SegmentPoint `json:"departure"`
	Arrival     SegmentPoint `json:"arrival"`
	CarrierCode string       `json:"carrierCode"`
	Number      string       `json:"number"`
}

type SegmentPoint struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal"`
	At       string `json:"at"`
}

type offersResponse struct {
	Data []FlightOffer `json:"data"`
}

// OffersQuery holds the outbound flight-offer search parameters. Children is
// included in the query string only when positive.
type OffersQuery struct {
	OriginLocationCode      string
	DestinationLocationCode string
	DepartureDate           string
	Adults                  int
	Children                int
	CurrencyCode            string
}

// SearchLocations looks up airports and cities matching keyword. countryCode
// narrows the search when non-empty. A response without data is an empty
// slice, not an error.
func (c *Client) SearchLocations(ctx context.Context, keyword, countryCode string) ([]Location, error) {
	params := url.Values{}
	params.Set("keyword", keyword)
	params.Set("subType", "CITY,AIRPORT")
	if countryCode != "" {
		params.Set("countryCode", countryCode)
	}

	var decoded locationsResponse
	if err := c.get(ctx, locationsPath, params, &decoded); err != nil {
		return nil, err
	}
	return decoded.Data, nil
}

// SearchFlightOffers runs a flight-offer search. A response without data is
// an empty slice, not an error.
func (c *Client) SearchFlightOffers(ctx context.Context, q OffersQuery) ([]FlightOffer, error) {
	params := url.Values{}
	params.Set("originLocationCode", q.OriginLocationCode)
	params.Set("destinationLocationCode", q.DestinationLocationCode)
	params.Set("departureDate", q.DepartureDate)
	params.Set("adults", strconv.Itoa(q.Adults))
	params.Set("currencyCode", q.CurrencyCode)
	if q.Children > 0 {
		params.Set("children", strconv.Itoa(q.Children))
	}

	var decoded offersResponse
	if err := c.get(ctx, offersPath, params, &decoded); err != nil {
		return nil, err
	}
	return decoded.Data, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &ProviderSearchError{Endpoint: path, Err: fmt.Errorf("failed to build request: %w", err)}
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ProviderSearchError{Endpoint: path, Err: fmt.Errorf("external api call failed: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ProviderSearchError{Endpoint: path, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("amadeus call returned error status",
			logger.Field{Key: "endpoint", Value: path},
			logger.Field{Key: "status", Value: resp.StatusCode})
		return &ProviderSearchError{Endpoint: path, Status: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &ProviderSearchError{Endpoint: path, Status: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}
