package amadeus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token(ctx context.Context) (string, error) { return string(s), nil }

func TestSearchLocations_QueryAndDecode(t *testing.T) {
	var gotQuery url.Values
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, locationsPath, r.URL.Path)
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data":[
			{"iataCode":"GRU","subType":"AIRPORT","name":"GUARULHOS INTL","address":{"cityCode":"SAO","stateCode":"SP","countryCode":"BR"},"geoCode":{"latitude":-23.43,"longitude":-46.47}},
			{"subType":"CITY","name":"SAO PAULO","address":{"countryCode":"BR"}}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, staticToken("tok"), testLogger())

	locs, err := c.SearchLocations(context.Background(), "SAO PAULO", "BR")
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "SAO PAULO", gotQuery.Get("keyword"))
	assert.Equal(t, "CITY,AIRPORT", gotQuery.Get("subType"))
	assert.Equal(t, "BR", gotQuery.Get("countryCode"))

	require.Len(t, locs, 2)
	assert.Equal(t, "GRU", locs[0].IataCode)
	assert.Equal(t, "SP", locs[0].Address.StateCode)
	require.NotNil(t, locs[0].GeoCode)
	assert.InDelta(t, -23.43, locs[0].GeoCode.Latitude, 0.001)
	// Second entry carries no iataCode; it decodes empty rather than failing.
	assert.Empty(t, locs[1].IataCode)
	assert.Nil(t, locs[1].GeoCode)
}

func TestSearchLocations_CountryFilterOmittedWhenEmpty(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, staticToken("tok"), testLogger())

	_, err := c.SearchLocations(context.Background(), "PARIS", "")
	require.NoError(t, err)
	assert.False(t, gotQuery.Has("countryCode"))
}

func TestSearchLocations_NoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, staticToken("tok"), testLogger())

	locs, err := c.SearchLocations(context.Background(), "NOWHEREVILLE", "")
	require.NoError(t, err)
	assert.Empty(t, locs)
}

func TestSearchFlightOffers_QueryParams(t *testing.T) {
	tests := []struct {
		name         string
		query        OffersQuery
		wantChildren string
		hasChildren  bool
	}{
		{
			name: "children omitted when zero",
			query: OffersQuery{
				OriginLocationCode:      "GRU",
				DestinationLocationCode: "JFK",
				DepartureDate:           "2024-12-01",
				Adults:                  1,
				Children:                0,
				CurrencyCode:            "BRL",
			},
			hasChildren: false,
		},
		{
			name: "children included when positive",
			query: OffersQuery{
				OriginLocationCode:      "GRU",
				DestinationLocationCode: "JFK",
				DepartureDate:           "2024-12-01",
				Adults:                  2,
				Children:                2,
				CurrencyCode:            "BRL",
			},
			wantChildren: "2",
			hasChildren:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery url.Values
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, offersPath, r.URL.Path)
				gotQuery = r.URL.Query()
				w.Write([]byte(`{"data":[]}`))
			}))
			defer srv.Close()

			c := NewClient(srv.Client(), srv.URL, staticToken("tok"), testLogger())

			_, err := c.SearchFlightOffers(context.Background(), tt.query)
			require.NoError(t, err)

			assert.Equal(t, tt.query.OriginLocationCode, gotQuery.Get("originLocationCode"))
			assert.Equal(t, tt.query.DestinationLocationCode, gotQuery.Get("destinationLocationCode"))
			assert.Equal(t, tt.query.DepartureDate, gotQuery.Get("departureDate"))
			assert.Equal(t, "BRL", gotQuery.Get("currencyCode"))
			assert.Equal(t, tt.hasChildren, gotQuery.Has("children"))
			if tt.hasChildren {
				assert.Equal(t, tt.wantChildren, gotQuery.Get("children"))
			}
		})
	}
}

func TestSearchFlightOffers_Decode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{
			"id":"1",
			"price":{"total":"1850.43","currency":"BRL"},
			"itineraries":[{
				"duration":"PT9H45M",
				"segments":[{
					"departure":{"iataCode":"GRU","at":"2024-12-01T22:30:00"},
					"arrival":{"iataCode":"JFK","at":"2024-12-02T07:15:00"},
					"carrierCode":"LA",
					"number":"8180"
				}]
			}]
		}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, staticToken("tok"), testLogger())

	offers, err := c.SearchFlightOffers(context.Background(), OffersQuery{Adults: 1})
	require.NoError(t, err)
	require.Len(t, offers, 1)

	offer := offers[0]
	assert.Equal(t, "1", offer.ID)
	assert.Equal(t, "1850.43", offer.Price.Total)
	require.Len(t, offer.Itineraries, 1)
	assert.Equal(t, "PT9H45M", offer.Itineraries[0].Duration)
	require.Len(t, offer.Itineraries[0].Segments, 1)
	assert.Equal(t, "GRU", offer.Itineraries[0].Segments[0].Departure.IataCode)
	assert.Equal(t, "LA", offer.Itineraries[0].Segments[0].CarrierCode)
}

func TestSearchFlightOffers_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors":[{"code":425,"title":"INVALID DATE"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, staticToken("tok"), testLogger())

	_, err := c.SearchFlightOffers(context.Background(), OffersQuery{Adults: 1})
	require.Error(t, err)

	var provErr *ProviderSearchError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusBadRequest, provErr.Status)
	assert.Contains(t, provErr.Body, "INVALID DATE")
	assert.Equal(t, offersPath, provErr.Endpoint)
}

func TestSearchFlightOffers_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(http.DefaultClient, srv.URL, staticToken("tok"), testLogger())

	_, err := c.SearchFlightOffers(context.Background(), OffersQuery{Adults: 1})
	var provErr *ProviderSearchError
	require.ErrorAs(t, err, &provErr)
	assert.Error(t, provErr.Err)
}

func TestClient_TokenFailurePropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid_client"}`))
	}))
	defer srv.Close()

	tc := NewTokenCache(srv.Client(), srv.URL, "id", "bad", testLogger())
	c := NewClient(srv.Client(), srv.URL, tc, testLogger())

	_, err := c.SearchLocations(context.Background(), "PARIS", "")
	var tokenErr *TokenAcquisitionError
	require.ErrorAs(t, err, &tokenErr)
}
