package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
)

const mockToken = "mock-access-token"

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type LocationsResponse struct {
	Data []Location `json:"data"`
}

type Location struct {
	IataCode string   `json:"iataCode,omitempty"`
	SubType  string   `json:"subType"`
	Name     string   `json:"name"`
	Address  Address  `json:"address"`
	GeoCode  *GeoCode `json:"geoCode,omitempty"`
}

type Address struct {
	CityCode    string `json:"cityCode,omitempty"`
	StateCode   string `json:"stateCode,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
}

type GeoCode struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type OffersResponse struct {
	Data []FlightOffer `json:"data"`
}

type FlightOffer struct {
	ID          string      `json:"id"`
	Price       Price       `json:"price"`
	Itineraries []Itinerary `json:"itineraries"`
}

type Price struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Departure   Point  `json:"departure"`
	Arrival     Point  `json:"arrival"`
	CarrierCode string `json:"carrierCode"`
	Number      string `json:"number"`
}

type Point struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

var locationData = map[string][]Location{
	"SAO PAULO": {
		{IataCode: "GRU", SubType: "AIRPORT", Name: "GUARULHOS INTL", Address: Address{CityCode: "SAO", StateCode: "SP", CountryCode: "BR"}, GeoCode: &GeoCode{Latitude: -23.43, Longitude: -46.47}},
		{IataCode: "CGH", SubType: "AIRPORT", Name: "CONGONHAS", Address: Address{CityCode: "SAO", StateCode: "SP", CountryCode: "BR"}},
		{SubType: "CITY", Name: "SAO PAULO", Address: Address{CountryCode: "BR"}},
	},
	"NEW YORK": {
		{IataCode: "JFK", SubType: "AIRPORT", Name: "JOHN F KENNEDY INTL", Address: Address{CityCode: "NYC", StateCode: "NY", CountryCode: "US"}},
		{IataCode: "LGA", SubType: "AIRPORT", Name: "LAGUARDIA", Address: Address{CityCode: "NYC", StateCode: "NY", CountryCode: "US"}},
		{IataCode: "EWR", SubType: "AIRPORT", Name: "NEWARK LIBERTY INTL", Address: Address{CityCode: "NYC", StateCode: "NJ", CountryCode: "US"}},
	},
	"PARIS": {
		{IataCode: "CDG", SubType: "AIRPORT", Name: "CHARLES DE GAULLE", Address: Address{CityCode: "PAR", CountryCode: "FR"}},
		{IataCode: "ORY", SubType: "AIRPORT", Name: "ORLY", Address: Address{CityCode: "PAR", CountryCode: "FR"}},
	},
}

var carriers = []string{"LA", "G3", "AD", "AA", "AF"}

func TokenHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil || r.PostForm.Get("grant_type") != "client_credentials" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unsupported_grant_type"})
		return
	}
	if r.PostForm.Get("client_id") == "" || r.PostForm.Get("client_secret") == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid_client"})
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{
		AccessToken: mockToken,
		TokenType:   "Bearer",
		ExpiresIn:   1799,
	})
}

func LocationsHandler(w http.ResponseWriter, r *http.Request) {
	if !authorized(w, r) {
		return
	}

	keyword := strings.ToUpper(r.URL.Query().Get("keyword"))
	country := r.URL.Query().Get("countryCode")

	matches := make([]Location, 0)
	for _, loc := range locationData[keyword] {
		if country != "" && loc.Address.CountryCode != country {
			continue
		}
		matches = append(matches, loc)
	}

	writeJSON(w, http.StatusOK, LocationsResponse{Data: matches})
}

func FlightOffersHandler(w http.ResponseWriter, r *http.Request) {
	if !authorized(w, r) {
		return
	}

	q := r.URL.Query()
	origin := q.Get("originLocationCode")
	destination := q.Get("destinationLocationCode")
	date := q.Get("departureDate")
	currency := q.Get("currencyCode")
	if origin == "" || destination == "" || date == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"errors": []map[string]any{{"code": 32171, "title": "MANDATORY DATA MISSING"}},
		})
		return
	}

	offers := make([]FlightOffer, 0)
	for i := 0; i < 2+rand.Intn(3); i++ {
		depHour := 6 + rand.Intn(14)
		durH := 2 + rand.Intn(10)
		durM := rand.Intn(60)

		offers = append(offers, FlightOffer{
			ID:    fmt.Sprintf("%d", i+1),
			Price: Price{Total: fmt.Sprintf("%d.%02d", 800+rand.Intn(2500), rand.Intn(100)), Currency: currency},
			Itineraries: []Itinerary{{
				Duration: fmt.Sprintf("PT%dH%dM", durH, durM),
				Segments: []Segment{{
					Departure:   Point{IataCode: origin, At: fmt.Sprintf("%sT%02d:00:00", date, depHour)},
					Arrival:     Point{IataCode: destination, At: fmt.Sprintf("%sT%02d:%02d:00", date, (depHour+durH)%24, durM)},
					CarrierCode: carriers[rand.Intn(len(carriers))],
					Number:      fmt.Sprintf("%d", 1000+rand.Intn(9000)),
				}},
			}},
		})
	}

	writeJSON(w, http.StatusOK, OffersResponse{Data: offers})
}

func authorized(w http.ResponseWriter, r *http.Request) bool {
	if r.Header.Get("Authorization") != "Bearer "+mockToken {
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"errors": []map[string]any{{"code": 38191, "title": "Invalid HTTP header", "detail": "Missing or invalid format for mandatory Authorization header"}},
		})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
