package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
)

// Local stand-in for the Amadeus API. Point the server at it with
// AMADEUS_BASE_URL=http://localhost:8090 to develop without credentials.
func main() {
	port := "8090"
	if len(os.Args) > 1 {
		port = os.Args[1]
	}

	http.HandleFunc("/v1/security/oauth2/token", TokenHandler)
	http.HandleFunc("/v1/reference-data/locations", LocationsHandler)
	http.HandleFunc("/v2/shopping/flight-offers", FlightOffersHandler)

	addr := fmt.Sprintf(":%s", port)
	fmt.Printf("Amadeus mock server running on port %s...\n", port)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal(err)
	}
}
