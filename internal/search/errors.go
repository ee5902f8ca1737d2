package search

import "fmt"

// CityNotFoundError marks a city name that resolved to zero IATA candidates.
// It is distinct from provider failures: the lookup itself succeeded.
type CityNotFoundError struct {
	City string
}

func (e *CityNotFoundError) Error() string {
	return fmt.Sprintf("no airports found for city %q", e.City)
}
