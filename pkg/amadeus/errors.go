package amadeus

import "fmt"

// TokenAcquisitionError reports a failed client_credentials exchange. Status
// is zero and Err non-nil when the request never produced a response.
type TokenAcquisitionError struct {
	Status int
	Body   string
	Err    error
}

func (e *TokenAcquisitionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("amadeus token request failed: %v", e.Err)
	}
	return fmt.Sprintf("amadeus token request failed: status %d: %s", e.Status, e.Body)
}

func (e *TokenAcquisitionError) Unwrap() error { return e.Err }

// ProviderSearchError reports a failed location or flight-offer lookup,
// carrying the provider's status and error payload for the boundary to relay.
type ProviderSearchError struct {
	Endpoint string
	Status   int
	Body     string
	Err      error
}

func (e *ProviderSearchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("amadeus %s call failed: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("amadeus %s call failed: status %d: %s", e.Endpoint, e.Status, e.Body)
}

func (e *ProviderSearchError) Unwrap() error { return e.Err }
