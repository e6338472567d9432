package tool

import (
	"fmt"

	storex "github.com/premierbarber/barber-crew/agent/store"
)

// GetCustomerInfo resolves an identifier against the customer records. The
// normalized-name key is tried first; failing that, customers are scanned for
// an exact match on the raw phone or email value.
func (s *Set) GetCustomerInfo(identifier string) CustomerInfoResult {
	key := storex.NormalizeIdentifier(identifier)
	if c, ok := s.store.Customer(key); ok {
		return CustomerInfoResult{Status: StatusFound, Customer: c}
	}
	if c, ok := s.store.CustomerByContact(identifier); ok {
		return CustomerInfoResult{Status: StatusFound, Customer: c}
	}
	return CustomerInfoResult{
		Status:  StatusNotFound,
		Message: fmt.Sprintf("no customer record found for %q", identifier),
	}
}
