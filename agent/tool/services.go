package tool

import "fmt"

// ServicesAndPrices renders the full service list in the store's fixed order.
func (s *Set) ServicesAndPrices() ServicesResult {
	services := s.store.Services()
	listings := make([]ServiceListing, 0, len(services))
	for _, svc := range services {
		listings = append(listings, ServiceListing{
			Name:     svc.Name,
			Price:    fmt.Sprintf("$%d", svc.Price),
			Duration: fmt.Sprintf("%d minutes", svc.Duration),
		})
	}
	return ServicesResult{Status: StatusOK, Services: listings}
}
