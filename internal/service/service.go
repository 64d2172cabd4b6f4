// Package service describes the five provisions services and their identity.
package service

import "fmt"

// Business is appended to every service title in root messages.
const Business = "Sri Rajeswari Provisions"

// Service identifies one independently deployable HTTP service.
type Service struct {
	Name        string
	Title       string
	DefaultAddr string
}

var (
	Customer     = Service{Name: "customer", Title: "Customer Service", DefaultAddr: ":8001"}
	Inventory    = Service{Name: "inventory", Title: "Inventory Service", DefaultAddr: ":8002"}
	Notification = Service{Name: "notification", Title: "Notification Service", DefaultAddr: ":8003"}
	Payment      = Service{Name: "payment", Title: "Payment Service", DefaultAddr: ":8004"}
	Sales        = Service{Name: "sales", Title: "Sales Service", DefaultAddr: ":8005"}
)

// All returns every known service in a stable order.
func All() []Service {
	return []Service{Customer, Inventory, Notification, Payment, Sales}
}

// Lookup resolves a service by name.
func Lookup(name string) (Service, error) {
	for _, s := range All() {
		if s.Name == name {
			return s, nil
		}
	}
	return Service{}, fmt.Errorf("unknown service %q", name)
}

// Message is the body of the root endpoint.
func (s Service) Message() string {
	return s.Title + " - " + Business
}

// HasCatalog reports whether the service serves the product catalog.
func (s Service) HasCatalog() bool {
	return s.Name == Inventory.Name
}
