// Package reservation models hotels, customers and the reservations linking them.
package reservation

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned for unknown hotel, customer or reservation IDs.
	ErrNotFound = errors.New("not found")
	// ErrNoRooms is returned when a hotel has no free rooms left.
	ErrNoRooms = errors.New("no rooms available")
	// ErrDuplicate is returned when registering an ID twice.
	ErrDuplicate = errors.New("already registered")
)

// Hotel is a bookable property.
type Hotel struct {
	ID    int
	Name  string
	City  string
	Rooms int
}

// DisplayInfo returns a one-line description of the hotel.
func (h *Hotel) DisplayInfo() string {
	return fmt.Sprintf("Hotel: %s (ID: %d) in %s", h.Name, h.ID, h.City)
}

// Modify updates the attributes given as non-zero values.
func (h *Hotel) Modify(name, city string, rooms int) {
	if name != "" {
		h.Name = name
	}
	if city != "" {
		h.City = city
	}
	if rooms != 0 {
		h.Rooms = rooms
	}
}

// Customer is a person holding reservations.
type Customer struct {
	ID    int
	Name  string
	Email string
}

// DisplayInfo returns a one-line description of the customer.
func (c *Customer) DisplayInfo() string {
	return fmt.Sprintf("Customer: %s (ID: %d), Email: %s", c.Name, c.ID, c.Email)
}

// Modify updates the attributes given as non-empty values.
func (c *Customer) Modify(name, email string) {
	if name != "" {
		c.Name = name
	}
	if email != "" {
		c.Email = email
	}
}

// Reservation links a customer to a hotel room.
type Reservation struct {
	ID         string
	CustomerID int
	HotelID    int
}

// Cancel returns the cancellation notice for the reservation.
func (r *Reservation) Cancel() string {
	return fmt.Sprintf("Reservation %s cancelled.", r.ID)
}

// Registry keeps hotels, customers and reservations in memory and tracks free rooms.
type Registry struct {
	mu           sync.Mutex
	hotels       map[int]*Hotel
	customers    map[int]*Customer
	reservations map[string]*Reservation
	booked       map[int]int // hotel ID -> rooms taken
	newID        func() string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		hotels:       make(map[int]*Hotel),
		customers:    make(map[int]*Customer),
		reservations: make(map[string]*Reservation),
		booked:       make(map[int]int),
		newID:        func() string { return uuid.New().String() },
	}
}

// AddHotel registers h.
func (r *Registry) AddHotel(h *Hotel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.hotels[h.ID]; ok {
		return fmt.Errorf("hotel %d: %w", h.ID, ErrDuplicate)
	}
	r.hotels[h.ID] = h
	return nil
}

// AddCustomer registers c.
func (r *Registry) AddCustomer(c *Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[c.ID]; ok {
		return fmt.Errorf("customer %d: %w", c.ID, ErrDuplicate)
	}
	r.customers[c.ID] = c
	return nil
}

// Hotel looks up a hotel by ID.
func (r *Registry) Hotel(id int) (*Hotel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.hotels[id]
	if !ok {
		return nil, fmt.Errorf("hotel %d: %w", id, ErrNotFound)
	}
	return h, nil
}

// Customer looks up a customer by ID.
func (r *Registry) Customer(id int) (*Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok {
		return nil, fmt.Errorf("customer %d: %w", id, ErrNotFound)
	}
	return c, nil
}

// Available is the number of free rooms in a hotel.
func (r *Registry) Available(hotelID int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.hotels[hotelID]
	if !ok {
		return 0, fmt.Errorf("hotel %d: %w", hotelID, ErrNotFound)
	}
	return h.Rooms - r.booked[hotelID], nil
}

// Reserve books one room of a hotel for a customer.
func (r *Registry) Reserve(customerID, hotelID int) (*Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[customerID]; !ok {
		return nil, fmt.Errorf("customer %d: %w", customerID, ErrNotFound)
	}
	h, ok := r.hotels[hotelID]
	if !ok {
		return nil, fmt.Errorf("hotel %d: %w", hotelID, ErrNotFound)
	}
	if r.booked[hotelID] >= h.Rooms {
		return nil, fmt.Errorf("hotel %d: %w", hotelID, ErrNoRooms)
	}

	res := &Reservation{ID: r.newID(), CustomerID: customerID, HotelID: hotelID}
	r.reservations[res.ID] = res
	r.booked[hotelID]++
	return res, nil
}

// Cancel removes a reservation and frees its room.
func (r *Registry) Cancel(id string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.reservations[id]
	if !ok {
		return "", fmt.Errorf("reservation %s: %w", id, ErrNotFound)
	}
	delete(r.reservations, id)
	r.booked[res.HotelID]--
	return res.Cancel(), nil
}

// Reservations lists reservations of a customer ordered by ID.
func (r *Registry) Reservations(customerID int) []*Reservation {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Reservation
	for _, res := range r.reservations {
		if res.CustomerID == customerID {
			out = append(out, res)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
