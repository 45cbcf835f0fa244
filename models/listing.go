// Package models defines the read-only view of documents owned by the
// external store. Listings are created, mutated, and deleted by the mobile
// app; this site only renders point-in-time snapshots.
package models

import "time"

// Location is the optional pickup point attached to a listing.
type Location struct {
	Address   string  `json:"address,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// Listing is one unit of surplus food offered for pickup. Every attribute
// except the store-assigned identity may be absent; the Display helpers
// below define the rendering defaults in one place.
type Listing struct {
	ID          string    `json:"$id"`
	CreatedAt   time.Time `json:"$createdAt"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Quantity    string    `json:"quantity,omitempty"`
	ExpiryDate  string    `json:"expiryDate,omitempty"`
	Status      string    `json:"status,omitempty"`
	DonorName   string    `json:"donorName,omitempty"`
	ImageURLs   []string  `json:"imageUrls,omitempty"`
	Location    *Location `json:"location,omitempty"`
}

// DisplayTitle falls back to a generic name for untitled documents.
func (l Listing) DisplayTitle() string {
	if l.Title == "" {
		return "Untitled meal"
	}
	return l.Title
}

func (l Listing) DisplayDescription() string {
	if l.Description == "" {
		return "Shared meal listing from MealShare."
	}
	return l.Description
}

func (l Listing) DisplayCategory() string {
	if l.Category == "" {
		return "Listing"
	}
	return l.Category
}

func (l Listing) DisplayStatus() string {
	if l.Status == "" {
		return "AVAILABLE"
	}
	return l.Status
}

// DisplayAddress is the pickup hint shown on dashboard rows.
func (l Listing) DisplayAddress() string {
	if l.Location == nil || l.Location.Address == "" {
		return "Pickup TBD"
	}
	return l.Location.Address
}

func (l Listing) DisplayCreatedAt() string {
	if l.CreatedAt.IsZero() {
		return "Recently added"
	}
	return l.CreatedAt.Format("Jan 2, 2006 3:04 PM")
}
