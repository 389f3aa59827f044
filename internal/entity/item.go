package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
)

type ItemStatus string

const (
	StatusOnHand    ItemStatus = "onHand"
	StatusInProcess ItemStatus = "inProcess"
	StatusDelivered ItemStatus = "delivered"
	StatusArchived  ItemStatus = "archived"
)

func (s ItemStatus) String() string {
	return string(s)
}

func (s ItemStatus) IsValid() bool {
	switch s {
	case StatusOnHand, StatusInProcess, StatusDelivered, StatusArchived:
		return true
	default:
		return false
	}
}

// ParseItemStatus normalizes the client-facing hyphenated vocabulary into
// the internal status tokens. The internal tokens themselves are accepted
// as-is, so both spellings of the same state are interchangeable on input.
func ParseItemStatus(raw string) (ItemStatus, error) {
	switch raw {
	case "on-hand":
		return StatusOnHand, nil
	case "in-process":
		return StatusInProcess, nil
	case "delivered":
		return StatusDelivered, nil
	case "archived":
		return StatusArchived, nil
	}

	if s := ItemStatus(raw); s.IsValid() {
		return s, nil
	}

	return "", fmt.Errorf("%w: unknown item status %q", ErrIncorrectRequestBody, raw)
}

// Image is a reference to a picture kept on the external image host.
type Image struct {
	PublicID     string `json:"publicId"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

type LostItem struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Location     string     `json:"location"`
	Category     string     `json:"category"`
	FlightNumber string     `json:"flightNumber"`
	DateFound    time.Time  `json:"dateFound"`
	Images       []Image    `json:"images"`
	Status       ItemStatus `json:"status"`
	FoundBy      UserRef    `json:"foundBy"`
	Supervisor   UserRef    `json:"supervisor"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type Customer struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Identification string `json:"identification"`
}

type DeliveredItem struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	Category       string    `json:"category"`
	FlightNumber   string    `json:"flightNumber"`
	DateFound      time.Time `json:"dateFound"`
	Images         []Image   `json:"images"`
	Customer       Customer  `json:"customer"`
	Signature      string    `json:"signature"`
	Notes          string    `json:"notes"`
	DeliveryImages []Image   `json:"deliveryImages"`
	FoundBy        UserRef   `json:"foundBy"`
	DeliveredBy    UserRef   `json:"deliveredBy"`
	DeliveredAt    time.Time `json:"deliveredAt"`
	Archived       bool      `json:"archived"`
}

type ItemsSortBy string

const (
	SortByDateFound  ItemsSortBy = "date_found"
	SortByName       ItemsSortBy = "name"
	SortByCategory   ItemsSortBy = "category"
	SortByStatus     ItemsSortBy = "status"
	SortByFlight     ItemsSortBy = "flight_number"
	SortByDeliveredA ItemsSortBy = "delivered_at"
)

func (s ItemsSortBy) String() string {
	return string(s)
}

type OrderBy string

const (
	ASC  OrderBy = "asc"
	DESC OrderBy = "desc"
)

func (o OrderBy) String() string {
	return string(o)
}

func (o OrderBy) IsValid() bool {
	switch o {
	case ASC, DESC:
		return true
	default:
		return false
	}
}

// Expand names the reference fields a listing should resolve into
// embedded records. Expansion is strictly opt-in.
type Expand []string

func (e Expand) Has(relation string) bool {
	for _, r := range e {
		if r == relation {
			return true
		}
	}

	return false
}

const (
	ExpandFoundBy     = "foundBy"
	ExpandSupervisor  = "supervisor"
	ExpandDeliveredBy = "deliveredBy"
)

type ItemsFilter struct {
	Status          ItemStatus
	FlightNumber    string
	Category        string
	FoundBy         uuid.UUID
	IncludeArchived bool
	Page            uint64
	Limit           uint64
	SortBy          ItemsSortBy
	OrderBy         OrderBy
	Expand          Expand
}
