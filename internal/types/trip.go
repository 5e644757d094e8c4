// README: Shared trip domain types used across modules; JSON tags match the public wire format.
package types

type TripType string

const (
	TripTypeDate    TripType = "date"
	TripTypeHoliday TripType = "holiday"
	TripTypeFriends TripType = "friends"
)

// ValidTripType reports whether v is one of the three planning modes.
func ValidTripType(v string) bool {
	switch TripType(v) {
	case TripTypeDate, TripTypeHoliday, TripTypeFriends:
		return true
	}
	return false
}

type ActivityType string

const (
	ActivityRestaurant ActivityType = "restaurant"
	ActivityMuseum     ActivityType = "museum"
	ActivityActivity   ActivityType = "activity"
	ActivityAttraction ActivityType = "attraction"
	ActivityNightlife  ActivityType = "nightlife"
	ActivityScenic     ActivityType = "scenic"
)

func ValidActivityType(v string) bool {
	switch ActivityType(v) {
	case ActivityRestaurant, ActivityMuseum, ActivityActivity,
		ActivityAttraction, ActivityNightlife, ActivityScenic:
		return true
	}
	return false
}

type PriceRange string

const (
	PriceCheap     PriceRange = "$"
	PriceModerate  PriceRange = "$$"
	PriceExpensive PriceRange = "$$$"
	PriceLuxury    PriceRange = "$$$$"
)

func ValidPriceRange(v string) bool {
	switch PriceRange(v) {
	case PriceCheap, PriceModerate, PriceExpensive, PriceLuxury:
		return true
	}
	return false
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Activity is a single itinerary entry within a day.
type Activity struct {
	ID              string       `json:"id"`
	Time            string       `json:"time"` // HH:MM
	Name            string       `json:"name"`
	Type            ActivityType `json:"type"`
	Description     string       `json:"description"`
	Coordinates     Coordinates  `json:"coordinates"`
	PriceRange      PriceRange   `json:"priceRange"`
	IsHiddenGem     bool         `json:"isHiddenGem"`
	HiddenGemReason string       `json:"hiddenGemReason,omitempty"`
}

type DayPlan struct {
	Date       string     `json:"date"` // YYYY-MM-DD
	Activities []Activity `json:"activities"`
}

type LocationInfo struct {
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coordinates"`
}

type BudgetBreakdown struct {
	Estimated    float64 `json:"estimated"`
	Currency     string  `json:"currency"`
	WithinBudget bool    `json:"withinBudget"`
}

// TripPlan is the structured itinerary produced by the model.
// Immutable once generated.
type TripPlan struct {
	TripName        string          `json:"tripName"`
	Location        LocationInfo    `json:"location"`
	Days            []DayPlan       `json:"days"`
	BudgetBreakdown BudgetBreakdown `json:"budgetBreakdown"`
	Tips            []string        `json:"tips"`
}

// TripRequest is the normalized form submission a plan is generated from.
type TripRequest struct {
	Location    string   `json:"location"`
	TripType    TripType `json:"tripType"`
	StartDate   string   `json:"startDate"` // YYYY-MM-DD
	EndDate     string   `json:"endDate"`   // YYYY-MM-DD
	Budget      float64  `json:"budget"`
	Preferences string   `json:"preferences,omitempty"`
}

// SharedTrip wraps a plan and its originating request under a share id.
// Timestamps are ISO-8601; ExpiresAt is CreatedAt + 30 days.
type SharedTrip struct {
	ID        string      `json:"id"`
	Plan      TripPlan    `json:"plan"`
	FormInput TripRequest `json:"formInput"`
	CreatedAt string      `json:"createdAt"`
	ExpiresAt string      `json:"expiresAt"`
}
