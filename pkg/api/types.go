package api

// Request and response shapes for the remote event-booking API.
// JSON field casing follows the server exactly (it is inconsistent on the
// wire: PascalCase account endpoints, camelCase everywhere else).

// LoginRequest is the credentials payload for POST /api/Accounts/login.
type LoginRequest struct {
	Email    string `json:"Email"`
	Password string `json:"Password"`
}

// UserResponse is the login response: the bearer token plus the profile
// fields of the authenticated user, flattened into one object.
type UserResponse struct {
	Token       string `json:"token"`
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// RegisterRequest is the payload for POST /api/Accounts/Register.
type RegisterRequest struct {
	DisplayName string `json:"DisplayName"`
	Email       string `json:"Email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"Password"`
}

// Event is a server-owned listing. The client never mutates it beyond the
// status update and delete pass-through calls.
type Event struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"` // RFC 3339 timestamp, may be empty
	Venue       string `json:"venue"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Status      string `json:"status,omitempty"`
}

// UpdateEventRequest is the payload for PUT /api/Events/{id}.
type UpdateEventRequest struct {
	Status string `json:"status"`
}

// CreateBookingRequest is the payload for POST /api/Bookings/CreateBooking.
type CreateBookingRequest struct {
	EventID       int64  `json:"eventId"`
	UserID        string `json:"userId"`
	NumberOfSeats int    `json:"numberOfSeats"`
}

// Booking is the server's record of a created booking.
type Booking struct {
	ID            int64  `json:"id"`
	EventID       int64  `json:"eventId"`
	UserID        string `json:"userId"`
	NumberOfSeats int    `json:"numberOfSeats"`
	BookingDate   string `json:"bookingDate"`
	BookingStatus string `json:"bookingStatus"`
}
