package api

// Hotel is a bookable property listed by the service.
type Hotel struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Room belongs to a hotel and carries the nightly rate.
type Room struct {
	ID          int64    `json:"id"`
	HotelID     int64    `json:"hotelId"`
	RoomType    string   `json:"roomType"`
	Price       float64  `json:"price"`
	IsAvailable bool     `json:"isAvailable"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Description string   `json:"description,omitempty"`
	Capacity    int      `json:"capacity,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
}

// BookingStatus enumerates the states the service reports for a booking.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingCompleted BookingStatus = "COMPLETED"
)

// Booking is a reservation of a room for a date range. Dates travel as
// ISO calendar dates (2006-01-02); night counts derive from them with
// Nights.
type Booking struct {
	ID        int64         `json:"id"`
	UserID    int64         `json:"userId"`
	RoomID    int64         `json:"roomId"`
	HotelID   int64         `json:"hotelId,omitempty"`
	HotelName string        `json:"hotelName,omitempty"`
	RoomType  string        `json:"roomType,omitempty"`
	CheckIn   string        `json:"checkIn"`
	CheckOut  string        `json:"checkOut"`
	Status    BookingStatus `json:"status"`
	CreatedAt string        `json:"createdAt,omitempty"`
	Billing   *Bill         `json:"billing,omitempty"`
}

// Bill is the invoice the service generates for a booking.
type Bill struct {
	ID          int64   `json:"id"`
	BookingID   int64   `json:"bookingId"`
	Amount      float64 `json:"amount"`
	GeneratedAt string  `json:"generatedAt"`
}

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalBookings int64 `json:"totalBookings"`
	TotalHotels   int64 `json:"totalHotels"`
	TotalRooms    int64 `json:"totalRooms"`
}
