package models

// DayHours is the opening window for a single weekday.
type DayHours struct {
	Open   string `json:"open"`  // "09:00"
	Close  string `json:"close"` // "21:00"
	Active bool   `json:"active"`
}

// Settings is the singleton store configuration object. Unlike the
// other collections it is persisted as one object, not an array.
type Settings struct {
	StoreName   string              `json:"storeName"`
	Email       string              `json:"email"`
	Phone       string              `json:"phone"`
	Currency    string              `json:"currency"`
	Address     string              `json:"address"`
	DeliveryFee int                 `json:"deliveryFee"`
	Hours       map[string]DayHours `json:"hours"`
}
