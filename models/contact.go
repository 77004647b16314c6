package models

// Contact is an address-book entry synced up from the device.
type Contact struct {
	ID     string `bson:"id" json:"id"`
	UserID string `bson:"userId" json:"userId"`
	Name   string `bson:"name" json:"name"`
	Phone  string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email  string `bson:"email,omitempty" json:"email,omitempty"`
}

// ContactMatch is the best fuzzy match for a spoken name, at most one per lookup.
type ContactMatch struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}
