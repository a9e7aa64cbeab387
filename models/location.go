package models

// Location represents a place customers are scoped to
type Location struct {
	LocationID  string `json:"locationId" bson:"locationId" db:"location_id"`
	Name        string `json:"name" bson:"name" db:"name"`
	CreatedDate string `json:"createdDate" bson:"createdDate" db:"created_date"`
}
