package models

// Customer represents an individual associated with exactly one location
type Customer struct {
	CustomerID  string `json:"customerId" bson:"customerId" db:"customer_id"`
	LocationID  string `json:"locationId" bson:"locationId" db:"location_id"`
	FirstName   string `json:"firstName" bson:"firstName" db:"first_name"`
	LastName    string `json:"lastName" bson:"lastName" db:"last_name"`
	Email       string `json:"email" bson:"email" db:"email"`
	Phone       string `json:"phone" bson:"phone" db:"phone"`
	CreatedDate string `json:"createdDate" bson:"createdDate" db:"created_date"`
}
