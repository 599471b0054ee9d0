package domain

import "time"

const (
	DefaultPriority = "Normal"
	DefaultCategory = "Uncategorized"
)

type Product struct {
	ID               ProductID   `bson:"_id,omitempty" json:"_id"`
	Title            string      `bson:"title" json:"title"`
	ShortDescription string      `bson:"shortDescription" json:"shortDescription"`
	Description      string      `bson:"description" json:"description"`
	Price            float64     `bson:"price" json:"price"`
	Date             ProductDate `bson:"date" json:"date"`
	Priority         string      `bson:"priority" json:"priority"`
	Image            string      `bson:"image" json:"image"`
	Category         string      `bson:"category" json:"category"`
	Rating           float64     `bson:"rating" json:"rating"`
	UserEmail        string      `bson:"userEmail" json:"userEmail"`
	CreatedAt        time.Time   `bson:"createdAt" json:"createdAt"`
}
