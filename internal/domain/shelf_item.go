package domain

import "time"

// ContainerRef is the joined view of a shelf item's container
type ContainerRef struct {
	Name string `json:"name" mapstructure:"name"`
}

// ShelfItem is a food tracked by weight inside a container
type ShelfItem struct {
	ID                 string        `json:"id" mapstructure:"id"`
	OwnerID            string        `json:"owner_id" mapstructure:"owner_id"`
	ContainerID        string        `json:"container_id" mapstructure:"container_id"`
	FoodName           string        `json:"food_name" mapstructure:"food_name"`
	CaloriesPerGram    float64       `json:"calories_per_gram" mapstructure:"calories_per_gram"`
	CurrentWeightGrams float64       `json:"current_weight_grams" mapstructure:"current_weight_grams"`
	MaxWeightGrams     float64       `json:"max_weight_grams" mapstructure:"max_weight_grams"`
	DeviceID           string        `json:"device_id" mapstructure:"device_id"`
	CreatedAt          time.Time     `json:"created_at" mapstructure:"created_at"`
	LastUpdatedAt      time.Time     `json:"last_updated_at" mapstructure:"last_updated_at"`
	Container          *ContainerRef `json:"container,omitempty" mapstructure:"containers"`
}

// CaloriesRemaining is the calorie content of what is left on the shelf
func (s ShelfItem) CaloriesRemaining() float64 {
	return s.CurrentWeightGrams * s.CaloriesPerGram
}

// FillRatio returns current/max weight in [0, 1]
func (s ShelfItem) FillRatio() float64 {
	if s.MaxWeightGrams <= 0 {
		return 0
	}
	return s.CurrentWeightGrams / s.MaxWeightGrams
}

// ContainerName returns the joined container display name, or the fallback
// label when the join found no container.
func (s ShelfItem) ContainerName() string {
	if s.Container == nil || s.Container.Name == "" {
		return UnknownContainerName
	}
	return s.Container.Name
}
