package domain

import "time"

// Container is a storage location (shelf, box, jar) that holds shelf items
type Container struct {
	ID               string    `json:"id" mapstructure:"id"`
	OwnerID          string    `json:"owner_id" mapstructure:"owner_id"`
	Name             string    `json:"name" mapstructure:"name"`
	EmptyWeightGrams *float64  `json:"empty_weight_grams" mapstructure:"empty_weight_grams"`
	CreatedAt        time.Time `json:"created_at" mapstructure:"created_at"`
	LastUpdatedAt    time.Time `json:"last_updated_at" mapstructure:"last_updated_at"`
}

// UsesScale reports whether the empty weight is read from the scale device
// instead of being stored on the container.
func (c Container) UsesScale() bool {
	return c.EmptyWeightGrams == nil
}
