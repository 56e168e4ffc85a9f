package domain

// Collection names shared by every query backend
const (
	CollectionContainers = "containers"
	CollectionShelfItems = "shelf_items"

	// CollectionFeedbackComments holds feedback users send about the app
	CollectionFeedbackComments = "feedback_comments"
)

// Record field names
const (
	FieldID                 = "id"
	FieldOwnerID            = "owner_id"
	FieldName               = "name"
	FieldEmptyWeightGrams   = "empty_weight_grams"
	FieldContainerID        = "container_id"
	FieldFoodName           = "food_name"
	FieldCaloriesPerGram    = "calories_per_gram"
	FieldCurrentWeightGrams = "current_weight_grams"
	FieldMaxWeightGrams     = "max_weight_grams"
	FieldDeviceID           = "device_id"
	FieldCreatedAt          = "created_at"
	FieldLastUpdatedAt      = "last_updated_at"

	FieldUserID       = "user_id"
	FieldFeedbackType = "feedback_type"
	FieldTitle        = "title"
	FieldMessage      = "message"
	FieldEmail        = "email"
)

// Shelf limits and defaults
const (
	// DefaultDeviceID is the shelf scale used when an item names no device
	DefaultDeviceID = "ShelfESP32_1"

	// UnknownContainerName labels items whose container join came back empty
	UnknownContainerName = "Container"
)

// Feedback comment types
const (
	FeedbackTypeGeneral     = "general"
	FeedbackTypeBug         = "bug"
	FeedbackTypeFeature     = "feature"
	FeedbackTypeImprovement = "improvement"
)
