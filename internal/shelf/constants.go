package shelf

// Field keys used in validation error maps. They match the form fields of
// the shelf dialogs.
const (
	FieldKeyContainer     = "container"
	FieldKeyName          = "name"
	FieldKeyCalories      = "calories"
	FieldKeyCurrentWeight = "currentWeight"
	FieldKeyMaxWeight     = "maxWeight"
	FieldKeyWeight        = "weight"
	FieldKeyEmptyWeight   = "emptyWeight"
	FieldKeyDevice        = "device"
	FieldKeyItem          = "item"

	FieldKeyFeedbackType = "feedbackType"
	FieldKeyTitle        = "title"
	FieldKeyMessage      = "message"
	FieldKeyEmail        = "email"
)

// Validation messages
const (
	ErrMsgSelectContainer     = "Please select a container"
	ErrMsgContainerNameNeeded = "Name is required"
	ErrMsgFoodNameNeeded      = "Food name is required"
	ErrMsgInvalidCalories     = "Please enter valid calories per gram"
	ErrMsgInvalidCurrent      = "Please enter valid current weight"
	ErrMsgInvalidMax          = "Please enter valid max weight (must be greater than 0)"
	ErrMsgCurrentExceedsMax   = "Current weight cannot exceed max weight"
	ErrMsgInvalidEmptyWeight  = "Please enter a valid empty weight"
	ErrMsgWeightOrScale       = "Enter an empty weight or calibrate with the scale, not both"
	ErrMsgInvalidDevice       = "Invalid device id"
	ErrMsgItemNotOnShelf      = "That item is no longer on your shelf"
	ErrMsgTooLongFormat       = "Must be at most %s characters"

	ErrMsgTitleNeeded         = "Title is required"
	ErrMsgMessageNeeded       = "Message is required"
	ErrMsgMessageTooShort     = "Message must be at least 10 characters"
	ErrMsgInvalidEmail        = "Valid email is required"
	ErrMsgInvalidFeedbackType = "Please choose a feedback type"
)

// Feedback messages
const (
	MsgContainerAddedFormat = "%q container added!"
	MsgItemAddedFormat      = "%q added to shelf!"
	MsgItemUpdatedFormat    = "%q updated successfully!"
	MsgItemDeletedFormat    = "%q removed from shelf"
	MsgItemDeleted          = "Item removed from shelf"
	MsgContainerDeleted     = "Container and all its items were removed"
	MsgRefreshFailedSuffix  = ", but your shelf could not be refreshed"

	MsgAddContainerFailed    = "Failed to add container"
	MsgAddItemFailed         = "Failed to add shelf item"
	MsgUpdateItemFailed      = "Failed to update shelf item"
	MsgDeleteItemFailed      = "Failed to delete shelf item"
	MsgDeleteContainerFailed = "Failed to delete container completely"

	MsgFeedbackSent   = "Thank you for your feedback! We appreciate your input."
	MsgFeedbackFailed = "Failed to submit feedback. Please try again."
)

// Operation names for logs and metrics
const (
	OpLoadAll         = "load_all"
	OpAddContainer    = "add_container"
	OpAddShelfItem    = "add_shelf_item"
	OpEditShelfItem   = "edit_shelf_item"
	OpDeleteShelfItem = "delete_shelf_item"
	OpDeleteContainer = "delete_container"
	OpSubmitFeedback  = "submit_feedback"
)

// Operation outcomes for metrics
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
	OutcomePartial = "partial"
	OutcomeStale   = "stale"
)
