package shelf

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"

	"github.com/osse101/SmartShelf_Go/internal/domain"
)

// ContainerInput is the add-container form
type ContainerInput struct {
	Name string `json:"name"`
	// EmptyWeightGrams is nil when the scale device supplies the weight
	EmptyWeightGrams *float64 `json:"empty_weight_grams"`
	UseScale         bool     `json:"use_scale"`
}

// ShelfItemInput is the add-item form
type ShelfItemInput struct {
	ContainerID        string  `json:"container_id"`
	FoodName           string  `json:"food_name"`
	CaloriesPerGram    float64 `json:"calories_per_gram"`
	CurrentWeightGrams float64 `json:"current_weight_grams"`
	MaxWeightGrams     float64 `json:"max_weight_grams"`
	DeviceID           string  `json:"device_id"`
}

// ShelfItemEdit is the edit-item form. The container cannot be changed.
type ShelfItemEdit struct {
	FoodName           string  `json:"food_name"`
	CaloriesPerGram    float64 `json:"calories_per_gram"`
	CurrentWeightGrams float64 `json:"current_weight_grams"`
	MaxWeightGrams     float64 `json:"max_weight_grams"`
}

// FeedbackInput is the send-feedback form. A blank type means general.
type FeedbackInput struct {
	FeedbackType string `json:"feedback_type"`
	Title        string `json:"title"`
	Message      string `json:"message"`
	Email        string `json:"email"`
}

// containerRules and itemRules carry the validation tags. The field tag
// names the form key each error is reported under.
type containerRules struct {
	Name             string   `field:"name" validate:"required,max=50"`
	EmptyWeightGrams *float64 `field:"emptyWeight" validate:"omitempty,finite,gte=0"`
}

type itemRules struct {
	FoodName           string  `field:"name" validate:"required,max=100"`
	CaloriesPerGram    float64 `field:"calories" validate:"finite,gte=0"`
	CurrentWeightGrams float64 `field:"currentWeight" validate:"finite,gte=0,ltefield=MaxWeightGrams"`
	MaxWeightGrams     float64 `field:"maxWeight" validate:"finite,gt=0"`
}

type deviceRules struct {
	DeviceID string `field:"device" validate:"max=64,printascii"`
}

type feedbackRules struct {
	FeedbackType string `field:"feedbackType" validate:"oneof=general bug feature improvement"`
	Title        string `field:"title" validate:"required,max=200"`
	Message      string `field:"message" validate:"required,min=10,max=5000"`
	Email        string `field:"email" validate:"required,contains=@,max=254"`
}

var containerMessages = map[string]string{
	FieldKeyName:        ErrMsgContainerNameNeeded,
	FieldKeyEmptyWeight: ErrMsgInvalidEmptyWeight,
}

// Keys of the form "field.tag" override the field's message for that tag
var feedbackMessages = map[string]string{
	FieldKeyFeedbackType:     ErrMsgInvalidFeedbackType,
	FieldKeyTitle:            ErrMsgTitleNeeded,
	FieldKeyMessage:          ErrMsgMessageNeeded,
	FieldKeyMessage + ".min": ErrMsgMessageTooShort,
	FieldKeyEmail:            ErrMsgInvalidEmail,
}

var itemMessages = map[string]string{
	FieldKeyName:          ErrMsgFoodNameNeeded,
	FieldKeyCalories:      ErrMsgInvalidCalories,
	FieldKeyCurrentWeight: ErrMsgInvalidCurrent,
	FieldKeyMaxWeight:     ErrMsgInvalidMax,
	FieldKeyWeight:        ErrMsgCurrentExceedsMax,
	FieldKeyDevice:        ErrMsgInvalidDevice,
}

// Validator checks shelf inputs. Add and edit share one routine so the two
// forms cannot drift apart.
type Validator struct {
	validate        *validator.Validate
	defaultDeviceID string
}

// NewValidator creates a Validator. Blank device ids become defaultDeviceID.
func NewValidator(defaultDeviceID string) *Validator {
	v := validator.New()
	_ = v.RegisterValidation("finite", validateFinite)
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("field"); name != "" {
			return name
		}
		return f.Name
	})

	if strings.TrimSpace(defaultDeviceID) == "" {
		defaultDeviceID = domain.DefaultDeviceID
	}
	return &Validator{validate: v, defaultDeviceID: defaultDeviceID}
}

func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// normalizeName applies NFC so composed and decomposed spellings have the
// same length, then trims surrounding space.
func normalizeName(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// Container validates and normalizes an add-container input
func (v *Validator) Container(in ContainerInput) (ContainerInput, error) {
	in.Name = normalizeName(in.Name)

	fields := v.fieldErrors(containerRules{
		Name:             in.Name,
		EmptyWeightGrams: in.EmptyWeightGrams,
	}, containerMessages)

	if (in.EmptyWeightGrams == nil) == !in.UseScale {
		if _, taken := fields[FieldKeyEmptyWeight]; !taken {
			fields[FieldKeyEmptyWeight] = ErrMsgWeightOrScale
		}
	}
	return in, newValidationError(fields)
}

// ShelfItem validates and normalizes an add-item input. It does not check
// that the container exists; the controller does that against its
// projection.
func (v *Validator) ShelfItem(in ShelfItemInput) (ShelfItemInput, error) {
	in.ContainerID = strings.TrimSpace(in.ContainerID)
	in.FoodName = normalizeName(in.FoodName)
	in.DeviceID = strings.TrimSpace(in.DeviceID)
	if in.DeviceID == "" {
		in.DeviceID = v.defaultDeviceID
	}

	fields := v.itemFields(in.FoodName, in.CaloriesPerGram, in.CurrentWeightGrams, in.MaxWeightGrams)
	for k, msg := range v.fieldErrors(deviceRules{DeviceID: in.DeviceID}, itemMessages) {
		fields[k] = msg
	}
	if in.ContainerID == "" {
		fields[FieldKeyContainer] = ErrMsgSelectContainer
	}
	return in, newValidationError(fields)
}

// ShelfItemEdit validates and normalizes an edit-item input
func (v *Validator) ShelfItemEdit(in ShelfItemEdit) (ShelfItemEdit, error) {
	in.FoodName = normalizeName(in.FoodName)
	fields := v.itemFields(in.FoodName, in.CaloriesPerGram, in.CurrentWeightGrams, in.MaxWeightGrams)
	return in, newValidationError(fields)
}

// Feedback validates and normalizes a send-feedback input. Text fields are
// trimmed before their lengths are checked.
func (v *Validator) Feedback(in FeedbackInput) (FeedbackInput, error) {
	in.FeedbackType = strings.ToLower(strings.TrimSpace(in.FeedbackType))
	if in.FeedbackType == "" {
		in.FeedbackType = domain.FeedbackTypeGeneral
	}
	in.Title = strings.TrimSpace(in.Title)
	in.Message = strings.TrimSpace(in.Message)
	in.Email = strings.TrimSpace(in.Email)

	fields := v.fieldErrors(feedbackRules{
		FeedbackType: in.FeedbackType,
		Title:        in.Title,
		Message:      in.Message,
		Email:        in.Email,
	}, feedbackMessages)
	return in, newValidationError(fields)
}

func (v *Validator) itemFields(name string, calories, current, maxWeight float64) map[string]string {
	return v.fieldErrors(itemRules{
		FoodName:           name,
		CaloriesPerGram:    calories,
		CurrentWeightGrams: current,
		MaxWeightGrams:     maxWeight,
	}, itemMessages)
}

// fieldErrors runs struct validation and maps failures to form keys. The
// cross-field weight check is reported under its own key.
func (v *Validator) fieldErrors(rules any, messages map[string]string) map[string]string {
	fields := make(map[string]string)

	err := v.validate.Struct(rules)
	if err == nil {
		return fields
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields[FieldKeyName] = err.Error()
		return fields
	}

	for _, fe := range verrs {
		key := fe.Field()
		if fe.Tag() == "ltefield" {
			key = FieldKeyWeight
		}
		if _, seen := fields[key]; seen {
			continue
		}
		if msg, ok := messages[key+"."+fe.Tag()]; ok {
			fields[key] = msg
			continue
		}
		switch fe.Tag() {
		case "max":
			if fe.Kind() == reflect.String {
				fields[key] = fmt.Sprintf(ErrMsgTooLongFormat, fe.Param())
				continue
			}
		}
		fields[key] = messages[key]
	}
	return fields
}
