package shelf_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SmartShelf_Go/internal/shelf"
)

func validItem() shelf.ShelfItemInput {
	return shelf.ShelfItemInput{
		ContainerID:        "c1",
		FoodName:           "Rice",
		CaloriesPerGram:    3.6,
		CurrentWeightGrams: 400,
		MaxWeightGrams:     1000,
	}
}

func TestValidator_ShelfItem(t *testing.T) {
	v := shelf.NewValidator("")

	tests := []struct {
		name   string
		mutate func(*shelf.ShelfItemInput)
		want   map[string]string
	}{
		{"valid", func(*shelf.ShelfItemInput) {}, nil},
		{"current equals max", func(in *shelf.ShelfItemInput) { in.CurrentWeightGrams = 1000 }, nil},
		{"zero calories", func(in *shelf.ShelfItemInput) { in.CaloriesPerGram = 0 }, nil},
		{"missing container", func(in *shelf.ShelfItemInput) { in.ContainerID = " " },
			map[string]string{shelf.FieldKeyContainer: shelf.ErrMsgSelectContainer}},
		{"blank food name", func(in *shelf.ShelfItemInput) { in.FoodName = "\t" },
			map[string]string{shelf.FieldKeyName: shelf.ErrMsgFoodNameNeeded}},
		{"food name too long", func(in *shelf.ShelfItemInput) { in.FoodName = strings.Repeat("x", 101) },
			map[string]string{shelf.FieldKeyName: "Must be at most 100 characters"}},
		{"negative calories", func(in *shelf.ShelfItemInput) { in.CaloriesPerGram = -0.1 },
			map[string]string{shelf.FieldKeyCalories: shelf.ErrMsgInvalidCalories}},
		{"NaN calories", func(in *shelf.ShelfItemInput) { in.CaloriesPerGram = math.NaN() },
			map[string]string{shelf.FieldKeyCalories: shelf.ErrMsgInvalidCalories}},
		{"negative current", func(in *shelf.ShelfItemInput) { in.CurrentWeightGrams = -1 },
			map[string]string{shelf.FieldKeyCurrentWeight: shelf.ErrMsgInvalidCurrent}},
		{"zero max", func(in *shelf.ShelfItemInput) { in.MaxWeightGrams = 0; in.CurrentWeightGrams = 0 },
			map[string]string{shelf.FieldKeyMaxWeight: shelf.ErrMsgInvalidMax}},
		{"infinite max", func(in *shelf.ShelfItemInput) { in.MaxWeightGrams = math.Inf(1) },
			map[string]string{shelf.FieldKeyMaxWeight: shelf.ErrMsgInvalidMax}},
		{"current above max", func(in *shelf.ShelfItemInput) { in.CurrentWeightGrams = 900; in.MaxWeightGrams = 500 },
			map[string]string{shelf.FieldKeyWeight: shelf.ErrMsgCurrentExceedsMax}},
		{"device id with newline", func(in *shelf.ShelfItemInput) { in.DeviceID = "shelf\n1" },
			map[string]string{shelf.FieldKeyDevice: shelf.ErrMsgInvalidDevice}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validItem()
			tt.mutate(&in)

			_, err := v.ShelfItem(in)

			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			var verr *shelf.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.want, verr.Fields)
		})
	}
}

func TestValidator_ShelfItemNormalizes(t *testing.T) {
	v := shelf.NewValidator("Kitchen_1")

	in := validItem()
	in.FoodName = "  Rice  "
	in.ContainerID = " c1 "

	out, err := v.ShelfItem(in)
	require.NoError(t, err)
	assert.Equal(t, "Rice", out.FoodName)
	assert.Equal(t, "c1", out.ContainerID)
	assert.Equal(t, "Kitchen_1", out.DeviceID)
}

func TestValidator_EditSharesItemRules(t *testing.T) {
	v := shelf.NewValidator("")

	_, err := v.ShelfItemEdit(shelf.ShelfItemEdit{
		FoodName:           "",
		CaloriesPerGram:    -1,
		CurrentWeightGrams: 900,
		MaxWeightGrams:     500,
	})

	var verr *shelf.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{
		shelf.FieldKeyName:     shelf.ErrMsgFoodNameNeeded,
		shelf.FieldKeyCalories: shelf.ErrMsgInvalidCalories,
		shelf.FieldKeyWeight:   shelf.ErrMsgCurrentExceedsMax,
	}, verr.Fields)
	assert.Equal(t, "invalid input: calories: Please enter valid calories per gram; name: Food name is required; weight: Current weight cannot exceed max weight", verr.Error())
}

func TestValidator_ContainerNameBoundary(t *testing.T) {
	v := shelf.NewValidator("")

	out, err := v.Container(shelf.ContainerInput{Name: strings.Repeat("a", 50), UseScale: true})
	require.NoError(t, err)
	assert.Len(t, out.Name, 50)

	_, err = v.Container(shelf.ContainerInput{Name: strings.Repeat("a", 51), UseScale: true})
	var verr *shelf.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Must be at most 50 characters", verr.Fields[shelf.FieldKeyName])
}

func validFeedback() shelf.FeedbackInput {
	return shelf.FeedbackInput{
		FeedbackType: "bug",
		Title:        "Scale stuck",
		Message:      "The jar weight stopped updating",
		Email:        "sam@example.com",
	}
}

func TestValidator_Feedback(t *testing.T) {
	v := shelf.NewValidator("")

	tests := []struct {
		name   string
		mutate func(*shelf.FeedbackInput)
		want   map[string]string
	}{
		{"valid", func(*shelf.FeedbackInput) {}, nil},
		{"message of exactly ten characters", func(in *shelf.FeedbackInput) { in.Message = "  0123456789  " }, nil},
		{"blank title", func(in *shelf.FeedbackInput) { in.Title = "   " },
			map[string]string{shelf.FieldKeyTitle: shelf.ErrMsgTitleNeeded}},
		{"blank message", func(in *shelf.FeedbackInput) { in.Message = "\n" },
			map[string]string{shelf.FieldKeyMessage: shelf.ErrMsgMessageNeeded}},
		{"short message after trim", func(in *shelf.FeedbackInput) { in.Message = "  too short " },
			map[string]string{shelf.FieldKeyMessage: shelf.ErrMsgMessageTooShort}},
		{"email without at sign", func(in *shelf.FeedbackInput) { in.Email = "sam.example.com" },
			map[string]string{shelf.FieldKeyEmail: shelf.ErrMsgInvalidEmail}},
		{"blank email", func(in *shelf.FeedbackInput) { in.Email = "" },
			map[string]string{shelf.FieldKeyEmail: shelf.ErrMsgInvalidEmail}},
		{"unknown type", func(in *shelf.FeedbackInput) { in.FeedbackType = "praise" },
			map[string]string{shelf.FieldKeyFeedbackType: shelf.ErrMsgInvalidFeedbackType}},
		{"everything missing", func(in *shelf.FeedbackInput) { *in = shelf.FeedbackInput{} },
			map[string]string{
				shelf.FieldKeyTitle:   shelf.ErrMsgTitleNeeded,
				shelf.FieldKeyMessage: shelf.ErrMsgMessageNeeded,
				shelf.FieldKeyEmail:   shelf.ErrMsgInvalidEmail,
			}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validFeedback()
			tt.mutate(&in)

			_, err := v.Feedback(in)

			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			var verr *shelf.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.want, verr.Fields)
		})
	}
}

func TestValidator_FeedbackNormalizes(t *testing.T) {
	v := shelf.NewValidator("")

	got, err := v.Feedback(shelf.FeedbackInput{
		Title:   "  Idea ",
		Message: "\tGroup items by shelf row\n",
		Email:   " sam@example.com ",
	})
	require.NoError(t, err)
	assert.Equal(t, shelf.FeedbackInput{
		FeedbackType: "general",
		Title:        "Idea",
		Message:      "Group items by shelf row",
		Email:        "sam@example.com",
	}, got)
}
