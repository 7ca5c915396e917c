package requests

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValidationErrorsAggregates(t *testing.T) {
	// gin binds with the "binding" tag name.
	v := validator.New()
	v.SetTagName("binding")

	req := RegisterRequest{
		Firstname:       "",
		Lastname:        "Doe",
		Email:           "not-an-email",
		Password:        "tiny",
		ConfirmPassword: "different",
	}
	err := v.Struct(req)
	require.Error(t, err)

	fields := FormatValidationErrors(err)

	// One entry per failing field, all in a single pass.
	assert.Equal(t, []string{
		"firstname: is required",
		"email: must be a valid email address",
		"password: must be at least 6",
		"confirm_password: must match password",
	}, fields)
}

func TestFormatValidationErrorsNonValidator(t *testing.T) {
	fields := FormatValidationErrors(errors.New("unexpected EOF"))
	assert.Equal(t, []string{"body: unexpected EOF"}, fields)
}

func TestToSnake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Firstname", "firstname"},
		{"ConfirmPassword", "confirm_password"},
		{"CardNumber", "card_number"},
		{"TransferTo", "transfer_to"},
		{"CVV", "cvv"},
		{"UserID", "user_id"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, toSnake(tt.in))
		})
	}
}

func TestListQueryNormalize(t *testing.T) {
	tests := []struct {
		name         string
		q            ListQuery
		wantPage     int
		wantPageSize int
	}{
		{"defaults", ListQuery{}, 1, 10},
		{"negative page", ListQuery{Page: -3, PageSize: 20}, 1, 20},
		{"oversized page size capped", ListQuery{Page: 2, PageSize: 500}, 2, 100},
		{"kept as-is", ListQuery{Page: 4, PageSize: 25}, 4, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.q.Normalize(10, 100)
			assert.Equal(t, tt.wantPage, tt.q.Page)
			assert.Equal(t, tt.wantPageSize, tt.q.PageSize)
		})
	}
}

func TestListQueryOffset(t *testing.T) {
	q := ListQuery{Page: 3, PageSize: 25}
	assert.Equal(t, 50, q.Offset())
}
