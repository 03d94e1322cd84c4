package utils

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type validatedItem struct {
	ID   string `json:"id" validate:"required,uuid"`
	Size int    `json:"size" validate:"gt=0"`
}

type validatedRequest struct {
	Name  string          `json:"name" validate:"required,max=5"`
	Items []validatedItem `json:"items" validate:"dive"`
}

func TestValidateStruct(t *testing.T) {
	assert.Nil(t, ValidateStruct(validatedRequest{Name: "ok"}))

	got := ValidateStruct(validatedRequest{
		Name: "too long",
		Items: []validatedItem{
			{ID: "a7d5cf3e-6bd4-4c57-9d4a-7c8c5d1b2f10", Size: 1},
			{ID: "nope", Size: 0},
		},
	})

	want := map[string]string{
		"name":          "Maximum is 5",
		"items[1].id":   "Must be a valid UUID",
		"items[1].size": "Must be greater than 0",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("validation errors mismatch (-want +got):\n%s", diff)
	}
}
