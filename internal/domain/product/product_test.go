//go:build unit

package product_test

import (
	"testing"

	"pantryshare/internal/domain/product"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercases", input: "Whole Milk", expected: "whole milk"},
		{name: "trims whitespace", input: "  Yogurt  ", expected: "yogurt"},
		{name: "already normalized", input: "eggs", expected: "eggs"},
		{name: "empty", input: "", expected: ""},
		{name: "whitespace only", input: "   ", expected: ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, product.Normalize(c.input))
		})
	}
}

func TestDedupeNormalized(t *testing.T) {
	t.Run("case-insensitive duplicates collapse", func(t *testing.T) {
		actual := product.DedupeNormalized([]string{"Whole Milk", "whole milk", "WHOLE MILK"})

		assert.Equal(t, []string{"whole milk"}, actual)
	})

	t.Run("first-seen order preserved", func(t *testing.T) {
		actual := product.DedupeNormalized([]string{"Yogurt", "Eggs", "yogurt", "Milk"})

		assert.Equal(t, []string{"yogurt", "eggs", "milk"}, actual)
	})

	t.Run("empty names dropped", func(t *testing.T) {
		actual := product.DedupeNormalized([]string{"", "  ", "Eggs"})

		assert.Equal(t, []string{"eggs"}, actual)
	})

	t.Run("nil input", func(t *testing.T) {
		assert.Empty(t, product.DedupeNormalized(nil))
	})
}
