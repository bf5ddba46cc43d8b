package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumMembership(t *testing.T) {
	assert.True(t, DifficultyEasy.Valid())
	assert.False(t, Difficulty("impossible").Valid())

	assert.True(t, CuisineItalian.Valid())
	assert.False(t, CuisineType("klingon").Valid())

	assert.True(t, DietVegan.Valid())
	assert.False(t, DietaryRestriction("carnivore").Valid())

	assert.True(t, MealDinner.Valid())
	assert.False(t, MealType("second-breakfast").Valid())

	assert.True(t, SortByRating.Valid())
	assert.False(t, SortKey("price").Valid())

	assert.True(t, SortAsc.Valid())
	assert.False(t, SortDirection("sideways").Valid())
}

func TestEnumDomainsAreClosed(t *testing.T) {
	for _, d := range Difficulties() {
		assert.True(t, d.Valid())
	}
	for _, c := range CuisineTypes() {
		assert.True(t, c.Valid())
	}
	for _, d := range DietaryRestrictions() {
		assert.True(t, d.Valid())
	}
	for _, m := range MealTypes() {
		assert.True(t, m.Valid())
	}
}
