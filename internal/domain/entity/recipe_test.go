package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecalculateRating_TruncatedMean(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    int
	}{
		{name: "mean of 2 and 10 truncates to 6", ratings: []int{2, 10}, want: 6},
		{name: "mean of 1 and 2 truncates to 1", ratings: []int{1, 2}, want: 1},
		{name: "single review", ratings: []int{7}, want: 7},
		{name: "mean of 3, 4 and 5", ratings: []int{3, 4, 5}, want: 4},
		{name: "truncation rounds toward zero", ratings: []int{9, 10}, want: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipe := &Recipe{}
			for _, rating := range tt.ratings {
				recipe.Reviews = append(recipe.Reviews, &Review{Rating: rating})
			}

			recipe.RecalculateRating()

			require.NotNil(t, recipe.ReviewRating)
			assert.Equal(t, tt.want, *recipe.ReviewRating)
		})
	}
}

func TestRecalculateRating_NoReviews(t *testing.T) {
	stale := 5
	recipe := &Recipe{ReviewRating: &stale}

	recipe.RecalculateRating()

	assert.Nil(t, recipe.ReviewRating, "a recipe without reviews has no rating, not a zero rating")
}

func TestRecalculateRating_ReplacesPreviousValue(t *testing.T) {
	recipe := &Recipe{Reviews: []*Review{{Rating: 2}, {Rating: 10}}}
	recipe.RecalculateRating()
	require.NotNil(t, recipe.ReviewRating)
	require.Equal(t, 6, *recipe.ReviewRating)

	recipe.Reviews = append(recipe.Reviews, &Review{Rating: 3})
	recipe.RecalculateRating()

	require.NotNil(t, recipe.ReviewRating)
	assert.Equal(t, 5, *recipe.ReviewRating)
}
