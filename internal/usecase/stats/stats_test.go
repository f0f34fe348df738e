package stats

import (
	"errors"
	"testing"

	"github.com/fahrenkrug/rust-learn-book-collections/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_ChapterValues(t *testing.T) {
	values := []int{9, 8, 2, 3, 4, 5, 6, 7, 1, 0, 0}

	s, err := Summarize(values)
	require.NoError(t, err)

	assert.Equal(t, 11, s.Count)
	assert.Equal(t, 45, s.Sum)
	assert.Equal(t, 4, s.Mean)
	assert.InDelta(t, 45.0/11.0, s.FloatMean, 1e-9)
	assert.Equal(t, 4, s.Median)
	assert.Equal(t, 0, s.Mode)
	assert.Equal(t, 2, s.ModeCount)

	// Input left untouched.
	assert.Equal(t, []int{9, 8, 2, 3, 4, 5, 6, 7, 1, 0, 0}, values)
}

func TestSummarize_EvenLengthUsesUpperMedian(t *testing.T) {
	s, err := Summarize([]int{4, 1, 3, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Median)
}

func TestSummarize_ModeTieTakesSmallest(t *testing.T) {
	s, err := Summarize([]int{7, 3, 7, 3, 9})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Mode)
	assert.Equal(t, 2, s.ModeCount)
}

func TestSummarize_NegativeMeanTruncates(t *testing.T) {
	s, err := Summarize([]int{-3, -4})
	require.NoError(t, err)
	assert.Equal(t, -3, s.Mean)
	assert.InDelta(t, -3.5, s.FloatMean, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	_, err := Summarize(nil)
	require.Error(t, err)
	if !errors.Is(err, domain.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected KindInvalidInput, got %v", err)
	}
}
