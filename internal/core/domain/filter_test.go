package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterKind_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		kind     FilterKind
		expected bool
	}{
		{"grayscale is valid", FilterGrayscale, true},
		{"blur is valid", FilterBlur, true},
		{"edge detect is valid", FilterEdgeDetect, true},
		{"sharpen is valid", FilterSharpen, true},
		{"zero is invalid", FilterKind(0), false},
		{"five is invalid", FilterKind(5), false},
		{"negative is invalid", FilterKind(-1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.IsValid())
		})
	}
}

func TestFilterKind_MenuOrder(t *testing.T) {
	kinds := AllFilterKinds()

	require.Len(t, kinds, 4)
	for i, k := range kinds {
		assert.Equal(t, FilterKind(i+1), k, "menu choice %d", i+1)
	}
}

func TestFilterKind_StringAndDescription(t *testing.T) {
	assert.Equal(t, "grayscale", FilterGrayscale.String())
	assert.Equal(t, "Gaussian Blur", FilterBlur.Description())
	assert.Equal(t, "Canny Edge Detection", FilterEdgeDetect.Description())
	assert.Equal(t, "unknown", FilterKind(9).String())
	assert.Equal(t, unknownDescription, FilterKind(9).Description())
}

func TestParseFilterKind(t *testing.T) {
	for _, k := range AllFilterKinds() {
		got, err := ParseFilterKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseFilterKind("sepia")
	assert.ErrorIs(t, err, ErrInvalidFilter)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFilterParams_WithDefaults(t *testing.T) {
	t.Run("zero value gets all defaults", func(t *testing.T) {
		assert.Equal(t, DefaultFilterParams(), FilterParams{}.WithDefaults())
	})

	t.Run("set fields are kept", func(t *testing.T) {
		p := FilterParams{BlurSigma: 2, CannyHigh: 200}.WithDefaults()

		assert.Equal(t, 7, p.BlurKernel)
		assert.Equal(t, 2.0, p.BlurSigma)
		assert.Equal(t, 50.0, p.CannyLow)
		assert.Equal(t, 200.0, p.CannyHigh)
	})
}

func TestSharpenKernel_SumsToOne(t *testing.T) {
	var sum float64
	for _, v := range SharpenKernel {
		sum += v
	}
	assert.Equal(t, 1.0, sum)
}
