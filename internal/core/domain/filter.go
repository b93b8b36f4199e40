package domain

const unknownDescription = "Unknown"

// FilterKind identifies one of the fixed filters. The numeric values match
// the choices shown in the interactive menu.
type FilterKind int

// Available filters.
const (
	// FilterGrayscale converts to a single luma channel.
	FilterGrayscale FilterKind = 1

	// FilterBlur applies a Gaussian blur.
	FilterBlur FilterKind = 2

	// FilterEdgeDetect produces a Canny edge map.
	FilterEdgeDetect FilterKind = 3

	// FilterSharpen convolves with a 3x3 sharpening kernel.
	FilterSharpen FilterKind = 4
)

// IsValid returns true if the filter kind is recognised.
func (k FilterKind) IsValid() bool {
	switch k {
	case FilterGrayscale, FilterBlur, FilterEdgeDetect, FilterSharpen:
		return true
	default:
		return false
	}
}

// String returns the short name used in operation logs and tool inputs.
func (k FilterKind) String() string {
	switch k {
	case FilterGrayscale:
		return "grayscale"
	case FilterBlur:
		return "blur"
	case FilterEdgeDetect:
		return "edge-detect"
	case FilterSharpen:
		return "sharpen"
	default:
		return "unknown"
	}
}

// Description returns the menu label of the filter.
func (k FilterKind) Description() string {
	switch k {
	case FilterGrayscale:
		return "Grayscale"
	case FilterBlur:
		return "Gaussian Blur"
	case FilterEdgeDetect:
		return "Canny Edge Detection"
	case FilterSharpen:
		return "Sharpen"
	default:
		return unknownDescription
	}
}

// ParseFilterKind resolves a filter from its short name.
func ParseFilterKind(name string) (FilterKind, error) {
	for _, k := range AllFilterKinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, ErrInvalidFilter
}

// AllFilterKinds returns the filters in menu order.
func AllFilterKinds() []FilterKind {
	return []FilterKind{
		FilterGrayscale,
		FilterBlur,
		FilterEdgeDetect,
		FilterSharpen,
	}
}

// SharpenKernel is the 3x3 kernel used by FilterSharpen, row-major.
var SharpenKernel = [9]float64{
	0, -1, 0,
	-1, 5, -1,
	0, -1, 0,
}

// FilterParams tunes the parameterised filters. Zero fields fall back to
// DefaultFilterParams.
type FilterParams struct {
	// BlurKernel is the Gaussian kernel size in pixels (odd).
	BlurKernel int

	// BlurSigma is the Gaussian standard deviation.
	BlurSigma float64

	// CannyLow is the lower hysteresis threshold.
	CannyLow float64

	// CannyHigh is the upper hysteresis threshold.
	CannyHigh float64
}

// DefaultFilterParams returns a 7x7 sigma 5 blur and 50/150 Canny thresholds.
func DefaultFilterParams() FilterParams {
	return FilterParams{
		BlurKernel: 7,
		BlurSigma:  5,
		CannyLow:   50,
		CannyHigh:  150,
	}
}

// WithDefaults returns p with zero fields replaced by defaults.
func (p FilterParams) WithDefaults() FilterParams {
	d := DefaultFilterParams()
	if p.BlurKernel <= 0 {
		p.BlurKernel = d.BlurKernel
	}
	if p.BlurSigma <= 0 {
		p.BlurSigma = d.BlurSigma
	}
	if p.CannyLow <= 0 {
		p.CannyLow = d.CannyLow
	}
	if p.CannyHigh <= 0 {
		p.CannyHigh = d.CannyHigh
	}
	return p
}
