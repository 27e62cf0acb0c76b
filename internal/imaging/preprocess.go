package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

// PreprocessOptions selects the optional transforms applied before an
// image is flattened for analysis. The zero value applies none.
type PreprocessOptions struct {
	// Region, if non-nil, crops the image to the rectangle first.
	// (X1,Y1) is the inclusive top-left corner, (X2,Y2) the exclusive
	// bottom-right corner.
	Region *Region

	// Scale resizes the (possibly cropped) image by the given factor
	// when positive and not 1. Lanczos resampling is used.
	Scale float64

	// BlurSigma applies a Gaussian blur with the given radius when
	// positive. Useful for suppressing sensor noise that would
	// otherwise inflate the adjacency set.
	BlurSigma float64
}

// Region is a rectangular crop area in image coordinates.
type Region struct {
	X1 int // Left edge (inclusive)
	Y1 int // Top edge (inclusive)
	X2 int // Right edge (exclusive)
	Y2 int // Bottom edge (exclusive)
}

// Preprocess applies the selected transforms in order: crop, scale,
// blur. The source image is never modified.
func Preprocess(img image.Image, opts PreprocessOptions) (image.Image, error) {
	if opts.Region != nil {
		cropped, err := cropRegion(img, *opts.Region)
		if err != nil {
			return nil, err
		}
		img = cropped
	}

	if opts.Scale > 0 && opts.Scale != 1.0 {
		newWidth := int(float64(img.Bounds().Dx()) * opts.Scale)
		newHeight := int(float64(img.Bounds().Dy()) * opts.Scale)
		if newWidth < 1 || newHeight < 1 {
			return nil, fmt.Errorf("scale %g reduces image below one pixel", opts.Scale)
		}
		img = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	if opts.BlurSigma > 0 {
		img = blur.Gaussian(img, opts.BlurSigma)
	}

	return img, nil
}

func cropRegion(img image.Image, r Region) (image.Image, error) {
	bounds := img.Bounds()
	if r.X1 < bounds.Min.X || r.Y1 < bounds.Min.Y || r.X2 > bounds.Max.X || r.Y2 > bounds.Max.Y {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			r.X1, r.Y1, r.X2, r.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}
	return imaging.Crop(img, image.Rect(r.X1, r.Y1, r.X2, r.Y2)), nil
}
