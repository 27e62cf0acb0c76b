package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/ironsheep/couladj/internal/adjacency"
)

// Load reads and decodes the image at path.
//
// The concrete image type depends on the source format and color model
// (e.g., *image.NRGBA, *image.Paletted, *image.YCbCr).
//
// # Errors
//
//   - Returns an error naming the path if the file cannot be opened.
//   - Returns an error naming the path if the bytes cannot be decoded
//     as any registered format.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image file %q: %w", path, err)
	}
	return img, nil
}

// Flatten converts an image into a flat row-major buffer of 8-bit RGBA
// colors plus its grid dimensions.
//
// The image is cloned into straight-alpha NRGBA first, so channel
// values are not alpha-premultiplied and compare exactly. The returned
// buffer always satisfies len(buf) == dims.Rows*dims.Cols.
func Flatten(img image.Image) ([]adjacency.Color, adjacency.Dimensions) {
	nrgba := imaging.Clone(img)
	bounds := nrgba.Bounds()
	dims := adjacency.Dimensions{Rows: bounds.Dy(), Cols: bounds.Dx()}

	buf := make([]adjacency.Color, 0, dims.Area())
	for y := 0; y < dims.Rows; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+dims.Cols*4]
		for x := 0; x < dims.Cols; x++ {
			px := row[x*4 : x*4+4]
			buf = append(buf, adjacency.Color{R: px[0], G: px[1], B: px[2], A: px[3]})
		}
	}
	return buf, dims
}
