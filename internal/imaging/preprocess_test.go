package imaging

import (
	"image/color"
	"testing"
)

func TestPreprocess_NoOptions(t *testing.T) {
	img := createInMemoryImage(10, 10, color.RGBA{128, 128, 128, 255})

	out, err := Preprocess(img, PreprocessOptions{Scale: 1.0})
	if err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}
	if out.Bounds().Dx() != 10 || out.Bounds().Dy() != 10 {
		t.Errorf("dimensions changed: got %dx%d, want 10x10", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestPreprocess_Crop(t *testing.T) {
	img := createInMemoryImage(20, 20, color.RGBA{10, 20, 30, 255})

	out, err := Preprocess(img, PreprocessOptions{
		Region: &Region{X1: 5, Y1: 5, X2: 15, Y2: 10},
	})
	if err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}
	if out.Bounds().Dx() != 10 || out.Bounds().Dy() != 5 {
		t.Errorf("cropped dimensions: got %dx%d, want 10x5", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestPreprocess_CropOutOfBounds(t *testing.T) {
	img := createInMemoryImage(10, 10, color.RGBA{0, 0, 0, 255})

	_, err := Preprocess(img, PreprocessOptions{
		Region: &Region{X1: 0, Y1: 0, X2: 11, Y2: 10},
	})
	if err == nil {
		t.Fatal("expected error for out-of-bounds crop, got nil")
	}
}

func TestPreprocess_CropDegenerate(t *testing.T) {
	img := createInMemoryImage(10, 10, color.RGBA{0, 0, 0, 255})

	tests := []struct {
		name   string
		region Region
	}{
		{"ZeroWidth", Region{X1: 5, Y1: 0, X2: 5, Y2: 10}},
		{"Inverted", Region{X1: 8, Y1: 8, X2: 2, Y2: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Preprocess(img, PreprocessOptions{Region: &tt.region}); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestPreprocess_Scale(t *testing.T) {
	img := createInMemoryImage(100, 60, color.RGBA{200, 100, 50, 255})

	out, err := Preprocess(img, PreprocessOptions{Scale: 0.5})
	if err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}
	if out.Bounds().Dx() != 50 || out.Bounds().Dy() != 30 {
		t.Errorf("scaled dimensions: got %dx%d, want 50x30", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestPreprocess_ScaleBelowOnePixel(t *testing.T) {
	img := createInMemoryImage(4, 4, color.RGBA{0, 0, 0, 255})

	if _, err := Preprocess(img, PreprocessOptions{Scale: 0.1}); err == nil {
		t.Fatal("expected error for sub-pixel scale, got nil")
	}
}

func TestPreprocess_BlurKeepsDimensions(t *testing.T) {
	img := createInMemoryImage(30, 20, color.RGBA{90, 90, 90, 255})

	out, err := Preprocess(img, PreprocessOptions{BlurSigma: 2.0})
	if err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}
	if out.Bounds().Dx() != 30 || out.Bounds().Dy() != 20 {
		t.Errorf("blurred dimensions: got %dx%d, want 30x20", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestPreprocess_CropThenScale(t *testing.T) {
	img := createInMemoryImage(40, 40, color.RGBA{1, 2, 3, 255})

	out, err := Preprocess(img, PreprocessOptions{
		Region: &Region{X1: 0, Y1: 0, X2: 20, Y2: 20},
		Scale:  2.0,
	})
	if err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}
	if out.Bounds().Dx() != 40 || out.Bounds().Dy() != 40 {
		t.Errorf("dimensions: got %dx%d, want 40x40", out.Bounds().Dx(), out.Bounds().Dy())
	}
}
