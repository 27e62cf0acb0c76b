// Package imaging loads raster images and prepares them for adjacency
// analysis.
//
// Load decodes an image file; PNG, JPEG, GIF, BMP, TIFF, and WebP are
// supported. Flatten converts a decoded image into the flat row-major
// RGBA buffer the adjacency package consumes, and Preprocess applies
// the optional crop, resize, and blur transforms beforehand.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with origin at the top-left: X
// increases rightward, Y increases downward. Crop regions use an
// inclusive (x1,y1) top-left corner and an exclusive (x2,y2)
// bottom-right corner.
//
// # Error Handling
//
// Functions return errors for files that cannot be opened or decoded,
// and for crop regions that are degenerate or fall outside the image
// bounds. Errors wrap the underlying cause and name the failing stage.
package imaging
