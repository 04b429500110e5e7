//go:build !tinygo

package screen

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"net/http"

	"github.com/jrockway/wakeup-clock/control/board"
)

const (
	previewScale       = 20 // Size of one pixel in the rendered image.
	previewPixelBorder = 10 // Border around right and bottom of pixel, to simulate pixel spacing.
)

// Preview draws f the way it looks on the matrix: red LEDs on a black board.
func Preview(f Frame) *image.NRGBA {
	scale := previewScale + previewPixelBorder
	img := image.NewNRGBA(image.Rect(0, 0, board.Size*scale, board.Size*scale))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	for x := 0; x < board.Size; x++ {
		for y := 0; y < board.Size; y++ {
			c := color.NRGBA{R: uint8(uint32(f[y][x]) * 0xff / MaxBrightness), A: 0xff}
			for destX := scale * x; destX < scale*(x+1)-previewPixelBorder; destX++ {
				for destY := scale * y; destY < scale*(y+1)-previewPixelBorder; destY++ {
					img.SetNRGBA(destX, destY, c)
				}
			}
		}
	}
	return img
}

// ServeHTTP serves the current image as a PNG.
func (s *Screen) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	img := Preview(s.Frame())
	w.Header().Add("content-type", "image/png")
	w.WriteHeader(http.StatusOK)
	if err := png.Encode(w, img); err != nil {
		log.Printf("encoding image: %v", err)
	}
}
