package raster

import (
	"image"

	"github.com/chewxy/math32"
)

// Channel names used when bridging to and from image.NRGBA.
const (
	ChannelR = "R"
	ChannelG = "G"
	ChannelB = "B"
	ChannelA = "A"
)

// RGBAChannels lists the channel names produced by FromNRGBA in plane order.
var RGBAChannels = []string{ChannelR, ChannelG, ChannelB, ChannelA}

// FromNRGBA converts a non-premultiplied RGBA image into four float32
// planes normalized to [0,1]. The image bounds become the data window,
// with the inclusive max one less than the exclusive bounds max.
func FromNRGBA(src *image.NRGBA) *Image {
	b := src.Bounds()
	window := NewBox(b.Min.X, b.Min.Y, b.Max.X-1, b.Max.Y-1)
	img := NewImage(window, RGBAChannels...)
	planes := [4]*Plane{
		img.channels[ChannelR],
		img.channels[ChannelG],
		img.channels[ChannelB],
		img.channels[ChannelA],
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := src.PixOffset(x, y)
			for c := 0; c < 4; c++ {
				planes[c].SetPixel(x, y, float32(src.Pix[i+c])/255)
			}
		}
	}
	return img
}

// ToNRGBA converts R/G/B/A planes back into an image.NRGBA, clamping values
// to [0,1] and quantizing to 8 bits.
func ToNRGBA(img *Image) *image.NRGBA {
	w := img.Window
	dst := image.NewNRGBA(image.Rect(w.Min.X, w.Min.Y, w.Max.X+1, w.Max.Y+1))
	for c, name := range RGBAChannels {
		p, ok := img.channels[name]
		if !ok {
			continue
		}
		for y := w.Min.Y; y <= w.Max.Y; y++ {
			for x := w.Min.X; x <= w.Max.X; x++ {
				v := math32.Max(0, math32.Min(1, p.Pixel(x, y)))
				dst.Pix[dst.PixOffset(x, y)+c] = uint8(v*255 + 0.5)
			}
		}
	}
	return dst
}
