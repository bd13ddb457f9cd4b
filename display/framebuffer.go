package display

import (
	"fmt"
	"image"
	"image/color"
)

const (
	SCREEN_WIDTH  = 480
	SCREEN_HEIGHT = 272
	FRAME_STRIDE  = 512        // Pixels per framebuffer line
	VRAM_BASE     = 0x04000000 // Default framebuffer address
)

// Pixel layout of a framebuffer
type PixelFormat uint8

const (
	FORMAT_5650 PixelFormat = iota // 16 bit RGB
	FORMAT_5551                    // 16 bit RGB + 1 bit alpha
	FORMAT_4444                    // 16 bit RGBA
	FORMAT_8888                    // 32 bit RGBA
)

var formatNames = [...]string{"5650", "5551", "4444", "8888"}

func (f PixelFormat) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("format(%d)", uint8(f))
}

// Returns the size of one pixel in bytes
func (f PixelFormat) BytesPerPixel() int {
	if f == FORMAT_8888 {
		return 4
	}
	return 2
}

// Where the guest keeps the visible picture
type Framebuffer struct {
	Addr   uint32
	Stride int // Pixels per line, at least Width
	Width  int
	Height int
	Format PixelFormat
}

// Returns the framebuffer the firmware sets up at boot
func DefaultFramebuffer() Framebuffer {
	return Framebuffer{
		Addr:   VRAM_BASE,
		Stride: FRAME_STRIDE,
		Width:  SCREEN_WIDTH,
		Height: SCREEN_HEIGHT,
		Format: FORMAT_8888,
	}
}

// Returns the number of guest bytes the framebuffer covers
func (fb *Framebuffer) Size() uint32 {
	return uint32(fb.Stride*(fb.Height-1)+fb.Width) * uint32(fb.Format.BytesPerPixel())
}

// Returns the RGBA color of the 16 bit pixel `val`
func decode16(format PixelFormat, val uint16) color.RGBA {
	var r, g, b uint8
	switch format {
	case FORMAT_5650:
		r = expand5(val)
		g = uint8((val>>5)&0x3f)<<2 | uint8((val>>9)&0x03)
		b = expand5(val >> 11)
	case FORMAT_5551:
		r = expand5(val)
		g = expand5(val >> 5)
		b = expand5(val >> 10)
	case FORMAT_4444:
		r = uint8(val&0xf) * 0x11
		g = uint8((val>>4)&0xf) * 0x11
		b = uint8((val>>8)&0xf) * 0x11
	}
	// the display ignores alpha
	return color.RGBA{r, g, b, 255}
}

func expand5(val uint16) uint8 {
	v := uint8(val & 0x1f)
	return v<<3 | v>>2
}

// Converts the guest pixels in `src` (starting at fb.Addr) to opaque RGBA
// bytes in `dst`, which must hold Width*Height*4 bytes
func (fb *Framebuffer) Decode(src, dst []byte) {
	bpp := fb.Format.BytesPerPixel()
	for y := 0; y < fb.Height; y++ {
		line := src[y*fb.Stride*bpp:]
		out := dst[y*fb.Width*4:]
		for x := 0; x < fb.Width; x++ {
			o := out[x*4 : x*4+4]
			if bpp == 4 {
				p := line[x*4:]
				o[0], o[1], o[2], o[3] = p[0], p[1], p[2], 255
				continue
			}
			c := decode16(fb.Format, uint16(line[x*2])|uint16(line[x*2+1])<<8)
			o[0], o[1], o[2], o[3] = c.R, c.G, c.B, c.A
		}
	}
}

// Converts the guest pixels in `src` to an image.RGBA
func (fb *Framebuffer) ToImage(src []byte) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	fb.Decode(src, img.Pix)
	return img
}
