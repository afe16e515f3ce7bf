package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
)

// ASCII characters for grayscale, from lighter to darker
const asciiChars = " .,:;i1tfLCG08@"

// Dividing factor to convert RGB color space to grayscale
const grayFactor = 255.0 / float64(len(asciiChars)-1)

// Grayscale conversion weights for RGB components
const (
	RFactor = 0.299
	GFactor = 0.587
	BFactor = 0.114
)

const ansiReset = "\033[0m"

// rgbToGray converts an RGB pixel to grayscale using the luminosity method
func rgbToGray(pixel color.RGBA) uint8 {
	r := RFactor * float64(pixel.R)
	g := GFactor * float64(pixel.G)
	b := BFactor * float64(pixel.B)
	return uint8(math.Min(255, math.Round(r+g+b)))
}

// grayToAscii maps a grayscale value to an ASCII character
func grayToAscii(gray uint8) byte {
	index := int(math.Round(float64(gray) / grayFactor))
	if index >= len(asciiChars) {
		index = len(asciiChars) - 1
	}
	return asciiChars[index]
}

// rgbToAnsi converts an RGB pixel to an ANSI escape code for that color
func rgbToAnsi(pixel color.RGBA) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", pixel.R, pixel.G, pixel.B)
}

// RenderToASCII samples img on a grid columns wide and returns it as colored
// ASCII art. Terminal cells are about twice as tall as wide, so rows are
// sampled at twice the column step. The color escape is only emitted when it
// changes.
func RenderToASCII(img image.Image, columns int) string {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 || columns <= 0 {
		return ""
	}

	stepX := float64(width) / float64(columns)
	stepY := stepX * 2

	var ascii strings.Builder
	for y := stepY / 2; y < float64(height); y += stepY {
		last := ""
		for x := stepX / 2; x < float64(width); x += stepX {
			i := bounds.Min.X + int(math.Floor(x))
			j := bounds.Min.Y + int(math.Floor(y))
			pixel := color.RGBAModel.Convert(img.At(i, j)).(color.RGBA)

			// Convert pixel to colored ASCII character
			if ansi := rgbToAnsi(pixel); ansi != last {
				ascii.WriteString(ansi)
				last = ansi
			}
			ascii.WriteByte(grayToAscii(rgbToGray(pixel)))
		}
		ascii.WriteString(ansiReset)
		ascii.WriteString("\n")
	}
	return ascii.String()
}
