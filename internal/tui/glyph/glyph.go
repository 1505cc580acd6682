// Package glyph renders Javanese script as large block art using half-block characters.
package glyph

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var loadedFace font.Face

func init() {
	// Try to load a font with Javanese coverage from common system locations
	fontPaths := []string{
		// Linux
		"/usr/share/fonts/truetype/noto/NotoSansJavanese-Regular.ttf",
		"/usr/share/fonts/opentype/noto/NotoSansJavanese-Regular.otf",
		"/usr/share/fonts/noto/NotoSansJavanese-Regular.ttf",
		"/usr/share/fonts/TTF/NotoSansJavanese-Regular.ttf",
		// macOS
		"/Library/Fonts/NotoSansJavanese-Regular.ttf",
		"/System/Library/Fonts/Supplemental/NotoSansJavanese-Regular.ttf",
		// Windows
		"C:\\Windows\\Fonts\\NotoSansJavanese-Regular.ttf",
		"C:\\Windows\\Fonts\\javatext.ttf",
	}

	for _, path := range fontPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		// Try parsing as font collection first
		if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
			if fnt, err := coll.Font(0); err == nil {
				if face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
					Size: 64,
					DPI:  72,
				}); err == nil {
					loadedFace = face
					return
				}
			}
		}

		// Try parsing as single font
		if fnt, err := opentype.Parse(data); err == nil {
			if face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
				Size: 64,
				DPI:  72,
			}); err == nil {
				loadedFace = face
				return
			}
		}
	}
}

// RenderBlock renders a Javanese string using half-block characters (▀▄█).
// cols and rows define the output size in terminal cells.
func RenderBlock(text string, cols, rows int) string {
	if text == "" || loadedFace == nil {
		return ""
	}

	// Measure the whole string; diacritics extend above and below the
	// base line so the vertical bounds come from the face metrics.
	width := font.MeasureString(loadedFace, text).Ceil()
	metrics := loadedFace.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()

	padding := 4
	srcWidth := width + padding*2
	srcHeight := ascent + descent + padding*2

	if srcWidth < 64 {
		srcWidth = 64
	}
	if srcHeight < 64 {
		srcHeight = 64
	}

	srcImg := image.NewGray(image.Rect(0, 0, srcWidth, srcHeight))
	draw.Draw(srcImg, srcImg.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  srcImg,
		Src:  image.White,
		Face: loadedFace,
		Dot:  fixed.P(padding, padding+ascent),
	}
	d.DrawString(text)

	// rows*2 because half-blocks give two pixels per cell
	scaledImg := scaleDown(srcImg, cols, rows*2)

	return imageToHalfBlocks(scaledImg, cols, rows)
}

// scaleDown scales a grayscale image using area averaging
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcBounds := src.Bounds()
	srcWidth := srcBounds.Max.X
	srcHeight := srcBounds.Max.Y

	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			sx1 := int(float64(dx) * xRatio)
			sy1 := int(float64(dy) * yRatio)
			sx2 := int(float64(dx+1) * xRatio)
			sy2 := int(float64(dy+1) * yRatio)

			if sx2 > srcWidth {
				sx2 = srcWidth
			}
			if sy2 > srcHeight {
				sy2 = srcHeight
			}

			var sum int
			count := 0
			for sy := sy1; sy < sy2; sy++ {
				for sx := sx1; sx < sx2; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					count++
				}
			}

			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}

	return dst
}

// imageToHalfBlocks converts a grayscale image to half-block art
func imageToHalfBlocks(img *image.Gray, cols, rows int) string {
	var result strings.Builder

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			topY := row * 2
			bottomY := row*2 + 1

			topBright := getPixelBrightness(img, col, topY)
			bottomBright := getPixelBrightness(img, col, bottomY)

			threshold := uint8(40)

			topOn := topBright > threshold
			bottomOn := bottomBright > threshold

			if topOn && bottomOn {
				result.WriteRune('█')
			} else if topOn {
				result.WriteRune('▀')
			} else if bottomOn {
				result.WriteRune('▄')
			} else {
				result.WriteRune(' ')
			}
		}
		if row < rows-1 {
			result.WriteRune('\n')
		}
	}

	return result.String()
}

func getPixelBrightness(img *image.Gray, x, y int) uint8 {
	if x < 0 || y < 0 || x >= img.Bounds().Max.X || y >= img.Bounds().Max.Y {
		return 0
	}
	return img.GrayAt(x, y).Y
}

// IsAvailable returns true if a Javanese-capable font was found
func IsAvailable() bool {
	return loadedFace != nil
}

// cache for rendered strings
var cache = make(map[string]string)

// GetCached returns a cached rendering or renders a new one
func GetCached(text string, cols, rows int) string {
	if !IsAvailable() {
		return ""
	}

	key := fmt.Sprintf("%s|%dx%d", text, cols, rows)
	if cached, ok := cache[key]; ok {
		return cached
	}

	rendered := RenderBlock(text, cols, rows)
	cache[key] = rendered
	return rendered
}
