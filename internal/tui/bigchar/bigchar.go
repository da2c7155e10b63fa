// Package bigchar renders a single character as block art using half-block
// characters, for the inspector's glyph preview.
package bigchar

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontPaths are tried in order until one parses.
var FontPaths = []string{
	// Linux
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/noto/NotoSans-Regular.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
	// macOS
	"/System/Library/Fonts/PingFang.ttc",
	"/Library/Fonts/Arial Unicode.ttf",
	"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",
	// Windows
	"C:\\Windows\\Fonts\\seguisym.ttf",
	"C:\\Windows\\Fonts\\msyh.ttc",
}

const (
	faceSize  = 64
	threshold = uint8(40) // brightness above which a half-cell is "on"
)

// CacheSize bounds how many renders a Renderer keeps. The cache is dropped
// wholesale once it fills.
const CacheSize = 256

// Renderer draws glyphs from one font face and caches the results.
type Renderer struct {
	face  font.Face
	cache map[cacheKey]string
}

type cacheKey struct {
	r          rune
	cols, rows int
}

// New loads the first usable font from FontPaths. The renderer is still
// usable when none loads; it just renders nothing.
func New() *Renderer {
	return NewFromPaths(FontPaths)
}

// NewFromPaths loads the first usable font from paths.
func NewFromPaths(paths []string) *Renderer {
	r := &Renderer{cache: make(map[cacheKey]string)}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if face := parseFace(data); face != nil {
			r.face = face
			break
		}
	}
	return r
}

func parseFace(data []byte) font.Face {
	opts := &opentype.FaceOptions{Size: faceSize, DPI: 72}

	// Try parsing as font collection first
	if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
		if fnt, err := coll.Font(0); err == nil {
			if face, err := opentype.NewFace(fnt, opts); err == nil {
				return face
			}
		}
	}

	if fnt, err := opentype.Parse(data); err == nil {
		if face, err := opentype.NewFace(fnt, opts); err == nil {
			return face
		}
	}
	return nil
}

// Available reports whether a font was found.
func (r *Renderer) Available() bool {
	return r != nil && r.face != nil
}

// Render returns ch drawn in a cols x rows block of terminal cells, or ""
// when no font is available or the font has no glyph for ch.
func (r *Renderer) Render(ch rune, cols, rows int) string {
	if !r.Available() || cols <= 0 || rows <= 0 {
		return ""
	}

	key := cacheKey{ch, cols, rows}
	if s, ok := r.cache[key]; ok {
		return s
	}

	s := r.render(ch, cols, rows)
	if len(r.cache) >= CacheSize {
		clear(r.cache)
	}
	r.cache[key] = s
	return s
}

// Cached returns the number of renders held.
func (r *Renderer) Cached() int {
	if r == nil {
		return 0
	}
	return len(r.cache)
}

func (r *Renderer) render(ch rune, cols, rows int) string {
	bounds, _, ok := r.face.GlyphBounds(ch)
	if !ok {
		return ""
	}
	glyphWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	glyphHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()

	padding := 4
	srcWidth := max(glyphWidth+padding*2, faceSize)
	srcHeight := max(glyphHeight+padding*2, faceSize)

	src := image.NewGray(image.Rect(0, 0, srcWidth, srcHeight))
	draw.Draw(src, src.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	// Center horizontally, sit on a baseline that keeps descenders visible
	x := (srcWidth-glyphWidth)/2 - bounds.Min.X.Floor()
	y := srcHeight - padding - bounds.Max.Y.Ceil()

	d := &font.Drawer{
		Dst:  src,
		Src:  image.White,
		Face: r.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(string(ch))

	// Two vertical pixels per cell
	scaled := scaleDown(src, cols, rows*2)
	return halfBlocks(scaled, cols, rows)
}

// scaleDown scales a grayscale image using area averaging.
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcWidth := src.Bounds().Max.X
	srcHeight := src.Bounds().Max.Y
	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		sy1 := int(float64(dy) * yRatio)
		sy2 := min(int(float64(dy+1)*yRatio), srcHeight)
		for dx := 0; dx < dstWidth; dx++ {
			sx1 := int(float64(dx) * xRatio)
			sx2 := min(int(float64(dx+1)*xRatio), srcWidth)

			var sum, count int
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

// halfBlocks converts a grayscale image to ▀▄█ art.
func halfBlocks(img *image.Gray, cols, rows int) string {
	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := brightness(img, col, row*2) > threshold
			bottom := brightness(img, col, row*2+1) > threshold

			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if row < rows-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

func brightness(img *image.Gray, x, y int) uint8 {
	if x < 0 || y < 0 || x >= img.Bounds().Max.X || y >= img.Bounds().Max.Y {
		return 0
	}
	return img.GrayAt(x, y).Y
}
