// Package theme provides the ruler's colors and font faces.
package theme

import (
	"image/color"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	// Background fills the whole drawable area.
	Background = color.RGBA{0xff, 0xff, 0xff, 0xff}

	// Foreground draws the baseline, ticks and labels.
	Foreground = color.RGBA{0x00, 0x00, 0x00, 0xff}

	// Advisory draws the de-emphasized fallback note.
	Advisory = color.RGBA{0x80, 0x80, 0x80, 0xff}
)

const (
	// LabelFontSize is the point size of the centimeter labels.
	LabelFontSize = 12.0

	// AdvisoryFontSize is the point size of the fallback note.
	AdvisoryFontSize = 11.0
)

// FontFaceOptions is same as Options in github.com/golang/freetype/truetype
// but holds only the DPI and Size fields to use easily.
type FontFaceOptions struct {
	// font size in point. if set 0 then use 12.0pt instead.
	Size float64

	// Dot per inch. if set 0 then use 72 DPI.
	DPI float64
}

// return receiver as truetype.Options.
// because nil TTF Options is ok, it may return nil if receiver is nil.
func (opt *FontFaceOptions) TTFOptions() *truetype.Options {
	var ttfOpt *truetype.Options
	if opt != nil {
		ttfOpt = &truetype.Options{
			Size: opt.Size,
			DPI:  opt.DPI,
		}
	}
	return ttfOpt
}

// DefaultFontName means using the builtin Go Regular font.
const DefaultFontName = ""

// return the builtin font face.
func NewDefaultFace(opt *FontFaceOptions) font.Face {
	return truetype.NewFace(defaultTruetypeFont(), opt.TTFOptions())
}

func defaultTruetypeFont() *truetype.Font {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		panic("theme: builtin font can not be parsed: " + err.Error())
	}
	return f
}

// parse a truetype font file and return its font.Face.
// return error if fontfile is not found or not a truetype font.
func ParseTruetypeFileFace(file string, opt *FontFaceOptions) (font.Face, error) {
	ttf, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, opt.TTFOptions()), nil
}

// NewFace returns a face for fontfile, or the builtin face when fontfile
// is DefaultFontName.
func NewFace(fontfile string, opt *FontFaceOptions) (font.Face, error) {
	if fontfile == DefaultFontName {
		return NewDefaultFace(opt), nil
	}
	return ParseTruetypeFileFace(fontfile, opt)
}
