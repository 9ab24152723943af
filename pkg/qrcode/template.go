package qrcode

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	templateWidth  = 800
	templateHeight = 1200

	borderInset = 20
	borderWidth = 5

	nameY   = 100
	dateY   = 180
	scanY   = 480
	qrY     = 550
	codeY   = 880
	footerY = 1100

	scanText   = "Scan QR Code to Upload Photos"
	footerText = "BestMoments.com - Capture & Share Your Special Moments"
)

type theme struct {
	bg        color.NRGBA
	primary   color.NRGBA
	secondary color.NRGBA
}

// Color themes keyed by event type; unknown types fall back to wedding.
var themes = map[string]theme{
	"wedding":    {bg: hex(0xFFF5F5), primary: hex(0xD4AF37), secondary: hex(0x8B4513)},
	"birthday":   {bg: hex(0xFFF9E6), primary: hex(0xFF6B9D), secondary: hex(0xC44569)},
	"engagement": {bg: hex(0xFFF0F5), primary: hex(0xFF69B4), secondary: hex(0xC71585)},
	"annoprasan": {bg: hex(0xFFF8DC), primary: hex(0xFFD700), secondary: hex(0xFF8C00)},
}

const defaultTheme = "wedding"

var (
	titleFace    = loadFace(gobold.TTF, 48)
	subtitleFace = loadFace(goregular.TTF, 32)
	codeFace     = loadFace(gomono.TTF, 36)
)

// loadFace parses an embedded gofont. The basicfont fallback means template
// rendering can never fail for lack of font resources.
func loadFace(ttf []byte, size float64) font.Face {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// GenerateEventTemplate composes the 800x1200 printable template: themed
// background, bordered frame, centered QR code and the event details.
func GenerateEventTemplate(eventName, eventDate, eventCode, qrData, eventType string) ([]byte, error) {
	t, ok := themes[eventType]
	if !ok {
		t = themes[defaultTheme]
	}

	canvas := imaging.New(templateWidth, templateHeight, t.bg)
	drawBorder(canvas, t.primary)

	qrPNG, err := GenerateQRCode(qrData, QRSize)
	if err != nil {
		return nil, err
	}
	qrImg, err := imaging.Decode(bytes.NewReader(qrPNG))
	if err != nil {
		return nil, fmt.Errorf("failed to decode QR image: %w", err)
	}
	canvas = imaging.Paste(canvas, qrImg, image.Pt((templateWidth-QRSize)/2, qrY))

	drawCenteredText(canvas, titleFace, eventName, nameY, t.primary)
	drawCenteredText(canvas, subtitleFace, eventDate, dateY, t.secondary)
	drawCenteredText(canvas, subtitleFace, scanText, scanY, t.secondary)
	drawCenteredText(canvas, codeFace, fmt.Sprintf("Event Code: %s", eventCode), codeY, t.primary)
	drawCenteredText(canvas, subtitleFace, footerText, footerY, t.secondary)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode template PNG: %w", err)
	}
	return buf.Bytes(), nil
}

func drawBorder(img *image.NRGBA, c color.NRGBA) {
	outer := image.Rect(borderInset, borderInset, templateWidth-borderInset, templateHeight-borderInset)
	fill := image.NewUniform(c)

	draw.Draw(img, image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, outer.Min.Y+borderWidth), fill, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(outer.Min.X, outer.Max.Y-borderWidth, outer.Max.X, outer.Max.Y), fill, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(outer.Min.X, outer.Min.Y, outer.Min.X+borderWidth, outer.Max.Y), fill, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(outer.Max.X-borderWidth, outer.Min.Y, outer.Max.X, outer.Max.Y), fill, image.Point{}, draw.Src)
}

// drawCenteredText draws s horizontally centered with its top edge at y.
func drawCenteredText(img *image.NRGBA, face font.Face, s string, y int, c color.NRGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
	}
	width := d.MeasureString(s)
	d.Dot = fixed.Point26_6{
		X: (fixed.I(templateWidth) - width) / 2,
		Y: fixed.I(y) + face.Metrics().Ascent,
	}
	d.DrawString(s)
}

func hex(rgb uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
		A: 0xFF,
	}
}
