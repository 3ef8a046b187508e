// Package pdf lays styled text blocks onto fixed-geometry pages and
// serializes the result to an in-memory buffer. It never touches disk.
package pdf

import (
	"bytes"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/phoneix12356/RenuHealthCare/internal/apperr"
)

// Block alignment values, matching fpdf's cell alignment strings.
const (
	AlignLeft    = "L"
	AlignCenter  = "C"
	AlignRight   = "R"
	AlignJustify = "J"
)

// Font styles.
const (
	StyleRegular = ""
	StyleBold    = "B"
	StyleItalic  = "I"
)

// Config is the fixed page geometry for a document.
type Config struct {
	Orientation string
	PageSize    string
	Margin      float64 // points, applied on all sides
}

// DefaultConfig matches the letter templates: portrait A4, 50 pt margins.
func DefaultConfig() Config {
	return Config{Orientation: "P", PageSize: "A4", Margin: 50}
}

// Block is one styled text run in the vertical flow.
type Block struct {
	Text        string
	Font        string  // family, e.g. "Helvetica"
	Style       string  // StyleRegular, StyleBold, StyleItalic
	Size        float64 // font size in points
	Color       string  // "#RRGGBB"; black when empty
	Align       string  // AlignLeft when empty
	LineGap     float64 // extra leading between wrapped lines
	SpaceBefore float64 // vertical advance before the block
	LinkURL     string  // renders the text as a clickable link region
}

// Render lays out blocks top to bottom with automatic wrapping and page
// breaks and returns the finished document bytes. The only error path is
// a malformed block.
func Render(cfg Config, blocks []Block) ([]byte, error) {
	if err := validate(blocks); err != nil {
		return nil, err
	}

	doc := fpdf.New(cfg.Orientation, "pt", cfg.PageSize, "")
	doc.SetMargins(cfg.Margin, cfg.Margin, cfg.Margin)
	doc.SetAutoPageBreak(true, cfg.Margin)
	// Uncompressed streams keep the substituted fields scannable.
	doc.SetCompression(false)
	doc.AddPage()

	// Core fonts are cp1252; template text (bullets in particular) is UTF-8.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	for _, b := range blocks {
		doc.SetFont(b.Font, b.Style, b.Size)
		r, g, bl := parseHexColor(b.Color)
		doc.SetTextColor(r, g, bl)

		if b.SpaceBefore > 0 {
			doc.Ln(b.SpaceBefore)
		}

		lineHeight := b.Size*1.2 + b.LineGap
		align := b.Align
		if align == "" {
			align = AlignLeft
		}

		if b.LinkURL != "" {
			writeLink(doc, b, tr(b.Text), lineHeight, align)
			continue
		}
		doc.MultiCell(0, lineHeight, tr(b.Text), "", align, false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, apperr.Wrap(apperr.KindInvalidContent, "render document", err)
	}
	return buf.Bytes(), nil
}

func validate(blocks []Block) error {
	for i, b := range blocks {
		switch {
		case b.Text == "":
			return apperr.Newf(apperr.KindInvalidContent, "block %d: text is required", i)
		case b.Font == "":
			return apperr.Newf(apperr.KindInvalidContent, "block %d: font is required", i)
		case b.Size <= 0:
			return apperr.Newf(apperr.KindInvalidContent, "block %d: font size must be positive", i)
		}
	}
	return nil
}

func writeLink(doc *fpdf.Fpdf, b Block, text string, lineHeight float64, align string) {
	if align == AlignCenter {
		pageW, _ := doc.GetPageSize()
		if w := doc.GetStringWidth(text); w < pageW {
			doc.SetX((pageW - w) / 2)
		}
	}
	doc.WriteLinkString(lineHeight, text, b.LinkURL)
	doc.Ln(lineHeight)
}

// parseHexColor turns "#RRGGBB" into RGB components, defaulting to black.
func parseHexColor(hex string) (int, int, int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}
