package pdf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/phoneix12356/RenuHealthCare/internal/apperr"
)

func TestRenderProducesPDF(t *testing.T) {
	blocks := []Block{
		{Text: "Appointment Letter", Font: "Helvetica", Style: StyleBold, Size: 22, Align: AlignCenter},
		{Text: "Dear candidate, welcome aboard.", Font: "Helvetica", Size: 12, SpaceBefore: 12},
	}
	data, err := Render(DefaultConfig(), blocks)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not start with %%PDF header: %q", data[:8])
	}
	if !bytes.Contains(data, []byte("Appointment Letter")) {
		t.Errorf("rendered text not present in output stream")
	}
}

func TestRenderWrapsLongText(t *testing.T) {
	short, err := Render(DefaultConfig(), []Block{{Text: "one line", Font: "Helvetica", Size: 12}})
	if err != nil {
		t.Fatalf("Render short: %v", err)
	}

	// 200 repetitions cannot fit one A4 page.
	long := strings.Repeat("internship responsibilities and weekly deliverables ", 200)
	data, err := Render(DefaultConfig(), []Block{{Text: long, Font: "Helvetica", Size: 12}})
	if err != nil {
		t.Fatalf("Render long: %v", err)
	}
	marker := []byte("/Type /Page")
	if bytes.Count(data, marker) <= bytes.Count(short, marker) {
		t.Errorf("expected auto page break to add page objects")
	}
}

func TestRenderRejectsMalformedBlocks(t *testing.T) {
	tests := []struct {
		name  string
		block Block
	}{
		{"empty text", Block{Font: "Helvetica", Size: 12}},
		{"empty font", Block{Text: "hello", Size: 12}},
		{"zero size", Block{Text: "hello", Font: "Helvetica"}},
		{"negative size", Block{Text: "hello", Font: "Helvetica", Size: -4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(DefaultConfig(), []Block{tt.block})
			if !apperr.Is(err, apperr.KindInvalidContent) {
				t.Fatalf("err = %v, want invalid content", err)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b int
	}{
		{"#005A9C", 0, 90, 156},
		{"#FFFFFF", 255, 255, 255},
		{"", 0, 0, 0},
		{"005A9C", 0, 0, 0},
		{"#GGGGGG", 0, 0, 0},
	}
	for _, tt := range tests {
		r, g, b := parseHexColor(tt.in)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("parseHexColor(%q) = %d,%d,%d, want %d,%d,%d", tt.in, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}
