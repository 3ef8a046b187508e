// Package letter composes the internship offer letter and the
// completion certificate and renders them to PDF.
package letter

import (
	"time"

	"github.com/phoneix12356/RenuHealthCare/internal/pdf"
)

// Company identity printed on every generated document.
type Company struct {
	Name          string
	Address       string
	ContactNumber string
	Email         string
	Website       string
}

func DefaultCompany() Company {
	return Company{
		Name:          "Renu Sharma Healthcare Education & Foundation",
		Address:       "VPO Baspadmka, Teh Pataudi, Dist Gurugram (HR), Pin 122503",
		ContactNumber: "9671457366",
		Email:         "Neha.rshefoundation@gmail.com",
		Website:       "www.rshefoundation.org",
	}
}

// Candidate carries the fields substituted into the templates.
type Candidate struct {
	Name           string
	Email          string
	DepartmentName string
	StartDate      time.Time
	EndDate        time.Time
	Tenure         int // months
}

// Artifact is a finished document: the rendered bytes plus the file
// name it should be offered under. Immutable once produced.
type Artifact struct {
	FileName string
	Data     []byte
}

// DateLayout is how dates appear in rendered documents.
const DateLayout = "02/01/2006"

// style mirrors the fixed template palette.
type style struct {
	primary   string
	secondary string
	text      string

	font string // style variants come from pdf.Style*

	title    float64
	subtitle float64
	body     float64
	small    float64
}

func templateStyle() style {
	return style{
		primary:   "#005A9C",
		secondary: "#2C7BB6",
		text:      "#333333",
		font:      "Helvetica",
		title:     22,
		subtitle:  16,
		body:      12,
		small:     10,
	}
}

func footerBlocks(c Company, s style) []pdf.Block {
	return []pdf.Block{
		{
			Text:        c.Name + " | " + c.Address,
			Font:        s.font,
			Size:        s.small,
			Color:       s.text,
			Align:       pdf.AlignCenter,
			SpaceBefore: 2 * s.small,
		},
		{
			Text:  "Contact: " + c.ContactNumber + " | Email: " + c.Email,
			Font:  s.font,
			Size:  s.small,
			Color: s.text,
			Align: pdf.AlignCenter,
		},
		{
			Text:    "Website: " + c.Website,
			Font:    s.font,
			Size:    s.small,
			Color:   s.text,
			Align:   pdf.AlignCenter,
			LinkURL: "https://" + c.Website,
		},
	}
}
