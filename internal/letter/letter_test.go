package letter

import (
	"bytes"
	"testing"
	"time"

	"github.com/phoneix12356/RenuHealthCare/internal/apperr"
)

func testCandidate() Candidate {
	return Candidate{
		Name:           "Asha Verma",
		Email:          "asha@example.com",
		DepartmentName: "Human Resources",
		StartDate:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC),
		Tenure:         3,
	}
}

func TestGenerateOfferLetter(t *testing.T) {
	g := NewGenerator(DefaultCompany())
	art, err := g.GenerateOfferLetter(testCandidate())
	if err != nil {
		t.Fatalf("GenerateOfferLetter: %v", err)
	}
	if art.FileName != "Asha Verma_internship_offer.pdf" {
		t.Errorf("FileName = %q", art.FileName)
	}
	if !bytes.HasPrefix(art.Data, []byte("%PDF")) {
		t.Fatalf("artifact is not a PDF")
	}
	// Bullet detail lines are shorter than the text width, so these
	// fields stay contiguous in the uncompressed stream.
	for _, field := range []string{
		"Congratulations, Asha Verma!",
		"department: Human Resources",
		"Start Date: 02/03/2026",
		"End Date: 02/06/2026",
		"Duration: 3 months",
		"Renu Sharma",
	} {
		if !bytes.Contains(art.Data, []byte(field)) {
			t.Errorf("offer letter missing %q", field)
		}
	}
}

func TestGenerateOfferLetterDefaultTenure(t *testing.T) {
	g := NewGenerator(DefaultCompany())
	c := testCandidate()
	c.Tenure = 0
	art, err := g.GenerateOfferLetter(c)
	if err != nil {
		t.Fatalf("GenerateOfferLetter: %v", err)
	}
	if !bytes.Contains(art.Data, []byte("Duration: 1 months")) {
		t.Errorf("zero tenure did not fall back to 1 month")
	}
}

func TestGenerateOfferLetterRequiredFields(t *testing.T) {
	g := NewGenerator(DefaultCompany())

	c := testCandidate()
	c.Name = ""
	if _, err := g.GenerateOfferLetter(c); !apperr.Is(err, apperr.KindMissingField) {
		t.Errorf("missing name: err = %v, want missing field", err)
	}

	c = testCandidate()
	c.Email = ""
	if _, err := g.GenerateOfferLetter(c); !apperr.Is(err, apperr.KindMissingField) {
		t.Errorf("missing email: err = %v, want missing field", err)
	}
}

func TestGenerateCertificate(t *testing.T) {
	g := NewGenerator(DefaultCompany())
	art, err := g.GenerateCertificate(testCandidate())
	if err != nil {
		t.Fatalf("GenerateCertificate: %v", err)
	}
	if art.FileName != "Asha Verma_completion_certificate.pdf" {
		t.Errorf("FileName = %q", art.FileName)
	}
	// Single tokens only: the justified body may wrap between any two
	// words.
	for _, field := range []string{
		"Verma",
		"Resources",
		"Certificate",
		"02/03/2026",
	} {
		if !bytes.Contains(art.Data, []byte(field)) {
			t.Errorf("certificate missing %q", field)
		}
	}
}

func TestGenerateCertificateRequiredFields(t *testing.T) {
	g := NewGenerator(DefaultCompany())

	c := testCandidate()
	c.Name = ""
	if _, err := g.GenerateCertificate(c); !apperr.Is(err, apperr.KindMissingField) {
		t.Errorf("missing name: err = %v, want missing field", err)
	}

	c = testCandidate()
	c.DepartmentName = ""
	if _, err := g.GenerateCertificate(c); !apperr.Is(err, apperr.KindMissingField) {
		t.Errorf("missing department: err = %v, want missing field", err)
	}
}
