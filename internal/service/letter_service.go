package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/phoneix12356/RenuHealthCare/internal/apperr"
	"github.com/phoneix12356/RenuHealthCare/internal/letter"
	"github.com/phoneix12356/RenuHealthCare/internal/models"
)

type letterRecords interface {
	FindByEmail(ctx context.Context, email string) (*models.Letter, error)
	Create(ctx context.Context, l *models.Letter) (string, error)
	SavePDF(ctx context.Context, id primitive.ObjectID, data []byte) error
}

// LetterService generates and persists the two internship documents.
// Generation is idempotent per email: an already-rendered letter is
// never rendered again.
type LetterService struct {
	offers    letterRecords
	certs     letterRecords
	generator *letter.Generator
}

func NewLetterService(offers, certs letterRecords, generator *letter.Generator) *LetterService {
	return &LetterService{offers: offers, certs: certs, generator: generator}
}

// GenerateOfferLetter renders the offer letter for a candidate and
// stores it under their email. Returns the stored record.
func (s *LetterService) GenerateOfferLetter(ctx context.Context, c letter.Candidate) (*models.Letter, error) {
	return s.generate(ctx, s.offers, c, func() (*letter.Artifact, error) {
		return s.generator.GenerateOfferLetter(c)
	}, 1)
}

// GenerateCertificate renders the completion certificate for a candidate
// and stores it under their email.
func (s *LetterService) GenerateCertificate(ctx context.Context, c letter.Candidate) (*models.Letter, error) {
	return s.generate(ctx, s.certs, c, func() (*letter.Artifact, error) {
		return s.generator.GenerateCertificate(c)
	}, c.Tenure)
}

func (s *LetterService) generate(ctx context.Context, records letterRecords, c letter.Candidate, render func() (*letter.Artifact, error), tenure int) (*models.Letter, error) {
	existing, err := records.FindByEmail(ctx, c.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "look up letter", err)
	}
	if existing != nil && len(existing.PDFData) > 0 {
		return existing, nil
	}

	artifact, err := render()
	if err != nil {
		return nil, err
	}

	// A record can exist without bytes when an earlier render failed
	// after the insert; the unique email index forbids a second insert,
	// so attach the PDF to the record that is already there.
	if existing != nil {
		if err := records.SavePDF(ctx, existing.ID, artifact.Data); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "store letter", err)
		}
		existing.PDFData = artifact.Data
		return existing, nil
	}

	if tenure <= 0 {
		tenure = 1
	}
	rec := &models.Letter{
		Name:           c.Name,
		Email:          c.Email,
		DepartmentName: c.DepartmentName,
		Tenure:         tenure,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		PDFData:        artifact.Data,
	}
	if _, err := records.Create(ctx, rec); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "store letter", err)
	}
	return rec, nil
}

// Download streams a previously generated letter.
type LetterDownload struct {
	FileName string
	Data     []byte
}

func (s *LetterService) DownloadOfferLetter(ctx context.Context, email string) (*LetterDownload, error) {
	return s.download(ctx, s.offers, email, "_Offer_Letter.pdf", "Offer letter")
}

func (s *LetterService) DownloadCertificate(ctx context.Context, email string) (*LetterDownload, error) {
	return s.download(ctx, s.certs, email, "_Internship_Completion_Certificate.pdf", "ICC")
}

func (s *LetterService) download(ctx context.Context, records letterRecords, email, suffix, what string) (*LetterDownload, error) {
	rec, err := records.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "look up letter", err)
	}
	if rec == nil || len(rec.PDFData) == 0 {
		return nil, apperr.NotFound(what)
	}
	return &LetterDownload{FileName: rec.Name + suffix, Data: rec.PDFData}, nil
}
