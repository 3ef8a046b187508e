package letter

import (
	"fmt"

	"github.com/phoneix12356/RenuHealthCare/internal/apperr"
	"github.com/phoneix12356/RenuHealthCare/internal/pdf"
)

// GenerateCertificate composes the internship-completion certificate and
// renders it. Pure: no network, no persistence.
func (g *Generator) GenerateCertificate(c Candidate) (*Artifact, error) {
	if c.Name == "" {
		return nil, apperr.MissingField("name")
	}
	if c.DepartmentName == "" {
		return nil, apperr.MissingField("departmentName")
	}

	s := templateStyle()
	blocks := []pdf.Block{
		{Text: "Internship Completion Certificate", Font: s.font, Style: pdf.StyleBold, Size: 28, Color: s.primary, Align: pdf.AlignCenter},
		{Text: g.certificateBody(c), Font: s.font, Size: s.body, Color: s.text, Align: pdf.AlignJustify, LineGap: 5, SpaceBefore: 2 * s.body},
		{Text: "Issued by " + g.company.Name, Font: s.font, Style: pdf.StyleBold, Size: s.subtitle, Color: s.secondary, Align: pdf.AlignCenter, SpaceBefore: 2 * s.body},
	}
	blocks = append(blocks, footerBlocks(g.company, s)...)

	data, err := pdf.Render(pdf.DefaultConfig(), blocks)
	if err != nil {
		return nil, err
	}
	return &Artifact{
		FileName: c.Name + "_completion_certificate.pdf",
		Data:     data,
	}, nil
}

func (g *Generator) certificateBody(c Candidate) string {
	return fmt.Sprintf(`This is to certify that %s has successfully completed their internship in the %s department at %s from %s to %s.

During this internship, they demonstrated exceptional dedication and professionalism, contributing significantly to the projects and learning opportunities offered. Their efforts and accomplishments have been an integral part of our organization's goals.

We wish %s all the best for their future endeavors and look forward to witnessing their continued success.`,
		c.Name,
		c.DepartmentName,
		g.company.Name,
		c.StartDate.Format(DateLayout),
		c.EndDate.Format(DateLayout),
		c.Name,
	)
}
