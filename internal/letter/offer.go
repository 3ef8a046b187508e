package letter

import (
	"fmt"
	"time"

	"github.com/phoneix12356/RenuHealthCare/internal/apperr"
	"github.com/phoneix12356/RenuHealthCare/internal/pdf"
)

// Generator renders the two fixed-format internship documents for one
// organization.
type Generator struct {
	company Company
}

func NewGenerator(company Company) *Generator {
	return &Generator{company: company}
}

// GenerateOfferLetter composes the offer-letter template around the
// candidate fields and renders it. Pure: no network, no persistence.
func (g *Generator) GenerateOfferLetter(c Candidate) (*Artifact, error) {
	if c.Name == "" {
		return nil, apperr.MissingField("name")
	}
	if c.Email == "" {
		return nil, apperr.MissingField("email")
	}
	tenure := c.Tenure
	if tenure <= 0 {
		tenure = 1
	}

	s := templateStyle()
	blocks := []pdf.Block{
		{Text: g.company.Name, Font: s.font, Style: pdf.StyleBold, Size: s.title, Color: s.primary, Align: pdf.AlignCenter},
		{Text: "Date: " + time.Now().Format(DateLayout), Font: s.font, Size: s.body, Color: s.text, Align: pdf.AlignRight, SpaceBefore: s.body},
		{Text: "Online Internship Offer", Font: s.font, Style: pdf.StyleBold, Size: s.subtitle, Color: s.text, Align: pdf.AlignCenter, SpaceBefore: s.subtitle},
		{Text: fmt.Sprintf("Congratulations, %s!", c.Name), Font: s.font, Size: s.body, Color: s.text, SpaceBefore: s.body},
		{Text: g.mainContent(c, tenure), Font: s.font, Size: s.body, Color: s.text, LineGap: 5, SpaceBefore: s.body},
		{Text: "Learning Objectives:", Font: s.font, Style: pdf.StyleBold, Size: s.body, Color: s.text, SpaceBefore: s.body},
		{Text: learningObjectives, Font: s.font, Size: s.body, Color: s.text, LineGap: 3},
		{Text: "Internship Expectations:", Font: s.font, Style: pdf.StyleBold, Size: s.body, Color: s.text, SpaceBefore: s.body},
		{Text: internshipExpectations, Font: s.font, Size: s.body, Color: s.text, LineGap: 3},
		{Text: "Next Steps:", Font: s.font, Style: pdf.StyleBold, Size: s.body, Color: s.text, SpaceBefore: s.body},
		{Text: closingContent, Font: s.font, Size: s.body, Color: s.text, LineGap: 3},
		{Text: g.legalDisclaimer(), Font: s.font, Style: pdf.StyleItalic, Size: s.small, Color: s.text, LineGap: 2, SpaceBefore: s.body},
		{Text: finalMessage, Font: s.font, Style: pdf.StyleBold, Size: s.small, Color: s.secondary, Align: pdf.AlignCenter, LineGap: 3, SpaceBefore: s.body},
	}
	blocks = append(blocks, footerBlocks(g.company, s)...)

	data, err := pdf.Render(pdf.DefaultConfig(), blocks)
	if err != nil {
		return nil, err
	}
	return &Artifact{
		FileName: c.Name + "_internship_offer.pdf",
		Data:     data,
	}, nil
}

func (g *Generator) mainContent(c Candidate, tenure int) string {
	return fmt.Sprintf(`We are excited to extend an official online internship offer to you at %s.

After a thorough review of your application and impressive qualifications, we are delighted to welcome you to our virtual internship program. Your exceptional academic background and demonstrated skills perfectly align with our organizational mission of healthcare education and innovation.

Internship Details:
• department: %s
• Start Date: %s
• End Date: %s
• Duration: %d months
• Internship Type: 100%% Remote/Online

Key Learning Opportunities:
• Comprehensive project-based learning
• Direct mentorship from industry experts
• Exposure to real-world healthcare education challenges
• Opportunity to contribute to meaningful research and initiatives
• Professional skill development workshops
• Certificate of completion upon successful internship

This offer is contingent upon:
1. Submission of required academic and personal documents
2. Completion of a virtual orientation session
3. Adherence to our internship code of conduct
4. Maintaining satisfactory academic performance
5. Signing the internship agreement`,
		g.company.Name,
		c.DepartmentName,
		c.StartDate.Format(DateLayout),
		c.EndDate.Format(DateLayout),
		tenure,
	)
}

func (g *Generator) legalDisclaimer() string {
	return fmt.Sprintf("This internship offer is made in good faith and is subject to the terms outlined in the internship agreement. %s reserves the right to modify or withdraw the offer if any information is found to be incorrect or misrepresented.", g.company.Name)
}

const learningObjectives = `During this internship, you will:
• Gain hands-on experience in your field of study
• Develop professional skills relevant to healthcare education
• Work on innovative projects
• Build a strong professional network
• Create a portfolio of impactful work
• Receive guidance from experienced mentors`

const internshipExpectations = `Internship Expectations:
• Commitment to 15-20 hours per week
• Participation in weekly virtual team meetings
• Timely completion of assigned projects
• Maintain professional communication
• Submit weekly progress reports
• Engage in continuous learning and skill development`

const closingContent = `To accept this internship offer, please:
1. Review the attached internship agreement
2. Complete the online onboarding form within 5 business days
3. Submit required documents electronically
4. Confirm your participation via email
5. Attend the mandatory virtual orientation

Our internship coordination team is available to address any questions or concerns. We recommend scheduling a virtual information session to discuss your internship journey.`

const finalMessage = "We are thrilled to support your professional growth and look forward to your contributions to healthcare education. This is the beginning of an exciting learning journey!"
