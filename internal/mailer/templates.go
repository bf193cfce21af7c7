package mailer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/katalystvc/lead-capture-service/internal/domain"
)

// Display names for the topic codes offered on the website form. Unknown
// codes fall back to the raw string.
var topicLabels = map[string]string{
	"infra": "AI-Ready Infrastructure Audit",
	"fhir":  "FHIR/TEFCA 90-Day Sprint",
}

const confirmationSubject = "Your KatalystVC Inquiry Has Been Received - What's Next?"

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`Dear {{.FirstName}},

Thank you for reaching out to KatalystVC. We've successfully received your inquiry regarding {{.TopicDisplay}}.

We appreciate your interest in our specialized technical consulting services. Our team is currently reviewing your submission and will get back to you within 24-48 business hours to schedule your 20-minute diagnostic session.

In the meantime, you can access your requested marketing brief here:
{{.DownloadLink}}

We look forward to connecting with you and exploring how KatalystVC can help you achieve your technical objectives with tight, efficient, and smart solutions.

Best regards,

The KatalystVC Team
support@katalystvc.com`))

var internalTmpl = template.Must(template.New("internal").Parse(`Hello Team,

A new lead has been submitted via the KatalystVC website. Please find the details below:

**Lead Information:**
• Name: {{.FirstName}} {{.LastName}}
• Email: {{.Email}}
• Company: {{.Company}}
• Role: {{.Role}}
• Phone: {{.Phone}}
• Topic of Interest: {{.Topic}}
• Notes/Message: {{.Notes}}
• Consent to Contact: {{.Consent}}

**Tracking Information:**
• Submission Date: {{.SubmissionTime}}
• Source Page: {{.SourcePage}}
• UTM Source: {{.UTMSource}}
• UTM Medium: {{.UTMMedium}}
• UTM Campaign: {{.UTMCampaign}}
• UTM Term: {{.UTMTerm}}
• UTM Content: {{.UTMContent}}

**Action Required:**
• Follow up with the lead within 24-48 business hours.
• Lead ID in database: {{.ID}}

Best regards,

KatalystVC Automated System`))

// TopicDisplay maps a topic code to its human-readable label.
func TopicDisplay(topic string) string {
	if label, ok := topicLabels[topic]; ok {
		return label
	}
	return topic
}

type confirmationData struct {
	FirstName    string
	TopicDisplay string
	DownloadLink string
}

func renderConfirmation(lead *domain.Lead, baseURL string) (subject, body string, err error) {
	data := confirmationData{
		FirstName:    lead.FirstName,
		TopicDisplay: TopicDisplay(lead.Topic),
		DownloadLink: fmt.Sprintf("%s/downloads/%s-brief.html", baseURL, lead.Topic),
	}

	var b strings.Builder
	if err := confirmationTmpl.Execute(&b, data); err != nil {
		return "", "", fmt.Errorf("failed to render confirmation email: %w", err)
	}

	return confirmationSubject, b.String(), nil
}

type internalData struct {
	ID             int64
	FirstName      string
	LastName       string
	Email          string
	Company        string
	Role           string
	Phone          string
	Topic          string
	Notes          string
	Consent        string
	SubmissionTime string
	SourcePage     string
	UTMSource      string
	UTMMedium      string
	UTMCampaign    string
	UTMTerm        string
	UTMContent     string
}

func renderInternal(lead *domain.Lead) (subject, body string, err error) {
	subject = fmt.Sprintf("NEW KatalystVC Lead: %s %s - %s",
		lead.FirstName, lead.LastName, lead.Topic)

	consent := "No"
	if lead.Consent {
		consent = "Yes"
	}

	data := internalData{
		ID:             lead.ID,
		FirstName:      lead.FirstName,
		LastName:       lead.LastName,
		Email:          lead.Email,
		Company:        orNA(lead.Company),
		Role:           orNA(lead.Role),
		Phone:          orNA(lead.Phone),
		Topic:          lead.Topic,
		Notes:          orNA(lead.Notes),
		Consent:        consent,
		SubmissionTime: lead.SubmissionTime,
		SourcePage:     orNA(lead.SourcePage),
		UTMSource:      orNA(lead.UTMSource),
		UTMMedium:      orNA(lead.UTMMedium),
		UTMCampaign:    orNA(lead.UTMCampaign),
		UTMTerm:        orNA(lead.UTMTerm),
		UTMContent:     orNA(lead.UTMContent),
	}

	var b strings.Builder
	if err := internalTmpl.Execute(&b, data); err != nil {
		return "", "", fmt.Errorf("failed to render internal email: %w", err)
	}

	return subject, b.String(), nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
