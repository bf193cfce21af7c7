package domain

// Lead represents a captured lead as it is persisted by a repository
type Lead struct {
	ID             int64  `db:"id" json:"id"`
	FirstName      string `db:"first_name" json:"first_name"`
	LastName       string `db:"last_name" json:"last_name"`
	Email          string `db:"email" json:"email"`
	Company        string `db:"company" json:"company,omitempty"`
	Role           string `db:"role" json:"role,omitempty"`
	Phone          string `db:"phone" json:"phone,omitempty"`
	Topic          string `db:"topic" json:"topic"`
	Notes          string `db:"notes" json:"notes,omitempty"`
	Consent        bool   `db:"consent" json:"consent"`
	SourcePage     string `db:"source_page" json:"source_page,omitempty"`
	UTMSource      string `db:"utm_source" json:"utm_source,omitempty"`
	UTMMedium      string `db:"utm_medium" json:"utm_medium,omitempty"`
	UTMCampaign    string `db:"utm_campaign" json:"utm_campaign,omitempty"`
	UTMTerm        string `db:"utm_term" json:"utm_term,omitempty"`
	UTMContent     string `db:"utm_content" json:"utm_content,omitempty"`
	SubmissionTime string `db:"submission_time" json:"submission_time"`
}
