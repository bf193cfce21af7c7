package dto

// SubmitLeadRequest represents a lead submission from the website form.
// Consent is a pointer so that an explicit false still satisfies the
// required binding; only a missing field is rejected.
type SubmitLeadRequest struct {
	FirstName   string `json:"firstName" binding:"required" example:"Ada"`
	LastName    string `json:"lastName" binding:"required" example:"Lovelace"`
	Email       string `json:"email" binding:"required" example:"ada@example.com"`
	Topic       string `json:"topic" binding:"required" example:"infra"`
	Consent     *bool  `json:"consent" binding:"required" example:"true"`
	Company     string `json:"company" example:"Analytical Engines Ltd"`
	Role        string `json:"role" example:"CTO"`
	Phone       string `json:"phone" example:"+1-555-0100"`
	Notes       string `json:"notes" example:"Interested in an infrastructure audit"`
	SourcePage  string `json:"sourcePage" example:"/services/infra"`
	UTMSource   string `json:"utmSource" example:"google"`
	UTMMedium   string `json:"utmMedium" example:"cpc"`
	UTMCampaign string `json:"utmCampaign" example:"q3_launch"`
	UTMTerm     string `json:"utmTerm" example:"ai+infrastructure"`
	UTMContent  string `json:"utmContent" example:"ad_variant_b"`
}
