package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"missing required fields"`
}

// SubmitLeadResponse represents a successful lead submission response
type SubmitLeadResponse struct {
	Message   string `json:"message" example:"Lead submitted successfully"`
	LeadID    int64  `json:"lead_id" example:"42"`
	Timestamp string `json:"timestamp" example:"2026-08-30T14:02:11Z"`
}

// StatsResponse represents the lead store statistics response
type StatsResponse struct {
	TotalLeads  int64  `json:"total_leads" example:"42"`
	StoreExists bool   `json:"store_exists" example:"true"`
	StoreFile   string `json:"store_file,omitempty" example:"katalystvc_leads.xlsx"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status      string `json:"status" example:"healthy"`
	Timestamp   string `json:"timestamp" example:"2026-08-30T14:02:11Z"`
	StoreExists bool   `json:"store_exists" example:"true"`
}
