package service

import (
	"github.com/katalystvc/lead-capture-service/internal/domain"
	"github.com/katalystvc/lead-capture-service/internal/dto"
)

// LeadServicer defines the interface for lead intake operations
type LeadServicer interface {
	SubmitLead(req *dto.SubmitLeadRequest) (*dto.SubmitLeadResponse, error)
	ListLeads() ([]domain.Lead, error)
	Stats() (*dto.StatsResponse, error)
	StoreExists() bool
}
