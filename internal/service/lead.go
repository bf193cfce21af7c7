package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalystvc/lead-capture-service/internal/domain"
	"github.com/katalystvc/lead-capture-service/internal/dto"
	"github.com/katalystvc/lead-capture-service/internal/mailer"
	"github.com/katalystvc/lead-capture-service/internal/repository"
)

// LeadService coordinates the intake pipeline: persist the lead, then
// dispatch the notification emails best-effort.
type LeadService struct {
	repository repository.LeadRepository
	mailer     mailer.Mailer
	storeFile  string
	log        *zap.Logger
}

// NewLeadService creates a new lead service. A nil mailer disables
// notification emails entirely; no send is attempted.
func NewLeadService(repo repository.LeadRepository, m mailer.Mailer, storeFile string, log *zap.Logger) *LeadService {
	return &LeadService{
		repository: repo,
		mailer:     m,
		storeFile:  storeFile,
		log:        log,
	}
}

// SubmitLead persists a validated submission and, when a mailer is
// configured, sends the confirmation and internal alert emails. Email
// outcomes are logged only; the response depends solely on the append.
func (s *LeadService) SubmitLead(req *dto.SubmitLeadRequest) (*dto.SubmitLeadResponse, error) {
	ctx := context.Background()

	lead := &domain.Lead{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Company:     req.Company,
		Role:        req.Role,
		Phone:       req.Phone,
		Topic:       req.Topic,
		Notes:       req.Notes,
		Consent:     *req.Consent,
		SourcePage:  req.SourcePage,
		UTMSource:   req.UTMSource,
		UTMMedium:   req.UTMMedium,
		UTMCampaign: req.UTMCampaign,
		UTMTerm:     req.UTMTerm,
		UTMContent:  req.UTMContent,
	}

	id, err := s.repository.Insert(ctx, lead)
	if err != nil {
		return nil, fmt.Errorf("failed to store lead: %w", err)
	}

	if s.mailer != nil {
		userSent, internalSent := s.mailer.SendBoth(lead)
		s.log.Info("Notification emails dispatched",
			zap.Int64("lead_id", id),
			zap.Bool("user_sent", userSent),
			zap.Bool("internal_sent", internalSent))
	} else {
		s.log.Info("Email credentials not configured, skipping notifications",
			zap.Int64("lead_id", id))
	}

	return &dto.SubmitLeadResponse{
		Message:   "Lead submitted successfully",
		LeadID:    id,
		Timestamp: lead.SubmissionTime,
	}, nil
}

// ListLeads returns every stored lead.
func (s *LeadService) ListLeads() ([]domain.Lead, error) {
	leads, err := s.repository.ListAll(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	return leads, nil
}

// Stats reports the current lead count. A store that has not been created
// yet reports zero rather than an error.
func (s *LeadService) Stats() (*dto.StatsResponse, error) {
	if !s.repository.Exists() {
		return &dto.StatsResponse{
			TotalLeads:  0,
			StoreExists: false,
			StoreFile:   s.storeFile,
		}, nil
	}

	count, err := s.repository.Count(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}

	return &dto.StatsResponse{
		TotalLeads:  count,
		StoreExists: true,
		StoreFile:   s.storeFile,
	}, nil
}

// StoreExists reports whether the backing store file has been created.
func (s *LeadService) StoreExists() bool {
	return s.repository.Exists()
}
