package handler

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/katalystvc/lead-capture-service/docs"
	"github.com/katalystvc/lead-capture-service/internal/dto"
	"github.com/katalystvc/lead-capture-service/internal/service"
)

type Handler struct {
	leadService service.LeadServicer
	router      *gin.Engine
	log         *zap.Logger
}

func NewHandler(leadService service.LeadServicer, log *zap.Logger) *Handler {
	h := &Handler{
		leadService: leadService,
		router:      gin.Default(),
		log:         log,
	}

	// The form is served from a static site on another origin.
	h.router.Use(cors.Default())

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)
	h.router.POST("/submit-lead", h.submitLead)
	h.router.GET("/leads", h.getLeads)
	h.router.GET("/stats", h.getStats)
	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheck handles GET /health
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().Format(time.RFC3339),
		StoreExists: h.leadService.StoreExists(),
	})
}

// submitLead handles POST /submit-lead
// @Summary Submit a lead
// @Description Capture a lead submission from the website form
// @Tags leads
// @Accept json
// @Produce json
// @Param lead body dto.SubmitLeadRequest true "Lead data"
// @Success 200 {object} dto.SubmitLeadResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /submit-lead [post]
func (h *Handler) submitLead(c *gin.Context) {
	var req dto.SubmitLeadRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid lead submission",
			zap.Error(err),
			zap.String("email", req.Email))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.leadService.SubmitLead(&req)
	if err != nil {
		h.log.Error("Failed to submit lead",
			zap.Error(err),
			zap.String("email", req.Email),
			zap.String("topic", req.Topic))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	h.log.Info("Lead accepted",
		zap.Int64("lead_id", resp.LeadID),
		zap.String("email", req.Email),
		zap.String("topic", req.Topic))

	c.JSON(http.StatusOK, resp)
}

// getLeads handles GET /leads
// @Summary List all leads
// @Description Retrieve every stored lead (for admin purposes)
// @Tags leads
// @Produce json
// @Success 200 {array} domain.Lead
// @Failure 500 {object} dto.ErrorResponse
// @Router /leads [get]
func (h *Handler) getLeads(c *gin.Context) {
	leads, err := h.leadService.ListLeads()
	if err != nil {
		h.log.Error("Failed to list leads", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, leads)
}

// getStats handles GET /stats
// @Summary Lead statistics
// @Description Report the total number of captured leads
// @Tags stats
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	stats, err := h.leadService.Stats()
	if err != nil {
		h.log.Error("Failed to get stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}
