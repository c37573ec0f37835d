package handler

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/hardcoretiff/adspot-wizard/docs"
	"github.com/hardcoretiff/adspot-wizard/internal/dto"
	"github.com/hardcoretiff/adspot-wizard/internal/progress"
	"github.com/hardcoretiff/adspot-wizard/internal/service"
	"github.com/hardcoretiff/adspot-wizard/internal/wizard"
)

type Handler struct {
	onboarding service.Onboarder
	sessions   *wizard.Store
	simulation *progress.Simulation
	tracker    *progress.Tracker
	router     *gin.Engine
	log        *zap.Logger
}

func NewHandler(onboarding service.Onboarder, sessions *wizard.Store, simulation *progress.Simulation, log *zap.Logger) *Handler {
	h := &Handler{
		onboarding: onboarding,
		sessions:   sessions,
		simulation: simulation,
		tracker:    progress.NewTracker(),
		router:     gin.Default(),
		log:        log,
	}

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)
	h.router.POST("/api/onboard", h.onboard)

	sessions := h.router.Group("/api/wizard/sessions")
	sessions.POST("", h.createSession)
	sessions.GET("/:id", h.getSession)
	sessions.PUT("/:id/campaign", h.updateCampaign)
	sessions.POST("/:id/advance", h.advanceSession)
	sessions.POST("/:id/back", h.backSession)
	sessions.POST("/:id/submit", h.submitSession)
	sessions.GET("/:id/progress", h.getProgress)

	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// onboard handles POST /api/onboard
// @Summary Run the full onboarding workflow
// @Description Provision a workspace, upload brand assets, create the owner contact and store the campaign record on the external platform
// @Tags onboarding
// @Accept json
// @Produce json
// @Param request body dto.OnboardRequest true "Accumulated wizard data"
// @Success 200 {object} dto.OnboardResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/onboard [post]
func (h *Handler) onboard(c *gin.Context) {
	var req dto.OnboardRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid onboard request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.onboarding.Onboard(c.Request.Context(), req.UserData, &req.CampaignData)
	if err != nil {
		h.fail(c, req.UserData.Email, err)
		return
	}

	h.log.Info("Onboarding completed",
		zap.String("location_id", result.LocationID),
		zap.String("email", req.UserData.Email))

	c.JSON(http.StatusOK, dto.OnboardResponse{
		Success:    true,
		LocationID: result.LocationID,
	})
}

// createSession handles POST /api/wizard/sessions
// @Summary Start a wizard session
// @Description Create a transient wizard session with fresh tracking identifiers
// @Tags wizard
// @Produce json
// @Success 201 {object} dto.SessionResponse
// @Router /api/wizard/sessions [post]
func (h *Handler) createSession(c *gin.Context) {
	session := h.sessions.Create()

	h.log.Info("Wizard session created",
		zap.String("session_id", session.ID))

	c.JSON(http.StatusCreated, sessionResponse(session))
}

// getSession handles GET /api/wizard/sessions/:id
// @Summary Get a wizard session
// @Tags wizard
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/wizard/sessions/{id} [get]
func (h *Handler) getSession(c *gin.Context) {
	session, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "session not found"})
		return
	}

	c.JSON(http.StatusOK, sessionResponse(session))
}

// updateCampaign handles PUT /api/wizard/sessions/:id/campaign
// @Summary Update the accumulated campaign data
// @Description Replace the session's campaign data. Tracking identifiers are preserved.
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body dto.UpdateCampaignRequest true "Campaign data"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/wizard/sessions/{id}/campaign [put]
func (h *Handler) updateCampaign(c *gin.Context) {
	session, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "session not found"})
		return
	}

	var req dto.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid campaign update",
			zap.String("session_id", session.ID),
			zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	session.UpdateCampaign(req.CampaignData)
	if req.UserData != nil {
		session.User = *req.UserData
	}

	c.JSON(http.StatusOK, sessionResponse(session))
}

// advanceSession handles POST /api/wizard/sessions/:id/advance
// @Summary Move the session to the next step
// @Tags wizard
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/wizard/sessions/{id}/advance [post]
func (h *Handler) advanceSession(c *gin.Context) {
	session, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "session not found"})
		return
	}

	session.Advance()
	c.JSON(http.StatusOK, sessionResponse(session))
}

// backSession handles POST /api/wizard/sessions/:id/back
// @Summary Move the session to the previous step
// @Tags wizard
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/wizard/sessions/{id}/back [post]
func (h *Handler) backSession(c *gin.Context) {
	session, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "session not found"})
		return
	}

	session.Back()
	c.JSON(http.StatusOK, sessionResponse(session))
}

// submitSession handles POST /api/wizard/sessions/:id/submit
// @Summary Submit a wizard session
// @Description Finalize the plan selection and run the provisioning chain. The visual progress simulation and the real workflow run as two independent tasks and both must settle before the response is sent.
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body dto.SubmitSessionRequest true "Plan selection and owner details"
// @Success 200 {object} dto.OnboardResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/wizard/sessions/{id}/submit [post]
func (h *Handler) submitSession(c *gin.Context) {
	session, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "session not found"})
		return
	}

	var req dto.SubmitSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid submit request",
			zap.String("session_id", session.ID),
			zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if !req.SubscriptionTier.Valid() {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: service.ErrInvalidTier.Error()})
		return
	}

	session.Finalize(req.SubscriptionTier, req.BillingCycle, req.UserData)

	h.tracker.Reset()
	hasLogo := session.Campaign.Brand.LogoURL != ""

	// The overlay simulation and the real workflow are independent tasks;
	// both must settle before success is declared.
	var (
		wg     sync.WaitGroup
		result *service.Result
		runErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		h.simulation.Run(c.Request.Context(), hasLogo, h.tracker.Update)
	}()
	go func() {
		defer wg.Done()
		result, runErr = h.onboarding.Onboard(c.Request.Context(), session.User, &session.Campaign)
	}()
	wg.Wait()

	if runErr != nil {
		h.fail(c, session.User.Email, runErr)
		return
	}

	h.sessions.Delete(session.ID)

	h.log.Info("Wizard session submitted",
		zap.String("session_id", session.ID),
		zap.String("location_id", result.LocationID))

	c.JSON(http.StatusOK, dto.OnboardResponse{
		Success:    true,
		LocationID: result.LocationID,
	})
}

// getProgress handles GET /api/wizard/sessions/:id/progress
// @Summary Get the processing overlay step statuses
// @Tags wizard
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} dto.ProgressResponse
// @Router /api/wizard/sessions/{id}/progress [get]
func (h *Handler) getProgress(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ProgressResponse{Steps: h.tracker.Snapshot()})
}

// fail maps an onboarding error onto the wire contract: an invalid tier is
// the caller's fault, everything else surfaces as a 500 with the original
// message.
func (h *Handler) fail(c *gin.Context, email string, err error) {
	if errors.Is(err, service.ErrInvalidTier) {
		h.log.Warn("Onboarding rejected",
			zap.String("email", email),
			zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	h.log.Error("Onboarding failed",
		zap.String("email", email),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
}

func sessionResponse(s *wizard.Session) dto.SessionResponse {
	return dto.SessionResponse{
		SessionID:    s.ID,
		CurrentStep:  s.CurrentStep,
		StepName:     s.StepName(),
		CampaignData: s.Campaign,
		UserData:     s.User,
	}
}
