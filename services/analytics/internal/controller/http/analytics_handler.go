package http

import (
	"net/http"

	"content-analytics/pkg/logger"
	"content-analytics/services/analytics/internal/usecase"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Internal server error"

type AnalyticsHandler struct {
	analyticsUseCase usecase.AnalyticsUseCase
	logger           *logger.Logger
}

func NewAnalyticsHandler(analyticsUseCase usecase.AnalyticsUseCase, logger *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUseCase: analyticsUseCase,
		logger:           logger,
	}
}

// Index godoc
// @Summary      Service banner
// @Tags         meta
// @Produce      plain
// @Success      200  {string}  string
// @Router       / [get]
func (h *AnalyticsHandler) Index(c *gin.Context) {
	c.String(http.StatusOK, "Data Analytics API")
}

// GetEngagementTrend godoc
// @Summary      Engagement trend
// @Description  Number of engagements per calendar date, oldest first.
// @Tags         trends
// @Produce      json
// @Success      200  {array}   entity.EngagementTrend
// @Failure      500  {object}  map[string]string
// @Router       /trends/engagement [get]
func (h *AnalyticsHandler) GetEngagementTrend(c *gin.Context) {
	rows, err := h.analyticsUseCase.GetEngagementTrend(c.Request.Context())
	respond(h, c, rows, err)
}

// GetTopAuthors godoc
// @Summary      Top authors
// @Description  Authors ranked by total engagements on their posts. Equal totals are ordered by author id.
// @Tags         analysis
// @Produce      json
// @Success      200  {array}   entity.AuthorEngagement
// @Failure      500  {object}  map[string]string
// @Router       /analysis/top-authors [get]
func (h *AnalyticsHandler) GetTopAuthors(c *gin.Context) {
	rows, err := h.analyticsUseCase.GetTopAuthors(c.Request.Context())
	respond(h, c, rows, err)
}

// GetEngagementPatterns godoc
// @Summary      Engagement patterns
// @Description  Engagements per day of week (0 = Sunday) and hour of day.
// @Tags         analysis
// @Produce      json
// @Success      200  {array}   entity.EngagementPattern
// @Failure      500  {object}  map[string]string
// @Router       /analysis/engagement-patterns [get]
func (h *AnalyticsHandler) GetEngagementPatterns(c *gin.Context) {
	rows, err := h.analyticsUseCase.GetEngagementPatterns(c.Request.Context())
	respond(h, c, rows, err)
}

// GetLowEngagementAuthors godoc
// @Summary      Low engagement authors
// @Description  Post count, engagements and engagements per post for every author, most prolific and least engaging first.
// @Tags         analysis
// @Produce      json
// @Success      200  {array}   entity.AuthorEfficiency
// @Failure      500  {object}  map[string]string
// @Router       /analysis/low-engagement-authors [get]
func (h *AnalyticsHandler) GetLowEngagementAuthors(c *gin.Context) {
	rows, err := h.analyticsUseCase.GetLowEngagementAuthors(c.Request.Context())
	respond(h, c, rows, err)
}

// GetEngagementOverTime godoc
// @Summary      Engagement over time
// @Description  Weekly (Monday start) engagements per author and post category over the last three months.
// @Tags         analysis
// @Produce      json
// @Success      200  {array}   entity.WeeklyAuthorCategory
// @Failure      500  {object}  map[string]string
// @Router       /analysis/engagement-over-time [get]
func (h *AnalyticsHandler) GetEngagementOverTime(c *gin.Context) {
	rows, err := h.analyticsUseCase.GetEngagementOverTime(c.Request.Context())
	respond(h, c, rows, err)
}

func respond[T any](h *AnalyticsHandler, c *gin.Context, rows []*T, err error) {
	if err != nil {
		h.logger.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalErrorMessage})
		return
	}
	if rows == nil {
		rows = []*T{}
	}
	c.JSON(http.StatusOK, rows)
}
