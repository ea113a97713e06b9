package activity

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/securify-app/securify-backend/internal/entity"
	"github.com/securify-app/securify-backend/internal/model/response/wrapper"
	service "github.com/securify-app/securify-backend/internal/service/activity"
	"github.com/securify-app/securify-backend/pkg/utils"
)

type ActivityHandler struct {
	service service.ActivityService
}

func NewActivityHandler(service service.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// GetRecent godoc
// @Summary      Get recent domain requests
// @Description  Get activities looking backwards from startDate, newest first
// @Tags         activity
// @Accept       json
// @Produce      json
// @Param        userID      path      string  true   "Admin user ID"
// @Param        startDate   query     string  true   "Newer bound (epoch ms or RFC3339), inclusive"
// @Param        endDate     query     string  false  "Older bound (epoch ms or RFC3339), inclusive"
// @Param        limit       query     int     false  "Max activities to return"
// @Param        categories  query     string  false  "Comma-separated category filter"
// @Success      200  {object}  wrapper.ResponseWrapper{data=entity.RecentActivitiesResponse}
// @Failure      400  {object}  wrapper.ErrorWrapper
// @Failure      404  {object}  wrapper.ErrorWrapper
// @Failure      503  {object}  wrapper.ErrorWrapper
// @Router       /activity/recent/{userID} [get]
func (h *ActivityHandler) GetRecent(c *gin.Context) {
	userID, err := utils.ParseUUID(c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid UUID format", Success: false})
		return
	}

	var filter entity.RecentFilter

	startDateStr := c.Query("startDate")
	if startDateStr == "" {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "startDate is required", Success: false})
		return
	}
	startDate, err := utils.ParseTimestamp(startDateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}
	filter.StartDate = startDate

	if endDateStr := c.Query("endDate"); endDateStr != "" {
		endDate, err := utils.ParseTimestamp(endDateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
			return
		}
		filter.EndDate = &endDate
	}

	limit, ok := parseOptionalLimit(c)
	if !ok {
		return
	}
	filter.Limit = limit
	filter.Categories = parseCategories(c)

	recent, err := h.service.Recent(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: recent, Success: true})
}

// GetAllTimeMostRequested godoc
// @Summary      Get all-time most requested domains
// @Description  Rank a proxy's domains by lifetime access count
// @Tags         activity
// @Accept       json
// @Produce      json
// @Param        userID      path      string  true   "Admin user ID"
// @Param        limit       query     int     true   "Max domains to return"
// @Param        categories  query     string  false  "Comma-separated category filter"
// @Success      200  {object}  wrapper.ResponseWrapper{data=[]entity.Domain}
// @Failure      400  {object}  wrapper.ErrorWrapper
// @Failure      404  {object}  wrapper.ErrorWrapper
// @Failure      503  {object}  wrapper.ErrorWrapper
// @Router       /activity/allTimeMostRequested/{userID} [get]
func (h *ActivityHandler) GetAllTimeMostRequested(c *gin.Context) {
	userID, err := utils.ParseUUID(c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid UUID format", Success: false})
		return
	}

	limitStr := c.Query("limit")
	if limitStr == "" {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "limit is required", Success: false})
		return
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid limit value", Success: false})
		return
	}

	domains, err := h.service.AllTimeMostRequested(c.Request.Context(), userID, limit, parseCategories(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: gin.H{"domains": domains}, Success: true})
}

// GetMostRequested godoc
// @Summary      Get most requested domains in a window
// @Description  Aggregate activities between endDate and startDate and rank domains by request count
// @Tags         activity
// @Accept       json
// @Produce      json
// @Param        userID      path      string  true   "Admin user ID"
// @Param        startDate   query     string  true   "Newer bound (epoch ms or RFC3339), inclusive"
// @Param        endDate     query     string  true   "Older bound (epoch ms or RFC3339), inclusive"
// @Param        limit       query     int     false  "Max domains to return"
// @Param        categories  query     string  false  "Comma-separated category filter"
// @Success      200  {object}  wrapper.ResponseWrapper{data=[]entity.DomainRequestCount}
// @Failure      400  {object}  wrapper.ErrorWrapper
// @Failure      404  {object}  wrapper.ErrorWrapper
// @Failure      503  {object}  wrapper.ErrorWrapper
// @Router       /activity/mostRequested/{userID} [get]
func (h *ActivityHandler) GetMostRequested(c *gin.Context) {
	userID, err := utils.ParseUUID(c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid UUID format", Success: false})
		return
	}

	var filter entity.MostRequestedFilter

	startDateStr := c.Query("startDate")
	endDateStr := c.Query("endDate")
	if startDateStr == "" || endDateStr == "" {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "startDate and endDate are required", Success: false})
		return
	}

	startDate, err := utils.ParseTimestamp(startDateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}
	endDate, err := utils.ParseTimestamp(endDateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}
	filter.StartDate = startDate
	filter.EndDate = endDate

	limit, ok := parseOptionalLimit(c)
	if !ok {
		return
	}
	filter.Limit = limit
	filter.Categories = parseCategories(c)

	ranked, err := h.service.MostRequested(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: ranked, Success: true})
}

// LogActivity godoc
// @Summary      Log a domain access
// @Description  Record a domain request for a proxy and append the activity row
// @Tags         activity
// @Accept       json
// @Produce      json
// @Param        proxyID   path      string                     true  "Proxy ID"
// @Param        activity  body      entity.LogActivityRequest  true  "Access event"
// @Success      202  {object}  wrapper.SuccessWrapper
// @Failure      400  {object}  wrapper.ErrorWrapper
// @Failure      503  {object}  wrapper.ErrorWrapper
// @Router       /activity/log/{proxyID} [post]
func (h *ActivityHandler) LogActivity(c *gin.Context) {
	proxyID, err := utils.ParseUUID(c.Param("proxyID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid UUID format", Success: false})
		return
	}

	var req entity.LogActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid request body: " + err.Error(), Success: false})
		return
	}

	if _, err := h.service.Log(c.Request.Context(), proxyID, req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, wrapper.SuccessWrapper{Message: "Activity logged", Success: true})
}

func parseCategories(c *gin.Context) []string {
	raw := c.Query("categories")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

// parseOptionalLimit reports false after writing the error response.
func parseOptionalLimit(c *gin.Context) (*int, bool) {
	limitStr := c.Query("limit")
	if limitStr == "" {
		return nil, true
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid limit value", Success: false})
		return nil, false
	}
	return &limit, true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrInvalidCategory),
		errors.Is(err, entity.ErrInvalidRange),
		errors.Is(err, entity.ErrInvalidLimit):
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
	case errors.Is(err, entity.ErrUserNotFound),
		errors.Is(err, entity.ErrActivitiesNotFound),
		errors.Is(err, entity.ErrDomainsNotFound):
		c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
	case errors.Is(err, entity.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
	default:
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
	}
}
