package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/securify-app/securify-backend/internal/entity"
	"github.com/securify-app/securify-backend/internal/model/request"
	"github.com/securify-app/securify-backend/internal/model/response/wrapper"
	"github.com/securify-app/securify-backend/internal/service/user"
	"github.com/securify-app/securify-backend/pkg/utils"
)

type UserHandler struct {
	srv *user.UserService
}

func NewUserHandler(srv *user.UserService) *UserHandler {
	return &UserHandler{srv: srv}
}

// CreateUser godoc
// @Summary Create user
// @Description Register an admin user for a proxy
// @Tags users
// @Accept json
// @Produce json
// @Param user body request.CreateUser true "User object"
// @Success 201 {object} wrapper.ResponseWrapper{data=response.User}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /user/add [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var userRequest request.CreateUser
	if err := c.ShouldBindJSON(&userRequest); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	created, err := h.srv.CreateUser(c.Request.Context(), &userRequest)
	if err != nil {
		if errors.Is(err, entity.ErrStoreUnavailable) {
			c.JSON(http.StatusServiceUnavailable, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
			return
		}
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusCreated, wrapper.ResponseWrapper{Data: created, Success: true})
}

// GetUser godoc
// @Summary Get user
// @Description Get a user and the proxy it administers
// @Tags users
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} wrapper.ResponseWrapper{data=response.User}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 404 {object} wrapper.ErrorWrapper
// @Router /user/{userID} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := utils.ParseUUID(c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid UUID format", Success: false})
		return
	}

	found, err := h.srv.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{Message: "User not found", Success: false})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: found, Success: true})
}
