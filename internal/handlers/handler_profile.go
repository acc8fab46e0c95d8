package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/SscSPs/healthcare_assistant_app/internal/apperrors"
	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
	portssvc "github.com/SscSPs/healthcare_assistant_app/internal/core/ports/services"
	"github.com/SscSPs/healthcare_assistant_app/internal/dto"
	"github.com/SscSPs/healthcare_assistant_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// pictureFormField is the multipart field carrying the uploaded picture.
const pictureFormField = "picture"

var allowedPictureExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

var allowedPictureTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// profileHandler handles the medical profile tab.
type profileHandler struct {
	profiles        portssvc.ProfileSvc
	maxPictureBytes int64
}

func newProfileHandler(profiles portssvc.ProfileSvc, maxPictureBytes int64) *profileHandler {
	return &profileHandler{profiles: profiles, maxPictureBytes: maxPictureBytes}
}

func registerProfileRoutes(rg *gin.RouterGroup, profiles portssvc.ProfileSvc, maxPictureBytes int64) {
	h := newProfileHandler(profiles, maxPictureBytes)

	group := rg.Group("/profile")
	{
		group.GET("", h.get)
		group.PUT("", h.update)
		group.GET("/picture", h.getPicture)
		group.PUT("/picture", h.uploadPicture)
	}
}

// get godoc
// @Summary My medical profile
// @Tags profile
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /profile [get]
func (h *profileHandler) get(c *gin.Context) {
	username, ok := currentUser(c)
	if !ok {
		return
	}
	profile, err := h.profiles.GetProfile(c.Request.Context(), username)
	if err != nil {
		respondError(c, err, "load profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// update godoc
// @Summary Save my medical profile
// @Description Replaces the whole profile; a previously uploaded picture is dropped.
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body dto.UpsertProfileRequest true "Profile"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /profile [put]
func (h *profileHandler) update(c *gin.Context) {
	username, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	if _, err := h.profiles.UpsertProfile(c.Request.Context(), username, req); err != nil {
		respondError(c, err, "save profile")
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Message: string(domain.MsgProfileUpdated)})
}

// uploadPicture godoc
// @Summary Upload my profile picture
// @Description Accepts jpg, jpeg or png. Replaces the whole profile; saved profile fields are dropped.
// @Tags profile
// @Accept mpfd
// @Produce json
// @Param picture formData file true "Picture"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 413 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /profile/picture [put]
func (h *profileHandler) uploadPicture(c *gin.Context) {
	username, ok := currentUser(c)
	if !ok {
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if h.maxPictureBytes > 0 {
		// multipart framing needs some headroom over the file itself
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxPictureBytes+64*1024)
	}
	fileHeader, err := c.FormFile(pictureFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: "Picture is too large"})
			return
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "A picture file is required in field \"" + pictureFormField + "\""})
		return
	}
	if h.maxPictureBytes > 0 && fileHeader.Size > h.maxPictureBytes {
		c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: "Picture is too large"})
		return
	}
	if !allowedPictureExtensions[strings.ToLower(filepath.Ext(fileHeader.Filename))] {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Picture must be a jpg, jpeg or png file"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded picture", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Could not read picture"})
		return
	}
	defer f.Close()

	picture, err := io.ReadAll(f)
	if err != nil {
		logger.Error("Failed to read uploaded picture", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Could not read picture"})
		return
	}
	if !allowedPictureTypes[http.DetectContentType(picture)] {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Picture must be a jpg, jpeg or png file"})
		return
	}

	if err := h.profiles.UpsertPicture(c.Request.Context(), username, picture); err != nil {
		respondError(c, err, "save profile picture")
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Message: string(domain.MsgProfilePictureSaved)})
}

// getPicture godoc
// @Summary My profile picture
// @Tags profile
// @Produce png
// @Produce jpeg
// @Success 200 {file} binary
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /profile/picture [get]
func (h *profileHandler) getPicture(c *gin.Context) {
	username, ok := currentUser(c)
	if !ok {
		return
	}
	picture, err := h.profiles.GetPicture(c.Request.Context(), username)
	if err != nil {
		respondError(c, err, "load profile picture")
		return
	}
	if picture == nil {
		respondError(c, apperrors.ErrNotFound, "load profile picture")
		return
	}
	c.Data(http.StatusOK, http.DetectContentType(picture), picture)
}
