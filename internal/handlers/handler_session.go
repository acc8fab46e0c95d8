package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
	portssvc "github.com/SscSPs/healthcare_assistant_app/internal/core/ports/services"
	"github.com/SscSPs/healthcare_assistant_app/internal/dto"
	"github.com/SscSPs/healthcare_assistant_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// sessionHandler serves the session state and the chat tab.
type sessionHandler struct {
	sessions  portssvc.SessionSvc
	assistant portssvc.AssistantSvc
}

func newSessionHandler(sessions portssvc.SessionSvc, assistant portssvc.AssistantSvc) *sessionHandler {
	return &sessionHandler{sessions: sessions, assistant: assistant}
}

func registerSessionRoutes(rg *gin.RouterGroup, chatLimit gin.HandlerFunc, sessions portssvc.SessionSvc, assistant portssvc.AssistantSvc) {
	h := newSessionHandler(sessions, assistant)

	rg.GET("/session", h.getSession)

	chat := rg.Group("/chat")
	{
		chat.GET("", h.getHistory)
		chat.POST("", chatLimit, h.ask)
	}
}

// getSession godoc
// @Summary Current session
// @Tags session
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /session [get]
func (h *sessionHandler) getSession(c *gin.Context) {
	username, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(h.sessions.Session(username)))
}

// getHistory godoc
// @Summary Chat history
// @Description Returns the session's chat transcript, oldest first.
// @Tags chat
// @Produce json
// @Success 200 {object} dto.ChatHistoryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /chat [get]
func (h *sessionHandler) getHistory(c *gin.Context) {
	username, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToChatHistoryResponse(h.sessions.Session(username).Messages))
}

// ask godoc
// @Summary Ask the health assistant
// @Description Sends a message to the assistant. Generation failures come
// @Description back as reply text starting with "Error:".
// @Tags chat
// @Accept json
// @Produce json
// @Param message body dto.ChatRequest true "Message"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /chat [post]
func (h *sessionHandler) ask(c *gin.Context) {
	username, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	reply := h.assistant.Ask(c.Request.Context(), req.Message)
	h.sessions.AppendMessages(username,
		domain.ChatMessage{Role: domain.RoleUser, Content: req.Message},
		domain.ChatMessage{Role: domain.RoleAssistant, Content: reply},
	)
	middleware.GetLoggerFromCtx(c.Request.Context()).Debug("Chat exchange recorded", slog.Int("reply_len", len(reply)))

	c.JSON(http.StatusOK, dto.ChatResponse{Reply: reply})
}
