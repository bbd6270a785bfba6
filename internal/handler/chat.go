package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/library-portal/internal/chat"
	"github.com/iliyamo/library-portal/internal/model"
)

// ChatHandler proxies the assistant conversation to the language-model
// collaborator. The transcript lives on the client and is echoed back with
// every message.
type ChatHandler struct {
	Client *chat.Client
}

func NewChatHandler(client *chat.Client) *ChatHandler {
	return &ChatHandler{Client: client}
}

type chatReq struct {
	History []model.ChatMessage `json:"history"`
	Message string              `json:"message"`
}

// Send handles POST /v1/chat. Collaborator failures are not HTTP errors:
// the fixed apology text comes back as a normal reply so the conversation
// continues.
func (h *ChatHandler) Send(c echo.Context) error {
	var req chatReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "message required"})
	}

	reply := h.Client.Reply(c.Request().Context(), req.History, req.Message)
	return c.JSON(http.StatusOK, echo.Map{
		"reply": model.ChatMessage{Sender: model.ChatSenderBot, Text: reply},
	})
}

// Greeting handles GET /v1/chat/greeting so clients open every new
// conversation with the same first message.
func (h *ChatHandler) Greeting(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"reply": model.ChatMessage{Sender: model.ChatSenderBot, Text: chat.Greeting},
	})
}
