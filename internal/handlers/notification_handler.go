package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/marketplace-api/internal/httperr"
	"github.com/BruksfildServices01/marketplace-api/internal/httpresp"
	"github.com/BruksfildServices01/marketplace-api/internal/middleware"
	"github.com/BruksfildServices01/marketplace-api/internal/models"
	"github.com/BruksfildServices01/marketplace-api/internal/notify"
	"github.com/BruksfildServices01/marketplace-api/internal/realtime"
)

type NotificationHandler struct {
	inbox  notify.Inbox
	events notify.Publisher
}

func NewNotificationHandler(inbox notify.Inbox, events notify.Publisher) *NotificationHandler {
	return &NotificationHandler{inbox: inbox, events: events}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)

	notifications, err := h.inbox.ListForRecipient(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_notifications", "Erro ao listar notificações.")
		return
	}

	httpresp.List(c, notifications)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID := middleware.UserID(c)

	count, err := h.inbox.CountUnread(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_count_notifications", "Erro ao contar notificações.")
		return
	}

	c.JSON(200, gin.H{"unread": count})
}

// MarkRead flips a notification to read. Already-read rows stay read;
// there is no way back to unread.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := middleware.UserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_notification_id", "Identificador inválido.")
		return
	}

	n, changed, err := h.inbox.MarkRead(c.Request.Context(), id, userID)
	if err != nil {
		httperr.NotFound(c, "notification_not_found", "Notificação não encontrada.")
		return
	}

	if changed {
		h.broadcastUpdate(c, n)
	}

	httpresp.OK(c, n)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := middleware.UserID(c)

	updated, err := h.inbox.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_update_notifications", "Erro ao atualizar notificações.")
		return
	}

	c.JSON(200, gin.H{"updated": updated})
}

func (h *NotificationHandler) broadcastUpdate(c *gin.Context, n *models.Notification) {
	if h.events == nil {
		return
	}

	ev, err := realtime.NotificationEvent(realtime.KindUpdate, n)
	if err != nil {
		log.Println("notification event encode failed:", err)
		return
	}

	h.events.Broadcast(c.Request.Context(), ev, realtime.NotificationsChannel(n.RecipientID))
}
