package handlers

import (
	"net/http"

	service "github.com/aaravmahajanofficial/bike-storefront/internal/services"
	"github.com/aaravmahajanofficial/bike-storefront/internal/utils/response"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// ListNotifications godoc
//	@Summary		Drain pending toasts
//	@Description	Returns and forgets the toasts raised for this session since the last call.
//	@Tags			Notifications
//	@Produce		json
//	@Success		200	{array}	models.Toast
//	@Router			/notifications [get]
func (h *NotificationHandler) ListNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		response.Success(w, http.StatusOK, h.notificationService.Drain(r.Context(), sessionID))
	}
}
