package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Razboth/Servicedesk-sub005/internal/domain"
)

// notifyRequester queues a roster lifecycle mail for the signed-in manager.
// Notification delivery is best effort: a publish failure is logged and never
// fails the originating operation.
func (h *Handler) notifyRequester(r *http.Request, mailType string, data any) {
	sub, _ := r.Context().Value(SubCtxKey).(string)
	user, err := h.repository.GetUserByID(sub)
	if err != nil {
		slog.Warn("could not resolve requester for notification", "sub", sub, "error", err)
		return
	}

	body, err := json.Marshal(domain.MailMessage{
		Type: mailType,
		To:   user.Email,
		Data: data,
	})
	if err != nil {
		slog.Warn("could not serialize notification", "type", mailType, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.notifyChannel.PublishWithContext(
		ctx,
		"",
		"notification_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	); err != nil {
		slog.Warn("could not publish notification", "type", mailType, "error", err)
	}
}
