package inbound

import (
	"strconv"
	"time"

	"github.com/canvasslabs/canvassd/internal/audit/usecase"
	"github.com/canvasslabs/canvassd/internal/pkg/router"
)

type EventResponse struct {
	ID         string         `json:"id"`
	Action     string         `json:"action"`
	ActorEmail string         `json:"actorEmail"`
	Payload    map[string]any `json:"payload"`
	OccurredAt string         `json:"occurredAt"`
}

type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Total  int64           `json:"total"`
}

// HTTPEndpoint exposes the audit trail to admins.
type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) EventList(r *router.Request) (any, error) {
	size, _ := r.GetQueryInt32("size")
	page, _ := r.GetQueryInt32("page")

	resp, err := h.uc.EventList(r.Context(), usecase.EventListInput{
		Action: r.GetQuery("action"),
		Size:   size,
		Page:   page,
	})
	if err != nil {
		return nil, err
	}

	events := make([]EventResponse, len(resp.Events))
	for i, ev := range resp.Events {
		events[i] = EventResponse{
			ID:         strconv.FormatInt(ev.ID, 10),
			Action:     ev.Action,
			ActorEmail: ev.ActorEmail,
			Payload:    ev.Payload,
			OccurredAt: ev.OccurredAt.Format(time.RFC3339),
		}
	}

	return EventListResponse{Events: events, Total: resp.Total}, nil
}
