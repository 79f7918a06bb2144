package models

import (
	"time"

	db "github.com/Portalfi/Portalfi-Backend/db/sqlc"
)

type ActivityLogQuery struct {
	Limit  int32 `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int32 `form:"offset" binding:"omitempty,min=0"`
}

type ActivityLogResponse struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Method      string    `json:"method"`
	Endpoint    string    `json:"endpoint"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ToActivityLogResponses(logs []db.ActivityLog) []ActivityLogResponse {
	out := make([]ActivityLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, ActivityLogResponse{
			ID:          l.ID,
			Type:        l.Type,
			Title:       l.Title,
			Description: l.Description,
			Icon:        l.Icon,
			Method:      l.Method,
			Endpoint:    l.Endpoint,
			CreatedAt:   l.CreatedAt,
		})
	}
	return out
}
