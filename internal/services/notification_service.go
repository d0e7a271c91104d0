package services

import (
	"context"
	"strconv"

	"dashboard/internal/domain/models"
	"dashboard/internal/query"
	"dashboard/internal/repositories"
)

var notificationSpec = query.Spec[models.AdminNotification]{
	Fields: []query.Field[models.AdminNotification]{
		{Name: "search", Kind: query.KindText, Values: query.Many(
			func(n models.AdminNotification) string { return n.Title },
			func(n models.AdminNotification) string { return n.Message },
		)},
		{Name: "type", Kind: query.KindEnum, Values: query.One(func(n models.AdminNotification) string { return n.Type })},
		{Name: "userId", Kind: query.KindEnum, Values: query.One(func(n models.AdminNotification) string { return n.UserID })},
		{Name: "read", Kind: query.KindEnum, Values: query.One(func(n models.AdminNotification) string { return strconv.FormatBool(n.Read) })},
	},
	Compare: func(a, b models.AdminNotification) int { return query.Desc(a.Date, b.Date) },
	Summarize: func(items []models.AdminNotification) map[string]float64 {
		return map[string]float64{
			"total":  float64(len(items)),
			"unread": query.Count(items, func(n models.AdminNotification) bool { return !n.Read }),
		}
	},
}

type NotificationService struct {
	Source    repositories.Source[models.AdminNotification]
	RequestID string
}

func (s NotificationService) List(ctx context.Context, criteria query.Criteria, page, pageSize int) (query.Result[models.AdminNotification], error) {
	return collection[models.AdminNotification]{
		name:      "notifications",
		source:    s.Source,
		spec:      notificationSpec,
		id:        func(n *models.AdminNotification) *string { return &n.ID },
		requestID: s.RequestID,
	}.list(ctx, criteria, page, pageSize)
}
