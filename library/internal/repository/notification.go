package repository

import (
	"context"

	"github.com/Astemirdum/library-circulation/library/internal/model"
	sq "github.com/Masterminds/squirrel"
)

var notificationColumns = []string{"id", "event_id", "student_id", "type", "message", "created_at", "read_at"}

// CreateNotification stores n once per event id. It reports false for a redelivered event.
func (s *store) CreateNotification(ctx context.Context, n model.Notification) (bool, error) {
	query, args, err := qb.Insert(notificationsTableName).
		Columns("event_id", "student_id", "type", "message", "created_at").
		Values(n.EventID, n.StudentID, n.Type, n.Message, n.CreatedAt.UTC()).
		Suffix("ON CONFLICT (event_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, err
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, mapErr(err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return inserted > 0, nil
}

func (s *store) ListNotifications(ctx context.Context, studentID int64) ([]model.Notification, error) {
	items := make([]model.Notification, 0)
	err := s.list(ctx, "ListNotifications", &items, qb.Select(notificationColumns...).
		From(notificationsTableName).
		Where(sq.Eq{"student_id": studentID}).
		OrderBy("id desc"))
	return items, err
}
