package repository

import (
	"context"

	"github.com/Astemirdum/library-circulation/library/internal/model"
	sq "github.com/Masterminds/squirrel"
)

var cardColumns = []string{"id", "student_id", "card_number", "barcode", "status", "issued_by", "issued_date", "expiry_date"}

func (s *store) CreateCard(ctx context.Context, c model.LibraryCard) (model.LibraryCard, error) {
	var card model.LibraryCard
	err := s.get(ctx, "CreateCard", &card, qb.Insert(cardsTableName).
		Columns("student_id", "card_number", "barcode", "status", "issued_by", "issued_date", "expiry_date").
		Values(c.StudentID, c.CardNumber, c.Barcode, c.Status, c.IssuedBy, c.IssuedDate.UTC(), c.ExpiryDate.UTC()).
		Suffix(returning(cardColumns)))
	return card, err
}

func (s *store) CountCards(ctx context.Context, studentID int64) (int, error) {
	var n int
	err := s.get(ctx, "CountCards", &n, qb.Select("count(*)").
		From(cardsTableName).
		Where(sq.Eq{"student_id": studentID}))
	return n, err
}

func (s *store) GetCardForUpdate(ctx context.Context, id int64) (model.LibraryCard, error) {
	var card model.LibraryCard
	err := s.get(ctx, "GetCardForUpdate", &card, qb.Select(cardColumns...).
		From(cardsTableName).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE"))
	return card, err
}

// GetCurrentCardForUpdate returns the newest card still in use. Lost cards
// are not current and keep their status.
func (s *store) GetCurrentCardForUpdate(ctx context.Context, studentID int64) (model.LibraryCard, error) {
	var card model.LibraryCard
	err := s.get(ctx, "GetCurrentCardForUpdate", &card, qb.Select(cardColumns...).
		From(cardsTableName).
		Where(sq.Eq{"student_id": studentID}).
		Where(sq.Eq{"status": []model.CardStatus{model.CardStatusActive, model.CardStatusPendingReplacement}}).
		OrderBy("id desc").
		Limit(1).
		Suffix("FOR UPDATE"))
	return card, err
}

func (s *store) UpdateCardStatus(ctx context.Context, id int64, status model.CardStatus) error {
	return s.exec(ctx, "UpdateCardStatus", qb.Update(cardsTableName).
		Set("status", status).
		Where(sq.Eq{"id": id}))
}

func (s *store) ListCards(ctx context.Context, studentID int64) ([]model.LibraryCard, error) {
	cards := make([]model.LibraryCard, 0)
	err := s.list(ctx, "ListCards", &cards, qb.Select(cardColumns...).
		From(cardsTableName).
		Where(sq.Eq{"student_id": studentID}).
		OrderBy("id"))
	return cards, err
}
