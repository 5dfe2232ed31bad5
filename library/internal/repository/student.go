package repository

import (
	"context"

	"github.com/Astemirdum/library-circulation/library/internal/model"
	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns    = []string{"id", "email", "is_verified", "is_approved", "created_at"}
	studentColumns = []string{"id", "user_id", "student_number", "first_name", "last_name", "email", "status", "approved_at", "rejected_at", "rejection_reason", "created_at"}
)

func (s *store) CreateUser(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := s.get(ctx, "CreateUser", &u, qb.Insert(usersTableName).
		Columns("email").
		Values(email).
		Suffix(returning(userColumns)))
	return u, err
}

// ApproveUser marks the login linked to a student as verified and approved.
func (s *store) ApproveUser(ctx context.Context, userID int64) error {
	return s.exec(ctx, "ApproveUser", qb.Update(usersTableName).
		Set("is_verified", true).
		Set("is_approved", true).
		Where(sq.Eq{"id": userID}))
}

func (s *store) DeleteUser(ctx context.Context, userID int64) error {
	return s.exec(ctx, "DeleteUser", qb.Delete(usersTableName).
		Where(sq.Eq{"id": userID}))
}

func (s *store) CreateStudent(ctx context.Context, st model.Student) (model.Student, error) {
	var student model.Student
	err := s.get(ctx, "CreateStudent", &student, qb.Insert(studentsTableName).
		Columns("user_id", "student_number", "first_name", "last_name", "email", "status").
		Values(st.UserID, st.StudentNumber, st.FirstName, st.LastName, st.Email, st.Status).
		Suffix(returning(studentColumns)))
	return student, err
}

func (s *store) GetStudent(ctx context.Context, id int64) (model.Student, error) {
	var student model.Student
	err := s.get(ctx, "GetStudent", &student, qb.Select(studentColumns...).
		From(studentsTableName).
		Where(sq.Eq{"id": id}))
	return student, err
}

func (s *store) GetStudentForUpdate(ctx context.Context, id int64) (model.Student, error) {
	var student model.Student
	err := s.get(ctx, "GetStudentForUpdate", &student, qb.Select(studentColumns...).
		From(studentsTableName).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE"))
	return student, err
}

func (s *store) ListStudents(ctx context.Context, status model.StudentStatus) ([]model.Student, error) {
	q := qb.Select(studentColumns...).
		From(studentsTableName).
		OrderBy("id")
	if status != "" {
		q = q.Where(sq.Eq{"status": status})
	}
	students := make([]model.Student, 0)
	err := s.list(ctx, "ListStudents", &students, q)
	return students, err
}

func (s *store) UpdateStudent(ctx context.Context, st model.Student) error {
	return s.exec(ctx, "UpdateStudent", qb.Update(studentsTableName).
		Set("user_id", st.UserID).
		Set("status", st.Status).
		Set("approved_at", st.ApprovedAt).
		Set("rejected_at", st.RejectedAt).
		Set("rejection_reason", st.RejectionReason).
		Where(sq.Eq{"id": st.ID}))
}
