package store

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/internship-tracker/models"
)

const (
	usersTable       = "users"
	internshipsTable = "internships"
)

var (
	userColumns       = []string{"id", "email", "password_hash", "first_name", "last_name", "created_at"}
	internshipColumns = []string{"id", "user_id", "company", "role", "link", "deadline", "status", "notes", "created", "updated"}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.CreatedAt).
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, column, value string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		ToSql()
}

// buildListInternshipsQuery selects a user's records in insertion order.
func buildListInternshipsQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select(internshipColumns...).
		From(internshipsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created ASC", "id ASC").
		ToSql()
}

func buildGetInternshipQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(internshipColumns...).
		From(internshipsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertInternshipQuery(b sq.StatementBuilderType, rec models.Internship) (string, []any, error) {
	return b.Insert(internshipsTable).
		Columns(internshipColumns...).
		Values(rec.ID, rec.UserID, rec.Company, rec.Role, rec.Link, rec.Deadline, string(rec.Status), rec.Notes, rec.Created, nullTime(rec.Updated)).
		ToSql()
}

// buildUpdateInternshipQuery overwrites every mutable field of the record
// owned by rec.UserID.
func buildUpdateInternshipQuery(b sq.StatementBuilderType, rec models.Internship) (string, []any, error) {
	return b.Update(internshipsTable).
		SetMap(map[string]any{
			"company":  rec.Company,
			"role":     rec.Role,
			"link":     rec.Link,
			"deadline": rec.Deadline,
			"status":   string(rec.Status),
			"notes":    rec.Notes,
			"updated":  nullTime(rec.Updated),
		}).
		Where(sq.Eq{"id": rec.ID, "user_id": rec.UserID}).
		ToSql()
}

func buildDeleteInternshipQuery(b sq.StatementBuilderType, userID, id string) (string, []any, error) {
	return b.Delete(internshipsTable).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName, &user.CreatedAt)
	return user, err
}

func scanInternship(row rowScanner) (models.Internship, error) {
	var (
		rec     models.Internship
		status  string
		updated sql.NullTime
	)

	err := row.Scan(&rec.ID, &rec.UserID, &rec.Company, &rec.Role, &rec.Link, &rec.Deadline, &status, &rec.Notes, &rec.Created, &updated)
	if err != nil {
		return models.Internship{}, err
	}

	rec.Status = models.Status(status)
	if updated.Valid {
		u := updated.Time
		rec.Updated = &u
	}

	return rec, nil
}
