package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	usersTable = "users"
	notesTable = "notes"
)

var (
	userColumns = []string{"user_id", "email", "password_hash", "username", "created_at"}
	noteColumns = []string{"note_id", "user_id", "title", "content", "created_at", "updated_at"}
)

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.UserID, user.Email, user.PasswordHash, user.Username, user.CreatedAt).
		ToSql()
}

func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
}

func buildFindUserByIDQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
}

func buildCreateNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	return b.Insert(notesTable).
		Columns(noteColumns...).
		Values(note.NoteID, note.UserID, note.Title, note.Content, note.CreatedAt, note.UpdatedAt).
		ToSql()
}

func buildFindNoteByIDQuery(b sq.StatementBuilderType, noteID string) (string, []any, error) {
	return b.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"note_id": noteID}).
		Limit(1).
		ToSql()
}

// buildListNotesQuery selects one page of a user's notes, newest first.
// note_id breaks ties between notes created in the same instant.
func buildListNotesQuery(b sq.StatementBuilderType, userID string, page models.Pagination) (string, []any, error) {
	return b.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "note_id DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
}

func buildCountNotesQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(notesTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildUpdateNoteQuery sets every column in fields plus updated_at. Callers
// must pass only whitelisted column names.
func buildUpdateNoteQuery(b sq.StatementBuilderType, noteID string, fields map[string]any, updatedAt time.Time) (string, []any, error) {
	set := make(map[string]any, len(fields)+1)
	for column, value := range fields {
		set[column] = value
	}
	set["updated_at"] = updatedAt

	return b.Update(notesTable).
		SetMap(set).
		Where(sq.Eq{"note_id": noteID}).
		ToSql()
}

func buildDeleteNoteQuery(b sq.StatementBuilderType, noteID string) (string, []any, error) {
	return b.Delete(notesTable).
		Where(sq.Eq{"note_id": noteID}).
		ToSql()
}
