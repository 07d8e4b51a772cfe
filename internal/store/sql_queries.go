package store

import (
	"github.com/MKhiriev/go-web-scaffold/models"
	sq "github.com/Masterminds/squirrel"
)

var userColumns = []string{"name", "age", "is_verified"}

// buildInsertUserQuery builds the INSERT for a single user.
func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.Name, user.Age, user.IsVerified).
		ToSql()
}

// buildSelectUsersQuery builds the SELECT of all users, oldest first.
func buildSelectUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("id ASC").
		ToSql()
}
