package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/idea-backlog/models"
)

const itemsTable = "items"

var itemColumns = []string{
	"id",
	"name",
	"description",
	"priority",
	"created_at",
	"updated_at",
}

// psql is the statement builder for SQLite ("?" placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildListItemsQuery() (string, []any, error) {
	return psql.
		Select(itemColumns...).
		From(itemsTable).
		OrderBy("id ASC").
		ToSql()
}

func buildGetItemQuery(id int64) (string, []any, error) {
	return psql.
		Select(itemColumns...).
		From(itemsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertItemQuery(item models.Item) (string, []any, error) {
	return psql.
		Insert(itemsTable).
		Columns("name", "description", "priority", "created_at", "updated_at").
		Values(item.Name, item.Description, item.Priority, item.CreatedAt, item.UpdatedAt).
		ToSql()
}

func buildUpdateItemQuery(item models.Item) (string, []any, error) {
	return psql.
		Update(itemsTable).
		Set("name", item.Name).
		Set("description", item.Description).
		Set("priority", item.Priority).
		Set("updated_at", item.UpdatedAt).
		Where(sq.Eq{"id": item.ID}).
		ToSql()
}

func buildDeleteItemQuery(id int64) (string, []any, error) {
	return psql.
		Delete(itemsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
