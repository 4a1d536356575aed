package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/matt-dz/receitas/internal/sql"
)

const recipeColumns = `id, title, servings, time_minutes, ingredients, steps, created_at, updated_at`

func scanRecipe(row pgx.Row) (Recipe, error) {
	var i Recipe
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Servings,
		&i.TimeMinutes,
		&i.Ingredients,
		&i.Steps,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func (q *Queries) ApplySchema(ctx context.Context) error {
	// no arguments: pgx uses the simple protocol, which accepts several statements
	_, err := q.db.Exec(ctx, sql.Schema())
	return err
}

const checkRecipesTableExists = `
SELECT EXISTS (
    SELECT 1
    FROM information_schema.tables
    WHERE table_schema = current_schema()
      AND table_name = 'recipes'
)
`

func (q *Queries) CheckRecipesTableExists(ctx context.Context) (bool, error) {
	row := q.db.QueryRow(ctx, checkRecipesTableExists)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const createRecipe = `
INSERT INTO recipes (id, title, servings, time_minutes, ingredients, steps)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + recipeColumns

type CreateRecipeParams struct {
	ID          string
	Title       string
	Servings    int32
	TimeMinutes int32
	Ingredients []string
	Steps       []string
}

func (q *Queries) CreateRecipe(ctx context.Context, arg CreateRecipeParams) (Recipe, error) {
	row := q.db.QueryRow(ctx, createRecipe,
		arg.ID,
		arg.Title,
		arg.Servings,
		arg.TimeMinutes,
		arg.Ingredients,
		arg.Steps,
	)
	return scanRecipe(row)
}

const deleteRecipe = `DELETE FROM recipes WHERE id = $1`

// DeleteRecipe removes a recipe; its images go with it (ON DELETE CASCADE).
// It returns the number of recipes removed.
func (q *Queries) DeleteRecipe(ctx context.Context, id string) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteRecipe, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getRecipe = `SELECT ` + recipeColumns + ` FROM recipes WHERE id = $1`

func (q *Queries) GetRecipe(ctx context.Context, id string) (Recipe, error) {
	row := q.db.QueryRow(ctx, getRecipe, id)
	return scanRecipe(row)
}

const listRecipes = `SELECT ` + recipeColumns + ` FROM recipes ORDER BY created_at DESC, id DESC`

func (q *Queries) ListRecipes(ctx context.Context) ([]Recipe, error) {
	rows, err := q.db.Query(ctx, listRecipes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Recipe{}
	for rows.Next() {
		i, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning recipe: %w", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateRecipe = `
UPDATE recipes
SET title = $2,
    servings = $3,
    time_minutes = $4,
    ingredients = $5,
    steps = $6,
    updated_at = now()
WHERE id = $1
RETURNING ` + recipeColumns

type UpdateRecipeParams struct {
	ID          string
	Title       string
	Servings    int32
	TimeMinutes int32
	Ingredients []string
	Steps       []string
}

func (q *Queries) UpdateRecipe(ctx context.Context, arg UpdateRecipeParams) (Recipe, error) {
	row := q.db.QueryRow(ctx, updateRecipe,
		arg.ID,
		arg.Title,
		arg.Servings,
		arg.TimeMinutes,
		arg.Ingredients,
		arg.Steps,
	)
	return scanRecipe(row)
}
