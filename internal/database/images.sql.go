package database

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const (
	// Table
	recipeImagesTable = "recipe_images"

	// Columns
	imageIDColumn        = "id"
	imageRecipeIDColumn  = "recipe_id"
	imageURLColumn       = "url"
	imagePublicIDColumn  = "public_id"
	imageCreatedAtColumn = "created_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func scanImages(rows pgx.Rows) ([]RecipeImage, error) {
	defer rows.Close()
	items := []RecipeImage{}
	for rows.Next() {
		var i RecipeImage
		if err := rows.Scan(
			&i.ID,
			&i.RecipeID,
			&i.Url,
			&i.PublicID,
			&i.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning recipe image: %w", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// anyOf matches column against values bound as one array parameter, so the
// statement never runs into the bind parameter limit.
func anyOf(column string, values []string) sq.Sqlizer {
	return sq.Expr(column+" = ANY(?)", values)
}

func selectImages() sq.SelectBuilder {
	return psql.
		Select(
			imageIDColumn,
			imageRecipeIDColumn,
			imageURLColumn,
			imagePublicIDColumn,
			imageCreatedAtColumn,
		).
		From(recipeImagesTable).
		OrderBy(imageIDColumn)
}

type CreateRecipeImagesParams struct {
	RecipeID string
	Images   []ImageRef
}

// CreateRecipeImages inserts every image in a single statement.
func (q *Queries) CreateRecipeImages(ctx context.Context, arg CreateRecipeImagesParams) error {
	if len(arg.Images) == 0 {
		return nil
	}

	builder := psql.
		Insert(recipeImagesTable).
		Columns(imageRecipeIDColumn, imageURLColumn, imagePublicIDColumn)
	for _, image := range arg.Images {
		builder = builder.Values(arg.RecipeID, image.Url, image.PublicID)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("building insert: %w", err)
	}

	if _, err := q.db.Exec(ctx, query, args...); err != nil {
		return err
	}
	return nil
}

type DeleteRecipeImagesByPublicIDParams struct {
	RecipeID  string
	PublicIDs []string
}

// DeleteRecipeImagesByPublicID removes the recipe's images whose public id is
// listed. Images of other recipes are never touched.
func (q *Queries) DeleteRecipeImagesByPublicID(ctx context.Context, arg DeleteRecipeImagesByPublicIDParams) (int64, error) {
	if len(arg.PublicIDs) == 0 {
		return 0, nil
	}

	query, args, err := psql.
		Delete(recipeImagesTable).
		Where(sq.Eq{imageRecipeIDColumn: arg.RecipeID}).
		Where(anyOf(imagePublicIDColumn, arg.PublicIDs)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building delete: %w", err)
	}

	tag, err := q.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (q *Queries) GetRecipeImages(ctx context.Context, recipeID string) ([]RecipeImage, error) {
	query, args, err := selectImages().
		Where(sq.Eq{imageRecipeIDColumn: recipeID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select: %w", err)
	}

	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanImages(rows)
}

// ListRecipeImages returns the images of every listed recipe, oldest first.
func (q *Queries) ListRecipeImages(ctx context.Context, recipeIDs []string) ([]RecipeImage, error) {
	if len(recipeIDs) == 0 {
		return []RecipeImage{}, nil
	}

	query, args, err := listRecipeImagesQuery(recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("building select: %w", err)
	}

	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanImages(rows)
}

func listRecipeImagesQuery(recipeIDs []string) (string, []any, error) {
	return selectImages().
		Where(anyOf(imageRecipeIDColumn, recipeIDs)).
		ToSql()
}
