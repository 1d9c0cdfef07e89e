package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/callmeahab/scent-variants/variants"
)

const variantColumns = `
	fv.id,
	fv.name,
	COALESCE(b.name, '') AS brand,
	fv."brandId",
	fv.notes,
	fv."intensityScore",
	fv."longevityHours",
	COALESCE(fv."sampleAvailable", false),
	fv."samplePriceUsd",
	fv."popularityScore",
	fv."fragranceFamily",
	fv."imageUrl",
	fv."recommendedOccasions",
	fv."recommendedSeasons"`

// CatalogStore reads fragrance variants from Postgres
type CatalogStore struct {
	db *sql.DB
}

func connectDB(url string) (*sql.DB, error) {
	return sql.Open("postgres", url)
}

func NewCatalogStore(db *sql.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// Count returns the number of variants in the catalog
func (c *CatalogStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM "FragranceVariant"`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count variants: %w", err)
	}
	return n, nil
}

// LoadVariants pages through the whole catalog.
func (c *CatalogStore) LoadVariants(ctx context.Context, batchSize int) ([]variants.FragranceVariant, error) {
	query := `SELECT ` + variantColumns + `
		FROM "FragranceVariant" fv
		LEFT JOIN "Brand" b ON b.id = fv."brandId"
		ORDER BY fv.id
		LIMIT $1 OFFSET $2`
	return c.page(ctx, batchSize, func(offset int) (*sql.Rows, error) {
		return c.db.QueryContext(ctx, query, batchSize, offset)
	})
}

// LoadBrand pages through the variants of one brand.
func (c *CatalogStore) LoadBrand(ctx context.Context, brandID string, batchSize int) ([]variants.FragranceVariant, error) {
	query := `SELECT ` + variantColumns + `
		FROM "FragranceVariant" fv
		LEFT JOIN "Brand" b ON b.id = fv."brandId"
		WHERE fv."brandId" = $1
		ORDER BY fv.id
		LIMIT $2 OFFSET $3`
	return c.page(ctx, batchSize, func(offset int) (*sql.Rows, error) {
		return c.db.QueryContext(ctx, query, brandID, batchSize, offset)
	})
}

func (c *CatalogStore) page(ctx context.Context, batchSize int, query func(offset int) (*sql.Rows, error)) ([]variants.FragranceVariant, error) {
	var out []variants.FragranceVariant
	for offset := 0; ; offset += batchSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows, err := query(offset)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch batch: %w", err)
		}
		n, err := c.scanBatch(rows, &out)
		if err != nil {
			return nil, err
		}
		if n < batchSize {
			break
		}
		log.Debug().Int("loaded", len(out)).Msg("loaded variant batch")
	}
	return out, nil
}

// scanBatch appends the rows to out and returns how many rows were read, including
// rows that failed to scan.
func (c *CatalogStore) scanBatch(rows *sql.Rows, out *[]variants.FragranceVariant) (int, error) {
	defer rows.Close()

	n := 0
	for rows.Next() {
		n++
		var r variantRow
		if err := rows.Scan(
			&r.id, &r.name, &r.brand, &r.brandID, pq.Array(&r.notes),
			&r.intensity, &r.longevity, &r.sampleAvailable, &r.samplePrice,
			&r.popularity, &r.family, &r.imageURL,
			pq.Array(&r.occasions), pq.Array(&r.seasons),
		); err != nil {
			log.Warn().Err(err).Msg("skipping unreadable variant row")
			continue
		}
		*out = append(*out, r.toVariant())
	}
	if err := rows.Err(); err != nil {
		return n, fmt.Errorf("failed to read batch: %w", err)
	}
	return n, nil
}

type variantRow struct {
	id, name, brand, brandID string
	notes                    []string
	intensity, longevity     sql.NullFloat64
	sampleAvailable          bool
	samplePrice, popularity  sql.NullFloat64
	family, imageURL         sql.NullString
	occasions, seasons       []string
}

func (r variantRow) toVariant() variants.FragranceVariant {
	return variants.FragranceVariant{
		ID:                   r.id,
		Name:                 r.name,
		Brand:                r.brand,
		BrandID:              r.brandID,
		Notes:                r.notes,
		IntensityScore:       nullFloat(r.intensity),
		LongevityHours:       nullFloat(r.longevity),
		SampleAvailable:      r.sampleAvailable,
		SamplePriceUSD:       nullFloat(r.samplePrice),
		PopularityScore:      nullFloat(r.popularity),
		FragranceFamily:      r.family.String,
		ImageURL:             r.imageURL.String,
		RecommendedOccasions: r.occasions,
		RecommendedSeasons:   r.seasons,
	}
}

func nullFloat(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	return variants.Float(n.Float64)
}
