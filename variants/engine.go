package variants

import (
	"cmp"
	"context"
	"fmt"
	"runtime"
	"slices"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Engine runs the grouping pipeline. It holds configuration only and is safe for
// concurrent use.
type Engine struct {
	workers int
	logger  zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers bounds how many clusters are annotated at once. Values below 1 mean
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithLogger sets the logger for per-run debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// NewEngine creates an engine. Without options it is silent and uses GOMAXPROCS workers.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	if e.workers < 1 {
		e.workers = runtime.GOMAXPROCS(0)
	}
	return e
}

// ClusterAndAnnotate groups a batch with a default engine.
func ClusterAndAnnotate(batch []FragranceVariant) (*Result, error) {
	return NewEngine().ClusterAndAnnotate(context.Background(), batch)
}

// ClusterAndAnnotate validates the batch, clusters it and builds one annotated group per
// cluster, most popular group first. Invalid records are reported in Result.Skipped and do
// not stop the run. An empty batch yields an empty result.
func (e *Engine) ClusterAndAnnotate(ctx context.Context, batch []FragranceVariant) (*Result, error) {
	valid, skipped := partitionValid(batch)
	for _, rerr := range skipped {
		e.logger.Debug().Int("index", rerr.Index).Str("id", rerr.ID).Str("field", rerr.Field).Msg("skipping invalid variant")
	}

	result := &Result{Groups: []VariantGroup{}, Skipped: skipped}
	if len(valid) == 0 {
		return result, nil
	}

	clusters := Cluster(valid)
	e.logger.Debug().Int("variants", len(valid)).Int("clusters", len(clusters)).Msg("clustered batch")

	groups := make([]VariantGroup, len(clusters))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, members := range clusters {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			group, err := BuildGroup(members)
			if err != nil {
				return fmt.Errorf("cluster %d: %w", i, err)
			}
			groups[i] = group
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Stable, so equal popularity keeps discovery order
	slices.SortStableFunc(groups, func(a, b VariantGroup) int {
		return cmp.Compare(b.PopularityScore, a.PopularityScore)
	})

	result.Groups = groups
	e.logger.Debug().Int("groups", len(groups)).Int("skipped", len(skipped)).Msg("annotated groups")
	return result, nil
}

// BuildGroup selects the primary of one cluster and assembles its annotated group.
func BuildGroup(cluster []FragranceVariant) (VariantGroup, error) {
	idx, err := primaryIndex(cluster)
	if err != nil {
		return VariantGroup{}, err
	}
	primary := cluster[idx]

	recs, err := Recommend(cluster, primary)
	if err != nil {
		return VariantGroup{}, err
	}

	related := make([]FragranceVariant, 0, len(cluster)-1)
	popularity := MissingPopularity
	for i, v := range cluster {
		popularity = max(popularity, floatOr(v.PopularityScore, MissingPopularity))
		if i != idx {
			related = append(related, v)
		}
	}
	slices.SortStableFunc(related, func(a, b FragranceVariant) int {
		return cmp.Compare(floatOr(b.PopularityScore, MissingPopularity), floatOr(a.PopularityScore, MissingPopularity))
	})

	return VariantGroup{
		PrimaryVariant:            primary,
		RelatedVariants:           related,
		GroupID:                   GroupID(primary),
		GroupName:                 GroupName(primary),
		TotalVariants:             len(cluster),
		PopularityScore:           popularity,
		Badges:                    AssignBadges(cluster, primary),
		ExperienceRecommendations: recs,
	}, nil
}
