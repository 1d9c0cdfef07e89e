package main

import (
	"fmt"
	"time"

	meilisearch "github.com/meilisearch/meilisearch-go"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"

	"github.com/callmeahab/scent-variants/variants"
)

// groupDocument is the flat search document for one variant group
type groupDocument struct {
	ID              string   `json:"id"`
	GroupName       string   `json:"groupName"`
	Brand           string   `json:"brand"`
	BrandID         string   `json:"brandId"`
	PrimaryID       string   `json:"primaryId"`
	PrimaryName     string   `json:"primaryName"`
	ImageURL        string   `json:"imageUrl,omitempty"`
	FragranceFamily string   `json:"fragranceFamily,omitempty"`
	Notes           []string `json:"notes"`
	VariantIDs      []string `json:"variantIds"`
	VariantNames    []string `json:"variantNames"`
	TotalVariants   int      `json:"totalVariants"`
	Popularity      float64  `json:"popularity"`
	SamplePrice     *float64 `json:"samplePrice,omitempty"`
	Badges          []string `json:"badges"`
	BeginnerPick    string   `json:"beginnerPick,omitempty"`
	EnthusiastPick  string   `json:"enthusiastPick,omitempty"`
	CollectorPick   string   `json:"collectorPick,omitempty"`
}

func toDocument(g variants.VariantGroup) groupDocument {
	p := g.PrimaryVariant
	doc := groupDocument{
		ID:              g.GroupID,
		GroupName:       g.GroupName,
		Brand:           p.Brand,
		BrandID:         p.BrandID,
		PrimaryID:       p.ID,
		PrimaryName:     p.Name,
		ImageURL:        p.ImageURL,
		FragranceFamily: p.FragranceFamily,
		Notes:           p.Notes,
		TotalVariants:   g.TotalVariants,
		Popularity:      g.PopularityScore,
		SamplePrice:     p.SamplePriceUSD,
		Badges:          make([]string, 0, len(g.Badges)),
	}
	if doc.Notes == nil {
		doc.Notes = []string{}
	}
	for _, v := range g.Members() {
		doc.VariantIDs = append(doc.VariantIDs, v.ID)
		doc.VariantNames = append(doc.VariantNames, v.Name)
	}
	for _, b := range g.Badges {
		doc.Badges = append(doc.Badges, string(b.Type))
	}
	for _, rec := range g.ExperienceRecommendations {
		switch rec.Level {
		case variants.LevelBeginner:
			doc.BeginnerPick = rec.RecommendedVariantID
		case variants.LevelEnthusiast:
			doc.EnthusiastPick = rec.RecommendedVariantID
		case variants.LevelCollector:
			doc.CollectorPick = rec.RecommendedVariantID
		}
	}
	return doc
}

// GroupIndexer publishes variant groups to Meilisearch
type GroupIndexer struct {
	client    meilisearch.ServiceManager
	indexName string
	breaker   *gobreaker.CircuitBreaker[struct{}]
	addDocs   func(docs []groupDocument) error
}

func NewGroupIndexer(url, apiKey, indexName string) *GroupIndexer {
	client := meilisearch.New(url, meilisearch.WithAPIKey(apiKey))
	ix := &GroupIndexer{
		client:    client,
		indexName: indexName,
		breaker:   newIndexBreaker(indexName),
	}
	ix.addDocs = func(docs []groupDocument) error {
		_, err := client.Index(indexName).AddDocuments(docs, nil)
		return err
	}
	return ix
}

func newIndexBreaker(name string) *gobreaker.CircuitBreaker[struct{}] {
	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "meili-" + name,
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Stringer("from", from).Stringer("to", to).Msg("index circuit breaker state changed")
		},
	})
}

// Setup recreates the index and applies its settings. Failures are logged, not returned,
// so that indexing can proceed against an existing index.
func (ix *GroupIndexer) Setup() {
	_, _ = ix.client.DeleteIndex(ix.indexName)
	if _, err := ix.client.CreateIndex(&meilisearch.IndexConfig{Uid: ix.indexName, PrimaryKey: "id"}); err != nil {
		log.Warn().Err(err).Str("index", ix.indexName).Msg("could not create index")
	}

	settings := meilisearch.Settings{
		SearchableAttributes: []string{"groupName", "brand", "primaryName", "variantNames", "notes"},
		FilterableAttributes: []string{"brandId", "brand", "badges", "fragranceFamily", "totalVariants", "samplePrice"},
		SortableAttributes:   []string{"popularity", "totalVariants", "groupName"},
	}
	if _, err := ix.client.Index(ix.indexName).UpdateSettings(&settings); err != nil {
		log.Warn().Err(err).Str("index", ix.indexName).Msg("could not update index settings")
	}
}

// IndexGroups sends the groups in batches and returns how many were indexed.
func (ix *GroupIndexer) IndexGroups(groups []variants.VariantGroup, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = len(groups)
	}

	indexed := 0
	for start := 0; start < len(groups); start += batchSize {
		end := min(start+batchSize, len(groups))
		docs := make([]groupDocument, 0, end-start)
		for _, g := range groups[start:end] {
			docs = append(docs, toDocument(g))
		}

		_, err := ix.breaker.Execute(func() (struct{}, error) {
			return struct{}{}, ix.addDocs(docs)
		})
		if err != nil {
			return indexed, fmt.Errorf("index error after %d groups: %w", indexed, err)
		}
		indexed += len(docs)
		log.Info().Int("indexed", indexed).Int("total", len(groups)).Msg("indexed group batch")
	}
	return indexed, nil
}
