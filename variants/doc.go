// Package variants groups near-duplicate fragrance catalog records and annotates each group.
//
// A run validates the batch, clusters it greedily by weighted similarity (name, brand, notes,
// family), picks a canonical primary per cluster, labels the primary with badges and picks a
// best-fit variant for each audience tier:
//
//	engine := variants.NewEngine(variants.WithWorkers(4))
//	res, err := engine.ClusterAndAnnotate(ctx, batch)
//	if err != nil {
//		return err
//	}
//	for _, skipped := range res.Skipped {
//		log.Printf("skipped: %v", skipped)
//	}
//
// Records from different brands are never grouped. Clustering compares each candidate with
// the cluster's first member only, so results depend on input order.
//
// All scoring weights and defaults are exported constants (see weights.go).
package variants
