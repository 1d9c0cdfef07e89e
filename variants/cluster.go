package variants

// Cluster partitions variants into groups of near-duplicates in one greedy pass.
//
// Each unassigned variant, in input order, anchors a new cluster and pulls in every later
// unassigned variant whose similarity to the anchor reaches ClusterThreshold. Membership is
// decided against the anchor only: a variant close to a later member but not to the anchor
// starts or joins another cluster. Clusters come back in discovery order with members in
// input order.
func Cluster(batch []FragranceVariant) [][]FragranceVariant {
	assigned := make([]bool, len(batch))
	var clusters [][]FragranceVariant

	for i, anchor := range batch {
		if assigned[i] {
			continue
		}
		assigned[i] = true
		members := []FragranceVariant{anchor}

		for j := i + 1; j < len(batch); j++ {
			if assigned[j] {
				continue
			}
			if Similarity(anchor, batch[j]) >= ClusterThreshold {
				members = append(members, batch[j])
				assigned[j] = true
			}
		}
		clusters = append(clusters, members)
	}

	return clusters
}
