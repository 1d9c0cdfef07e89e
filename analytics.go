package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/callmeahab/scent-variants/variants"
)

// maxReportRows caps the group table in the stats report
const maxReportRows = 10

// printStatsReport writes grouping effectiveness and the largest groups
func printStatsReport(w io.Writer, groups []variants.VariantGroup) {
	stats := variants.Summarize(groups)

	fmt.Fprintf(w, "\nGrouping statistics\n\n")
	fmt.Fprintf(w, "   Total variants:        %d\n", stats.TotalVariants)
	fmt.Fprintf(w, "   Total groups:          %d\n", stats.TotalGroups)
	fmt.Fprintf(w, "   Singleton groups:      %d\n", stats.SingletonGroups)
	fmt.Fprintf(w, "   Multi-variant groups:  %d\n", stats.MultiVariantGroups)
	fmt.Fprintf(w, "   Avg variants/group:    %.2f\n", stats.AvgVariantsPerGroup)
	fmt.Fprintf(w, "   Max variants/group:    %d\n", stats.MaxVariantsPerGroup)
	if stats.TotalVariants > 0 {
		reduction := 100 * (1 - float64(stats.TotalGroups)/float64(stats.TotalVariants))
		fmt.Fprintf(w, "   Catalog reduction:     %.1f%%\n", reduction)
	}
	fmt.Fprintf(w, "   Alternative picks:     %d groups\n", stats.AlternativeRecGroups)

	if len(stats.BadgeCounts) > 0 {
		fmt.Fprintf(w, "\nBadges\n\n")
		types := make([]string, 0, len(stats.BadgeCounts))
		for t := range stats.BadgeCounts {
			types = append(types, string(t))
		}
		slices.Sort(types)
		for _, t := range types {
			fmt.Fprintf(w, "   %-14s %d\n", t, stats.BadgeCounts[variants.BadgeType(t)])
		}
	}

	largest := slices.Clone(groups)
	slices.SortStableFunc(largest, func(a, b variants.VariantGroup) int {
		return b.TotalVariants - a.TotalVariants
	})
	n := min(maxReportRows, len(largest))
	if n == 0 {
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintf(w, "\nLargest groups\n\n")
	fmt.Fprintln(w, "Rank | Group                                    | Primary                  | Variants | Popularity")
	fmt.Fprintln(w, "-----|------------------------------------------|--------------------------|----------|-----------")
	for i, g := range largest[:n] {
		fmt.Fprintf(w, "%-4d | %-40s | %-24s | %8d | %10.1f\n",
			i+1, truncate(g.GroupName, 40), truncate(g.PrimaryVariant.Name, 24), g.TotalVariants, g.PopularityScore)
	}
	if len(largest) > n {
		fmt.Fprintf(w, "\n... and %d more groups\n", len(largest)-n)
	}
	fmt.Fprintln(w)
}

func truncate(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n-3]) + "..."
}
