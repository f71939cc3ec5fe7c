package merge

import (
	"sort"

	"github.com/dshills/osmroutegen/internal/config"
)

// Run applies §4.6 in order to g: collinear-vertex removal per way,
// solitary-node removal, then per-level clustering, representative
// rewrite and coordinate dedup.
func Run(g *Graph, tol config.Tolerances) {
	for _, w := range g.Ways {
		removeCollinearVertices(w, g, tol.GeneralMappingUncertainty, tol.AngleTolDegrees)
	}
	removeSolitaryNodes(g)

	var allClusters [][]string
	for _, level := range distinctLevels(g) {
		allClusters = append(allClusters, findClusters(g, level, tol.PointToPoint)...)
	}
	rewriteClusters(g, allClusters)
	dedupeByCoordinate(g)
}

func distinctLevels(g *Graph) []string {
	seen := make(map[string]bool)
	var levels []string
	for _, n := range g.Nodes {
		if !seen[n.Level] {
			seen[n.Level] = true
			levels = append(levels, n.Level)
		}
	}
	sort.Strings(levels)
	return levels
}
