package similarity

import (
	"fmt"
	"sort"
)

// Cluster groups vector positions around a center position.
type Cluster struct {
	ID      int   `json:"id"`
	Center  int   `json:"center"`
	Members []int `json:"members"`
}

// Size returns the number of members, center included.
func (c Cluster) Size() int {
	return len(c.Members)
}

// GreedyClusters assigns every vector to exactly one cluster. Vectors are
// visited in order; an unassigned vector becomes a new center and claims every
// later unassigned vector whose similarity to the center is at least threshold.
// Clusters are returned largest first; equal sizes keep creation order.
func GreedyClusters(vectors [][]float32, threshold float64) ([]Cluster, error) {
	used := make([]bool, len(vectors))
	clusters := make([]Cluster, 0)

	for i := range vectors {
		if used[i] {
			continue
		}
		used[i] = true
		members := []int{i}

		for j := i + 1; j < len(vectors); j++ {
			if used[j] {
				continue
			}
			score, err := Cosine(vectors[i], vectors[j])
			if err != nil {
				return nil, fmt.Errorf("pair (%d, %d): %w", i, j, err)
			}
			if score >= threshold {
				members = append(members, j)
				used[j] = true
			}
		}

		clusters = append(clusters, Cluster{
			ID:      len(clusters),
			Center:  i,
			Members: members,
		})
	}

	sort.SliceStable(clusters, func(a, b int) bool {
		return clusters[a].Size() > clusters[b].Size()
	})

	return clusters, nil
}
