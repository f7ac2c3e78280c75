package matcher

// maximumMatching computes a maximum bipartite matching between n left
// nodes and m right nodes under the given compatibility relation, using the
// standard augmenting-path algorithm. O(V*E), fine for test-sized inputs.
//
// It operates on index sets only, never on pattern or value trees, so the
// three unordered array strategies share it and it tests in isolation.
//
// The returned slices hold the final assignment: leftToRight[i] is the
// right node assigned to left node i, or -1 when i stayed unmatched, and
// rightToLeft symmetrically. When several maximum matchings exist the
// first one found in index order wins; callers must not read meaning into
// the particular assignment beyond its size.
func maximumMatching(n, m int, compatible func(i, j int) bool) (leftToRight, rightToLeft []int) {
	leftToRight = make([]int, n)
	rightToLeft = make([]int, m)
	for i := range leftToRight {
		leftToRight[i] = -1
	}
	for j := range rightToLeft {
		rightToLeft[j] = -1
	}

	var visited []bool
	var augment func(i int) bool
	augment = func(i int) bool {
		for j := 0; j < m; j++ {
			if visited[j] || !compatible(i, j) {
				continue
			}
			visited[j] = true
			if rightToLeft[j] == -1 || augment(rightToLeft[j]) {
				leftToRight[i] = j
				rightToLeft[j] = i
				return true
			}
		}
		return false
	}

	for i := 0; i < n; i++ {
		visited = make([]bool, m)
		augment(i)
	}
	return leftToRight, rightToLeft
}

// matchingSize counts the assigned pairs in one side of an assignment.
func matchingSize(assignment []int) int {
	size := 0
	for _, peer := range assignment {
		if peer != -1 {
			size++
		}
	}
	return size
}
