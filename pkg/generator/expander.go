package generator

// cartesianProduct builds the cross product of the options, extending every partial combination with the
// first option before moving to the next one. Expansion stops as soon as another combination would exceed
// the limit; the combinations built so far are returned as they are (they may be shorter than len(options))
func cartesianProduct[T any](options [][]T, limit int) (product [][]T, truncated bool) {
	product = [][]T{{}}
	for _, option := range options {
		extended := make([][]T, 0, min(len(product)*len(option), limit))
		for _, item := range option {
			for _, combination := range product {
				if len(extended) >= limit {
					return extended, true
				}
				next := make([]T, len(combination), len(combination)+1)
				copy(next, combination)
				extended = append(extended, append(next, item))
			}
		}
		product = extended
	}
	return product, false
}

// combineIteratively expands the options depth-first, one list at a time, and stops the whole expansion once
// limit complete combinations have been built and another one is found
func combineIteratively[T any](options [][]T, limit int) (results [][]T, truncated bool) {
	results = make([][]T, 0)
	prefix := make([]T, 0, len(options))

	var generate func(depth int) bool
	generate = func(depth int) bool {
		if depth == len(options) {
			if len(results) >= limit {
				truncated = true
				return false
			}
			resultCopy := make([]T, len(prefix))
			copy(resultCopy, prefix)
			results = append(results, resultCopy)
			return true
		}

		for _, item := range options[depth] {
			prefix = append(prefix, item)
			proceed := generate(depth + 1)
			prefix = prefix[:len(prefix)-1]
			if !proceed {
				return false
			}
		}
		return true
	}

	generate(0)
	return results, truncated
}
