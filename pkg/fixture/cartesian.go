package fixture

// Size returns the cartesian-product size of the set's value lists.
// The empty set has size zero: it yields no parameter points.
func (s ParameterSet) Size() int {
	if len(s) == 0 {
		return 0
	}
	size := 1
	for _, p := range s {
		size *= len(p.Values)
	}
	return size
}

// Points enumerates the cartesian product of the set's value lists, yielding
// one parameter point (a concrete value per option) per combination. Points
// are enumerated in odometer order over the declared parameter order, so the
// result is stable across runs.
func (s ParameterSet) Points() []map[string]any {
	size := s.Size()
	if size == 0 {
		return nil
	}

	points := make([]map[string]any, 0, size)
	indices := make([]int, len(s))
	for {
		point := make(map[string]any, len(s))
		for i, p := range s {
			point[p.Name] = p.Values[indices[i]]
		}
		points = append(points, point)

		// Advance the odometer, least-significant parameter last.
		i := len(s) - 1
		for i >= 0 {
			indices[i]++
			if indices[i] < len(s[i].Values) {
				break
			}
			indices[i] = 0
			i--
		}
		if i < 0 {
			return points
		}
	}
}
