package similarity

// diagonalWalkerRunes and rowWalkerRunes are EditDistanceUTF8's DP
// traversals: the same recurrence as the byte walkers, but comparing
// decoded codepoints directly instead of going through a subcost.Substituter
// (EditDistanceUTF8 has no subs/gap parameters in its contract — spec §6.1
// — so the unit Levenshtein cost is baked in here rather than threaded
// through an interface built for byte-indexed tables).

func diagonalWalkerRunes[T Cell](shorter, longer []rune) T {
	m, n := len(shorter), len(longer)
	var g T = 1

	prev2 := make([]T, m+1)
	prev1 := make([]T, m+1)
	next := make([]T, m+1)

	total := m + n
	for d := 0; d <= total; d++ {
		lo := 0
		if d-n > lo {
			lo = d - n
		}
		hi := d
		if m < hi {
			hi = m
		}

		for p := lo; p <= hi; p++ {
			q := d - p
			if p == 0 || q == 0 {
				next[p] = T(d) * g
				continue
			}
			var s T
			if shorter[p-1] != longer[q-1] {
				s = 1
			}
			next[p] = cellStepLinear[T](Global, MinimizeDistance, prev2[p-1], prev1[p-1], prev1[p], s, g)
		}

		prev2, prev1, next = prev1, next, prev2
	}

	return prev1[m]
}

func rowWalkerRunes[T Cell](shorter, longer []rune) T {
	m, n := len(shorter), len(longer)
	var g T = 1

	prev := make([]T, n+1)
	curr := make([]T, n+1)

	for j := 0; j <= n; j++ {
		prev[j] = T(j) * g
	}

	for i := 1; i <= m; i++ {
		curr[0] = T(i) * g

		for j := 1; j <= n; j++ {
			var s T
			if shorter[i-1] != longer[j-1] {
				s = 1
			}
			curr[j] = cellStepLinear[T](Global, MinimizeDistance, prev[j-1], prev[j], curr[j-1], s, g)
		}

		prev, curr = curr, prev
	}

	return prev[n]
}
