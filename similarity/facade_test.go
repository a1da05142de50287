package similarity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simbyte/similarity"
	"github.com/katalvlaran/simbyte/subcost"
)

func TestEditDistanceClassic(t *testing.T) {
	t.Parallel()

	got, err := similarity.EditDistance([]byte("kitten"), []byte("sitting"))
	require.NoError(t, err)
	require.EqualValues(t, 3, got)
}

func TestEditDistanceEmptyInputs(t *testing.T) {
	t.Parallel()

	got, err := similarity.EditDistance([]byte(""), []byte(""))
	require.NoError(t, err)
	require.Zero(t, got)

	got, err = similarity.EditDistance([]byte("abc"), []byte(""))
	require.NoError(t, err)
	require.EqualValues(t, 3, got)
}

func TestEditDistanceSymmetry(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"kitten", "sitting"},
		{"flaw", "lawn"},
		{"", "abc"},
		{"gumbo", "gambol"},
	}
	for _, p := range pairs {
		ab, err := similarity.EditDistance([]byte(p[0]), []byte(p[1]))
		require.NoError(t, err)
		ba, err := similarity.EditDistance([]byte(p[1]), []byte(p[0]))
		require.NoError(t, err)
		require.Equalf(t, ab, ba, "edit_distance(%q,%q) != edit_distance(%q,%q)", p[0], p[1], p[1], p[0])
	}
}

func TestEditDistanceIdentity(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "a", "abracadabra", "日本語"} {
		got, err := similarity.EditDistance([]byte(s), []byte(s))
		require.NoError(t, err)
		require.Zero(t, got)
	}
}

func TestEditDistanceTriangleInequality(t *testing.T) {
	t.Parallel()

	a, b, c := []byte("kitten"), []byte("sitting"), []byte("sitten")
	ab, err := similarity.EditDistance(a, b)
	require.NoError(t, err)
	bc, err := similarity.EditDistance(b, c)
	require.NoError(t, err)
	ac, err := similarity.EditDistance(a, c)
	require.NoError(t, err)
	require.LessOrEqual(t, ac, ab+bc)
}

func TestEditDistanceBounds(t *testing.T) {
	t.Parallel()

	a, b := []byte("abcdef"), []byte("xy")
	got, err := similarity.EditDistance(a, b)
	require.NoError(t, err)
	require.LessOrEqual(t, got, uint64(max(len(a), len(b))))
	require.GreaterOrEqual(t, got, uint64(absDiff(len(a), len(b))))
}

func TestEditDistanceBoundSentinel(t *testing.T) {
	t.Parallel()

	a, b := []byte("kitten"), []byte("sitting")
	got, err := similarity.EditDistance(a, b, similarity.WithBound(1))
	require.NoError(t, err)
	require.EqualValues(t, 1, got, "bound exceeded: call must return the bound itself")
}

func TestEditDistanceBoundFromLengthDifference(t *testing.T) {
	t.Parallel()

	got, err := similarity.EditDistance([]byte("a"), []byte("abcdefgh"), similarity.WithBound(2))
	require.NoError(t, err)
	require.EqualValues(t, 2, got)
}

func TestHammingDistance(t *testing.T) {
	t.Parallel()

	require.EqualValues(t, 3, similarity.HammingDistance([]byte("karolin"), []byte("kathrin")))
	require.EqualValues(t, 3, similarity.HammingDistance([]byte("abc"), []byte("")))
}

func TestNeedlemanWunschLevenshteinBridge(t *testing.T) {
	t.Parallel()

	subs := subcost.Diagonal(0, -1)
	gap := similarity.Linear(-1)

	pairs := [][2]string{{"kitten", "sitting"}, {"", "abc"}, {"flaw", "lawn"}}
	for _, p := range pairs {
		score, err := similarity.NeedlemanWunschScore([]byte(p[0]), []byte(p[1]), subs, gap)
		require.NoError(t, err)
		dist, err := similarity.EditDistance([]byte(p[0]), []byte(p[1]))
		require.NoError(t, err)
		require.Equalf(t, -int64(dist), score, "pair %v", p)
	}
}

func TestNeedlemanWunschAffineExample(t *testing.T) {
	t.Parallel()

	subs := subcost.Diagonal(0, -1)
	gap := similarity.Affine(-2, -1)

	score, err := similarity.NeedlemanWunschScore([]byte("AAAA"), []byte("AATAA"), subs, gap)
	require.NoError(t, err)
	require.EqualValues(t, -2, score)
}

func TestSmithWatermanLocalMatch(t *testing.T) {
	t.Parallel()

	subs := subcost.Diagonal(1, -1)
	gap := similarity.Linear(-2)

	score, err := similarity.SmithWatermanScore([]byte("XXAGCTYY"), []byte("AGCT"), subs, gap)
	require.NoError(t, err)
	require.EqualValues(t, 4, score)
}

func TestSmithWatermanLowerBound(t *testing.T) {
	t.Parallel()

	subs := subcost.Diagonal(1, -2)
	gap := similarity.Linear(-3)

	score, err := similarity.SmithWatermanScore([]byte("AAAA"), []byte("TTTT"), subs, gap)
	require.NoError(t, err)
	require.GreaterOrEqual(t, score, int64(0))
}

func TestAffineCollapsesToLinear(t *testing.T) {
	t.Parallel()

	subs := subcost.Diagonal(2, -1)
	affine := similarity.Affine(-3, -3)
	linear := similarity.Linear(-3)

	a, b := []byte("gumbo"), []byte("gambol")
	scoreAffine, err := similarity.NeedlemanWunschScore(a, b, subs, affine)
	require.NoError(t, err)
	scoreLinear, err := similarity.NeedlemanWunschScore(a, b, subs, linear)
	require.NoError(t, err)
	require.Equal(t, scoreLinear, scoreAffine)
}

func TestNeedlemanWunschEmptyInputs(t *testing.T) {
	t.Parallel()

	subs := subcost.Diagonal(0, -1)
	gap := similarity.Linear(-1)

	score, err := similarity.NeedlemanWunschScore([]byte(""), []byte("abc"), subs, gap)
	require.NoError(t, err)
	require.EqualValues(t, -3, score)
}

func TestBlosum62DiagonalIdentity(t *testing.T) {
	t.Parallel()

	subs := subcost.BLOSUM62()
	gap := similarity.Linear(-4)
	seq := []byte("ACDEFGH")

	score, err := similarity.NeedlemanWunschScore(seq, seq, subs, gap)
	require.NoError(t, err)

	var want int64
	for _, c := range seq {
		want += int64(subs.Apply(c, c))
	}
	require.Equal(t, want, score)
}

func TestEditDistanceUTF8(t *testing.T) {
	t.Parallel()

	got, err := similarity.EditDistanceUTF8([]byte("Привет"), []byte("Превет"))
	require.NoError(t, err)
	require.EqualValues(t, 1, got)
}

func TestEditDistanceUTF8AsciiAgreesWithByteVariant(t *testing.T) {
	t.Parallel()

	a, b := []byte("kitten"), []byte("sitting")
	byteDist, err := similarity.EditDistance(a, b)
	require.NoError(t, err)
	utf8Dist, err := similarity.EditDistanceUTF8(a, b)
	require.NoError(t, err)
	require.Equal(t, byteDist, utf8Dist)
}

func TestHammingDistanceUTF8(t *testing.T) {
	t.Parallel()

	require.EqualValues(t, 1, similarity.HammingDistanceUTF8([]byte("Привет"), []byte("Превет")))
}

func TestWalkerEquivalenceAcrossSizes(t *testing.T) {
	t.Parallel()

	// Short strings route to the row walker (spec §4.G step 4); longer
	// ones route to the diagonal walker. Both must return the true
	// distance: 3 for kitten/sitting, and 10 for longB, which is longA
	// rotated by one position in its period-5 pattern (4 insertions in
	// front plus 6 at the end, matching the length-difference lower bound).
	short := []byte("kitten")
	longA := make([]byte, 200)
	longB := make([]byte, 210)
	for i := range longA {
		longA[i] = byte('a' + i%5)
	}
	for i := range longB {
		longB[i] = byte('a' + (i+1)%5)
	}

	got, err := similarity.EditDistance(short, []byte("sitting"))
	require.NoError(t, err)
	require.EqualValues(t, 3, got)
	got, err = similarity.EditDistance(longA, longB)
	require.NoError(t, err)
	require.EqualValues(t, 10, got)
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}

	return b - a
}

// FuzzEditDistanceSymmetry feeds native fuzzing the same invariants
// TestEditDistanceSymmetry and TestEditDistanceTriangleInequality check
// against a fixed corpus: distance(a,b) == distance(b,a), the triangle
// inequality against a third string derived from the seed, and the
// [|len(a)-len(b)|, max(len(a),len(b))] bound every pair must fall inside.
func FuzzEditDistanceSymmetry(f *testing.F) {
	for _, p := range [][2]string{
		{"kitten", "sitting"},
		{"flaw", "lawn"},
		{"", "abc"},
		{"gumbo", "gambol"},
		{"日本語", "本語日"},
	} {
		f.Add(p[0], p[1])
	}

	f.Fuzz(func(t *testing.T, a, b string) {
		ab, err := similarity.EditDistance([]byte(a), []byte(b))
		require.NoError(t, err)
		ba, err := similarity.EditDistance([]byte(b), []byte(a))
		require.NoError(t, err)
		require.Equal(t, ab, ba)

		require.LessOrEqual(t, ab, uint64(max(len(a), len(b))))
		require.GreaterOrEqual(t, ab, uint64(absDiff(len(a), len(b))))

		// Triangle inequality against a third point reachable by
		// truncating b, so it costs at most one edit from b.
		c := b
		if len(c) > 0 {
			c = c[:len(c)-1]
		}
		bc, err := similarity.EditDistance([]byte(b), []byte(c))
		require.NoError(t, err)
		ac, err := similarity.EditDistance([]byte(a), []byte(c))
		require.NoError(t, err)
		require.LessOrEqual(t, ac, ab+bc)
	})
}
