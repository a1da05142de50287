package similarity_test

import (
	"fmt"

	"github.com/katalvlaran/simbyte/similarity"
	"github.com/katalvlaran/simbyte/subcost"
)

func ExampleEditDistance() {
	dist, err := similarity.EditDistance([]byte("kitten"), []byte("sitting"))
	if err != nil {
		panic(err)
	}
	fmt.Println(dist)
	// Output: 3
}

func ExampleSmithWatermanScore() {
	subs := subcost.Diagonal(1, -1)
	gap := similarity.Linear(-2)

	score, err := similarity.SmithWatermanScore([]byte("XXAGCTYY"), []byte("AGCT"), subs, gap)
	if err != nil {
		panic(err)
	}
	fmt.Println(score)
	// Output: 4
}
