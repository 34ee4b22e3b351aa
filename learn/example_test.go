// SPDX-License-Identifier: MIT

package learn_test

import (
	"fmt"

	"github.com/coderodde/pctree/alphabet"
	"github.com/coderodde/pctree/dataset"
	"github.com/coderodde/pctree/learn"
)

func ExampleLearn() {
	a, _ := alphabet.New("A", "C", "G", "T")
	d, _ := dataset.FromRecords([][]string{
		{"A", "A"}, {"T", "A"}, {"A", "A"}, {"C", "G"}, {"C", "T"},
		{"C", "A"}, {"T", "A"}, {"T", "A"}, {"T", "C"}, {"C", "T"},
	})

	t, err := learn.Learn(a, d)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("score %.4f\n", t.Score())
	fmt.Print(t)

	p, _ := t.Probability([]string{"C"}, "T")
	fmt.Printf("P(T | C) = %.2f\n", p)
	// Output:
	// score -13.7700
	// {}
	//   {A, G, T}
	//   {C}
	// P(T | C) = 0.50
}

func ExampleNew() {
	a, _ := alphabet.New("A", "C", "G", "T")
	d, _ := dataset.FromRecords([][]string{
		{"A", "C", "A"}, {"C", "A", "G"}, {"G", "G", "T"}, {"A", "A", "A"},
		{"T", "C", "C"}, {"C", "C", "A"}, {"A", "T", "T"}, {"G", "A", "G"},
	})

	for _, alg := range []learn.Algorithm{learn.Optimal, learn.Independence} {
		l, err := learn.New(learn.WithAlgorithm(alg))
		if err != nil {
			fmt.Println(err)
			return
		}
		t, err := l.Learn(a, d)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%s %.4f leaves=%d\n", alg, t.Score(), len(t.Leaves()))
	}
	// Output:
	// optimal -12.3068 leaves=2
	// independence -13.6863 leaves=1
}
