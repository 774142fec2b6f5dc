package bench

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
	"github.com/sirupsen/logrus"

	"linked_bst/bst"
)

// DefaultSampleSize is the number of words looked up when Config.SampleSize
// is zero.
const DefaultSampleSize = 10000

// Names of the structures compared by Run, in report order.
const (
	ListLinear   = "list (linear scan)"
	ListBinary   = "sorted list (binary search)"
	TreeSorted   = "BST (sorted insertion)"
	TreeShuffled = "BST (shuffled insertion)"
	TreeBalanced = "BST (rebalanced)"
)

type Config struct {
	// SampleSize is how many words are drawn from the word list, both to
	// build the trees and to look up.
	SampleSize int
	// Rand is the random source for sampling and shuffling; it defaults to
	// primitive.RandomUint64.
	Rand func() uint64
	Log  logrus.FieldLogger
}

func (c Config) withDefaults() Config {
	if c.SampleSize <= 0 {
		c.SampleSize = DefaultSampleSize
	}
	if c.Rand == nil {
		c.Rand = primitive.RandomUint64
	}
	if c.Log == nil {
		c.Log = logrus.StandardLogger()
	}
	return c
}

// Shape describes a tree that was timed.
type Shape struct {
	Size     int
	Height   int
	Balanced bool
}

type Result struct {
	Name    string
	Elapsed time.Duration
	// Found counts lookups that succeeded; every lookup is for a word that is
	// present, so anything short of the sample size is a bug.
	Found int
	// Shape is nil for the lists.
	Shape *Shape
}

type Report struct {
	Words   int
	Queries int
	Results []Result
}

func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d lookups in %d words\n", r.Queries, r.Words)
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, res := range r.Results {
		fmt.Fprintf(w, "%s:\t%v\tfound %d", res.Name, res.Elapsed, res.Found)
		if res.Shape != nil {
			fmt.Fprintf(w, "\theight %d\tbalanced %t", res.Shape.Height, res.Shape.Balanced)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	return b.String()
}

func timeLookups(name string, queries []string, lookup func(string) bool) Result {
	found := 0
	start := time.Now()
	for _, q := range queries {
		if lookup(q) {
			found++
		}
	}
	return Result{Name: name, Elapsed: time.Since(start), Found: found}
}

func timeTree(name string, tree *bst.Tree[string], queries []string) Result {
	res := timeLookups(name, queries, tree.Contains)
	res.Shape = &Shape{Size: tree.Len(), Height: tree.Height(), Balanced: tree.IsBalanced()}
	return res
}

// Run draws a random sample of words and times looking every sampled word up
// in: words itself by linear scan, a sorted copy of words by binary search, a
// tree built from the sample in sorted order (a degenerate chain), a tree built
// from the sample in random order, and that same random tree after Rebalance.
func Run(words []string, cfg Config) (*Report, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	cfg = cfg.withDefaults()
	log := cfg.Log.WithField("words", len(words))

	sample := Sample(words, cfg.SampleSize, cfg.Rand)
	ordered := slices.Clone(sample)
	slices.Sort(ordered)
	shuffled := Shuffle(sample, cfg.Rand)
	sortedWords := slices.Clone(words)
	slices.Sort(sortedWords)
	log.WithField("sample", len(sample)).Debug("sampled")

	// each tree is owned by the goroutine that builds it until Join
	var sortedTree, shuffledTree, balancedTree *bst.Tree[string]
	handles := []*std.JoinHandle{
		std.Spawn(func() { sortedTree = bst.New(ordered...) }),
		std.Spawn(func() { shuffledTree = bst.New(shuffled...) }),
		std.Spawn(func() {
			balancedTree = bst.New(shuffled...)
			balancedTree.Rebalance()
		}),
	}
	for _, h := range handles {
		h.Join()
	}
	for name, tree := range map[string]*bst.Tree[string]{
		TreeSorted:   sortedTree,
		TreeShuffled: shuffledTree,
		TreeBalanced: balancedTree,
	} {
		if err := tree.Check(); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	log.Debug("trees built")

	report := &Report{Words: len(words), Queries: len(sample)}
	report.Results = append(report.Results,
		timeLookups(ListLinear, sample, func(q string) bool {
			_, ok := LinearSearch(words, q)
			return ok
		}),
		timeLookups(ListBinary, sample, func(q string) bool {
			_, ok := BinarySearch(sortedWords, q)
			return ok
		}),
		timeTree(TreeSorted, sortedTree, sample),
		timeTree(TreeShuffled, shuffledTree, sample),
		timeTree(TreeBalanced, balancedTree, sample),
	)
	for _, res := range report.Results {
		log.WithFields(logrus.Fields{
			"structure": res.Name,
			"elapsed":   res.Elapsed,
			"found":     res.Found,
		}).Info("timed lookups")
	}
	return report, nil
}
