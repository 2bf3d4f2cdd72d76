package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Erick01081/BSTArep/Trees"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/spf13/cobra"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time inserting and finding N keys in BSTree and other ordered containers",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := cmd.Flags().GetInt("N")
		if err != nil {
			return err
		}
		if n <= 0 {
			return fmt.Errorf("N must be positive, got %d", n)
		}
		seed, err := cmd.Flags().GetInt64("seed")
		if err != nil {
			return err
		}
		sorted, err := cmd.Flags().GetBool("sorted")
		if err != nil {
			return err
		}
		keys := benchKeys(n, seed, sorted)
		for _, c := range containers() {
			insert, find := measure(keys, c.insert, c.has)
			theLog.Info("bench", "container", c.name, "N", n, "insert", insert, "find", find)
		}
		return nil
	},
}

func init() {
	benchCmd.Flags().IntP("N", "N", 100000, "number of keys")
	benchCmd.Flags().Int64("seed", 0, "seed of the key permutation")
	benchCmd.Flags().Bool("sorted", false, "insert keys in ascending order, the worst case for an unbalanced tree")
}

func benchKeys(n int, seed int64, sorted bool) []int {
	if sorted {
		keys := make([]int, n)
		for i := range keys {
			keys[i] = i
		}
		return keys
	}
	return rand.New(rand.NewSource(seed)).Perm(n)
}

type container struct {
	name   string
	insert func(int)
	has    func(int) bool
}

func containers() []container {
	bst := Trees.New[int]()
	bt := btree.NewOrderedG[int](32)
	rb := redblacktree.NewWithIntComparator()
	lr := llrb.New()
	return []container{
		{"BSTree", func(k int) { bst.Insert(k) }, bst.Has},
		{"google/btree", func(k int) { bt.ReplaceOrInsert(k) }, bt.Has},
		{"gods/redblacktree", func(k int) { rb.Put(k, struct{}{}) }, func(k int) bool {
			_, found := rb.Get(k)
			return found
		}},
		{"GoLLRB", func(k int) { lr.ReplaceOrInsert(llrb.Int(k)) }, func(k int) bool {
			return lr.Has(llrb.Int(k))
		}},
	}
}

func measure(keys []int, insert func(int), has func(int) bool) (time.Duration, time.Duration) {
	start := time.Now()
	for _, k := range keys {
		insert(k)
	}
	mid := time.Now()
	for _, k := range keys {
		if !has(k) {
			theLog.Error("key lost", "key", k)
		}
	}
	return mid.Sub(start), time.Since(mid)
}
