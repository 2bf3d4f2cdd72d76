package Trees

import (
	"cmp"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/google/btree"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tAddN        = 4000
	tAddValRange = 8000
)

var sample = []int{50, 30, 70, 20, 40, 60, 80}

func sampleTree() *BSTree[int] {
	tree := New[int]()
	for _, v := range sample {
		tree.Insert(v)
	}
	return tree
}

func (u *BSTree[T]) averageDepth() float32 {
	var leaves, total uint
	var walk func(*Node[T], uint)
	walk = func(n *Node[T], d uint) {
		if n.l == nil && n.r == nil {
			leaves++
			total += d
		}
		if n.l != nil {
			walk(n.l, d+1)
		}
		if n.r != nil {
			walk(n.r, d+1)
		}
	}
	if u.root == nil {
		return 0
	}
	walk(u.root, 1)
	return float32(total) / float32(leaves)
}

func TestBSTree_Empty(t *testing.T) {
	tree := New[int]()
	if !tree.Empty() || tree.Size() != 0 {
		t.Errorf("new tree has size %d", tree.Size())
	}
	if tree.Height() != 0 {
		t.Errorf("empty tree has height %d", tree.Height())
	}
	if _, ok := tree.Minimum(); ok {
		t.Error("empty tree has a minimum")
	}
	if _, ok := tree.Maximum(); ok {
		t.Error("empty tree has a maximum")
	}
	if _, ok := tree.Search(1); ok {
		t.Error("empty tree found 1")
	}
	if _, ok := tree.RootValue(); ok {
		t.Error("empty tree has a root")
	}
	if tree.Remove(1) {
		t.Error("removed 1 from empty tree")
	}
	if !tree.Balanced() {
		t.Error("empty tree isn't balanced")
	}
	if tree.NodeCount() != 0 || tree.Corrupt() {
		t.Error("empty tree is corrupt")
	}
}

func TestBSTree_Single(t *testing.T) {
	tree := New[int]()
	if !tree.Insert(50) {
		t.Fatal("failed to insert 50")
	}
	if tree.Size() != 1 || tree.Empty() {
		t.Errorf("tree size is %d, want 1", tree.Size())
	}
	if tree.Height() != 1 {
		t.Errorf("single node tree has height %d, want 1", tree.Height())
	}
	if v, ok := tree.RootValue(); !ok || v != 50 {
		t.Errorf("root is %d, want 50", v)
	}
}

func TestBSTree_Sample(t *testing.T) {
	tree := sampleTree()
	if tree.Size() != 7 || tree.NodeCount() != 7 {
		t.Fatalf("tree size is %d, nodes %d, want 7", tree.Size(), tree.NodeCount())
	}
	if tree.Height() != 3 {
		t.Errorf("height is %d, want 3", tree.Height())
	}
	if v, _ := tree.Minimum(); v != 20 {
		t.Errorf("minimum is %d, want 20", v)
	}
	if v, _ := tree.Maximum(); v != 80 {
		t.Errorf("maximum is %d, want 80", v)
	}
	if !tree.Balanced() {
		t.Error("tree isn't balanced")
	}
	for _, v := range sample {
		if a, ok := tree.Search(v); !ok || a != v {
			t.Errorf("search %d got %d %v", v, a, ok)
		}
	}
	for _, v := range []int{10, 100, 45} {
		if _, ok := tree.Search(v); ok {
			t.Errorf("found non existent key %d", v)
		}
		if tree.Has(v) {
			t.Errorf("has non existent key %d", v)
		}
	}
}

func TestBSTree_Duplicate(t *testing.T) {
	tree := sampleTree()
	before := tree.PreOrder(nil)
	for _, v := range sample {
		if tree.Insert(v) {
			t.Errorf("inserted duplicate %d", v)
		}
	}
	if tree.Size() != 7 {
		t.Errorf("tree size is %d, want 7", tree.Size())
	}
	if !slices.Equal(before, tree.PreOrder(nil)) {
		t.Error("duplicate insert changed the shape")
	}
}

func TestBSTree_Remove(t *testing.T) {
	t.Run("leaf", func(t *testing.T) {
		tree := sampleTree()
		if !tree.Remove(20) {
			t.Fatal("failed to remove 20")
		}
		if tree.Has(20) || tree.Size() != 6 || tree.Corrupt() {
			t.Errorf("bad tree after removing a leaf, size %d", tree.Size())
		}
		if tree.Height() != 3 {
			t.Errorf("height is %d, want 3", tree.Height())
		}
	})
	t.Run("one child", func(t *testing.T) {
		tree := sampleTree()
		if !tree.Remove(40) || !tree.Remove(30) {
			t.Fatal("failed to remove 40 and 30")
		}
		if tree.Has(30) || !tree.Has(20) || tree.Size() != 5 || tree.Corrupt() {
			t.Errorf("bad tree after removing a node with one child, size %d", tree.Size())
		}
		if got := tree.PreOrder(nil); !slices.Equal(got, []int{50, 20, 70, 60, 80}) {
			t.Errorf("pre-order is %v", got)
		}
	})
	t.Run("two children", func(t *testing.T) {
		tree := sampleTree()
		if !tree.Remove(30) {
			t.Fatal("failed to remove 30")
		}
		if tree.Has(30) || !tree.Has(20) || !tree.Has(40) || tree.Size() != 6 || tree.Corrupt() {
			t.Errorf("bad tree after removing a node with two children, size %d", tree.Size())
		}
		// 30 is replaced in place by its successor 40.
		if got := tree.PreOrder(nil); !slices.Equal(got, []int{50, 40, 20, 70, 60, 80}) {
			t.Errorf("pre-order is %v", got)
		}
	})
	t.Run("root", func(t *testing.T) {
		tree := sampleTree()
		if !tree.Remove(50) {
			t.Fatal("failed to remove 50")
		}
		if v, _ := tree.RootValue(); v != 60 {
			t.Errorf("root is %d, want 60", v)
		}
		if tree.Size() != 6 || tree.Corrupt() {
			t.Errorf("bad tree after removing the root, size %d", tree.Size())
		}
	})
	t.Run("missing", func(t *testing.T) {
		tree := sampleTree()
		if tree.Remove(100) {
			t.Error("removed non existent key 100")
		}
		if tree.Size() != 7 {
			t.Errorf("tree size is %d, want 7", tree.Size())
		}
	})
}

func TestBSTree_Clear(t *testing.T) {
	tree := sampleTree()
	tree.Clear()
	if !tree.Empty() || tree.Size() != 0 || tree.Height() != 0 || tree.Root() != nil {
		t.Error("tree isn't empty after Clear")
	}
	if !tree.Insert(1) || tree.Size() != 1 {
		t.Error("can't reuse tree after Clear")
	}
}

func TestBSTree_Degenerate(t *testing.T) {
	tree := New[int]()
	for i := range 64 {
		tree.Insert(i)
	}
	if tree.Height() != 64 {
		t.Errorf("height is %d, want 64", tree.Height())
	}
	if tree.Balanced() {
		t.Error("sorted insertion shouldn't be balanced")
	}
	if v, _ := tree.Maximum(); v != 63 {
		t.Errorf("maximum is %d, want 63", v)
	}
	for i := range 64 {
		if !tree.Remove(i) {
			t.Fatalf("failed to remove %d", i)
		}
		if tree.Height() != 63-i {
			t.Fatalf("height is %d after removing %d", tree.Height(), i)
		}
	}
}

func TestBSTree_Balanced(t *testing.T) {
	tree := New[int]()
	tree.AddAll(2, 1, 3, 4)
	if !tree.Balanced() {
		t.Error("tree should be balanced")
	}
	tree.Insert(5)
	if tree.Balanced() {
		t.Error("tree shouldn't be balanced")
	}
	if d := tree.root.l.Height() - tree.root.r.Height(); d != -2 {
		t.Errorf("root balance is %d", d)
	}
}

func TestBSTree_Strings(t *testing.T) {
	tree := New[string]()
	tree.AddAll("banana", "apple", "cherry")
	for _, v := range []string{"apple", "banana", "cherry"} {
		if a, ok := tree.Search(v); !ok || a != v {
			t.Errorf("search %q got %q", v, a)
		}
	}
	if tree.Has("date") {
		t.Error("has non existent key date")
	}
	if !tree.Remove("banana") || tree.Has("banana") {
		t.Error("failed to remove banana")
	}
	if got := tree.InOrder(nil); !slices.Equal(got, []string{"apple", "cherry"}) {
		t.Errorf("in-order is %v", got)
	}
}

func TestBSTree_Floats(t *testing.T) {
	tree := New[float64]()
	tree.AddAll(2.5, 1.5, 3.5)
	if v, ok := tree.Search(1.5); !ok || v != 1.5 {
		t.Errorf("search 1.5 got %v", v)
	}
	if tree.Has(4.5) {
		t.Error("has non existent key 4.5")
	}
	if !tree.Remove(2.5) || tree.Has(2.5) {
		t.Error("failed to remove 2.5")
	}
}

type person struct {
	name string
	age  int
}

func byAge(a, b *person) int {
	return a.age - b.age
}

func TestBSTree_NewFunc(t *testing.T) {
	tree := NewFunc(byAge)
	alice, bob := &person{"alice", 30}, &person{"bob", 20}
	tree.AddAll(alice, bob)
	// Search hands back the stored element, not the argument.
	if p, ok := tree.Search(&person{"?", 30}); !ok || p != alice {
		t.Errorf("search by age got %v", p)
	}
	if tree.Insert(&person{"carol", 20}) {
		t.Error("inserted an element equal to bob")
	}
	if v, _ := tree.Minimum(); v != bob {
		t.Errorf("minimum is %v", v)
	}
}

func TestBSTree_InsertNil(t *testing.T) {
	tree := NewFunc(byAge)
	tree.Insert(&person{"alice", 30})
	defer func() {
		e, ok := recover().(*InvalidArgumentError)
		if !ok {
			t.Fatal("inserting nil didn't panic with *InvalidArgumentError")
		}
		if !strings.Contains(e.Error(), "Insert") {
			t.Errorf("error is %q", e.Error())
		}
		if tree.Size() != 1 || tree.Corrupt() {
			t.Error("failed insert changed the tree")
		}
	}()
	tree.Insert(nil)
}

func TestBSTree_InsertTypedNil(t *testing.T) {
	tree := NewFunc(func(a, b any) int {
		return cmp.Compare(*a.(*int), *b.(*int))
	})
	one := 1
	tree.Insert(&one)
	defer func() {
		if _, ok := recover().(*InvalidArgumentError); !ok {
			t.Fatal("inserting a nil *int as any didn't panic with *InvalidArgumentError")
		}
		if tree.Size() != 1 || tree.Corrupt() {
			t.Error("failed insert changed the tree")
		}
	}()
	tree.Insert((*int)(nil))
}

func TestBSTree_Add(t *testing.T) {
	tree := New[int]()
	content := make(map[int]struct{})
	for range tAddN {
		b := rg.Intn(tAddValRange)
		_, in := content[b]
		if c := tree.Insert(b); c == in {
			t.Errorf("insert %v returned %v, present %v", b, c, in)
		}
		content[b] = struct{}{}
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	t.Logf("depth: %f, size: %d, height: %d.\n", tree.averageDepth(), tree.Size(), tree.Height())
	for k := range content {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	if tree.Corrupt() {
		t.Error("tree is corrupt")
	}
}

// TestBSTree_AddDel mirrors random inserts and removals into a btree.BTreeG
// and compares the two after every round.
func TestBSTree_AddDel(t *testing.T) {
	tree := New[int]()
	oracle := btree.NewOrderedG[int](8)
	for round := range 8 {
		for range tAddN / 2 {
			v := rg.Intn(tAddValRange)
			_, had := oracle.ReplaceOrInsert(v)
			if tree.Insert(v) == had {
				t.Fatalf("insert %d disagrees with oracle", v)
			}
		}
		for range rg.Intn(tAddN) {
			v := rg.Intn(tAddValRange)
			_, had := oracle.Delete(v)
			if tree.Remove(v) != had {
				t.Fatalf("remove %d disagrees with oracle", v)
			}
			if tree.Remove(v) {
				t.Fatalf("can delete a second time key %v", v)
			}
		}
		if tree.Size() != uint(oracle.Len()) {
			t.Fatalf("round %d: tree size is %d, want %d", round, tree.Size(), oracle.Len())
		}
		want := make([]int, 0, oracle.Len())
		oracle.Ascend(func(v int) bool {
			want = append(want, v)
			return true
		})
		if got := tree.InOrder(nil); !slices.Equal(got, want) {
			t.Fatalf("round %d: in-order differs from oracle", round)
		}
		if tree.Corrupt() {
			t.Fatalf("round %d: tree is corrupt", round)
		}
		if len(want) == 0 {
			continue
		}
		if v, _ := tree.Minimum(); v != want[0] {
			t.Errorf("minimum is %d, want %d", v, want[0])
		}
		if v, _ := tree.Maximum(); v != want[len(want)-1] {
			t.Errorf("maximum is %d, want %d", v, want[len(want)-1])
		}
	}
	t.Logf("depth: %f, size: %d, height: %d.\n", tree.averageDepth(), tree.Size(), tree.Height())
}

func TestBSTree_Corrupt(t *testing.T) {
	tree := sampleTree()
	tree.root.l.r.v = 55
	if !tree.Corrupt() {
		t.Error("out of order value not detected")
	}
	tree = sampleTree()
	tree.root.r.h = 5
	if !tree.Corrupt() {
		t.Error("stale height not detected")
	}
	tree = sampleTree()
	tree.sz++
	if !tree.Corrupt() {
		t.Error("wrong size not detected")
	}
}
