package Trees

import "github.com/Erick01081/BSTArep/Queues"

func inOrder[T any](n *Node[T], dst []T) []T {
	if n != nil {
		dst = inOrder(n.l, dst)
		dst = append(dst, n.v)
		dst = inOrder(n.r, dst)
	}
	return dst
}

func preOrder[T any](n *Node[T], dst []T) []T {
	if n != nil {
		dst = append(dst, n.v)
		dst = preOrder(n.l, dst)
		dst = preOrder(n.r, dst)
	}
	return dst
}

func postOrder[T any](n *Node[T], dst []T) []T {
	if n != nil {
		dst = postOrder(n.l, dst)
		dst = postOrder(n.r, dst)
		dst = append(dst, n.v)
	}
	return dst
}

// InOrder [Tree.InOrder]. Recursive.
// The result is sorted in ascending order.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) InOrder(dst []T) []T {
	return inOrder(u.root, dst)
}

// PreOrder [Tree.PreOrder]. Recursive: node, left, right.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) PreOrder(dst []T) []T {
	return preOrder(u.root, dst)
}

// PostOrder [Tree.PostOrder]. Recursive: left, right, node.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) PostOrder(dst []T) []T {
	return postOrder(u.root, dst)
}

// LevelOrder [Tree.LevelOrder]
// Breadth first using a FIFO queue seeded with the root. Left children
// are queued before right ones.
// Time: O(n); Space: O(width)
func (u *BSTree[T]) LevelOrder(dst []T) []T {
	if u.root == nil {
		return dst
	}
	q := Queues.MakeArrayQueue[*Node[T]](uint(u.root.h) + 1)
	for q.Push(u.root); !q.Empty(); {
		cur, _ := q.Pop()
		dst = append(dst, cur.v)
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
	return dst
}
