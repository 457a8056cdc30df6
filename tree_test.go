package boxlayout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leafStyle() Style {
	return NewStyle(WithSize(MustLength(10), MustLength(10)))
}

// requireChildren asserts the child list of id and the parent link of each child.
func requireChildren(t *testing.T, tree *Tree[string], id NodeID, want ...NodeID) {
	t.Helper()
	got, err := tree.Children(id)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	for _, c := range want {
		p, ok, err := tree.Parent(c)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, id, p)
	}
}

func TestTree_NewLeaf(t *testing.T) {
	tree := New[string]()
	id := tree.NewLeaf(leafStyle())

	assert.Equal(t, 1, tree.TotalNodeCount())
	n, err := tree.ChildCount(id)
	require.NoError(t, err)
	assert.Zero(t, n)

	dirty, err := tree.Dirty(id)
	require.NoError(t, err)
	assert.True(t, dirty)

	_, ok, err := tree.Parent(id)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = tree.NodeContext(id)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = tree.Layout(id)
	assert.ErrorIs(t, err, ErrInvalidNodeID, "layout is absent before the first pass")
}

func TestTree_NewWithChildren(t *testing.T) {
	tree := New[string]()
	a := tree.NewLeaf(leafStyle())
	b := tree.NewLeaf(leafStyle())

	root, err := tree.NewWithChildren(DefaultStyle(), []NodeID{a, b})
	require.NoError(t, err)
	requireChildren(t, tree, root, a, b)

	// Moving a child to a new parent detaches it from the old one.
	other, err := tree.NewWithChildren(DefaultStyle(), []NodeID{b})
	require.NoError(t, err)
	requireChildren(t, tree, root, a)
	requireChildren(t, tree, other, b)
}

func TestTree_NewWithChildrenErrors(t *testing.T) {
	type tc struct {
		children func(tree *Tree[string]) []NodeID
		wantErr  error
	}

	tests := map[string]tc{
		"stale child": {
			children: func(tree *Tree[string]) []NodeID {
				id := tree.NewLeaf(leafStyle())
				_, _ = tree.Remove(id)
				return []NodeID{id}
			},
			wantErr: ErrInvalidChildNode,
		},
		"duplicate child": {
			children: func(tree *Tree[string]) []NodeID {
				id := tree.NewLeaf(leafStyle())
				return []NodeID{id, id}
			},
			wantErr: ErrInvalidInputNode,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := New[string]()
			children := tt.children(tree)
			before := tree.TotalNodeCount()

			_, err := tree.NewWithChildren(DefaultStyle(), children)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrTree)
			assert.Equal(t, before, tree.TotalNodeCount())
		})
	}
}

func TestTree_ChildMutations(t *testing.T) {
	type tc struct {
		mutate func(t *testing.T, tree *Tree[string], root NodeID, kids []NodeID)
		want   []int // indices into kids
	}

	tests := map[string]tc{
		"add child appends": {
			mutate: func(t *testing.T, tree *Tree[string], root NodeID, kids []NodeID) {
				require.NoError(t, tree.AddChild(root, kids[3]))
			},
			want: []int{0, 1, 2, 3},
		},
		"insert at front": {
			mutate: func(t *testing.T, tree *Tree[string], root NodeID, kids []NodeID) {
				require.NoError(t, tree.InsertChildAtIndex(root, 0, kids[3]))
			},
			want: []int{3, 0, 1, 2},
		},
		"insert at end": {
			mutate: func(t *testing.T, tree *Tree[string], root NodeID, kids []NodeID) {
				require.NoError(t, tree.InsertChildAtIndex(root, 3, kids[3]))
			},
			want: []int{0, 1, 2, 3},
		},
		"insert existing child moves it": {
			mutate: func(t *testing.T, tree *Tree[string], root NodeID, kids []NodeID) {
				require.NoError(t, tree.InsertChildAtIndex(root, 0, kids[2]))
			},
			want: []int{2, 0, 1},
		},
		"insert existing child at child count moves it last": {
			mutate: func(t *testing.T, tree *Tree[string], root NodeID, kids []NodeID) {
				require.NoError(t, tree.InsertChildAtIndex(root, 3, kids[0]))
			},
			want: []int{1, 2, 0},
		},
		"remove child": {
			mutate: func(t *testing.T, tree *Tree[string], root NodeID, kids []NodeID) {
				got, err := tree.RemoveChild(root, kids[1])
				require.NoError(t, err)
				assert.Equal(t, kids[1], got)
			},
			want: []int{0, 2},
		},
		"remove child at index": {
			mutate: func(t *testing.T, tree *Tree[string], root NodeID, kids []NodeID) {
				got, err := tree.RemoveChildAtIndex(root, 0)
				require.NoError(t, err)
				assert.Equal(t, kids[0], got)
			},
			want: []int{1, 2},
		},
		"replace child at index": {
			mutate: func(t *testing.T, tree *Tree[string], root NodeID, kids []NodeID) {
				got, err := tree.ReplaceChildAtIndex(root, 1, kids[3])
				require.NoError(t, err)
				assert.Equal(t, kids[1], got)
				_, ok, err := tree.Parent(kids[1])
				require.NoError(t, err)
				assert.False(t, ok)
			},
			want: []int{0, 3, 2},
		},
		"replace with a sibling": {
			mutate: func(t *testing.T, tree *Tree[string], root NodeID, kids []NodeID) {
				_, err := tree.ReplaceChildAtIndex(root, 2, kids[0])
				require.NoError(t, err)
			},
			want: []int{1, 0},
		},
		"set children": {
			mutate: func(t *testing.T, tree *Tree[string], root NodeID, kids []NodeID) {
				require.NoError(t, tree.SetChildren(root, []NodeID{kids[3], kids[0]}))
				_, ok, err := tree.Parent(kids[1])
				require.NoError(t, err)
				assert.False(t, ok)
			},
			want: []int{3, 0},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := New[string]()
			kids := make([]NodeID, 4)
			for i := range kids {
				kids[i] = tree.NewLeaf(leafStyle())
			}
			root, err := tree.NewWithChildren(DefaultStyle(), kids[:3])
			require.NoError(t, err)
			require.NoError(t, tree.ComputeLayout(root, AvailableSize{}))

			tt.mutate(t, tree, root, kids)

			want := make([]NodeID, len(tt.want))
			for i, k := range tt.want {
				want[i] = kids[k]
			}
			requireChildren(t, tree, root, want...)

			dirty, err := tree.Dirty(root)
			require.NoError(t, err)
			assert.True(t, dirty)
		})
	}
}

func TestTree_MutationErrors(t *testing.T) {
	type tc struct {
		run     func(tree *Tree[string], root, child, stale NodeID) error
		wantErr error
	}

	tests := map[string]tc{
		"add to stale parent": {
			run: func(tree *Tree[string], root, child, stale NodeID) error {
				return tree.AddChild(stale, child)
			},
			wantErr: ErrInvalidParentNode,
		},
		"add stale child": {
			run: func(tree *Tree[string], root, child, stale NodeID) error {
				return tree.AddChild(root, stale)
			},
			wantErr: ErrInvalidChildNode,
		},
		"add node under itself": {
			run: func(tree *Tree[string], root, child, stale NodeID) error {
				return tree.AddChild(root, root)
			},
			wantErr: ErrInvalidInputNode,
		},
		"add ancestor under descendant": {
			run: func(tree *Tree[string], root, child, stale NodeID) error {
				return tree.AddChild(child, root)
			},
			wantErr: ErrInvalidInputNode,
		},
		"insert past end": {
			run: func(tree *Tree[string], root, child, stale NodeID) error {
				other := tree.NewLeaf(leafStyle())
				return tree.InsertChildAtIndex(root, 5, other)
			},
			wantErr: ErrChildIndexOutOfBounds,
		},
		"remove non child": {
			run: func(tree *Tree[string], root, child, stale NodeID) error {
				other := tree.NewLeaf(leafStyle())
				_, err := tree.RemoveChild(root, other)
				return err
			},
			wantErr: ErrInvalidInputNode,
		},
		"remove at bad index": {
			run: func(tree *Tree[string], root, child, stale NodeID) error {
				_, err := tree.RemoveChildAtIndex(root, 1)
				return err
			},
			wantErr: ErrChildIndexOutOfBounds,
		},
		"replace with stale child": {
			run: func(tree *Tree[string], root, child, stale NodeID) error {
				_, err := tree.ReplaceChildAtIndex(root, 0, stale)
				return err
			},
			wantErr: ErrInvalidChildNode,
		},
		"set children with cycle": {
			run: func(tree *Tree[string], root, child, stale NodeID) error {
				return tree.SetChildren(child, []NodeID{root})
			},
			wantErr: ErrInvalidInputNode,
		},
		"child at bad index": {
			run: func(tree *Tree[string], root, child, stale NodeID) error {
				_, err := tree.ChildAtIndex(root, -1)
				return err
			},
			wantErr: ErrChildIndexOutOfBounds,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := New[string]()
			child := tree.NewLeaf(leafStyle())
			root, err := tree.NewWithChildren(DefaultStyle(), []NodeID{child})
			require.NoError(t, err)
			stale := tree.NewLeaf(leafStyle())
			_, err = tree.Remove(stale)
			require.NoError(t, err)

			err = tt.run(tree, root, child, stale)
			require.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrTree)
			assert.ErrorIs(t, err, ErrBoxLayout)

			var te *TreeError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, tt.wantErr, te.Kind)

			// Nothing changed.
			requireChildren(t, tree, root, child)
		})
	}
}

func TestTree_Remove(t *testing.T) {
	tree := New[string]()
	grandchild := tree.NewLeaf(leafStyle())
	child, err := tree.NewWithChildren(DefaultStyle(), []NodeID{grandchild})
	require.NoError(t, err)
	sibling := tree.NewLeaf(leafStyle())
	root, err := tree.NewWithChildren(DefaultStyle(), []NodeID{child, sibling})
	require.NoError(t, err)
	require.Equal(t, 4, tree.TotalNodeCount())

	got, err := tree.Remove(child)
	require.NoError(t, err)
	assert.Equal(t, child, got)
	assert.Equal(t, 2, tree.TotalNodeCount())
	requireChildren(t, tree, root, sibling)

	for _, stale := range []NodeID{child, grandchild} {
		_, err := tree.Style(stale)
		assert.ErrorIs(t, err, ErrInvalidNodeID)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, err, ErrTree)
		assert.ErrorIs(t, err, ErrBoxLayout)

		assert.ErrorIs(t, tree.SetStyle(stale, DefaultStyle()), ErrInvalidNodeID)
		assert.ErrorIs(t, tree.MarkDirty(stale), ErrInvalidNodeID)
		_, err = tree.Remove(stale)
		assert.ErrorIs(t, err, ErrInvalidNodeID)
	}

	// A reused slot does not revive the old ID.
	fresh := tree.NewLeaf(leafStyle())
	assert.NotEqual(t, child, fresh)
	_, err = tree.Dirty(child)
	assert.ErrorIs(t, err, ErrInvalidNodeID)
}

func TestTree_Clear(t *testing.T) {
	tree := New[string](WithCapacity(4))
	a := tree.NewLeaf(leafStyle())
	b := tree.NewLeafWithContext(leafStyle(), "b")
	tree.Clear()

	assert.Zero(t, tree.TotalNodeCount())
	for _, id := range []NodeID{a, b} {
		_, err := tree.Children(id)
		assert.ErrorIs(t, err, ErrInvalidNodeID)
	}

	c := tree.NewLeaf(leafStyle())
	assert.NotEqual(t, a, c)
	assert.Equal(t, 1, tree.TotalNodeCount())
}

func TestTree_DirtyPropagation(t *testing.T) {
	tree := New[string]()
	leaf := tree.NewLeaf(leafStyle())
	mid, err := tree.NewWithChildren(DefaultStyle(), []NodeID{leaf})
	require.NoError(t, err)
	other := tree.NewLeaf(leafStyle())
	root, err := tree.NewWithChildren(DefaultStyle(), []NodeID{mid, other})
	require.NoError(t, err)

	require.NoError(t, tree.ComputeLayout(root, AvailableSize{}))
	for _, id := range []NodeID{root, mid, leaf, other} {
		dirty, err := tree.Dirty(id)
		require.NoError(t, err)
		assert.False(t, dirty, "%s after compute", id)
	}

	require.NoError(t, tree.SetStyle(leaf, NewStyle(WithWidth(MustLength(20)))))
	want := map[NodeID]bool{leaf: true, mid: true, root: true, other: false}
	for id, w := range want {
		dirty, err := tree.Dirty(id)
		require.NoError(t, err)
		assert.Equal(t, w, dirty, "%s after set style", id)
	}
}

func TestTree_Context(t *testing.T) {
	tree := New[string]()
	id := tree.NewLeafWithContext(DefaultStyle(), "hello")

	ctx, ok, err := tree.NodeContext(id)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "hello", ctx)

	require.NoError(t, tree.SetNodeContext(id, "world"))
	ctx, _, err = tree.NodeContext(id)
	require.NoError(t, err)
	assert.Equal(t, "world", ctx)

	require.NoError(t, tree.ClearNodeContext(id))
	_, ok, err = tree.NodeContext(id)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTree_String(t *testing.T) {
	tree := New[int]()
	tree.NewLeaf(DefaultStyle())
	tree.NewLeaf(DefaultStyle())

	assert.Equal(t, "Tree(nodes=2)", tree.String())
	assert.Equal(t, "NodeID(42)", NodeID(42).String())
}

func TestTreeError_Message(t *testing.T) {
	err := indexError("child_at_index", NodeID(7), 3, 2)
	assert.Equal(t, "child_at_index NodeID(7): child index out of bounds: index 3, child count 2", err.Error())

	err = treeError(ErrInvalidNodeID, "style", NodeID(7))
	assert.Equal(t, "style NodeID(7): invalid node id", err.Error())
}

func TestTree_InsertExistingChildPastEnd(t *testing.T) {
	tree := New[string]()
	a, b := tree.NewLeaf(leafStyle()), tree.NewLeaf(leafStyle())
	root, err := tree.NewWithChildren(DefaultStyle(), []NodeID{a, b})
	require.NoError(t, err)

	err = tree.InsertChildAtIndex(root, 3, b)
	require.ErrorIs(t, err, ErrChildIndexOutOfBounds)

	var te *TreeError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 3, te.Index)
	assert.Equal(t, 2, te.Count)
	requireChildren(t, tree, root, a, b)
}
