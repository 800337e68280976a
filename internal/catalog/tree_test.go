package catalog

import (
	"errors"
	"testing"
)

func mustTree(t *testing.T) *Tree {
	t.Helper()
	tree, err := NewTree(DefaultCategories())
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}
	return tree
}

func TestHrefExtendsParent(t *testing.T) {
	tree := mustTree(t)

	var check func(nodes []*CategoryNode, parent string)
	check = func(nodes []*CategoryNode, parent string) {
		for _, n := range nodes {
			if want := parent + "/" + n.Slug; n.Href != want {
				t.Errorf("%s: href %q, want %q", n.ID, n.Href, want)
			}
			check(n.Children, n.Href)
		}
	}
	check(tree.Roots(), RootHref)
}

func TestDefaultTreeIsFiveLevelsDeep(t *testing.T) {
	tree := mustTree(t)
	for _, f := range tree.Flatten() {
		if !f.HasChildren && f.Level != 4 {
			t.Errorf("leaf %s at level %d, want 4", f.Node.ID, f.Level)
		}
	}
}

func TestGetCategoryPath(t *testing.T) {
	tree := mustTree(t)

	for _, f := range tree.Flatten() {
		path := tree.GetCategoryPath(f.Node.ID)
		if len(path) == 0 {
			t.Fatalf("%s: empty path", f.Node.ID)
		}
		if last := path[len(path)-1]; last.ID != f.Node.ID {
			t.Errorf("%s: path ends at %s", f.Node.ID, last.ID)
		}
		if len(path) != f.Level+1 {
			t.Errorf("%s: path length %d, want %d", f.Node.ID, len(path), f.Level+1)
		}
	}

	if got := tree.GetCategoryPath("no-such-id"); got != nil {
		t.Errorf("unknown id: got %v, want nil", PathIDs(got))
	}
	if got := tree.FindCategoryByID("no-such-id"); got != nil {
		t.Errorf("FindCategoryByID unknown: got %v", got.ID)
	}
}

func TestGetCategoryPathIDs(t *testing.T) {
	tree := mustTree(t)
	got := PathIDs(tree.GetCategoryPath("lg-bags-brief-sart-slim"))
	want := []string{"lg", "lg-bags", "lg-bags-brief", "lg-bags-brief-sart", "lg-bags-brief-sart-slim"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestFlattenPreOrder(t *testing.T) {
	tree := mustTree(t)
	flat := tree.Flatten()

	if len(flat) != tree.Len() {
		t.Fatalf("flatten returned %d nodes, tree has %d", len(flat), tree.Len())
	}
	if flat[0].Node.ID != "lg" || flat[0].Level != 0 || !flat[0].HasChildren {
		t.Errorf("first entry = %+v", flat[0])
	}
	if flat[1].Node.ID != "lg-bags" || flat[1].Level != 1 {
		t.Errorf("second entry = %s level %d", flat[1].Node.ID, flat[1].Level)
	}
}

func TestNewTreeRejectsBadData(t *testing.T) {
	tests := []struct {
		name  string
		roots func() []*CategoryNode
		want  error
	}{
		{
			name: "duplicate id",
			roots: func() []*CategoryNode {
				return []*CategoryNode{cat("a", "A", "a", cat("x", "X", "x")), cat("b", "B", "b", cat("x", "X", "x"))}
			},
			want: ErrDuplicateCategoryID,
		},
		{
			name: "duplicate sibling slug",
			roots: func() []*CategoryNode {
				return []*CategoryNode{cat("a", "A", "a", cat("a1", "1", "same"), cat("a2", "2", "same"))}
			},
			want: ErrDuplicateSlug,
		},
		{
			name: "invalid slug",
			roots: func() []*CategoryNode {
				return []*CategoryNode{cat("a", "A", "Not A Slug")}
			},
			want: ErrInvalidSlug,
		},
		{
			name: "wrong href",
			roots: func() []*CategoryNode {
				n := cat("a", "A", "a")
				n.Href = "/products/elsewhere"
				return []*CategoryNode{n}
			},
			want: ErrInvalidHref,
		},
		{
			name: "cycle",
			roots: func() []*CategoryNode {
				a := cat("a", "A", "a")
				b := cat("b", "B", "b")
				a.Children = []*CategoryNode{b}
				b.Children = []*CategoryNode{a}
				return []*CategoryNode{a}
			},
			want: ErrCyclicTree,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTree(tc.roots())
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestNewTreeToleratesShallowBranches(t *testing.T) {
	tree, err := NewTree([]*CategoryNode{cat("a", "A", "a"), cat("b", "B", "b", cat("b1", "B1", "b1"))})
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}
	if got := tree.FindCategoryByID("b1").Href; got != "/products/b/b1" {
		t.Errorf("href = %q", got)
	}
}
