package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gosimple/slug"
)

// RootHref is the canonical path every category href hangs off.
const RootHref = "/products"

var (
	ErrDuplicateCategoryID = errors.New("duplicate category id")
	ErrDuplicateSlug       = errors.New("duplicate slug among siblings")
	ErrInvalidSlug         = errors.New("invalid category slug")
	ErrInvalidHref         = errors.New("category href does not match parent path")
	ErrCyclicTree          = errors.New("category tree contains a cycle")
)

// CategoryNode is one entry of the authored category hierarchy
// (Main -> Sub -> Product-Class -> Product-Line -> Variant-SKU-group).
type CategoryNode struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Slug     string          `json:"slug"`
	Href     string          `json:"href"`
	Children []*CategoryNode `json:"children,omitempty"`
}

func (n *CategoryNode) HasChildren() bool {
	return len(n.Children) > 0
}

// FlatCategory is a pre-order entry produced by Tree.Flatten.
type FlatCategory struct {
	Node        *CategoryNode `json:"node"`
	Level       int           `json:"level"`
	HasChildren bool          `json:"has_children"`
}

// Tree is an immutable, validated category hierarchy.
type Tree struct {
	roots []*CategoryNode
	index map[string]*CategoryNode
}

// NewTree validates the authored roots and fills in any missing href.
// A node that already carries an href must agree with its parent's href
// plus its own slug.
func NewTree(roots []*CategoryNode) (*Tree, error) {
	t := &Tree{
		roots: roots,
		index: make(map[string]*CategoryNode),
	}

	onPath := make(map[*CategoryNode]bool)
	var walk func(nodes []*CategoryNode, parentHref string) error
	walk = func(nodes []*CategoryNode, parentHref string) error {
		siblings := make(map[string]bool, len(nodes))
		for _, n := range nodes {
			if n == nil {
				return fmt.Errorf("nil child under %q", parentHref)
			}
			if onPath[n] {
				return fmt.Errorf("%w: node %q", ErrCyclicTree, n.ID)
			}
			if strings.TrimSpace(n.ID) == "" {
				return fmt.Errorf("category under %q has empty id", parentHref)
			}
			if _, dup := t.index[n.ID]; dup {
				return fmt.Errorf("%w: %q", ErrDuplicateCategoryID, n.ID)
			}
			if !slug.IsSlug(n.Slug) {
				return fmt.Errorf("%w: %q (id %q)", ErrInvalidSlug, n.Slug, n.ID)
			}
			if siblings[n.Slug] {
				return fmt.Errorf("%w: %q under %q", ErrDuplicateSlug, n.Slug, parentHref)
			}
			siblings[n.Slug] = true

			want := parentHref + "/" + n.Slug
			if n.Href == "" {
				n.Href = want
			} else if n.Href != want {
				return fmt.Errorf("%w: %q has %q, want %q", ErrInvalidHref, n.ID, n.Href, want)
			}
			t.index[n.ID] = n

			onPath[n] = true
			if err := walk(n.Children, n.Href); err != nil {
				return err
			}
			onPath[n] = false
		}
		return nil
	}

	if err := walk(roots, RootHref); err != nil {
		return nil, fmt.Errorf("build category tree: %w", err)
	}
	return t, nil
}

// Roots returns the top-level categories in authored order.
func (t *Tree) Roots() []*CategoryNode {
	return t.roots
}

// Len is the total number of nodes.
func (t *Tree) Len() int {
	return len(t.index)
}

// FindCategoryByID returns nil when id is not in the tree.
func (t *Tree) FindCategoryByID(id string) *CategoryNode {
	return t.index[id]
}

// GetCategoryPath returns the nodes from the root down to id, inclusive,
// or nil when id is not in the tree.
func (t *Tree) GetCategoryPath(id string) []*CategoryNode {
	if _, ok := t.index[id]; !ok {
		return nil
	}
	var trail []*CategoryNode
	var dfs func(nodes []*CategoryNode) bool
	dfs = func(nodes []*CategoryNode) bool {
		for _, n := range nodes {
			trail = append(trail, n)
			if n.ID == id || dfs(n.Children) {
				return true
			}
			trail = trail[:len(trail)-1]
		}
		return false
	}
	if !dfs(t.roots) {
		return nil
	}
	return trail
}

// Flatten walks the tree in pre-order. Roots are level 0.
func (t *Tree) Flatten() []FlatCategory {
	out := make([]FlatCategory, 0, len(t.index))
	var walk func(nodes []*CategoryNode, level int)
	walk = func(nodes []*CategoryNode, level int) {
		for _, n := range nodes {
			out = append(out, FlatCategory{Node: n, Level: level, HasChildren: n.HasChildren()})
			walk(n.Children, level+1)
		}
	}
	walk(t.roots, 0)
	return out
}

// PathIDs is GetCategoryPath reduced to ids.
func PathIDs(path []*CategoryNode) []string {
	ids := make([]string, len(path))
	for i, n := range path {
		ids[i] = n.ID
	}
	return ids
}
