package catalog

// RootCrumbLabel names the catalog root in breadcrumbs and stands in for
// any category that cannot be resolved.
const RootCrumbLabel = "商品"

type Crumb struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Href string `json:"href"`
}

type MenuLink struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Href  string `json:"href"`
	Count int    `json:"count"`
}

// MenuColumn is one level-2 heading of a mega-menu panel with its level-3 links.
type MenuColumn struct {
	MenuLink
	Links []MenuLink `json:"links"`
}

// MenuEntry is a top-level tab of the mega menu.
type MenuEntry struct {
	MenuLink
	Columns []MenuColumn `json:"columns"`
}

// MegaMenu reshapes the tree into the three levels the navigation bar shows.
func (c *Catalog) MegaMenu() []MenuEntry {
	counts := c.CategoryCounts()
	link := func(n *CategoryNode) MenuLink {
		return MenuLink{ID: n.ID, Name: n.Name, Href: n.Href, Count: counts[n.ID]}
	}

	menu := make([]MenuEntry, 0, len(c.tree.Roots()))
	for _, root := range c.tree.Roots() {
		entry := MenuEntry{MenuLink: link(root), Columns: make([]MenuColumn, 0, len(root.Children))}
		for _, sub := range root.Children {
			col := MenuColumn{MenuLink: link(sub), Links: make([]MenuLink, 0, len(sub.Children))}
			for _, class := range sub.Children {
				col.Links = append(col.Links, link(class))
			}
			entry.Columns = append(entry.Columns, col)
		}
		menu = append(menu, entry)
	}
	return menu
}

// Breadcrumbs returns the root crumb followed by one crumb per ancestor of
// categoryID. Unknown ids yield only the root crumb.
func (c *Catalog) Breadcrumbs(categoryID string) []Crumb {
	crumbs := []Crumb{{Name: RootCrumbLabel, Href: RootHref}}
	for _, n := range c.tree.GetCategoryPath(categoryID) {
		crumbs = append(crumbs, Crumb{ID: n.ID, Name: n.Name, Href: n.Href})
	}
	return crumbs
}

// ProductBreadcrumbs ends the category trail with the product itself.
func (c *Catalog) ProductBreadcrumbs(p *Product) []Crumb {
	if p == nil {
		return c.Breadcrumbs("")
	}
	crumbs := c.Breadcrumbs(p.CategoryID)
	return append(crumbs, Crumb{Name: p.Name, Href: BuildProductDetailURL(p)})
}
