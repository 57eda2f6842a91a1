// Package content defines the content map
package content

// ContentMapItem is one row of the lightweight inventory the panel
// uses to list and link every node a tenant holds without loading
// full records. Slug is set only for slugged nodes; ParentID only for
// nodes scoped to a page, category or header.
type ContentMapItem struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Slug     string `json:"slug,omitempty"`
	ParentID string `json:"parentId,omitempty"`
}
