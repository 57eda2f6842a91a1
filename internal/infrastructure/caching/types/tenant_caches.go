// Package types defines cache data structures for multi-tenant content.
package types

import (
	"sync"
	"time"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
)

// TenantContentCache holds all content nodes for a single tenant
type TenantContentCache struct {
	Heroes        map[string]*content.HeroNode         // id -> node
	Faqs          map[string]*content.FaqNode          // id -> node
	Ctas          map[string]*content.CtaNode          // id -> node
	Forms         map[string]*content.FormNode         // id -> node
	MediaSections map[string]*content.MediaSectionNode // id -> node
	Seo           *content.SeoNode                     // single record per tenant

	// Lookup indices
	FormSlugToID   map[string]string   // slug -> id
	HeroesByPage   map[string][]string // pageId -> []id, sorted by sortOrder
	FaqsByCategory map[string][]string // categoryId -> []id, sorted by sortOrder
	CtasByHeader   map[string][]string // headerId -> []id, sorted by sortOrder

	// Full-collection ID lists
	AllHeroIDs         []string
	AllFaqIDs          []string
	AllCtaIDs          []string
	AllFormIDs         []string
	AllMediaSectionIDs []string

	// Cache metadata
	LastUpdated time.Time
	Mu          sync.RWMutex // Exported for access
}
