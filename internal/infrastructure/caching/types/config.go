// Package types defines configuration cache data structures
package types

import (
	"sync"
	"time"
)

// TenantConfigCache stores configuration data for a tenant
type TenantConfigCache struct {
	// Brand configuration
	BrandConfig            *BrandConfig `json:"brandConfig"`
	BrandConfigLastUpdated time.Time    `json:"brandConfigLastUpdated"`

	// Cache metadata
	LastUpdated time.Time    `json:"lastUpdated"`
	Mu          sync.RWMutex `json:"-"`
}

// BrandConfig holds tenant-specific branding and design-token configuration
type BrandConfig struct {
	SiteInit       bool   `json:"SITE_INIT"`
	SiteURL        string `json:"SITE_URL"`
	Slogan         string `json:"SLOGAN"`
	Footer         string `json:"FOOTER"`
	Theme          string `json:"THEME"`
	BrandColours   string `json:"BRAND_COLOURS"`
	HeadingFont    string `json:"HEADING_FONT"`
	BodyFont       string `json:"BODY_FONT"`
	Socials        string `json:"SOCIALS"`
	Gtag           string `json:"GTAG"`
	StylesVer      int64  `json:"STYLES_VER"`
	Logo           string `json:"LOGO"`
	Wordmark       string `json:"WORDMARK"`
	Favicon        string `json:"FAVICON"`
	OG             string `json:"OG"`
	OGTitle        string `json:"OGTITLE"`
	OGAuthor       string `json:"OGAUTHOR"`
	OGDesc         string `json:"OGDESC"`
	LogoBase64     string `json:"LOGO_BASE64,omitempty"`
	WordmarkBase64 string `json:"WORDMARK_BASE64,omitempty"`
	OGBase64       string `json:"OG_BASE64,omitempty"`
	FaviconBase64  string `json:"FAVICON_BASE64,omitempty"`
}
