// Package content defines the application's core content-related domain entities.
package content

import "time"

// HeroNode is one hero section attached to a page. Heroes on the same
// page form an ordered collection.
type HeroNode struct {
	ID        string     `json:"id"`
	NodeType  string     `json:"nodeType"`
	PageID    string     `json:"pageId"`
	Title     string     `json:"title"`
	Subtitle  *string    `json:"subtitle,omitempty"`
	ImageURL  *string    `json:"imageUrl,omitempty"`
	CtaLabel  *string    `json:"ctaLabel,omitempty"`
	CtaURL    *string    `json:"ctaUrl,omitempty"`
	SortOrder int        `json:"sortOrder"`
	IsVisible bool       `json:"isVisible"`
	Created   time.Time  `json:"created"`
	Changed   *time.Time `json:"changed,omitempty"`
}

func (n *HeroNode) GetID() string      { return n.ID }
func (n *HeroNode) GetSortOrder() int  { return n.SortOrder }
func (n *HeroNode) SetSortOrder(v int) { n.SortOrder = v }

// FaqNode is one question/answer pair within a FAQ category.
type FaqNode struct {
	ID         string `json:"id"`
	NodeType   string `json:"nodeType"`
	CategoryID string `json:"categoryId"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	SortOrder  int    `json:"sortOrder"`
	IsVisible  bool   `json:"isVisible"`
}

func (n *FaqNode) GetID() string      { return n.ID }
func (n *FaqNode) GetSortOrder() int  { return n.SortOrder }
func (n *FaqNode) SetSortOrder(v int) { n.SortOrder = v }

// CtaStyle enumerates the rendering styles a call-to-action may use.
type CtaStyle string

const (
	CtaStylePrimary   CtaStyle = "primary"
	CtaStyleSecondary CtaStyle = "secondary"
	CtaStyleGhost     CtaStyle = "ghost"
)

// ValidCtaStyle reports whether s is one of the known styles.
func ValidCtaStyle(s string) bool {
	switch CtaStyle(s) {
	case CtaStylePrimary, CtaStyleSecondary, CtaStyleGhost:
		return true
	}
	return false
}

// CtaNode is one call-to-action attached to a header configuration.
type CtaNode struct {
	ID        string   `json:"id"`
	NodeType  string   `json:"nodeType"`
	HeaderID  string   `json:"headerId"`
	Label     string   `json:"label"`
	URL       string   `json:"url"`
	Style     CtaStyle `json:"style"`
	SortOrder int      `json:"sortOrder"`
	IsVisible bool     `json:"isVisible"`
}

func (n *CtaNode) GetID() string      { return n.ID }
func (n *CtaNode) GetSortOrder() int  { return n.SortOrder }
func (n *CtaNode) SetSortOrder(v int) { n.SortOrder = v }

// FieldType enumerates the input kinds a form field may take.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeEmail    FieldType = "email"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeSelect   FieldType = "select"
	FieldTypeCheckbox FieldType = "checkbox"
)

// ValidFieldType reports whether s is one of the known field types.
func ValidFieldType(s string) bool {
	switch FieldType(s) {
	case FieldTypeText, FieldTypeEmail, FieldTypeTextarea, FieldTypeSelect, FieldTypeCheckbox:
		return true
	}
	return false
}

// FormField is one input definition embedded in a form. Fields are
// stored inside the form record and replaced wholesale on update.
type FormField struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Name        string    `json:"name"`
	FieldType   FieldType `json:"fieldType"`
	Required    bool      `json:"required"`
	Placeholder *string   `json:"placeholder,omitempty"`
	Options     []string  `json:"options,omitempty"`
	SortOrder   int       `json:"sortOrder"`
}

func (f *FormField) GetID() string      { return f.ID }
func (f *FormField) GetSortOrder() int  { return f.SortOrder }
func (f *FormField) SetSortOrder(v int) { f.SortOrder = v }

// FormNode is a contact/lead form with its embedded field definitions.
type FormNode struct {
	ID          string       `json:"id"`
	NodeType    string       `json:"nodeType"`
	Title       string       `json:"title"`
	Slug        string       `json:"slug"`
	NotifyEmail string       `json:"notifyEmail"`
	Fields      []*FormField `json:"fields"`
	IsActive    bool         `json:"isActive"`
	Created     time.Time    `json:"created"`
	Changed     *time.Time   `json:"changed,omitempty"`
}

// MediaType enumerates the media kinds a media section can show.
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
	MediaTypeEmbed MediaType = "embed"
)

// ValidMediaType reports whether s is one of the known media types.
func ValidMediaType(s string) bool {
	switch MediaType(s) {
	case MediaTypeImage, MediaTypeVideo, MediaTypeEmbed:
		return true
	}
	return false
}

// MediaSectionNode is one media block attached to a page. The media
// asset itself lives in external storage; only its public URL is kept.
type MediaSectionNode struct {
	ID        string    `json:"id"`
	NodeType  string    `json:"nodeType"`
	PageID    string    `json:"pageId"`
	Title     string    `json:"title"`
	MediaURL  string    `json:"mediaUrl"`
	MediaType MediaType `json:"mediaType"`
	Caption   *string   `json:"caption,omitempty"`
	SortOrder int       `json:"sortOrder"`
	IsVisible bool      `json:"isVisible"`
}

func (n *MediaSectionNode) GetID() string      { return n.ID }
func (n *MediaSectionNode) GetSortOrder() int  { return n.SortOrder }
func (n *MediaSectionNode) SetSortOrder(v int) { n.SortOrder = v }

// SeoNode holds the tenant-wide SEO settings. One record per tenant;
// read and replaced as a whole.
type SeoNode struct {
	ID            string     `json:"id"`
	NodeType      string     `json:"nodeType"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Keywords      []string   `json:"keywords,omitempty"`
	OGImageURL    *string    `json:"ogImageUrl,omitempty"`
	CanonicalBase *string    `json:"canonicalBase,omitempty"`
	Robots        string     `json:"robots"`
	Changed       *time.Time `json:"changed,omitempty"`
}

// FormSubmission is one public submission against a form's field
// definitions. Values are keyed by field name.
type FormSubmission struct {
	FormID      string            `json:"formId"`
	Values      map[string]string `json:"values"`
	SubmittedAt time.Time         `json:"submittedAt"`
}
