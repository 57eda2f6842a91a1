// Drafts are the in-memory, not-yet-persisted form of each record.
// Every draft validates as a pure function, separate from submission:
// handlers bind JSON into a draft, call Validate, and only then hand a
// node to a service.
package content

import (
	"strconv"
	"strings"
)

// FieldProblem mirrors apperrors.FieldError without importing it; the
// entities package stays free of error-taxonomy dependencies.
type FieldProblem struct {
	Field   string
	Message string
}

func requireString(problems []FieldProblem, field, value string) []FieldProblem {
	if strings.TrimSpace(value) == "" {
		problems = append(problems, FieldProblem{Field: field, Message: "must not be empty"})
	}
	return problems
}

// HeroDraft carries the editable fields of a hero section.
type HeroDraft struct {
	PageID    string  `json:"pageId"`
	Title     string  `json:"title"`
	Subtitle  *string `json:"subtitle,omitempty"`
	ImageURL  *string `json:"imageUrl,omitempty"`
	CtaLabel  *string `json:"ctaLabel,omitempty"`
	CtaURL    *string `json:"ctaUrl,omitempty"`
	IsVisible bool    `json:"isVisible"`
}

// Validate checks the draft and returns the node it describes. ID,
// sortOrder and timestamps are assigned by the service layer.
func (d *HeroDraft) Validate() (*HeroNode, []FieldProblem) {
	var problems []FieldProblem
	problems = requireString(problems, "pageId", d.PageID)
	problems = requireString(problems, "title", d.Title)
	if d.CtaLabel != nil && d.CtaURL == nil {
		problems = append(problems, FieldProblem{Field: "ctaUrl", Message: "required when ctaLabel is set"})
	}
	if len(problems) > 0 {
		return nil, problems
	}

	return &HeroNode{
		NodeType:  "Hero",
		PageID:    d.PageID,
		Title:     d.Title,
		Subtitle:  d.Subtitle,
		ImageURL:  d.ImageURL,
		CtaLabel:  d.CtaLabel,
		CtaURL:    d.CtaURL,
		IsVisible: d.IsVisible,
	}, nil
}

// FaqDraft carries the editable fields of a FAQ entry.
type FaqDraft struct {
	CategoryID string `json:"categoryId"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	IsVisible  bool   `json:"isVisible"`
}

// Validate checks the draft and returns the node it describes.
func (d *FaqDraft) Validate() (*FaqNode, []FieldProblem) {
	var problems []FieldProblem
	problems = requireString(problems, "categoryId", d.CategoryID)
	problems = requireString(problems, "question", d.Question)
	problems = requireString(problems, "answer", d.Answer)
	if len(problems) > 0 {
		return nil, problems
	}

	return &FaqNode{
		NodeType:   "Faq",
		CategoryID: d.CategoryID,
		Question:   d.Question,
		Answer:     d.Answer,
		IsVisible:  d.IsVisible,
	}, nil
}

// CtaDraft carries the editable fields of a header call-to-action.
type CtaDraft struct {
	HeaderID  string `json:"headerId"`
	Label     string `json:"label"`
	URL       string `json:"url"`
	Style     string `json:"style"`
	IsVisible bool   `json:"isVisible"`
}

// Validate checks the draft and returns the node it describes.
func (d *CtaDraft) Validate() (*CtaNode, []FieldProblem) {
	var problems []FieldProblem
	problems = requireString(problems, "headerId", d.HeaderID)
	problems = requireString(problems, "label", d.Label)
	problems = requireString(problems, "url", d.URL)
	if !ValidCtaStyle(d.Style) {
		problems = append(problems, FieldProblem{Field: "style", Message: "must be one of primary, secondary, ghost"})
	}
	if len(problems) > 0 {
		return nil, problems
	}

	return &CtaNode{
		NodeType:  "Cta",
		HeaderID:  d.HeaderID,
		Label:     d.Label,
		URL:       d.URL,
		Style:     CtaStyle(d.Style),
		IsVisible: d.IsVisible,
	}, nil
}

// FormFieldDraft carries the editable definition of one form field.
type FormFieldDraft struct {
	ID          string   `json:"id,omitempty"`
	Label       string   `json:"label"`
	Name        string   `json:"name"`
	FieldType   string   `json:"fieldType"`
	Required    bool     `json:"required"`
	Placeholder *string  `json:"placeholder,omitempty"`
	Options     []string `json:"options,omitempty"`
}

// FormDraft carries the editable fields of a form, including its full
// field list. The field list replaces the stored one on update.
type FormDraft struct {
	Title       string           `json:"title"`
	Slug        string           `json:"slug"`
	NotifyEmail string           `json:"notifyEmail"`
	Fields      []FormFieldDraft `json:"fields"`
	IsActive    bool             `json:"isActive"`
}

// Validate checks the draft and its embedded fields and returns the
// node it describes. Field sortOrder is assigned from list position;
// field IDs are preserved when present so edits keep their identity.
func (d *FormDraft) Validate() (*FormNode, []FieldProblem) {
	var problems []FieldProblem
	problems = requireString(problems, "title", d.Title)
	problems = requireString(problems, "slug", d.Slug)
	problems = requireString(problems, "notifyEmail", d.NotifyEmail)
	if d.NotifyEmail != "" && !strings.Contains(d.NotifyEmail, "@") {
		problems = append(problems, FieldProblem{Field: "notifyEmail", Message: "must be an email address"})
	}

	seenNames := make(map[string]bool, len(d.Fields))
	fields := make([]*FormField, 0, len(d.Fields))
	for i, fd := range d.Fields {
		prefix := "fields[" + strconv.Itoa(i) + "]."
		problems = requireString(problems, prefix+"label", fd.Label)
		problems = requireString(problems, prefix+"name", fd.Name)
		if !ValidFieldType(fd.FieldType) {
			problems = append(problems, FieldProblem{Field: prefix + "fieldType", Message: "unknown field type"})
		}
		if FieldType(fd.FieldType) == FieldTypeSelect && len(fd.Options) == 0 {
			problems = append(problems, FieldProblem{Field: prefix + "options", Message: "select fields need at least one option"})
		}
		if fd.Name != "" {
			if seenNames[fd.Name] {
				problems = append(problems, FieldProblem{Field: prefix + "name", Message: "duplicate field name"})
			}
			seenNames[fd.Name] = true
		}

		fields = append(fields, &FormField{
			ID:          fd.ID,
			Label:       fd.Label,
			Name:        fd.Name,
			FieldType:   FieldType(fd.FieldType),
			Required:    fd.Required,
			Placeholder: fd.Placeholder,
			Options:     fd.Options,
			SortOrder:   i,
		})
	}
	if len(problems) > 0 {
		return nil, problems
	}

	return &FormNode{
		NodeType:    "Form",
		Title:       d.Title,
		Slug:        d.Slug,
		NotifyEmail: d.NotifyEmail,
		Fields:      fields,
		IsActive:    d.IsActive,
	}, nil
}

// MediaSectionDraft carries the editable fields of a media section.
type MediaSectionDraft struct {
	PageID    string  `json:"pageId"`
	Title     string  `json:"title"`
	MediaURL  string  `json:"mediaUrl"`
	MediaType string  `json:"mediaType"`
	Caption   *string `json:"caption,omitempty"`
	IsVisible bool    `json:"isVisible"`
}

// Validate checks the draft and returns the node it describes.
func (d *MediaSectionDraft) Validate() (*MediaSectionNode, []FieldProblem) {
	var problems []FieldProblem
	problems = requireString(problems, "pageId", d.PageID)
	problems = requireString(problems, "title", d.Title)
	problems = requireString(problems, "mediaUrl", d.MediaURL)
	if !ValidMediaType(d.MediaType) {
		problems = append(problems, FieldProblem{Field: "mediaType", Message: "must be one of image, video, embed"})
	}
	if len(problems) > 0 {
		return nil, problems
	}

	return &MediaSectionNode{
		NodeType:  "MediaSection",
		PageID:    d.PageID,
		Title:     d.Title,
		MediaURL:  d.MediaURL,
		MediaType: MediaType(d.MediaType),
		Caption:   d.Caption,
		IsVisible: d.IsVisible,
	}, nil
}

// SeoDraft carries the editable tenant-wide SEO settings.
type SeoDraft struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Keywords      []string `json:"keywords,omitempty"`
	OGImageURL    *string  `json:"ogImageUrl,omitempty"`
	CanonicalBase *string  `json:"canonicalBase,omitempty"`
	Robots        string   `json:"robots"`
}

// Validate checks the draft and returns the node it describes.
func (d *SeoDraft) Validate() (*SeoNode, []FieldProblem) {
	var problems []FieldProblem
	problems = requireString(problems, "title", d.Title)
	problems = requireString(problems, "description", d.Description)
	robots := d.Robots
	if robots == "" {
		robots = "index,follow"
	}
	if len(problems) > 0 {
		return nil, problems
	}

	return &SeoNode{
		NodeType:      "Seo",
		Title:         d.Title,
		Description:   d.Description,
		Keywords:      d.Keywords,
		OGImageURL:    d.OGImageURL,
		CanonicalBase: d.CanonicalBase,
		Robots:        robots,
	}, nil
}
