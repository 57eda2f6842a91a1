package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaqDraftValidate(t *testing.T) {
	draft := &FaqDraft{
		CategoryID: "cat-1",
		Question:   "Do you ship internationally?",
		Answer:     "Yes, to most countries.",
		IsVisible:  true,
	}

	node, problems := draft.Validate()
	require.Empty(t, problems)
	assert.Equal(t, "Faq", node.NodeType)
	assert.Equal(t, "cat-1", node.CategoryID)
	assert.Empty(t, node.ID, "id is assigned by the service, not the draft")
}

func TestFaqDraftRejectsEmptyRequiredFields(t *testing.T) {
	draft := &FaqDraft{CategoryID: "cat-1", Question: "  ", Answer: ""}

	node, problems := draft.Validate()
	assert.Nil(t, node)
	require.Len(t, problems, 2)
	assert.Equal(t, "question", problems[0].Field)
	assert.Equal(t, "answer", problems[1].Field)
}

func TestCtaDraftRejectsUnknownStyle(t *testing.T) {
	draft := &CtaDraft{
		HeaderID: "hdr-1",
		Label:    "Get started",
		URL:      "https://example.com/signup",
		Style:    "flashy",
	}

	node, problems := draft.Validate()
	assert.Nil(t, node)
	require.Len(t, problems, 1)
	assert.Equal(t, "style", problems[0].Field)
}

func TestHeroDraftCtaLabelRequiresURL(t *testing.T) {
	label := "Learn more"
	draft := &HeroDraft{PageID: "page-1", Title: "Welcome", CtaLabel: &label}

	node, problems := draft.Validate()
	assert.Nil(t, node)
	require.Len(t, problems, 1)
	assert.Equal(t, "ctaUrl", problems[0].Field)
}

func TestFormDraftAssignsFieldSortOrderFromPosition(t *testing.T) {
	draft := &FormDraft{
		Title:       "Contact",
		Slug:        "contact",
		NotifyEmail: "hello@example.com",
		Fields: []FormFieldDraft{
			{Label: "Name", Name: "name", FieldType: "text", Required: true},
			{Label: "Email", Name: "email", FieldType: "email", Required: true},
			{Label: "Topic", Name: "topic", FieldType: "select", Options: []string{"sales", "support"}},
		},
	}

	node, problems := draft.Validate()
	require.Empty(t, problems)
	require.Len(t, node.Fields, 3)
	for i, f := range node.Fields {
		assert.Equal(t, i, f.SortOrder)
	}
}

func TestFormDraftRejectsSelectWithoutOptions(t *testing.T) {
	draft := &FormDraft{
		Title:       "Contact",
		Slug:        "contact",
		NotifyEmail: "hello@example.com",
		Fields: []FormFieldDraft{
			{Label: "Topic", Name: "topic", FieldType: "select"},
		},
	}

	node, problems := draft.Validate()
	assert.Nil(t, node)
	require.Len(t, problems, 1)
	assert.Equal(t, "fields[0].options", problems[0].Field)
}

func TestFormDraftRejectsDuplicateFieldNames(t *testing.T) {
	draft := &FormDraft{
		Title:       "Contact",
		Slug:        "contact",
		NotifyEmail: "hello@example.com",
		Fields: []FormFieldDraft{
			{Label: "Name", Name: "name", FieldType: "text"},
			{Label: "Full name", Name: "name", FieldType: "text"},
		},
	}

	node, problems := draft.Validate()
	assert.Nil(t, node)
	require.Len(t, problems, 1)
	assert.Equal(t, "fields[1].name", problems[0].Field)
}

func TestSeoDraftDefaultsRobots(t *testing.T) {
	draft := &SeoDraft{Title: "Acme", Description: "Acme marketing site"}

	node, problems := draft.Validate()
	require.Empty(t, problems)
	assert.Equal(t, "index,follow", node.Robots)
}
