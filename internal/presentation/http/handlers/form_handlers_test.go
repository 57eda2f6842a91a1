package handlers

import (
	"net/http"
	"testing"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contactFormBody(slug string) gin.H {
	return gin.H{
		"title":       "Contact Us",
		"slug":        slug,
		"notifyEmail": "owner@example.com",
		"isActive":    true,
		"fields": []gin.H{
			{"label": "Name", "name": "name", "fieldType": "text", "required": true},
			{"label": "Email", "name": "email", "fieldType": "email", "required": true},
			{"label": "Topic", "name": "topic", "fieldType": "select", "options": []string{"sales", "support"}},
			{"label": "Message", "name": "message", "fieldType": "textarea", "required": true},
		},
	}
}

func createContactForm(t *testing.T, r *gin.Engine, slug string) content.FormNode {
	t.Helper()
	w, env := doJSON(t, r, http.MethodPost, "/api/v1/admin/forms/create", contactFormBody(slug))
	mustStatus(t, w, http.StatusCreated)

	var form content.FormNode
	decodeData(t, env, &form)
	return form
}

func TestCreateFormAssignsFieldOrder(t *testing.T) {
	r := newTestRouter(t)

	form := createContactForm(t, r, "contact")
	require.Len(t, form.Fields, 4)
	for i, field := range form.Fields {
		assert.Equal(t, i, field.SortOrder)
		assert.NotEmpty(t, field.ID)
	}
}

func TestCreateFormDuplicateSlug(t *testing.T) {
	r := newTestRouter(t)

	createContactForm(t, r, "contact")
	w, env := doJSON(t, r, http.MethodPost, "/api/v1/admin/forms/create", contactFormBody("contact"))
	mustStatus(t, w, http.StatusUnprocessableEntity)
	require.Len(t, env.Fields, 1)
	assert.Equal(t, "slug", env.Fields[0].Field)
}

func TestGetFormBySlug(t *testing.T) {
	r := newTestRouter(t)

	form := createContactForm(t, r, "contact")

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/admin/forms/slug/contact", nil)
	mustStatus(t, w, http.StatusOK)

	var found content.FormNode
	decodeData(t, env, &found)
	assert.Equal(t, form.ID, found.ID)

	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/admin/forms/slug/nope", nil)
	mustStatus(t, w, http.StatusNotFound)
}

func TestSubmitFormAcceptsValidValues(t *testing.T) {
	r := newTestRouter(t)

	form := createContactForm(t, r, "contact")

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/forms/"+form.ID+"/submissions", gin.H{
		"values": gin.H{
			"name":    "Ada",
			"email":   "ada@example.com",
			"topic":   "sales",
			"message": "Hello there",
		},
	})
	mustStatus(t, w, http.StatusCreated)
	require.True(t, env.Success)

	var submission content.FormSubmission
	decodeData(t, env, &submission)
	assert.Equal(t, form.ID, submission.FormID)
	assert.False(t, submission.SubmittedAt.IsZero())
}

func TestSubmitFormValidatesValues(t *testing.T) {
	r := newTestRouter(t)

	form := createContactForm(t, r, "contact")

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/forms/"+form.ID+"/submissions", gin.H{
		"values": gin.H{
			"name":  "Ada",
			"email": "not-an-email",
			"topic": "marketing",
		},
	})
	mustStatus(t, w, http.StatusUnprocessableEntity)
	assert.False(t, env.Success)

	fieldNames := make([]string, 0, len(env.Fields))
	for _, f := range env.Fields {
		fieldNames = append(fieldNames, f.Field)
	}
	assert.ElementsMatch(t, []string{"email", "message", "topic"}, fieldNames)
}

func TestSubmitFormUnknownForm(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/forms/no-such-form/submissions", gin.H{
		"values": gin.H{},
	})
	mustStatus(t, w, http.StatusNotFound)
}

func TestSubmitFormInactiveForm(t *testing.T) {
	r := newTestRouter(t)

	form := createContactForm(t, r, "contact")

	body := contactFormBody("contact")
	body["isActive"] = false
	w, _ := doJSON(t, r, http.MethodPut, "/api/v1/admin/forms/"+form.ID, body)
	mustStatus(t, w, http.StatusOK)

	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/forms/"+form.ID+"/submissions", gin.H{
		"values": gin.H{
			"name":    "Ada",
			"email":   "ada@example.com",
			"message": "Hello there",
		},
	})
	mustStatus(t, w, http.StatusNotFound)
}

func TestDeleteFormFreesSlug(t *testing.T) {
	r := newTestRouter(t)

	form := createContactForm(t, r, "contact")

	w, _ := doJSON(t, r, http.MethodDelete, "/api/v1/admin/forms/"+form.ID, nil)
	mustStatus(t, w, http.StatusOK)

	recreated := createContactForm(t, r, "contact")
	assert.NotEqual(t, form.ID, recreated.ID)
}
