package services

import (
	"sort"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/email/templates"
)

// fakeHeroRepo is an in-memory HeroRepository for service tests.
type fakeHeroRepo struct {
	heroes map[string]*content.HeroNode
}

func newFakeHeroRepo() *fakeHeroRepo {
	return &fakeHeroRepo{heroes: make(map[string]*content.HeroNode)}
}

func (r *fakeHeroRepo) FindByID(tenantID, id string) (*content.HeroNode, error) {
	return r.heroes[id], nil
}

func (r *fakeHeroRepo) FindByPage(tenantID, pageID string) ([]*content.HeroNode, error) {
	var out []*content.HeroNode
	for _, h := range r.heroes {
		if h.PageID == pageID {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (r *fakeHeroRepo) FindAll(tenantID string) ([]*content.HeroNode, error) {
	var out []*content.HeroNode
	for _, h := range r.heroes {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeHeroRepo) Store(tenantID string, hero *content.HeroNode) error {
	r.heroes[hero.ID] = hero
	return nil
}

func (r *fakeHeroRepo) Update(tenantID string, hero *content.HeroNode) error {
	r.heroes[hero.ID] = hero
	return nil
}

func (r *fakeHeroRepo) ReplaceOrder(tenantID, pageID string, ordered []*content.HeroNode) error {
	for _, h := range ordered {
		r.heroes[h.ID] = h
	}
	return nil
}

func (r *fakeHeroRepo) Delete(tenantID, id string) error {
	delete(r.heroes, id)
	return nil
}

// fakeFormRepo is an in-memory FormRepository for service tests.
type fakeFormRepo struct {
	forms map[string]*content.FormNode
}

func newFakeFormRepo() *fakeFormRepo {
	return &fakeFormRepo{forms: make(map[string]*content.FormNode)}
}

func (r *fakeFormRepo) FindByID(tenantID, id string) (*content.FormNode, error) {
	return r.forms[id], nil
}

func (r *fakeFormRepo) FindBySlug(tenantID, slug string) (*content.FormNode, error) {
	for _, f := range r.forms {
		if f.Slug == slug {
			return f, nil
		}
	}
	return nil, nil
}

func (r *fakeFormRepo) FindAll(tenantID string) ([]*content.FormNode, error) {
	var out []*content.FormNode
	for _, f := range r.forms {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (r *fakeFormRepo) Store(tenantID string, form *content.FormNode) error {
	r.forms[form.ID] = form
	return nil
}

func (r *fakeFormRepo) Update(tenantID string, form *content.FormNode) error {
	r.forms[form.ID] = form
	return nil
}

func (r *fakeFormRepo) Delete(tenantID, id string) error {
	delete(r.forms, id)
	return nil
}

// fakeFaqRepo is an in-memory FaqRepository for service tests.
type fakeFaqRepo struct {
	faqs map[string]*content.FaqNode
}

func newFakeFaqRepo() *fakeFaqRepo {
	return &fakeFaqRepo{faqs: make(map[string]*content.FaqNode)}
}

func (r *fakeFaqRepo) FindByID(tenantID, id string) (*content.FaqNode, error) {
	return r.faqs[id], nil
}

func (r *fakeFaqRepo) FindByCategory(tenantID, categoryID string) ([]*content.FaqNode, error) {
	var out []*content.FaqNode
	for _, f := range r.faqs {
		if f.CategoryID == categoryID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (r *fakeFaqRepo) FindAll(tenantID string) ([]*content.FaqNode, error) {
	var out []*content.FaqNode
	for _, f := range r.faqs {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeFaqRepo) Store(tenantID string, faq *content.FaqNode) error {
	r.faqs[faq.ID] = faq
	return nil
}

func (r *fakeFaqRepo) Update(tenantID string, faq *content.FaqNode) error {
	r.faqs[faq.ID] = faq
	return nil
}

func (r *fakeFaqRepo) ReplaceOrder(tenantID, categoryID string, ordered []*content.FaqNode) error {
	for _, f := range ordered {
		r.faqs[f.ID] = f
	}
	return nil
}

func (r *fakeFaqRepo) Delete(tenantID, id string) error {
	delete(r.faqs, id)
	return nil
}

// fakeCtaRepo is an in-memory CtaRepository for service tests.
type fakeCtaRepo struct {
	ctas map[string]*content.CtaNode
}

func newFakeCtaRepo() *fakeCtaRepo {
	return &fakeCtaRepo{ctas: make(map[string]*content.CtaNode)}
}

func (r *fakeCtaRepo) FindByID(tenantID, id string) (*content.CtaNode, error) {
	return r.ctas[id], nil
}

func (r *fakeCtaRepo) FindByHeader(tenantID, headerID string) ([]*content.CtaNode, error) {
	var out []*content.CtaNode
	for _, c := range r.ctas {
		if c.HeaderID == headerID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (r *fakeCtaRepo) FindAll(tenantID string) ([]*content.CtaNode, error) {
	var out []*content.CtaNode
	for _, c := range r.ctas {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCtaRepo) Store(tenantID string, cta *content.CtaNode) error {
	r.ctas[cta.ID] = cta
	return nil
}

func (r *fakeCtaRepo) Update(tenantID string, cta *content.CtaNode) error {
	r.ctas[cta.ID] = cta
	return nil
}

func (r *fakeCtaRepo) ReplaceOrder(tenantID, headerID string, ordered []*content.CtaNode) error {
	for _, c := range ordered {
		r.ctas[c.ID] = c
	}
	return nil
}

func (r *fakeCtaRepo) Delete(tenantID, id string) error {
	delete(r.ctas, id)
	return nil
}

// fakeMediaSectionRepo is an in-memory MediaSectionRepository for service tests.
type fakeMediaSectionRepo struct {
	sections map[string]*content.MediaSectionNode
}

func newFakeMediaSectionRepo() *fakeMediaSectionRepo {
	return &fakeMediaSectionRepo{sections: make(map[string]*content.MediaSectionNode)}
}

func (r *fakeMediaSectionRepo) FindByID(tenantID, id string) (*content.MediaSectionNode, error) {
	return r.sections[id], nil
}

func (r *fakeMediaSectionRepo) FindByPage(tenantID, pageID string) ([]*content.MediaSectionNode, error) {
	var out []*content.MediaSectionNode
	for _, s := range r.sections {
		if s.PageID == pageID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (r *fakeMediaSectionRepo) FindAll(tenantID string) ([]*content.MediaSectionNode, error) {
	var out []*content.MediaSectionNode
	for _, s := range r.sections {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeMediaSectionRepo) Store(tenantID string, section *content.MediaSectionNode) error {
	r.sections[section.ID] = section
	return nil
}

func (r *fakeMediaSectionRepo) Update(tenantID string, section *content.MediaSectionNode) error {
	r.sections[section.ID] = section
	return nil
}

func (r *fakeMediaSectionRepo) ReplaceOrder(tenantID, pageID string, ordered []*content.MediaSectionNode) error {
	for _, s := range ordered {
		r.sections[s.ID] = s
	}
	return nil
}

func (r *fakeMediaSectionRepo) Delete(tenantID, id string) error {
	delete(r.sections, id)
	return nil
}

// sentEmail records one SendFormSubmissionEmail call.
type sentEmail struct {
	To          string
	FormTitle   string
	SubmittedAt string
	Values      []templates.SubmissionValue
}

// fakeEmailService records submission notifications instead of sending them.
type fakeEmailService struct {
	sent []sentEmail
	err  error
}

func (s *fakeEmailService) SendFormSubmissionEmail(toEmail, formTitle, submittedAt string, values []templates.SubmissionValue) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentEmail{To: toEmail, FormTitle: formTitle, SubmittedAt: submittedAt, Values: values})
	return nil
}
