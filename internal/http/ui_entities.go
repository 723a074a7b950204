package httpx

import (
	"net/http"
	"strings"

	"github.com/manytooh/catalog-admin/internal/http/validation"
)

// nameFormData is the working copy for the single-field entity forms
// (brands, product categories, product types).
type nameFormData struct {
	Name string
}

// namedEntityConfig describes one of the name-only catalog entities so the
// list and form plumbing can be shared across them.
type namedEntityConfig struct {
	Singular string // e.g. "Brand"
	Plural   string // e.g. "Brands"
	BasePath string // e.g. "/brands"
	ListPage string // CurrentPage constant for the list view
	FormPage string // CurrentPage constant for the form view
	ItemsKey string // template data key for list items
}

func (c namedEntityConfig) listMeta() PageMeta {
	return PageMeta{
		Title:       "Catalog Admin - " + c.Plural,
		PageTitle:   c.Plural,
		CurrentPage: c.ListPage,
	}
}

func (c namedEntityConfig) formMeta(mode FormMode) PageMeta {
	action := "New"
	if mode == FormModeEdit {
		action = "Edit"
	}
	return PageMeta{
		Title:       "Catalog Admin - " + action + " " + c.Singular,
		PageTitle:   action + " " + c.Singular,
		CurrentPage: c.FormPage,
	}
}

// parseNameForm builds a parser for the single-field entity forms.
func parseNameForm(label string) FormParser[nameFormData] {
	return func(r *http.Request) (nameFormData, map[string]string) {
		errs := map[string]string{}
		if err := r.ParseForm(); err != nil {
			errs["_"] = "Invalid form submission."
		}
		data := nameFormData{Name: strings.TrimSpace(r.Form.Get("name"))}

		v := validation.New().Validate("name", data.Name, validation.Required(label, 255))
		for k, msg := range v.Errors() {
			errs[k] = msg
		}
		if len(errs) == 0 {
			return data, nil
		}
		return data, errs
	}
}

// renderNamedEntityForm returns a FormRenderer for the given entity.
func (h *UIHandlers) renderNamedEntityForm(cfg namedEntityConfig) FormRenderer {
	return func(w http.ResponseWriter, r *http.Request, data map[string]any) {
		data, _ = prepareFormFrame(FormFrameOpts{
			R:           r,
			Data:        data,
			DefaultMode: FormModeCreate,
			MetaForMode: cfg.formMeta,
		})
		data["BasePath"] = cfg.BasePath
		data["Singular"] = cfg.Singular
		h.renderDashboardPage(w, r, data)
	}
}

// renderNamedEntityNew renders an empty create form.
func (h *UIHandlers) renderNamedEntityNew(w http.ResponseWriter, r *http.Request, cfg namedEntityConfig) {
	h.renderNamedEntityForm(cfg)(w, r, map[string]any{
		"Mode": FormModeCreate,
	})
}

// renderNamedEntityEdit renders the edit form for an existing record.
func (h *UIHandlers) renderNamedEntityEdit(
	w http.ResponseWriter,
	r *http.Request,
	cfg namedEntityConfig,
	id, name string,
) {
	h.renderNamedEntityForm(cfg)(w, r, map[string]any{
		"Mode":     FormModeEdit,
		"RecordID": id,
		"FormData": nameFormData{Name: name},
	})
}

// handleNamedEntityForm runs the shared create/update workflow.
func (h *UIHandlers) handleNamedEntityForm(
	w http.ResponseWriter,
	r *http.Request,
	cfg namedEntityConfig,
	mode FormMode,
	svc FormService[nameFormData],
) {
	verb := "created"
	if mode == FormModeEdit {
		verb = "updated"
	}
	HandleForm(FormHandlerOpts[nameFormData]{
		W:            w,
		R:            r,
		Mode:         mode,
		Parser:       parseNameForm(cfg.Singular + " name"),
		Service:      svc,
		Renderer:     h.renderNamedEntityForm(cfg),
		SuccessURL:   cfg.BasePath,
		SuccessToast: cfg.Singular + " " + verb + ".",
		PageMeta:     cfg.formMeta(mode),
		ExtraData:    map[string]any{"RecordID": r.PathValue("id")},
	})
}
