package site

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/venturechess/portfolio/backend/internal/model/content"
	"github.com/venturechess/portfolio/backend/internal/model/contact"
	"github.com/venturechess/portfolio/backend/internal/service/contactform"
	"github.com/venturechess/portfolio/backend/pkg/utils"
)

const (
	// VisitorCookie 在请求之间标识访客的联系表单
	VisitorCookie = "cp_visitor"
	ContactPath   = "/contact"
	contactAnchor = "/#contact"
	visitorMaxAge = 24 * time.Hour
	maxFormBytes  = 64 << 10
)

// Handler 渲染作品集页面并代访客提交联系表单
type Handler struct {
	page         *Page
	content      content.Provider
	forms        *contactform.Registry
	cookieSecure bool
	logger       *zap.Logger
}

// New 创建页面处理器
func New(page *Page, provider content.Provider, forms *contactform.Registry, cookieSecure bool, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		page:         page,
		content:      provider,
		forms:        forms,
		cookieSecure: cookieSecure,
		logger:       logger,
	}
}

// RegisterRoutes 注册页面路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handlePage)
	r.Post(ContactPath, h.handleContact)
	r.Get("/healthz", h.handleHealthz)
}

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	data := PageData{
		Site: h.content.Site(),
		Form: newFormView(ContactPath, contact.Submission{}, false),
	}

	// GET 不创建表单，未提交过的访客看到空表单。
	if id := visitorID(r); id != "" {
		if form, ok := h.forms.Peek(id); ok {
			data.Form = newFormView(ContactPath, form.Values(), form.Submitting())
			if note, ok := form.TakeNotification(); ok {
				data.Toast = &note
			}
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := h.page.Render(w, data); err != nil {
		h.logger.Error("failed to render page", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, "failed to render page")
	}
}

func (h *Handler) handleContact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	id := visitorID(r)
	if id == "" {
		id = uuid.NewString()
	}
	h.setVisitorCookie(w, id)

	var values contact.Submission
	for _, field := range contact.Fields {
		if err := values.Set(field, r.PostForm.Get(field)); err != nil {
			h.logger.Error("failed to read form field", zap.String("field", field), zap.Error(err))
		}
	}

	// 提交不随浏览器断开而取消；在途期间表单保持原样。
	ctx := context.WithoutCancel(r.Context())
	if _, err := h.forms.Form(id).SubmitValues(ctx, values); err != nil {
		if errors.Is(err, contactform.ErrSubmitInFlight) {
			h.logger.Debug("contact submission already in flight", zap.String("visitor", id))
		} else {
			h.logger.Error("contact submission failed", zap.Error(err))
		}
	}

	http.Redirect(w, r, contactAnchor, http.StatusSeeOther)
}

func (h *Handler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) setVisitorCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     VisitorCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(visitorMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func visitorID(r *http.Request) string {
	c, err := r.Cookie(VisitorCookie)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return ""
	}
	return c.Value
}
