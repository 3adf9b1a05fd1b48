package contact

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/venturechess/portfolio/backend/internal/model/contact"
	contactService "github.com/venturechess/portfolio/backend/internal/service/contact"
	"github.com/venturechess/portfolio/backend/pkg/utils"
)

const maxBodyBytes = 64 << 10

// Handler 联系表单后端的HTTP处理器
type Handler struct {
	svc    *contactService.Service
	feed   *contactService.Feed
	logger *zap.Logger
}

// New 创建联系处理器；feed 为 nil 时不注册 websocket 路由
func New(svc *contactService.Service, feed *contactService.Feed, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, feed: feed, logger: logger}
}

// RegisterRoutes 注册联系相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/contacts", h.handleCreate)
	r.Get("/contacts", h.handleList)
	if h.feed != nil {
		r.Get("/contacts/feed", h.handleFeed)
	}
	r.Get("/contacts/{contactID}", h.handleGet)
}

type createResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    contact.Contact `json:"data"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload contact.Submission

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), payload)
	if err != nil {
		var verr *contact.ValidationError
		if errors.As(err, &verr) {
			utils.RespondError(w, http.StatusUnprocessableEntity, validationDetail(err))
			return
		}
		h.logger.Error("failed to store contact", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, "failed to submit contact form")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, createResponse{
		Success: true,
		Message: contactService.SuccessMessage,
		Data:    created,
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context(), 0)
	if err != nil {
		h.logger.Error("failed to list contacts", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, "failed to load contacts")
		return
	}
	utils.RespondJSON(w, http.StatusOK, items)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.Get(r.Context(), chi.URLParam(r, "contactID"))
	if errors.Is(err, contact.ErrNotFound) {
		utils.RespondError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("failed to load contact", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, "failed to load contact")
		return
	}
	utils.RespondJSON(w, http.StatusOK, item)
}

// validationDetail 把合并的校验错误压成一行
func validationDetail(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", "; ")
}
