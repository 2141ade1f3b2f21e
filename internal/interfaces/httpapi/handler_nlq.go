package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/norskhockey/hockeyhub/internal/usecase"
)

type askQuestionRequest struct {
	Question string `json:"question" validate:"required,min=3,max=500"`
}

func (h *Handler) AskQuestion(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AskQuestion")
	defer span.End()

	var req askQuestionRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid request body", usecase.ErrInvalidInput))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	result, err := h.nlqService.Ask(ctx, req.Question)
	if err != nil {
		h.logger.WarnContext(ctx, "natural language query failed", "question", req.Question, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, result)
}
