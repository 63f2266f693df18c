package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voicegst/internal/service"
)

// CommandHandler interprets recognised speech transcripts.
type CommandHandler struct {
	gstService service.GSTService
	log        *zap.Logger
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(gstService service.GSTService, log *zap.Logger) *CommandHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &CommandHandler{gstService: gstService, log: log}
}

// Interpret handles POST /api/v1/commands/interpret
// @Summary      Interpret a transcript
// @Description  Resolves an English or Hindi transcript to an intent. GST questions that name an amount are answered with a calculation.
// @Tags         commands
// @Accept       json
// @Produce      json
// @Param        body body InterpretRequest true "Transcript and language"
// @Success      200 {object} APIResponse{data=voicecmd.Interpretation}
// @Failure      400 {object} APIResponse
// @Router       /commands/interpret [post]
func (h *CommandHandler) Interpret(c *gin.Context) {
	var req InterpretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "transcript is required")
		return
	}

	out, err := h.gstService.Interpret(c.Request.Context(), req.Transcript, req.Language)
	if err != nil {
		HandleError(c, h.log, err)
		return
	}
	RespondOK(c, out)
}
