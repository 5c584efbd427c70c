package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sharath/resume-assistant/internal/dto"
	"github.com/sharath/resume-assistant/internal/usecase"
	"github.com/sharath/resume-assistant/internal/util"
)

type AssistantHandler struct {
	uc   *usecase.AssistantUsecase
	page []byte
}

func NewAssistantHandler(uc *usecase.AssistantUsecase) (*AssistantHandler, error) {
	page, err := renderIndex(uc.Profile().Subject())
	if err != nil {
		return nil, err
	}
	return &AssistantHandler{uc: uc, page: page}, nil
}

func (h *AssistantHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/", h.Index)
	app.Post("/ask", h.Ask)
	app.Get("/model", h.Model)
}

func (h *AssistantHandler) Index(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.Send(h.page)
}

func (h *AssistantHandler) Ask(c *fiber.Ctx) error {
	var req dto.AskRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	// Blank questions never reach the assistant.
	if strings.TrimSpace(req.Question) == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "question is required",
		})
	}

	answer := h.uc.Answer(c.UserContext(), req.Question)
	if answer.Failed() {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadGateway,
			Message: usecase.DisplayMessage(answer.Err),
			Kind:    usecase.KindOf(answer.Err),
		}, answer.Err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success answer question",
		Data: dto.AskResponseDTO{
			QueryID: answer.QueryID,
			Model:   answer.Model,
			Answer:  answer.Text,
		},
	})
}

func (h *AssistantHandler) Model(c *fiber.Ctx) error {
	profile := h.uc.Profile()
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get model",
		Data: dto.ModelDTO{
			Model:   profile.Model(),
			Subject: profile.Subject(),
		},
	})
}
