package api

import (
	"errors"
	"log/slog"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/logging"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"

	"github.com/gofiber/fiber/v2"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	logger *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger) *SchedulerHandlerImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &SchedulerHandlerImpl{config: config, logger: logger}
}

// Register mounts the scheduling endpoints on router.
func Register(router fiber.Router, h SchedulerHandler) {
	v1 := router.Group("/api/v1")
	{
		v1.Post("/fcfs", h.FirstComeFirstServe)
		v1.Post("/sjf", h.ShortestJobFirst)
		v1.Post("/priority", h.Priority)
		v1.Post("/rr", h.RoundRobin)
		v1.Post("/all", h.AllAlgorithms)
	}
}

// NewApp builds the fiber application serving the scheduler API.
func NewApp(cfg *config.SchedulerConfig, logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})
	Register(app, NewSchedulerHandlerImpl(cfg, logger))
	return app
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServeName)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirstName)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityName)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobinName)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parse(ctx)
	if err != nil {
		return s.badRequest(ctx, err)
	}
	response, err := schedulers.CompareAll(request, s.timeQuantum(request), s.options()...)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm string) error {
	request, err := s.parse(ctx)
	if err != nil {
		return s.badRequest(ctx, err)
	}
	response, err := schedulers.Schedule(request, algorithm, s.timeQuantum(request), s.options()...)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) parse(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return nil, err
	}
	return &request, nil
}

// timeQuantum prefers the request's quantum over the configured one. An
// explicit non-positive quantum is passed through and rejected by the policy.
func (s *SchedulerHandlerImpl) timeQuantum(request *requests.ScheduleRequests) int {
	if request.TimeQuantum != nil {
		return *request.TimeQuantum
	}
	return s.config.RoundRobinTimeQuantum
}

func (s *SchedulerHandlerImpl) options() []schedulers.Option {
	return []schedulers.Option{
		schedulers.WithLogger(s.logger),
		schedulers.WithMaxIterations(s.config.MaxIterations),
	}
}

func (s *SchedulerHandlerImpl) badRequest(ctx *fiber.Ctx, err error) error {
	s.logger.Warn("invalid request format", logging.ErrAttr(err), "path", ctx.Path())
	return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: "invalid request format"})
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	if core.IsValidation(err) {
		s.logger.Warn("rejected schedule request", logging.ErrAttr(err), "path", ctx.Path())
		body := responses.ErrorResponse{Error: err.Error()}
		var verr *core.ValidationError
		if errors.As(err, &verr) {
			body.Details = verr.Details
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(body)
	}
	s.logger.Error("can not process request", logging.ErrAttr(err), "path", ctx.Path())
	return ctx.Status(fiber.StatusInternalServerError).JSON(responses.ErrorResponse{Error: "can not process request"})
}
