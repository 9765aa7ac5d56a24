package handler

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"bonus-malus/internal/bonusmalus"
	"bonus-malus/internal/client"
	"bonus-malus/internal/engine"
	"bonus-malus/internal/metrics"
	"bonus-malus/internal/model"
	"bonus-malus/internal/validation"
	"bonus-malus/internal/web"
)

type Handler struct {
	logger   *slog.Logger
	metrics  *metrics.Metrics
	renderer *web.Renderer
	scrape   fasthttp.RequestHandler
}

func New(logger *slog.Logger, m *metrics.Metrics, gatherer prometheus.Gatherer, renderer *web.Renderer) *Handler {
	return &Handler{
		logger:   logger,
		metrics:  m,
		renderer: renderer,
		scrape:   fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})),
	}
}

// Route dispatches by path; it is the fasthttp.Server handler.
func (h *Handler) Route(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	path := string(ctx.Path())

	route := path
	switch path {
	case "/":
		h.HandleForm(ctx)
	case "/api/bonus-malus":
		h.HandleCalculation(ctx)
	case "/healthz":
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	case "/metrics":
		h.scrape(ctx)
	default:
		route = "not_found"
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}

	h.metrics.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
}

// HandleCalculation serves POST /api/bonus-malus.
func (h *Handler) HandleCalculation(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req model.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp := h.process(&req)
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

// HandleForm serves GET / (empty form) and POST / (form submission).
func (h *Handler) HandleForm(ctx *fasthttp.RequestCtx) {
	var page web.Page

	switch {
	case ctx.IsGet():
	case ctx.IsPost():
		page = h.submitForm(ctx.PostArgs())
	default:
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	ctx.SetContentType("text/html; charset=utf-8")
	ctx.SetStatusCode(fasthttp.StatusOK)
	if err := h.renderer.Render(ctx, page); err != nil {
		h.logger.Error("render form failed", "error", err)
		ctx.ResetBody()
		writeError(ctx, fasthttp.StatusInternalServerError, "Internal server error")
	}
}

func (h *Handler) submitForm(args *fasthttp.Args) web.Page {
	form := web.FormValues{
		FirstName:        string(args.Peek("first_name")),
		LastName:         string(args.Peek("last_name")),
		Age:              string(args.Peek("age")),
		DrivingYears:     string(args.Peek("driving_years")),
		AccidentsAtFault: string(args.Peek("accidents_at_fault")),
		Usage:            string(args.Peek("usage")),
	}
	page := web.Page{Form: form}

	req, err := ParseForm(form)
	if err != nil {
		h.metrics.ObserveCalculation(model.OutcomeFailure, nil, []string{validation.CodeOf(err)})
		page.Error = err.Error()
		return page
	}

	resp := h.process(req)
	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		for _, m := range resp.CalculationResult.Messages {
			if m.Level == model.LevelCritical {
				page.Error = formatMessage(m)
				break
			}
		}
		return page
	}

	in := resp.CalculationResult.Client.ScoreInput
	page.Result = &web.Result{
		FirstName:        resp.CalculationResult.Client.FirstName,
		DrivingYears:     in.DrivingYears,
		AccidentsAtFault: in.AccidentsAtFault,
		Score:            *resp.CalculationResult.BonusMalus,
	}
	return page
}

func (h *Handler) process(req *model.CalculationRequest) *model.CalculationResponse {
	resp := engine.Process(req)

	var failures []string
	for _, m := range resp.CalculationResult.Messages {
		if m.Level == model.LevelCritical {
			failures = append(failures, m.Code)
		}
	}
	h.metrics.ObserveCalculation(resp.CalculationMetadata.CalculationOutcome, resp.CalculationResult.BonusMalus, failures)

	h.logger.Info("bonus-malus calculated",
		"calculation_id", resp.CalculationMetadata.CalculationID,
		"outcome", resp.CalculationMetadata.CalculationOutcome,
		"messages", len(resp.CalculationResult.Messages),
		"duration_ms", resp.CalculationMetadata.CalculationDurationMs,
	)
	return resp
}

// ParseForm converts raw form strings into a request. A value that is not an
// integer is rejected here; ranges are left to the engine.
func ParseForm(form web.FormValues) (*model.CalculationRequest, error) {
	req := &model.CalculationRequest{FirstName: form.FirstName, LastName: form.LastName}

	var err error
	if req.DrivingYears, err = parseInt(form.DrivingYears, "driving_years", bonusmalus.CodeInvalidDrivingYears); err != nil {
		return nil, err
	}
	if req.AccidentsAtFault, err = parseInt(form.AccidentsAtFault, "accidents_at_fault", bonusmalus.CodeInvalidAccidentsAtFault); err != nil {
		return nil, err
	}
	if req.Usage, err = parseInt(form.Usage, "usage", bonusmalus.CodeInvalidUsage); err != nil {
		return nil, err
	}
	if req.Age, err = parseInt(form.Age, "age", client.CodeInvalidAge); err != nil {
		return nil, err
	}
	return req, nil
}

func parseInt(raw, field, code string) (*int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, validation.Field(field, code, "must be a number")
	}
	return &n, nil
}

func formatMessage(m model.CalculationMessage) string {
	if m.Field == "" {
		return m.Message
	}
	return m.Field + ": " + m.Message
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		ctx.Error("Internal server error", fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
