package analytics

import (
	"net/http"

	"cleanmatch/infras/otel"
	"cleanmatch/internal/domains/analytics/model/dto"
	"cleanmatch/internal/domains/analytics/service"
	"cleanmatch/shared/constant"
	"cleanmatch/transport/http/middleware"
	"cleanmatch/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Analytics
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Analytics, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/cleaners/{id}", handler.GetCleanerReport)
		routerGroup.Get("/homeowners/{id}", handler.GetHomeOwnerReport)
		routerGroup.Get("/platform", handler.GetPlatformReport)
	})
}

// GetCleanerReport summarizes a cleaner's bookings.
// @Summary Get a cleaner report
// @Description Aggregate booking counts, earnings and average rating for one cleaner, optionally bounded by scheduled date.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param id path string true "Cleaner ID"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.CleanerReportResponse "Cleaner report"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/cleaners/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetCleanerReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCleanerReport")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	rng, err := dto.ParseDateRange(r.URL.Query().Get(constant.RequestParamStartDate), r.URL.Query().Get(constant.RequestParamEndDate))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse date range")

		response.WithError(w, err)

		return
	}

	report, err := handler.service.CleanerReport(ctx, id, rng)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cleaner report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cleaner report retrieved successfully")

	response.WithJSON(w, http.StatusOK, report)
}

// GetHomeOwnerReport summarizes a home owner's bookings.
// @Summary Get a home owner report
// @Description Aggregate booking counts and spending for one home owner, optionally bounded by scheduled date.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param id path string true "Home Owner ID"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.HomeOwnerReportResponse "Home owner report"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/homeowners/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetHomeOwnerReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHomeOwnerReport")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	rng, err := dto.ParseDateRange(r.URL.Query().Get(constant.RequestParamStartDate), r.URL.Query().Get(constant.RequestParamEndDate))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse date range")

		response.WithError(w, err)

		return
	}

	report, err := handler.service.HomeOwnerReport(ctx, id, rng)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get home owner report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Home owner report retrieved successfully")

	response.WithJSON(w, http.StatusOK, report)
}

// GetPlatformReport summarizes bookings across the whole marketplace.
// @Summary Get the platform report
// @Description Aggregate booking counts, revenue and average booking value across all bookings, optionally bounded by scheduled date.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.PlatformReportResponse "Platform report"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/platform [get]
// @Security BearerAuth
func (handler *Handler) GetPlatformReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPlatformReport")
	defer scope.End()

	rng, err := dto.ParseDateRange(r.URL.Query().Get(constant.RequestParamStartDate), r.URL.Query().Get(constant.RequestParamEndDate))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse date range")

		response.WithError(w, err)

		return
	}

	report, err := handler.service.PlatformReport(ctx, rng)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get platform report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Platform report retrieved successfully")

	response.WithJSON(w, http.StatusOK, report)
}
