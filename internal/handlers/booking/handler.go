package booking

import (
	"net/http"

	"cleanmatch/infras/otel"
	"cleanmatch/internal/domains/booking/model"
	"cleanmatch/internal/domains/booking/model/dto"
	"cleanmatch/internal/domains/booking/service"
	"cleanmatch/shared/constant"
	gDto "cleanmatch/shared/dto"
	"cleanmatch/shared/failure"
	"cleanmatch/shared/validator"
	"cleanmatch/transport/http/middleware"
	"cleanmatch/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Booking
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Booking, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}/status", handler.UpdateStatus)
		routerGroup.Patch("/{id}/schedule", handler.RescheduleBooking)
		routerGroup.Patch("/{id}/notes", handler.UpdateNotes)
		routerGroup.Post("/{id}/review", handler.AddReview)
	})
}

// CreateBooking books a cleaner for a home owner.
// @Summary Create a booking
// @Description Book a cleaning service. The booking starts in pending status and its total price is frozen at creation.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.BookingResponse "Created booking"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetBookings lists bookings.
// @Summary Get all bookings
// @Description Retrieve bookings with optional cleaner, home owner and status filtering.
// @Tags Booking
// @Accept json
// @Produce json
// @Param cleaner_id query string false "Filter by cleaner"
// @Param home_owner_id query string false "Filter by home owner"
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.GetBookingsResponse "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if cleanerID := r.URL.Query().Get(model.FieldCleanerID); cleanerID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCleanerID,
			Operator: gDto.FilterOperatorEq,
			Value:    cleanerID,
			Table:    model.TableName,
		})
	}

	if homeOwnerID := r.URL.Query().Get(model.FieldHomeOwnerID); homeOwnerID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldHomeOwnerID,
			Operator: gDto.FilterOperatorEq,
			Value:    homeOwnerID,
			Table:    model.TableName,
		})
	}

	if statusParam := r.URL.Query().Get(model.FieldStatus); statusParam != "" {
		status, err := model.ParseStatus(statusParam)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to parse status filter")

			response.WithError(w, failure.BadRequestFromString(err.Error()))

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status.String(),
			Table:    model.TableName,
		})
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves one booking.
// @Summary Get a booking by ID
// @Description Retrieve a booking by its unique identifier.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateStatus moves a booking through its lifecycle.
// @Summary Update booking status
// @Description Transition a booking to a new status. Invalid transitions are rejected.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Message "Booking status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking status updated successfully")

	response.WithMessage(w, http.StatusOK, "Booking status updated successfully")
}

// RescheduleBooking changes the scheduled date of a pending booking.
// @Summary Reschedule a booking
// @Description Change the scheduled date. Only pending bookings can be rescheduled.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.RescheduleBookingRequest true "Reschedule Booking Request"
// @Success 200 {object} response.Message "Booking rescheduled successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/schedule [patch]
// @Security BearerAuth
func (handler *Handler) RescheduleBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RescheduleBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.RescheduleBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Reschedule(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reschedule booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking rescheduled successfully")

	response.WithMessage(w, http.StatusOK, "Booking rescheduled successfully")
}

// UpdateNotes updates the notes on a booking.
// @Summary Update booking notes
// @Description Update the notes attached to a booking. Notes stay editable in every status.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateNotesRequest true "Update Notes Request"
// @Success 200 {object} response.Message "Booking notes updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/notes [patch]
// @Security BearerAuth
func (handler *Handler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateNotes")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateNotesRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateNotes(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking notes")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking notes updated successfully")

	response.WithMessage(w, http.StatusOK, "Booking notes updated successfully")
}

// AddReview attaches a one-time review to a completed booking.
// @Summary Review a booking
// @Description Attach a rating and optional review text to a completed booking. A booking can only be reviewed once.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.AddReviewRequest true "Add Review Request"
// @Success 201 {object} response.Message "Review added successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/review [post]
// @Security BearerAuth
func (handler *Handler) AddReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddReview")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.AddReviewRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.AddReview(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add review")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Review added successfully")

	response.WithMessage(w, http.StatusCreated, "Review added successfully")
}
