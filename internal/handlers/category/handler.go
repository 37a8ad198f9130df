package category

import (
	"net/http"

	"cleanmatch/infras/otel"
	"cleanmatch/internal/domains/category/model"
	"cleanmatch/internal/domains/category/model/dto"
	"cleanmatch/internal/domains/category/service"
	"cleanmatch/shared/constant"
	gDto "cleanmatch/shared/dto"
	"cleanmatch/shared/validator"
	"cleanmatch/transport/http/middleware"
	"cleanmatch/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Category
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Category, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/categories", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCategory)
		routerGroup.Get("/", handler.GetCategories)
		routerGroup.Get("/{id}", handler.GetCategoryByID)
		routerGroup.Patch("/{id}", handler.UpdateCategory)
		routerGroup.Delete("/{id}", handler.DeleteCategory)
	})
}

// CreateCategory adds a new service category.
// @Summary Create a category
// @Description Create a new cleaning-service category.
// @Tags Category
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Create Category Request"
// @Success 201 {object} response.Message "Category created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/categories [post]
// @Security BearerAuth
func (handler *Handler) CreateCategory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCategory")
	defer scope.End()

	req := dto.CreateCategoryRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create category")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Category created successfully")

	response.WithMessage(writer, http.StatusCreated, "Category created successfully")
}

// GetCategories lists categories.
// @Summary Get all categories
// @Description Retrieve categories with optional name filtering and pagination.
// @Tags Category
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Success 200 {object} dto.GetCategoriesResponse "List of categories"
// @Failure 500 {object} response.Error
// @Router /v1/categories [get]
func (handler *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategories")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if name := r.URL.Query().Get(model.FieldName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	categories, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get categories")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Categories retrieved successfully")

	response.WithJSON(w, http.StatusOK, categories)
}

// GetCategoryByID retrieves one category.
// @Summary Get a category by ID
// @Description Retrieve a category by its unique identifier.
// @Tags Category
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse "Category details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/categories/{id} [get]
func (handler *Handler) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategoryByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	category, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get category by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Category retrieved successfully")

	response.WithJSON(w, http.StatusOK, category)
}

// UpdateCategory updates an existing category.
// @Summary Update a category by ID
// @Description Update the name or description of an existing category.
// @Tags Category
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body dto.UpdateCategoryRequest true "Update Category Request"
// @Success 200 {object} response.Message "Category updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/categories/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCategory")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateCategoryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update category")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Category updated successfully")

	response.WithMessage(w, http.StatusOK, "Category updated successfully")
}

// DeleteCategory removes a category.
// @Summary Delete a category by ID
// @Description Delete a category using its unique identifier.
// @Tags Category
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} response.Message "Category deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/categories/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCategory")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete category")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Category deleted successfully")

	response.WithMessage(w, http.StatusOK, "Category deleted successfully")
}
