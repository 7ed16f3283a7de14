package web

import (
	"bytes"
	"context"
	"errors"
	"github.com/Monte-10/ryanair-labs/business/interconnections"
	"github.com/Monte-10/ryanair-labs/common/xtime"
	"github.com/Monte-10/ryanair-labs/web/model"
	"github.com/labstack/echo/v4"
	"log/slog"
	"net/http"
	"time"
)

const HeaderSearchId = "X-Search-Id"

type ItinerarySearch interface {
	FindItineraries(ctx context.Context, departure, arrival string, start, end xtime.LocalDateTime) ([]interconnections.Itinerary, error)
}

type InterconnectionsQuery struct {
	Departure         string              `query:"departure" validate:"required"`
	Arrival           string              `query:"arrival" validate:"required"`
	DepartureDateTime xtime.LocalDateTime `query:"departureDateTime"`
	ArrivalDateTime   xtime.LocalDateTime `query:"arrivalDateTime"`
}

type InterconnectionsHandler struct {
	search ItinerarySearch
	log    *slog.Logger
}

func NewInterconnectionsHandler(search ItinerarySearch, log *slog.Logger) *InterconnectionsHandler {
	return &InterconnectionsHandler{
		search: search,
		log:    log,
	}
}

func (h *InterconnectionsHandler) JSON(c echo.Context) error {
	its, err := h.find(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, its)
}

func (h *InterconnectionsHandler) PNG(c echo.Context) error {
	its, err := h.find(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = ExportItinerariesImage(c.Request().Context(), &buf, its); err != nil {
		return NewHTTPError(http.StatusInternalServerError, WithMessage("failed to render itineraries"), WithCause(err))
	}

	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

func (h *InterconnectionsHandler) find(c echo.Context) ([]model.Itinerary, error) {
	var q InterconnectionsQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		if errors.Is(err, xtime.ErrInvalidLocalDateTime) {
			return nil, NewHTTPError(http.StatusBadRequest, WithCause(xtime.ErrInvalidLocalDateTime), WithUnmaskedCause())
		}

		return nil, NewHTTPError(http.StatusBadRequest, WithMessage("invalid query parameters"), WithCause(err))
	}

	if err := c.Validate(&q); err != nil {
		return nil, err
	}

	searchId, err := model.NewSearchId()
	if err != nil {
		return nil, err
	}

	c.Response().Header().Set(HeaderSearchId, searchId.String())

	ctx := c.Request().Context()
	log := h.log.With(slog.String("searchId", searchId.String()))
	start := time.Now()

	its, err := h.search.FindItineraries(ctx, q.Departure, q.Arrival, q.DepartureDateTime, q.ArrivalDateTime)
	if err != nil {
		log.WarnContext(ctx, "search failed", slog.String("err", err.Error()))
		return nil, searchError(err)
	}

	log.InfoContext(
		ctx,
		"search completed",
		slog.String("departure", q.Departure),
		slog.String("arrival", q.Arrival),
		slog.String("departureDateTime", q.DepartureDateTime.String()),
		slog.String("arrivalDateTime", q.ArrivalDateTime.String()),
		slog.Int("itineraries", len(its)),
		slog.Duration("duration", time.Since(start)),
	)

	return model.ItinerariesFromBusiness(its), nil
}

func searchError(err error) error {
	switch {
	case errors.Is(err, interconnections.ErrInvalidArgument):
		return NewHTTPError(http.StatusBadRequest, WithCause(err), WithUnmaskedCause())

	case errors.Is(err, interconnections.ErrExternalService):
		return NewHTTPError(http.StatusBadGateway, WithMessage("error while querying the flight data provider"), WithCause(err))

	case errors.Is(err, context.DeadlineExceeded):
		return NewHTTPError(http.StatusRequestTimeout, WithCause(err))
	}

	return NewHTTPError(http.StatusInternalServerError, WithCause(err))
}
