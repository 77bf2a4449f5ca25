// Package httpapi exposes the pricing engine over HTTP.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Victor-armando18/cafe-pricing/internal/domain"
	"github.com/Victor-armando18/cafe-pricing/internal/domain/model"
	"github.com/Victor-armando18/cafe-pricing/internal/domain/pricing"
	"github.com/Victor-armando18/cafe-pricing/internal/infrastructure"
	"github.com/Victor-armando18/cafe-pricing/internal/infrastructure/diff"
	"github.com/Victor-armando18/cafe-pricing/internal/interfaces"
	"github.com/Victor-armando18/cafe-pricing/internal/usecase/runengine"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"
)

type PatchRequest struct {
	Order model.Order     `json:"order"`
	Patch json.RawMessage `json:"patch"`
}

type ItemPriceResponse struct {
	ID        string            `json:"id"`
	Price     decimal.Decimal   `json:"price"`
	Display   string            `json:"display"`
	Breakdown pricing.Breakdown `json:"breakdown"`
}

type errorResponse struct {
	Error  string `json:"error"`
	RuleID string `json:"rule_id,omitempty"`
}

// NewRouter wires the pricing endpoints onto a fresh echo instance.
func NewRouter(svc interfaces.PricingFacade) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodPost, http.MethodPatch, http.MethodOptions, http.MethodGet},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAccept},
	}))

	reprice := &runengine.UseCase{
		Pricer:  svc,
		Patcher: infrastructure.ApplyOrderPatch,
		Differ:  &diff.Differ{},
	}

	e.POST("/drinks/price", handlePriceDrink(svc))
	e.POST("/breakfasts/price", handlePriceBreakfast(svc))
	e.POST("/orders/quote", handleQuoteOrder(svc))
	e.PATCH("/orders/quote", handlePatchOrder(reprice))
	e.GET("/menu", handleMenu(buildMenu))
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "rulesVersion": svc.RulesVersion()})
	})
	return e
}

func handlePriceDrink(svc interfaces.PricingFacade) echo.HandlerFunc {
	return func(c echo.Context) error {
		var d domain.Drink
		if err := c.Bind(&d); err != nil {
			return writeError(c, err)
		}
		return priceItem(c, svc, d)
	}
}

func handlePriceBreakfast(svc interfaces.PricingFacade) echo.HandlerFunc {
	return func(c echo.Context) error {
		var b domain.Breakfast
		if err := c.Bind(&b); err != nil {
			return writeError(c, err)
		}
		return priceItem(c, svc, b)
	}
}

func priceItem(c echo.Context, svc interfaces.PricingFacade, item domain.OrderItem) error {
	breakdown, err := svc.QuoteItem(c.Request().Context(), item)
	if err != nil {
		return writeError(c, err)
	}
	price := breakdown.Total()
	return c.JSON(http.StatusOK, ItemPriceResponse{
		ID:        uuid.NewString(),
		Price:     price,
		Display:   pricing.FormatPrice(price),
		Breakdown: breakdown,
	})
}

func handleQuoteOrder(svc interfaces.PricingFacade) echo.HandlerFunc {
	return func(c echo.Context) error {
		var order model.Order
		if err := c.Bind(&order); err != nil {
			return writeError(c, err)
		}
		items, err := order.OrderItems()
		if err != nil {
			return writeError(c, err)
		}
		quote, err := svc.QuoteOrder(c.Request().Context(), items)
		if err != nil {
			return writeError(c, err)
		}
		if order.ID == "" {
			order.ID = uuid.NewString()
		}
		return c.JSON(http.StatusOK, map[string]any{
			"id":      order.ID,
			"quote":   quote,
			"display": pricing.FormatPrice(quote.Total),
		})
	}
}

func handlePatchOrder(uc *runengine.UseCase) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req PatchRequest
		if err := c.Bind(&req); err != nil {
			return writeError(c, err)
		}
		res, err := uc.Run(c.Request().Context(), req.Order, req.Patch)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, res)
	}
}

type menuEntry struct {
	Label      string          `json:"label"`
	Adjustment decimal.Decimal `json:"adjustment"`
}

func handleMenu(build func() (map[string][]menuEntry, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		menu, err := build()
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(http.StatusOK, menu)
	}
}

func buildMenu() (map[string][]menuEntry, error) {
	menu := map[string][]menuEntry{}
	var err error
	if menu["drink_types"], err = menuSection(domain.DrinkTypes, pricing.DrinkTypeAdjustment); err != nil {
		return nil, err
	}
	if menu["sizes"], err = menuSection(domain.Sizes, pricing.SizeAdjustment); err != nil {
		return nil, err
	}
	if menu["milk_types"], err = menuSection(domain.MilkTypes, pricing.MilkAdjustment); err != nil {
		return nil, err
	}
	if menu["sandwiches"], err = menuSection(domain.SandwichTypes, pricing.SandwichAdjustment); err != nil {
		return nil, err
	}
	if menu["bagels"], err = menuSection(domain.BagelTypes, pricing.BagelAdjustment); err != nil {
		return nil, err
	}
	return menu, nil
}

// menuSection prices every label; a label missing from its table is an error.
func menuSection[T ~string](labels []T, price func(T) (decimal.Decimal, error)) ([]menuEntry, error) {
	entries := make([]menuEntry, 0, len(labels))
	for _, l := range labels {
		adj, err := price(l)
		if err != nil {
			return nil, err
		}
		entries = append(entries, menuEntry{Label: string(l), Adjustment: adj})
	}
	return entries, nil
}

func writeError(c echo.Context, err error) error {
	if ve, ok := domain.AsValidationError(err); ok {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: ve.Reason, RuleID: ve.RuleID})
	}

	// Bind failures (bad JSON, unknown labels, wrong content type).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return c.JSON(he.Code, errorResponse{Error: fmt.Sprint(he.Message)})
	}

	switch {
	case errors.Is(err, domain.ErrUnknownValue),
		errors.Is(err, model.ErrAmbiguousLine):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, runengine.ErrInvalidPatch):
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}
	return internalError(c, err)
}

func internalError(c echo.Context, err error) error {
	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
}
