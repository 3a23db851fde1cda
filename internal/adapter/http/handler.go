package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"crusade/internal/app/events"
	"crusade/internal/app/ports"
	"crusade/internal/app/shop"
	"crusade/internal/app/status"
	"crusade/internal/app/turn"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const gmKeyHeader = "X-GM-Key"

type Handler struct {
	StatusUC status.UseCase
	ShopUC   shop.UseCase
	TurnUC   turn.UseCase
	EventsUC events.UseCase
	KPI      kpiSnapshotProvider

	// GMKey guards the GM surface. Empty disables the check.
	GMKey string
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	campaign := s.Group("/api/campaign")
	campaign.GET("/state", h.state)
	campaign.GET("/events", h.listEvents)
	campaign.GET("/planets/:id/moves", h.moveTargets)
	campaign.POST("/shop/purchase", h.purchase)
	campaign.POST("/shop/complete", h.completePurchase)
	campaign.POST("/stratagem/use", h.useStratagem)

	gm := campaign.Group("", h.requireGMKey)
	gm.POST("/turn/advance", h.advanceTurn)
	gm.POST("/events", h.addEvent)
	gm.POST("/events/random", h.randomEvent)
	gm.DELETE("/events/:id", h.removeEvent)
	gm.POST("/connections/toggle", h.toggleConnection)
	gm.POST("/orders", h.setOrder)

	s.GET("/ops/kpi", h.kpi)
}

func (h Handler) state(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Execute(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) listEvents(c context.Context, ctx *app.RequestContext) {
	planetID := string(ctx.Query("planet_id"))
	effect := string(ctx.Query("effect"))
	views, err := h.StatusUC.Events(c, planetID, effect)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"events": views})
}

func (h Handler) moveTargets(c context.Context, ctx *app.RequestContext) {
	planetID := string(ctx.Param("id"))
	resp, err := h.StatusUC.MoveTargets(c, planetID)
	if err != nil {
		if errors.Is(err, status.ErrUnknownPlanet) {
			writeErrorBody(ctx, consts.StatusNotFound, "unknown_planet", err.Error())
			return
		}
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) purchase(c context.Context, ctx *app.RequestContext) {
	var body shop.Request
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ShopUC.Purchase(c, body)
	writeShopResult(ctx, resp, err)
}

func (h Handler) completePurchase(c context.Context, ctx *app.RequestContext) {
	var body shop.CompleteRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ShopUC.CompleteTwoPlanetPurchase(c, body)
	writeShopResult(ctx, resp, err)
}

func (h Handler) useStratagem(c context.Context, ctx *app.RequestContext) {
	var body shop.Request
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ShopUC.UseStratagem(c, body)
	writeShopResult(ctx, resp, err)
}

func (h Handler) advanceTurn(c context.Context, ctx *app.RequestContext) {
	resp, err := h.TurnUC.AdvanceTurn(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) addEvent(c context.Context, ctx *app.RequestContext) {
	var body events.AddRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.EventsUC.Add(c, body)
	writeEventResult(ctx, resp, err)
}

func (h Handler) randomEvent(c context.Context, ctx *app.RequestContext) {
	resp, err := h.EventsUC.Random(c)
	writeEventResult(ctx, resp, err)
}

func (h Handler) removeEvent(c context.Context, ctx *app.RequestContext) {
	eventID := string(ctx.Param("id"))
	resp, err := h.EventsUC.Remove(c, eventID)
	writeEventResult(ctx, resp, err)
}

func (h Handler) setOrder(c context.Context, ctx *app.RequestContext) {
	var body events.OrderRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.EventsUC.SetOrder(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	if !resp.OK {
		ctx.JSON(consts.StatusConflict, resp)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) toggleConnection(c context.Context, ctx *app.RequestContext) {
	var body events.ToggleRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.EventsUC.ToggleConnection(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	if !resp.OK {
		ctx.JSON(consts.StatusConflict, resp)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

var ErrMissingGMKey = errors.New("missing x-gm-key header")
var ErrInvalidGMKey = errors.New("invalid gm key")

func (h Handler) requireGMKey(c context.Context, ctx *app.RequestContext) {
	if h.GMKey == "" {
		ctx.Next(c)
		return
	}
	key := strings.TrimSpace(string(ctx.GetHeader(gmKeyHeader)))
	if key == "" {
		writeErrorBody(ctx, consts.StatusUnauthorized, "missing_gm_key", ErrMissingGMKey.Error())
		ctx.Abort()
		return
	}
	if key != h.GMKey {
		writeErrorBody(ctx, consts.StatusUnauthorized, "invalid_gm_key", ErrInvalidGMKey.Error())
		ctx.Abort()
		return
	}
	ctx.Next(c)
}

func writeShopResult(ctx *app.RequestContext, resp shop.Response, err error) {
	if err != nil {
		writeError(ctx, err)
		return
	}
	if !resp.OK {
		ctx.JSON(consts.StatusConflict, resp)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func writeEventResult(ctx *app.RequestContext, resp events.EventResponse, err error) {
	if err != nil {
		writeError(ctx, err)
		return
	}
	if !resp.OK {
		ctx.JSON(consts.StatusConflict, resp)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}
