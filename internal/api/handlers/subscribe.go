package handlers

import (
	"github.com/labstack/echo/v4"

	"clinicdesk/internal/api/ws"
)

type SubscribeHandler struct {
	hub *ws.Hub
}

func NewSubscribeHandler(hub *ws.Hub) *SubscribeHandler {
	return &SubscribeHandler{hub: hub}
}

// Subscribe godoc
// @Summary Change feed
// @Description Upgrades to a websocket that receives {"type":"<entity>.<action>","data":...} after every successful mutation
// @Tags feed
// @Router /rpc/subscribe [get]
func (h *SubscribeHandler) Subscribe(c echo.Context) error {
	// a failed upgrade has already been answered by the upgrader
	_ = h.hub.Serve(c.Response(), c.Request())
	return nil
}
