package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"servermon/models"
	"servermon/services"
)

type ServerController struct {
	service services.ServerLister
	timeout time.Duration
}

// NewServerController builds the /servers handlers. A zero timeout leaves the
// query bound only by the request context.
func NewServerController(service services.ServerLister, timeout time.Duration) *ServerController {
	return &ServerController{service: service, timeout: timeout}
}

func (sc *ServerController) List(c *gin.Context) {
	ctx := c.Request.Context()
	if sc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, sc.timeout)
		defer cancel()
	}

	servers, err := sc.service.ListServers(ctx)
	if err != nil {
		c.Error(err)
		return
	}
	if servers == nil {
		servers = []models.Server{}
	}

	c.JSON(http.StatusOK, servers)
}
