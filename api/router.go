package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"servermon/api/errs"
	"servermon/controllers"
)

// NewRouter wires the HTTP surface. Every route answers cross-origin
// requests from any origin.
func NewRouter(servers *controllers.ServerController) http.Handler {
	router := gin.New()
	router.Use(RequestID(), ZLogMiddleware(), gin.CustomRecovery(recovered))

	router.GET("/servers", servers.List)

	return cors.AllowAll().Handler(router)
}

// recovered hands a handler panic to ZLogMiddleware as an internal error.
func recovered(c *gin.Context, r any) {
	c.Error(fmt.Errorf("%w: panic: %v", errs.ErrInternal, r))
	c.Abort()
}
