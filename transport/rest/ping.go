package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (that *Handlers) Ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}
