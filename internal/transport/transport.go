// Package transport provides a new server-entity(by ginext) for search-node operability with handlers to serve endpoints
package transport

import (
	"context"
	"log"
	"net/http"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"
)

type SearchProcessor interface {
	ProcessRequest(ctx context.Context, req *model.SearchRequest) *model.SearchResult
}

type handlers struct {
	proc SearchProcessor
}

func NewSearchServer(addr string, proc SearchProcessor) *http.Server {
	h := handlers{proc: proc}

	engine := ginext.New("release")
	engine.GET("/ping", h.HealthCheck)
	engine.POST("/search", h.ReceiveSearch)

	return &http.Server{
		Addr:    addr,
		Handler: engine,
	}
}

func (h handlers) HealthCheck(ctx *ginext.Context) {
	log.Println("Received a healthcheck request!")
	ctx.Status(http.StatusOK)
}

func (h handlers) ReceiveSearch(ctx *ginext.Context) {
	var req model.SearchRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse search request from body: " + err.Error()})
		return
	}

	res := h.proc.ProcessRequest(ctx.Request.Context(), &req)
	log.Printf("Search request %q: %d matching line(s)", res.RequestID, len(res.Matches))

	ctx.JSON(http.StatusOK, res)
}
