// Package server exposes the latest analysis over HTTP and streams
// update notifications over a websocket hub.
package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"tidewatch/analysis"
	"tidewatch/logger"
	"tidewatch/model"
)

// API wires the report store, the analysis engine and the websocket
// hub into a gin router.
type API struct {
	store  *Store
	engine *analysis.Engine
	hub    *Hub
}

func NewAPI(store *Store, engine *analysis.Engine, hub *Hub) *API {
	return &API{store: store, engine: engine, hub: hub}
}

// Router builds the route table. Section routes serve slices of the
// last computed report; POST /api/snapshot replaces the snapshot,
// recomputes and broadcasts.
func (a *API) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", a.handleHealth)
	r.GET("/ws", func(c *gin.Context) {
		a.hub.HandleWebSocket(c.Writer, c.Request)
	})

	api := r.Group("/api")
	{
		api.GET("/report", a.report(func(rep *analysis.Report) interface{} { return rep }))
		api.GET("/regions", a.report(func(rep *analysis.Report) interface{} { return rep.RegionalStats }))
		api.GET("/chokepoints", a.report(func(rep *analysis.Report) interface{} { return rep.Chokepoints }))
		api.GET("/projections", a.report(func(rep *analysis.Report) interface{} { return rep.Projections }))
		api.GET("/tariff-impacts", a.report(func(rep *analysis.Report) interface{} { return rep.TariffPortImpacts }))
		api.GET("/route-impacts", a.report(func(rep *analysis.Report) interface{} { return rep.RouteImpacts }))
		api.GET("/capacity", a.report(func(rep *analysis.Report) interface{} { return rep.CapacityEffects }))
		api.GET("/cross-impacts", a.report(func(rep *analysis.Report) interface{} { return rep.CrossImpacts }))
		api.GET("/compound-risks", a.report(func(rep *analysis.Report) interface{} { return rep.CompoundRisks }))
		api.GET("/cascades", a.report(func(rep *analysis.Report) interface{} { return rep.Cascades }))
		api.GET("/strategies", a.report(func(rep *analysis.Report) interface{} { return rep.Strategies }))
		api.POST("/snapshot", a.handleSnapshot)
	}

	return r
}

func (a *API) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"clients": a.hub.ClientCount(),
	})
}

// report wraps a section selector with the "no snapshot loaded yet"
// check so each route stays a one-liner.
func (a *API) report(section func(*analysis.Report) interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		rep := a.store.Report()
		if rep == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no snapshot loaded yet"})
			return
		}
		c.JSON(http.StatusOK, section(rep))
	}
}

func (a *API) handleSnapshot(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := model.NormalizeSnapshot(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := a.engine.Compute(snap)
	a.store.Set(snap, report)
	a.hub.Broadcast("report_update", report)

	logger.Info(logger.StatusData, "Snapshot replaced: %d ports, %d disruptions, %d tariffs",
		len(snap.Ports), len(snap.Disruptions), len(snap.Tariffs))

	c.JSON(http.StatusOK, gin.H{
		"ports":       len(snap.Ports),
		"disruptions": len(snap.Disruptions),
		"tariffs":     len(snap.Tariffs),
	})
}

// Start runs the HTTP server in the background.
func Start(a *API, port string) {
	logger.Info(logger.StatusSrv, "API listening on http://localhost%s (ws://localhost%s/ws)", port, port)
	go func() {
		if err := a.Router().Run(port); err != nil {
			logger.Error(logger.StatusErr, "HTTP server: %v", err)
		}
	}()
}
