package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"tidewatch/analysis"
	"tidewatch/config"
	"tidewatch/datasources"
	"tidewatch/logger"
	"tidewatch/model"
	"tidewatch/news"
	"tidewatch/reference"
	"tidewatch/server"
	"tidewatch/tui"
)

func main() {
	if err := config.Load(); err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger with config settings
	logger.Init(config.Global.Logging.Level, config.Global.Logging.EnableColors)

	// Initialize TUI
	tuiApp := tui.New()

	// Start TUI in background early so it can receive logs
	go func() {
		if err := tuiApp.Start(); err != nil {
			fmt.Printf("TUI Error: %v\n", err)
			os.Exit(1)
		}
	}()

	// Give TUI a moment to initialize
	time.Sleep(100 * time.Millisecond)

	// Set up logger to write to TUI
	logger.SetOutput(tuiApp.NewWriter())
	logger.SetTUIMode(true)

	logger.Info(logger.StatusInit, "%s v%s", config.Global.App.Name, config.Global.App.Version)
	logger.Info(logger.StatusInit, "Maritime Trade Impact Analysis - Cross-Entity Risk Engine")

	// 1. Setup engine and state
	engine := analysis.New(analysis.Params{
		ValuePerTEU:         config.Global.Analysis.ValuePerTEU,
		HighVolumeThreshold: config.Global.Analysis.HighVolumeThreshold,
		CompoundRiskTopN:    config.Global.Analysis.CompoundRiskTopN,
		ProjectionStartYear: config.Global.Analysis.ProjectionStartYear,
		ProjectionEndYear:   config.Global.Analysis.ProjectionEndYear,
	})
	store := server.NewStore()
	snapshotFile := "tidewatch_snapshot.json"

	// Try to load an existing snapshot first
	if _, err := os.Stat(snapshotFile); err == nil {
		logger.Info(logger.StatusInit, "Found existing snapshot file: %s", snapshotFile)
		snap, err := model.LoadSnapshot(snapshotFile)
		if err != nil {
			logger.Warn(logger.StatusWarn, "Failed to load snapshot: %v", err)
		} else {
			store.Set(snap, engine.Compute(snap))
			logger.Success("Snapshot loaded: %d ports, %d disruptions, %d tariffs",
				len(snap.Ports), len(snap.Disruptions), len(snap.Tariffs))
			logger.Info(logger.StatusInit, "Tip: Use 'analyze' to see the full report summary")
		}
	} else {
		logger.Info(logger.StatusInit, "No snapshot found. Use 'fetch' to pull from upstream or 'load <file>'")
	}

	// 1b. Setup websocket hub and HTTP API
	hub := server.NewHub()
	go hub.Run()
	api := server.NewAPI(store, engine, hub)
	server.Start(api, config.Global.Server.Port)

	client := datasources.NewClient(config.Global.Upstream.BaseURL,
		time.Duration(config.Global.Upstream.Timeout)*time.Second)

	// 2. Advisory feed poller
	if config.Global.News.RSSUrl != "" && config.Global.News.PollInterval > 0 {
		interval := time.Duration(config.Global.News.PollInterval) * time.Second
		go func() {
			for range time.Tick(interval) {
				pollAdvisories(hub)
			}
		}()
		logger.Info(logger.StatusFeed, "Advisory feed poller started (interval=%ds)", config.Global.News.PollInterval)
	}

	// Update TUI stats periodically
	go func() {
		for range time.Tick(2 * time.Second) {
			tuiApp.UpdateStats(buildStats(store))
		}
	}()

	// Handle commands from TUI (blocks until TUI exits)
	for input := range tuiApp.GetCommandChannel() {
		handleCommand(input, engine, store, hub, client, snapshotFile, tuiApp)
	}
}

func buildStats(store *server.Store) tui.Stats {
	var s tui.Stats
	if snap := store.Snapshot(); snap != nil {
		s.Ports = len(snap.Ports)
		s.Disruptions = len(snap.Disruptions)
		s.Tariffs = len(snap.Tariffs)
	}
	if rep := store.Report(); rep != nil && len(rep.CompoundRisks) > 0 {
		s.TopRisk = rep.CompoundRisks[0].Location
		s.TopRiskScore = rep.CompoundRisks[0].RiskScore
	}
	return s
}

func pollAdvisories(hub *server.Hub) {
	items, err := news.FetchFeed(config.Global.News.RSSUrl)
	if err != nil {
		logger.Warn(logger.StatusWarn, "Feed fetch failed: %v", err)
		return
	}
	advisories := news.BuildAdvisories(items)
	if len(advisories) == 0 {
		return
	}
	logger.Info(logger.StatusFeed, "Fetched %d advisories", len(advisories))
	hub.Broadcast("news_alert", advisories)
}

func handleCommand(input string, engine *analysis.Engine, store *server.Store, hub *server.Hub, client *datasources.Client, snapshotFile string, tuiApp *tui.TUI) {
	parts := strings.Split(strings.TrimSpace(input), " ")
	if len(parts) == 0 {
		return
	}

	switch parts[0] {
	case "analyze":
		rep := requireReport(store)
		if rep == nil {
			return
		}
		printReportSummary(rep)
	case "regions":
		rep := requireReport(store)
		if rep == nil {
			return
		}
		printRegions(rep)
	case "risks":
		rep := requireReport(store)
		if rep == nil {
			return
		}
		printRisks(rep)
	case "cascades":
		rep := requireReport(store)
		if rep == nil {
			return
		}
		printCascades(rep)
	case "chokepoints":
		printChokepoints()
	case "routes":
		printRoutes()
	case "project":
		from := config.Global.Analysis.ProjectionStartYear
		to := config.Global.Analysis.ProjectionEndYear
		if len(parts) >= 3 {
			f, err1 := strconv.Atoi(parts[1])
			t, err2 := strconv.Atoi(parts[2])
			if err1 != nil || err2 != nil {
				logger.Warn(logger.StatusWarn, "Usage: project <fromYear> <toYear>")
				return
			}
			from, to = f, t
		}
		printProjections(from, to)
	case "fetch":
		logger.Info(logger.StatusData, "Fetching snapshot from %s...", client.BaseURL)
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		snap, err := client.FetchSnapshot(ctx)
		if err != nil {
			logger.Error(logger.StatusErr, "Fetch failed: %v", err)
			return
		}
		rep := engine.Compute(snap)
		store.Set(snap, rep)
		hub.Broadcast("report_update", rep)
		logger.Success("Snapshot updated: %d ports, %d disruptions, %d tariffs",
			len(snap.Ports), len(snap.Disruptions), len(snap.Tariffs))
	case "news":
		pollAdvisories(hub)
	case "save":
		if len(parts) < 2 {
			logger.Warn(logger.StatusWarn, "Usage: save <filename.json>")
			return
		}
		snap := store.Snapshot()
		if snap == nil {
			logger.Warn(logger.StatusWarn, "No snapshot loaded")
			return
		}
		if err := snap.Save(parts[1]); err != nil {
			logger.Error(logger.StatusErr, "Error saving snapshot: %v", err)
		} else {
			logger.Info(logger.StatusSave, "Snapshot saved to %s", parts[1])
		}
	case "load":
		if len(parts) < 2 {
			logger.Warn(logger.StatusWarn, "Usage: load <filename.json>")
			return
		}
		snap, err := model.LoadSnapshot(parts[1])
		if err != nil {
			logger.Error(logger.StatusErr, "Error loading snapshot: %v", err)
			return
		}
		rep := engine.Compute(snap)
		store.Set(snap, rep)
		hub.Broadcast("report_update", rep)
		logger.Success("Snapshot loaded from %s: %d ports, %d disruptions, %d tariffs",
			parts[1], len(snap.Ports), len(snap.Disruptions), len(snap.Tariffs))
	case "exit", "quit", "q":
		logger.Info(logger.StatusOK, "Shutting down...")
		tuiApp.Stop()
	case "help", "?":
		logger.Plain("")
		logger.Section("Available Commands")
		logger.Plain("  analyze       - Summarize the full analysis report")
		logger.Plain("  regions       - Show regional risk statistics")
		logger.Plain("  risks         - Show ranked compound risks")
		logger.Plain("  cascades      - Show detected cascading effects")
		logger.Plain("  chokepoints   - List monitored maritime chokepoints")
		logger.Plain("  routes        - List monitored shipping routes")
		logger.Plain("  project <a> <b> - Project trade scenarios for years a..b")
		logger.Plain("  fetch         - Pull a fresh snapshot from upstream")
		logger.Plain("  news          - Force an advisory feed check")
		logger.Plain("  save <F>      - Save snapshot to file F")
		logger.Plain("  load <F>      - Load snapshot from file F")
		logger.Plain("  exit          - Quit")
	default:
		logger.Warn(logger.StatusWarn, "Unknown command: %s (type 'help' for commands)", parts[0])
	}
}

func requireReport(store *server.Store) *analysis.Report {
	rep := store.Report()
	if rep == nil {
		logger.Warn(logger.StatusWarn, "No snapshot loaded. Use 'fetch' or 'load <file>' first")
	}
	return rep
}

func printReportSummary(rep *analysis.Report) {
	logger.Plain("")
	logger.Section("Analysis Report")
	logger.Plain("  Regions analyzed:     %d", len(rep.RegionalStats))
	logger.Plain("  Tariff-port impacts:  %d", len(rep.TariffPortImpacts))
	logger.Plain("  Route impacts:        %d", len(rep.RouteImpacts))
	logger.Plain("  Capacity effects:     %d", len(rep.CapacityEffects))
	logger.Plain("  Cross-impact edges:   %d", len(rep.CrossImpacts))
	logger.Plain("  Compound risks:       %d", len(rep.CompoundRisks))
	logger.Plain("  Cascading effects:    %d", len(rep.Cascades))
	if len(rep.CompoundRisks) > 0 {
		top := rep.CompoundRisks[0]
		logger.Info(logger.StatusRisk, "Top compound risk: %s, %s (%.0f, %s)",
			top.Location, top.Country, top.RiskScore, top.RiskLevel)
	}
}

func printRegions(rep *analysis.Report) {
	logger.Plain("")
	logger.Section("Regional Statistics")
	for _, rs := range rep.RegionalStats {
		logger.Plain("  %-16s ports=%d  risk=%.0f  throughput=%.0f  value=$%.0f",
			rs.Name, rs.PortCount, rs.RiskScore, rs.Throughput, rs.EconomicValue)
	}
}

func printRisks(rep *analysis.Report) {
	logger.Plain("")
	logger.Section("Compound Risks")
	for i, cr := range rep.CompoundRisks {
		logger.Plain("  %d. %s, %s - %.0f (%s, priority: %s)",
			i+1, cr.Location, cr.Country, cr.RiskScore, cr.RiskLevel, cr.MitigationPriority)
		for _, f := range cr.ContributingFactors {
			logger.Plain("       - %s", f)
		}
	}
}

func printCascades(rep *analysis.Report) {
	logger.Plain("")
	logger.Section("Cascading Effects")
	for _, ce := range rep.Cascades {
		logger.Info(logger.StatusCasc, "%s", ce.Trigger)
		logger.Plain("     => %s (%s)", ce.Effect, ce.TimeToMaterialize)
		for _, se := range ce.SecondaryEffects {
			logger.Plain("        - %s", se)
		}
	}
}

func printChokepoints() {
	logger.Plain("")
	logger.Section("Maritime Chokepoints")
	for _, cp := range reference.Chokepoints() {
		logger.Plain("  %-22s risk=%.0f  %s", cp.Name, cp.RiskScore, cp.Traffic)
	}
}

func printRoutes() {
	logger.Plain("")
	logger.Section("Shipping Routes")
	for _, rt := range reference.ShippingRoutes() {
		logger.Plain("  %-28s %s -> %s (%d vessels/mo, %.0f TEU avg)",
			rt.Name, rt.Origin, rt.Destination, rt.MonthlyVessels, rt.AvgCapacityTEU)
	}
}

func printProjections(from, to int) {
	projections := analysis.ProjectTradeScenarios(from, to)
	if len(projections) == 0 {
		logger.Warn(logger.StatusWarn, "Empty year range: %d..%d", from, to)
		return
	}
	logger.Plain("")
	logger.Section(fmt.Sprintf("Trade Projections %d-%d (USD billions)", from, to))
	logger.Plain("  %-6s %-10s %-12s %-12s", "Year", "Baseline", "Optimistic", "Pessimistic")
	for _, p := range projections {
		logger.Plain("  %-6d %-10.0f %-12.0f %-12.0f", p.Year, p.Baseline, p.Optimistic, p.Pessimistic)
	}
	logger.Info(logger.StatusProj, "Projected %d years across 9 scenarios", len(projections))
}
