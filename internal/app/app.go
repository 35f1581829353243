// Package app wires the pipeline stages together and runs one full batch:
// fetch, filter, enrich, bucket, dedupe, select, synthesize, write.
package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"bevintel/internal/artifacts"
	"bevintel/internal/briefing"
	"bevintel/internal/config"
	"bevintel/internal/dedupe"
	"bevintel/internal/enrich"
	"bevintel/internal/feeds"
	"bevintel/internal/health"
	"bevintel/internal/logger"
	"bevintel/internal/metrics"
	"bevintel/internal/region"
	"bevintel/internal/relevance"
	"bevintel/internal/window"
)

// App owns the configured pipeline components for one process.
type App struct {
	cfg      *config.Config
	tables   config.Tables
	fetcher  *feeds.Fetcher
	filter   *relevance.Filter
	enricher *enrich.Enricher
	assigner *region.Assigner
	now      func() time.Time
}

// New loads the data tables and constructs the pipeline. The fetcher keeps
// the widest lookback window's worth of entries so the fallback window always
// has material to widen into.
func New(cfg *config.Config) (*App, error) {
	tables, err := config.LoadTables(cfg.TablesPath)
	if err != nil {
		return nil, fmt.Errorf("load tables: %w", err)
	}

	maxAge := time.Duration(window.FallbackWindowDays) * 24 * time.Hour
	return &App{
		cfg:      cfg,
		tables:   tables,
		fetcher:  feeds.NewFetcher(maxAge),
		filter:   relevance.NewFilter(tables.Include, tables.Exclude),
		enricher: enrich.NewEnricher(tables.Dictionaries),
		assigner: region.NewAssigner(tables.Regions),
		now:      time.Now,
	}, nil
}

// Run executes one complete batch and writes the five output documents.
// Individual feed failures are recorded and reported, never fatal; only a
// failure to persist an artifact fails the run.
func (a *App) Run(ctx context.Context) error {
	start := a.now()
	now := start.UTC()
	log := logger.Stage("pipeline")
	log.Info("starting run", "feeds", len(a.tables.Feeds), "regions", len(a.tables.Regions))

	accepted, fetchErrors, feedsOK := a.collect(ctx)

	defs := a.assigner.Definitions()
	buckets := a.assigner.Bucket(accepted)

	newsRegions := make(map[string][]artifacts.Article, len(defs))
	briefRegions := make(map[string]briefing.Briefing, len(defs))
	healthRegions := make(map[string]health.Record, len(defs))
	sourcesUsed := make(map[string][]string, len(defs))
	counts := make(map[string]int, len(defs))
	selected := make(map[string][]enrich.Article, len(defs))
	totalItems := 0

	for _, def := range defs {
		pool := buckets[def.ID]
		collapsed := dedupe.Collapse(pool)
		metrics.Global.AddDuplicatesRemoved(len(pool) - len(collapsed))

		res := window.Select(collapsed, def, now)
		selected[def.ID] = res.Articles
		counts[def.ID] = len(res.Articles)
		totalItems += len(res.Articles)

		rows := make([]artifacts.Article, 0, len(res.Articles))
		for _, art := range res.Articles {
			rows = append(rows, artifacts.NewsArticle(art, def.ID))
		}
		newsRegions[def.ID] = rows
		sourcesUsed[def.ID] = uniqueSources(res.Articles)

		briefRegions[def.ID] = briefing.Synthesize(def, res.Articles)
		healthRegions[def.ID] = health.Evaluate(res, feedsOK, len(fetchErrors))

		log.Info("region processed",
			"region", def.ID,
			"candidates", len(pool),
			"deduplicated", len(collapsed),
			"selected", len(res.Articles),
			"window_days", res.WindowDays,
			"fallback", res.FallbackUsed)
	}

	generatedAt := now.Format(time.RFC3339)
	documents := map[string]any{
		artifacts.NewsFile: artifacts.NewsDocument{
			GeneratedAt: generatedAt,
			WindowDays:  window.PrimaryWindowDays,
			Regions:     newsRegions,
			Meta: artifacts.NewsMeta{
				SourcesUsed: sourcesUsed,
				Errors:      fetchErrors,
				Counts:      counts,
			},
		},
		artifacts.BriefingsFile: artifacts.BriefingsDocument{
			GeneratedAt: generatedAt,
			WindowDays:  window.PrimaryWindowDays,
			Regions:     briefRegions,
		},
		artifacts.MarketFile: artifacts.BuildMarket(defs, a.tables.Market, counts, now),
		artifacts.HealthFile: artifacts.HealthDocument{
			GeneratedAt: generatedAt,
			Regions:     healthRegions,
			Global: health.Global{
				TotalItems:         totalItems,
				TotalSourcesOK:     feedsOK,
				TotalSourcesFailed: len(fetchErrors),
			},
		},
		artifacts.CondensedFile: briefing.Condense(defs, uniqueArticles(accepted), selected, now),
	}

	for name, doc := range documents {
		if err := artifacts.Write(a.cfg.OutputDir, name, doc); err != nil {
			metrics.Global.SetError(err.Error())
			return err
		}
		metrics.Global.AddArtifactsWritten(1)
	}

	metrics.Global.RecordProcessingTime(time.Since(start))
	metrics.Global.SetLastRun()

	log.Info("run complete",
		"accepted", len(accepted),
		"total_selected", totalItems,
		"feeds_ok", feedsOK,
		"feeds_failed", len(fetchErrors),
		"duration", time.Since(start).Round(time.Millisecond))
	return nil
}

// collect fetches every feed sequentially in table order, filters and
// enriches the entries, and assigns regions. Sequential order keeps the
// downstream first-seen-wins dedupe deterministic between runs.
func (a *App) collect(ctx context.Context) ([]enrich.Article, []feeds.FetchError, int) {
	log := logger.Stage("fetch")
	accepted := make([]enrich.Article, 0, 256)
	fetchErrors := make([]feeds.FetchError, 0)
	feedsOK := 0

	for _, d := range a.tables.Feeds {
		items, err := a.fetcher.Fetch(ctx, d)
		if err != nil {
			log.Warn("feed failed", "source", d.Name, "error", err)
			metrics.Global.AddFeedsFailed(1)
			fetchErrors = append(fetchErrors, feeds.FetchError{
				Source:  d.Name,
				Message: err.Error(),
				Time:    a.now().UTC(),
			})
			continue
		}
		feedsOK++
		metrics.Global.AddFeedsFetched(1)
		metrics.Global.AddItemsSeen(len(items))

		kept := 0
		for _, item := range items {
			text := item.Text()
			if !a.filter.Relevant(text) {
				continue
			}
			art := a.enricher.Enrich(item, d.Category)
			art.Regions = a.assigner.Assign(text, item.FeedRegions)
			accepted = append(accepted, art)
			kept++
		}
		metrics.Global.AddItemsAccepted(kept)
		log.Debug("feed done", "source", d.Name, "items", len(items), "kept", kept)
	}

	log.Info("collection done", "accepted", len(accepted), "feeds_failed", len(fetchErrors))
	return accepted, fetchErrors, feedsOK
}

// uniqueArticles collapses the corpus by article id, keeping the first
// occurrence. Overlapping query feeds routinely deliver the same story more
// than once, and the condensed totals must count each story once.
func uniqueArticles(articles []enrich.Article) []enrich.Article {
	seen := make(map[string]struct{}, len(articles))
	out := make([]enrich.Article, 0, len(articles))
	for _, art := range articles {
		if _, dup := seen[art.ID]; dup {
			continue
		}
		seen[art.ID] = struct{}{}
		out = append(out, art)
	}
	return out
}

// uniqueSources returns the sorted distinct source names of a selection.
func uniqueSources(articles []enrich.Article) []string {
	seen := make(map[string]bool, len(articles))
	names := make([]string, 0, len(articles))
	for _, art := range articles {
		if !seen[art.Source] {
			seen[art.Source] = true
			names = append(names, art.Source)
		}
	}
	sort.Strings(names)
	return names
}
