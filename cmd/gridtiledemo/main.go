// Command gridtiledemo renders one viewport of a large grid to a PNG.
//
// The sheet geometry comes from an optional YAML file:
//
//	rows:
//	  count: 1000
//	  size: 25
//	  overrides:
//	    0: 50
//	columns:
//	  count: 100
//	  size: 100
//
// Without a sheet file a default 1000x100 grid of 25x100 cells is used.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	xdraw "golang.org/x/image/draw"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/gridtile"
	"github.com/gogpu/gridtile/ggrender"
)

// axisConfig describes one axis of the sheet.
type axisConfig struct {
	Count     int             `yaml:"count"`
	Size      float64         `yaml:"size"`
	Overrides map[int]float64 `yaml:"overrides"`
}

// sheetConfig is the YAML file layout.
type sheetConfig struct {
	Rows    axisConfig `yaml:"rows"`
	Columns axisConfig `yaml:"columns"`
}

func defaultSheet() sheetConfig {
	return sheetConfig{
		Rows:    axisConfig{Count: 1000, Size: 25},
		Columns: axisConfig{Count: 100, Size: 100},
	}
}

func loadSheet(path string) (sheetConfig, error) {
	cfg := defaultSheet()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func buildAxis(cfg axisConfig) (*gridtile.SpanIndex, error) {
	axis, err := gridtile.NewSpanIndex(cfg.Count, cfg.Size)
	if err != nil {
		return nil, err
	}
	for i, size := range cfg.Overrides {
		if err := axis.SetSize(i, size); err != nil {
			return nil, err
		}
	}
	return axis, nil
}

// labelSource labels cells spreadsheet-style: A1, B1, ... AA1.
type labelSource struct{}

func (labelSource) Label(row, col int) string {
	name := ""
	for c := col; ; c = c/26 - 1 {
		name = string(rune('A'+c%26)) + name
		if c < 26 {
			break
		}
	}
	return fmt.Sprintf("%s%d", name, row+1)
}

func main() {
	var (
		sheet    = flag.String("sheet", "", "YAML sheet description (optional)")
		viewport = flag.String("viewport", "0,0,800,600", "screen viewport as x,y,w,h")
		scale    = flag.Float64("scale", 1.0, "zoom scale")
		tileSize = flag.Int("tile-size", 256, "tile edge length in pixels")
		maxTiles = flag.Int("max-tiles", 100, "tile cache capacity")
		output   = flag.String("output", "grid.png", "output file")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		gridtile.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var vx, vy, vw, vh float64
	if _, err := fmt.Sscanf(*viewport, "%f,%f,%f,%f", &vx, &vy, &vw, &vh); err != nil {
		log.Fatalf("Bad -viewport %q: %v", *viewport, err)
	}

	cfg, err := loadSheet(*sheet)
	if err != nil {
		log.Fatalf("Failed to load sheet: %v", err)
	}

	rows, err := buildAxis(cfg.Rows)
	if err != nil {
		log.Fatalf("Bad rows config: %v", err)
	}
	cols, err := buildAxis(cfg.Columns)
	if err != nil {
		log.Fatalf("Bad columns config: %v", err)
	}
	layout, err := gridtile.NewGridLayout(rows, cols)
	if err != nil {
		log.Fatalf("Failed to build layout: %v", err)
	}

	zoom, err := gridtile.NewZoomTransform(*scale, 0.1, 8.0)
	if err != nil {
		log.Fatalf("Failed to build zoom transform: %v", err)
	}

	renderer, err := ggrender.New(layout, ggrender.WithCellSource(labelSource{}))
	if err != nil {
		log.Fatalf("Failed to build renderer: %v", err)
	}

	manager, err := gridtile.NewTileManager(layout, renderer,
		gridtile.WithTileSize(*tileSize),
		gridtile.WithMaxCachedTiles(*maxTiles))
	if err != nil {
		log.Fatalf("Failed to build tile manager: %v", err)
	}
	defer manager.Close()

	// One paint cycle: fetch, composite in order, cleanup.
	content := zoom.ScreenRectToContent(gridtile.RectXYWH(vx, vy, vw, vh))
	tiles, err := manager.TilesForViewport(content, zoom.Bucket())
	if err != nil {
		log.Fatalf("Failed to render tiles: %v", err)
	}

	frame := image.NewRGBA(image.Rect(0, 0, int(content.W), int(content.H)))
	for _, tile := range tiles {
		pix, ok := tile.Picture().(*ggrender.PixmapTile)
		if !ok || pix.Image() == nil {
			continue
		}
		bounds := tile.Coordinate().PixelBounds(*tileSize, *tileSize)
		dst := image.Rect(
			int(bounds.X-content.X),
			int(bounds.Y-content.Y),
			int(bounds.Right()-content.X),
			int(bounds.Bottom()-content.Y),
		)
		xdraw.Draw(frame, dst, pix.Image(), image.Point{}, xdraw.Src)
	}
	manager.Cleanup()

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer f.Close()
	if err := png.Encode(f, frame); err != nil {
		log.Fatalf("Failed to encode PNG: %v", err)
	}

	stats := manager.Stats()
	log.Printf("Rendered %d tiles at %s to %s (cache: %d/%d, hit rate %.0f%%)",
		len(tiles), zoom.Bucket(), *output, stats.Len, stats.MaxTiles, 100*stats.HitRate())
}
