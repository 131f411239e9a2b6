package main

import (
	"flag"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dfmora/car2data/internal/calibrate"
)

// calibrate produces the coordinate PDFs used to map field positions on
// official templates:
//
//	calibrate -action grid -out grid.pdf
//	calibrate -action overlay -template formulario_tramite -out overlay.pdf
//	calibrate -action test -template formulario_tramite -coords "placa=95,712;nombre=95,520" -out test.pdf
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var (
		action       = flag.String("action", "grid", "grid, overlay or test")
		templateType = flag.String("template", "formulario_tramite", "template type for -action overlay and -action test")
		coords       = flag.String("coords", "", "field coordinates for -action test: name=x,y;name=x,y")
		out          = flag.String("out", "calibration.pdf", "output path")
		templatesDir = flag.String("templates", envOr("TEMPLATES_DIR", "./static/pdf_templates"), "official templates directory")
	)
	flag.Parse()

	tool := calibrate.NewTool(*templatesDir, logger)

	var err error
	switch *action {
	case "grid":
		err = tool.CreateGrid(*out)
	case "overlay":
		err = tool.OverlayGridOnTemplate(*templateType, *out)
	case "test":
		var points map[string]calibrate.Point
		points, err = parseCoords(*coords)
		if err == nil {
			err = tool.CreateTestOverlay(*templateType, points, *out)
		}
	default:
		logger.Error("unknown action", "action", *action)
		os.Exit(2)
	}
	if err != nil {
		logger.Error("calibration failed", "action", *action, "error", err)
		os.Exit(1)
	}

	logger.Info("done", "action", *action, "out", *out)
}

func parseCoords(raw string) (map[string]calibrate.Point, error) {
	points := map[string]calibrate.Point{}
	for _, pair := range strings.Split(raw, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, xy, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, errInvalidCoord(pair)
		}
		xs, ys, ok := strings.Cut(xy, ",")
		if !ok {
			return nil, errInvalidCoord(pair)
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if errX != nil || errY != nil {
			return nil, errInvalidCoord(pair)
		}
		points[strings.TrimSpace(name)] = calibrate.Point{X: x, Y: y}
	}
	return points, nil
}

type errInvalidCoord string

func (e errInvalidCoord) Error() string {
	return "invalid coordinate entry " + strconv.Quote(string(e)) + ", want name=x,y"
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
