package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	app "github.com/okian/cogscore/internal/app"
	"github.com/okian/cogscore/internal/config"
	"github.com/okian/cogscore/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("COGSCORE_ADDR", ":8080")
			_ = os.Setenv("COGSCORE_QR_SIZE", "300")
			defer func() {
				_ = os.Unsetenv("COGSCORE_ADDR")
				_ = os.Unsetenv("COGSCORE_QR_SIZE")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.QRSize, convey.ShouldEqual, 300)
			})
		})
	})
}

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given main application components", t, func() {
		convey.Convey("When testing system metrics updater", func() {
			convey.Convey("Then it should return once the context ends", func() {
				ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
				defer cancel()

				convey.So(func() {
					startSystemMetricsUpdater(ctx)
				}, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When testing system metrics update", func() {
			convey.Convey("Then it should update metrics without panicking", func() {
				convey.So(func() {
					updateSystemMetrics()
				}, convey.ShouldNotPanic)
			})
		})
	})
}

func TestMainApplicationIntegration(t *testing.T) {
	convey.Convey("Given the full route table", t, func() {
		convey.So(logger.Init(), convey.ShouldBeNil)
		ctx := context.Background()

		svc := app.New(app.WithDeployedURL("https://cog.example.org"))
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		defer svc.Stop()

		srv := httptest.NewServer(newHandler(ctx, svc))
		defer srv.Close()

		convey.Convey("Then the page renders the default score", func() {
			resp, err := http.Get(srv.URL + "/")
			convey.So(err, convey.ShouldBeNil)
			defer resp.Body.Close()
			convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)
			convey.So(resp.Header.Get("X-Request-ID"), convey.ShouldNotBeEmpty)
		})

		convey.Convey("And the JSON API scores a submission", func() {
			resp, err := http.Post(srv.URL+"/api/v1/score", "application/json", strings.NewReader(`{"exercise_freq":"High"}`))
			convey.So(err, convey.ShouldBeNil)
			defer resp.Body.Close()
			convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)

			var body struct {
				Score float64 `json:"score"`
				Label string  `json:"label"`
			}
			convey.So(json.NewDecoder(resp.Body).Decode(&body), convey.ShouldBeNil)
			convey.So(body.Score, convey.ShouldAlmostEqual, 134.6432123+4.710058, 1e-9)
			convey.So(body.Label, convey.ShouldEqual, "High")
		})

		convey.Convey("And the QR image, docs and metrics are served", func() {
			for path, contentType := range map[string]string{
				"/qr.png":       "image/png",
				"/openapi.yaml": "application/yaml",
				"/api-docs":     "text/html",
				"/healthz":      "text/plain",
				"/stats":        "application/json",
			} {
				resp, err := http.Get(srv.URL + path)
				convey.So(err, convey.ShouldBeNil)
				_ = resp.Body.Close()
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)
				convey.So(resp.Header.Get("Content-Type"), convey.ShouldContainSubstring, contentType)
			}
		})
	})
}
