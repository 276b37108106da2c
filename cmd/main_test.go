package main

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/pena92022/Tekken/internal/adapters/http/api"
	"github.com/pena92022/Tekken/internal/adapters/repository"
	app "github.com/pena92022/Tekken/internal/app"
	"github.com/pena92022/Tekken/internal/config"
	"github.com/pena92022/Tekken/internal/domain/model"
	"github.com/pena92022/Tekken/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func noopFetch(ctx context.Context, id string) ([]model.Move, error) {
	return []model.Move{{Command: "1", Startup: "10", OnBlock: "+1"}}, nil
}

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		_ = logger.Init()

		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("TEKKEN_ADDR", ":8080")
			_ = os.Setenv("TEKKEN_KEY_MOVE_CAP", "10")
			defer func() {
				_ = os.Unsetenv("TEKKEN_ADDR")
				_ = os.Unsetenv("TEKKEN_KEY_MOVE_CAP")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.KeyMoveCap, convey.ShouldEqual, 10)
			})
		})

		convey.Convey("When testing service wiring", func() {
			cache := repository.New(noopFetch)

			convey.Convey("Then the service should be creatable with default options", func() {
				svc := app.New(cache)
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And with custom options", func() {
				svc := app.New(cache,
					app.WithKeyMoveCap(10),
					app.WithPunishableCap(8),
					app.WithWindowCandidateCap(2),
				)
				convey.So(svc, convey.ShouldNotBeNil)
				convey.So(svc.Start(context.Background()), convey.ShouldBeNil)
				svc.Stop()
			})
		})

		convey.Convey("When testing HTTP server creation", func() {
			cache := repository.New(noopFetch)
			svc := app.New(cache)
			convey.So(svc.Start(context.Background()), convey.ShouldBeNil)
			defer svc.Stop()

			mux := http.NewServeMux()
			api.NewServer(svc, svc).Register(context.Background(), mux)

			srv := &http.Server{
				Addr:              ":0",
				Handler:           mux,
				ReadTimeout:       readTimeout,
				WriteTimeout:      writeTimeout,
				IdleTimeout:       idleTimeout,
				ReadHeaderTimeout: readHeaderTimeout,
			}
			convey.So(srv, convey.ShouldNotBeNil)
			convey.So(srv.ReadTimeout, convey.ShouldEqual, 10*time.Second)
		})

		convey.Convey("When testing the cache metrics updater", func() {
			cache := repository.New(noopFetch)
			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
			defer cancel()

			convey.So(func() {
				startCacheMetricsUpdater(ctx, cache)
			}, convey.ShouldNotPanic)
		})
	})
}
