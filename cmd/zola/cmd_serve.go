// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/armaan-choudhary/zola/notify"
	"github.com/armaan-choudhary/zola/server"
	"github.com/armaan-choudhary/zola/sky"
	"github.com/armaan-choudhary/zola/store"
)

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	revealAt, err := cfg.RevealTime()
	if err != nil {
		return err
	}
	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	svcOpts := []sky.ServiceOption{
		sky.WithLogger(log),
		sky.WithPolicy(cfg.Policy()),
		sky.WithStarsPerPage(cfg.Constellation.StarsPerPage),
		sky.WithRevealAt(revealAt),
	}
	var handlerOpts []server.HandlerOption

	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		n := notify.NewRedisNotifier(client, cfg.Redis.ChannelPrefix, log)
		if err := n.Ping(ctx); err != nil {
			log.Warn("redis unreachable, live events may fail", "addr", cfg.Redis.Addr, "error", err)
		}
		svcOpts = append(svcOpts, sky.WithNotifier(n))
		handlerOpts = append(handlerOpts, server.WithSubscriber(n), server.WithHealthCheck(n))
	}

	svc := sky.NewService(st, svcOpts...)
	gin.SetMode(gin.ReleaseMode)
	router := server.NewRouter(server.NewHandlers(svc, handlerOpts...))

	ln, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Server.Addr, err)
	}
	log.Info("starting zola", "version", version, "policy", cfg.Policy().Label(), "store", cfg.Store.Path)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Serve(gctx, ln, router, log)
	})
	if cfg.Server.MetricsAddr != "" {
		mln, err := net.Listen("tcp", cfg.Server.MetricsAddr)
		if err != nil {
			ln.Close()
			return fmt.Errorf("listen %s: %w", cfg.Server.MetricsAddr, err)
		}
		g.Go(func() error {
			return server.Serve(gctx, mln, server.MetricsHandler(), log.With("listener", "metrics"))
		})
	}

	return g.Wait()
}
