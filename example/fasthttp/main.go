package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/mlog"
	"github.com/lixenwraith/mlog/compat"
	"github.com/valyala/fasthttp"
)

func main() {
	// Create and configure the logging core
	manager, err := mlog.NewBuilder().
		FilePath("/var/log/fasthttp/server.log").
		Level(mlog.LevelTrace).
		Async(true).
		ThreadPoolSize(2).
		Build()
	if err != nil {
		panic(err)
	}
	defer manager.Shutdown()

	// Create fasthttp adapter with custom level detection
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		manager,
		compat.WithDefaultLevel(mlog.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)

	// Configure fasthttp server
	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  fasthttpAdapter,

		Name:              "MyServer",
		Concurrency:       fasthttp.DefaultConcurrency,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		TCPKeepalive:      true,
		ReduceMemoryUsage: true,
	}

	fmt.Println("Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
}

func customLevelDetector(msg string) int64 {
	// Inspect specific fasthttp message patterns first
	if strings.Contains(msg, "connection cannot be served") {
		return mlog.LevelWarn
	}
	if strings.Contains(msg, "error when serving connection") {
		return mlog.LevelError
	}

	// Fall back to default detection
	return compat.DetectLogLevel(msg)
}
