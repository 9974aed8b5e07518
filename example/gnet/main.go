package main

import (
	"github.com/lixenwraith/mlog"
	"github.com/lixenwraith/mlog/compat"
	"github.com/panjf2000/gnet/v2"
)

// Example gnet event handler
type echoServer struct {
	gnet.BuiltinEventEngine
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	c.Write(buf)
	return gnet.None
}

func main() {
	manager := mlog.NewManager()
	cfg := mlog.NewConfig("/var/log/gnet/server.log")
	cfg.MinLevel = mlog.LevelDebug
	if err := manager.Init(cfg); err != nil {
		panic(err)
	}
	defer manager.Shutdown()

	gnetAdapter := compat.NewGnetAdapter(manager)

	// Configure gnet server with the logger
	err := gnet.Run(
		&echoServer{},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		panic(err)
	}
}
