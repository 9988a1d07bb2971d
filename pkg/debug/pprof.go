// Package debug exposes the pprof endpoints over HTTP when profiling
// is enabled in the config.
package debug

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

// Serve runs the profiler in the background. It never stops; the
// process lifetime is the session lifetime.
func Serve(addr string) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	pprof.Register(router)

	go func() {
		if err := router.Run(addr); err != nil {
			logx.Errorf("pprof server stopped: %v", err)
		}
	}()
}
