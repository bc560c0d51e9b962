package router

import (
	"sort"

	"github.com/gin-gonic/gin"
)

// Module 业务模块：public 无需登录，protected 已挂 AuthJWT
type Module interface {
	Mount(public, protected *gin.RouterGroup)
}

// 可选：实现该接口可控制挂载顺序（数值越小越先挂），不实现默认 100
type prioritizer interface{ Priority() int }

func mountModules(public, protected *gin.RouterGroup, mods []Module) {
	sorted := append([]Module(nil), mods...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return priorityOf(sorted[i]) < priorityOf(sorted[j])
	})
	for _, m := range sorted {
		m.Mount(public, protected)
	}
}

func priorityOf(v any) int {
	if p, ok := v.(prioritizer); ok {
		return p.Priority()
	}
	return 100
}
