// Package xconf 加载守护进程的 YAML/JSON 配置文件，并支持变更后自动重载。
//
// 配置底层使用 koanf v2，格式按扩展名识别（.yaml/.yml/.json）。
//
//	cfg, err := xconf.New("/etc/opsd/opsd.yaml")
//	if err != nil { ... }
//	var c struct {
//	    Log struct {
//	        Mask string `koanf:"mask"`
//	    } `koanf:"log"`
//	}
//	if err := cfg.Unmarshal("", &c); err != nil { ... }
//
// # 监视
//
// [Watch] 监视配置文件所在目录（编辑器常以 rename 方式原子替换文件），
// 防抖后调用 [Config.Reload] 并回调：
//
//	w, err := xconf.Watch(cfg, func(c *xconf.Config, err error) { ... })
//	if err != nil { ... }
//	go w.Run(ctx) // ctx 取消后返回
//
// 重载失败时保留旧配置，错误通过回调传出。
package xconf
