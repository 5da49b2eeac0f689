// Package config 提供配置相关的子包。
//
// 子包列表：
//   - xconf: 基于 koanf 的 YAML/JSON 配置加载、热重载与文件监视
//   - xroot: 安装根目录与数据根目录，命令行参数与路径前缀
package config
