package consts

const (
	Env            = "EGGIE_INPUT_ENV"              // 运行环境，test环境下使用开发日志配置
	DevicePrefix   = "EGGIE_INPUT_DEVICE_PREFIX"    // 输入设备路径前缀
	MaxInputEvents = "EGGIE_INPUT_MAX_INPUT_EVENTS" // 监听的设备文件数量上限
	Home           = "HOME"                         // 家目录
)
