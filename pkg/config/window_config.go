package config

// 窗口配置常量
// 逻辑分辨率固定为 800x600，实际窗口由 Ebitengine 负责缩放
const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 800

	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 600

	// GameWindowTitle 窗口标题
	GameWindowTitle = "88 MPH - Project: Time Train"

	// TicksPerSecond 固定逻辑帧率，所有每帧常量按此调校
	TicksPerSecond = 60
)
