package components

// ScaleComponent 存储实体级别的缩放因子
// 用于卡片悬停放大、首屏随滚动缩小等
//
// 最终缩放 = 绘制尺寸 * ScaleComponent
type ScaleComponent struct {
	// ScaleX X轴缩放因子（1.0 = 原始大小）
	ScaleX float64

	// ScaleY Y轴缩放因子（1.0 = 原始大小）
	ScaleY float64
}
