package components

// PositionComponent 实体在表面坐标系中的位置（像素，原点左上角）
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 每帧位移（像素/帧）
type VelocityComponent struct {
	VX float64
	VY float64
}
