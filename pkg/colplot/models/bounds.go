package models

// AxisBounds represents padded plot ranges for both axes.
type AxisBounds struct {
	// XMin is the lower bound of the horizontal axis.
	XMin float64 `json:"x_min"`
	// XMax is the upper bound of the horizontal axis.
	XMax float64 `json:"x_max"`
	// YMin is the lower bound of the vertical axis.
	YMin float64 `json:"y_min"`
	// YMax is the upper bound of the vertical axis.
	YMax float64 `json:"y_max"`
}

// Tuple returns the bounds in (x_min, x_max, y_min, y_max) order.
func (b AxisBounds) Tuple() (float64, float64, float64, float64) {
	return b.XMin, b.XMax, b.YMin, b.YMax
}
