package models

// ChartSeries represents one plotted series of a scatter chart.
type ChartSeries struct {
	// Name is the series display name.
	Name string `json:"name"`
	// XColumn is the table column supplying X values.
	XColumn int `json:"x_column"`
	// YColumn is the table column supplying Y values.
	YColumn int `json:"y_column"`
	// Color is the marker color as a hex string.
	Color string `json:"color"`
	// Points is the number of plotted points.
	Points int `json:"points"`
}

// Chart represents metadata of a rendered chart.
type Chart struct {
	// Path is the image file the chart was written to.
	Path string `json:"path"`
	// Format is the image encoding (png or svg).
	Format string `json:"format"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// XAxisTitle is the X-axis title.
	XAxisTitle string `json:"x_axis_title,omitempty"`
	// YAxisTitle is the Y-axis title.
	YAxisTitle string `json:"y_axis_title,omitempty"`
	// XAxisRange is the X-axis range [min, max] as drawn.
	XAxisRange []float64 `json:"x_axis_range"`
	// YAxisRange is the Y-axis range [min, max] as drawn.
	YAxisRange []float64 `json:"y_axis_range"`
	// W is the image width in pixels.
	W int `json:"w"`
	// H is the image height in pixels.
	H int `json:"h"`
	// Series is the list of series included in the chart.
	Series []ChartSeries `json:"series"`
}
