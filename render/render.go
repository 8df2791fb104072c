// Package render draws a clustered point set as an HTML scatter chart using
// go-echarts. It consumes only Point.Cluster and the centroid coordinates;
// the core clustering package has no dependency on it.
package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/hupe1980/kmeans2d"
)

const (
	pointSymbolSize    = 6
	centroidSymbolSize = 14

	// unassignedColor marks points no assignment pass has labeled yet.
	unassignedColor = "#ffc0cb"
	centroidColor   = "#000000"
)

// palette is indexed by cluster id modulo its length.
var palette = []string{
	"#e41a1c", "#4daf4a", "#ffce00", "#377eb8",
	"#984ea3", "#ff7f00", "#a65628", "#f781bf",
}

// ClusterColor returns the display color for a cluster index.
// Negative indices map to the unassigned color.
func ClusterColor(cluster int) string {
	if cluster < 0 {
		return unassignedColor
	}

	return palette[cluster%len(palette)]
}

// Scatter builds a scatter chart with one series per cluster, one series for
// unassigned points, and an overlay series for the centroids.
func Scatter(title string, points kmeans2d.PointSet, centroids kmeans2d.CentroidSet) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "900px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("points=%d k=%d", len(points), len(centroids))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "X"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Y"}),
	)

	unassigned := make([]opts.ScatterData, 0)
	byCluster := make(map[int][]opts.ScatterData)

	for _, p := range points {
		d := opts.ScatterData{Value: []interface{}{p.X, p.Y}, SymbolSize: pointSymbolSize}
		if p.Cluster < 0 {
			unassigned = append(unassigned, d)
		} else {
			byCluster[p.Cluster] = append(byCluster[p.Cluster], d)
		}
	}

	for k := range centroids {
		scatter.AddSeries(
			fmt.Sprintf("cluster %d", k),
			byCluster[k],
			charts.WithItemStyleOpts(opts.ItemStyle{Color: ClusterColor(k)}),
		)
	}

	if len(unassigned) > 0 {
		scatter.AddSeries(
			"unassigned",
			unassigned,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: unassignedColor}),
		)
	}

	centroidData := make([]opts.ScatterData, 0, len(centroids))
	for _, c := range centroids {
		centroidData = append(centroidData, opts.ScatterData{
			Value:      []interface{}{c.X, c.Y},
			SymbolSize: centroidSymbolSize,
		})
	}

	scatter.AddSeries(
		"centroids",
		centroidData,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: centroidColor}),
	)

	return scatter
}

// WriteHTML renders the clustered point set as a standalone HTML document.
func WriteHTML(w io.Writer, title string, points kmeans2d.PointSet, centroids kmeans2d.CentroidSet) error {
	return Scatter(title, points, centroids).Render(w)
}
