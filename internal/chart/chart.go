// Package chart renders the visualization artifacts: the combined
// distribution/actual-vs-budget analysis image and the monthly trend image.
// Outputs are fire-and-forget PNG files; nothing here feeds back into the
// core.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/sync/errgroup"

	"expenses/internal/core"
)

// ErrEmptySeries signals there was nothing to plot; no file is written.
var ErrEmptySeries = errors.New("empty series")

const (
	panelWidth  = 700
	panelHeight = 500
)

// Renderer writes chart artifacts into a target directory.
type Renderer struct {
	dir string
}

func NewRenderer(dir string) (*Renderer, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create chart directory: %w", err)
	}
	return &Renderer{dir: dir}, nil
}

// Analysis renders a pie distribution of the summary next to an
// actual-vs-budget bar comparison, composited side by side into one PNG.
func (r *Renderer) Analysis(summary core.Summary, budgets core.Budgets, filename string) (string, error) {
	if summary.Total.Cents <= 0 {
		return "", fmt.Errorf("%w: no expenses to visualize", ErrEmptySeries)
	}
	if filename == "" {
		filename = "expense_analysis.png"
	}

	var pieBuf, barBuf bytes.Buffer
	var g errgroup.Group
	g.Go(func() error { return renderDistribution(summary, &pieBuf) })
	g.Go(func() error { return renderBudgetComparison(summary, budgets, &barBuf) })
	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("render analysis panels: %w", err)
	}

	path := filepath.Join(r.dir, filename)
	if err := compositePNG(path, &pieBuf, &barBuf); err != nil {
		return "", fmt.Errorf("composite analysis image: %w", err)
	}
	return path, nil
}

// Trend renders the chronological monthly totals as a bar chart. When any
// budgets are configured, their sum is drawn as a flat reference line.
func (r *Renderer) Trend(points []core.TrendPoint, budgets core.Budgets, filename string) (string, error) {
	if len(points) == 0 {
		return "", fmt.Errorf("%w: no expenses to analyze trends", ErrEmptySeries)
	}
	if filename == "" {
		filename = "spending_trends.png"
	}

	bars := make([]chart.Value, 0, len(points))
	maxValue := 0.0
	for _, p := range points {
		v := p.Total.Dollars()
		bars = append(bars, chart.Value{Label: p.Label, Value: v})
		if v > maxValue {
			maxValue = v
		}
	}

	yAxis := chart.YAxis{
		Name: "Total Spending ($)",
	}
	if budgetLine := budgets.Total().Dollars(); budgetLine > 0 {
		if budgetLine > maxValue {
			maxValue = budgetLine
		}
		yAxis.GridMajorStyle = chart.Style{
			StrokeColor: drawing.ColorRed,
			StrokeWidth: 1.5,
		}
		yAxis.GridLines = []chart.GridLine{{Value: budgetLine}}
	}
	yAxis.Range = &chart.ContinuousRange{Min: 0, Max: maxValue * 1.1}

	bc := chart.BarChart{
		Title:    "Monthly Spending Trends",
		Width:    2 * panelWidth,
		Height:   panelHeight,
		BarWidth: 40,
		YAxis:    yAxis,
		Bars:     bars,
	}

	path := filepath.Join(r.dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()
	if err := bc.Render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("render trend chart: %w", err)
	}
	return path, nil
}

func renderDistribution(summary core.Summary, w io.Writer) error {
	values := make([]chart.Value, 0, len(summary.ByCategory))
	for _, ca := range summary.ByCategory {
		if ca.Amount.Cents <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: ca.Category.String(),
			Value: ca.Amount.Dollars(),
		})
	}
	if len(values) == 0 {
		return ErrEmptySeries
	}

	pie := chart.PieChart{
		Title:  "Expense Distribution",
		Width:  panelWidth,
		Height: panelHeight,
		Values: values,
	}
	return pie.Render(chart.PNG, w)
}

func renderBudgetComparison(summary core.Summary, budgets core.Budgets, w io.Writer) error {
	// Paired bars per category, actual next to budget, in discovery order.
	bars := make([]chart.Value, 0, 2*len(summary.ByCategory))
	maxValue := 0.0
	for _, ca := range summary.ByCategory {
		actual := ca.Amount.Dollars()
		budget := budgets[ca.Category].Dollars()
		bars = append(bars,
			chart.Value{Label: ca.Category.String(), Value: actual},
			chart.Value{Label: ca.Category.String() + " budget", Value: budget},
		)
		if actual > maxValue {
			maxValue = actual
		}
		if budget > maxValue {
			maxValue = budget
		}
	}
	if maxValue <= 0 {
		return ErrEmptySeries
	}

	bc := chart.BarChart{
		Title:    "Actual vs Budgeted Spending",
		Width:    panelWidth,
		Height:   panelHeight,
		BarWidth: 24,
		YAxis: chart.YAxis{
			Name:  "Amount ($)",
			Range: &chart.ContinuousRange{Min: 0, Max: maxValue * 1.1},
		},
		Bars: bars,
	}
	return bc.Render(chart.PNG, w)
}

// compositePNG decodes two rendered panels and writes them side by side as
// one image.
func compositePNG(path string, left, right io.Reader) error {
	leftImg, err := png.Decode(left)
	if err != nil {
		return fmt.Errorf("decode left panel: %w", err)
	}
	rightImg, err := png.Decode(right)
	if err != nil {
		return fmt.Errorf("decode right panel: %w", err)
	}

	lb, rb := leftImg.Bounds(), rightImg.Bounds()
	height := lb.Dy()
	if rb.Dy() > height {
		height = rb.Dy()
	}
	combined := image.NewRGBA(image.Rect(0, 0, lb.Dx()+rb.Dx(), height))
	draw.Draw(combined, combined.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(combined, image.Rect(0, 0, lb.Dx(), lb.Dy()), leftImg, lb.Min, draw.Src)
	draw.Draw(combined, image.Rect(lb.Dx(), 0, lb.Dx()+rb.Dx(), rb.Dy()), rightImg, rb.Min, draw.Src)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()
	return png.Encode(f, combined)
}
