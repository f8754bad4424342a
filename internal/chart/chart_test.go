package chart

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonlens/internal/footprint"
)

func TestBars(t *testing.T) {
	bars := Bars(560.58, 648, 1443.75, 2652.33)

	require.Len(t, bars, 4)

	wantLabels := []string{"Energy", "Waste", "Travel", "Total"}
	wantColors := []any{ColorBlue, ColorGreen, ColorOrange, ColorRed}
	wantValues := []float64{560.58, 648, 1443.75, 2652.33}
	for i, b := range bars {
		assert.Equal(t, wantLabels[i], b.Label)
		assert.Equal(t, wantColors[i], b.Color)
		assert.Equal(t, wantValues[i], b.Value)
	}
}

func TestRenderBarChart_ProducesPNG(t *testing.T) {
	data, err := RenderBarChart(560.58, 648, 1443.75, 2652.33)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Positive(t, bounds.Dx())
	assert.Greater(t, bounds.Dx(), bounds.Dy(), "6x4 canvas should be wider than tall")
}

func TestRenderer_Render(t *testing.T) {
	tests := []struct {
		name string
		res  footprint.Result
	}{
		{name: "all zero", res: footprint.Result{}},
		{name: "negative waste", res: footprint.Result{Energy: 10, Waste: -516, Travel: 20, Total: -486}},
		{name: "large values", res: footprint.Result{Energy: 1e6, Waste: 2e5, Travel: 3e6, Total: 4.2e6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := NewRenderer(DefaultWidthInches, DefaultHeightInches).Render(tt.res)
			require.NoError(t, err)

			_, err = png.Decode(bytes.NewReader(data))
			assert.NoError(t, err)
		})
	}
}

func TestRenderer_CanvasSize(t *testing.T) {
	small, err := NewRenderer(3, 2).Render(footprint.Result{Energy: 1, Waste: 2, Travel: 3, Total: 6})
	require.NoError(t, err)
	large, err := NewRenderer(9, 6).Render(footprint.Result{Energy: 1, Waste: 2, Travel: 3, Total: 6})
	require.NoError(t, err)

	smallImg, err := png.Decode(bytes.NewReader(small))
	require.NoError(t, err)
	largeImg, err := png.Decode(bytes.NewReader(large))
	require.NoError(t, err)

	assert.Equal(t, 3*smallImg.Bounds().Dx(), largeImg.Bounds().Dx())
}

func TestNewRenderer_DefaultsForInvalidSize(t *testing.T) {
	r := NewRenderer(0, -1)
	assert.Equal(t, NewRenderer(DefaultWidthInches, DefaultHeightInches), r)
}

func TestRenderBars_RejectsNonFinite(t *testing.T) {
	_, err := RenderBarChart(math.NaN(), 0, 0, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Energy")

	_, err = NewRenderer(6, 4).RenderBars(nil)
	assert.Error(t, err)
}
