package cli

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/hanzikit/hanzikit/internal/detail"
	"github.com/hanzikit/hanzikit/internal/dictionary"
	"github.com/hanzikit/hanzikit/internal/search"
)

func TestRenderResults(t *testing.T) {
	color.NoColor = true

	t.Run("no results", func(t *testing.T) {
		var buf bytes.Buffer
		RenderResults(&buf, nil)
		assert.Equal(t, "no matches\n", buf.String())
	})

	t.Run("numbered lines", func(t *testing.T) {
		var buf bytes.Buffer
		RenderResults(&buf, []search.Result{
			{Character: "安", Pronunciation: dictionary.Single("ān"), Brief: "平静"},
			{Character: "重", Pronunciation: dictionary.Multiple([]string{"zhòng", "chóng"}), Brief: "分量大"},
		})
		assert.Equal(t, " 1. 安  ān  平静\n 2. 重  zhòng/chóng  分量大\n", buf.String())
	})
}

func TestRenderDetail(t *testing.T) {
	color.NoColor = true

	t.Run("full card", func(t *testing.T) {
		var buf bytes.Buffer
		RenderDetail(&buf, &detail.HanziDetail{
			Character:     "汉",
			Pronunciation: dictionary.Single("hàn"),
			Meaning:       "汉族；汉语",
			Radical:       "氵",
			StrokeCount:   5,
			Examples:      []string{"汉语", "汉字"},
		})
		expected := "汉  hàn\n" +
			"radical: 氵\n" +
			"strokes: 5\n" +
			"meaning:\n汉族；汉语\n" +
			"examples: 汉语、汉字\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("degraded record omits empty fields", func(t *testing.T) {
		var buf bytes.Buffer
		RenderDetail(&buf, &detail.HanziDetail{
			Character:     "齉",
			Pronunciation: dictionary.Single("nàng"),
			Meaning:       dictionary.PlaceholderGloss,
		})
		expected := "齉  nàng\n" +
			"meaning:\n暂无释义\n"
		assert.Equal(t, expected, buf.String())
	})
}
