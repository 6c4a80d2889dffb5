package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Ellipsis 截断文本末尾追加的省略号
const Ellipsis = "…"

// MeasureFunc 返回文本的绘制宽度（像素）
type MeasureFunc func(s string) float64

// FaceMeasure 返回按字体测量宽度的 MeasureFunc
func FaceMeasure(face *text.GoTextFace) MeasureFunc {
	return func(s string) float64 {
		if s == "" || face == nil {
			return 0
		}
		width, _ := text.Measure(s, face, 0)
		return width
	}
}

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - maxWidth: 最大宽度（像素）
//   - measure: 宽度测量函数
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 优先在空格处断行，连续空白视为一个空格
//   - 单词本身超过最大宽度时按字符强制断行
//   - 原文中的换行符保留为段落分隔
func WrapText(textStr string, maxWidth float64, measure MeasureFunc) []string {
	if textStr == "" || maxWidth <= 0 || measure == nil {
		return []string{textStr}
	}

	var lines []string
	for _, paragraph := range strings.Split(textStr, "\n") {
		lines = append(lines, wrapParagraph(paragraph, maxWidth, measure)...)
	}
	return lines
}

func wrapParagraph(paragraph string, maxWidth float64, measure MeasureFunc) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		// 单词太长，按字符断开，剩余部分作为当前行继续
		for measure(word) > maxWidth {
			head := fitPrefix(word, maxWidth, measure)
			lines = append(lines, head)
			word = word[len(head):]
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// fitPrefix 返回不超过 maxWidth 的最长前缀，至少包含一个字符
func fitPrefix(s string, maxWidth float64, measure MeasureFunc) string {
	end := 0
	for i := range s {
		if i > 0 && measure(s[:i]) > maxWidth {
			break
		}
		end = i
	}
	if measure(s) <= maxWidth {
		return s
	}
	if end == 0 {
		_, size := utf8.DecodeRuneInString(s)
		return s[:size]
	}
	return s[:end]
}

// TruncateLines 最多保留 maxLines 行，被截断时最后一行以省略号结尾
func TruncateLines(lines []string, maxLines int, maxWidth float64, measure MeasureFunc) []string {
	if maxLines <= 0 {
		return nil
	}
	if len(lines) <= maxLines {
		return lines
	}
	kept := append([]string(nil), lines[:maxLines]...)
	last := strings.TrimRight(kept[maxLines-1], " ")
	for last != "" && measure(last+Ellipsis) > maxWidth {
		_, size := utf8.DecodeLastRuneInString(last)
		last = last[:len(last)-size]
	}
	kept[maxLines-1] = last + Ellipsis
	return kept
}
