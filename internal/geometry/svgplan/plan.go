package svgplan

import (
	"fmt"
	"strings"

	"house-planner/internal/geometry/layout"
)

// ============================================================
// Floor Plan Renderer
// ============================================================

const (
	canvasWidth  = 800
	canvasHeight = 600
)

// Render собирает SVG план этажа для категории bhk: фон, прямоугольник и
// подпись по центру на каждую комнату 2D шаблона. Детерминирован.
func Render(bhk int) string {
	rooms := layout.PlanForBHK(bhk)

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`, canvasWidth, canvasHeight))
	builder.WriteString(`<rect width="100%" height="100%" fill="#f5f5f5"/>`)

	for _, room := range rooms {
		builder.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="white" stroke="#333" stroke-width="2"/>`,
			room.X, room.Y, room.W, room.H))

		textX := room.X + room.W/2
		textY := room.Y + room.H/2
		builder.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" font-size="14" fill="#333">%s</text>`,
			textX, textY, room.Name))
	}

	builder.WriteString(`</svg>`)
	return builder.String()
}
