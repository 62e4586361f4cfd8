package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/roomplan/version"
)

const (
	panelWidth  = float32(230)
	cardHeight  = float32(52)
	cardSpacing = float32(8)
	panelMargin = float32(12)
)

// layoutCards computes the catalog card bounds for the current catalog
func (app *App) layoutCards() {
	types := app.session.Catalog().All()
	app.UI.cards = app.UI.cards[:0]
	y := panelMargin + 28
	for range types {
		app.UI.cards = append(app.UI.cards, rl.Rectangle{X: panelMargin, Y: y, Width: panelWidth - 2*panelMargin, Height: cardHeight})
		y += cardHeight + cardSpacing
	}
	app.UI.panel = rl.Rectangle{X: 0, Y: 0, Width: panelWidth, Height: y + panelMargin}
}

// drawUI draws the user interface
func (app *App) drawUI() {
	fontSize18 := float32(18)
	fontSize14 := float32(14)
	fontSize12 := float32(12)

	screenWidth := float32(rl.GetScreenWidth())
	screenHeight := float32(rl.GetScreenHeight())

	// === CATALOG ===
	rl.DrawRectangleRec(app.UI.panel, rl.NewColor(0, 0, 0, 160))
	rl.DrawTextEx(app.UI.font, "Fixtures", rl.Vector2{X: panelMargin, Y: panelMargin}, fontSize18, 1, rl.Yellow)

	tool := app.session.Tool()
	for i, t := range app.session.Catalog().All() {
		card := app.UI.cards[i]
		bg := rl.NewColor(30, 41, 59, 230)
		if i == app.Interaction.hoveredCard {
			bg = rl.NewColor(51, 65, 85, 230)
		}
		rl.DrawRectangleRec(card, bg)
		if t.ID == tool.ID {
			rl.DrawRectangleLinesEx(card, 2, rl.Yellow)
		}

		swatch := rl.Rectangle{X: card.X + 8, Y: card.Y + 8, Width: 14, Height: 14}
		rl.DrawRectangleRec(swatch, rlColor(t.Color))

		title := t.Name
		if i < len(toolKeys) {
			title = fmt.Sprintf("%d  %s", i+1, t.Name)
		}
		rl.DrawTextEx(app.UI.font, title, rl.Vector2{X: card.X + 30, Y: card.Y + 7}, fontSize14, 1, rl.White)
		rl.DrawTextEx(app.UI.font, t.Detail, rl.Vector2{X: card.X + 30, Y: card.Y + 28}, fontSize12, 1, rl.Gray)
	}

	// === ROOM ===
	r := app.session.Room()
	dims := fmt.Sprintf("Room %.1f x %.1f m, walls %.1f m", r.Width, r.Depth, r.WallHeight)
	dimsSize := rl.MeasureTextEx(app.UI.font, dims, fontSize14, 1)
	rl.DrawTextEx(app.UI.font, dims, rl.Vector2{X: screenWidth - dimsSize.X - 20, Y: 14}, fontSize14, 1, rl.White)
	count := fmt.Sprintf("%d fixtures", app.session.FixtureCount())
	countSize := rl.MeasureTextEx(app.UI.font, count, fontSize12, 1)
	rl.DrawTextEx(app.UI.font, count, rl.Vector2{X: screenWidth - countSize.X - 20, Y: 34}, fontSize12, 1, rl.LightGray)

	// === STATUS ===
	status := app.session.Status().Message
	rl.DrawRectangle(0, int32(screenHeight-32), int32(screenWidth), 32, rl.NewColor(0, 0, 0, 180))
	rl.DrawTextEx(app.UI.font, status, rl.Vector2{X: 12, Y: screenHeight - 24}, fontSize14, 1, rl.White)
	if app.UI.lastError != "" {
		errSize := rl.MeasureTextEx(app.UI.font, app.UI.lastError, fontSize12, 1)
		rl.DrawTextEx(app.UI.font, app.UI.lastError, rl.Vector2{X: screenWidth - errSize.X - 12, Y: screenHeight - 23}, fontSize12, 1, rl.Orange)
	}

	// === HELP ===
	if !app.UI.showHelp {
		hint := "H: help"
		rl.DrawTextEx(app.UI.font, hint, rl.Vector2{X: screenWidth - 70, Y: screenHeight - 56}, fontSize12, 1, rl.Gray)
		return
	}

	lines := []string{
		"Left click      place / select and drag",
		"Right drag      orbit",
		"Middle drag     pan (or Shift + left drag)",
		"Wheel           zoom",
		"Delete          remove selected",
		"1-9             pick a fixture",
		"[ ]  - =  , .   width, depth, height",
		"R               reload config",
		"Home T F        reset, top, front view",
		"W L             walls, labels",
		"roomplan " + version.GetFullVersion(),
	}
	lineHeight := float32(18)
	boxHeight := lineHeight*float32(len(lines)) + 20
	boxX := screenWidth - 330
	boxY := screenHeight - 40 - boxHeight
	rl.DrawRectangle(int32(boxX), int32(boxY), 310, int32(boxHeight), rl.NewColor(0, 0, 0, 200))
	rl.DrawRectangleLines(int32(boxX), int32(boxY), 310, int32(boxHeight), rl.Yellow)
	for i, line := range lines {
		rl.DrawTextEx(app.UI.font, line, rl.Vector2{X: boxX + 10, Y: boxY + 10 + float32(i)*lineHeight}, fontSize12, 1, rl.White)
	}
}
