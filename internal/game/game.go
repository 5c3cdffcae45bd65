package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// pxPerUnit is the render scale: world units to pixels on the map buffer.
const pxPerUnit = 2.0

// borderWidth is the pixel gap between the window edge and the viewport.
const borderWidth = 16

// statusTicks is how long transient status messages stay on screen.
const statusTicks = 180

// Game is the interactive ebiten shell around a World and an Explorer.
// All generation and navigation logic lives in the world/explorer types;
// this layer only polls input, steps the tick, and draws.
type Game struct {
	width  int
	height int
	offX   int
	offY   int
	vpW    int // viewport pixels
	vpH    int

	world    *World
	explorer *Explorer

	terrainImg *ebiten.Image // height-shaded ground, rebuilt per world
	worldBuf   *ebiten.Image // full map composite, camera blit per frame

	camZoom  float64
	paused   bool
	showHUD  bool
	prevKeys map[ebiten.Key]bool

	status     string
	statusLeft int
	victory    bool
}

// NewWithSeed creates a Game with a reproducible world. Seed 0 derives
// one from the wall clock, matching NewWorld.
func NewWithSeed(seed int64) *Game {
	vpW, vpH := 1280, 800
	g := &Game{
		width:    borderWidth + vpW + borderWidth,
		height:   borderWidth + vpH + borderWidth,
		offX:     borderWidth,
		offY:     borderWidth,
		vpW:      vpW,
		vpH:      vpH,
		camZoom:  2.0,
		showHUD:  true,
		prevKeys: make(map[ebiten.Key]bool),
	}
	g.rebuildWorld(seed)
	return g
}

// rebuildWorld replaces the session world and resets the explorer.
func (g *Game) rebuildWorld(seed int64) {
	g.world = NewWorld(seed, defaultMazeSize)
	g.explorer = NewExplorer(g.world, villageX, villageZ)
	g.explorer.OnGoalReached = func() { g.victory = true }
	g.victory = false

	mapPx := int(2 * worldHalf * pxPerUnit)
	if g.worldBuf == nil {
		g.worldBuf = ebiten.NewImage(mapPx, mapPx)
	}
	g.terrainImg = buildTerrainImage(g.world, mapPx)
}

func (g *Game) Update() error {
	g.handleInput()
	if g.paused {
		return nil
	}

	in := MoveInput{}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.Forward += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.Forward -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.Turn -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.Turn += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		in.Strafe -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		in.Strafe += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		in.Ascend += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) {
		in.Ascend -= 1
	}
	g.explorer.Update(in)

	if g.statusLeft > 0 {
		g.statusLeft--
	}
	return nil
}

// handleInput processes edge-triggered keys.
func (g *Game) handleInput() {
	pressedNow := func(k ebiten.Key) bool {
		down := ebiten.IsKeyPressed(k)
		fired := down && !g.prevKeys[k]
		g.prevKeys[k] = down
		return fired
	}

	if pressedNow(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if pressedNow(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if pressedNow(ebiten.KeyF) && !g.explorer.InsideMaze {
		if g.explorer.Mode == ModeWalk {
			g.explorer.Mode = ModeFly
		} else {
			g.explorer.Mode = ModeWalk
		}
	}
	if pressedNow(ebiten.KeyEnter) && g.explorer.NearEntrance {
		g.explorer.EnterMaze()
	}
	if pressedNow(ebiten.KeyX) && g.explorer.InsideMaze {
		g.explorer.ExitMaze()
	}
	if pressedNow(ebiten.KeyR) {
		g.rebuildWorld(time.Now().UnixNano())
		g.setStatus("world regenerated")
	}
	if pressedNow(ebiten.KeyC) {
		if err := BuildWorldReport(g.world).CopyToClipboard(); err != nil {
			g.setStatus("clipboard copy failed: " + err.Error())
		} else {
			g.setStatus("world report copied to clipboard")
		}
	}

	// Zoom: mouse wheel or =/- keys.
	const zoomMin, zoomMax = 0.5, 6.0
	_, wy := ebiten.Wheel()
	if wy != 0 {
		g.camZoom *= math.Pow(1.12, wy)
	}
	if pressedNow(ebiten.KeyEqual) {
		g.camZoom *= 1.25
	}
	if pressedNow(ebiten.KeyMinus) {
		g.camZoom /= 1.25
	}
	if g.camZoom < zoomMin {
		g.camZoom = zoomMin
	}
	if g.camZoom > zoomMax {
		g.camZoom = zoomMax
	}
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.statusLeft = statusTicks
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 12, B: 14, A: 255})

	// Compose the full map at native scale, then blit with the camera
	// centred on the explorer.
	g.worldBuf.Clear()
	g.worldBuf.DrawImage(g.terrainImg, nil)
	g.drawDecor(g.worldBuf)
	g.drawMaze(g.worldBuf)
	g.drawLandmarks(g.worldBuf)
	g.drawExplorer(g.worldBuf)

	px, py := worldToPx(g.explorer.X, g.explorer.Z)
	var cam ebiten.GeoM
	cam.Translate(-float64(px), -float64(py))
	cam.Scale(g.camZoom, g.camZoom)
	cam.Translate(float64(g.offX)+float64(g.vpW)/2, float64(g.offY)+float64(g.vpH)/2)
	screen.DrawImage(g.worldBuf, &ebiten.DrawImageOptions{GeoM: cam})

	// Viewport frame.
	vector.StrokeRect(screen, float32(g.offX)-1, float32(g.offY)-1,
		float32(g.vpW)+2, float32(g.vpH)+2, 2.0, color.RGBA{R: 60, G: 75, B: 90, A: 255}, false)

	if g.showHUD {
		g.drawHUD(screen)
	}
	g.drawBanners(screen)
}

// worldToPx maps world (x, z) to map-buffer pixel coordinates.
func worldToPx(x, z float64) (float32, float32) {
	return float32((x + worldHalf) * pxPerUnit), float32((z + worldHalf) * pxPerUnit)
}

// buildTerrainImage samples the height field once per map pixel block and
// shades by elevation. Heights never change during a session, so the
// image is built once per world.
func buildTerrainImage(w *World, mapPx int) *ebiten.Image {
	const step = 2 // pixels per sample, keeps the build cheap
	img := ebiten.NewImage(mapPx, mapPx)
	for py := 0; py < mapPx; py += step {
		for px := 0; px < mapPx; px += step {
			x := float64(px)/pxPerUnit - worldHalf
			z := float64(py)/pxPerUnit - worldHalf
			h := w.Height(x, z)
			vector.FillRect(img, float32(px), float32(py), step, step, heightColor(h), false)
		}
	}
	return img
}

// heightColor maps an elevation to a terrain shade: water blues below the
// water level, grass greens through the mid band, rock greys up high.
func heightColor(h float64) color.RGBA {
	switch {
	case h <= lakeWaterLevel:
		d := math.Min(-h/3.0, 1)
		return color.RGBA{R: 24, G: uint8(46 - 14*d), B: uint8(84 - 24*d), A: 255}
	case h < 4:
		t := h / 4
		return color.RGBA{R: uint8(30 + 16*t), G: uint8(66 + 24*t), B: uint8(34 + 8*t), A: 255}
	case h < 8:
		t := (h - 4) / 4
		return color.RGBA{R: uint8(46 + 30*t), G: uint8(90 - 10*t), B: uint8(42 + 14*t), A: 255}
	default:
		t := math.Min((h-8)/6, 1)
		return color.RGBA{R: uint8(76 + 40*t), G: uint8(80 + 36*t), B: uint8(56 + 44*t), A: 255}
	}
}

func (g *Game) drawDecor(dst *ebiten.Image) {
	for _, d := range g.world.Decor {
		px, py := worldToPx(d.X, d.Z)
		s := float32(d.Scale)
		switch d.Kind {
		case DecorGrass:
			vector.FillRect(dst, px, py, 1.5, 1.5, color.RGBA{R: 52, G: 102, B: 48, A: 255}, false)
		case DecorRock:
			vector.FillCircle(dst, px, py, 1.5*s, color.RGBA{R: 96, G: 94, B: 88, A: 255}, false)
		case DecorBush:
			vector.FillCircle(dst, px, py, 2*s, color.RGBA{R: 34, G: 74, B: 34, A: 255}, false)
		case DecorTree:
			vector.FillCircle(dst, px, py, 3.5*s, color.RGBA{R: 26, G: 58, B: 28, A: 200}, false)
			vector.FillCircle(dst, px, py, 1, color.RGBA{R: 62, G: 46, B: 30, A: 255}, false)
		}
	}
}

func (g *Game) drawMaze(dst *ebiten.Image) {
	p := &g.world.Placement
	half := float32(p.CellSize / 2 * pxPerUnit)
	wallFill := color.RGBA{R: 58, G: 96, B: 52, A: 255} // hedge green
	wallDark := color.RGBA{R: 38, G: 64, B: 34, A: 255}
	for row := 0; row < g.world.Maze.Height; row++ {
		for col := 0; col < g.world.Maze.Width; col++ {
			if !g.world.Maze.IsWall(col, row) {
				continue
			}
			cx, cz := p.CellCenter(col, row)
			px, py := worldToPx(cx, cz)
			vector.FillRect(dst, px-half, py-half, 2*half, 2*half, wallFill, false)
			vector.StrokeRect(dst, px-half, py-half, 2*half, 2*half, 0.5, wallDark, false)
		}
	}

	// Goal marker.
	gx, gz := g.world.GoalPos()
	px, py := worldToPx(gx, gz)
	vector.FillCircle(dst, px, py, half*0.6, color.RGBA{R: 220, G: 180, B: 60, A: 255}, false)

	// Entrance marker.
	ex, ez := g.world.Entrance()
	px, py = worldToPx(ex, ez)
	vector.StrokeCircle(dst, px, py, half*0.8, 1.0, color.RGBA{R: 220, G: 220, B: 220, A: 200}, false)
}

func (g *Game) drawLandmarks(dst *ebiten.Image) {
	face := basicfont.Face7x13
	for _, lm := range g.world.Landmarks {
		px, py := worldToPx(lm.X, lm.Z)
		vector.StrokeCircle(dst, px, py, 4, 1.0, color.RGBA{R: 200, G: 200, B: 160, A: 180}, false)
		text.Draw(dst, lm.Name, face, int(px)+6, int(py)+4, color.RGBA{R: 210, G: 210, B: 180, A: 255})
	}
}

func (g *Game) drawExplorer(dst *ebiten.Image) {
	px, py := worldToPx(g.explorer.X, g.explorer.Z)
	bodyCol := color.RGBA{R: 230, G: 90, B: 60, A: 255}
	if g.explorer.Mode == ModeFly {
		bodyCol = color.RGBA{R: 90, G: 160, B: 230, A: 255}
	}
	vector.FillCircle(dst, px, py, 3, bodyCol, false)
	// Facing tick.
	sin, cos := math.Sincos(g.explorer.Heading)
	vector.StrokeLine(dst, px, py,
		px+float32(sin*6*pxPerUnit), py+float32(cos*6*pxPerUnit),
		1.0, color.RGBA{R: 255, G: 240, B: 220, A: 255}, false)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	face := basicfont.Face7x13
	e := g.explorer
	mode := "walk"
	if e.Mode == ModeFly {
		mode = "fly"
	}
	if e.InsideMaze {
		mode = "maze"
	}
	lines := []string{
		fmt.Sprintf("pos (%.1f, %.1f, %.1f)  mode=%s  zoom=%.1fx  seed=%d",
			e.X, e.Y, e.Z, mode, g.camZoom, g.world.Seed),
		"W/S move  A/D turn  Q/E strafe  F fly  Space/Shift climb",
		"ENTER enter maze  X leave maze  R new world  C copy report  P pause  H hide",
	}
	y := g.offY + g.vpH - 14*len(lines)
	for _, ln := range lines {
		text.Draw(screen, ln, face, g.offX+8, y, color.RGBA{R: 200, G: 210, B: 200, A: 255})
		y += 14
	}
	if g.statusLeft > 0 {
		text.Draw(screen, g.status, face, g.offX+8, g.offY+16, color.RGBA{R: 240, G: 220, B: 140, A: 255})
	}
}

// drawBanners shows the entrance prompt and the victory banner, driven by
// the explorer's boundary events.
func (g *Game) drawBanners(screen *ebiten.Image) {
	face := basicfont.Face7x13
	cx := g.offX + g.vpW/2
	if g.victory {
		msg := "You reached the heart of the maze!  (X to leave)"
		drawBanner(screen, face, msg, cx, g.offY+g.vpH/4,
			color.RGBA{R: 220, G: 180, B: 60, A: 255})
		return
	}
	if g.explorer.NearEntrance {
		msg := "Press ENTER to enter the hedge maze"
		drawBanner(screen, face, msg, cx, g.offY+g.vpH/4,
			color.RGBA{R: 220, G: 220, B: 220, A: 255})
	}
}

func drawBanner(screen *ebiten.Image, face *basicfont.Face, msg string, cx, cy int, col color.RGBA) {
	w := len(msg) * face.Advance
	x := cx - w/2
	vector.FillRect(screen, float32(x-10), float32(cy-16), float32(w+20), 26,
		color.RGBA{R: 10, G: 12, B: 14, A: 220}, false)
	vector.StrokeRect(screen, float32(x-10), float32(cy-16), float32(w+20), 26,
		1.0, col, false)
	text.Draw(screen, msg, face, x, cy, col)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
