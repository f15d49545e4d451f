// Package game wires the puzzle model and its canvas into an ebiten.Game:
// it routes pointer events into board coordinates, runs the toolbar, and
// blits the painted frame every tick.
package game

import (
	"errors"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/loganfranken/Circle-Puzzle/internal/config"
	"github.com/loganfranken/Circle-Puzzle/internal/puzzle"
	"github.com/loganfranken/Circle-Puzzle/internal/render"
	"github.com/loganfranken/Circle-Puzzle/internal/sound"
)

// Game is the ebiten glue around the puzzle core.
type Game struct {
	cfg *config.Config
	log *slog.Logger

	canvas *render.Canvas
	puz    *puzzle.Puzzle
	snd    *sound.Player

	// input edge detection
	prevKey     map[ebiten.Key]bool
	prevCursorX int
	prevCursorY int

	// button state
	buttonHovered bool
	buttonPressed bool

	lastErr error
}

// New builds a game showing the default generated pattern, scrambled.
func New(cfg *config.Config, logger *slog.Logger) (*Game, error) {
	g := &Game{
		cfg:     cfg,
		log:     logger,
		prevKey: map[ebiten.Key]bool{},
	}

	bw, bh := cfg.BoardSize()
	side := bw
	if bh < side {
		side = bh
	}
	if err := g.setImage(ebiten.NewImageFromImage(render.Pattern(side))); err != nil {
		return nil, err
	}

	if cfg.Sound {
		snd, err := sound.NewPlayer()
		if err != nil {
			logger.Warn("audio unavailable, continuing silent", "err", err)
		}
		g.snd = snd
	}
	return g, nil
}

// setImage rebuilds the canvas and a freshly scrambled puzzle around img.
func (g *Game) setImage(img *ebiten.Image) error {
	bw, bh := g.cfg.BoardSize()
	canvas := render.NewCanvas(bw, bh, img)
	puz, err := puzzle.New(canvas, img, g.cfg.RingCount, g.cfg.RotationSpeed)
	if err != nil {
		return err
	}
	g.canvas = canvas
	g.puz = puz
	return nil
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyR) {
		g.puz.Scramble()
		g.log.Info("puzzle scrambled")
	}

	mouseX, mouseY := ebiten.CursorPosition()

	// Toolbar button
	g.buttonHovered = mouseX >= config.ButtonX && mouseX <= config.ButtonX+config.ButtonWidth &&
		mouseY >= config.ButtonY && mouseY <= config.ButtonY+config.ButtonHeight
	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			if err := g.openImageDialog(); err != nil {
				g.lastErr = err
			}
		}
		g.buttonPressed = false
	}

	// Board gestures. Window coordinates are mapped to board-local ones
	// before any hit-test or drag computation.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !g.buttonHovered {
		if x, y, onBoard := boardLocal(mouseX, mouseY); onBoard {
			g.puz.PointerDown(x, y)
			if g.puz.Dragging() {
				g.snd.Grab()
			}
		}
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) &&
		(mouseX != g.prevCursorX || mouseY != g.prevCursorY) {
		// A drag may wander off the board; the mapped coordinates stay valid.
		x, y, _ := boardLocal(mouseX, mouseY)
		g.puz.PointerMove(x, y)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.puz.Dragging() {
			g.snd.Release()
		}
		g.puz.PointerUp()
	}

	g.prevCursorX, g.prevCursorY = mouseX, mouseY
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 28, G: 32, B: 42, A: 255})
	g.drawToolbar(screen)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, config.ToolbarHeight)
	screen.DrawImage(g.canvas.Frame(), op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowWidth, g.cfg.WindowHeight
}

func (g *Game) drawToolbar(screen *ebiten.Image) {
	// Button background
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}
	vector.DrawFilledRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, bgColor, false)
	vector.StrokeRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	text := "Open Image"
	textWidth := len(text) * 8 // Approximate character width
	textX := config.ButtonX + (config.ButtonWidth-textWidth)/2
	textY := config.ButtonY + (config.ButtonHeight+8)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)

	status := "Drag a ring to rotate it | R: new scramble | Esc/Q: quit"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, config.ButtonX+config.ButtonWidth+16, config.ButtonY+12)
}

func (g *Game) openImageDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Image"),
		zenity.FileFilters{{
			Name:     "Images",
			Patterns: []string{"*.png", "*.jpg", "*.jpeg", "*.gif", "*.webp"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	bw, bh := g.cfg.BoardSize()
	img, err := render.Load(filename, bw, bh)
	if err != nil {
		return err
	}
	if err := g.setImage(ebiten.NewImageFromImage(img)); err != nil {
		return err
	}
	g.lastErr = nil
	g.log.Info("image loaded", "path", filename)
	return nil
}

// boardLocal converts window coordinates to board-local coordinates by
// subtracting the board's offset below the toolbar. onBoard is false for
// points in the toolbar area.
func boardLocal(x, y int) (bx, by float64, onBoard bool) {
	ly := y - config.ToolbarHeight
	return float64(x), float64(ly), ly >= 0
}
