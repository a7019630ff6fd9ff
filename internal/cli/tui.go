package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	letterplay "github.com/sixtyjones/letter-playground"
	"github.com/sixtyjones/letter-playground/config"
	"github.com/sixtyjones/letter-playground/editor"
	"github.com/sixtyjones/letter-playground/export"
	"github.com/sixtyjones/letter-playground/internal/raster"
)

var (
	statusStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62")).Padding(0, 1)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	anchorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	controlStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("216"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	hoverStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
)

func newEditCmd() *cobra.Command {
	var fontPath, parser, configPath string

	cmd := &cobra.Command{
		Use:   "edit [char]",
		Short: "Edit a glyph interactively in the terminal",
		Long:  `Edit opens a terminal canvas on a glyph outline. Drag points with the mouse, adjust slant and roundness with the keyboard, and save the result as SVG.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			char := 'A'
			if len(args) == 1 {
				r, err := parseChar(args[0])
				if err != nil {
					return err
				}
				char = r
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if fontPath == "" {
				fontPath = cfg.FontPath
			}
			if parser == "" {
				parser = cfg.Parser
			}

			src, err := loadSource(fontPath, parser)
			if err != nil {
				return err
			}
			m, err := buildModel(src, char, cfg.Editor.GlyphSize, letterplay.DefaultParams())
			if err != nil {
				loggerFromContext(cmd.Context()).Warn("using fallback glyph", "char", string(char), "err", err)
			}

			em := newEditModel(m, cfg)
			p := tea.NewProgram(em, tea.WithAltScreen(), tea.WithMouseAllMotion())
			_, err = p.Run()
			return err
		},
	}
	cmd.Flags().StringVarP(&fontPath, "font", "f", "", "font file to load (default: embedded Go Regular)")
	cmd.Flags().StringVar(&parser, "parser", "", "font parsing backend: ximage (default), gotext")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML settings file")
	return cmd
}

// editModel is the bubbletea model for the interactive editor. Terminal
// cells map to 1x2 pixel blocks, so the drawing surface has twice as
// many pixel rows as canvas rows.
type editModel struct {
	model *letterplay.Model
	ctrl  *editor.Controller

	width  int // terminal columns
	height int // terminal rows
	seed   int64
	status string
}

func newEditModel(m *letterplay.Model, cfg config.Config) *editModel {
	ctrl := editor.NewController(m)
	ctrl.SnapToGrid = cfg.Editor.SnapToGrid
	ctrl.CollinearLock = cfg.Editor.CollinearLock
	// Leave room around the glyph and start at a zoom where the default
	// glyph size fits a typical terminal.
	ctrl.Camera().Offset = letterplay.Pt(10, 10)
	ctrl.Camera().SetZoom(0.5)
	return &editModel{model: m, ctrl: ctrl, seed: 1}
}

func (m *editModel) Init() tea.Cmd {
	return nil
}

// canvasRows returns the number of terminal rows available for drawing,
// keeping one row each for the status and help lines.
func (m *editModel) canvasRows() int {
	rows := m.height - 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// pointerEvent converts a terminal mouse event to editor screen
// coordinates. Cell rows cover two pixel rows; the pointer lands on the
// upper one.
func pointerEvent(msg tea.MouseMsg, button editor.Button) editor.PointerEvent {
	return editor.PointerEvent{
		Pos:    letterplay.Pt(float64(msg.X), float64(msg.Y*2)),
		Button: button,
		Multi:  msg.Shift,
	}
}

func (m *editModel) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.ctrl.Camera().SetZoom(m.ctrl.Camera().Zoom * 1.1)
		return
	case tea.MouseButtonWheelDown:
		m.ctrl.Camera().SetZoom(m.ctrl.Camera().Zoom / 1.1)
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.ctrl.Press(pointerEvent(msg, editor.ButtonPrimary))
		}
	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft {
			m.ctrl.Drag(pointerEvent(msg, editor.ButtonPrimary))
		} else {
			m.ctrl.HoverAt(pointerEvent(msg, editor.ButtonNone))
		}
	case tea.MouseActionRelease:
		m.ctrl.Release(pointerEvent(msg, editor.ButtonNone))
	}
}

func (m *editModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "u":
		if m.model.Undo() {
			m.status = "undo"
		}
	case "U", "ctrl+r":
		if m.model.Redo() {
			m.status = "redo"
		}
	case "r":
		m.model.Randomize(m.seed)
		m.status = fmt.Sprintf("randomized (seed %d)", m.seed)
		m.seed++
	case "g":
		m.ctrl.SnapToGrid = !m.ctrl.SnapToGrid
		m.status = onOff("snap", m.ctrl.SnapToGrid)
	case "c":
		m.ctrl.CollinearLock = !m.ctrl.CollinearLock
		m.status = onOff("collinear lock", m.ctrl.CollinearLock)
	case "left":
		m.ctrl.Camera().Pan(letterplay.Pt(4, 0))
	case "right":
		m.ctrl.Camera().Pan(letterplay.Pt(-4, 0))
	case "up":
		m.ctrl.Camera().Pan(letterplay.Pt(0, 4))
	case "down":
		m.ctrl.Camera().Pan(letterplay.Pt(0, -4))
	case "+", "=":
		m.ctrl.Camera().SetZoom(m.ctrl.Camera().Zoom * 1.25)
	case "-":
		m.ctrl.Camera().SetZoom(m.ctrl.Camera().Zoom / 1.25)
	case "[":
		m.adjustParams(func(p *letterplay.TransformParams) { p.Slant = clamp(p.Slant-0.1, -1, 1) })
	case "]":
		m.adjustParams(func(p *letterplay.TransformParams) { p.Slant = clamp(p.Slant+0.1, -1, 1) })
	case ",":
		m.adjustParams(func(p *letterplay.TransformParams) { p.Roundness = clamp(p.Roundness-0.1, 0, 1) })
	case ".":
		m.adjustParams(func(p *letterplay.TransformParams) { p.Roundness = clamp(p.Roundness+0.1, 0, 1) })
	case "s":
		m.saveSVG()
	}
	return m, nil
}

func (m *editModel) adjustParams(f func(*letterplay.TransformParams)) {
	p := m.model.Params()
	f(&p)
	m.model.SetParams(p)
	m.status = fmt.Sprintf("slant %.1f roundness %.1f", p.Slant, p.Roundness)
}

func (m *editModel) saveSVG() {
	name := fmt.Sprintf("%c.svg", m.model.Char())
	f, err := os.Create(name)
	if err != nil {
		m.status = "save failed: " + err.Error()
		return
	}
	export.WriteSVG(f, m.model.Path(), m.model.Params())
	if err := f.Close(); err != nil {
		m.status = "save failed: " + err.Error()
		return
	}
	m.status = "saved " + name
}

func (m *editModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading"
	}
	canvas := m.renderCanvas()
	status := statusStyle.Render(m.statusLine())
	help := helpStyle.Render("drag points · shift multi-select · u/U undo/redo · r randomize · g snap · c lock · [ ] slant · , . roundness · s save · q quit")
	return canvas + "\n" + status + "\n" + help
}

func (m *editModel) statusLine() string {
	p := m.model.Params()
	line := fmt.Sprintf("%c  slant %.1f  round %.1f  zoom %.2f", m.model.Char(), p.Slant, p.Roundness, m.ctrl.Camera().Zoom)
	if n := len(m.ctrl.Selection()); n > 0 {
		line += fmt.Sprintf("  sel %d", n)
	}
	if m.ctrl.SnapToGrid {
		line += "  snap"
	}
	if m.ctrl.CollinearLock {
		line += "  lock"
	}
	if m.status != "" {
		line += "  · " + m.status
	}
	return line
}

// renderCanvas rasterizes the glyph through the camera and draws it with
// half-block characters, two pixel rows per terminal row. Path points
// are overlaid as markers on top of the raster.
func (m *editModel) renderCanvas() string {
	rows := m.canvasRows()
	pw, ph := m.width, rows*2
	pm := raster.NewPixmap(pw, ph)

	device := m.model.Path().Transform(m.ctrl.Camera().Matrix())
	rings := raster.Flatten(device)
	raster.Fill(pm, rings, raster.FillRuleEvenOdd, raster.RGBA{R: 1, G: 1, B: 1, A: 1})

	grid := make([][]string, rows)
	for y := 0; y < rows; y++ {
		grid[y] = make([]string, pw)
		for x := 0; x < pw; x++ {
			top := pm.GetPixel(x, y*2).A > 0.5
			bottom := pm.GetPixel(x, y*2+1).A > 0.5
			switch {
			case top && bottom:
				grid[y][x] = "█"
			case top:
				grid[y][x] = "▀"
			case bottom:
				grid[y][x] = "▄"
			default:
				grid[y][x] = " "
			}
		}
	}
	m.overlayPoints(grid, rows)

	var out string
	for y := 0; y < rows; y++ {
		for x := 0; x < pw; x++ {
			out += grid[y][x]
		}
		if y < rows-1 {
			out += "\n"
		}
	}
	return out
}

// overlayPoints draws a marker cell for every editable path point:
// "o" for anchors, "+" for control points, highlighted when hovered or
// selected.
func (m *editModel) overlayPoints(grid [][]string, rows int) {
	hover, hasHover := m.ctrl.Hover()
	m.model.Path().EachPoint(func(ref letterplay.PointRef, pt letterplay.Point) {
		screen := m.ctrl.Camera().WorldToScreen(pt)
		x, y := int(screen.X), int(screen.Y)/2
		if x < 0 || y < 0 || y >= rows || x >= len(grid[y]) {
			return
		}
		marker, style := "+", controlStyle
		if ref.Role == letterplay.RoleAnchor {
			marker, style = "o", anchorStyle
		}
		if hasHover && ref == hover {
			style = hoverStyle
		}
		if m.ctrl.IsSelected(ref) {
			style = selectedStyle
		}
		grid[y][x] = style.Render(marker)
	})
}

func onOff(name string, v bool) string {
	if v {
		return name + " on"
	}
	return name + " off"
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
