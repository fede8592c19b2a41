package cli

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridsort/pkg/config"
	"github.com/matzehuels/gridsort/pkg/drag"
	"github.com/matzehuels/gridsort/pkg/grid"
	"github.com/matzehuels/gridsort/pkg/sortable"
)

// frameInterval is the animation tick while anything is moving.
const frameInterval = 16 * time.Millisecond

// Rows of chrome above and below the grid canvas.
const (
	headerRows = 1
	footerRows = 1
)

// Canvas style slots.
const (
	paintTile = iota
	paintTileLabel
	paintFocus
	paintFocusLabel
	paintLifted
	paintLiftedLabel
	paintOrder
)

var canvasStyles = []lipgloss.Style{
	paintTile:        lipgloss.NewStyle().Foreground(colorDim),
	paintTileLabel:   lipgloss.NewStyle().Foreground(colorWhite),
	paintFocus:       lipgloss.NewStyle().Foreground(colorCyan),
	paintFocusLabel:  lipgloss.NewStyle().Foreground(colorCyan).Bold(true),
	paintLifted:      lipgloss.NewStyle().Foreground(colorYellow),
	paintLiftedLabel: lipgloss.NewStyle().Foreground(colorYellow).Bold(true),
	paintOrder:       lipgloss.NewStyle().Foreground(colorGray),
}

type tickMsg time.Time

// =============================================================================
// Key bindings
// =============================================================================

type gridKeys struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Grab  key.Binding
	Drop  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func newGridKeys() gridKeys {
	return gridKeys{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Grab:  key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "grab/drop")),
		Drop:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "drop")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k gridKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Grab, k.Left, k.Right, k.Help, k.Quit}
}

func (k gridKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Grab, k.Drop},
		{k.Help, k.Quit},
	}
}

// =============================================================================
// Tile metrics
// =============================================================================

// tileMetrics maps layout units to terminal cells. One slot is width x
// height cells, so a cell is xUnit by yUnit layout units.
type tileMetrics struct {
	width, height int
	xUnit, yUnit  float64
}

func newTileMetrics(cfg *config.Config) tileMetrics {
	return tileMetrics{
		width:  cfg.Terminal.TileWidth,
		height: cfg.Terminal.TileHeight,
		xUnit:  cfg.ItemSize / float64(cfg.Terminal.TileWidth),
		yUnit:  cfg.ItemSize / float64(cfg.Terminal.TileHeight),
	}
}

// =============================================================================
// gridModel - interactive sortable grid
// =============================================================================

type gridModel struct {
	ctr   *sortable.Container
	log   *log.Logger
	geom  grid.Geometry
	tiles tileMetrics
	keys  gridKeys
	help  help.Model

	width, height int

	gesture *sortable.Gesture
	mouse   bool       // gesture is driven by the mouse
	origin  grid.Point // item offset when the gesture began

	// Mouse drags: the cell where the button went down, the last cell seen
	// and the scroll offset at press time.
	pressX, pressY int
	lastX, lastY   int
	pressScroll    float64

	cursor   int // keyboard focus slot
	ticking  bool
	quitting bool
}

func newGridModel(ctr *sortable.Container, cfg *config.Config, logger *log.Logger) *gridModel {
	return &gridModel{
		ctr:   ctr,
		log:   logger,
		geom:  cfg.Geometry(),
		tiles: newTileMetrics(cfg),
		keys:  newGridKeys(),
		help:  help.New(),
	}
}

func (m *gridModel) Init() tea.Cmd {
	return nil
}

func (m *gridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		if m.handleKey(msg) {
			return m, tea.Quit
		}
	case tickMsg:
		m.ticking = false
		m.ctr.Tick(frameInterval)
	}
	return m, m.scheduleTick()
}

// scheduleTick requests the next frame while anything animates. At most
// one tick is in flight.
func (m *gridModel) scheduleTick() tea.Cmd {
	if m.ticking || !m.ctr.Animating() {
		return nil
	}
	m.ticking = true
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *gridModel) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w
	vp := sortable.Viewport{Height: float64(m.canvasRows()) * m.tiles.yUnit}
	if err := m.ctr.SetViewport(vp); err != nil {
		m.log.Warn("viewport unchanged", "width", w, "height", h, "err", err)
	}
}

// canvasRows is the number of terminal rows available to the grid.
func (m *gridModel) canvasRows() int {
	if m.height == 0 {
		return m.geom.Rows(m.ctr.Len()) * m.tiles.height
	}
	return max(1, m.height-headerRows-footerRows)
}

// toContent converts a terminal cell to content coordinates at the cell
// center.
func (m *gridModel) toContent(x, y int) (grid.Point, bool) {
	row := y - headerRows
	if row < 0 || row >= m.canvasRows() || x < 0 {
		return grid.Point{}, false
	}
	return grid.Point{
		X: (float64(x) + 0.5) * m.tiles.xUnit,
		Y: (float64(row)+0.5)*m.tiles.yUnit + m.ctr.ScrollY(),
	}, true
}

func (m *gridModel) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scrollBy(-m.tiles.yUnit)
	case msg.Button == tea.MouseButtonWheelDown:
		m.scrollBy(m.tiles.yUnit)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if m.gesture != nil {
			return
		}
		p, ok := m.toContent(msg.X, msg.Y)
		if !ok {
			return
		}
		g, ok := m.ctr.Press(p)
		if !ok {
			return
		}
		m.begin(g, true)
		m.pressX, m.pressY = msg.X, msg.Y
		m.lastX, m.lastY = msg.X, msg.Y
		m.pressScroll = m.ctr.ScrollY()
	case msg.Action == tea.MouseActionMotion && m.mouse:
		m.dragTo(msg.X, msg.Y)
	case msg.Action == tea.MouseActionRelease && m.mouse:
		m.dragTo(msg.X, msg.Y)
		m.release()
	}
}

// dragTo reports the cumulative pointer translation since the press,
// including any scrolling done meanwhile.
func (m *gridModel) dragTo(x, y int) {
	dx := float64(x-m.pressX) * m.tiles.xUnit
	dy := float64(y-m.pressY)*m.tiles.yUnit + m.ctr.ScrollY() - m.pressScroll
	m.lastX, m.lastY = x, y
	m.gesture.Move(dx, dy)
	m.cursor = m.itemOrder(m.gesture.Item())
}

func (m *gridModel) handleKey(msg tea.KeyMsg) (quit bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.gesture != nil {
			m.release()
		}
		m.quitting = true
		return true
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Grab):
		switch {
		case m.gesture == nil:
			m.grabCursor()
		case !m.mouse:
			m.release()
		}
	case key.Matches(msg, m.keys.Drop):
		if m.gesture != nil && !m.mouse {
			m.release()
		}
	case key.Matches(msg, m.keys.Left):
		m.nudge(-1)
	case key.Matches(msg, m.keys.Right):
		m.nudge(1)
	case key.Matches(msg, m.keys.Up):
		m.nudge(-m.geom.Columns)
	case key.Matches(msg, m.keys.Down):
		m.nudge(m.geom.Columns)
	}
	return false
}

func (m *gridModel) grabCursor() {
	id, ok := m.ctr.Map().IDAt(m.cursor)
	if !ok {
		return
	}
	g, err := m.ctr.Grab(id)
	if err != nil {
		return
	}
	m.begin(g, false)
}

// nudge moves the focus by delta slots, carrying the held item with it.
func (m *gridModel) nudge(delta int) {
	if m.mouse {
		return
	}
	target := m.cursor + delta
	if target < 0 || target >= m.ctr.Len() {
		return
	}
	if m.gesture != nil {
		dest := m.geom.Position(target)
		m.gesture.Move(dest.X-m.origin.X, dest.Y-m.origin.Y)
		m.cursor = m.itemOrder(m.gesture.Item())
	} else {
		m.cursor = target
	}
	m.follow()
}

// follow scrolls just enough to keep the focused row visible.
func (m *gridModel) follow() {
	top := float64(m.cursor/m.geom.Columns) * m.geom.Size
	bottom := top + m.geom.Size
	usable := m.ctr.Options().Viewport.Usable()
	switch {
	case top < m.ctr.ScrollY():
		m.ctr.SetScroll(top)
	case usable > 0 && bottom > m.ctr.ScrollY()+usable:
		m.ctr.SetScroll(bottom - usable)
	}
}

func (m *gridModel) scrollBy(dy float64) {
	m.ctr.SetScroll(m.ctr.ScrollY() + dy)
	if m.mouse {
		m.dragTo(m.lastX, m.lastY)
	}
}

func (m *gridModel) begin(g *sortable.Gesture, mouse bool) {
	ctrl, _ := m.ctr.Item(g.Item())
	m.gesture = g
	m.mouse = mouse
	m.origin = ctrl.Offset()
	m.cursor = ctrl.Order()
}

func (m *gridModel) release() {
	m.gesture.Release()
	m.gesture = nil
	m.mouse = false
}

func (m *gridModel) itemOrder(id string) int {
	ctrl, ok := m.ctr.Item(id)
	if !ok {
		return m.cursor
	}
	return ctrl.Order()
}

// Order returns the current identity order.
func (m *gridModel) Order() []string {
	return m.ctr.Order()
}

// =============================================================================
// View
// =============================================================================

func (m *gridModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(StyleTitle.Render(appName))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(m.status()))
	b.WriteString("\n")
	b.WriteString(m.paint())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *gridModel) status() string {
	if m.gesture != nil {
		return fmt.Sprintf("holding %s · slot %d/%d", m.gesture.Item(), m.cursor+1, m.ctr.Len())
	}
	return fmt.Sprintf("slot %d/%d", m.cursor+1, m.ctr.Len())
}

// paint draws every tile back to front at its live offset.
func (m *gridModel) paint() string {
	t := m.tiles
	cv := newCanvas(m.geom.Columns*t.width, m.canvasRows(), canvasStyles)
	scroll := m.ctr.ScrollY()

	for _, it := range m.ctr.Snapshot() {
		border, label := paintTile, paintTileLabel
		b := lipgloss.RoundedBorder()
		switch {
		case it.Z > drag.RestZ:
			border, label = paintLifted, paintLiftedLabel
			b = lipgloss.ThickBorder()
		case m.gesture == nil && it.Order == m.cursor:
			border, label = paintFocus, paintFocusLabel
		}

		// Lifted tiles shrink by their scale, rounded to whole cells.
		inset := int(math.Round((1 - it.Scale) * float64(t.width) / 2))
		x := int(math.Round(it.X/t.xUnit)) + inset
		y := int(math.Round((it.Y - scroll) / t.yUnit))
		w := t.width - 2*inset

		cv.box(x, y, w, t.height, b, border)
		mid := y + t.height/2
		cv.text(x+1, mid, w-2, it.ID, label)
		if t.height >= 5 {
			cv.text(x+1, mid+1, w-2, fmt.Sprintf("#%d", it.Order), paintOrder)
		}
	}
	return cv.render()
}
