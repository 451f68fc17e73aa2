// Package mainmenu provides the title screen.
package mainmenu

import (
	"image/color"
	"time"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/younwookim/portfoliotown/internal/application/scene"
	"github.com/younwookim/portfoliotown/internal/application/system"
	"github.com/younwookim/portfoliotown/internal/application/transition"
	"github.com/younwookim/portfoliotown/internal/domain/entity"
	"github.com/younwookim/portfoliotown/internal/domain/session"
	"github.com/younwookim/portfoliotown/internal/infrastructure/render"
)

var colorBG = color.RGBA{30, 40, 60, 255}

// Fade used when leaving the menu
var menuFade = transition.Fade{Out: 300 * time.Millisecond, In: 300 * time.Millisecond}

// Menu is the title screen with a single start button
type Menu struct {
	input   system.InputSource
	press   func()
	ui      *ebitenui.UI
	title   string
	started bool
	left    bool
}

// New creates the main menu. fonts may be nil, in which case the menu has
// no button and only reacts to the confirm key.
func New(input system.InputSource, fonts *render.Fonts, title string) *Menu {
	m := &Menu{input: input, title: title}
	if fonts != nil {
		m.ui = m.buildUI(fonts)
	}
	return m
}

// ID implements scene.Scene
func (m *Menu) ID() entity.SceneID {
	return scene.MainMenuID
}

// OnEnter implements scene.Scene
func (m *Menu) OnEnter(session.State) {
	m.started = false
	m.left = false
}

// OnExit implements scene.Scene
func (m *Menu) OnExit() {}

// SetPress makes the start button call press instead of starting directly.
// Passing the keyboard's PressConfirm turns clicks into input that
// recorders capture.
func (m *Menu) SetPress(press func()) {
	m.press = press
}

func (m *Menu) click() {
	if m.press != nil {
		m.press()
		return
	}
	m.Start()
}

// Start presses the start button
func (m *Menu) Start() {
	m.started = true
}

// Update implements scene.Scene
func (m *Menu) Update(_ float64) (*transition.Request, error) {
	if m.ui != nil {
		m.ui.Update()
	}
	if m.input.ReadInput().Confirm {
		m.started = true
	}
	if !m.started || m.left {
		return nil, nil
	}

	m.left = true
	return &transition.Request{
		Destination: scene.ChooseCharacterID,
		Payload:     session.CarryForward(session.State{}, scene.MainMenuID),
		Fade:        menuFade,
	}, nil
}

// Draw implements scene.Scene
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	if m.ui != nil {
		m.ui.Draw(screen)
	}
}

func (m *Menu) buildUI(fonts *render.Fonts) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 160})
	btnIdle := imageui.NewNineSliceColor(color.NRGBA{R: 0x3f, G: 0x6f, B: 0xb5, A: 0xff})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x5a, G: 0x8a, B: 0xd0, A: 0xff})

	var titleFace text.Face = fonts.Face(40)
	var face text.Face = fonts.Face(22)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	title := widget.NewText(
		widget.TextOpts.Text(m.title, &titleFace, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	hint := widget.NewText(
		widget.TextOpts.Text("Arrow keys to walk, space to interact", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	startBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnIdle, Hover: btnHover, Pressed: btnHover}),
		widget.ButtonOpts.Text("Start", &face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(180, 48),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			m.click()
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 30, Bottom: 30, Left: 40, Right: 40}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(hint)
	panel.AddChild(startBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
