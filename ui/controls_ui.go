package ui

import (
	"bytes"
	goimage "image"

	"github.com/automoto/ballpit/components"
	cfg "github.com/automoto/ballpit/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ControlsUI is the button panel in the top-right corner. Buttons only raise
// requests on the Settings component; UpdateSettings carries them out.
type ControlsUI struct {
	UI       *ebitenui.UI
	Settings *components.SettingsData

	panel        *widget.Container
	squishButton *widget.Button
	shadowButton *widget.Button

	face text.Face
}

// NewControlsUI builds the panel for the given settings.
func NewControlsUI(settings *components.SettingsData) (*ControlsUI, error) {
	c := &ControlsUI{Settings: settings}
	if err := c.loadFonts(); err != nil {
		return nil, err
	}
	c.buildUI()
	return c, nil
}

func (c *ControlsUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}
	c.face = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.HUDFontSize,
	}
	return nil
}

func (c *ControlsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	c.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.BlackOverlay)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.UI.PanelPadding)),
			widget.RowLayoutOpts.Spacing(cfg.UI.ButtonSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	c.squishButton = c.newButton(squishLabel(c.Settings.SquishOnCollision), func() {
		c.Settings.ToggleSquish = true
	})
	c.shadowButton = c.newButton(shadowLabel(c.Settings.ShowShadow), func() {
		c.Settings.ToggleShadow = true
	})
	c.panel.AddChild(c.squishButton)
	c.panel.AddChild(c.shadowButton)
	c.panel.AddChild(c.newButton("Add ball", func() {
		c.Settings.SpawnBall = true
	}))
	c.panel.AddChild(c.newButton("Reset", func() {
		c.Settings.Reset = true
	}))

	rootContainer.AddChild(c.panel)

	c.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (c *ControlsUI) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.UI.ButtonWidth, cfg.UI.ButtonHeight),
		),
		widget.ButtonOpts.Image(c.buttonImage()),
		widget.ButtonOpts.Text(label, &c.face, &widget.ButtonTextColor{
			Idle:    cfg.UI.ButtonText,
			Hover:   cfg.UI.ButtonText,
			Pressed: cfg.UI.ButtonOn,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (c *ControlsUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.UI.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.UI.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.UI.ButtonPressed),
		Disabled: image.NewNineSliceColor(cfg.UI.ButtonPressed),
	}
}

// UpdateUI refreshes the toggle labels from the settings.
func (c *ControlsUI) UpdateUI() {
	if textWidget := c.squishButton.Text(); textWidget != nil {
		textWidget.Label = squishLabel(c.Settings.SquishOnCollision)
	}
	if textWidget := c.shadowButton.Text(); textWidget != nil {
		textWidget.Label = shadowLabel(c.Settings.ShowShadow)
	}
}

// Update runs the ebitenui update and keeps the labels current.
func (c *ControlsUI) Update() {
	c.UI.Update()
	c.UpdateUI()
}

// Contains reports whether a screen point falls on the panel. The panel has
// no size until the first layout, so nothing is captured before then.
func (c *ControlsUI) Contains(x, y float64) bool {
	return goimage.Pt(int(x), int(y)).In(c.panel.GetWidget().Rect)
}

func squishLabel(on bool) string {
	if on {
		return "Squish: on"
	}
	return "Squish: off"
}

func shadowLabel(on bool) string {
	if on {
		return "Shadow: on"
	}
	return "Shadow: off"
}
