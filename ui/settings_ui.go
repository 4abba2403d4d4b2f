package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// SettingsState is what the panel shows.
type SettingsState struct {
	CameraMode string
	LookAt     bool
}

// SettingsUI is the in-game camera settings panel.
type SettingsUI struct {
	UI *ebitenui.UI

	OnToggleCameraMode func()
	OnToggleLookAt     func()
	OnClose            func()

	modeLabel   *widget.Label
	lookAtLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewSettingsUI(onToggleCameraMode, onToggleLookAt, onClose func()) *SettingsUI {
	ui := &SettingsUI{
		OnToggleCameraMode: onToggleCameraMode,
		OnToggleLookAt:     onToggleLookAt,
		OnClose:            onClose,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *SettingsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 18}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (ui *SettingsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 140})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 10, Bottom: 10, Left: 14, Right: 14}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 240})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("CAMERA", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(titleLabel)

	ui.modeLabel = ui.newValueLabel()
	panel.AddChild(ui.settingRow(ui.modeLabel, "Switch", func() {
		if ui.OnToggleCameraMode != nil {
			ui.OnToggleCameraMode()
		}
	}))

	ui.lookAtLabel = ui.newValueLabel()
	panel.AddChild(ui.settingRow(ui.lookAtLabel, "Toggle", func() {
		if ui.OnToggleLookAt != nil {
			ui.OnToggleLookAt()
		}
	}))

	hint := widget.NewLabel(
		widget.LabelOpts.Text("Settings are saved automatically", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{160, 160, 180, 255},
		}),
	)
	panel.AddChild(hint)

	closeButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text("Resume", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnClose != nil {
				ui.OnClose()
			}
		}),
	)
	panel.AddChild(closeButton)

	rootContainer.AddChild(panel)
	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *SettingsUI) newValueLabel() *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
}

func (ui *SettingsUI) settingRow(value *widget.Label, action string, onClick func()) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(70, 24)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		}),
		widget.ButtonOpts.Text(action, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
	row.AddChild(button)
	row.AddChild(value)
	return row
}

// SetState refreshes the displayed values.
func (ui *SettingsUI) SetState(s SettingsState) {
	lookAt := "off"
	if s.LookAt {
		lookAt = "on"
	}
	ui.modeLabel.Label = fmt.Sprintf("Camera update: %s", s.CameraMode)
	ui.lookAtLabel.Label = fmt.Sprintf("Look at player: %s", lookAt)
}

func (ui *SettingsUI) Update() {
	ui.UI.Update()
}
