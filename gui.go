package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"gonum.org/v1/gonum/spatial/r3"
)

// Slider ranges for the atom view.
const (
	thresholdMin = 0.0001
	thresholdMax = 1.0
	exponentMin  = 0.0001
	exponentMax  = 10.0
	sliderStep   = 0.0001

	dragRadiansPerPixel = 0.01
)

// AppUI holds the widgets of the plot window.
type AppUI struct {
	App    fyne.App
	Window fyne.Window

	scene      *Scene
	plot       *canvas.Raster
	view       *DraggableRaster
	titleLabel *widget.Label
	countLabel *widget.Label

	// Atom view only.
	controller     *Controller
	thresholdSlide *widget.Slider
	thresholdLabel *widget.Label
	exponentSlide  *widget.Slider
	exponentLabel  *widget.Label

	// The main container holding the final UI content
	Container fyne.CanvasObject
}

// newPlotUI creates the raster, labels and camera interaction shared by both views.
func newPlotUI(a fyne.App, w fyne.Window, scene *Scene, title string) *AppUI {
	ui := &AppUI{App: a, Window: w, scene: scene}

	ui.plot = canvas.NewRaster(scene.Draw)
	ui.plot.SetMinSize(fyne.NewSize(600, 500))
	ui.view = NewDraggableRaster(ui.plot, ui.handleDrag, ui.handleScroll)

	ui.titleLabel = widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	ui.countLabel = widget.NewLabel("")
	ui.countLabel.Alignment = fyne.TextAlignTrailing

	scene.OnRefresh = func() {
		ui.countLabel.SetText(fmt.Sprintf("%d points", scene.Len()))
		ui.plot.Refresh()
	}
	ui.countLabel.SetText(fmt.Sprintf("%d points", scene.Len()))
	return ui
}

// setupAtomUI builds the interactive hydrogen view: the scatter plot plus
// threshold and exponent sliders wired to ctrl.
func setupAtomUI(a fyne.App, w fyne.Window, scene *Scene, ctrl *Controller, title string) *AppUI {
	log.Println("Setting up atom UI content...")
	ui := newPlotUI(a, w, scene, title)
	ui.controller = ctrl

	ui.exponentLabel = widget.NewLabel(fmt.Sprintf("%.4f", ctrl.Exponent()))
	ui.exponentSlide = widget.NewSlider(exponentMin, exponentMax)
	ui.exponentSlide.Step = sliderStep
	ui.exponentSlide.Value = ctrl.Exponent()

	ui.thresholdLabel = widget.NewLabel(fmt.Sprintf("%.4f", ctrl.Threshold()))
	ui.thresholdSlide = widget.NewSlider(thresholdMin, thresholdMax)
	ui.thresholdSlide.Step = sliderStep
	ui.thresholdSlide.Value = ctrl.Threshold()

	ui.exponentSlide.OnChanged = func(float64) { ui.sliderChanged() }
	ui.thresholdSlide.OnChanged = func(float64) { ui.sliderChanged() }

	expoControl := container.NewBorder(nil, nil, widget.NewLabel("exponentiation factor"), ui.exponentLabel, ui.exponentSlide)
	threshControl := container.NewBorder(nil, nil, widget.NewLabel("minimum threshold"), ui.thresholdLabel, ui.thresholdSlide)
	controls := container.NewVBox(threshControl, expoControl, container.NewBorder(nil, nil, nil, ui.countLabel))

	ui.Container = container.NewBorder(ui.titleLabel, controls, nil, nil, ui.view)
	log.Println("Atom UI content setup finished.")
	return ui
}

// setupBoxUI builds the static particle-in-a-box view.
func setupBoxUI(a fyne.App, w fyne.Window, scene *Scene, title string) *AppUI {
	ui := newPlotUI(a, w, scene, title)
	footer := container.New(layout.NewPaddedLayout(), container.NewBorder(nil, nil, nil, ui.countLabel))
	ui.Container = container.NewBorder(ui.titleLabel, footer, nil, nil, ui.view)
	return ui
}

// sliderChanged is the shared callback of both sliders.
func (ui *AppUI) sliderChanged() {
	threshold := ui.thresholdSlide.Value
	exponent := ui.exponentSlide.Value
	ui.thresholdLabel.SetText(fmt.Sprintf("%.4f", threshold))
	ui.exponentLabel.SetText(fmt.Sprintf("%.4f", exponent))
	ui.controller.Update(threshold, exponent)
}

// handleDrag turns the camera: horizontal drags about the screen's vertical
// axis, vertical drags about its horizontal axis.
func (ui *AppUI) handleDrag(d fyne.Delta) {
	ui.scene.Rotate(r3.Vec{Y: 1}, float64(d.DX)*dragRadiansPerPixel)
	ui.scene.Rotate(r3.Vec{X: 1}, float64(d.DY)*dragRadiansPerPixel)
	ui.plot.Refresh()
}

func (ui *AppUI) handleScroll(d fyne.Delta) {
	if d.DY > 0 {
		ui.scene.Zoom(1.1)
	} else if d.DY < 0 {
		ui.scene.Zoom(1 / 1.1)
	}
	ui.plot.Refresh()
}

// DraggableRaster wraps a raster so it receives drag and scroll events.
type DraggableRaster struct {
	widget.BaseWidget
	raster     *canvas.Raster
	onDragged  func(fyne.Delta)
	onScrolled func(fyne.Delta)
}

func NewDraggableRaster(raster *canvas.Raster, dragged, scrolled func(fyne.Delta)) *DraggableRaster {
	d := &DraggableRaster{raster: raster, onDragged: dragged, onScrolled: scrolled}
	d.ExtendBaseWidget(d)
	return d
}

func (d *DraggableRaster) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(d.raster)
}

func (d *DraggableRaster) Dragged(ev *fyne.DragEvent) {
	if d.onDragged != nil {
		d.onDragged(ev.Dragged)
	}
}

func (d *DraggableRaster) DragEnd() {}

func (d *DraggableRaster) Scrolled(ev *fyne.ScrollEvent) {
	if d.onScrolled != nil {
		d.onScrolled(ev.Scrolled)
	}
}
