package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

var (
	casePtr    = flag.String("case", "atom", "what to plot (atom, box)")
	setupPtr   = flag.Bool("setup", false, "show the setup dialog before plotting")
	radialPtr  = flag.String("radial", string(RadialClosed), "radial function of the atom (closed, laguerre)")
	spacePtr   = flag.String("space", "position", "plot the atom in position or momentum space")
	profilePtr = flag.String("profile", "", "write the atom's radial profile chart to this PNG file and exit")
	tablePtr   = flag.Bool("table", false, "print the atom's r x theta density table to stdout and exit")
)

// main is the entry point of the application.
func main() {
	flag.Parse()

	params := DefaultAtomParams()
	if *casePtr == "box" {
		params = DefaultBoxParams()
	}
	params.Case = *casePtr
	params.Radial = RadialModel(*radialPtr)
	params.Space = *spacePtr
	if err := params.Validate(); err != nil {
		log.Fatal(err)
	}

	if (*profilePtr != "" || *tablePtr) && params.Case != "atom" {
		log.Fatal("-profile and -table only apply to -case atom")
	}
	if *profilePtr != "" {
		if err := writeProfile(*profilePtr, params); err != nil {
			log.Fatal(err)
		}
		return
	}
	if *tablePtr {
		table := DensityTable(params.State, params.Radial, 1, 30, 30)
		if err := WriteDensityTable(os.Stdout, table); err != nil {
			log.Fatal(err)
		}
		return
	}

	log.Println("Starting application...")
	myApp := app.New()
	plotWindow := myApp.NewWindow("atomfg")
	plotWindow.SetContent(container.NewCenter(widget.NewLabel("Computing wavefunction...")))
	plotWindow.Resize(fyne.NewSize(400, 200))
	plotWindow.CenterOnScreen()
	plotWindow.Show()

	start := func(p Params) {
		ui := buildUI(myApp, plotWindow, p)
		plotWindow.SetTitle(ui.titleLabel.Text)
		plotWindow.SetContent(ui.Container)
		plotWindow.Resize(fyne.NewSize(800, 750))
		plotWindow.CenterOnScreen()
		log.Println("Plot window content set.")
	}

	if *setupPtr {
		showSetupDialog(plotWindow, params, func(p *Params, ok bool) {
			if !ok {
				log.Println("Setup cancelled. Exiting.")
				plotWindow.Close()
				return
			}
			start(*p)
		})
	} else {
		start(params)
	}

	log.Println("Starting main event loop...")
	myApp.Run()
	log.Println("Application finished.")
}

// buildUI runs the whole pipeline for p and returns the finished window content.
func buildUI(a fyne.App, w fyne.Window, p Params) *AppUI {
	log.Printf("Building %s view: L=%.2f, S=%d", p.Case, p.Extent, p.Resolution)
	grid := NewGrid(p.Extent, p.Extent, p.Extent, p.Resolution)

	if p.Case == "box" {
		density := DensityOfReal(BoxWavefunction(grid))
		sel := Select(grid, density, p.Threshold)
		lo, hi := grid.Bounds()
		scene := NewScene(lo, hi)
		scene.Scatter(sel, PointSizes(sel.Density, p.Exponent, p.SizeCap))
		log.Printf("Box view: %d points above %.4g", sel.Len(), p.Threshold)
		return setupBoxUI(a, w, scene, fmt.Sprintf("Particle in a Box Ground State (L=%g)", p.Extent))
	}

	psi := HydrogenWavefunction(grid, p.State, p.Radial)
	var density [][][]float64
	title := fmt.Sprintf("Hydrogen Atom Wavefunction (%v)", p.State)
	if p.Space == "momentum" {
		density = MomentumDensity(psi)
		grid = MomentumGrid(grid)
		title += " in momentum space"
	} else {
		density = DensityOf(psi)
	}
	lo, hi := grid.Bounds()
	scene := NewScene(lo, hi)
	ctrl := NewController(grid, density, scene, p.Threshold, p.Exponent, p.SizeCap)
	return setupAtomUI(a, w, scene, ctrl, title)
}

func writeProfile(path string, p Params) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating profile file: %w", err)
	}
	rMax := 4 * float64(p.State.N*p.State.N)
	if err := WriteProfilePNG(f, p.State, p.Radial, rMax); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing profile file: %w", err)
	}
	log.Printf("Wrote radial profile for %v to %s", p.State, path)
	return nil
}

// setupForm holds the entries of the setup dialog.
type setupForm struct {
	defaults Params

	extent, resolution, threshold *widget.Entry
	n, l, m                       *widget.Entry
}

func positiveInt(name string) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			return fmt.Errorf("%s must be a positive integer", name)
		}
		return nil
	}
}

func positiveFloat(name string) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v <= 0 {
			return fmt.Errorf("%s must be a positive number", name)
		}
		return nil
	}
}

// validThreshold accepts the range the threshold slider can show.
func validThreshold(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < thresholdMin || v > thresholdMax {
		return fmt.Errorf("threshold must be in [%g, %g]", thresholdMin, thresholdMax)
	}
	return nil
}

// newSetupForm creates the entries prefilled from defaults. The l and m
// entries are revalidated whenever an entry they depend on changes.
func newSetupForm(defaults Params) *setupForm {
	f := &setupForm{defaults: defaults}

	f.extent = widget.NewEntry()
	f.extent.SetText(strconv.FormatFloat(defaults.Extent, 'g', -1, 64))
	f.extent.Validator = positiveFloat("L")

	f.resolution = widget.NewEntry()
	f.resolution.SetText(strconv.Itoa(defaults.Resolution))
	f.resolution.Validator = positiveInt("Resolution")

	f.threshold = widget.NewEntry()
	f.threshold.SetText(strconv.FormatFloat(defaults.Threshold, 'g', -1, 64))
	f.threshold.Validator = validThreshold

	f.n = widget.NewEntry()
	f.n.SetText(strconv.Itoa(defaults.State.N))
	f.n.Validator = positiveInt("n")

	f.l = widget.NewEntry()
	f.l.SetText(strconv.Itoa(defaults.State.L))
	f.l.Validator = func(s string) error {
		l, err := strconv.Atoi(s)
		if err != nil || l < 0 {
			return errors.New("l must be a non-negative integer")
		}
		if n, err := strconv.Atoi(f.n.Text); err == nil && l >= n {
			return errors.New("l must be less than n")
		}
		return nil
	}

	f.m = widget.NewEntry()
	f.m.SetText(strconv.Itoa(defaults.State.M))
	f.m.Validator = func(s string) error {
		m, err := strconv.Atoi(s)
		if err != nil {
			return errors.New("m must be an integer")
		}
		if l, err := strconv.Atoi(f.l.Text); err == nil && (m > l || m < -l) {
			return errors.New("|m| must not exceed l")
		}
		return nil
	}

	f.n.OnChanged = func(string) {
		f.l.Validate()
		f.m.Validate()
	}
	f.l.OnChanged = func(string) { f.m.Validate() }
	return f
}

func (f *setupForm) items() []*widget.FormItem {
	items := []*widget.FormItem{
		widget.NewFormItem("Axis Length (L)", f.extent),
		widget.NewFormItem("Samples per axis", f.resolution),
		widget.NewFormItem("Density threshold", f.threshold),
	}
	if f.defaults.Case == "atom" {
		items = append(items,
			widget.NewFormItem("Principal n", f.n),
			widget.NewFormItem("Azimuthal l", f.l),
			widget.NewFormItem("Magnetic m", f.m),
		)
	}
	return items
}

// params reads the entries back. It runs every validator again, so a
// submitted form with stale entries is still refused.
func (f *setupForm) params() (Params, error) {
	entries := []*widget.Entry{f.extent, f.resolution, f.threshold}
	if f.defaults.Case == "atom" {
		entries = append(entries, f.n, f.l, f.m)
	}
	for _, e := range entries {
		if err := e.Validator(e.Text); err != nil {
			return Params{}, err
		}
	}

	p := f.defaults
	p.Extent, _ = strconv.ParseFloat(f.extent.Text, 64)
	p.Resolution, _ = strconv.Atoi(f.resolution.Text)
	p.Threshold, _ = strconv.ParseFloat(f.threshold.Text, 64)
	if p.Case == "atom" {
		p.State.N, _ = strconv.Atoi(f.n.Text)
		p.State.L, _ = strconv.Atoi(f.l.Text)
		p.State.M, _ = strconv.Atoi(f.m.Text)
		if err := p.State.Check(); err != nil {
			return Params{}, err
		}
	}
	return p, p.Validate()
}

// showSetupDialog asks for the grid and, for the atom, the quantum numbers.
// onComplete receives the edited parameters, or nil and false on cancel.
// Rejected input reopens the dialog with the previous values.
func showSetupDialog(parent fyne.Window, defaults Params, onComplete func(*Params, bool)) {
	form := newSetupForm(defaults)

	log.Println("Creating and showing setup dialog...")
	dialog.ShowForm("Plot Setup", "Plot", "Cancel", form.items(),
		func(ok bool) {
			if !ok {
				onComplete(nil, false)
				return
			}
			p, err := form.params()
			if err != nil {
				log.Printf("Setup rejected: %v", err)
				d := dialog.NewError(err, parent)
				d.SetOnClosed(func() { showSetupDialog(parent, defaults, onComplete) })
				d.Show()
				return
			}
			log.Printf("Setup accepted: %+v", p)
			onComplete(&p, true)
		}, parent)
}
