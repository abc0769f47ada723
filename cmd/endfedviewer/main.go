// endfedviewer shows the lengths-to-avoid chart in a desktop window, with
// controls to change the band list, sub-band mode, and display unit without
// re-running the CLI.
package main

import (
	"flag"
	"fmt"
	"image"
	"strconv"
	"strings"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/JackHunt/RFToolbox/src/endfed"
	"github.com/JackHunt/RFToolbox/src/render"
)

type uiState struct {
	bandEntry *widget.Entry
	cwChk     *widget.Check
	metricChk *widget.Check
	status    *widget.Label
	imgCanvas *canvas.Image
}

func parseBandList(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	bands := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("band %q is not an integer designator", f)
		}
		bands = append(bands, n)
	}
	return bands, nil
}

func redraw(state *uiState) {
	bands, err := parseBandList(state.bandEntry.Text)
	if err != nil {
		state.status.SetText(err.Error())
		return
	}
	if len(bands) == 0 {
		state.status.SetText("enter at least one band designator, e.g. 80 40 20")
		return
	}
	unit := endfed.UnitFeet
	if state.metricChk.Checked {
		unit = endfed.UnitMeters
	}
	spec, err := endfed.Build(bands, state.cwChk.Checked, unit)
	if err != nil {
		state.status.SetText(err.Error())
		return
	}
	img, err := render.Image(spec, render.Options{Width: 1060, Height: 380})
	if err != nil {
		state.status.SetText(err.Error())
		return
	}
	state.imgCanvas.Image = img
	state.imgCanvas.Refresh()
	msg := spec.Title()
	if len(spec.Skipped) > 0 {
		msg += fmt.Sprintf("  (skipped %v)", spec.Skipped)
	}
	state.status.SetText(msg)
}

func main() {
	var bandsFlag string
	flag.StringVar(&bandsFlag, "bands", "80 40 20", "Initial band list")
	cwFlag := flag.Bool("cw", false, "Start with CW sub-band edges")
	metricFlag := flag.Bool("metric", false, "Start with meters instead of feet")
	flag.Parse()

	a := app.NewWithID("com.rftoolbox.endfedviewer")
	w := a.NewWindow("End-Fed Wire Lengths")
	w.Resize(fyne.NewSize(1100, 500))

	state := &uiState{}
	state.bandEntry = widget.NewEntry()
	state.bandEntry.SetText(bandsFlag)
	state.cwChk = widget.NewCheck("CW sub-bands", nil)
	state.cwChk.SetChecked(*cwFlag)
	state.metricChk = widget.NewCheck("Metric", nil)
	state.metricChk.SetChecked(*metricFlag)
	state.status = widget.NewLabel("")

	state.imgCanvas = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	state.imgCanvas.FillMode = canvas.ImageFillContain
	state.imgCanvas.SetMinSize(fyne.NewSize(1060, 380))

	// wire callbacks after the canvas exists so the first change can redraw
	state.cwChk.OnChanged = func(bool) { redraw(state) }
	state.metricChk.OnChanged = func(bool) { redraw(state) }
	state.bandEntry.OnSubmitted = func(string) { redraw(state) }

	top := container.NewBorder(nil, nil,
		widget.NewLabel("Bands:"),
		container.NewHBox(state.cwChk, state.metricChk, widget.NewButton("Redraw", func() { redraw(state) })),
		state.bandEntry,
	)
	w.SetContent(container.NewBorder(top, state.status, nil, nil, state.imgCanvas))

	redraw(state)
	w.ShowAndRun()
}
