package app

import (
	"fmt"
	"strconv"

	"drag-threshold/internal/threshold"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// View shows the active threshold and lets the user change the distance and
// units before explicitly reapplying.
type View struct {
	container *fyne.Container

	unitsSelect   *widget.Select
	distanceEntry *widget.Entry
	reapplyButton *widget.Button

	dpiLabel       *widget.Label
	thresholdLabel *widget.Label
	statusLabel    *widget.Label

	onReapply func(distance float64, units threshold.Units)
}

func NewView() *View {
	v := &View{}

	names := make([]string, 0, len(threshold.AllUnits()))
	for _, u := range threshold.AllUnits() {
		names = append(names, u.String())
	}

	v.unitsSelect = widget.NewSelect(names, nil)
	v.distanceEntry = widget.NewEntry()
	v.distanceEntry.SetPlaceHolder("distance")
	v.reapplyButton = widget.NewButton("Reapply", v.handleReapply)

	v.dpiLabel = widget.NewLabel("")
	v.thresholdLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	v.statusLabel = widget.NewLabel("")

	form := widget.NewForm(
		widget.NewFormItem("Units", v.unitsSelect),
		widget.NewFormItem("Distance", v.distanceEntry),
	)

	v.container = container.NewVBox(
		form,
		v.reapplyButton,
		widget.NewSeparator(),
		v.dpiLabel,
		v.thresholdLabel,
		v.statusLabel,
	)
	return v
}

func (v *View) Content() fyne.CanvasObject {
	return v.container
}

func (v *View) SetReapplyHandler(fn func(distance float64, units threshold.Units)) {
	v.onReapply = fn
}

func (v *View) ShowConfig(cfg threshold.Config) {
	v.unitsSelect.SetSelected(cfg.Units.String())
	v.distanceEntry.SetText(strconv.FormatFloat(cfg.Distance, 'g', -1, 64))
}

func (v *View) ShowDevice(dpi, canvasScale float64) {
	v.dpiLabel.SetText(fmt.Sprintf("Screen: %.0f dpi, canvas scale %.2f", dpi, canvasScale))
}

func (v *View) ShowThreshold(pixels int) {
	v.thresholdLabel.SetText(fmt.Sprintf("Drag threshold: %d px", pixels))
}

func (v *View) ShowStatus(message string) {
	v.statusLabel.SetText(message)
}

func (v *View) handleReapply() {
	if v.onReapply == nil {
		return
	}

	distance, err := strconv.ParseFloat(v.distanceEntry.Text, 64)
	if err != nil || distance < 0 {
		v.ShowStatus(fmt.Sprintf("Invalid distance %q", v.distanceEntry.Text))
		return
	}

	units, err := threshold.ParseUnits(v.unitsSelect.Selected)
	if err != nil {
		v.ShowStatus(err.Error())
		return
	}

	v.onReapply(distance, units)
}
