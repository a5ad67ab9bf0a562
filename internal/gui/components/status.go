package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	detailLabel *widget.Label
	countLabel  *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Ready")
	detailLabel := widget.NewLabel("")
	detailLabel.Truncation = fyne.TextTruncateEllipsis
	countLabel := widget.NewLabel("Releases: --")

	mainContainer := container.NewBorder(
		nil, nil,
		statusLabel,
		countLabel,
		detailLabel,
	)

	return &StatusBar{
		container:   mainContainer,
		statusLabel: statusLabel,
		detailLabel: detailLabel,
		countLabel:  countLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) Status() string {
	return sb.statusLabel.Text
}

// SetDetail shows the hovered release, or clears it for "".
func (sb *StatusBar) SetDetail(detail string) {
	sb.detailLabel.SetText(detail)
}

func (sb *StatusBar) SetCount(count int) {
	sb.countLabel.SetText(fmt.Sprintf("Releases: %d", count))
}
