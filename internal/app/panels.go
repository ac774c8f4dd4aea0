package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/picsort/internal/logger"
)

var errorColor = imgui.NewVec4(1, 0.4, 0.4, 1)

func (a *App) destinationPanel() {
	title := filepath.Base(a.sorter.Destination()) + "###destination"
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondFirstUseEver, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 360), imgui.CondFirstUseEver)
	if imgui.BeginV(title, nil, 0) {
		if imgui.InputTextWithHint("New Directory", "", &a.newDir, imgui.InputTextFlagsEnterReturnsTrue, nil) {
			a.createDestination()
		}

		if imgui.Button("Browse...") {
			a.browser.open(a.sorter.Destination())
		}
		if a.status != "" {
			imgui.TextColored(errorColor, a.status)
		}

		imgui.PushItemWidth(-1)
		if imgui.BeginListBoxV("##subdirectories", imgui.NewVec2(-1, -1)) {
			a.subdirectoryList()
			imgui.EndListBox()
		}
		imgui.PopItemWidth()
	}
	imgui.End()
}

func (a *App) subdirectoryList() {
	if imgui.SelectableBool("..") {
		a.exitDestination()
		return
	}

	// Selecting an entry replaces the listing, so apply it after the loop.
	enter := ""
	for i, name := range a.sorter.Subdirectories() {
		if imgui.SelectableBool(name) {
			enter = name
		}
		if i == a.scrollTo {
			imgui.SetScrollHereY()
			a.scrollTo = -1
		}
	}
	if enter != "" {
		if err := a.sorter.EnterDestination(enter); err != nil {
			a.report("cannot open directory", err, zap.String("name", enter))
			return
		}
		a.status = ""
	}
}

func (a *App) exitDestination() {
	left, err := a.sorter.ExitDestination()
	if err != nil {
		a.report("cannot open parent directory", err)
		return
	}
	a.status = ""
	a.scrollTo = indexOf(a.sorter.Subdirectories(), left)
}

func (a *App) createDestination() {
	name := strings.TrimSpace(a.newDir)
	a.newDir = ""
	if name == "" {
		return
	}
	if err := a.sorter.CreateDestination(name); err != nil {
		a.report("cannot create directory", err, zap.String("name", name))
		return
	}
	a.status = ""
}

func (a *App) infoPanel() {
	p := a.sorter.Current()
	if p == nil {
		return
	}

	title := p.Date
	if len(title) > 10 {
		title = title[:10]
	}
	imgui.SetNextWindowPosV(imgui.NewVec2(280, 10), imgui.CondFirstUseEver, imgui.NewVec2(0, 0))
	if imgui.BeginV(title+"###info", nil, imgui.WindowFlagsAlwaysAutoResize) {
		imgui.LabelText("Date", p.Date)
		imgui.LabelText("Size", fmt.Sprintf("%d x %d", p.Width, p.Height))
		imgui.LabelText("Exists", fmt.Sprintf("%t", a.sorter.ExistsAtDestination()))
		if p.Failed() {
			imgui.TextColored(errorColor, p.Error())
		}
	}
	imgui.End()
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

// setDestination applies a directory chosen in the native dialog.
func (a *App) setDestination(dir string) {
	if err := a.sorter.SetDestination(dir); err != nil {
		a.report("cannot use directory", err, zap.String("dir", dir))
		return
	}
	a.status = ""
	logger.Info("destination selected", zap.String("dir", a.sorter.Destination()))
}
