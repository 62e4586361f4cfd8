package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/roomplan/internal/config"
	"github.com/philipparndt/roomplan/internal/logging"
	"github.com/philipparndt/roomplan/pkg/catalog"
	"github.com/philipparndt/roomplan/pkg/planner"
	"github.com/philipparndt/roomplan/pkg/room"
	"github.com/philipparndt/roomplan/pkg/viewer"
	"github.com/philipparndt/roomplan/pkg/watcher"
	"github.com/rs/zerolog"
)

type App struct {
	window      fyne.Window
	session     *planner.Session
	view        *viewer.RoomView
	log         zerolog.Logger
	configPath  string
	toolButtons map[string]*widget.Button
	roomForm    *RoomForm
	statusLabel *widget.Label
}

// RoomForm holds the three dimension entries
type RoomForm struct {
	width  *widget.Entry
	depth  *widget.Entry
	height *widget.Entry
}

func main() {
	configPath := ""
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.Load(configPath)
	log := logging.For(os.Stderr, cfg.Log.Verbose)
	if err != nil {
		log.Error().Err(err).Msg("config ignored")
		cfg = config.Default()
	}

	r, err := cfg.RoomFrom(room.Default)
	if err != nil {
		log.Warn().Err(err).Msg("invalid room in config")
	}
	session, err := planner.New(catalog.Default(), r, planner.WithLogger(log), planner.WithTool(cfg.Planner.Tool))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := app.New()
	w := a.NewWindow("roomplan - Fixture Planner")

	appInstance := &App{
		window:      w,
		session:     session,
		log:         log,
		configPath:  configPath,
		toolButtons: make(map[string]*widget.Button),
	}
	appInstance.setupMainUI()
	appInstance.view.Camera().FOV = cfg.FOV()

	if configPath != "" {
		if fw, err := appInstance.watchConfig(); err != nil {
			log.Warn().Err(err).Msg("auto-reload will not be available")
		} else {
			defer fw.Close()
		}
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (a *App) setupMainUI() {
	a.view = viewer.NewRoomView(a.session)
	a.statusLabel = widget.NewLabel(a.session.Status().Message)
	a.statusLabel.Wrapping = fyne.TextWrapWord

	// Listeners run on the goroutine that changed the session
	a.session.OnStatus(func(st planner.Status) {
		fyne.Do(func() {
			a.statusLabel.SetText(st.Message)
			a.updateToolButtons()
			if st.Kind == planner.StatusRebuilt {
				a.updateRoomForm()
				a.view.Reframe()
			}
			a.view.Refresh()
		})
	})

	// Catalog
	catalogBox := container.NewVBox(widget.NewLabel("Fixtures:"), widget.NewSeparator())
	for _, t := range a.session.Catalog().All() {
		id := t.ID
		button := widget.NewButton(t.Name, func() {
			if err := a.session.SelectTool(id); err != nil {
				dialog.ShowError(err, a.window)
			}
		})
		a.toolButtons[id] = button
		catalogBox.Add(button)
		detail := widget.NewLabel(t.Detail)
		detail.Wrapping = fyne.TextWrapWord
		detail.TextStyle = fyne.TextStyle{Italic: true}
		catalogBox.Add(detail)
	}
	a.updateToolButtons()

	// Room dimensions
	a.roomForm = &RoomForm{
		width:  widget.NewEntry(),
		depth:  widget.NewEntry(),
		height: widget.NewEntry(),
	}
	a.updateRoomForm()
	createButton := widget.NewButton("Create layout", a.createLayout)
	createButton.Importance = widget.HighImportance

	roomBox := container.NewVBox(
		widget.NewLabel("Room:"),
		widget.NewSeparator(),
		widget.NewForm(
			widget.NewFormItem("Width (m)", a.roomForm.width),
			widget.NewFormItem("Depth (m)", a.roomForm.depth),
			widget.NewFormItem("Wall height (m)", a.roomForm.height),
		),
		createButton,
	)

	deleteButton := widget.NewButton("Delete selected", func() {
		a.session.DeleteSelected()
	})

	instructions := widget.NewLabel(
		"Click a floor or wall to place the selected fixture.\n" +
			"Drag a fixture to move it, press Delete to remove it.\n" +
			"Drag empty space or use the right button to orbit.\n" +
			"Scroll to zoom.",
	)
	instructions.Wrapping = fyne.TextWrapWord

	sidePanel := container.NewVBox(
		catalogBox,
		widget.NewSeparator(),
		roomBox,
		widget.NewSeparator(),
		deleteButton,
		widget.NewSeparator(),
		instructions,
	)
	sideScroll := container.NewVScroll(sidePanel)
	sideScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(
		nil,           // top
		a.statusLabel, // bottom
		sideScroll,    // left
		nil,           // right
		a.view,        // center
	)
	a.window.SetContent(content)

	a.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyDelete, fyne.KeyBackspace:
			a.session.DeleteSelected()
		}
	})
}

func (a *App) updateToolButtons() {
	current := a.session.Tool().ID
	for id, button := range a.toolButtons {
		importance := widget.MediumImportance
		if id == current {
			importance = widget.HighImportance
		}
		if button.Importance != importance {
			button.Importance = importance
			button.Refresh()
		}
	}
}

func (a *App) updateRoomForm() {
	r := a.session.Room()
	a.roomForm.width.SetText(formatMeters(r.Width))
	a.roomForm.depth.SetText(formatMeters(r.Depth))
	a.roomForm.height.SetText(formatMeters(r.WallHeight))
}

// createLayout rebuilds the room from the form. Unparsable entries count as
// invalid dimensions and keep their previous value.
func (a *App) createLayout() {
	_, err := a.session.Rebuild(
		parseMeters(a.roomForm.width.Text),
		parseMeters(a.roomForm.depth.Text),
		parseMeters(a.roomForm.height.Text),
	)
	if err != nil {
		dialog.ShowError(err, a.window)
	}
}

// watchConfig rebuilds the room whenever the config file changes
func (a *App) watchConfig() (*watcher.FileWatcher, error) {
	fw, err := watcher.NewFileWatcher(200*time.Millisecond, a.log)
	if err != nil {
		return nil, err
	}
	err = fw.Watch([]string{a.configPath}, func(string) {
		cfg, err := config.Load(a.configPath)
		if err == nil {
			_, err = cfg.ApplyTo(a.session)
		}
		if err != nil {
			a.log.Error().Err(err).Msg("reload config")
			fyne.Do(func() {
				dialog.ShowError(err, a.window)
			})
		}
	})
	if err != nil {
		fw.Close()
		return nil, err
	}
	fw.Start()
	return fw, nil
}

func formatMeters(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseMeters(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
