package cmd

import (
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/routerjig/pkg/drawing"
	"github.com/OpenTraceLab/routerjig/pkg/renderer"
)

const viewControls = `
Controls:
  Left Click / R    - Rotate 90°
  Right Click / F   - Flip drawing
  Scroll Wheel      - Zoom in/out
  Space             - Fit drawing to window
  1 / 2 / 3 / 4     - Toggle cut, mark, guide and debug layers
  T                 - Switch color theme
  Q / Escape        - Quit`

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "View a jig or template in an interactive viewer",
	Long:  `Opens a generated drawing in a Gio-based viewer with pan, zoom, and rotation controls.` + viewControls,
}

var viewJigCmd = &cobra.Command{
	Use:   "jig",
	Short: "View a jig",
	Long:  `Generates a jig from the same flags as "rjig jig" and opens it in the viewer.` + viewControls,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildJig()
		if err != nil {
			return err
		}
		return view("Router Jig", d)
	},
}

var viewTemplateCmd = &cobra.Command{
	Use:   "template",
	Short: "View a circle template",
	Long:  `Generates a template from the same flags as "rjig template" and opens it in the viewer.` + viewControls,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildTemplate()
		if err != nil {
			return err
		}
		return view("Circle Template", d)
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.AddCommand(viewJigCmd)
	viewCmd.AddCommand(viewTemplateCmd)
	addJigFlags(viewJigCmd.Flags())
	addTemplateFlags(viewTemplateCmd.Flags())
}

func view(title string, d *drawing.Drawing) error {
	canvas := d.Canvas()
	fmt.Fprintf(os.Stderr, "Drawing: %d primitives, %.1f x %.1f mm\n", d.Len(), canvas.Width(), canvas.Height())

	// Run the Gio application
	go func() {
		w := new(app.Window)
		w.Option(app.Title("rjig - " + title))
		w.Option(app.Size(unit.Dp(1000), unit.Dp(800)))

		if err := runViewerWindow(w, d); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}

func runViewerWindow(w *app.Window, d *drawing.Drawing) error {
	camera := renderer.NewCamera(1000, 800)
	camera.Fit(d.Canvas())
	layers := renderer.NewLayerConfig()

	var ops op.Ops

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			ops.Reset()

			gtx := layout.Context{
				Ops:         &ops,
				Constraints: layout.Exact(e.Size),
				Metric:      e.Metric,
				Now:         e.Now,
				Source:      e.Source,
			}

			camera.UpdateScreenSize(e.Size.X, e.Size.Y)

			for {
				ev, ok := gtx.Event(key.Filter{})
				if !ok {
					break
				}

				if ke, ok := ev.(key.Event); ok {
					if ke.State == key.Press {
						if handleKeyPress(ke.Name, camera, layers, d) {
							return nil
						}
						w.Invalidate()
					}
				}
			}

			for {
				ev, ok := gtx.Event(pointer.Filter{
					Kinds: pointer.Press | pointer.Scroll,
				})
				if !ok {
					break
				}

				if pe, ok := ev.(pointer.Event); ok {
					switch pe.Kind {
					case pointer.Press:
						if pe.Buttons == pointer.ButtonPrimary {
							camera.Rotate(90)
							w.Invalidate()
						} else if pe.Buttons == pointer.ButtonSecondary {
							camera.Flip()
							w.Invalidate()
						}
					case pointer.Scroll:
						zoomFactor := 1.0 + float64(pe.Scroll.Y)*0.1
						camera.ZoomAt(float64(pe.Position.X), float64(pe.Position.Y), zoomFactor)
						w.Invalidate()
					}
				}
			}

			renderer.RenderDrawing(gtx, camera, d, layers)

			e.Frame(&ops)
		}
	}
}

// layerKeys maps number keys to the tag they toggle
var layerKeys = map[key.Name]drawing.Tag{
	"1": drawing.Cut,
	"2": drawing.Mark,
	"3": drawing.Guide,
	"4": drawing.Debug,
}

// handleKeyPress reports whether the viewer should close
func handleKeyPress(k key.Name, camera *renderer.Camera, layers *renderer.LayerConfig, d *drawing.Drawing) bool {
	if tag, ok := layerKeys[k]; ok {
		layers.Toggle(tag)
		return false
	}
	switch k {
	case key.NameEscape, "Q":
		return true
	case "F":
		camera.Flip()
	case "R":
		camera.Rotate(90)
	case key.NameLeftArrow:
		camera.Rotate(-90)
	case "T":
		renderer.NextTheme()
	case key.NameSpace:
		camera.Fit(d.Canvas())
	}
	return false
}
