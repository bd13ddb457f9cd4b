package display

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/sirupsen/logrus"
	"github.com/zeozeozeo/gopsp/emulator"
	"golang.org/x/image/font/basicfont"
)

// Returned from Update when the user closes the viewer with Escape
var ErrQuit = errors.New("display: quit")

// An Ebitengine window showing a framebuffer in guest memory while the
// interpreter runs a batch per frame. Space pauses, F1 toggles the status
// line, Escape quits
type Viewer struct {
	It         *emulator.Interpreter
	RAM        *emulator.RAM
	Frame      Framebuffer
	Batch      int  // Instructions per frame
	Paused     bool // Set by the user or a breakpoint
	ShowStatus bool
	Scale      int

	stopped bool   // A trap or fault ended the program
	note    string // Last syscall or yield, shown in the status line
	last    emulator.StepResult
	pixels  []byte
	screen  *ebiten.Image
}

// Returns a viewer over the default framebuffer
func NewViewer(it *emulator.Interpreter, ram *emulator.RAM, batch int) *Viewer {
	frame := DefaultFramebuffer()
	return &Viewer{
		It:         it,
		RAM:        ram,
		Frame:      frame,
		Batch:      batch,
		ShowStatus: true,
		Scale:      2,
		pixels:     make([]byte, frame.Width*frame.Height*4),
	}
}

// Opens the window and blocks until it is closed
func (v *Viewer) Run() error {
	ebiten.SetWindowSize(v.Frame.Width*v.Scale, v.Frame.Height*v.Scale)
	ebiten.SetWindowTitle("gopsp")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(true)

	err := ebiten.RunGame(v)
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

// Runs one batch of instructions
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.Paused = !v.Paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		v.ShowStatus = !v.ShowStatus
	}
	if v.Paused || v.stopped {
		return nil
	}
	v.step()
	return nil
}

func (v *Viewer) step() {
	res := v.It.Steps(v.Batch)
	v.last = res

	switch res.Signal {
	case emulator.SIGNAL_PAUSE:
		v.Paused = true
	case emulator.SIGNAL_SYSCALL, emulator.SIGNAL_YIELD:
		v.note = fmt.Sprintf("%s 0x%X at %08X", res.Signal, res.Code, res.PC)
		emulator.Log.WithFields(logrus.Fields{
			"signal": res.Signal.String(),
			"code":   fmt.Sprintf("0x%x", res.Code),
			"pc":     fmt.Sprintf("0x%08x", res.PC),
		}).Debug("batch ended early")
	case emulator.SIGNAL_TRAP, emulator.SIGNAL_FAULT:
		v.stopped = true
		emulator.Log.WithFields(logrus.Fields{
			"signal": res.Signal.String(),
			"pc":     fmt.Sprintf("0x%08x", res.PC),
		}).Info("program stopped")
	}
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.screen == nil {
		v.screen = ebiten.NewImage(v.Frame.Width, v.Frame.Height)
	}

	src, err := v.RAM.Read(v.Frame.Addr, v.Frame.Size())
	if err == nil {
		v.Frame.Decode(src, v.pixels)
		v.screen.ReplacePixels(v.pixels)
	}
	screen.DrawImage(v.screen, nil)

	if v.ShowStatus {
		text.Draw(screen, v.status(), basicfont.Face7x13, 4, 13, color.White)
	}
}

// Returns the status line
func (v *Viewer) status() string {
	state := "running"
	switch {
	case v.stopped:
		state = v.last.Signal.String()
	case v.Paused:
		state = "paused"
	}
	line := fmt.Sprintf("%s  pc %08X  %d instr  %.0f fps", state, v.It.CPU.PC, v.It.CPU.TotalExecuted, ebiten.CurrentFPS())
	if v.note != "" {
		line += "  last " + v.note
	}
	return line
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.Frame.Width, v.Frame.Height
}
