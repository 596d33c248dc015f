// This file is part of Atom.
//
// Atom is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Atom is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Atom.  If not, see <https://www.gnu.org/licenses/>.

package console

import (
	"fmt"
	"io"

	"github.com/fpedrolucas95/Atom/curated"
	"github.com/fpedrolucas95/Atom/hardware/ps2/keyboard"
	"github.com/fpedrolucas95/Atom/input"
	"github.com/fpedrolucas95/Atom/logger"
	"github.com/fpedrolucas95/Atom/version"

	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "Atom"

// dimensions of the cell grid and the texture it is rendered to. the window
// is the texture scaled up.
const (
	textCols = 80
	textRows = 30

	texWidth  = textCols * glyphWidth
	texHeight = textRows * glyphHeight

	pixelDepth  = 4
	windowScale = 2
)

type rgb struct {
	r uint8
	g uint8
	b uint8
}

// a muted slate palette. easy on the eyes during long sessions.
var (
	background = rgb{46, 52, 64}
	text       = rgb{236, 239, 244}
	accent     = rgb{136, 192, 208}
)

// Injector receives translated host input. The emulated i8042 controller
// satisfies this interface. A nil Injector leaves host input unused, which
// is the arrangement when the byte source is real hardware or a transcript.
type Injector interface {
	InjectScancode(data ...uint8)
	MouseMotion(dx int, dy int)
	MouseButton(button input.Buttons, pressed bool)
}

// Console is an SDL window presenting the decoded session. Key events are
// echoed into a scrolling cell grid and motion events move a pointer block.
type Console struct {
	events *input.Queue
	inj    Injector

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture before applying
	// to the renderer
	pixels []byte

	// the cell grid and the position the next echoed character lands in
	cells  [textRows][textCols]rune
	curCol int
	curRow int

	// pointer block position in texture coordinates, and the buttons
	// currently held
	mouseX  int
	mouseY  int
	buttons input.Buttons

	// the texture is only rebuilt when something has changed
	dirty bool

	quit chan bool
}

// NewConsole is the preferred method of initialisation for the Console type.
//
// MUST ONLY be called from the main thread.
func NewConsole(events *input.Queue, inj Injector) (*Console, error) {
	scr := &Console{
		events: events,
		inj:    inj,
		mouseX: texWidth / 2,
		mouseY: texHeight / 2,
		dirty:  true,
		quit:   make(chan bool, 1),
	}

	var err error

	err = sdl.Init(sdl.INIT_EVERYTHING)
	if err != nil {
		return nil, curated.Errorf("console: %v", err)
	}

	scr.window, err = sdl.CreateWindow(fmt.Sprintf("%s (%s)", windowTitle, version.Version),
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		texWidth*windowScale, texHeight*windowScale,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf("console: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("console: %v", err)
	}

	err = scr.renderer.SetScale(windowScale, windowScale)
	if err != nil {
		return nil, curated.Errorf("console: %v", err)
	}

	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING), texWidth, texHeight)
	if err != nil {
		return nil, curated.Errorf("console: %v", err)
	}

	scr.pixels = make([]byte, texWidth*texHeight*pixelDepth)

	// the alpha channel is fixed at opaque. only the colour channels are
	// written to after this
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	// the console draws its own pointer when host input is being injected
	if scr.inj != nil {
		_, err = sdl.ShowCursor(sdl.DISABLE)
		if err != nil {
			logger.Log("console", err.Error())
		}
	}

	return scr, nil
}

// Quit returns a channel that receives a value when the window has been
// asked to close.
func (scr *Console) Quit() <-chan bool {
	return scr.quit
}

// Destroy cleans up the SDL resources used by the console.
//
// MUST ONLY be called from the main thread.
func (scr *Console) Destroy(output io.Writer) {
	if scr.events != nil && scr.events.Dropped() > 0 {
		logger.Logf("console", "%d decoded events dropped", scr.events.Dropped())
	}

	err := scr.texture.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	err = scr.renderer.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	err = scr.window.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}
}

// Service services SDL events and drains the decoded event queue, rebuilding
// the texture when anything has changed.
//
// MUST ONLY be called as part of a larger loop from the main thread.
func (scr *Console) Service() {
	// loop until there are no more events to retrieve, timing out straight
	// away if there is nothing
	done := false
	for !done {
		ev := sdl.WaitEventTimeout(1)

		switch ev := ev.(type) {
		// close window
		case *sdl.QuitEvent:
			select {
			case scr.quit <- true:
			default:
			}

		case *sdl.KeyboardEvent:
			if ev.Repeat == 0 {
				scr.serviceKeyboard(ev)
			}

		case *sdl.MouseMotionEvent:
			// SDL reports y increasing towards the user. the mouse protocol
			// is the other way up
			if scr.inj != nil {
				scr.inj.MouseMotion(int(ev.XRel), int(-ev.YRel))
			}

		case *sdl.MouseButtonEvent:
			scr.serviceMouseButton(ev)

		case nil:
			// if we have a nil value then WaitEventTimeout has timed out and
			// we can say that the event queue is empty
			done = true
		}
	}

	if scr.events != nil {
		empty := false
		for !empty {
			select {
			case ev := <-scr.events.Events():
				scr.apply(ev)
				scr.dirty = true
			default:
				empty = true
			}
		}
	}

	if scr.dirty {
		scr.render()
		scr.dirty = false
	}
}

func (scr *Console) serviceKeyboard(ev *sdl.KeyboardEvent) {
	if scr.inj == nil {
		return
	}

	if code, ok := set1Extended[ev.Keysym.Scancode]; ok {
		if ev.Type == sdl.KEYUP {
			code |= keyboard.Break
		}
		scr.inj.InjectScancode(keyboard.ExtendedPrefix, code)
		return
	}

	code, ok := set1[ev.Keysym.Scancode]
	if !ok {
		return
	}
	if ev.Type == sdl.KEYUP {
		code |= keyboard.Break
	}
	scr.inj.InjectScancode(code)
}

func (scr *Console) serviceMouseButton(ev *sdl.MouseButtonEvent) {
	if scr.inj == nil {
		return
	}

	var button input.Buttons

	switch ev.Button {
	case sdl.BUTTON_LEFT:
		button = input.ButtonLeft
	case sdl.BUTTON_RIGHT:
		button = input.ButtonRight
	case sdl.BUTTON_MIDDLE:
		button = input.ButtonMiddle
	default:
		return
	}

	scr.inj.MouseButton(button, ev.Type == sdl.MOUSEBUTTONDOWN)
}

// apply a decoded event to the cell grid or the pointer.
func (scr *Console) apply(ev input.Event) {
	switch ev := ev.(type) {
	case input.KeyEvent:
		scr.applyKey(ev)

	case input.MouseMotionEvent:
		// y is inverted for screen coordinates
		scr.mouseX = clamp(scr.mouseX+ev.DX, 0, texWidth-1)
		scr.mouseY = clamp(scr.mouseY-ev.DY, 0, texHeight-1)
		scr.buttons = ev.Buttons

	case input.MouseButtonEvent:
		if ev.Pressed {
			scr.buttons |= ev.Button
		} else {
			scr.buttons &^= ev.Button
		}
	}
}

func (scr *Console) applyKey(ev input.KeyEvent) {
	if ev.Special != input.NoSpecial {
		switch ev.Special {
		case input.LeftArrow:
			if scr.curCol > 0 {
				scr.curCol--
			}
		case input.RightArrow:
			if scr.curCol < textCols-1 {
				scr.curCol++
			}
		case input.Home:
			scr.curCol = 0
		}
		return
	}

	switch ev.Rune {
	case '\n':
		scr.newline()

	case '\r':
		scr.curCol = 0

	case '\x08':
		if scr.curCol > 0 {
			scr.curCol--
			scr.cells[scr.curRow][scr.curCol] = ' '
		}

	default:
		scr.cells[scr.curRow][scr.curCol] = ev.Rune
		scr.curCol++
		if scr.curCol >= textCols {
			scr.newline()
		}
	}
}

func (scr *Console) newline() {
	scr.curCol = 0
	scr.curRow++
	if scr.curRow >= textRows {
		scr.scroll()
		scr.curRow = textRows - 1
	}
}

// scroll the cell grid up one row, clearing the bottom row.
func (scr *Console) scroll() {
	copy(scr.cells[:], scr.cells[1:])
	scr.cells[textRows-1] = [textCols]rune{}
}

// render the cell grid, the text cursor and the pointer block to the texture
// and put it on screen.
func (scr *Console) render() {
	for row := 0; row < textRows; row++ {
		for col := 0; col < textCols; col++ {
			scr.drawCell(row, col)
		}
	}

	// text cursor. an underline in the bottom row of the cell
	for x := 0; x < glyphWidth; x++ {
		scr.setPixel(scr.curCol*glyphWidth+x, scr.curRow*glyphHeight+glyphHeight-1, text)
	}

	// pointer block. the accent colour normally, the text colour while a
	// button is held
	c := accent
	if scr.buttons != 0 {
		c = text
	}
	for y := 0; y < glyphHeight; y++ {
		for x := 0; x < glyphWidth; x++ {
			px := scr.mouseX + x
			py := scr.mouseY + y
			if px < texWidth && py < texHeight {
				scr.setPixel(px, py, c)
			}
		}
	}

	err := scr.texture.Update(nil, scr.pixels, texWidth*pixelDepth)
	if err != nil {
		logger.Log("console", err.Error())
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		logger.Log("console", err.Error())
	}

	scr.renderer.Present()
}

// drawCell renders one cell through the font. bit 0 of a glyph row is the
// leftmost pixel.
func (scr *Console) drawCell(row int, col int) {
	g := glyph(scr.cells[row][col])
	for y := 0; y < glyphHeight; y++ {
		for x := 0; x < glyphWidth; x++ {
			c := background
			if g[y]>>x&0x01 == 0x01 {
				c = text
			}
			scr.setPixel(col*glyphWidth+x, row*glyphHeight+y, c)
		}
	}
}

func (scr *Console) setPixel(x int, y int, c rgb) {
	i := (y*texWidth + x) * pixelDepth
	scr.pixels[i] = c.r
	scr.pixels[i+1] = c.g
	scr.pixels[i+2] = c.b
}

func clamp(v int, lo int, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
