package mandel

import "fmt"

// Viewport is the window of the complex plane mapped onto the canvas.
// CenterRe/CenterIm land on the canvas center; ExtentW/ExtentH are the full
// width and height of the window in plane units.
type Viewport struct {
	CenterRe float64 `json:"center_re"`
	CenterIm float64 `json:"center_im"`
	ExtentW  float64 `json:"extent_w"`
	ExtentH  float64 `json:"extent_h"`
}

// Classic regions / landmarks in the Mandelbrot set, selectable by name.
var (
	// FullSet – the whole set with some margin
	FullSet = Viewport{CenterRe: -0.65, CenterIm: 0, ExtentW: 3.1, ExtentH: 3.1}

	// SeahorseValley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Viewport{CenterRe: -0.75, CenterIm: 0.10, ExtentW: 0.10, ExtentH: 0.10}

	// ElephantValley – large bulb with trunk-like tendrils
	ElephantValley = Viewport{CenterRe: -1.80, CenterIm: -0.06, ExtentW: 0.10, ExtentH: 0.08}

	// SpiralMinibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Viewport{CenterRe: -0.74275, CenterIm: 0.13175, ExtentW: 0.0015, ExtentH: 0.0015}

	// TripleSpiral – threefold symmetric spiral structure
	TripleSpiral = Viewport{CenterRe: -0.7465, CenterIm: 0.0965, ExtentW: 0.0030, ExtentH: 0.0030}

	// ValleyOfTheDragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Viewport{CenterRe: -0.7375, CenterIm: 0.1825, ExtentW: 0.0050, ExtentH: 0.0050}

	// MinibrotInMiniSpiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Viewport{CenterRe: -1.73825, CenterIm: -0.02275, ExtentW: 0.0015, ExtentH: 0.0015}
)

var viewportsByName = map[string]Viewport{
	"full":             FullSet,
	"seahorse-valley":  SeahorseValley,
	"elephant-valley":  ElephantValley,
	"spiral-minibrot":  SpiralMinibrot,
	"triple-spiral":    TripleSpiral,
	"valley-of-dragon": ValleyOfTheDragon,
	"minibrot-spiral":  MinibrotInMiniSpiral,
}

// ViewportByName looks up one of the predefined landmarks.
func ViewportByName(name string) (Viewport, error) {
	vp, ok := viewportsByName[name]
	if !ok {
		return Viewport{}, fmt.Errorf("unknown viewport %q", name)
	}
	return vp, nil
}
