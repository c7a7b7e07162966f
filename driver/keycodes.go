package driver

import "github.com/hajimehoshi/ebiten/v2"

// keyCodes translates ebiten keys into the numeric code space the input
// mapping tables use. Only codes present in the default key map (plus
// numlock) are listed; everything else is unmapped by definition.
var keyCodes = map[ebiten.Key]int{
	ebiten.KeyTab:          9,
	ebiten.KeyEnter:        13,
	ebiten.KeyShiftLeft:    16,
	ebiten.KeyShiftRight:   16,
	ebiten.KeyControlLeft:  17,
	ebiten.KeyControlRight: 17,
	ebiten.KeyAltLeft:      18,
	ebiten.KeyAltRight:     18,
	ebiten.KeyEscape:       27,
	ebiten.KeySpace:        32,
	ebiten.KeyPageUp:       33,
	ebiten.KeyPageDown:     34,
	ebiten.KeyArrowLeft:    37,
	ebiten.KeyArrowUp:      38,
	ebiten.KeyArrowRight:   39,
	ebiten.KeyArrowDown:    40,
	ebiten.KeyInsert:       45,
	ebiten.KeyQ:            81,
	ebiten.KeyW:            87,
	ebiten.KeyX:            88,
	ebiten.KeyZ:            90,
	ebiten.KeyNumpad0:      96,
	ebiten.KeyNumpad2:      98,
	ebiten.KeyNumpad4:      100,
	ebiten.KeyNumpad6:      102,
	ebiten.KeyNumpad8:      104,
	ebiten.KeyF9:           120,
	ebiten.KeyNumLock:      144,
}
