package core

// Color is a logical palette slot for a screen cell.
// The platform maps slots to concrete terminal colours.
type Color uint8

// Palette slots, darkest last, after the four-shade handheld palette.
const (
	ColorDefault Color = iota
	ColorLight         // background shade, used for blank playfield cells
	ColorMid           // secondary sprites: carried screws, boxes
	ColorDark          // primary sprites: walls, screws on the floor
	ColorInk           // text and the chick
	ColorAccent        // flashing prompts
)
