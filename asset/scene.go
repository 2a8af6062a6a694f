package asset

import (
	"github.com/lixenwraith/snowfall/core"
	"github.com/lixenwraith/snowfall/render"
)

// winterScene is the decorative art drawn beneath the snow layer,
// anchored to the bottom rows of the grid.
var winterScene = []string{
	`                 /\                                      /\              `,
	`                /  \             _______                /  \             `,
	`               /    \           | _____ |              /    \            `,
	`              /      \          || o o ||             /      \           `,
	`             /--------\         ||_____||            /--------\          `,
	`                 ||             |   _   |                ||              `,
	`                 ||         ____|  | |  |____            ||              `,
	`_________________||________|___________________|________||______________`,
}

// WinterScene returns the default background
func WinterScene() render.Background {
	return render.Background{
		Lines: winterScene,
		Fg:    core.RGB{R: 110, G: 160, B: 150},
	}
}
