package app

import (
	"github.com/ebitenui/ebitenui/widget"
)

type Toolbar interface {
	Toolbar() *widget.Container
}
