package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

const minTableHeight = 5

// CommonModel tracks the terminal size for screens that lay out to it.
type CommonModel struct {
	Width  int
	Height int
}

func (c *CommonModel) SetSize(msg tea.WindowSizeMsg) {
	c.Width = msg.Width
	c.Height = msg.Height
}

// TableHeight is the rows left for a table once headers and help are drawn.
func (c CommonModel) TableHeight(chrome int) int {
	return max(c.Height-chrome, minTableHeight)
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}
