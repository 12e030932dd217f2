package input

import (
	"imgswipe/internal/picker"
	"imgswipe/internal/ui/services/navigation"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Navigator *navigation.Service
	Picker    *picker.Picker
}

func (c *ModelContext) HasImage() bool {
	_, ok := c.Navigator.CurrentImage()
	return ok
}

func (c *ModelContext) CanMoveBack() bool {
	return c.Navigator.CanMoveBack()
}

func (c *ModelContext) CanMoveForward() bool {
	return c.Navigator.CanMoveForward()
}

func (c *ModelContext) SelectionCount() int {
	return c.Navigator.Len()
}

func (c *ModelContext) PickerOpen() bool {
	return c.Picker != nil && c.Picker.IsOpen()
}

func (c *ModelContext) MultiplePicker() bool {
	return c.PickerOpen() && c.Picker.Mode() == picker.ModeMultiple
}

func (c *ModelContext) MarkedCount() int {
	if c.Picker == nil {
		return 0
	}
	return c.Picker.Marked()
}

func (c *ModelContext) FilterQuery() string {
	if c.Picker == nil {
		return ""
	}
	return c.Picker.Filter()
}
