package application

import "errors"

// ErrItemNotFound signals a name that is not on the active menu.
var ErrItemNotFound = errors.New("menu item not found")
