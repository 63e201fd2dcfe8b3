// internal/event/types.go
package event

const (
	Resize       EventType = "Resize"       // размер поверхности изменился
	PointerMove  EventType = "PointerMove"  // курсор сдвинулся
	PointerLeave EventType = "PointerLeave" // курсор покинул окно
	PointerDown  EventType = "PointerDown"  // нажата левая кнопка
)

// ResizeData is the payload of Resize.
type ResizeData struct {
	Width, Height int
}

// PointerData is the payload of PointerMove and PointerDown, in viewport
// coordinates.
type PointerData struct {
	X, Y float64
}
