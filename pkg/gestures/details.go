package gestures

// DragStartDetails describes the start of a drag.
type DragStartDetails struct {
	// X and Y are the initial pointer position.
	X float64
	Y float64
}

// DragUpdateDetails describes a single drag movement.
type DragUpdateDetails struct {
	// X and Y are the current pointer position.
	X float64
	Y float64
	// DeltaX and DeltaY are the total movement since the gesture start.
	DeltaX float64
	DeltaY float64
	// PrimaryDelta is the total movement along the drag's primary axis.
	PrimaryDelta float64
}

// DragEndDetails describes the end of a drag.
type DragEndDetails struct {
	// X and Y are the final pointer position.
	X float64
	Y float64
	// VelocityX and VelocityY are the release velocity in px/ms.
	VelocityX float64
	VelocityY float64
	// PrimaryVelocity is the release velocity along the primary axis.
	PrimaryVelocity float64
}
