// Package drag implements the per-item drag controller of a sortable grid.
//
// A [Controller] owns one item's live offset (two [anim.Scalar] values) and
// moves through three states:
//
//	Resting  --Start-->  Dragging  --End-->  Settling  --done-->  Resting
//	Resting  --order changed by another item-->  Settling
//	Settling --Start-->  Dragging (the settle is superseded)
//
// While dragging, [Controller.Move] places the item at origin + translation
// and computes the slot under it. When that slot differs from the item's
// current order, the controller swaps with whoever holds it through the
// shared [order.Store]. The Store notifies the displaced item synchronously,
// and that item starts settling toward its new rest position.
//
// Controllers are not safe for concurrent use. All gesture calls and ticks
// for the controllers of one Store must come from the same goroutine.
package drag
