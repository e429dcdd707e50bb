// Package lasso adds free-form polygon selection to a level editor.
//
// A Tracker sits between the host's input callbacks and the host's own
// rectangle-select handling. While a drag is in progress it records the
// pointer path; on release it closes the path into a polygon and, when lasso
// mode is on, hands it to a Selector. The Selector samples a grid over the
// polygon's bounding box, keeps the samples that pass the even-odd test and
// asks the host which objects lie under each one.
//
// Everything here runs on the host's interaction thread and does not lock.
package lasso
