package domain

import (
	"strings"
	"time"
)

// OperationKind names an edit applied to the working image.
type OperationKind string

// Operation kinds, one per editing action of the session.
const (
	OperationFilter OperationKind = "filter"
	OperationResize OperationKind = "resize"
	OperationRotate OperationKind = "rotate"
	OperationAdjust OperationKind = "adjust"
	OperationCrop   OperationKind = "crop"
)

// Operation records one successful edit of the working image.
type Operation struct {
	Kind OperationKind `json:"kind"`

	// Detail is the human-readable parameter summary, e.g. "320x240".
	Detail string `json:"detail"`

	At time.Time `json:"at"`
}

// String renders the operation as "resize 320x240".
func (o Operation) String() string {
	if o.Detail == "" {
		return string(o.Kind)
	}
	return string(o.Kind) + " " + o.Detail
}

// Pipeline joins operations in application order, e.g.
// "filter grayscale > resize 320x240". An empty log renders as "original".
func Pipeline(ops []Operation) string {
	if len(ops) == 0 {
		return "original"
	}
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = op.String()
	}
	return strings.Join(parts, " > ")
}
