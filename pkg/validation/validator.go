package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/arcgraph/arcgraph/pkg/interchange"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Sentinel errors for missing required fields
var (
	ErrMissingID     = errors.New("id is required")
	ErrMissingLabels = errors.New("labels is required")
	ErrMissingSource = errors.New("source is required")
	ErrMissingTarget = errors.New("target is required")
	ErrMissingLabel  = errors.New("label or labels is required")
)

// RecordError reports a malformed record, identifying it by kind and
// position within the document.
type RecordError struct {
	Kind  string // "node" or "edge"
	Index int    // position within the document's record list
	Field string // offending field
	Cause error  // underlying sentinel
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	return fmt.Sprintf("%s %d: %s: %v", e.Kind, e.Index, e.Field, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *RecordError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error's cause.
func (e *RecordError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// nodeFields and edgeFields are the scalar views handed to the struct
// validator; presence checks that need the nil/empty distinction are done
// by hand afterwards.
type nodeFields struct {
	ID string `validate:"required"`
}

type edgeFields struct {
	Source string `validate:"required"`
	Target string `validate:"required"`
}

// ValidateDocument checks that every record carries the fields a graph
// build requires: id and labels per node, source, target and label
// information per edge. The first malformed record fails the whole
// document so no partially-built index can result. Empty label lists are
// accepted; only the absence of the field is an error.
func ValidateDocument(doc *interchange.Document) error {
	if doc == nil {
		return errors.New("document cannot be nil")
	}

	for i, node := range doc.Elements.Nodes {
		if err := validateNode(i, node.Data); err != nil {
			return err
		}
	}
	for i, edge := range doc.Elements.Edges {
		if err := validateEdge(i, edge.Data); err != nil {
			return err
		}
	}
	return nil
}

func validateNode(index int, data interchange.NodeData) error {
	if err := validate.Struct(nodeFields{ID: data.ID}); err != nil {
		return &RecordError{Kind: "node", Index: index, Field: "id", Cause: ErrMissingID}
	}
	if data.Labels == nil {
		return &RecordError{Kind: "node", Index: index, Field: "labels", Cause: ErrMissingLabels}
	}
	return nil
}

func validateEdge(index int, data interchange.EdgeData) error {
	fields := edgeFields{Source: data.Source, Target: data.Target}
	if err := validate.Struct(fields); err != nil {
		field, cause := "source", ErrMissingSource
		if fieldFailed(err, "Target") && !fieldFailed(err, "Source") {
			field, cause = "target", ErrMissingTarget
		}
		return &RecordError{Kind: "edge", Index: index, Field: field, Cause: cause}
	}
	if data.Label == "" && data.Labels == nil {
		return &RecordError{Kind: "edge", Index: index, Field: "label", Cause: ErrMissingLabel}
	}
	return nil
}

// fieldFailed reports whether the named struct field is among the
// validation failures.
func fieldFailed(err error, field string) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, e := range verrs {
		if e.Field() == field {
			return true
		}
	}
	return false
}
