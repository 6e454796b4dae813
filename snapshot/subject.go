package snapshot

import (
	"fmt"

	"github.com/gogpu/ggsnap/ui"
)

// Layouter is the layout engine used to size and settle subjects.
type Layouter interface {
	// NaturalSize returns the size v wants within constraint, where a zero
	// component of constraint is unconstrained.
	NaturalSize(v *ui.View, constraint ui.Size) ui.Size
	// ForceLayout runs a synchronous layout pass over v's subtree.
	ForceLayout(v *ui.View)
}

// Controller owns a view, loading it on first access.
type Controller interface {
	View() *ui.View
}

// Host turns a declarative UI value into a concrete view, reporting the
// size the value wants under constraint.
type Host interface {
	HostedView(value any, constraint ui.Size) (*ui.View, ui.Size)
}

// HostFunc adapts a function to the Host interface.
type HostFunc func(value any, constraint ui.Size) (*ui.View, ui.Size)

// HostedView implements Host.
func (f HostFunc) HostedView(value any, constraint ui.Size) (*ui.View, ui.Size) {
	return f(value, constraint)
}

// Subject is something that can be snapshotted: a view, a controller's view
// or a declarative UI value.
type Subject interface {
	// materialize returns the concrete view and its size under constraint.
	materialize(layout Layouter, host Host, constraint ui.Size) (*ui.View, ui.Size, error)
	fmt.Stringer
}

type viewSubject struct {
	view *ui.View
}

// ViewSubject snapshots v directly.
func ViewSubject(v *ui.View) Subject {
	return viewSubject{view: v}
}

func (s viewSubject) materialize(layout Layouter, _ Host, constraint ui.Size) (*ui.View, ui.Size, error) {
	return s.view, fitted(layout.NaturalSize(s.view, constraint), constraint), nil
}

func (s viewSubject) String() string { return "view " + s.view.Name }

type controllerSubject struct {
	controller Controller
}

// ControllerSubject snapshots the view owned by c.
func ControllerSubject(c Controller) Subject {
	return controllerSubject{controller: c}
}

func (s controllerSubject) materialize(layout Layouter, _ Host, constraint ui.Size) (*ui.View, ui.Size, error) {
	v := s.controller.View()
	if v == nil {
		return nil, ui.Size{}, fmt.Errorf("%w: controller %T has no view", ErrUsage, s.controller)
	}
	return v, fitted(layout.NaturalSize(v, constraint), constraint), nil
}

func (s controllerSubject) String() string { return fmt.Sprintf("controller %T", s.controller) }

type declarativeSubject struct {
	value any
}

// DeclarativeSubject snapshots a declarative UI value through the
// verifier's Host.
func DeclarativeSubject(value any) Subject {
	return declarativeSubject{value: value}
}

func (s declarativeSubject) materialize(_ Layouter, host Host, constraint ui.Size) (*ui.View, ui.Size, error) {
	if host == nil {
		return nil, ui.Size{}, ErrNoHost
	}
	v, size := host.HostedView(s.value, constraint)
	if v == nil {
		return nil, ui.Size{}, fmt.Errorf("%w: host returned no view for %T", ErrUsage, s.value)
	}
	return v, size, nil
}

func (s declarativeSubject) String() string { return fmt.Sprintf("declarative %T", s.value) }
