package pointer

// Policy selects the touch compatibility shims. Both shims exist for host
// platforms that report multi-touch in unusual ways; they are configurable
// because their necessity depends on the platform and version.
type Policy struct {
	// TwoFingerCancel turns a second simultaneous contact into a cancel
	// gesture instead of a trigger.
	TwoFingerCancel bool

	// SecondaryTouchCancel treats a non-primary pointer event of type
	// "touch" as a second contact, for platforms that report multi-touch
	// through the pointer event model rather than touch events.
	SecondaryTouchCancel bool
}

// DefaultPolicy enables both shims, preserving the historical behavior.
func DefaultPolicy() Policy {
	return Policy{
		TwoFingerCancel:      true,
		SecondaryTouchCancel: true,
	}
}
