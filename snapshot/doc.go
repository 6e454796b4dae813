// Package snapshot verifies rendered views against recorded reference
// images.
//
// A verification sizes the subject with a [Fit] for the configured
// [DeviceMetrics], places it in a container that paints a safety border,
// the background, alignment guidelines and a dashed border ([Compose]),
// captures the container and either saves it as a new reference (record
// mode) or compares it with the first reference found under the suffixed
// reference directories ([ResolveDirectory]).
//
// Typical use in a test:
//
//	func TestBadge(t *testing.T) {
//		v := snapshot.NewForTest(t)
//		badge := newBadge("NEW")
//		v.Expect(t, snapshot.ViewSubject(badge), snapshot.Natural{}, "new")
//		v.Expect(t, snapshot.ViewSubject(badge), snapshot.ScreenWidth{}, "new")
//	}
//
// Configuration comes from the environment (see [LoadConfig]):
// SNAPSHOT_REFERENCE_DIR is required, and SNAPSHOT_RECORD_MODE=1 records
// every snapshot of the run. A recorded snapshot always fails the test so
// that the new reference is validated by a second run.
package snapshot
