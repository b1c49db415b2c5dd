// Package oscillator implements a damped-harmonic-oscillator kernel for
// interaction feedback: a forcing input (for example a tracked hand
// position) is turned into a smoothed output value and velocity, subject
// to extent limits, end-cap forces, and snap-point attraction.
//
// Two variants share the same contract:
//
//   - [Axis]: one-dimensional travel (sliders, levers, dials mapped to a
//     single scalar)
//   - [Radial]: generic over any [space.Value] type; extent bounds apply
//     to the norm of the displacement (2-D/3-D positions, 4-component
//     rotations)
//
// Each step computes a net force from four additive sources (hand spring,
// upper and lower end-caps, snap points) and integrates it with
// semi-implicit Euler: velocity is updated first and the new velocity
// advances the position. The ordering matters for stability and must be
// preserved.
//
// # Thread Safety
//
// An oscillator is stateful and order-dependent: each Step call depends on
// the state left by the previous one. Instances are NOT safe for
// concurrent use; give each owner its own instance or serialize calls
// externally.
package oscillator
