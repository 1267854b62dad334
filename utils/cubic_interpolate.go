// SPDX-License-Identifier: EPL-2.0

package utils

// CubicInterpolate evaluates the Catmull-Rom spline through four consecutive
// samples. t is the fractional position between p1 and p2 (0 <= t <= 1), so
// t=0 yields p1 and t=1 yields p2.
func CubicInterpolate(p0, p1, p2, p3, t float64) float64 {
	a := -0.5*p0 + 1.5*p1 - 1.5*p2 + 0.5*p3
	b := p0 - 2.5*p1 + 2*p2 - 0.5*p3
	c := -0.5*p0 + 0.5*p2
	d := p1

	return ((a*t+b)*t+c)*t + d
}
