// Package quad maps reference Gauss–Legendre rules onto an arbitrary finite
// interval and evaluates the weighted sum Σ wᵢ·f(xᵢ).
//
// ✨ Key features:
//   - Interval: validated [a, b] with finite bounds and a < b.
//   - Map: affine rescaling x = (b−a)/2·t + (b+a)/2, w = (b−a)/2·ω,
//     preserving order and count.
//   - Integrate: left-to-right summation over increasing node index, so the
//     same rule and integrand always give the same bits.
//   - Fixed: one-shot Solve → Map → Integrate for a fixed order.
//
// ⚙️ Usage:
//
//	iv, err := quad.NewInterval(1, 3)
//	est, err := quad.Fixed(f, iv, 5)
package quad
