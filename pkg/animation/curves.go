package animation

import "github.com/tanema/gween/ease"

// Easing curves transform linear animation progress into natural-feeling
// motion. Set a [Controller]'s Curve field to apply one; any ease.TweenFunc
// works, these are the ones the toolkit uses itself.

// Curve is the easing function type accepted by [Controller].
type Curve = ease.TweenFunc

// Linear returns progress unchanged (no easing).
var Linear Curve = ease.Linear

// EaseIn starts slowly and accelerates. Use for elements leaving the screen.
var EaseIn Curve = ease.InQuad

// EaseOut starts quickly and decelerates. Use for elements entering the screen.
var EaseOut Curve = ease.OutQuad

// EaseInOut starts and ends slowly with acceleration in the middle.
var EaseInOut Curve = ease.InOutQuad

// EaseOutCubic decelerates more sharply than EaseOut. Good for dialog boxes
// sliding into place.
var EaseOutCubic Curve = ease.OutCubic

// Elastic overshoots the target and springs back.
var Elastic Curve = ease.OutElastic

// Bounce hits the target and bounces like a dropped ball.
var Bounce Curve = ease.OutBounce
