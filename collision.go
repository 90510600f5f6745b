package planetary

import (
	"fmt"

	kitlog "github.com/go-kit/kit/log"
)

// CollisionEvent describes one detected proximity between two bodies. It is
// handed to the handler and not retained by the core. Normal points from A
// toward B; RelativeVelocity is B's velocity minus A's.
type CollisionEvent struct {
	A, B             *Body
	Distance         float64 // current center distance, m
	MinDistance      float64 // contact distance (r_A+r_B)·threshold, m
	Normal           []float64
	RelativeVelocity []float64
}

// CollisionHandler receives collision events. All collision policy
// (bounce, merge, destroy) belongs to the handler; the detector performs no
// physical response.
type CollisionHandler func(CollisionEvent)

// MakeCollisionEvent builds the event for an (a, b) pair, reporting whether
// the pair is actually within the contact distance for the given threshold.
func MakeCollisionEvent(a, b *Body, threshold float64) (CollisionEvent, bool) {
	d := sub(b.R, a.R)
	dist := norm(d)
	minDist := (a.Radius + b.Radius) * threshold
	ev := CollisionEvent{
		A:                a,
		B:                b,
		Distance:         dist,
		MinDistance:      minDist,
		Normal:           unit(d),
		RelativeVelocity: sub(b.V, a.V),
	}
	return ev, dist < minDist
}

// DetectCollisions runs one O(n²) unordered-pair scan and invokes the
// handler for every pair closer than (r₁+r₂)·threshold. A panicking
// handler is logged and the scan continues with the next pair.
func DetectCollisions(bodies []*Body, threshold float64, handler CollisionHandler, logger kitlog.Logger) {
	if handler == nil || threshold <= 0 {
		return
	}
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			ev, hit := MakeCollisionEvent(bodies[i], bodies[j], threshold)
			if !hit {
				continue
			}
			collisionsTotal.Inc()
			if err := invokeHandler(handler, ev); err != nil && logger != nil {
				logger.Log("level", "error", "subsys", "collision", "bodies", fmt.Sprintf("%s/%s", ev.A.Name, ev.B.Name), "err", err)
			}
		}
	}
}

func invokeHandler(handler CollisionHandler, ev CollisionEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	handler(ev)
	return
}
