package reactor

import "github.com/evreactor/evreactor/rate"

// Option configures an endpoint at the time it's registered with the
// reactor (Connect, Open). Listen takes no options, and connections it
// accepts are registered without any.
type Option func(r *Reactor, ep *endpoint)

// WithRateTracking gives the endpoint a read-side and write-side rate
// estimator, sized from the reactor's configured window and capacity, whose
// values later become visible through Reactor.Stats.
func WithRateTracking() Option {
	return func(r *Reactor, ep *endpoint) {
		ep.readRate = rate.New(r.cfg.RateWindow.Time(), r.cfg.RateCapacity)
		ep.writeRate = rate.New(r.cfg.RateWindow.Time(), r.cfg.RateCapacity)
	}
}

func applyOptions(r *Reactor, ep *endpoint, opts []Option) {
	for _, o := range opts {
		if o != nil {
			o(r, ep)
		}
	}
}
